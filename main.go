// main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"spin3d/v2/canvas"
	"spin3d/v2/config"
	"spin3d/v2/geom"
	"spin3d/v2/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	flag.TextVar(&cfg.Shape, "shape", cfg.Shape, "Shape: Donut, Cube or Triangle")
	flag.Float64Var(&cfg.Size, "size", cfg.Size, "Shape size")
	flag.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Radians added per tick to each enabled axis")
	flag.TextVar(&cfg.Axes, "axes", cfg.Axes, "Axes to rotate about, e.g. xy, z or none")
	flag.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Time between ticks")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Logical canvas width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Logical canvas height")
	flag.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	snapshot := flag.String("snapshot", "", "Write the last of -frames ticks to this PNG file and exit")
	dump := flag.Bool("dump", false, "Print -frames ticks of drawing commands as JSON lines and exit")
	frames := flag.Int("frames", 1, "Ticks to run for -snapshot and -dump")
	bench := flag.Bool("bench", false, "Time every shape and print a table")
	benchFrames := flag.Int("bench-frames", 500, "Frames per shape for -bench")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if (*snapshot != "" || *dump) && *frames < 1 {
		fmt.Fprintf(os.Stderr, "Error: -frames must be at least 1\n")
		os.Exit(1)
	}

	switch {
	case *bench:
		results, err := scene.BenchmarkTicks(cfg.Size, *benchFrames)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
			os.Exit(1)
		}
		scene.PrintBenchmarkResults(os.Stdout, results)

	case *dump:
		if err := dumpFrames(cfg, *frames); err != nil {
			fmt.Fprintf(os.Stderr, "Dump failed: %v\n", err)
			os.Exit(1)
		}

	case *snapshot != "":
		if err := writeSnapshot(cfg, *frames, *snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		slog.Info("snapshot written", "path", *snapshot, "shape", cfg.Shape, "frames", *frames)

	default:
		slog.Debug("starting terminal", "shape", cfg.Shape, "size", cfg.Size, "interval", cfg.Interval)
		n, err := runTerminal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
			os.Exit(1)
		}
		slog.Info("stopped", "frames", n)
	}
}

func dumpFrames(cfg *config.Config, n int) error {
	cam := geom.CameraFor(cfg.Width, cfg.Height)
	anim := cfg.Animation()
	enc := json.NewEncoder(os.Stdout)

	var st scene.State
	for i := 0; i < n; i++ {
		var f scene.Frame
		f, st = scene.TickWith(cam, anim, st)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return nil
}

func writeSnapshot(cfg *config.Config, n int, path string) error {
	r := canvas.NewRaster(cfg.Width, cfg.Height, cfg.Size)
	d := scene.NewDriver(cfg.Interval, geom.CameraFor(cfg.Width, cfg.Height))
	anim := cfg.Animation()
	for i := 0; i < n; i++ {
		if err := d.Step(anim, r); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runTerminal(cfg *config.Config) (int, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return 0, fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	store := config.NewStore(cfg.Animation())
	term := canvas.NewTerminal(s, cfg.Width, cfg.Height, store)
	driver := scene.NewDriver(cfg.Interval, geom.CameraFor(cfg.Width, cfg.Height))
	ctl := controls{store: store, reset: driver.Reset, toggleHelp: term.ToggleHelp}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Input handler
	g.Go(func() error {
		defer cancel()
		pollInput(ctx, s, ctl)
		return nil
	})

	// Render loop
	g.Go(func() error {
		return driver.Run(ctx, store, term)
	})

	err = g.Wait()
	return driver.Frames(), err
}

// pollInput feeds key presses to ctl until the user quits or ctx ends.
func pollInput(ctx context.Context, s tcell.Screen, ctl controls) {
	go func() {
		<-ctx.Done()
		s.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return
			}
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ctl.handleKey(ev) {
				return
			}
		}
	}
}

// controls turns key presses into new snapshots and driver requests.
type controls struct {
	store      *config.Store
	reset      func()
	toggleHelp func()
}

// handleKey reports whether ev asks to quit.
func (c controls) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		c.store.Update(config.Animation.NextShape)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return true
	case '1', '2', '3':
		shape := geom.Shapes()[r-'1']
		c.store.Update(func(a config.Animation) config.Animation {
			a.Shape = shape
			return a
		})
	case '+', '=':
		c.store.Update(func(a config.Animation) config.Animation { return a.StepSize(1) })
	case '-', '_':
		c.store.Update(func(a config.Animation) config.Animation { return a.StepSize(-1) })
	case ']':
		c.store.Update(func(a config.Animation) config.Animation { return a.StepSpeed(1) })
	case '[':
		c.store.Update(func(a config.Animation) config.Animation { return a.StepSpeed(-1) })
	case 'x', 'X', 'y', 'Y', 'z', 'Z':
		c.store.Update(func(a config.Animation) config.Animation {
			a.Axes, _ = a.Axes.Toggle(r)
			return a
		})
	case 'r', 'R':
		c.reset()
	case 'h', 'H', '?':
		c.toggleHelp()
	}
	return false
}
