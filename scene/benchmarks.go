// =======================
// scene/benchmarks.go
// =======================

package scene

import (
	"fmt"
	"io"
	"time"

	"spin3d/v2/config"
	"spin3d/v2/geom"
)

// BenchmarkInfo holds per-shape tick timings.
type BenchmarkInfo struct {
	Shape     geom.Shape    `json:"shape"`
	Commands  int           `json:"commands"`
	FrameTime time.Duration `json:"frame_time"`
	FPS       float64       `json:"fps"`
	Budget    float64       `json:"budget_used"` // share of DefaultInterval spent per frame
}

// BenchmarkTicks times frames ticks of every shape at size with all axes on.
func BenchmarkTicks(size float64, frames int) ([]BenchmarkInfo, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", frames)
	}
	shapes := geom.Shapes()
	results := make([]BenchmarkInfo, 0, len(shapes))

	for _, shape := range shapes {
		cfg := config.Animation{
			Shape: shape,
			Size:  size,
			Speed: 0.05,
			Axes:  config.Axes{X: true, Y: true, Z: true},
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("benchmark %v: %w", shape, err)
		}

		var (
			st    State
			f     Frame
			start = time.Now()
		)
		for i := 0; i < frames; i++ {
			f, st = Tick(cfg, st)
		}
		duration := time.Since(start)
		perFrame := duration / time.Duration(frames)

		fps := 0.0
		if perFrame > 0 {
			fps = float64(time.Second) / float64(perFrame)
		}

		results = append(results, BenchmarkInfo{
			Shape:     shape,
			Commands:  len(f.Commands),
			FrameTime: perFrame,
			FPS:       fps,
			Budget:    float64(perFrame) / float64(DefaultInterval),
		})
	}

	return results, nil
}

// PrintBenchmarkResults writes results as a table.
func PrintBenchmarkResults(w io.Writer, results []BenchmarkInfo) {
	fmt.Fprintln(w, "Frame Benchmark Results")
	fmt.Fprintln(w, "=======================")
	fmt.Fprintf(w, "%-9s | %-8s | %-12s | %-12s | %-8s\n",
		"Shape", "Commands", "Time/Frame", "FPS", "Budget")
	fmt.Fprintln(w, "----------|----------|--------------|--------------|---------")

	for _, r := range results {
		fmt.Fprintf(w, "%-9s | %-8d | %-12s | %-12.0f | %6.2f%%\n",
			r.Shape,
			r.Commands,
			r.FrameTime.String(),
			r.FPS,
			r.Budget*100)
	}
}
