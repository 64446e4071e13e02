package config

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"spin3d/v2/geom"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shape != geom.Donut || cfg.Size != 100 || cfg.Speed != 0.05 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Axes != (Axes{X: true, Y: true}) {
		t.Fatalf("axes = %v", cfg.Axes)
	}
	if cfg.Interval != 30*time.Millisecond || cfg.Width != 580 || cfg.Height != 500 {
		t.Fatalf("timing/canvas = %v %dx%d", cfg.Interval, cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("log level = %v", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPIN3D_SHAPE", "tetrahedron")
	t.Setenv("SPIN3D_SIZE", "150")
	t.Setenv("SPIN3D_AXES", "z")
	t.Setenv("SPIN3D_INTERVAL", "16ms")
	t.Setenv("SPIN3D_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shape != geom.Triangle || cfg.Size != 150 || cfg.Axes != (Axes{Z: true}) {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.Interval != 16*time.Millisecond || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadRejectsBadShape(t *testing.T) {
	t.Setenv("SPIN3D_SHAPE", "sphere")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Shape: geom.Cube, Size: 100, Speed: 0.05, Interval: time.Millisecond, Width: 10, Height: 10}
	cases := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"zero size", func(c *Config) { c.Size = 0 }, ErrInvalidSize},
		{"nan size", func(c *Config) { c.Size = math.NaN() }, ErrInvalidSize},
		{"inf size", func(c *Config) { c.Size = math.Inf(1) }, ErrInvalidSize},
		{"negative speed", func(c *Config) { c.Speed = -0.1 }, ErrInvalidSpeed},
		{"zero interval", func(c *Config) { c.Interval = 0 }, ErrInvalidInterval},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidCanvas},
		{"zero speed ok", func(c *Config) { c.Speed = 0 }, nil},
	}
	for _, tc := range cases {
		c := base
		tc.mod(&c)
		err := c.Validate()
		if tc.want == nil && err != nil || tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestParseAxes(t *testing.T) {
	cases := map[string]Axes{
		"":      {},
		"none":  {},
		"xy":    {X: true, Y: true},
		"Z":     {Z: true},
		"x,y,z": {X: true, Y: true, Z: true},
	}
	for in, want := range cases {
		got, err := ParseAxes(in)
		if err != nil || got != want {
			t.Fatalf("ParseAxes(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseAxes("xw"); !errors.Is(err, ErrInvalidAxes) {
		t.Fatalf("expected ErrInvalidAxes, got %v", err)
	}
	if s := (Axes{X: true, Z: true}).String(); s != "xz" {
		t.Fatalf("String = %q", s)
	}
}

func TestAxesToggle(t *testing.T) {
	a, ok := Axes{}.Toggle('Y')
	if !ok || a != (Axes{Y: true}) {
		t.Fatalf("toggle Y = %v %v", a, ok)
	}
	if _, ok := a.Toggle('q'); ok {
		t.Fatalf("q is not an axis")
	}
}

func TestStepClamps(t *testing.T) {
	a := Animation{Size: 195, Speed: 0.19}
	a = a.StepSize(3).StepSpeed(5)
	if a.Size != MaxSize || a.Speed != MaxSpeed {
		t.Fatalf("upper clamp: %+v", a)
	}
	a = a.StepSize(-100).StepSpeed(-100)
	if a.Size != MinSize || a.Speed != MinSpeed {
		t.Fatalf("lower clamp: %+v", a)
	}
	b := Animation{Speed: 0.05}
	for i := 0; i < 5; i++ {
		b = b.StepSpeed(1)
	}
	for i := 0; i < 5; i++ {
		b = b.StepSpeed(-1)
	}
	if math.Abs(b.Speed-0.05) > 1e-12 {
		t.Fatalf("speed drifted to %v", b.Speed)
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore(Animation{Size: 0})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Update(func(a Animation) Animation {
					a.Size++
					return a
				})
			}
		}()
	}
	wg.Wait()
	if got := s.Snapshot().Size; got != 800 {
		t.Fatalf("size = %v, want 800", got)
	}
}
