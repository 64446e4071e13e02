package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/kelseyhightower/envconfig"

	"spin3d/v2/geom"
)

const envPrefix = "SPIN3D"

var (
	ErrInvalidSize     = errors.New("size must be a finite number above zero")
	ErrInvalidSpeed    = errors.New("speed must be a finite number, zero or above")
	ErrInvalidInterval = errors.New("interval must be above zero")
	ErrInvalidCanvas   = errors.New("canvas dimensions must be above zero")
)

type Config struct {
	Shape    geom.Shape    `envconfig:"SHAPE" default:"Donut"`
	Size     float64       `envconfig:"SIZE" default:"100"`
	Speed    float64       `envconfig:"SPEED" default:"0.05"`
	Axes     Axes          `envconfig:"AXES" default:"xy"`
	Interval time.Duration `envconfig:"INTERVAL" default:"30ms"`
	Width    int           `envconfig:"WIDTH" default:"580"`
	Height   int           `envconfig:"HEIGHT" default:"500"`
	LogLevel slog.Level    `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads SPIN3D_* environment variables over the defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Animation().Validate(); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, c.Interval)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, c.Width, c.Height)
	}
	return nil
}

// Animation is the per-tick snapshot of c.
func (c *Config) Animation() Animation {
	return Animation{
		Shape: c.Shape,
		Size:  c.Size,
		Speed: c.Speed,
		Axes:  c.Axes,
	}
}

// Animation is what one tick needs to know. It is passed by value and
// never shared.
type Animation struct {
	Shape geom.Shape
	Size  float64
	Speed float64
	Axes  Axes
}

// Slider ranges offered by interactive hosts.
const (
	MinSize   = 50.0
	MaxSize   = 200.0
	SizeStep  = 10.0
	MinSpeed  = 0.01
	MaxSpeed  = 0.2
	SpeedStep = 0.01
)

func (a Animation) Validate() error {
	if !(a.Size > 0) || math.IsInf(a.Size, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, a.Size)
	}
	if !(a.Speed >= 0) || math.IsInf(a.Speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, a.Speed)
	}
	return nil
}

// StepSize moves the size n steps, clamped to the slider range.
func (a Animation) StepSize(n int) Animation {
	a.Size = clamp(a.Size+float64(n)*SizeStep, MinSize, MaxSize)
	return a
}

// StepSpeed moves the speed n steps, clamped to the slider range.
func (a Animation) StepSpeed(n int) Animation {
	// Round to the step grid so repeated presses don't drift.
	v := math.Round((a.Speed+float64(n)*SpeedStep)/SpeedStep) * SpeedStep
	a.Speed = clamp(v, MinSpeed, MaxSpeed)
	return a
}

func (a Animation) NextShape() Animation {
	a.Shape = a.Shape.Next()
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
