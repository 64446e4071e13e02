// =======================
// scene/driver.go
// =======================

package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"spin3d/v2/config"
	"spin3d/v2/geom"
)

const DefaultInterval = 30 * time.Millisecond

// Driver owns the rotation state and redraws on a fixed cadence.
// time.Ticker drops ticks a slow receiver misses, so a stalled draw never
// builds a backlog.
type Driver struct {
	Interval time.Duration
	Camera   geom.Camera
	Logger   *slog.Logger

	// OnFrame, if set, runs after each frame is shown.
	OnFrame func(n int, f Frame, next State)

	state  State
	frames int
	reset  atomic.Bool
}

func NewDriver(interval time.Duration, cam geom.Camera) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		Interval: interval,
		Camera:   cam,
		Logger:   slog.Default(),
	}
}

// Run ticks until ctx is done. Cancellation returns nil; a deadline returns
// ctx.Err(); a canvas failure stops the loop and is returned.
func (d *Driver) Run(ctx context.Context, src Source, c Canvas) error {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case now := <-ticker.C:
			if gap := now.Sub(last); gap > 2*d.Interval {
				d.Logger.Debug("frame late", "gap", gap, "dropped", int(gap/d.Interval)-1)
			}
			last = now
			if err := d.Step(src.Snapshot(), c); err != nil {
				return err
			}
		}
	}
}

// Step runs one tick: clear, draw the current state, show, advance.
func (d *Driver) Step(cfg config.Animation, c Canvas) error {
	if d.reset.Swap(false) {
		d.state = State{}
	}

	c.Clear()
	f, next := TickWith(d.Camera, cfg, d.state)
	Draw(c, f)
	if err := c.Show(); err != nil {
		return fmt.Errorf("show frame %d: %w", d.frames, err)
	}

	d.state = next
	d.frames++
	if d.OnFrame != nil {
		d.OnFrame(d.frames, f, next)
	}
	return nil
}

// Reset zeroes the angles at the start of the next tick. Safe to call from
// any goroutine.
func (d *Driver) Reset() {
	d.reset.Store(true)
}

// State is the angle set the next tick will draw. Only read it from the
// goroutine running Step.
func (d *Driver) State() State {
	return d.state
}

func (d *Driver) Frames() int {
	return d.frames
}
