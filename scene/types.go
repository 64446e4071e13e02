// =======================
// scene/types.go
// =======================

package scene

import (
	"encoding/json"

	"spin3d/v2/config"
	"spin3d/v2/geom"
)

// State is the accumulated rotation, in radians. Only the tick that owns it
// changes it.
type State struct {
	AX, AY, AZ float64
}

// Command is one drawing primitive. It is either a Point or a Line.
type Command interface {
	command()
}

// Point is a 2px dot.
type Point struct {
	At    geom.Point2D `json:"at"`
	Depth float64      `json:"depth"`
}

// Line joins two projected vertices.
type Line struct {
	From  geom.Point2D `json:"from"`
	To    geom.Point2D `json:"to"`
	Depth float64      `json:"depth"`
}

func (Point) command() {}
func (Line) command()  {}

// Frame is everything drawn for one tick.
type Frame struct {
	Shape    geom.Shape `json:"shape"`
	Commands []Command  `json:"commands"`
}

// Canvas is the drawing surface a host provides.
type Canvas interface {
	Clear()
	Point(at geom.Point2D, depth float64)
	Line(from, to geom.Point2D, depth float64)
	Show() error
}

// Source supplies the configuration snapshot read at the start of each tick.
type Source interface {
	Snapshot() config.Animation
}

// Fixed is a Source that never changes.
type Fixed config.Animation

func (f Fixed) Snapshot() config.Animation { return config.Animation(f) }

func (p Point) MarshalJSON() ([]byte, error) {
	type plain Point
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{"point", plain(p)})
}

func (l Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return json.Marshal(struct {
		Kind string `json:"kind"`
		plain
	}{"line", plain(l)})
}
