// =======================
// scene/render.go
// =======================

package scene

import (
	"fmt"

	"spin3d/v2/config"
	"spin3d/v2/geom"
)

// Render rotates and projects shape at size and returns its draw commands.
// The donut becomes a point cloud; polyhedra become one line per edge.
func Render(shape geom.Shape, size float64, st State, cam geom.Camera) Frame {
	mesh := geom.Generate(shape, size)
	rot := geom.NewRotation(st.AX, st.AY, st.AZ)

	switch shape {
	case geom.Donut:
		cmds := make([]Command, 0, len(mesh.Points))
		for _, p := range mesh.Points {
			r := rot.Apply(p)
			cmds = append(cmds, Point{At: cam.Project(r), Depth: r.Z})
		}
		return Frame{Shape: shape, Commands: cmds}

	case geom.Cube, geom.Triangle:
		screen := make([]geom.Point2D, len(mesh.Points))
		depth := make([]float64, len(mesh.Points))
		for i, p := range mesh.Points {
			r := rot.Apply(p)
			screen[i] = cam.Project(r)
			depth[i] = r.Z
		}
		cmds := make([]Command, 0, len(mesh.Edges))
		for _, e := range mesh.Edges {
			a, b := e[0], e[1]
			cmds = append(cmds, Line{
				From:  screen[a],
				To:    screen[b],
				Depth: (depth[a] + depth[b]) / 2,
			})
		}
		return Frame{Shape: shape, Commands: cmds}
	}
	panic(fmt.Sprintf("scene: render %v", shape))
}

// Tick draws cfg's shape at st with the default camera, then advances every
// enabled axis by cfg.Speed.
func Tick(cfg config.Animation, st State) (Frame, State) {
	return TickWith(geom.DefaultCamera(), cfg, st)
}

// TickWith is Tick with an explicit camera.
func TickWith(cam geom.Camera, cfg config.Animation, st State) (Frame, State) {
	f := Render(cfg.Shape, cfg.Size, st, cam)
	return f, Advance(st, cfg)
}

// Advance adds cfg.Speed to each enabled axis.
func Advance(st State, cfg config.Animation) State {
	if cfg.Axes.X {
		st.AX += cfg.Speed
	}
	if cfg.Axes.Y {
		st.AY += cfg.Speed
	}
	if cfg.Axes.Z {
		st.AZ += cfg.Speed
	}
	return st
}

// Draw replays f onto c. It does not clear or show.
func Draw(c Canvas, f Frame) {
	for _, cmd := range f.Commands {
		switch cmd := cmd.(type) {
		case Point:
			c.Point(cmd.At, cmd.Depth)
		case Line:
			c.Line(cmd.From, cmd.To, cmd.Depth)
		}
	}
}
