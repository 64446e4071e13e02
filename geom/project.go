// =======================
// geom/project.go
// =======================

package geom

import "math"

const (
	DefaultFocal    = 250.0
	DefaultDistance = 300.0

	DefaultCanvasWidth  = 580
	DefaultCanvasHeight = 500
)

// Camera is a fixed perspective camera looking down +Z.
type Camera struct {
	Focal    float64
	Distance float64
	CX, CY   float64
}

// DefaultCamera is centred on the default 580x500 canvas.
func DefaultCamera() Camera {
	return CameraFor(DefaultCanvasWidth, DefaultCanvasHeight)
}

// CameraFor centres the default camera on a width x height canvas.
func CameraFor(width, height int) Camera {
	return Camera{
		Focal:    DefaultFocal,
		Distance: DefaultDistance,
		CX:       float64(width) / 2,
		CY:       float64(height) / 2,
	}
}

// Scale is the perspective factor at depth z.
// z == -Distance divides by zero; no shape at a sane size gets there.
func (c Camera) Scale(z float64) float64 {
	return c.Focal / (z + c.Distance)
}

// Project maps p onto the screen.
func (c Camera) Project(p Point3D) Point2D {
	s := c.Scale(p.Z)
	return Point2D{
		X: int(math.Round(p.X*s + c.CX)),
		Y: int(math.Round(p.Y*s + c.CY)),
	}
}
