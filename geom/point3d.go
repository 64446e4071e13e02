// =======================
// geom/point3d.go
// =======================

package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D holds a 3D coordinate.
type Point3D struct{ X, Y, Z float64 }

// Point2D is a projected screen coordinate.
type Point2D struct{ X, Y int }

// Rotate rotates around the X, then Y, then Z axis. The order is fixed;
// swapping it produces a different tumble.
func (p Point3D) Rotate(ax, ay, az float64) Point3D {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)
	cosZ, sinZ := math.Cos(az), math.Sin(az)

	// X-axis rotation
	y1 := p.Y*cosX - p.Z*sinX
	z1 := p.Y*sinX + p.Z*cosX
	p.Y, p.Z = y1, z1

	// Y-axis rotation
	x1 := p.X*cosY + p.Z*sinY
	z2 := -p.X*sinY + p.Z*cosY
	p.X, p.Z = x1, z2

	// Z-axis rotation
	x2 := p.X*cosZ - p.Y*sinZ
	y2 := p.X*sinZ + p.Y*cosZ
	p.X, p.Y = x2, y2

	return p
}

// Rotation is the X-Y-Z rotation of Point3D.Rotate folded into one matrix,
// so a frame with many points pays for the trig once.
type Rotation struct {
	m mgl64.Mat3
}

// NewRotation composes Rz·Ry·Rx.
func NewRotation(ax, ay, az float64) Rotation {
	m := mgl64.Rotate3DZ(az).Mul3(mgl64.Rotate3DY(ay)).Mul3(mgl64.Rotate3DX(ax))
	return Rotation{m: m}
}

// Apply rotates p.
func (r Rotation) Apply(p Point3D) Point3D {
	v := r.m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return Point3D{X: v[0], Y: v[1], Z: v[2]}
}
