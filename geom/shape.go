// =======================
// geom/shape.go
// =======================

package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Shape selects one of the built-in solids.
type Shape uint8

const (
	Donut Shape = iota
	Cube
	Triangle
)

const donutSamples = 30

var ErrUnknownShape = errors.New("unknown shape")

var shapeNames = [...]string{
	Donut:    "Donut",
	Cube:     "Cube",
	Triangle: "Triangle",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Next cycles Donut -> Cube -> Triangle -> Donut.
func (s Shape) Next() Shape {
	return (s + 1) % Shape(len(shapeNames))
}

// Shapes lists every shape in selector order.
func Shapes() []Shape {
	return []Shape{Donut, Cube, Triangle}
}

// ParseShape accepts a shape name in any case. "torus" and "tetrahedron"
// are aliases.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "donut", "torus":
		return Donut, nil
	case "cube":
		return Cube, nil
	case "triangle", "tetrahedron":
		return Triangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Edge joins two vertex indices.
type Edge [2]int

// Mesh is a shape in its local frame. Point clouds have no edges.
type Mesh struct {
	Points []Point3D
	Edges  []Edge
}

var (
	cubeEdges = []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // vertical
	}
	triangleEdges = []Edge{
		{0, 1}, {1, 2}, {2, 0},
		{0, 3}, {1, 3}, {2, 3},
	}
)

// Generate builds the mesh for shape at the given size.
func Generate(shape Shape, size float64) Mesh {
	switch shape {
	case Donut:
		return Mesh{Points: donut(size)}
	case Cube:
		return Mesh{Points: cube(size), Edges: append([]Edge(nil), cubeEdges...)}
	case Triangle:
		return Mesh{Points: tetrahedron(size), Edges: append([]Edge(nil), triangleEdges...)}
	}
	panic(fmt.Sprintf("geom: %v", shape))
}

func donut(size float64) []Point3D {
	R, r := size*0.8, size*0.3
	theta := linspace(0, 2*math.Pi, donutSamples)
	phi := linspace(0, 2*math.Pi, donutSamples)

	points := make([]Point3D, 0, len(theta)*len(phi))
	for _, t := range theta {
		cosT, sinT := math.Cos(t), math.Sin(t)
		for _, p := range phi {
			ring := R + r*math.Cos(p)
			points = append(points, Point3D{
				X: ring * cosT,
				Y: ring * sinT,
				Z: r * math.Sin(p),
			})
		}
	}
	return points
}

func cube(s float64) []Point3D {
	return []Point3D{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
	}
}

func tetrahedron(s float64) []Point3D {
	return []Point3D{
		{0, -s, 0},
		{-s, s, -s}, {s, s, -s}, {0, s, s},
	}
}

// linspace returns n evenly spaced values from start to stop, both ends included.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
