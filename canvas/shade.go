package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shader maps a rotated depth to a colour and a glyph. Nearer is brighter.
type Shader struct {
	near, mid, far colorful.Color
	span           float64
}

// Heavy to light, as the eye moves away from the camera.
var depthGlyphs = []rune{'@', '#', '%', '*', '+', '=', '-', ':', '.'}

func NewShader() *Shader {
	near, _ := colorful.Hex("#ffffff")
	mid, _ := colorful.Hex("#7fb2ff")
	far, _ := colorful.Hex("#2b3366")
	return &Shader{near: near, mid: mid, far: far, span: 1}
}

// SetSize fits the depth range to a shape of the given size. The cube's
// corners reach furthest, at √3·size.
func (s *Shader) SetSize(size float64) {
	span := size * math.Sqrt(3)
	if !(span > 0) {
		span = 1
	}
	s.span = span
}

// Level is depth normalised to [0,1], 0 being nearest.
func (s *Shader) Level(depth float64) float64 {
	t := (depth + s.span) / (2 * s.span)
	return math.Max(0, math.Min(1, t))
}

func (s *Shader) Color(depth float64) colorful.Color {
	t := s.Level(depth)
	if t < 0.5 {
		return s.near.BlendLab(s.mid, t*2).Clamped()
	}
	return s.mid.BlendLab(s.far, (t-0.5)*2).Clamped()
}

func (s *Shader) Glyph(depth float64) rune {
	idx := int(s.Level(depth) * float64(len(depthGlyphs)-1))
	return depthGlyphs[idx]
}
