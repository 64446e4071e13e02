package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"spin3d/v2/geom"
)

// Raster draws frames into an in-memory RGBA image.
type Raster struct {
	img    *image.RGBA
	bg     color.RGBA
	shader *Shader
}

func NewRaster(width, height int, size float64) *Raster {
	sh := NewShader()
	sh.SetSize(size)
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:     color.RGBA{A: 0xff},
		shader: sh,
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	for i := 0; i < len(r.img.Pix); i += 4 {
		r.img.Pix[i] = r.bg.R
		r.img.Pix[i+1] = r.bg.G
		r.img.Pix[i+2] = r.bg.B
		r.img.Pix[i+3] = r.bg.A
	}
}

// Point fills the 2x2 block whose top-left corner is at.
func (r *Raster) Point(at geom.Point2D, depth float64) {
	col := r.rgba(depth)
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			r.set(at.X+dx, at.Y+dy, col)
		}
	}
}

// Line draws from -> to with a DDA walk.
func (r *Raster) Line(from, to geom.Point2D, depth float64) {
	col := r.rgba(depth)
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		r.set(from.X, from.Y, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps
	x := float64(from.X)
	y := float64(from.Y)
	for i := 0; i <= int(steps); i++ {
		r.set(int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func (r *Raster) Show() error { return nil }

// WritePNG encodes the current image.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		return
	}
	off := r.img.PixOffset(x, y)
	r.img.Pix[off] = col.R
	r.img.Pix[off+1] = col.G
	r.img.Pix[off+2] = col.B
	r.img.Pix[off+3] = col.A
}

func (r *Raster) rgba(depth float64) color.RGBA {
	cr, cg, cb := r.shader.Color(depth).RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 0xff}
}
