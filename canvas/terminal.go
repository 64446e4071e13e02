package canvas

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"spin3d/v2/config"
	"spin3d/v2/geom"
)

const (
	headerRows = 1
	footerRows = 1
)

var helpLines = []string{
	"Rotating 3D Shapes",
	"",
	"Shapes are built in 3D, rotated each frame",
	"about the enabled axes, then projected onto",
	"the screen with a perspective divide.",
	"",
	"Tab/1/2/3  shape      +/-  size",
	"[ / ]      speed      x y z  toggle axis",
	"r          reset      h  help   q  quit",
	"",
	"Tip: Z only on the donut is hypnotic.",
}

// Terminal scales a logical canvas onto a tcell screen, one cell per
// sample, keeping the nearest glyph where samples collide.
type Terminal struct {
	s      tcell.Screen
	store  *config.Store
	shader *Shader

	logicalW, logicalH int

	w, h  int
	zbuf  []float64
	frame int
	help  atomic.Bool
}

// NewTerminal draws onto s. width and height are the logical canvas the
// camera projects into; store feeds the status line.
func NewTerminal(s tcell.Screen, width, height int, store *config.Store) *Terminal {
	return &Terminal{
		s:        s,
		store:    store,
		shader:   NewShader(),
		logicalW: width,
		logicalH: height,
	}
}

// ToggleHelp flips the help overlay. Safe from any goroutine.
func (t *Terminal) ToggleHelp() {
	for {
		old := t.help.Load()
		if t.help.CompareAndSwap(old, !old) {
			return
		}
	}
}

func (t *Terminal) Clear() {
	t.s.Clear()
	t.w, t.h = t.s.Size()
	n := t.w * t.h
	if cap(t.zbuf) < n {
		t.zbuf = make([]float64, n)
	}
	t.zbuf = t.zbuf[:n]
	for i := range t.zbuf {
		t.zbuf[i] = math.Inf(1)
	}
	t.shader.SetSize(t.store.Snapshot().Size)
}

func (t *Terminal) Point(at geom.Point2D, depth float64) {
	x, y := t.cell(float64(at.X), float64(at.Y))
	t.plot(x, y, depth)
}

func (t *Terminal) Line(from, to geom.Point2D, depth float64) {
	x0, y0 := t.cellF(float64(from.X), float64(from.Y))
	x1, y1 := t.cellF(float64(to.X), float64(to.Y))
	dx, dy := x1-x0, y1-y0
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		t.plot(int(math.Round(x0)), int(math.Round(y0)), depth)
		return
	}
	xInc, yInc := dx/steps, dy/steps
	x, y := x0, y0
	for i := 0; i <= int(math.Ceil(steps)); i++ {
		t.plot(int(math.Round(x)), int(math.Round(y)), depth)
		x += xInc
		y += yInc
	}
}

func (t *Terminal) Show() error {
	t.frame++
	snap := t.store.Snapshot()

	title := "Rotating 3D Shapes | Tab:shape +/-:size [/]:speed x/y/z:axes r:reset h:help q:quit"
	drawText(t.s, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), title)

	status := fmt.Sprintf("%s | size %.0f | speed %.2f | axes %s | frame %d",
		snap.Shape, snap.Size, snap.Speed, snap.Axes, t.frame)
	drawText(t.s, 1, t.h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)

	if t.help.Load() {
		t.drawHelp()
	}
	t.s.Show()
	return nil
}

// cellF maps logical canvas coordinates to fractional cells in the drawing
// area between the header and the footer.
func (t *Terminal) cellF(px, py float64) (float64, float64) {
	areaH := t.h - headerRows - footerRows
	cx := px * float64(t.w) / float64(t.logicalW)
	cy := py*float64(areaH)/float64(t.logicalH) + headerRows
	return cx, cy
}

func (t *Terminal) cell(px, py float64) (int, int) {
	x, y := t.cellF(px, py)
	return int(math.Floor(x)), int(math.Floor(y))
}

func (t *Terminal) plot(x, y int, depth float64) {
	if x < 0 || x >= t.w || y < headerRows || y >= t.h-footerRows {
		return
	}
	i := y*t.w + x
	if depth >= t.zbuf[i] {
		return
	}
	t.zbuf[i] = depth
	r, g, b := t.shader.Color(depth).RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	t.s.SetContent(x, y, t.shader.Glyph(depth), nil, style)
}

func (t *Terminal) drawHelp() {
	boxW := 0
	for _, l := range helpLines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 4
	boxH := len(helpLines) + 2
	x0 := max(0, (t.w-boxW)/2)
	y0 := max(headerRows, (t.h-boxH)/2)

	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	blank := strings.Repeat(" ", boxW)
	for row := 0; row < boxH; row++ {
		drawText(t.s, x0, y0+row, style, blank)
	}
	for i, l := range helpLines {
		drawText(t.s, x0+2, y0+1+i, style, l)
	}
}

// drawText writes str from (x, y), advancing by each rune's display width.
func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
