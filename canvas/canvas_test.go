package canvas

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"spin3d/v2/config"
	"spin3d/v2/geom"
	"spin3d/v2/scene"
)

func lit(r *Raster, x, y int) bool {
	c := r.Image().RGBAAt(x, y)
	return c.R != 0 || c.G != 0 || c.B != 0
}

func TestShaderNearIsBrighter(t *testing.T) {
	s := NewShader()
	s.SetSize(100)
	if s.Level(-1000) != 0 || s.Level(1000) != 1 {
		t.Fatalf("levels not clamped")
	}
	nr, ng, nb := s.Color(-150).RGB255()
	fr, fg, fb := s.Color(150).RGB255()
	if int(nr)+int(ng)+int(nb) <= int(fr)+int(fg)+int(fb) {
		t.Fatalf("near %v,%v,%v not brighter than far %v,%v,%v", nr, ng, nb, fr, fg, fb)
	}
	if s.Glyph(-1000) != depthGlyphs[0] || s.Glyph(1000) != depthGlyphs[len(depthGlyphs)-1] {
		t.Fatalf("glyph ends wrong")
	}
}

func TestRasterCube(t *testing.T) {
	r := NewRaster(geom.DefaultCanvasWidth, geom.DefaultCanvasHeight, 100)
	cfg := config.Animation{Shape: geom.Cube, Size: 100}
	f, _ := scene.Tick(cfg, scene.State{})

	r.Clear()
	scene.Draw(r, f)
	if err := r.Show(); err != nil {
		t.Fatal(err)
	}
	// Front bottom-left corner and the middle of the edge leaving it.
	if !lit(r, 165, 125) || !lit(r, 290, 125) {
		t.Fatalf("cube edge not drawn")
	}
	if lit(r, 290, 250) {
		t.Fatalf("cube centre should be empty")
	}

	r.Clear()
	if lit(r, 165, 125) {
		t.Fatalf("clear left pixels behind")
	}
}

func TestRasterPointAndClip(t *testing.T) {
	r := NewRaster(10, 10, 50)
	r.Clear()
	r.Point(geom.Point2D{X: 3, Y: 4}, 0)
	for _, p := range [][2]int{{3, 4}, {4, 4}, {3, 5}, {4, 5}} {
		if !lit(r, p[0], p[1]) {
			t.Fatalf("dot missing %v", p)
		}
	}
	if lit(r, 5, 4) || lit(r, 2, 4) {
		t.Fatalf("dot too wide")
	}
	// Off-canvas drawing is clipped, not a panic.
	r.Point(geom.Point2D{X: 9, Y: 9}, 0)
	r.Line(geom.Point2D{X: -20, Y: -20}, geom.Point2D{X: 30, Y: 30}, 0)
	if !lit(r, 9, 9) || !lit(r, 0, 0) {
		t.Fatalf("clipped drawing lost in-bounds pixels")
	}
}

func TestRasterWritePNG(t *testing.T) {
	r := NewRaster(32, 24, 10)
	r.Clear()
	r.Line(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 31, Y: 23}, 0)

	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("bounds = %v", b)
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func screenText(s tcell.SimulationScreen) (string, int) {
	cells, w, h := s.GetContents()
	var b strings.Builder
	drawn := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			r := ' '
			if len(c.Runes) > 0 {
				r = c.Runes[0]
			}
			if y > 0 && y < h-1 && r != ' ' {
				drawn++
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String(), drawn
}

func TestTerminalDrawsFrame(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	anim := config.Animation{Shape: geom.Donut, Size: 100, Speed: 0.05, Axes: config.Axes{X: true}}
	store := config.NewStore(anim)
	term := NewTerminal(s, geom.DefaultCanvasWidth, geom.DefaultCanvasHeight, store)

	d := scene.NewDriver(scene.DefaultInterval, geom.DefaultCamera())
	if err := d.Step(store.Snapshot(), term); err != nil {
		t.Fatal(err)
	}

	text, drawn := screenText(s)
	if drawn == 0 {
		t.Fatalf("nothing drawn:\n%s", text)
	}
	if !strings.Contains(text, "Donut | size 100 | speed 0.05 | axes x | frame 1") {
		t.Fatalf("status line missing:\n%s", text)
	}
}

func TestTerminalHelpOverlay(t *testing.T) {
	s := newSimScreen(t, 80, 24)
	store := config.NewStore(config.Animation{Shape: geom.Cube, Size: 100})
	term := NewTerminal(s, geom.DefaultCanvasWidth, geom.DefaultCanvasHeight, store)

	term.ToggleHelp()
	term.Clear()
	if err := term.Show(); err != nil {
		t.Fatal(err)
	}
	text, _ := screenText(s)
	if !strings.Contains(text, "perspective divide") {
		t.Fatalf("help not shown:\n%s", text)
	}

	term.ToggleHelp()
	term.Clear()
	if err := term.Show(); err != nil {
		t.Fatal(err)
	}
	if text, _ := screenText(s); strings.Contains(text, "perspective divide") {
		t.Fatalf("help still shown")
	}
}

func TestTerminalKeepsNearestGlyph(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	store := config.NewStore(config.Animation{Shape: geom.Donut, Size: 100})
	term := NewTerminal(s, 10, 3, store)
	term.Clear()

	at := geom.Point2D{X: 4, Y: 1}
	term.Point(at, 100)
	term.Point(at, -100)
	term.Point(at, 50)
	s.Show()

	cells, w, _ := s.GetContents()
	got := cells[2*w+4].Runes
	if len(got) == 0 || got[0] != term.shader.Glyph(-100) {
		t.Fatalf("cell = %q, want nearest glyph %q", got, term.shader.Glyph(-100))
	}
}
