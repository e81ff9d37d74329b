package skyrunner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/core"
	"github.com/vovakirdan/skyrunner/internal/games/skyrunner/sim"
)

// Shading by view distance, nearest first.
var shades = []struct {
	within float64
	r      rune
}{
	{80, '█'},
	{180, '▓'},
	{300, '▒'},
	{math.Inf(1), '░'},
}

// Corners of the unit cube every solid shape is modelled on.
var cubeCorners = func() [8]mgl64.Vec4 {
	var c [8]mgl64.Vec4
	for i := range c {
		c[i] = mgl64.Vec4{
			float64(i&1)*2 - 1,
			float64(i>>1&1)*2 - 1,
			float64(i>>2&1)*2 - 1,
			1,
		}
	}
	return c
}()

// terminal is a sim.Renderer that rasterizes draw calls into a character
// screen. Solids become their projected bounding rectangle; the player and
// trail are single glyphs. A per-cell depth buffer keeps the nearest shape.
type terminal struct {
	dst   *core.Screen
	proj  mgl64.Mat4
	near  float64
	depth []float64
}

func newTerminal(dst *core.Screen, cam sim.Camera) *terminal {
	w, h := dst.Width(), dst.Height()
	// Terminal cells are about twice as tall as they are wide.
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h) / 2
	}
	depth := make([]float64, w*h)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &terminal{
		dst:   dst,
		proj:  cam.Projection(aspect),
		near:  cam.Near(),
		depth: depth,
	}
}

// Draw implements sim.Renderer.
func (t *terminal) Draw(view mgl64.Mat4, shape sim.Shape, transform mgl64.Mat4, mat sim.Material) {
	mvp := t.proj.Mul4(view).Mul4(transform)
	color := core.NearestColor(mat.Color.X(), mat.Color.Y(), mat.Color.Z())

	switch shape {
	case sim.ShapeCube, sim.ShapeFragment:
		t.solid(mvp, color, shape == sim.ShapeFragment)
	case sim.ShapePlayer:
		x, y, w, ok := t.project(mvp, mgl64.Vec4{0, 0, 0, 1})
		if !ok {
			return
		}
		for dx, r := range []rune{'◄', '▲', '►'} {
			t.plot(x+dx-1, y, w, r, color)
		}
	case sim.ShapeTrail:
		if mat.Color.W() < 0.2 {
			return
		}
		x, y, w, ok := t.project(mvp, mgl64.Vec4{0, 0, 0, 1})
		if ok {
			t.plot(x, y, w, '·', color)
		}
	}
}

// solid fills the screen rectangle covering the projected unit cube.
// Shapes crossing the near plane are dropped.
func (t *terminal) solid(mvp mgl64.Mat4, color core.Color, debris bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	nearest := math.Inf(1)

	for _, c := range cubeCorners {
		clip := mvp.Mul4x1(c)
		if clip.W() <= t.near {
			return
		}
		sx, sy := t.toScreen(clip)
		minX, maxX = math.Min(minX, sx), math.Max(maxX, sx)
		minY, maxY = math.Min(minY, sy), math.Max(maxY, sy)
		nearest = math.Min(nearest, clip.W())
	}

	r := shade(nearest)
	if debris {
		r = '▒'
	}
	x0 := core.Max(int(math.Floor(minX)), 0)
	y0 := core.Max(int(math.Floor(minY)), 0)
	x1 := core.Min(int(math.Ceil(maxX)), t.dst.Width())
	y1 := core.Min(int(math.Ceil(maxY)), t.dst.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.plot(x, y, nearest, r, color)
		}
	}
}

// project maps a model-space point to a screen cell and its view depth.
func (t *terminal) project(mvp mgl64.Mat4, p mgl64.Vec4) (x, y int, depth float64, ok bool) {
	clip := mvp.Mul4x1(p)
	if clip.W() <= t.near {
		return 0, 0, 0, false
	}
	sx, sy := t.toScreen(clip)
	return int(math.Floor(sx)), int(math.Floor(sy)), clip.W(), true
}

func (t *terminal) toScreen(clip mgl64.Vec4) (float64, float64) {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return (ndcX + 1) / 2 * float64(t.dst.Width()), (1 - ndcY) / 2 * float64(t.dst.Height())
}

// plot writes a cell if it is nearer than what is already there.
func (t *terminal) plot(x, y int, depth float64, r rune, c core.Color) {
	if x < 0 || y < 0 || x >= t.dst.Width() || y >= t.dst.Height() {
		return
	}
	i := y*t.dst.Width() + x
	if depth >= t.depth[i] {
		return
	}
	t.depth[i] = depth
	t.dst.SetCell(x, y, r, c)
}

func shade(depth float64) rune {
	for _, s := range shades {
		if depth < s.within {
			return s.r
		}
	}
	return '░'
}
