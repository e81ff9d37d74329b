package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Board geometry.
const (
	GridSize  = 5
	CellCount = GridSize * GridSize
)

// Pattern selects which cells of a board are live obstacles.
type Pattern [CellCount]bool

// Patterns is the fixed catalog boards draw from.
var Patterns = []Pattern{
	mask("11111" + "10001" + "10001" + "10001" + "11111"),
	mask("00000" + "01110" + "01010" + "01110" + "00000"),
	mask("00000" + "01110" + "11011" + "01110" + "00000"),
	mask("00000" + "01110" + "01111" + "01110" + "00000"),
	mask("11000" + "01110" + "01010" + "01110" + "00011"),
	mask("00110" + "01110" + "01010" + "01110" + "01100"),
	mask("01010" + "01110" + "01010" + "01110" + "01010"),
}

func mask(s string) Pattern {
	var p Pattern
	for i := 0; i < CellCount; i++ {
		p[i] = s[i] == '1'
	}
	return p
}

// Active returns the number of enabled cells.
func (p Pattern) Active() int {
	n := 0
	for _, on := range p {
		if on {
			n++
		}
	}
	return n
}

// Board is a 5x5 grid of obstacles sharing one pattern and one scroll
// position. All 25 obstacles always exist; the pattern decides which ones
// are drawn and tested.
type Board struct {
	z         float64
	prevZ     float64 // Scroll position before the last Advance
	pattern   int
	obstacles [CellCount]*Obstacle
	field     config.FieldConfig
	hitbox    config.ObstacleConfig
	rng       *rand.Rand
}

// NewBoard creates a board at depth z with a random pattern.
func NewBoard(z float64, field config.FieldConfig, hitbox config.ObstacleConfig, rng *rand.Rand) *Board {
	b := &Board{
		z:       z,
		prevZ:   z,
		field:   field,
		hitbox:  hitbox,
		rng:     rng,
		pattern: rng.Intn(len(Patterns)),
	}
	rot := mgl64.HomogRotate3DZ(mgl64.DegToRad(field.GridRotation))
	for i := range b.obstacles {
		gx, gy := b.cellOffset(i)
		b.obstacles[i] = NewObstacle(rot.Mul4(mgl64.Translate3D(gx, gy, z)))
	}
	return b
}

// cellOffset returns the unrotated grid position of cell i.
func (b *Board) cellOffset(i int) (float64, float64) {
	col := float64(i % GridSize)
	row := float64(i / GridSize)
	return b.field.GridOriginX + col*b.field.GridSpacing, b.field.GridOriginY - row*b.field.GridSpacing
}

// Z returns the board's scroll position.
func (b *Board) Z() float64 {
	return b.z
}

// PatternIndex returns the index into Patterns currently in use.
func (b *Board) PatternIndex() int {
	return b.pattern
}

// Pattern returns the active pattern.
func (b *Board) Pattern() Pattern {
	return Patterns[b.pattern]
}

// Obstacle returns the obstacle in cell i.
func (b *Board) Obstacle(i int) *Obstacle {
	return b.obstacles[i]
}

// Enabled reports whether cell i is live under the current pattern.
func (b *Board) Enabled(i int) bool {
	return Patterns[b.pattern][i]
}

// Advance scrolls the board and every obstacle toward the camera.
func (b *Board) Advance(speed, dt float64) {
	for _, o := range b.obstacles {
		o.Advance(speed, dt)
	}
	b.prevZ = b.z
	b.z += speed * dt
}

// MaybeRecycle sends the board far behind the field once it has passed the
// recycle threshold, with a freshly drawn pattern and every obstacle intact
// again. It reports whether a recycle happened.
func (b *Board) MaybeRecycle() bool {
	if b.z < b.field.RecycleThreshold {
		return false
	}
	b.z -= b.field.RecycleOffset
	b.pattern = b.rng.Intn(len(Patterns))
	for _, o := range b.obstacles {
		o.shift(-b.field.RecycleOffset)
		o.restore()
	}
	b.prevZ = b.z
	return true
}

// InDepthWindow reports whether the board is at the player's depth plane or
// swept across it during the last Advance. A fast board can step over the
// whole window in one frame.
func (b *Board) InDepthWindow() bool {
	w := b.field.DepthWindow
	lo, hi := math.Min(b.prevZ, b.z), math.Max(b.prevZ, b.z)
	return lo <= w && hi >= -w
}

// TestCollision returns the first live, intact obstacle whose hit box holds
// p, or nil. Boards that neither sit in nor crossed the depth window never
// collide.
func (b *Board) TestCollision(p mgl64.Vec3) *Obstacle {
	if !b.InDepthWindow() {
		return nil
	}
	pattern := Patterns[b.pattern]
	for i, o := range b.obstacles {
		if !pattern[i] || o.Fractured() {
			continue
		}
		if o.Hit(p, b.hitbox.HalfWidth, b.hitbox.HalfHeight) {
			return o
		}
	}
	return nil
}
