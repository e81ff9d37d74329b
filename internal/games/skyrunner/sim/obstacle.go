package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// ObstacleState is the lifecycle state of a single obstacle cell.
type ObstacleState int

const (
	ObstacleIntact ObstacleState = iota
	ObstacleFractured
)

// String returns a human-readable name for the state.
func (s ObstacleState) String() string {
	switch s {
	case ObstacleIntact:
		return "intact"
	case ObstacleFractured:
		return "fractured"
	default:
		return "unknown"
	}
}

// FragmentCount is the number of pieces an obstacle breaks into.
const FragmentCount = 4

// quadrants lists the offset and drift sign of each fragment, in spawn order:
// lower-left, lower-right, upper-left, upper-right.
var quadrants = [FragmentCount]struct {
	dx, dy float64
	sx, sy float64
}{
	{0, 0, -1, -1},
	{1, 0, 1, -1},
	{0, 1, -1, 1},
	{1, 1, 1, 1},
}

// Fragment is one quarter of a fractured obstacle. Its velocity and spin are
// fixed at creation; only position and angle integrate.
type Fragment struct {
	Pos    mgl64.Vec3
	Vel    mgl64.Vec3
	Angle  float64
	Axis   mgl64.Vec3 // Unit rotation axis
	Width  float64
	Height float64

	velScale float64
	spinRate float64
}

func newFragment(origin mgl64.Vec3, dx, dy, sx, sy float64, cfg config.FragmentConfig) Fragment {
	return Fragment{
		Pos:      mgl64.Vec3{origin.X() + dx, origin.Y() + dy, origin.Z()},
		Vel:      mgl64.Vec3{sx * cfg.Spread, sy * cfg.Spread, cfg.DriftZ},
		Axis:     mgl64.Vec3{sx, -sy, 0}.Normalize(),
		Width:    cfg.Width,
		Height:   cfg.Height,
		velScale: cfg.VelocityScale,
		spinRate: cfg.SpinRate,
	}
}

// Advance integrates the fragment by one explicit Euler step. Lateral
// velocity is divided by the configured scale; z drift is applied as is.
func (f *Fragment) Advance(speed, dt float64) {
	step := speed * dt
	scale := f.velScale
	if scale == 0 {
		scale = 1
	}
	f.Pos[0] += f.Vel.X() / scale * step
	f.Pos[1] += f.Vel.Y() / scale * step
	f.Pos[2] += f.Vel.Z() * step
	f.Angle += f.spinRate * step
}

// Transform returns the fragment's world transform: a thin slab centered on
// its quadrant, spun about its axis.
func (f Fragment) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(f.Pos.X()-f.Width/2, f.Pos.Y()-f.Height/2, f.Pos.Z()).
		Mul4(mgl64.HomogRotate3D(f.Angle, f.Axis)).
		Mul4(mgl64.Scale3D(f.Width/2, f.Height/2, 0.1))
}

// Obstacle is a single destructible cell of a board.
// Fragments exist if and only if the obstacle is fractured.
type Obstacle struct {
	transform mgl64.Mat4
	state     ObstacleState
	fragments []Fragment
}

// NewObstacle creates an intact obstacle with the given world transform.
func NewObstacle(transform mgl64.Mat4) *Obstacle {
	return &Obstacle{transform: transform}
}

// Transform returns the obstacle's world transform.
func (o *Obstacle) Transform() mgl64.Mat4 {
	return o.transform
}

// Position returns the translation part of the transform.
func (o *Obstacle) Position() mgl64.Vec3 {
	return o.transform.Col(3).Vec3()
}

// State returns the obstacle's lifecycle state.
func (o *Obstacle) State() ObstacleState {
	return o.state
}

// Fractured reports whether the obstacle has broken apart.
func (o *Obstacle) Fractured() bool {
	return o.state == ObstacleFractured
}

// Fragments returns a copy of the obstacle's fragments (nil while intact).
func (o *Obstacle) Fragments() []Fragment {
	if o.fragments == nil {
		return nil
	}
	out := make([]Fragment, len(o.fragments))
	copy(out, o.fragments)
	return out
}

// Advance scrolls the obstacle along z and drifts its debris.
func (o *Obstacle) Advance(speed, dt float64) {
	o.shift(speed * dt)
	if o.state == ObstacleFractured {
		for i := range o.fragments {
			o.fragments[i].Advance(speed, dt)
		}
	}
}

// shift moves the obstacle along its local z axis. The grid rotation is
// about z, so local and world z coincide.
func (o *Obstacle) shift(dz float64) {
	o.transform = o.transform.Mul4(mgl64.Translate3D(0, 0, dz))
}

// restore makes the obstacle whole again and drops its debris.
func (o *Obstacle) restore() {
	o.state = ObstacleIntact
	o.fragments = nil
}

// Hit reports whether p lies inside the obstacle's hit box in x/y.
func (o *Obstacle) Hit(p mgl64.Vec3, halfW, halfH float64) bool {
	pos := o.Position()
	return math.Abs(p.X()-pos.X()) <= halfW && math.Abs(p.Y()-pos.Y()) <= halfH
}

// Fracture breaks an intact obstacle into four fragments. It reports whether
// a transition happened; calling it again is a no-op.
func (o *Obstacle) Fracture(cfg config.FragmentConfig) bool {
	if o.state == ObstacleFractured {
		return false
	}
	origin := o.Position()
	frags := make([]Fragment, 0, FragmentCount)
	for _, q := range quadrants {
		frags = append(frags, newFragment(origin, q.dx, q.dy, q.sx, q.sy, cfg))
	}
	o.fragments = frags
	o.state = ObstacleFractured
	return true
}
