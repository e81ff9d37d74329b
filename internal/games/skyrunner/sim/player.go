package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Input is the per-frame control state read by the simulation.
// Directions are held flags; Start and Reset are level-triggered commands.
type Input struct {
	Up, Down, Left, Right bool
	Start                 bool
	Reset                 bool
}

// Player owns the flyer's position and orientation. There is no separate
// velocity: yaw and pitch steer the lateral drift directly.
type Player struct {
	Pos   mgl64.Vec3
	Yaw   float64 // Horizontal rotation, positive banks left
	Pitch float64 // Vertical rotation, negative while climbing
	Tilt  float64 // Roll that follows yaw

	cfg config.PlayerConfig
}

// NewPlayer creates a player at the origin.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{cfg: cfg}
}

// Reset recenters the player and levels it.
func (p *Player) Reset() {
	p.Pos = mgl64.Vec3{}
	p.Yaw, p.Pitch, p.Tilt = 0, 0, 0
}

// Update integrates one frame of flight from the held directions.
func (p *Player) Update(in Input, dt float64) {
	c := p.cfg
	rate := c.BankLimit * c.TurnSpeed * dt
	b := c.Bounds

	if in.Up {
		p.Pos[1] = math.Min(p.Pos.Y()+c.Speed*dt, b.MaxY)
		p.Pitch = math.Max(p.Pitch-rate, -c.BankLimit)
	}
	if in.Down {
		p.Pos[1] = math.Max(p.Pos.Y()-c.Speed*dt, b.MinY)
		p.Pitch = math.Min(p.Pitch+rate, c.BankLimit)
	}
	if !in.Up && !in.Down {
		p.Pitch = ease(p.Pitch, c.Decay, dt, c.SnapEpsilon)
	}

	tiltRate := c.TiltRate * c.TurnSpeed * dt
	if in.Left && p.Yaw < c.BankLimit {
		p.Yaw += rate
		p.Tilt += tiltRate
	}
	if in.Right && p.Yaw > -c.BankLimit {
		p.Yaw -= rate
		p.Tilt -= tiltRate
	}
	if !in.Left && !in.Right {
		p.Yaw = ease(p.Yaw, c.Decay, dt, c.SnapEpsilon)
		p.Tilt = ease(p.Tilt, c.TiltDecay, dt, c.SnapEpsilon)
	}

	p.Pos[0] -= c.Speed * math.Sin(p.Yaw) * dt
	p.Pos[0] = math.Min(math.Max(p.Pos.X(), b.MinX), b.MaxX)
	p.Pos[1] += c.Speed * math.Sin(p.Pitch) * dt
	p.Pos[1] = math.Min(math.Max(p.Pos.Y(), b.MinY), b.MaxY)
}

// ease decays an angle toward zero proportionally to its magnitude and
// snaps it to exactly zero below epsilon.
func ease(angle, rate, dt, epsilon float64) float64 {
	if math.Abs(angle) < epsilon {
		return 0
	}
	k := rate * dt
	if k > 1 {
		k = 1
	}
	return angle - angle*k
}

// Transform returns the model transform used to draw the flyer: the model
// is turned to face away from the camera, pitched slightly nose-down, then
// yawed, pitched and rolled by the control state.
func (p *Player) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(p.Pos.X(), p.Pos.Y(), p.Pos.Z()).
		Mul4(mgl64.HomogRotate3DY(math.Pi)).
		Mul4(mgl64.HomogRotate3DX(math.Pi / 2)).
		Mul4(mgl64.HomogRotate3DX(-math.Pi / 10)).
		Mul4(mgl64.HomogRotate3DY(p.Yaw)).
		Mul4(mgl64.HomogRotate3DX(p.Pitch)).
		Mul4(mgl64.HomogRotate3DZ(p.Tilt))
}
