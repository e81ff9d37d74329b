package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Particle is one speed streak. Along runs from 0 down to -Length and then
// wraps; Lateral and Height are fixed offsets from the player.
type Particle struct {
	Along   float64
	Lateral float64
	Height  float64
	Speed   float64
}

// Color fades from orange at the player to transparent red at the tail.
func (p Particle) Color() mgl64.Vec4 {
	return mgl64.Vec4{1, -p.Along / 4.5, 0, 1 + p.Along/2}
}

// Trail is the cosmetic streak system that follows the player.
type Trail struct {
	particles []Particle
	length    float64
}

// NewTrail spawns cfg.Particles streaks with random offsets and speeds.
func NewTrail(cfg config.TrailConfig, rng *rand.Rand) *Trail {
	t := &Trail{
		particles: make([]Particle, cfg.Particles),
		length:    cfg.Length,
	}
	for i := range t.particles {
		t.particles[i] = Particle{
			Lateral: cfg.Spread * (2*rng.Float64() - 1),
			Height:  cfg.Spread * (2*rng.Float64() - 1),
			Speed:   cfg.MaxSpeed + rng.Float64()*(cfg.MinSpeed-cfg.MaxSpeed),
		}
	}
	return t
}

// Update advances every streak and wraps the ones past the tail.
func (t *Trail) Update(dt float64) {
	for i := range t.particles {
		p := &t.particles[i]
		p.Along += dt * p.Speed
		if p.Along < -t.length {
			p.Along = 0
		}
	}
}

// Particles returns the current streaks.
func (t *Trail) Particles() []Particle {
	return t.particles
}

// Transform returns the world transform of a streak trailing the player.
func (p Particle) Transform(player mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(player.X()+p.Lateral, player.Y()+p.Height, player.Z()-p.Along).
		Mul4(mgl64.Scale3D(0.05, 0.05, 0.05))
}
