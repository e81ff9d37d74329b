package sim

import (
	"math"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// RoundEvent drives round transitions.
type RoundEvent int

const (
	RoundStart RoundEvent = iota
	RoundCollision
	RoundReset
)

// Effect is a side effect the owner of the round must apply after a
// successful transition.
type Effect int

const (
	EffectSpawnField Effect = iota
	EffectZeroScore
	EffectLaunch // scroll speed jumps to the start speed
	EffectFractureObstacle
	EffectClearField
	EffectRecenterPlayer
)

// Transition returns the next phase and the effects of applying ev in phase
// p. ok is false when ev is not accepted in p; the phase is then unchanged.
//
// Starting is gated on a non-positive score, so a lost round has to be
// reset before another one can begin.
func Transition(p Phase, ev RoundEvent, score float64) (next Phase, effects []Effect, ok bool) {
	switch {
	case p == PhaseIdle && ev == RoundStart && score <= 0:
		return PhasePlaying, []Effect{EffectSpawnField, EffectZeroScore, EffectLaunch}, true
	case p == PhasePlaying && ev == RoundCollision:
		return PhaseLost, []Effect{EffectFractureObstacle}, true
	case p == PhaseLost && ev == RoundReset:
		return PhaseIdle, []Effect{EffectClearField, EffectZeroScore, EffectRecenterPlayer}, true
	}
	return p, nil, false
}

// Round holds the phase, score and scroll speed.
type Round struct {
	Phase Phase
	Score float64
	Speed float64
}

// Tick accrues score and ramps speed while playing; otherwise the speed
// decays geometrically and snaps to zero at or below StopBelow.
func (r *Round) Tick(dt float64, cfg config.RoundConfig) {
	if r.Phase == PhasePlaying {
		r.Score += dt
		r.Speed += dt * cfg.Ramp
		return
	}
	if r.Speed > cfg.StopBelow {
		r.Speed *= math.Pow(cfg.DecayBase, dt)
	} else {
		r.Speed = 0
	}
}
