// Package sim is the Sky Runner simulation core: scrolling obstacle boards,
// collision, fracture debris, flight control and the round lifecycle.
//
// Everything lives in a Simulation value; there is no package state, so
// independent simulations can run side by side. Step is the only mutator
// and is meant to be called once per frame by the host.
package sim

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/skyrunner/internal/config"
)

// EventKind identifies a notable occurrence within a frame.
type EventKind int

const (
	EventStarted EventKind = iota
	EventCrashed
	EventReset
	EventRecycled
)

// Event is reported by Step.
type Event struct {
	Kind  EventKind
	Count int // Boards recycled, for EventRecycled
}

// Result is the outcome of one Step.
type Result struct {
	Phase  Phase
	Score  float64
	Speed  float64
	Events []Event
}

// Stats summarises the current or last round.
type Stats struct {
	TimeAlive     float64
	PeakSpeed     float64
	BoardsCleared int
	Fractures     int
}

// Simulation is the root of one game instance.
type Simulation struct {
	cfg    config.SkyrunnerConfig
	rng    *rand.Rand
	round  Round
	player *Player
	field  *Field
	trail  *Trail
	camera Camera
	struck *Obstacle
	stats  Stats
	best   int
}

// New creates an idle simulation. The seed drives pattern selection and
// trail layout.
func New(cfg config.SkyrunnerConfig, seed int64) *Simulation {
	rng := rand.New(rand.NewSource(seed))
	return &Simulation{
		cfg:    cfg,
		rng:    rng,
		player: NewPlayer(cfg.Player),
		trail:  NewTrail(cfg.Trail, rng),
		camera: NewCamera(cfg.Camera),
	}
}

// Step advances the simulation by dt seconds.
//
// Order within a frame: round commands, player integration, board scroll
// and recycle, collision, fracture, then score and speed. A frame that
// starts or resets a round does nothing else.
func (s *Simulation) Step(in Input, dt float64) Result {
	dt = math.Max(0, math.Min(dt, s.cfg.Round.MaxDT))

	if in.Reset && s.apply(RoundReset, nil) {
		return s.result([]Event{{Kind: EventReset}})
	}
	if in.Start && s.apply(RoundStart, nil) {
		return s.result([]Event{{Kind: EventStarted}})
	}

	var events []Event
	playing := s.round.Phase == PhasePlaying

	if playing {
		s.player.Update(in, dt)
	}

	if n := s.field.Advance(s.round.Speed, dt); n > 0 {
		if playing {
			s.stats.BoardsCleared += n
		}
		events = append(events, Event{Kind: EventRecycled, Count: n})
	}

	if playing {
		if hit := Collide(s.field.Boards(), s.player.Pos); hit != nil {
			s.apply(RoundCollision, hit)
			events = append(events, Event{Kind: EventCrashed})
		}
	}

	s.round.Tick(dt, s.cfg.Round)
	if s.round.Phase == PhasePlaying {
		s.stats.TimeAlive = s.round.Score
		s.stats.PeakSpeed = math.Max(s.stats.PeakSpeed, s.round.Speed)
		s.best = max(s.best, s.ScoreInt())
		s.trail.Update(dt)
	}

	return s.result(events)
}

// apply runs a round transition and its effects. It reports whether the
// event was accepted.
func (s *Simulation) apply(ev RoundEvent, struck *Obstacle) bool {
	next, effects, ok := Transition(s.round.Phase, ev, s.round.Score)
	if !ok {
		return false
	}
	for _, e := range effects {
		switch e {
		case EffectSpawnField:
			s.field = NewField(s.cfg.Field, s.cfg.Obstacle, s.rng)
			s.struck = nil
			s.stats = Stats{}
		case EffectZeroScore:
			s.round.Score = 0
		case EffectLaunch:
			s.round.Speed = s.cfg.Round.StartSpeed
			s.stats.PeakSpeed = s.round.Speed
		case EffectFractureObstacle:
			if struck != nil && struck.Fracture(s.cfg.Fragment) {
				s.stats.Fractures++
			}
			s.struck = struck
		case EffectClearField:
			s.field = nil
			s.struck = nil
		case EffectRecenterPlayer:
			s.player.Reset()
		}
	}
	s.round.Phase = next
	return true
}

func (s *Simulation) result(events []Event) Result {
	return Result{
		Phase:  s.round.Phase,
		Score:  s.round.Score,
		Speed:  s.round.Speed,
		Events: events,
	}
}

// Phase returns the round phase.
func (s *Simulation) Phase() Phase {
	return s.round.Phase
}

// Score returns the accumulated score in seconds survived.
func (s *Simulation) Score() float64 {
	return s.round.Score
}

// ScoreInt returns the score truncated for display.
func (s *Simulation) ScoreInt() int {
	return int(math.Floor(s.round.Score))
}

// Speed returns the current scroll speed.
func (s *Simulation) Speed() float64 {
	return s.round.Speed
}

// Player returns the player. Callers must treat it as read-only.
func (s *Simulation) Player() *Player {
	return s.player
}

// Boards returns the active boards, empty while idle.
func (s *Simulation) Boards() []*Board {
	return s.field.Boards()
}

// Struck returns the obstacle that ended the round, if any.
func (s *Simulation) Struck() *Obstacle {
	return s.struck
}

// Best returns the best whole score seen so far, including any recorded
// best passed to SetBest.
func (s *Simulation) Best() int {
	return s.best
}

// SetBest seeds the best score from earlier sessions. Lower values are
// ignored.
func (s *Simulation) SetBest(n int) {
	s.best = max(s.best, n)
}

// Stats returns the statistics of the current or last round.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Camera returns the camera.
func (s *Simulation) Camera() Camera {
	return s.camera
}

// View returns this frame's published view transform.
func (s *Simulation) View() mgl64.Mat4 {
	return s.camera.View(s.player.Pos)
}

// Messages returns the text lines to show for the current phase: the live
// score while playing, a prompt while idle, the result after a loss. Idle
// and lost screens carry the best score once there is one.
func (s *Simulation) Messages() []string {
	var lines []string
	switch s.round.Phase {
	case PhasePlaying:
		return []string{strconv.Itoa(s.ScoreInt())}
	case PhaseLost:
		lines = []string{"YOU LOSE!", "SCORE: " + strconv.Itoa(s.ScoreInt())}
	default:
		lines = []string{"ENTER TO START"}
	}
	if s.best > 0 {
		lines = append(lines, "BEST: "+strconv.Itoa(s.best))
	}
	return lines
}
