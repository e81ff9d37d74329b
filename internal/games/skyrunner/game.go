// Package skyrunner wires the Sky Runner simulation into the arcade
// platform: it loads configuration, maps platform actions to flight
// controls and draws the scene into a character screen.
package skyrunner

import (
	"fmt"

	"github.com/vovakirdan/skyrunner/internal/config"
	"github.com/vovakirdan/skyrunner/internal/core"
	"github.com/vovakirdan/skyrunner/internal/games/skyrunner/sim"
	"github.com/vovakirdan/skyrunner/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "skyrunner"

// Game implements registry.Game on top of sim.Simulation.
type Game struct {
	sim     *sim.Simulation
	cfg     config.SkyrunnerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the configured pacing.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Sky Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Runner"
}

// Reset loads configuration and creates a fresh idle simulation.
// A config that fails to load falls back to the built-in defaults; the CLI
// validates the file before a session starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultSkyrunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.sim = sim.New(cfg, runtime.Seed)
	g.sim.SetBest(runtime.BestScore)
	g.paused = false
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}

	// Pausing only makes sense mid-round
	if in.Has(core.ActionPause) && g.sim.Phase() == sim.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.sim.Step(controls(in), dt)

	var events []core.Event
	for _, e := range res.Events {
		kind, ok := eventKinds[e.Kind]
		if !ok {
			continue
		}
		events = append(events, core.Event{Kind: kind, Score: g.sim.ScoreInt(), Speed: res.Speed})
	}
	return core.StepResult{State: g.State(), Events: events}
}

var eventKinds = map[sim.EventKind]core.EventKind{
	sim.EventStarted:  core.EventRoundStarted,
	sim.EventCrashed:  core.EventRoundLost,
	sim.EventReset:    core.EventRoundReset,
	sim.EventRecycled: core.EventBoardRecycled,
}

// controls maps platform actions to the simulation's input record.
func controls(in core.InputFrame) sim.Input {
	return sim.Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Start: in.Has(core.ActionStart),
		Reset: in.Has(core.ActionRestart),
	}
}

// Render draws the scene and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	g.sim.Draw(newTerminal(dst, g.sim.Camera()))

	msgs := g.sim.Messages()
	switch g.sim.Phase() {
	case sim.PhasePlaying:
		dst.DrawTextCentered(0, " "+msgs[0]+" ", core.ColorBrightYellow)
		dst.DrawTextColored(1, 0, fmt.Sprintf("SPD %.0f", g.sim.Speed()), core.ColorGray)
		if g.paused {
			drawMessageBox(dst, core.ColorYellow, "PAUSED", "P to resume")
		}
	case sim.PhaseLost:
		drawMessageBox(dst, core.ColorBrightRed, append(msgs, "R to reset")...)
	default:
		drawMessageBox(dst, core.ColorBrightGreen, msgs...)
	}
}

// drawMessageBox draws a framed box, one line per message, centered
// horizontally in the upper part of the screen so the player stays visible.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	box := dst.Bounds().Centered(width+4, len(lines)+2)
	box.Y = core.Max(dst.Height()/4-box.H/2, 1)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(box.W-len(l))/2, box.Y+1+i, l, c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Idle: true}
	}
	return core.GameState{
		Score:    g.sim.ScoreInt(),
		GameOver: g.sim.Phase() == sim.PhaseLost,
		Paused:   g.paused,
		Idle:     g.sim.Phase() == sim.PhaseIdle,
	}
}

// Summary describes the current or last round for the scoreboard.
func (g *Game) Summary() core.RunSummary {
	if g.sim == nil {
		return core.RunSummary{}
	}
	st := g.sim.Stats()
	return core.RunSummary{
		Score:         g.sim.ScoreInt(),
		PeakSpeed:     st.PeakSpeed,
		BoardsCleared: st.BoardsCleared,
		Duration:      st.TimeAlive,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
