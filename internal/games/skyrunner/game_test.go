package skyrunner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/skyrunner/internal/core"
	"github.com/vovakirdan/skyrunner/internal/games/skyrunner/sim"
	"github.com/vovakirdan/skyrunner/internal/registry"
)

const tick = 1.0 / 60.0

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// useConfig points the game at a temporary YAML file for the test's duration.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyrunner.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

// deadly makes every obstacle wide enough that the first board to reach the
// player ends the round.
const deadly = "obstacle:\n  half_width: 100\n  half_height: 100\n"

func playUntilLost(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 1200; i++ {
		res := g.Step(core.NewInputFrame(), tick)
		if hasEvent(res, core.EventRoundLost) {
			return res
		}
	}
	t.Fatal("round never ended")
	return core.StepResult{}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("%q is not registered: %v", ID, err)
	}
	if g.Title() != "Sky Runner" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameStartsIdle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	st := g.State()
	if !st.Idle || st.GameOver || st.Score != 0 {
		t.Errorf("state after reset = %+v, expected idle", st)
	}
}

func TestGameStartEvent(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(frameOf(core.ActionStart), tick)
	if !hasEvent(res, core.EventRoundStarted) {
		t.Fatalf("expected round_started, got %v", res.Events)
	}
	if res.State.Idle {
		t.Error("state still idle after start")
	}
	if res.Events[0].Speed != 80 {
		t.Errorf("start event speed = %v, expected 80", res.Events[0].Speed)
	}
}

func TestControlsMapping(t *testing.T) {
	in := controls(frameOf(core.ActionUp, core.ActionLeft, core.ActionRestart))
	want := sim.Input{Up: true, Left: true, Reset: true}
	if in != want {
		t.Errorf("controls() = %+v, expected %+v", in, want)
	}
	if controls(frameOf(core.ActionStart)) != (sim.Input{Start: true}) {
		t.Error("start action should map to Start")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// Pause is ignored before a round starts
	g.Step(frameOf(core.ActionPause), tick)
	if g.State().Paused {
		t.Fatal("paused while idle")
	}

	g.Step(frameOf(core.ActionStart), tick)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	g.Step(frameOf(core.ActionPause), tick)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	score := g.Sim().Score()
	for i := 0; i < 30; i++ {
		g.Step(frameOf(core.ActionLeft), tick)
	}
	if g.Sim().Score() != score {
		t.Errorf("score moved while paused: %v -> %v", score, g.Sim().Score())
	}
	if g.Sim().Player().Yaw != 0 {
		t.Error("player steered while paused")
	}

	g.Step(frameOf(core.ActionPause), tick)
	if g.State().Paused {
		t.Error("expected resume")
	}
}

func TestGameLossAndReset(t *testing.T) {
	useConfig(t, deadly)
	g := New()
	g.Reset(testRuntime())

	g.Step(frameOf(core.ActionStart), tick)
	res := playUntilLost(t, g)
	if !res.State.GameOver {
		t.Fatalf("state after crash = %+v", res.State)
	}

	sum := g.Summary()
	if sum.Score != res.State.Score || sum.Duration <= 3 || sum.PeakSpeed <= 80 {
		t.Errorf("summary = %+v", sum)
	}

	// Start does nothing until the round is reset
	res = g.Step(frameOf(core.ActionStart), tick)
	if hasEvent(res, core.EventRoundStarted) || !res.State.GameOver {
		t.Errorf("start after loss: %+v", res)
	}

	res = g.Step(frameOf(core.ActionRestart), tick)
	if !hasEvent(res, core.EventRoundReset) || !res.State.Idle || res.State.Score != 0 {
		t.Errorf("reset after loss: %+v", res)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(testRuntime())
	res := g.Step(frameOf(core.ActionStart), tick)
	if res.Events[0].Speed != 110 {
		t.Errorf("hard start speed = %v, expected 110", res.Events[0].Speed)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.RunSummary {
		g := New()
		g.Reset(testRuntime())
		g.Step(frameOf(core.ActionStart), tick)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%50 < 20 {
				in.Set(core.ActionLeft)
			}
			if i%90 < 15 {
				in.Set(core.ActionUp)
			}
			if g.Step(in, 0.05).State.GameOver {
				break
			}
		}
		return g.Summary()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}

func TestRenderIdle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "ENTER TO START") {
		t.Errorf("idle screen lacks prompt:\n%s", screen.String())
	}
	if !strings.Contains(screen.String(), "▲") {
		t.Error("idle screen should show the player")
	}
}

func TestRenderIdleShowsBest(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.BestScore = 12
	g.Reset(rt)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BEST: 12") {
		t.Errorf("idle screen lacks the recorded best:\n%s", screen.String())
	}

	g.Reset(testRuntime())
	g.Render(screen)
	if strings.Contains(screen.String(), "BEST") {
		t.Error("no best line expected without history")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameOf(core.ActionStart), tick)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "SPD 80") {
		t.Errorf("HUD lacks speed:\n%s", out)
	}
	if !strings.ContainsAny(out, "░▒▓█") {
		t.Errorf("no obstacles drawn:\n%s", out)
	}
}

func TestRenderLost(t *testing.T) {
	useConfig(t, deadly)
	g := New()
	g.Reset(testRuntime())
	g.Step(frameOf(core.ActionStart), tick)
	playUntilLost(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"YOU LOSE!", "SCORE: ", "R to reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("lost screen lacks %q:\n%s", want, out)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameOf(core.ActionStart), tick)

	// Must not panic on degenerate sizes
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
