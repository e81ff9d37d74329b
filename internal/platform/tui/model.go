package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyrunner/internal/core"
	"github.com/vovakirdan/skyrunner/internal/registry"
	"github.com/vovakirdan/skyrunner/internal/storage"
)

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Hold    time.Duration // How long a direction stays held after a key event
	Logger  *log.Logger   // Nil discards log output
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	held     *heldKeys
	commands core.InputFrame // One-shot actions queued for the next tick
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load best score", "error", err)
		}
		cfg.BestScore = max(cfg.BestScore, best)
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:    store,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		held:     newHeldKeys(opts.Hold),
		commands: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.game.Reset(cfg)
	m.state = m.game.State()
	return m
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues one-shot commands and refreshes held directions.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "score", m.state.Score)
		return m, tea.Quit
	case action.Held():
		m.held.Press(action, now)
	case action != core.ActionNone:
		m.commands.Set(action)
	}
	return m, nil
}

// handleTick steps the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickSeconds()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	frame := m.commands.Clone()
	m.held.Apply(&frame, now)
	m.commands.Clear()

	result := m.game.Step(frame, dt)
	m.state = result.State
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventBoardRecycled:
		m.logger.Debug("board recycled", "speed", e.Speed)
	case core.EventRoundLost:
		m.held.Release()
		sum := core.RunSummary{Score: e.Score}
		if s, ok := m.game.(registry.Summarizer); ok {
			sum = s.Summary()
		}
		m.logger.Info("round lost", "score", sum.Score, "peak_speed", sum.PeakSpeed, "boards", sum.BoardsCleared)
		m.saveRun(sum)
	default:
		m.logger.Info(e.Kind.String(), "score", e.Score, "speed", e.Speed)
	}
}

func (m Model) saveRun(sum core.RunSummary) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), sum); err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen to ~/.skyrunner/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".skyrunner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game followed by the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
