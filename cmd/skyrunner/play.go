package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyrunner/internal/config"
	"github.com/vovakirdan/skyrunner/internal/core"
	"github.com/vovakirdan/skyrunner/internal/games/skyrunner"
	"github.com/vovakirdan/skyrunner/internal/platform/tui"
	"github.com/vovakirdan/skyrunner/internal/registry"
	"github.com/vovakirdan/skyrunner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start flying",
	Long: `Start a Sky Runner session.

Controls:
  W/S, Up/Down      - Climb / dive
  A/D, Left/Right   - Bank left / right
  Enter             - Start a round
  R                 - Reset after a crash
  P                 - Pause
  Ctrl+S            - Save a screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, gentle acceleration
  normal - Default pacing
  hard   - Fast start, steep acceleration
  fixed  - Configured start speed, no acceleration

Examples:
  skyrunner play
  skyrunner play --difficulty easy
  skyrunner play --seed 42
  skyrunner play --config ./my-skyrunner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// validatePlayFlags rejects flag values that cannot start a session.
func validatePlayFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := validatePlayFlags(); err != nil {
		return err
	}

	// Surface config errors before the game takes over the terminal
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	skyrunner.SetConfigPath(flagConfig)
	skyrunner.SetDifficultyPreset(flagDifficulty)

	logger, closer, err := newLogger("skyrunner")
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(skyrunner.ID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without persistence
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Hold:   time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Logger: logger,
	}
	if err := tui.Run(game, store, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
