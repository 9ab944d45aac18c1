package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/games/slingshot"
	"github.com/vovakirdan/tui-slingshot/internal/platform/tui"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
	"github.com/vovakirdan/tui-slingshot/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Mouse drag      - Grab the sling near its anchor, pull, release to fire
  Space           - Grab the sling / fire
  Arrows / WASD   - Pull the sling while aiming
  Esc             - Let go without firing
  P               - Pause
  R               - Restart the run
  ?               - Toggle help
  Q / Ctrl+C      - Quit

Difficulty options:
  easy   - More shots, bigger targets, stronger sling
  normal - Config as loaded
  hard   - Fewer shots, smaller targets, obstacles and motion earlier

Examples:
  slingshot play
  slingshot play --difficulty easy
  slingshot play --level 5 --seed 42
  slingshot play --config ./my-slingshot.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'slingshot list')", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	// stderr would draw over the alt screen, so logs are dropped unless
	// --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, gameID)
	if err != nil {
		return err
	}
	defer closeLog()

	slingshot.SetConfigPath(flagConfig)
	slingshot.SetDifficultyPreset(flagDifficulty)
	slingshot.SetStartLevel(flagLevel)
	slingshot.SetLogger(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores tui.ScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: scores will not be saved: %v\n", err)
	} else {
		defer store.Close()
		scores = store
	}

	if err := tui.Run(game, scores, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
