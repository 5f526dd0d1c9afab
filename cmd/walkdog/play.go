package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/walk-the-dog/internal/audio"
	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/platform/tui"
	"github.com/vovakirdan/walk-the-dog/internal/registry"
	"github.com/vovakirdan/walk-the-dog/internal/runner"
	"github.com/vovakirdan/walk-the-dog/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk the dog",
	Long: `Start a run in the current terminal.

Controls:
  Right/D     - Start running
  Space/Up/W  - Jump
  Down/S      - Slide
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider gaps between segments
  normal - Default gaps, narrowing with the score
  hard   - Tighter gaps from the start
  fixed  - No progression

Examples:
  walkdog play
  walkdog play --difficulty hard
  walkdog play --seed 42 --no-audio
  walkdog play --config ./my-walk.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom walk config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable the jump sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("walkdog")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	walkCfg, err := config.LoadWalk(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		walkCfg = config.DefaultWalkConfig()
	}
	if flagNoAudio {
		walkCfg.Audio.Enabled = false
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	runner.SetLogger(logger)

	player := audio.New(walkCfg.Audio)
	if initErr := player.Init(); initErr != nil {
		logger.Warn("audio unavailable, playing silently", "error", initErr)
		runner.SetAudio(audio.Silent{})
	} else {
		runner.SetAudio(player)
		defer player.Close()
	}

	game, err := registry.Create(runner.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, tui.Options{
		Debug:  flagDebug,
		Logger: logger,
	})
}
