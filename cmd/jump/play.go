package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jump/internal/audio"
	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/games/jump"
	"github.com/vovakirdan/tui-jump/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space      - Start charging, press again to jump
  Up/Down    - Move in menus
  Enter      - Select
  P/Esc      - Pause
  R          - Play again (after game over)
  M          - Mute / unmute
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  jump play
  jump play --difficulty easy
  jump play --config ./my-jump.yaml
  jump play --mute --log-file jump.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound effects muted")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

// loadGameConfig loads the config and applies the --difficulty preset.
func loadGameConfig() (config.JumpConfig, error) {
	cfg, err := config.LoadJump(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyJumpPreset(&cfg, preset)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	opts := []jump.Option{jump.WithLogger(logger)}
	var modelOpts []tui.ModelOption
	sound := audio.NewManager(flagVolume)
	if initErr := sound.Init(); initErr != nil {
		logger.Warn("sound disabled", "error", initErr)
	} else {
		defer sound.Close()
		sound.SetMuted(flagMute)
		opts = append(opts, jump.WithSound(sound))
		modelOpts = append(modelOpts, tui.WithMuter(sound))
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	logger.Info("starting",
		"size", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
		"fps", runtime.TickRate,
		"seed", runtime.Seed,
		"muted", flagMute,
	)
	if err := tui.Run(jump.New(cfg, opts...), runtime, logger, modelOpts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
