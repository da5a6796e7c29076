package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/platform/window"
	"github.com/vovakirdan/arcade-motion/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a desktop window.

The window reads real key-held state and the exact mouse position,
so steering responds the moment a key goes down or up.

Controls:
  Arrows/WASD  - Steer and thrust
  Mouse        - Aim; hold the left button (or Space) to fire
  P            - Pause
  R            - Restart the scenario
  F            - Toggle the FPS counter
  Esc/Q        - Close the window

Examples:
  arcade window tank
  arcade window flyer --sound --scale 1.5`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	windowCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the FPS counter")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.CreateConfigured(gameID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sound, closeSound := openAudio(flagSound)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	logger.Debug("opening window", "game", gameID, "tps", cfg.TickRate)
	runErr := window.Run(game, cfg, window.Options{
		Store:   store,
		Audio:   sound,
		Logger:  logger,
		Player:  localPlayer(),
		Scale:   flagScale,
		ShowFPS: flagShowFPS,
	})

	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
