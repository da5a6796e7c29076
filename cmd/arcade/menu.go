package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-motion/internal/platform/tui"
	"github.com/vovakirdan/arcade-motion/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30 --sound
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	menuCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the FPS counter")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	sound, closeSound := openAudio(flagSound)
	restoreLog := logToFile()
	defer func() {
		restoreLog()
		closeSound()
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.CreateConfigured(menuResult.GameID, flagConfig)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, cfg, tui.Options{
			Store:   store,
			Audio:   sound,
			Logger:  logger,
			Player:  localPlayer(),
			ShowFPS: flagShowFPS,
		})
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
		if !backToMenu {
			return
		}
	}
}
