package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-motion/internal/platform/tui"
	"github.com/vovakirdan/arcade-motion/internal/registry"
)

var (
	flagConfig  string
	flagSound   bool
	flagShowFPS bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Steer and thrust (tank turns, flyer rotates, walker walks)
  Mouse        - Aim the tank turret; click to fire
  Space        - Fire without a mouse
  P            - Pause
  R            - Restart the scenario
  F            - Toggle the FPS counter
  Ctrl+S       - Save a text screenshot
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit

Terminals report key presses, not releases, so a key counts as held
while it keeps repeating.

Examples:
  arcade play tank
  arcade play flyer --sound
  arcade play platformer --config ./my-level.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the FPS counter")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.CreateConfigured(gameID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sound, closeSound := openAudio(flagSound)
	restoreLog := logToFile()

	_, runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:   store,
		Audio:   sound,
		Logger:  logger,
		Player:  localPlayer(),
		ShowFPS: flagShowFPS,
	})

	restoreLog()
	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
