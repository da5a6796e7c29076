// arcade is a vehicle-physics arcade: a tank, a flyer and a platformer
// walker, playable in the terminal, in a desktop window or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade config <game>     - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/platform/audio"
	"github.com/vovakirdan/arcade-motion/internal/platform/session"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-motion/internal/games/flyer"
	_ "github.com/vovakirdan/arcade-motion/internal/games/platformer"
	_ "github.com/vovakirdan/arcade-motion/internal/games/tank"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade Motion - steer vehicles in your terminal",
	Long: `Arcade Motion is a small arcade of vehicle physics demos:
a tank with a mouse-aimed turret, a thrust-driven flyer and a
side-view platformer walker.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a game's effective configuration

Examples:
  arcade list
  arcade play tank
  arcade window flyer --sound
  arcade menu
  arcade serve --ssh :2222
  arcade scores tank`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// requireGame exits with a hint when gameID is not registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openAudio returns a sound player when enabled, and a func to release it.
func openAudio(enabled bool) (session.SoundPlayer, func()) {
	if !enabled {
		return nil, func() {}
	}
	p := audio.Open(logger)
	return p, p.Close
}

// logToFile redirects the logger to ~/.arcade/arcade.log while a full-screen
// program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// localPlayer names the local user for session records.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
