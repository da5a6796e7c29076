package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-motion/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's effective configuration",
	Long: `Print the configuration a game would run with, after the search
order is applied: --config path, ~/.arcade/configs/<game>.yaml|yml|toml,
./configs/<game>.yaml|yml|toml, then the built-in defaults.

The output is a complete config file; save it to customize a game.

Examples:
  arcade config tank > ~/.arcade/configs/tank.yaml
  arcade config platformer --format toml
  arcade config flyer --config ./fast-flyer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagFormat, "format", config.FormatYAML, "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	cfg, err := config.Load(gameID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Encode(os.Stdout, flagFormat, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
