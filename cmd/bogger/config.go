package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bogger/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or check a config file",
	Long: `Without flags, prints the built-in default config as YAML. Save it to
~/.bogger/configs/bogger.yaml to customize the game.

With --check, loads the given YAML or TOML file on top of the defaults and
reports whether it is valid.

Examples:
  bogger config > ~/.bogger/configs/bogger.yaml
  bogger config --check ./my-bogger.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Config file to validate")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	cfg, err := config.LoadBogger(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%.0fx%.0f playfield, %d berries, %.0fs clock)\n",
		flagCheck, cfg.Playfield.Width, cfg.Playfield.Height, cfg.Berries.Count, cfg.Timer.CountdownMs/1000)
}
