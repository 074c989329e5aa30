package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bogger/internal/games/bogger"
	"github.com/vovakirdan/bogger/internal/platform/tui"
	"github.com/vovakirdan/bogger/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSandbox    bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bogger",
	Long: `Start a game of Bogger.

Controls:
  Arrows/WASD  - Steer the craft
  Space        - Toggle spooling out pontoon
  X            - Toggle retracting pontoon
  P/Esc        - Pause
  C            - Continue with your score (after game over)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer clock, fewer spiders, smaller penalty
  normal - Default settings with spider ramp-up
  hard   - Shorter clock, more spiders, bigger penalty
  fixed  - No spider ramp-up

Examples:
  bogger play
  bogger play --sandbox
  bogger play --difficulty hard
  bogger play --config ./my-bogger.toml
  bogger play --log ./bogger.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSandbox, "sandbox", false, "Play without a countdown or spiders")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

// addGameFlags registers the flags that configure new sessions.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the game flags to the game package.
func applyGameFlags() {
	bogger.SetConfigPath(flagConfig)
	bogger.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, _ []string) {
	applyGameFlags()

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		bogger.SetLogger(log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "bogger",
		}))
	}

	gameID := "bogger"
	if flagSandbox {
		gameID = "bogger_sandbox"
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
