// bogger is a terminal physics game: steer a collector craft, spool a
// jointed pontoon out behind it and herd berries into the bucket.
//
// Usage:
//
//	bogger play              - Play the timed game
//	bogger play --sandbox    - Play without a countdown or spiders
//	bogger menu              - Pick a mode interactively
//	bogger serve             - Start SSH server for remote play
//	bogger history           - Show recent runs
//	bogger list              - List game modes
//	bogger config            - Print or check a config file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bogger/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/bogger/internal/games/bogger"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bogger",
	Short: "Bogger - herd berries with a pontoon in your terminal",
	Long: `Bogger is a terminal physics game. Steer the collector craft, spool a
jointed pontoon out behind it and sweep floating berries into the bucket
before the clock runs out. Rescue spiders onto rocks for bonus time.

Available commands:
  play     - Play the game directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  history  - View recent runs
  list     - Show game modes
  config   - Print the default config or check a file

Examples:
  bogger play
  bogger play --sandbox
  bogger menu
  bogger serve --ssh :2222
  bogger history --limit 20`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bogger/runs.db", "Path to run history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history, warning and returning nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}
