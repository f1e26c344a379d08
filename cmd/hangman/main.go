// hangman is a TUI word-guessing game for the terminal, playable locally
// or over SSH.
//
// Usage:
//
//	hangman play             - Play in the current terminal
//	hangman serve            - Start SSH server for remote play
//	hangman stats            - Browse round history and statistics
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible word order
//	--db <path>     - Set database path (default: ~/.hangman/rounds.db)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/telemetry"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	// Load .env file for local development. Not fatal when absent; the
	// OTEL_* variables may be set directly in the environment.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess the word before the drawing is finished",
	Long: `Hangman is a terminal word-guessing game. A hidden word is shown as
blanks beneath the gallows; type letters to reveal it. Every guessed
letter, right or wrong, spends one of your twelve turns, and each spent
turn adds a piece to the drawing. Reveal the word before the figure is
complete to win. A new round starts automatically after each one ends.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  stats    - Browse round history and statistics

Examples:
  hangman play
  hangman play --words ./my-words.yaml
  hangman serve --ssh :2222
  hangman stats
  hangman stats --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hangman/rounds.db", "Path to rounds database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// setupTelemetry initializes tracing when an OTLP endpoint is configured.
// Returns nil when telemetry is off or setup fails; the game runs fine
// without it.
func setupTelemetry(ctx context.Context) func(context.Context) error {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry setup failed: %v\n", err)
		return nil
	}
	return shutdown
}
