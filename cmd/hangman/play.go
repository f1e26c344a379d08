package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	flagWords string
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman in the current terminal",
	Long: `Start a hangman session in the current terminal.

Controls:
  A-Z        - Guess a letter
  Esc/Ctrl+C - Quit

Every guessed letter spends a turn; twelve turns per round. Rounds
restart automatically a couple of seconds after they end. Finished
rounds are recorded in the database for 'hangman stats'.

Word lists and themes are YAML files. Without flags the loader checks
~/.hangman/configs/, then ./configs/, then falls back to the built-in
defaults.

Examples:
  hangman play
  hangman play --words ./my-words.yaml
  hangman play --theme ./my-theme.yaml
  hangman play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWords, "words", "", "Path to custom word list YAML")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if shutdown := setupTelemetry(ctx); shutdown != nil {
		defer func() {
			if err := shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: telemetry shutdown: %v\n", err)
			}
		}()
	}

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	entries, err := config.LoadWords(flagWords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	bank, err := words.NewBank(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building word bank: %v\n", err)
		os.Exit(1)
	}

	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
		os.Exit(1)
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	cfg := game.Config{Seed: flagSeed}

	// Run the game
	runErr := tui.Run(bank, theme, store, cfg, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
