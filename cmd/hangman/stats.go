package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse round history and statistics",
	Long: `Display recorded rounds and aggregate statistics.

By default this opens an interactive browser with a summary sidebar
and tables of recent rounds and per-word results. Use Tab to switch
views and q to quit.

With --plain the same numbers are printed straight to stdout, which
suits pipes and narrow terminals.

Examples:
  hangman stats
  hangman stats --plain
  hangman stats --plain --limit 50
  hangman stats --clear`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent rounds to show with --plain")
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print statistics without the interactive browser")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds and exit")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared all recorded rounds.")
		return
	}

	if flagPlain {
		if err := printStats(store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading rounds: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing statistics: %v\n", err)
		os.Exit(1)
	}
}

func printStats(store *storage.Store, limit int) error {
	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Println("Hangman - Round Statistics")
	fmt.Println()

	if stats.RoundsPlayed == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' to record the first round!")
		return nil
	}

	winRate := 100 * stats.RoundsWon / stats.RoundsPlayed
	fmt.Printf("  %-16s%d\n", "Rounds played:", stats.RoundsPlayed)
	fmt.Printf("  %-16s%d\n", "Rounds won:", stats.RoundsWon)
	fmt.Printf("  %-16s%d%%\n", "Win rate:", winRate)
	fmt.Printf("  %-16s%d\n", "Best streak:", stats.BestStreak)
	fmt.Printf("  %-16s%d\n", "Current streak:", stats.CurrentStreak)
	fmt.Println()

	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent rounds:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-14s  %-6s  %-7s  %-5s  %s\n", "Word", "Result", "Guesses", "Wrong", "Date")
	fmt.Printf("  %-14s  %-6s  %-7s  %-5s  %s\n", "----", "------", "-------", "-----", "----")

	// Print rounds, newest first
	for _, r := range rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-6s  %-7d  %-5d  %s\n", r.Word, result, r.Guesses, r.Wrong, dateStr)
	}

	return nil
}
