package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

func newTestSession(t *testing.T, word string) *game.Store {
	t.Helper()
	bank, err := words.NewBank([]string{word})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	// A long restart delay keeps the watcher out of the test's way
	store := game.NewSession(bank, game.Config{Seed: 1, RestartDelay: time.Hour})
	t.Cleanup(store.Close)
	return store
}

func dispatchAll(t *testing.T, store *game.Store, letters string) {
	t.Helper()
	var last <-chan struct{}
	for _, l := range letters {
		last = store.Dispatch(game.Guess{Letter: l})
	}
	select {
	case <-last:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for dispatched guesses")
	}
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	store := newTestSession(t, "GO")
	m := NewModel(store, config.DefaultTheme(), db, "session-1")

	// Lose the round with twelve misses
	dispatchAll(t, store, "ABCDEFHIJKLM")
	if !store.GetState().IsLost() {
		t.Fatal("Round should be lost")
	}

	// Every change signal while the final state lingers must not produce
	// another row
	for i := 0; i < 3; i++ {
		next, _ := m.Update(stateChangedMsg{})
		m = next.(Model)
	}

	rounds, err := db.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Recorded %d rounds, want 1", len(rounds))
	}
	if rounds[0].Word != "GO" || rounds[0].Won || rounds[0].Guesses != 12 || rounds[0].Wrong != 12 {
		t.Errorf("Saved round = %+v", rounds[0])
	}
	if rounds[0].SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", rounds[0].SessionID)
	}
}

func TestModelSavesNextRoundAfterRestart(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	store := newTestSession(t, "GO")
	m := NewModel(store, config.DefaultTheme(), db, "session-1")

	winAndObserve := func() {
		dispatchAll(t, store, "GO")
		next, _ := m.Update(stateChangedMsg{})
		m = next.(Model)
	}

	winAndObserve()

	// Fresh round re-arms the save flag
	select {
	case <-store.Dispatch(game.NewRound{}):
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for the new round")
	}
	next, _ := m.Update(stateChangedMsg{})
	m = next.(Model)

	winAndObserve()

	rounds, err := db.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Errorf("Recorded %d rounds, want 2", len(rounds))
	}
}

func TestModelQuitClosesStore(t *testing.T) {
	store := newTestSession(t, "GO")
	m := NewModel(store, config.DefaultTheme(), nil, "session-1")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if cmd == nil {
		t.Fatal("Quit should produce a command")
	}
	if m.View() != "" {
		t.Error("Quitting model should render nothing")
	}
	if _, ok := <-store.Updates(); ok {
		t.Error("Store should be closed after quit")
	}
}

func TestModelDispatchesGuesses(t *testing.T) {
	store := newTestSession(t, "GO")
	m := NewModel(store, config.DefaultTheme(), nil, "session-1")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if store.GetState().HasGuessed('G') {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Key press never became a guess")
}
