package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

func newTestStore(t *testing.T, word string) *Store {
	t.Helper()
	bank, err := words.NewBank([]string{word})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	s := NewStore(NewReducer(bank, rand.New(rand.NewSource(1))))
	t.Cleanup(s.Close)
	return s
}

func newTestSession(t *testing.T, word string, delay time.Duration) *Store {
	t.Helper()
	bank, err := words.NewBank([]string{word})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	s := NewSession(bank, Config{Seed: 1, RestartDelay: delay})
	t.Cleanup(s.Close)
	return s
}

func waitFuture(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for a dispatched action to apply")
	}
}

// waitState polls until pred holds for the latest state. Timers drive
// some transitions, so tests wait rather than assume.
func waitState(t *testing.T, s *Store, what string, pred func(State) bool) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st := s.GetState()
		if pred(st) {
			return st
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for state: %s", what)
	return State{}
}

func TestDispatchAppliesInOrder(t *testing.T) {
	s := newTestStore(t, "LISP")

	var last <-chan struct{}
	for _, l := range "XYZ" {
		last = s.Dispatch(Guess{Letter: l})
	}
	waitFuture(t, last)

	if got := string(s.GetState().Guessed()); got != "XYZ" {
		t.Errorf("Guessed = %q, want XYZ in dispatch order", got)
	}
}

func TestQueuedGuessesCompose(t *testing.T) {
	// Several actions queued before any applies must each see the
	// previous one's result, not the state at dispatch time.
	s := newTestStore(t, "LISP")

	done := make([]<-chan struct{}, 0, 4)
	for _, l := range "LISP" {
		done = append(done, s.Dispatch(Guess{Letter: l}))
	}
	for _, d := range done {
		waitFuture(t, d)
	}

	st := s.GetState()
	if st.GuessCount() != 4 {
		t.Errorf("GuessCount = %d, want 4", st.GuessCount())
	}
	if !st.IsWon() {
		t.Error("All four letters dispatched, round should be won")
	}
}

func TestUpdatesSignal(t *testing.T) {
	s := newTestStore(t, "LISP")

	waitFuture(t, s.Dispatch(Guess{Letter: 'X'}))
	waitFuture(t, s.Dispatch(Guess{Letter: 'Y'}))

	select {
	case _, ok := <-s.Updates():
		if !ok {
			t.Fatal("Updates channel closed while the store is open")
		}
	default:
		t.Fatal("Expected a pending update tick after transitions")
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	s := newTestStore(t, "LISP")

	var order []string
	s.OnTransition(func(State) { order = append(order, "first") })
	s.OnTransition(func(State) { order = append(order, "second") })

	waitFuture(t, s.Dispatch(Guess{Letter: 'X'}))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Observer order = %v", order)
	}
}

func TestObserverSeesCommittedState(t *testing.T) {
	s := newTestStore(t, "LISP")

	var seen State
	s.OnTransition(func(st State) { seen = st })

	waitFuture(t, s.Dispatch(Guess{Letter: 'X'}))

	if !seen.HasGuessed('X') {
		t.Error("Observer ran against a stale state")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStore(t, "LISP")
	s.Close()
	s.Close()

	if _, ok := <-s.Updates(); ok {
		t.Error("Updates channel should be closed after Close")
	}
}

func TestDispatchAfterClose(t *testing.T) {
	s := newTestStore(t, "LISP")
	before := s.GetState()
	s.Close()

	done := s.Dispatch(Guess{Letter: 'X'})
	select {
	case <-done:
	default:
		t.Fatal("Dispatch on a closed store must return a closed future")
	}
	if got := s.GetState().GuessCount(); got != before.GuessCount() {
		t.Error("Closed store still applied an action")
	}
}

func TestWatcherRestartsAfterLoss(t *testing.T) {
	s := newTestSession(t, "LISP", 10*time.Millisecond)

	var last <-chan struct{}
	for _, l := range "BDEFGHJKMNOQ" {
		last = s.Dispatch(Guess{Letter: l})
	}
	waitFuture(t, last)

	if !s.GetState().IsLost() {
		t.Fatal("Round should be lost after twelve misses")
	}

	st := waitState(t, s, "automatic new round", func(st State) bool {
		return st.Previous() == "LISP"
	})
	if st.GuessCount() != 0 {
		t.Errorf("Restarted round carries %d guesses", st.GuessCount())
	}
	if st.Wins() != 0 {
		t.Errorf("Wins = %d, a loss must not score", st.Wins())
	}
}

func TestWatcherCountsWin(t *testing.T) {
	s := newTestSession(t, "LISP", 10*time.Millisecond)

	var last <-chan struct{}
	for _, l := range "LISP" {
		last = s.Dispatch(Guess{Letter: l})
	}
	waitFuture(t, last)

	if !s.GetState().IsWon() {
		t.Fatal("Round should be won")
	}

	st := waitState(t, s, "win counted on restart", func(st State) bool {
		return st.Wins() == 1
	})
	if st.Previous() != "LISP" {
		t.Errorf("Previous = %q, want LISP", st.Previous())
	}
}

func TestWatcherIgnoresMidRound(t *testing.T) {
	s := newTestSession(t, "LISP", 5*time.Millisecond)

	waitFuture(t, s.Dispatch(Guess{Letter: 'X'}))
	time.Sleep(50 * time.Millisecond)

	st := s.GetState()
	if st.Previous() != "" || st.GuessCount() != 1 {
		t.Errorf("Unfinished round was restarted: previous %q, %d guesses",
			st.Previous(), st.GuessCount())
	}
}
