package game

import "time"

// RestartDelay is how long a finished round stays on screen before the
// next one starts.
const RestartDelay = 2 * time.Second

// Watcher observes transitions and schedules the automatic next round.
// The timer is fire-and-forget: there is no cancellation handle, and a
// timer that outlives its round (or the store) dispatches harmlessly
// because the reducer is total and a closed store drops actions.
type Watcher struct {
	store *Store
	delay time.Duration
}

// NewWatcher creates a watcher that dispatches NewRound on store after
// delay whenever it observes a finished round.
func NewWatcher(store *Store, delay time.Duration) *Watcher {
	return &Watcher{store: store, delay: delay}
}

// Observe schedules exactly one delayed NewRound if the state is over.
// States mid-round pass through untouched. Two consecutive over states
// would schedule two timers; the second restart is a benign extra round
// cycle, so no de-duplication is attempted.
func (w *Watcher) Observe(s State) {
	if !s.IsOver() {
		return
	}
	time.AfterFunc(w.delay, func() {
		w.store.Dispatch(NewRound{})
	})
}
