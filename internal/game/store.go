package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Store owns the single current State and serializes all transitions
// through a FIFO mailbox consumed by one worker goroutine. Dispatch never
// applies the reducer on the caller's goroutine: the worker re-reads the
// latest committed state before each reduction, so queued actions compose
// correctly even when several are issued back to back.
type Store struct {
	reducer *Reducer

	mu        sync.RWMutex
	state     State
	observers []func(State)

	// sendMu fences mailbox sends against Close: closed flips under the
	// write lock, so once Close holds it no dispatcher can be mid-send.
	sendMu  sync.RWMutex
	closed  bool
	mailbox chan task

	updates chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

type task struct {
	action Action
	done   chan struct{}
}

// NewStore creates a store initialized to reducer.NewGame() and starts
// its worker goroutine. Call Close when the session ends.
func NewStore(reducer *Reducer) *Store {
	s := &Store{
		reducer: reducer,
		state:   reducer.NewGame(),
		mailbox: make(chan task, 64),
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

// NewSession wires a full game session: a seeded reducer over bank, a
// running store, and the auto-restart watcher registered as the first
// transition observer.
func NewSession(bank *words.Bank, cfg Config) *Store {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.RestartDelay <= 0 {
		cfg.RestartDelay = RestartDelay
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	store := NewStore(NewReducer(bank, rng))
	store.OnTransition(NewWatcher(store, cfg.RestartDelay).Observe)
	return store
}

// GetState returns the latest committed state.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch queues an action and returns a channel that closes once the
// transition has been applied and all observers have run. Dispatching on
// a closed store is a no-op; the returned channel is already closed.
func (s *Store) Dispatch(a Action) <-chan struct{} {
	t := task{action: a, done: make(chan struct{})}

	s.sendMu.RLock()
	defer s.sendMu.RUnlock()
	if s.closed {
		close(t.done)
		return t.done
	}
	s.mailbox <- t
	return t.done
}

// OnTransition registers an observer invoked synchronously on the worker
// after each transition commits. Observers run in registration order; the
// watcher is registered first so a finished round schedules its restart
// before anything repaints.
func (s *Store) OnTransition(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Updates returns a coalescing change signal: at most one pending tick no
// matter how many transitions occurred since the last read. Readers must
// re-fetch via GetState, which always yields the latest state. The channel
// closes when the store closes.
func (s *Store) Updates() <-chan struct{} {
	return s.updates
}

// Close stops the worker and releases waiters. Safe to call repeatedly.
// Transitions already queued are abandoned; their futures close without
// being applied.
func (s *Store) Close() {
	s.once.Do(func() {
		s.sendMu.Lock()
		s.closed = true
		s.sendMu.Unlock()

		close(s.done)
		s.wg.Wait()
		close(s.updates)
	})
}

func (s *Store) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			s.drain()
			return
		case t := <-s.mailbox:
			s.apply(t)
		}
	}
}

// drain releases futures of tasks that were queued but never applied.
func (s *Store) drain() {
	for {
		select {
		case t := <-s.mailbox:
			close(t.done)
		default:
			return
		}
	}
}

func (s *Store) apply(t task) {
	s.mu.RLock()
	current := s.state
	observers := s.observers
	s.mu.RUnlock()

	next := s.reducer.Reduce(current, t.action)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
	s.notify()
	close(t.done)
}

// notify pokes the update channel without blocking; a pending tick
// already covers this transition.
func (s *Store) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
