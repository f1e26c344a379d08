package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// RoundObserver emits one span per finished round. Attach Observe as a
// store transition observer; a finished round lingers on screen through
// several observed states, so the observer records only the first and
// re-arms when the next round starts.
type RoundObserver struct {
	tracer    trace.Tracer
	sessionID string

	mu       sync.Mutex
	recorded bool
}

// NewRoundObserver creates an observer tagging its spans with sessionID.
func NewRoundObserver(sessionID string) *RoundObserver {
	return &RoundObserver{
		tracer:    Tracer("game"),
		sessionID: sessionID,
	}
}

// Observe inspects one committed state and emits a round.complete span
// when it is the first finished state since the round began.
func (o *RoundObserver) Observe(st game.State) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !st.IsOver() {
		o.recorded = false
		return
	}
	if o.recorded {
		return
	}
	o.recorded = true

	_, span := o.tracer.Start(context.Background(), "round.complete")
	span.SetAttributes(
		attribute.String("session.id", o.sessionID),
		attribute.String("round.word", st.Word()),
		attribute.Bool("round.won", st.IsWon()),
		attribute.Int("round.guesses", st.GuessCount()),
		attribute.Int("round.wrong", st.WrongGuesses()),
		attribute.Int("session.wins", st.Wins()),
	)
	span.End()
}
