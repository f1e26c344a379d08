package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Reducer maps (state, action) to the next state. It never mutates its
// input and never rejects an action: duplicate guesses and guesses on a
// finished round pass through untouched in meaning, and unknown action
// kinds return the state unchanged. Gating bad input is the display
// adapter's job, which keeps the reducer total and the auto-restart timer
// safe to fire late.
type Reducer struct {
	bank *words.Bank
	rng  *rand.Rand
}

// NewReducer creates a reducer drawing words from bank. The rng drives
// word selection; seed it for reproducible rounds.
func NewReducer(bank *words.Bank, rng *rand.Rand) *Reducer {
	return &Reducer{bank: bank, rng: rng}
}

// NewGame returns the initial state: a fresh round with no prior word and
// zero wins.
func (r *Reducer) NewGame() State {
	return State{word: r.bank.Pick(r.rng)}
}

// Reduce applies one action and returns the resulting state.
func (r *Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case NewRound:
		wins := s.wins
		if s.IsWon() {
			wins++
		}
		return State{
			word:     r.bank.Pick(r.rng),
			previous: s.word,
			wins:     wins,
		}

	case Guess:
		if s.HasGuessed(a.Letter) {
			// Set semantics: re-adding is a no-op on the set, but the
			// transition still yields a new snapshot.
			return s
		}
		guessed := make([]rune, len(s.guessed), len(s.guessed)+1)
		copy(guessed, s.guessed)
		s.guessed = append(guessed, a.Letter)
		return s

	default:
		return s
	}
}
