// Package game implements the hangman round state machine: an immutable
// state value, a pure reducer over guess/new-round actions, an asynchronous
// dispatch store, and the watcher that auto-starts the next round.
// The package is dependency-free apart from the word bank so it can be
// driven identically by the local TUI, SSH sessions, and tests.
package game

import "unicode"

// MaxTurns is the guess budget per round. Each guessed letter, right or
// wrong, consumes one turn; the round is lost when the budget runs out
// before the word is revealed.
const MaxTurns = 12

// State is one round's snapshot. It is a value type and is never mutated:
// every transition produces a fresh State, so holders of an old snapshot
// always see the round as it was when they read it.
type State struct {
	word     string
	guessed  []rune // distinct uppercase letters, insertion order
	previous string // word of the prior round, "" before the first round ends
	wins     int
}

// Word returns the secret phrase for this round (uppercase; may contain
// spaces and punctuation).
func (s State) Word() string {
	return s.word
}

// Guessed returns the letters guessed this round in guess order.
// The returned slice is a copy.
func (s State) Guessed() []rune {
	out := make([]rune, len(s.guessed))
	copy(out, s.guessed)
	return out
}

// GuessCount returns the number of distinct letters guessed this round.
func (s State) GuessCount() int {
	return len(s.guessed)
}

// HasGuessed reports whether the letter was already guessed this round.
func (s State) HasGuessed(letter rune) bool {
	for _, r := range s.guessed {
		if r == letter {
			return true
		}
	}
	return false
}

// Previous returns the prior round's word, or "" if no round has
// completed yet.
func (s State) Previous() string {
	return s.previous
}

// Wins returns the number of rounds won this session.
func (s State) Wins() int {
	return s.wins
}

// TurnsRemaining returns the unused part of the guess budget. Guesses are
// never retracted, so within a round this only decreases.
func (s State) TurnsRemaining() int {
	return MaxTurns - len(s.guessed)
}

// WordLetters returns the distinct alphabetic characters of the word, in
// first-appearance order. Spaces and punctuation are excluded.
func (s State) WordLetters() []rune {
	var letters []rune
	for _, r := range s.word {
		if unicode.IsLetter(r) && !containsRune(letters, r) {
			letters = append(letters, r)
		}
	}
	return letters
}

// LettersRemaining returns the word's letters not yet guessed.
func (s State) LettersRemaining() []rune {
	var remaining []rune
	for _, r := range s.WordLetters() {
		if !s.HasGuessed(r) {
			remaining = append(remaining, r)
		}
	}
	return remaining
}

// WrongGuesses returns how many guessed letters do not occur in the word.
func (s State) WrongGuesses() int {
	letters := s.WordLetters()
	wrong := 0
	for _, r := range s.guessed {
		if !containsRune(letters, r) {
			wrong++
		}
	}
	return wrong
}

// IsWon reports whether every letter of the word has been guessed.
// A word with no letters at all counts as won from the start.
func (s State) IsWon() bool {
	return len(s.LettersRemaining()) == 0
}

// IsLost reports whether the guess budget is spent without a win.
func (s State) IsLost() bool {
	return s.TurnsRemaining() <= 0 && !s.IsWon()
}

// IsOver reports whether the round ended in either a win or a loss.
func (s State) IsOver() bool {
	return s.IsWon() || s.IsLost()
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
