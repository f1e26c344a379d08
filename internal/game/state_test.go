package game

import "testing"

func TestWordLetters(t *testing.T) {
	s := State{word: "VISUAL BASIC"}
	got := string(s.WordLetters())
	if got != "VISUALBC" {
		t.Errorf("WordLetters = %q, want %q", got, "VISUALBC")
	}
}

func TestDerivedCounts(t *testing.T) {
	s := State{word: "LISP", guessed: []rune{'X', 'L', 'I'}}

	if got := s.GuessCount(); got != 3 {
		t.Errorf("GuessCount = %d, want 3", got)
	}
	if got := s.TurnsRemaining(); got != MaxTurns-3 {
		t.Errorf("TurnsRemaining = %d, want %d", got, MaxTurns-3)
	}
	if got := s.WrongGuesses(); got != 1 {
		t.Errorf("WrongGuesses = %d, want 1", got)
	}
	if got := string(s.LettersRemaining()); got != "SP" {
		t.Errorf("LettersRemaining = %q, want %q", got, "SP")
	}
	if !s.HasGuessed('X') || s.HasGuessed('S') {
		t.Error("HasGuessed disagrees with the guessed set")
	}
}

func TestWinLossExclusive(t *testing.T) {
	cases := []struct {
		name string
		s    State
		won  bool
		lost bool
	}{
		{
			name: "mid round",
			s:    State{word: "LISP", guessed: []rune{'L', 'X'}},
		},
		{
			name: "all letters found",
			s:    State{word: "LISP", guessed: []rune{'L', 'I', 'S', 'P'}},
			won:  true,
		},
		{
			name: "budget spent",
			s: State{word: "LISP", guessed: []rune{
				'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K', 'M', 'N'}},
			lost: true,
		},
		{
			name: "won on the final turn",
			s: State{word: "GO", guessed: []rune{
				'A', 'B', 'C', 'D', 'E', 'F', 'H', 'J', 'K', 'M', 'G', 'O'}},
			won: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.IsWon(); got != tc.won {
				t.Errorf("IsWon = %v, want %v", got, tc.won)
			}
			if got := tc.s.IsLost(); got != tc.lost {
				t.Errorf("IsLost = %v, want %v", got, tc.lost)
			}
			if got := tc.s.IsOver(); got != (tc.won || tc.lost) {
				t.Errorf("IsOver = %v, want %v", got, tc.won || tc.lost)
			}
		})
	}
}

func TestZeroLetterWordIsWon(t *testing.T) {
	s := State{}
	if !s.IsWon() {
		t.Error("A word with no letters should count as won")
	}
	if s.IsLost() {
		t.Error("A won state must never read as lost")
	}
}

func TestGuessedReturnsCopy(t *testing.T) {
	s := State{word: "GO", guessed: []rune{'A', 'B'}}
	g := s.Guessed()
	g[0] = 'Z'

	if !s.HasGuessed('A') {
		t.Error("Mutating the returned slice leaked into the state")
	}
	if got := s.Guessed(); got[0] != 'A' || got[1] != 'B' {
		t.Errorf("Guessed = %q, want [A B]", string(got))
	}
}
