package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Letter keys are the game input, so quitting stays off the letter rows:
// ctrl+c and esc only.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action against the given state.
// The action is nil when the key maps to nothing: non-letter keys,
// repeated guesses, and letters arriving after the round ended are all
// dropped here so the store only ever sees guesses worth applying.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, st game.State) (action game.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return nil, true
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return nil, false
	}
	r := msg.Runes[0]
	if !unicode.IsLetter(r) {
		return nil, false
	}
	letter := unicode.ToUpper(r)

	if st.IsOver() || st.HasGuessed(letter) {
		return nil, false
	}
	return game.Guess{Letter: letter}, false
}
