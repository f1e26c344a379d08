package game

// Action is a transition request handed to the reducer through the store.
// The two concrete kinds below are the only ones the reducer recognizes;
// anything else is an identity transition.
type Action interface {
	isAction()
}

// NewRound abandons the current round and starts a fresh one. The secret
// word is resampled, the guessed set resets, and the win counter advances
// when the finished round was won.
type NewRound struct{}

// Guess records a single uppercase letter guess.
type Guess struct {
	Letter rune
}

func (NewRound) isAction() {}
func (Guess) isAction()    {}
