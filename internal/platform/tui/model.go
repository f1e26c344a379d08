package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/telemetry"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// stateChangedMsg signals that the store committed at least one
// transition since the last repaint.
type stateChangedMsg struct{}

// Model is the Bubble Tea model for one hangman session. It owns no game
// logic: keys become actions through the key mapper, actions go to the
// store, and repaints follow the store's update signal.
type Model struct {
	store      *game.Store
	keyMapper  *KeyMapper
	theme      config.Theme
	db         *storage.Store
	sessionID  string
	width      int
	height     int
	quitting   bool
	roundSaved bool // Whether the current finished round has been recorded
}

// NewModel creates a model around an already running store.
func NewModel(store *game.Store, theme config.Theme, db *storage.Store, sessionID string) Model {
	return Model{
		store:     store,
		keyMapper: NewKeyMapper(),
		theme:     theme,
		db:        db,
		sessionID: sessionID,
	}
}

// Init starts listening for store updates.
func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.store)
}

// waitForUpdate blocks until the store commits a transition. A nil
// message ends the listen loop once the store has closed.
func waitForUpdate(store *game.Store) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-store.Updates(); !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		return m.handleStateChange()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg, m.store.GetState())
	if isQuit {
		m.quitting = true
		m.store.Close()
		return m, tea.Quit
	}

	if action != nil {
		// Fire and forget: the repaint arrives through the update signal
		// once the transition commits.
		m.store.Dispatch(action)
	}

	return m, nil
}

// handleStateChange records finished rounds and re-arms the listener.
func (m Model) handleStateChange() (tea.Model, tea.Cmd) {
	st := m.store.GetState()

	if st.IsOver() && !m.roundSaved {
		if m.db != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.db.SaveRound(storage.RoundEntry{
				SessionID: m.sessionID,
				Word:      st.Word(),
				Won:       st.IsWon(),
				Guesses:   st.GuessCount(),
				Wrong:     st.WrongGuesses(),
			})
		}
		m.roundSaved = true
	}
	if !st.IsOver() {
		m.roundSaved = false
	}

	return m, waitForUpdate(m.store)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m.store.GetState(), m.theme, m.width)
}

// Run plays a local session until the player quits. width and height seed
// the first frame; resize messages take over from there.
func Run(bank *words.Bank, theme config.Theme, db *storage.Store, cfg game.Config, width, height int) error {
	store := game.NewSession(bank, cfg)
	defer store.Close()

	sessionID := uuid.NewString()
	store.OnTransition(telemetry.NewRoundObserver(sessionID).Observe)

	model := NewModel(store, theme, db, sessionID)
	model.width = width
	model.height = height

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
