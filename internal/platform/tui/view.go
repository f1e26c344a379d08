package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/gallows"
	"github.com/vovakirdan/tui-hangman/internal/game"
)

// renderView draws one frame: title, the gallows scene with the banner
// word, the HUD lines, and the guessed-letters prompt. The scene takes
// the win or loss tint while a finished round lingers on screen.
func renderView(st game.State, theme config.Theme, width int) string {
	if width < gallows.Width {
		width = gallows.Width
	}

	sceneColor := theme.Colors.Scene
	if st.IsWon() {
		sceneColor = theme.Colors.Win
	} else if st.IsLost() {
		sceneColor = theme.Colors.Loss
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Colors.Word))
	sceneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(sceneColor))
	wordStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Word))
	hudStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.HUD))
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Prompt))

	indent := strings.Repeat(" ", (width-gallows.Width)/2)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("H A N G M A N", width)))
	b.WriteString("\n\n")

	graphic := gallows.Render(st.Word(), st.Guessed(), st.GuessCount(), st.IsWon())
	lines := strings.Split(graphic, "\n")
	for i, line := range lines {
		style := sceneStyle
		if i >= len(lines)-gallows.BannerRows {
			style = wordStyle
		}
		b.WriteString(indent)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	previous := st.Previous()
	if previous == "" {
		previous = "(none)"
	}
	b.WriteString(indent + hudStyle.Render(fmt.Sprintf("Previous word: %s", previous)) + "\n")
	b.WriteString(indent + hudStyle.Render(fmt.Sprintf("Wins: %d", st.Wins())) + "\n")
	b.WriteString(indent + hudStyle.Render(fmt.Sprintf("Turns left: %d", st.TurnsRemaining())) + "\n")

	b.WriteString("\n")
	b.WriteString(indent + promptStyle.Render(guessPrompt(st)) + "\n")

	b.WriteString("\n")
	controls := "Type a letter to guess  |  Esc: Quit"
	b.WriteString(hudStyle.Render(centerText(controls, width)))
	b.WriteString("\n")

	return b.String()
}

// guessPrompt formats the guessed letters as a typed-so-far line with a
// block cursor.
func guessPrompt(st game.State) string {
	var b strings.Builder
	b.WriteString("> ")
	for _, r := range st.Guessed() {
		b.WriteRune(r)
		b.WriteRune(' ')
	}
	b.WriteRune('█')
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
