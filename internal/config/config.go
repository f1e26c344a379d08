// Package config provides YAML-based theme and word list loading for the
// hangman game.
package config

// Theme contains the display colors for the TUI.
type Theme struct {
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors names each colored surface. Values are 256-color terminal
// codes or hex strings, anything lipgloss accepts.
type ThemeColors struct {
	Scene  string `yaml:"scene"`
	Word   string `yaml:"word"`
	HUD    string `yaml:"hud"`
	Prompt string `yaml:"prompt"`
	Win    string `yaml:"win"`
	Loss   string `yaml:"loss"`
}

// WordList is the YAML shape of a word list file.
type WordList struct {
	Words []string `yaml:"words"`
}
