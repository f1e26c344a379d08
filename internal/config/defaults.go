package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// DefaultTheme returns the built-in color theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: ThemeColors{
			Scene:  "240",
			Word:   "205",
			HUD:    "245",
			Prompt: "69",
			Win:    "42",
			Loss:   "196",
		},
	}
}
