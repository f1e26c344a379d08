package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTheme loads the color theme. Values start from the built-in
// defaults, so a partial file overrides only the colors it names.
// Search order: customPath -> ~/.hangman/configs/theme.yaml -> ./configs/theme.yaml -> embedded default
func LoadTheme(customPath string) (Theme, error) {
	t := DefaultTheme()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return t, fmt.Errorf("failed to read theme %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &t); err != nil {
			return t, fmt.Errorf("failed to parse theme %s: %w", customPath, err)
		}
		return t, nil
	}

	// Try user config directory
	if userPath := userConfigPath("theme.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &t); err == nil {
				return t, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/theme.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &t); err == nil {
			return t, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultThemeYAML, &t); err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return t, nil
}

// LoadWords loads the word list.
// Search order: customPath -> ~/.hangman/configs/words.yaml -> ./configs/words.yaml -> embedded default
func LoadWords(customPath string) ([]string, error) {
	var list WordList

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read word list %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse word list %s: %w", customPath, err)
		}
		return list.Words, nil
	}

	// Try user config directory
	if userPath := userConfigPath("words.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &list); err == nil && len(list.Words) > 0 {
				return list.Words, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/words.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &list); err == nil && len(list.Words) > 0 {
			return list.Words, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWordsYAML, &list); err != nil {
		return nil, fmt.Errorf("failed to parse embedded word list: %w", err)
	}
	return list.Words, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", "configs", filename)
}
