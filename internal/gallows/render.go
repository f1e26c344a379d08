package gallows

import (
	"strings"
	"unicode"
)

const (
	// MaxStep is the final reveal step, the fully drawn scene.
	MaxStep = 12

	// Width is the column count of the rendered scene.
	Width = 27

	// BannerRows is the number of trailing rows taken up by the word
	// banner box.
	BannerRows = 3
)

// Render draws the scene for the given round position. Every guess
// advances the drawing by one step, right or wrong, except that a
// winning round holds one step back so the man is never completed by
// the guess that saves him.
func Render(word string, guessed []rune, guessCount int, won bool) string {
	step := stepFor(guessCount, won)
	slot := obfuscate(word, guessed, scene.SlotLen)

	var b strings.Builder
	b.Grow((scene.W + 1) * scene.H)
	for y := 0; y < scene.H; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := 0; x < scene.W; x++ {
			i := y*scene.W + x
			cell := scene.Cells[i]
			switch cell.Kind {
			case CellTier:
				if cell.Tier <= step {
					b.WriteRune(scene.Art[i])
				} else {
					b.WriteRune(' ')
				}
			case CellMarker:
				b.WriteRune(cell.Marker.At(step))
			case CellWordSlot:
				b.WriteRune(slot[x-scene.SlotStart])
			default:
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

func stepFor(guessCount int, won bool) int {
	step := guessCount
	if won {
		step = guessCount - 1
	}
	if step < 0 {
		return 0
	}
	if step > MaxStep {
		return MaxStep
	}
	return step
}

// obfuscate renders the word for the banner slot. Letters not yet
// guessed become underscores, other characters show as is. A single
// blank separates consecutive characters and the result is centered
// in the slot, padded left first. Words too long for the slot are
// clipped.
func obfuscate(word string, guessed []rune, runLen int) []rune {
	masked := make([]rune, 0, len(word)*2)
	for i, c := range []rune(word) {
		if i > 0 {
			masked = append(masked, ' ')
		}
		if unicode.IsLetter(c) && !containsUpper(guessed, c) {
			masked = append(masked, '_')
		} else {
			masked = append(masked, c)
		}
	}
	if len(masked) > runLen {
		return masked[:runLen]
	}
	left := (runLen - len(masked)) / 2
	out := make([]rune, 0, runLen)
	for i := 0; i < left; i++ {
		out = append(out, ' ')
	}
	out = append(out, masked...)
	for len(out) < runLen {
		out = append(out, ' ')
	}
	return out
}

func containsUpper(guessed []rune, c rune) bool {
	c = unicode.ToUpper(c)
	for _, g := range guessed {
		if g == c {
			return true
		}
	}
	return false
}
