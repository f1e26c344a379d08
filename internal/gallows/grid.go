// Package gallows renders the hangman illustration. The scene is a pair
// of same-shaped character grids: the complete drawing and a mask that
// assigns every position a role. Rendering picks, per position, between
// the drawing character, a face-marker character, a slice of the
// obfuscated secret word, or a blank, keyed on the current step.
package gallows

import "fmt"

// CellKind classifies one mask position.
type CellKind int

const (
	// CellBlank positions never show anything.
	CellBlank CellKind = iota
	// CellTier positions show their drawing character once the step
	// reaches the cell's reveal tier.
	CellTier
	// CellMarker positions show a character from a step-keyed table,
	// independent of tier logic.
	CellMarker
	// CellWordSlot positions form the run that displays the obfuscated
	// word.
	CellWordSlot
)

// Cell is one mask position: its kind plus the kind-specific payload.
type Cell struct {
	Kind   CellKind
	Tier   int          // CellTier: 0 (always shown) through 12
	Marker *MarkerTable // CellMarker: the table to read
}

// Grid pairs the complete drawing with its parsed mask. Cells are stored
// row-major: index = y*W + x.
type Grid struct {
	W, H  int
	Art   []rune
	Cells []Cell

	// The word slot run. Validation guarantees exactly one contiguous
	// run on a single row.
	SlotRow   int
	SlotStart int
	SlotLen   int
}

// MarkerTable maps step ranges to display characters. Ranges are ordered
// and contiguous from step 0; a lookup walks them in order.
type MarkerTable struct {
	Name   string
	Ranges []MarkerRange
}

// MarkerRange shows Char for every step up to and including Upto.
type MarkerRange struct {
	Upto int
	Char rune
}

// At returns the character displayed at the given step. Steps beyond the
// last range keep its character, so a marker never blanks back out.
func (t *MarkerTable) At(step int) rune {
	for _, r := range t.Ranges {
		if step <= r.Upto {
			return r.Char
		}
	}
	return t.Ranges[len(t.Ranges)-1].Char
}

// tierForMask maps a mask character to its reveal tier: '0'..'9' then
// 'a'=10, 'b'=11, 'c'=12.
func tierForMask(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'c':
		return 10 + int(ch-'a'), true
	default:
		return 0, false
	}
}

// parseGrids builds a Grid from the drawing and mask rows, validating
// that the pair is well formed:
//   - same number of rows, all rows the same width
//   - every mask character is a known role
//   - every reveal tier 0..12 occurs at least once
//   - tier cells cover a visible drawing character
//   - exactly one word slot run, contiguous within a single row
func parseGrids(art, mask []string, markers map[rune]*MarkerTable) (*Grid, error) {
	if len(art) == 0 || len(art) != len(mask) {
		return nil, fmt.Errorf("gallows: drawing has %d rows, mask has %d", len(art), len(mask))
	}

	h := len(art)
	w := len([]rune(art[0]))
	g := &Grid{
		W:       w,
		H:       h,
		Art:     make([]rune, 0, w*h),
		Cells:   make([]Cell, 0, w*h),
		SlotRow: -1,
	}

	tiersSeen := make(map[int]bool)
	slotEnded := false

	for y := 0; y < h; y++ {
		artRow := []rune(art[y])
		maskRow := []rune(mask[y])
		if len(artRow) != w || len(maskRow) != w {
			return nil, fmt.Errorf("gallows: row %d width mismatch: drawing %d, mask %d, want %d",
				y, len(artRow), len(maskRow), w)
		}

		inSlot := false
		for x := 0; x < w; x++ {
			mc := maskRow[x]
			cell := Cell{Kind: CellBlank}

			switch {
			case mc == ' ':
				// blank

			case mc == 'w':
				if slotEnded {
					return nil, fmt.Errorf("gallows: second word slot run at row %d col %d", y, x)
				}
				if g.SlotRow < 0 {
					g.SlotRow = y
					g.SlotStart = x
				}
				g.SlotLen++
				inSlot = true
				cell = Cell{Kind: CellWordSlot}

			default:
				if tier, ok := tierForMask(mc); ok {
					if artRow[x] == ' ' {
						return nil, fmt.Errorf("gallows: tier %d cell at row %d col %d covers a blank", tier, y, x)
					}
					tiersSeen[tier] = true
					cell = Cell{Kind: CellTier, Tier: tier}
				} else if table, ok := markers[mc]; ok {
					cell = Cell{Kind: CellMarker, Marker: table}
				} else {
					return nil, fmt.Errorf("gallows: unknown mask character %q at row %d col %d", mc, y, x)
				}
			}

			if mc != 'w' && inSlot {
				inSlot = false
				slotEnded = true
			}

			g.Art = append(g.Art, artRow[x])
			g.Cells = append(g.Cells, cell)
		}
		if inSlot {
			slotEnded = true
		}
	}

	if g.SlotRow < 0 {
		return nil, fmt.Errorf("gallows: mask has no word slot run")
	}
	for tier := 0; tier <= MaxStep; tier++ {
		if !tiersSeen[tier] {
			return nil, fmt.Errorf("gallows: reveal tier %d unused in mask", tier)
		}
	}

	return g, nil
}
