package gallows

import (
	"strings"
	"testing"
)

func TestParseGridsValid(t *testing.T) {
	art := []string{
		"=============",
		"             ",
	}
	mask := []string{
		"0123456789abc",
		" wwwwwwwwwww ",
	}

	g, err := parseGrids(art, mask, nil)
	if err != nil {
		t.Fatalf("parseGrids failed: %v", err)
	}

	if g.W != 13 || g.H != 2 {
		t.Errorf("Dimensions mismatch: got %dx%d, want 13x2", g.W, g.H)
	}
	if g.SlotRow != 1 || g.SlotStart != 1 || g.SlotLen != 11 {
		t.Errorf("Slot mismatch: row %d start %d len %d, want row 1 start 1 len 11",
			g.SlotRow, g.SlotStart, g.SlotLen)
	}
	if g.Cells[0].Kind != CellTier || g.Cells[0].Tier != 0 {
		t.Errorf("Cell 0 should be tier 0, got %+v", g.Cells[0])
	}
	if g.Cells[12].Kind != CellTier || g.Cells[12].Tier != 12 {
		t.Errorf("Cell 12 should be tier 12, got %+v", g.Cells[12])
	}
	if g.Cells[13].Kind != CellBlank {
		t.Errorf("Cell 13 should be blank, got %+v", g.Cells[13])
	}
	if g.Cells[14].Kind != CellWordSlot {
		t.Errorf("Cell 14 should be word slot, got %+v", g.Cells[14])
	}
}

func TestParseGridsRejects(t *testing.T) {
	cases := []struct {
		name string
		art  []string
		mask []string
		want string
	}{
		{
			name: "row count mismatch",
			art:  []string{"=============", "             "},
			mask: []string{"0123456789abc"},
			want: "rows",
		},
		{
			name: "width mismatch",
			art:  []string{"=============", "        "},
			mask: []string{"0123456789abc", " wwwwwwwwwww "},
			want: "width mismatch",
		},
		{
			name: "unknown mask character",
			art:  []string{"=============", "             "},
			mask: []string{"012345678Zabc", " wwwwwwwwwww "},
			want: "unknown mask character",
		},
		{
			name: "missing tier",
			art:  []string{"=============", "             "},
			mask: []string{"0123456789ab9", " wwwwwwwwwww "},
			want: "tier 12 unused",
		},
		{
			name: "tier over blank",
			art:  []string{"=== =========", "             "},
			mask: []string{"0123456789abc", " wwwwwwwwwww "},
			want: "covers a blank",
		},
		{
			name: "second slot run",
			art:  []string{"=============", "             "},
			mask: []string{"0123456789abc", " www  www    "},
			want: "second word slot run",
		},
		{
			name: "no slot run",
			art:  []string{"=============", "             "},
			mask: []string{"0123456789abc", "             "},
			want: "no word slot",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseGrids(tc.art, tc.mask, nil)
			if err == nil {
				t.Fatal("Expected an error, got none")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestMarkerTableAt(t *testing.T) {
	cases := []struct {
		table *MarkerTable
		step  int
		want  rune
	}{
		{eyeTable, 0, ' '},
		{eyeTable, 5, ' '},
		{eyeTable, 6, 'o'},
		{eyeTable, 11, 'o'},
		{eyeTable, 12, 'x'},
		{mouthTable, 5, ' '},
		{mouthTable, 6, '_'},
		{mouthTable, 8, '_'},
		{mouthTable, 9, '-'},
		{mouthTable, 11, '-'},
		{mouthTable, 12, 'o'},
	}
	for _, tc := range cases {
		if got := tc.table.At(tc.step); got != tc.want {
			t.Errorf("%s at step %d: got %q, want %q", tc.table.Name, tc.step, got, tc.want)
		}
	}

	// Past the last range the marker holds its final character
	if got := eyeTable.At(99); got != 'x' {
		t.Errorf("Eyes past final step: got %q, want 'x'", got)
	}
}

func TestSceneWellFormed(t *testing.T) {
	if scene.W != Width {
		t.Errorf("Scene width %d, want %d", scene.W, Width)
	}
	if scene.H != len(sceneArt) {
		t.Errorf("Scene height %d, want %d", scene.H, len(sceneArt))
	}
	if scene.SlotLen != 23 {
		t.Errorf("Word slot length %d, want 23", scene.SlotLen)
	}
	if scene.SlotRow != scene.H-2 {
		t.Errorf("Word slot on row %d, want %d", scene.SlotRow, scene.H-2)
	}
}
