package gallows

// The scene: a gallows with the hanged man above a banner box that
// carries the obfuscated word. Both grids are 27 columns by 13 rows.
//
// Mask alphabet:
//
//	' '        never shown
//	'0'..'9'   reveal tiers 0-9 ('0' is always visible)
//	'a'..'c'   reveal tiers 10-12
//	'E', 'M'   eyes and mouth, drawn from step-keyed tables
//	'w'        the word slot run
//
// Reveal order: banner box (0), ground (1), post (2), beam (3), brace
// (4), rope (5), head (6), torso (7), arms (8, 9), legs (10, 11),
// feet (12). The face cells always come from the marker tables, never
// from the drawing.
var sceneArt = []string{
	`    +=======+              `,
	`    |/      |              `,
	`    |     (o_o)            `,
	`    |       |              `,
	`    |      /|\             `,
	`    |     / | \            `,
	`    |       |              `,
	`    |      / \             `,
	`    |    _/   \_           `,
	` ===+===                   `,
	`+=========================+`,
	`|                         |`,
	`+=========================+`,
}

var sceneMask = []string{
	`    333333333              `,
	`    24      5              `,
	`    2     6EME6            `,
	`    2       7              `,
	`    2      879             `,
	`    2     8 7 9            `,
	`    2       7              `,
	`    2      a b             `,
	`    2    ca   bc           `,
	` 1111111                   `,
	`000000000000000000000000000`,
	`0 wwwwwwwwwwwwwwwwwwwwwww 0`,
	`000000000000000000000000000`,
}

// eyeTable: the eyes open with the head and go crossed on the final
// step.
var eyeTable = &MarkerTable{
	Name: "eyes",
	Ranges: []MarkerRange{
		{Upto: 5, Char: ' '},
		{Upto: 11, Char: 'o'},
		{Upto: MaxStep, Char: 'x'},
	},
}

// mouthTable: neutral with the head, worried once the arms are up,
// agape on the final step.
var mouthTable = &MarkerTable{
	Name: "mouth",
	Ranges: []MarkerRange{
		{Upto: 5, Char: ' '},
		{Upto: 8, Char: '_'},
		{Upto: 11, Char: '-'},
		{Upto: MaxStep, Char: 'o'},
	},
}

var markerTables = map[rune]*MarkerTable{
	'E': eyeTable,
	'M': mouthTable,
}

// scene is the parsed grid pair. The data above is fixed, so a parse
// failure is a programming error caught at startup.
var scene = mustParseScene()

func mustParseScene() *Grid {
	g, err := parseGrids(sceneArt, sceneMask, markerTables)
	if err != nil {
		panic(err)
	}
	return g
}
