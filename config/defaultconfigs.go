package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCellBackground:   false,
		DrawCursorBackground: true,
		DrawLastShotBg:       true,
		Colors: ConfigColors{
			SeaColor:        24,
			SeaColorAlt:     25,
			ShipColor:       34,
			HitColor:        160,
			MissColor:       252,
			HighlightColor:  45,
			InvalidColor:    203,
			LabelColor:      245,
			CursorColorFG:   2,
			CursorColorBG:   4,
			LastShotColorBG: 2,
		},
		Symbols: ConfigSymbols{
			Water:  '·',
			Miss:   '▣',
			Hit:    '◼',
			Marker: '◼',
			Cursor: '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Gameplay: GameplayConfig{
			PlayerName:        "Player",
			ComputerName:      "Computer",
			AutoPlaceTries:    100,
			AutoPlaceRestarts: 10,
		},
	}
}
