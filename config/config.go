package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "battleship-terminal/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds 256-color palette indices for board rendering.
type ConfigColors struct {
	SeaColor        int `json:"sea"`
	SeaColorAlt     int `json:"sea_alt"`
	ShipColor       int `json:"ship"`
	HitColor        int `json:"hit"`
	MissColor       int `json:"miss"`
	HighlightColor  int `json:"highlight"`
	InvalidColor    int `json:"invalid"`
	LabelColor      int `json:"label"`
	CursorColorFG   int `json:"cursor_fg"`
	CursorColorBG   int `json:"cursor_bg"`
	LastShotColorBG int `json:"last_shot_bg"`
}

// ConfigSymbols holds the runes used for each cell reading.
type ConfigSymbols struct {
	Water  rune `json:"water"`
	Miss   rune `json:"miss"`
	Hit    rune `json:"hit"`
	Marker rune `json:"marker"` // placement preview, valid or invalid
	Cursor rune `json:"cursor"`
}

type Theme struct {
	DrawCellBackground   bool          `json:"draw_cell_bg"`
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	DrawLastShotBg       bool          `json:"draw_last_shot_bg"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameplayConfig holds engine-facing defaults.
type GameplayConfig struct {
	PlayerName        string `json:"player_name"`
	ComputerName      string `json:"computer_name"`
	AutoPlaceTries    int    `json:"auto_place_tries"`
	AutoPlaceRestarts int    `json:"auto_place_restarts"`
}

type Config struct {
	Theme    Theme          `json:"theme"`
	Gameplay GameplayConfig `json:"gameplay"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Water, c.Theme.Symbols.Miss, c.Theme.Symbols.Hit, c.Theme.Symbols.Marker, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Gameplay.AutoPlaceTries < 1 || c.Gameplay.AutoPlaceRestarts < 1 {
		return &InvalidConfig{"auto placement budgets must be at least 1"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
