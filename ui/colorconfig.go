package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/config"
	"github.com/collin-matz/battleship-terminal/game"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedSeaColor  int
	selectedShipColor int
	editingShip       bool // true = editing ship color, false = editing sea color
}

// Sea colors to choose from (cool water tones)
var seaColors = []struct {
	code int
	name string
}{
	{17, "Midnight"},
	{18, "Deep Blue"},
	{19, "Navy"},
	{20, "Ocean"},
	{24, "Deep Teal"},
	{25, "Sea Blue"},
	{26, "Steel Blue"},
	{27, "Azure"},
	{30, "Teal"},
	{31, "Lagoon"},
	{37, "Turquoise"},
	{38, "Cyan Sea"},
	{60, "Slate Blue"},
	{66, "Gray Blue"},
	{67, "Storm Blue"},
	{232, "Black"},
	{236, "Dark Gray"},
	{240, "Gray"},
}

// Ship colors (tones that stand out against the water)
var shipColors = []struct {
	code int
	name string
}{
	{34, "Green"},
	{40, "Bright Green"},
	{28, "Forest"},
	{70, "Olive"},
	{100, "Khaki"},
	{142, "Brass"},
	{178, "Gold"},
	{208, "Orange"},
	{130, "Rust"},
	{245, "Hull Gray"},
	{250, "Light Gray"},
	{255, "White"},
	{109, "Blue Gray"},
	{96, "Plum"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:               cfg,
		onDone:            onDone,
		selectedSeaColor:  cfg.Theme.Colors.SeaColor,
		selectedShipColor: cfg.Theme.Colors.ShipColor,
		editingShip:       false,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Selection change updates the preview only.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingShip {
			if index >= 0 && index < len(shipColors) {
				cc.selectedShipColor = shipColors[index].code
			}
		} else {
			if index >= 0 && index < len(seaColors) {
				cc.selectedSeaColor = seaColors[index].code
			}
		}
	})

	// Confirm applies and saves.
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingShip {
			cc.cfg.Theme.Colors.ShipColor = cc.selectedShipColor
		} else {
			cc.cfg.Theme.Colors.SeaColor = cc.selectedSeaColor
			cc.cfg.Theme.Colors.SeaColorAlt = cc.selectedSeaColor + 1
		}
		cc.cfg.Save()
		if cc.onDone != nil {
			cc.onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().SetDirection(tview.FlexColumn)
	cc.flex.AddItem(cc.colorList, 0, 1, true)
	cc.flex.AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()
	if cc.editingShip {
		cc.colorList.SetTitle(" Select Ship Color (Tab: switch to sea) ")
		for i, c := range shipColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range shipColors {
			if c.code == cc.selectedShipColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Select Sea Color (Tab: switch to ship) ")
		for i, c := range seaColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		for i, c := range seaColors {
			if c.code == cc.selectedSeaColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	seaColor := tcell.PaletteColor(cc.selectedSeaColor)
	shipColor := tcell.PaletteColor(cc.selectedShipColor)
	hitColor := tcell.PaletteColor(cc.cfg.Theme.Colors.HitColor)
	missColor := tcell.PaletteColor(cc.cfg.Theme.Colors.MissColor)

	seaStyle := tcell.StyleDefault.Foreground(seaColor)
	shipStyle := tcell.StyleDefault.Foreground(shipColor)
	hitStyle := tcell.StyleDefault.Foreground(hitColor)
	missStyle := tcell.StyleDefault.Foreground(missColor)

	startX := x + 2
	startY := y + 1
	size := 7

	// Sample readings: a destroyer with one hit and a couple of misses.
	ships := map[[2]int]rune{
		{2, 2}: game.Destroyer.Symbol(),
		{3, 2}: game.Destroyer.Symbol(),
	}
	hits := map[[2]int]bool{{4, 2}: true}
	misses := map[[2]int]bool{{1, 4}: true, {5, 1}: true}

	symbols := cc.cfg.Theme.Symbols
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			screenX := startX + col*2
			screenY := startY + row

			char := symbols.Water
			style := seaStyle
			pos := [2]int{col, row}
			if r, ok := ships[pos]; ok {
				char, style = r, shipStyle
			} else if hits[pos] {
				char, style = symbols.Hit, hitStyle
			} else if misses[pos] {
				char, style = symbols.Miss, missStyle
			}

			screen.SetContent(screenX, screenY, char, nil, style)
			screen.SetContent(screenX+1, screenY, ' ', nil, style)
		}
	}

	infoStyle := tcell.StyleDefault
	var info string
	if cc.editingShip {
		info = fmt.Sprintf("Ship: %d  Sea: %d", cc.selectedShipColor, cc.selectedSeaColor)
	} else {
		info = fmt.Sprintf("Sea: %d  Ship: %d", cc.selectedSeaColor, cc.selectedShipColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between sea color and ship color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingShip = !cc.editingShip
	cc.populateColorList()
}
