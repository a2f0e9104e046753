package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/collin-matz/battleship-terminal/config"
)

// Focus order inside the menu card.
const (
	menuFocusName = iota
	menuFocusMode
	menuFocusStart
	menuFocusColors
	menuFocusQuit
	menuFocusCount
)

// MainMenuUI is the entry screen: player name, fleet-placement mode, and
// the start/colors/quit actions, composed from the card widgets.
type MainMenuUI struct {
	*MenuCard

	name    *NameInput
	mode    *RadioSelect
	start   *MenuButton
	colors  *MenuButton
	quit    *MenuButton
	focus   int

	autoPlace bool
}

// NewMainMenu creates the main menu. onStart receives the player name and
// whether the fleet should be placed automatically.
func NewMainMenu(cfg *config.Config, onStart func(name string, autoPlace bool), onColors, onQuit func()) *MainMenuUI {
	m := &MainMenuUI{
		MenuCard: NewMenuCard("B A T T L E S H I P"),
	}

	m.name = NewNameInput("Name", cfg.Gameplay.PlayerName, nil)
	m.mode = NewRadioSelect("Fleet Placement", []RadioOption{
		{Label: "Manual", Description: "place each ship yourself"},
		{Label: "Auto", Description: "random layout"},
	}, 0, func(index int) {
		m.autoPlace = index == 1
	})
	m.start = NewMenuButton("Start Game", true, func() {
		name := m.name.Value()
		if name == "" {
			name = cfg.Gameplay.PlayerName
		}
		onStart(name, m.autoPlace)
	})
	m.colors = NewMenuButton("Board Colors", false, onColors)
	m.quit = NewMenuButton("Quit", false, onQuit)

	m.name.SetFocused(true)

	m.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			m.moveFocus(1)
			return nil
		case tcell.KeyBacktab:
			m.moveFocus(-1)
			return nil
		case tcell.KeyEsc:
			onQuit()
			return nil
		case tcell.KeyUp, tcell.KeyDown:
			// Radio consumes vertical keys; elsewhere they move focus.
			if m.focus == menuFocusMode && m.mode.HandleKey(event) {
				return nil
			}
			if event.Key() == tcell.KeyUp {
				m.moveFocus(-1)
			} else {
				m.moveFocus(1)
			}
			return nil
		}
		if m.focused().HandleKey(event) {
			return nil
		}
		return event
	})
	return m
}

// menuChild is the common surface of the focusable card widgets.
type menuChild interface {
	SetFocused(bool)
	HandleKey(*tcell.EventKey) bool
}

func (m *MainMenuUI) children() [menuFocusCount]menuChild {
	return [menuFocusCount]menuChild{m.name, m.mode, m.start, m.colors, m.quit}
}

func (m *MainMenuUI) focused() menuChild {
	return m.children()[m.focus]
}

func (m *MainMenuUI) moveFocus(delta int) {
	kids := m.children()
	kids[m.focus].SetFocused(false)
	m.focus = ((m.focus+delta)%menuFocusCount + menuFocusCount) % menuFocusCount
	kids[m.focus].SetFocused(true)
}

// Draw renders the card frame and the widgets inside it.
func (m *MainMenuUI) Draw(screen tcell.Screen) {
	m.MenuCard.Draw(screen)

	x, y, width, _ := m.GetInnerRect()
	inX := x + 4
	inW := width - 8

	row := y + 6
	row += m.name.Draw(screen, inX, row, inW) + 1
	row += m.mode.Draw(screen, inX, row, inW) + 1

	m.DrawDivider(screen, row)
	row += 2

	col := inX
	for _, b := range []*MenuButton{m.start, m.colors, m.quit} {
		col += b.Draw(screen, col, row) + 3
	}
}

// Height returns the rows the menu card needs.
func (m *MainMenuUI) Height() int {
	// borders + title block + name + radio + divider + buttons + padding
	return 6 + 2 + 1 + len(m.mode.options) + 1 + 2 + 2 + 2
}
