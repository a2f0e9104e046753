package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/game"
)

// FleetPanel displays the turn count and both fleets' condition beside
// the boards. The enemy side only reveals what fog of war allows: how
// many ships are sunk, never where the rest are.
type FleetPanel struct {
	box *tview.TextView
	g   *game.Game
}

// NewFleetPanel creates an empty fleet panel.
func NewFleetPanel() *FleetPanel {
	panel := &FleetPanel{
		box: tview.NewTextView(),
	}
	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	return panel
}

// Box returns the underlying tview component.
func (p *FleetPanel) Box() *tview.TextView {
	return p.box
}

// SetGame attaches the running game and refreshes the display.
func (p *FleetPanel) SetGame(g *game.Game) {
	p.g = g
	p.Refresh()
}

// Refresh re-renders the panel from the current game state.
func (p *FleetPanel) Refresh() {
	if p.g == nil {
		p.box.SetText("")
		return
	}

	var text string
	text += "[white::b]Battle[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Turn:[-:-:-] %d\n", p.g.TurnCount())

	text += "\n[white::b]Your Fleet[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	board := p.g.PlayerA().Board()
	for _, ship := range p.g.PlayerA().Ships() {
		if ship.IsSunk(board) {
			text += fmt.Sprintf("[red]✗ %s[-]\n", ship.Kind())
		} else {
			text += fmt.Sprintf("[green]✓ %s[-]\n", ship.Kind())
		}
	}

	text += "\n[white::b]Enemy Fleet[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	sunk := 0
	enemy := p.g.PlayerB()
	for _, ship := range enemy.Ships() {
		if ship.IsSunk(enemy.Board()) {
			sunk++
		}
	}
	text += fmt.Sprintf("%d of %d ships sunk\n", sunk, len(enemy.Ships()))

	p.box.SetText(text)
}

// CreateBattleLayout arranges the two boards side by side above the hint
// bar, with the fleet panel on the right.
func CreateBattleLayout(own, enemy *BoardView, panel *FleetPanel, hint *tview.TextView) *tview.Flex {
	ownFrame := tview.NewFlex().SetDirection(tview.FlexRow)
	ownTitle := tview.NewTextView().SetText("  Your waters").SetTextAlign(tview.AlignLeft)
	ownFrame.AddItem(ownTitle, 1, 0, false)
	ownFrame.AddItem(own.Box, 0, 1, false)

	enemyFrame := tview.NewFlex().SetDirection(tview.FlexRow)
	enemyTitle := tview.NewTextView().SetText("  Enemy waters").SetTextAlign(tview.AlignLeft)
	enemyFrame.AddItem(enemyTitle, 1, 0, false)
	enemyFrame.AddItem(enemy.Box, 0, 1, true)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(ownFrame, 0, 1, false)
	boardRow.AddItem(enemyFrame, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)
	return mainFlex
}

// CreatePlacementLayout arranges the placement board beside its hint
// panel.
func CreatePlacementLayout(board *BoardView, hint *tview.TextView) *tview.Flex {
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(hint, 36, 0, false)
	return boardRow
}

// CreateCenteredFlex centers content horizontally at a fixed width.
func CreateCenteredFlex(content tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(content, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
