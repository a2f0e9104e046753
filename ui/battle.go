package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/config"
	"github.com/collin-matz/battleship-terminal/game"
)

// BattleUI is the main game screen: the player's own board beside the
// opponent's fogged board, a fleet panel, and a hint bar. Each Enter
// press resolves one full round through the engine.
type BattleUI struct {
	Frame *tview.Flex

	own   *BoardView
	enemy *BoardView
	panel *FleetPanel
	hint  *tview.TextView

	g        *game.Game
	finished bool

	onEnd  func(winner string)
	onQuit func()
}

// NewBattle creates the battle screen. onEnd fires with the winner's name
// when a fleet is sunk; onQuit fires on a user abort, which is a distinct
// way out of the game.
func NewBattle(cfg *config.Config, hint *tview.TextView, onEnd func(winner string), onQuit func()) *BattleUI {
	b := &BattleUI{
		hint:   hint,
		panel:  NewFleetPanel(),
		onEnd:  onEnd,
		onQuit: onQuit,
	}
	b.own = NewBoardView(cfg, func(row, col int) game.CellState {
		if b.g == nil {
			return game.Empty
		}
		return b.g.PlayerA().Cell(row, col)
	})
	b.enemy = NewBoardView(cfg, func(row, col int) game.CellState {
		if b.g == nil {
			return game.Empty
		}
		return b.g.PlayerB().HiddenCell(row, col)
	})
	b.Frame = CreateBattleLayout(b.own, b.enemy, b.panel, hint)

	b.enemy.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			b.enemy.MoveSelection(-1, 0)
		case tcell.KeyDown:
			b.enemy.MoveSelection(1, 0)
		case tcell.KeyLeft:
			b.enemy.MoveSelection(0, -1)
		case tcell.KeyRight:
			b.enemy.MoveSelection(0, 1)
		case tcell.KeyEnter:
			b.fire()
		case tcell.KeyEsc:
			b.onQuit()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				b.enemy.MoveSelection(0, -1)
			case 'j':
				b.enemy.MoveSelection(1, 0)
			case 'k':
				b.enemy.MoveSelection(-1, 0)
			case 'l':
				b.enemy.MoveSelection(0, 1)
			case 'q':
				b.onQuit()
			}
		}
		return nil
	})
	return b
}

// Board returns the primitive that should receive focus.
func (b *BattleUI) Board() *tview.Box {
	return b.enemy.Box
}

// SetConfig pushes a new theme to both board widgets.
func (b *BattleUI) SetConfig(cfg *config.Config) {
	b.own.SetConfig(cfg)
	b.enemy.SetConfig(cfg)
}

// Start attaches a freshly created game whose players have completed
// placement.
func (b *BattleUI) Start(g *game.Game) {
	b.g = g
	b.finished = false
	b.enemy.SetSelection(game.Rows/2, game.Cols/2)
	b.own.SetLastShot(nil)
	b.panel.SetGame(g)
	b.refreshHint()
}

// fire resolves one round at the enemy-board cursor.
func (b *BattleUI) fire() {
	if b.finished || b.g == nil {
		return
	}
	sel := b.enemy.SelectedCell()
	if sel == nil {
		return
	}
	outcome := b.g.PlayTurn(sel.Row, sel.Col)
	debugLog.Printf("battle: turn %d shot (%d,%d) outcome %d", b.g.TurnCount(), sel.Row, sel.Col, outcome)

	if shot, ok := b.g.LastShotAtA(); ok {
		b.own.SetLastShot(&shot)
	}
	b.panel.Refresh()
	b.refreshHint()

	switch outcome {
	case game.TurnPlayerAWon:
		b.finished = true
		b.enemy.ResetSelection()
		b.onEnd(b.g.PlayerA().Name())
	case game.TurnPlayerBWon:
		b.finished = true
		b.enemy.ResetSelection()
		b.onEnd(b.g.PlayerB().Name())
	}
}

func (b *BattleUI) refreshHint() {
	if b.g == nil {
		b.hint.SetText("")
		return
	}
	text := fmt.Sprintf("  Turn %d · pick a cell on the enemy board\n", b.g.TurnCount())
	text += `
  hjkl/↑↓←→ move   ⏎ fire   q quit`
	b.hint.SetText(text)
}
