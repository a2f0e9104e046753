// Package ui specifies custom controls for tview to assist in playing
// battleship in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/config"
	"github.com/collin-matz/battleship-terminal/game"
)

// CellSource supplies the state to render at one board position. The game
// view passes Player.Cell for the own board and Player.HiddenCell for the
// opponent's, so fog of war is decided by the engine, not the widget.
type CellSource func(row, col int) game.CellState

// Style slice indices, filled from the config theme.
const (
	styleSea = iota
	styleSeaAlt
	styleShip
	styleHit
	styleMiss
	styleHighlight
	styleInvalid
	styleLabel
	styleCursorFG
	styleCursorBG
	styleLastShotBG
	styleCount
)

// BoardView draws one 10x10 battleship board with coordinate labels, an
// optional selection cursor, and an optional last-shot marker.
type BoardView struct {
	Box   *tview.Box
	cells CellSource

	cfg    *config.Config
	styles []tcell.Color

	selRow, selCol int
	lastShot       *game.Coord

	// beforeDraw runs at the start of every draw and afterDraw at the
	// end. The placement screen uses them to apply and undo the engine's
	// transient preview overlays around each frame.
	beforeDraw func()
	afterDraw  func()
}

// NewBoardView creates a board widget reading cells from the given source.
func NewBoardView(cfg *config.Config, cells CellSource) *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		cells:  cells,
		selRow: -1,
		selCol: -1,
	}
	v.SetConfig(cfg)
	v.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		if v.beforeDraw != nil {
			v.beforeDraw()
		}
		for row := 0; row < game.Rows; row++ {
			for col := 0; col < game.Cols; col++ {
				v.drawCell(screen, x+4, y+1, row, col)
			}
		}
		v.drawLabels(screen, x, y)
		if v.afterDraw != nil {
			v.afterDraw()
		}
		return x, y, game.Cols*2 + 4, game.Rows + 2
	})
	return v
}

// SetConfig rebuilds the style table from the theme.
func (v *BoardView) SetConfig(cfg *config.Config) {
	colors := cfg.Theme.Colors
	styles := make([]tcell.Color, styleCount)
	styles[styleSea] = tcell.PaletteColor(colors.SeaColor)
	styles[styleSeaAlt] = tcell.PaletteColor(colors.SeaColorAlt)
	styles[styleShip] = tcell.PaletteColor(colors.ShipColor)
	styles[styleHit] = tcell.PaletteColor(colors.HitColor)
	styles[styleMiss] = tcell.PaletteColor(colors.MissColor)
	styles[styleHighlight] = tcell.PaletteColor(colors.HighlightColor)
	styles[styleInvalid] = tcell.PaletteColor(colors.InvalidColor)
	styles[styleLabel] = tcell.PaletteColor(colors.LabelColor)
	styles[styleCursorFG] = tcell.PaletteColor(colors.CursorColorFG)
	styles[styleCursorBG] = tcell.PaletteColor(colors.CursorColorBG)
	styles[styleLastShotBG] = tcell.PaletteColor(colors.LastShotColorBG)
	v.styles = styles
	v.cfg = cfg
}

// SetBeforeDraw registers a hook run at the start of every frame.
func (v *BoardView) SetBeforeDraw(f func()) {
	v.beforeDraw = f
}

// SetAfterDraw registers a hook run at the end of every frame.
func (v *BoardView) SetAfterDraw(f func()) {
	v.afterDraw = f
}

// SelectedCell returns the cursor position, or nil when no cell is
// selected.
func (v *BoardView) SelectedCell() *game.Coord {
	if v.selRow == -1 && v.selCol == -1 {
		return nil
	}
	return &game.Coord{Row: v.selRow, Col: v.selCol}
}

// MoveSelection moves the cursor by the given deltas, clamped to the
// board. The first move places the cursor at the board center.
func (v *BoardView) MoveSelection(dRow, dCol int) {
	if v.SelectedCell() == nil {
		v.selRow = game.Rows / 2
		v.selCol = game.Cols / 2
		return
	}
	if v.selRow+dRow < 0 || v.selRow+dRow >= game.Rows {
		return
	}
	if v.selCol+dCol < 0 || v.selCol+dCol >= game.Cols {
		return
	}
	v.selRow += dRow
	v.selCol += dCol
}

// SetSelection places the cursor on a specific cell.
func (v *BoardView) SetSelection(row, col int) {
	v.selRow = row
	v.selCol = col
}

// ResetSelection hides the cursor.
func (v *BoardView) ResetSelection() {
	v.selRow = -1
	v.selCol = -1
}

// SetLastShot marks the opponent's most recent shot for rendering, or
// clears the marker when nil.
func (v *BoardView) SetLastShot(c *game.Coord) {
	v.lastShot = c
}

func (v *BoardView) drawCell(screen tcell.Screen, left, top, row, col int) {
	state := v.cells(row, col)
	symbols := v.cfg.Theme.Symbols

	var drawRune rune
	var fg tcell.Color
	switch state.Kind {
	case game.StateGuessed:
		drawRune, fg = symbols.Miss, v.styles[styleMiss]
	case game.StateOwnShip:
		drawRune, fg = state.Ship.Symbol(), v.styles[styleShip]
	case game.StateHit:
		drawRune, fg = symbols.Hit, v.styles[styleHit]
	case game.StateHighlighted:
		drawRune, fg = symbols.Marker, v.styles[styleHighlight]
	case game.StateInvalid:
		drawRune, fg = symbols.Marker, v.styles[styleInvalid]
	default:
		drawRune, fg = symbols.Water, v.styles[styleSea]
	}

	bg := tcell.ColorDefault
	if v.cfg.Theme.DrawCellBackground {
		bg = v.styles[styleSea]
		if (row%2+col%2) == 1 {
			bg = v.styles[styleSeaAlt]
		}
	}
	if row == v.selRow && col == v.selCol {
		if v.cfg.Theme.DrawCursorBackground {
			bg = v.styles[styleCursorBG]
		} else if state.Kind == game.StateEmpty {
			drawRune = symbols.Cursor
			fg = v.styles[styleCursorFG]
		}
	} else if v.lastShot != nil && row == v.lastShot.Row && col == v.lastShot.Col {
		if v.cfg.Theme.DrawLastShotBg {
			bg = v.styles[styleLastShotBG]
		}
	}

	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	// 2 screen columns per board cell for a square appearance.
	screen.SetContent(left+col*2, top+row, drawRune, nil, style)
	screen.SetContent(left+col*2+1, top+row, ' ', nil, style)
}

func (v *BoardView) drawLabels(screen tcell.Screen, x, y int) {
	style := tcell.StyleDefault.Foreground(v.styles[styleLabel])
	highlight := tcell.StyleDefault.Background(v.styles[styleCursorBG])

	// Column letters A-J across the top.
	for col := 0; col < game.Cols; col++ {
		s := style
		if col == v.selCol {
			s = highlight
		}
		screen.SetContent(x+4+col*2, y, rune('A'+col), nil, s)
		screen.SetContent(x+4+col*2+1, y, ' ', nil, s)
	}

	// Row numbers 1-10 down the left.
	for row := 0; row < game.Rows; row++ {
		s := style
		if row == v.selRow {
			s = highlight
		}
		display := row + 1
		tens := ' '
		if display >= 10 {
			tens = rune('0' + display/10)
		}
		screen.SetContent(x+1, y+1+row, tens, nil, s)
		screen.SetContent(x+2, y+1+row, rune('0'+display%10), nil, s)
	}
}
