package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/config"
	"github.com/collin-matz/battleship-terminal/game"
)

// PlacementUI is the interactive ship-placement screen. The candidate
// span under the cursor is previewed through the engine's transient
// highlight/invalid overlays, applied before each frame and undone after
// it, so the committed board state never drifts.
type PlacementUI struct {
	View *BoardView
	hint *tview.TextView

	player  *game.Player
	cursor  game.Coord
	orient  game.Orientation
	kindIdx int
	placed  []bool

	overlaid []game.Coord

	onDone func()
	onQuit func()
}

// NewPlacement creates the placement screen. onDone fires once every ship
// kind has been committed; onQuit fires on a user abort.
func NewPlacement(cfg *config.Config, hint *tview.TextView, onDone, onQuit func()) *PlacementUI {
	p := &PlacementUI{
		hint:   hint,
		onDone: onDone,
		onQuit: onQuit,
	}
	p.View = NewBoardView(cfg, func(row, col int) game.CellState {
		if p.player == nil {
			return game.Empty
		}
		return p.player.Cell(row, col)
	})
	p.View.SetBeforeDraw(p.applyPreview)
	p.View.SetAfterDraw(p.clearPreview)

	p.View.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			p.MoveCursor(-1, 0)
		case tcell.KeyDown:
			p.MoveCursor(1, 0)
		case tcell.KeyLeft:
			p.MoveCursor(0, -1)
		case tcell.KeyRight:
			p.MoveCursor(0, 1)
		case tcell.KeyTab:
			p.NextShip()
		case tcell.KeyEnter:
			p.PlaceCurrent()
		case tcell.KeyEsc:
			p.onQuit()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				p.MoveCursor(0, -1)
			case 'j':
				p.MoveCursor(1, 0)
			case 'k':
				p.MoveCursor(-1, 0)
			case 'l':
				p.MoveCursor(0, 1)
			case 'r':
				p.Rotate()
			case 'q':
				p.onQuit()
			}
		}
		return nil
	})
	return p
}

// Start begins a fresh placement session for the given player.
func (p *PlacementUI) Start(player *game.Player) {
	p.player = player
	p.cursor = game.Coord{}
	p.orient = game.Right
	p.kindIdx = 0
	p.placed = make([]bool, len(game.Kinds))
	p.View.SetSelection(0, 0)
	p.refreshHint()
}

// MoveCursor moves the placement origin, wrapping at the board edges.
func (p *PlacementUI) MoveCursor(dRow, dCol int) {
	p.cursor.Row = ((p.cursor.Row+dRow)%game.Rows + game.Rows) % game.Rows
	p.cursor.Col = ((p.cursor.Col+dCol)%game.Cols + game.Cols) % game.Cols
	p.View.SetSelection(p.cursor.Row, p.cursor.Col)
}

// Rotate advances the candidate ship's orientation clockwise.
func (p *PlacementUI) Rotate() {
	p.orient = p.orient.Next()
	p.refreshHint()
}

// NextShip cycles to the next ship kind that has not been placed yet.
func (p *PlacementUI) NextShip() {
	if p.player == nil || p.allPlaced() {
		return
	}
	for i := 1; i <= len(game.Kinds); i++ {
		idx := (p.kindIdx + i) % len(game.Kinds)
		if !p.placed[idx] {
			p.kindIdx = idx
			break
		}
	}
	p.refreshHint()
}

// PlaceCurrent validates the candidate span and commits it. An invalid
// span is ignored; the preview already shows why.
func (p *PlacementUI) PlaceCurrent() {
	if p.player == nil || p.allPlaced() {
		return
	}
	kind := game.Kinds[p.kindIdx]
	coords := p.player.Board().TryPlaceShip(p.cursor.Row, p.cursor.Col, p.orient, kind)
	if coords == nil {
		return
	}
	p.player.AddShip(coords, kind)
	p.placed[p.kindIdx] = true
	debugLog.Printf("placement: %s at (%d,%d) %s", kind, p.cursor.Row, p.cursor.Col, p.orient)

	if p.allPlaced() {
		p.refreshHint()
		p.onDone()
		return
	}
	p.NextShip()
}

func (p *PlacementUI) allPlaced() bool {
	for _, done := range p.placed {
		if !done {
			return false
		}
	}
	return len(p.placed) > 0
}

// previewSpan walks the candidate span from the cursor and reports the
// in-bounds portion plus whether the whole span would commit.
func (p *PlacementUI) previewSpan() ([]game.Coord, bool) {
	kind := game.Kinds[p.kindIdx]
	dr, dc := p.orient.Step()
	coords := make([]game.Coord, 0, kind.Length())
	valid := true
	for i := 0; i < kind.Length(); i++ {
		r := p.cursor.Row + dr*i
		c := p.cursor.Col + dc*i
		if r < 0 || r >= game.Rows || c < 0 || c >= game.Cols {
			valid = false
			break
		}
		if p.player.Cell(r, c).Kind != game.StateEmpty {
			valid = false
		}
		coords = append(coords, game.Coord{Row: r, Col: c})
	}
	return coords, valid
}

func (p *PlacementUI) applyPreview() {
	if p.player == nil || p.allPlaced() {
		return
	}
	coords, valid := p.previewSpan()
	for _, c := range coords {
		if valid {
			p.player.Board().Highlight(c.Row, c.Col)
		} else {
			p.player.Board().Invalidate(c.Row, c.Col)
		}
		p.overlaid = append(p.overlaid, c)
	}
}

func (p *PlacementUI) clearPreview() {
	for _, c := range p.overlaid {
		p.player.Board().Undo(c.Row, c.Col)
	}
	p.overlaid = p.overlaid[:0]
}

func (p *PlacementUI) refreshHint() {
	if p.player == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString("  Place your fleet\n\n")
	for i, kind := range game.Kinds {
		marker := "○"
		if p.placed[i] {
			marker = "●"
		}
		cursor := " "
		if i == p.kindIdx && !p.placed[i] {
			cursor = "▸"
		}
		fmt.Fprintf(&sb, " %s %s %s (%d)\n", cursor, marker, kind, kind.Length())
	}
	fmt.Fprintf(&sb, "\n  facing %s\n", p.orient)
	sb.WriteString(`
  hjkl/↑↓←→ move   r rotate
  ⇥ next ship   ⏎ place   q quit`)
	p.hint.SetText(sb.String())
}
