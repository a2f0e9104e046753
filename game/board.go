// Package game implements the battleship board state machine and
// turn-resolution engine: cell-state transitions, placement validation,
// guess resolution, win detection, and the randomized placement and
// targeting used by the computer opponent.
package game

import "fmt"

// Board dimensions. The game is played on a fixed 10x10 grid per side.
const (
	Rows = 10
	Cols = 10
)

// StateKind enumerates what occupies a board cell.
type StateKind int

const (
	StateEmpty StateKind = iota
	StateGuessed
	StateOwnShip
	StateHit
	StateHighlighted
	StateInvalid
)

// CellState is the value stored in a board cell. Ship is meaningful only
// when Kind is StateOwnShip; it records which ship kind occupies the cell.
type CellState struct {
	Kind StateKind
	Ship ShipKind
}

// Empty is the zero cell state.
var Empty = CellState{Kind: StateEmpty}

// OwnShip returns the state marking occupancy by the given ship kind.
func OwnShip(kind ShipKind) CellState {
	return CellState{Kind: StateOwnShip, Ship: kind}
}

// Coord is a board position. Row and Col are in [0, Rows) and [0, Cols).
type Coord struct {
	Row int
	Col int
}

// Cell is one board position. It keeps the current state plus the last
// committed state, so a transient overlay (highlight or invalid-placement
// marker) can be undone exactly.
type Cell struct {
	state    CellState
	baseline CellState
}

// State returns the cell's current state.
func (c *Cell) State() CellState {
	return c.state
}

// Commit permanently transitions the cell: both the current state and the
// restore point move together. Committing the same state twice is a no-op.
func (c *Cell) Commit(s CellState) {
	c.state = s
	c.baseline = s
}

// overlay saves the current state as the restore point and replaces it
// with a transient marker. Nesting overlays without an intervening Undo
// is not supported.
func (c *Cell) overlay(kind StateKind) {
	c.baseline = c.state
	c.state = CellState{Kind: kind}
}

// Highlight applies the transient placement-preview marker.
func (c *Cell) Highlight() {
	c.overlay(StateHighlighted)
}

// Invalidate applies the transient invalid-placement marker.
func (c *Cell) Invalidate() {
	c.overlay(StateInvalid)
}

// Undo restores the state saved by the last Highlight or Invalidate.
func (c *Cell) Undo() {
	c.state = c.baseline
}

// Board is a player's 10x10 grid, stored row-major.
type Board struct {
	cells [Rows * Cols]Cell
}

// NewBoard returns a board of all-empty cells.
func NewBoard() *Board {
	return &Board{}
}

// Reset returns every cell to empty.
func (b *Board) Reset() {
	b.cells = [Rows * Cols]Cell{}
}

// At returns the cell at the given position. Coordinates outside the grid
// are a caller bug, not a game condition, and panic.
func (b *Board) At(row, col int) *Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		panic(fmt.Sprintf("game: coordinate (%d,%d) outside %dx%d board", row, col, Rows, Cols))
	}
	return &b.cells[row*Cols+col]
}

// Commit permanently sets the state of one cell.
func (b *Board) Commit(row, col int, s CellState) {
	b.At(row, col).Commit(s)
}

// Highlight marks a cell with the transient placement-preview state.
func (b *Board) Highlight(row, col int) {
	b.At(row, col).Highlight()
}

// Invalidate marks a cell with the transient invalid-placement state.
func (b *Board) Invalidate(row, col int) {
	b.At(row, col).Invalidate()
}

// Undo reverts a cell to the state it held before Highlight or Invalidate.
func (b *Board) Undo(row, col int) {
	b.At(row, col).Undo()
}

// TryPlaceShip walks kind.Length() cells from the origin, one step per
// cell in the given orientation, and returns the coordinates the ship
// would occupy in traversal order. It returns nil as soon as a step would
// leave the grid or land on a non-empty cell. The board is not mutated;
// callers commit a successful placement through Player.AddShip.
func (b *Board) TryPlaceShip(row, col int, orient Orientation, kind ShipKind) []Coord {
	dr, dc := orient.Step()
	coords := make([]Coord, 0, kind.Length())
	for i := 0; i < kind.Length(); i++ {
		r := row + dr*i
		c := col + dc*i
		if r < 0 || r >= Rows || c < 0 || c >= Cols {
			return nil
		}
		if b.At(r, c).State().Kind != StateEmpty {
			return nil
		}
		coords = append(coords, Coord{Row: r, Col: c})
	}
	return coords
}
