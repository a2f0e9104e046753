package game

import (
	"errors"
	"math/rand"
)

// ErrPlacementExhausted is returned by AutoPlaceShips when every restart
// attempt fails to place the full fleet. Callers may retry with larger
// budgets.
var ErrPlacementExhausted = errors.New("game: auto placement exhausted all restarts")

// Player owns one board and the ships placed on it. The random source is
// injected so tests can drive AutoGuess and AutoPlaceShips with a seeded
// generator.
type Player struct {
	name  string
	board *Board
	ships []Ship
	rng   *rand.Rand
}

// NewPlayer creates a player with an empty board and no placed ships.
func NewPlayer(name string, rng *rand.Rand) *Player {
	return &Player{
		name:  name,
		board: NewBoard(),
		rng:   rng,
	}
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.name
}

// Board returns the player's board.
func (p *Player) Board() *Board {
	return p.board
}

// Ships returns the ships placed so far, in placement order.
func (p *Player) Ships() []Ship {
	return p.ships
}

// Cell returns the full state of one of the player's cells. Used for
// rendering the player's own board.
func (p *Player) Cell(row, col int) CellState {
	return p.board.At(row, col).State()
}

// HiddenCell returns the state of one of the player's cells as seen by
// the opponent: unhit ship cells read as empty so the opponent's view
// preserves fog of war.
func (p *Player) HiddenCell(row, col int) CellState {
	s := p.board.At(row, col).State()
	if s.Kind == StateOwnShip {
		return Empty
	}
	return s
}

// AddShip records a placement and commits ship occupancy to the board.
// The coordinates must come from a successful TryPlaceShip call against
// this player's board; arbitrary coordinates break the board/fleet
// invariant.
func (p *Player) AddShip(coords []Coord, kind ShipKind) {
	p.ships = append(p.ships, NewShip(kind, coords))
	for _, c := range coords {
		p.board.Commit(c.Row, c.Col, OwnShip(kind))
	}
}

// Guess resolves an attack on one of the player's cells. A ship cell
// becomes a hit, an empty cell becomes a guessed miss, and a cell already
// resolved is left untouched: guesses are idempotent.
func (p *Player) Guess(row, col int) {
	switch p.board.At(row, col).State().Kind {
	case StateOwnShip:
		p.board.Commit(row, col, CellState{Kind: StateHit})
	case StateEmpty:
		p.board.Commit(row, col, CellState{Kind: StateGuessed})
	}
}

// unresolved reports whether a cell can still receive a meaningful guess.
func (p *Player) unresolved(row, col int) bool {
	k := p.board.At(row, col).State().Kind
	return k != StateHit && k != StateGuessed
}

// AutoGuess picks an unresolved cell uniformly at random and applies
// Guess to it, returning the chosen coordinate. Rejection sampling is
// capped at one board's worth of draws; past the cap the unresolved set
// is collected and sampled directly, so a nearly full board cannot spin.
// ok is false when every cell is already resolved.
func (p *Player) AutoGuess() (Coord, bool) {
	for i := 0; i < Rows*Cols; i++ {
		r := p.rng.Intn(Rows)
		c := p.rng.Intn(Cols)
		if p.unresolved(r, c) {
			p.Guess(r, c)
			return Coord{Row: r, Col: c}, true
		}
	}

	var open []Coord
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if p.unresolved(r, c) {
				open = append(open, Coord{Row: r, Col: c})
			}
		}
	}
	if len(open) == 0 {
		return Coord{}, false
	}
	pick := open[p.rng.Intn(len(open))]
	p.Guess(pick.Row, pick.Col)
	return pick, true
}

// AutoPlaceShips places the full catalog at random. For each restart the
// board and fleet are cleared, then every ship kind in catalog order gets
// up to maxTriesPerShip random (origin, orientation) draws; the first
// draw that validates is committed. A kind that exhausts its tries
// abandons the whole restart attempt rather than backtracking a single
// ship. Returns ErrPlacementExhausted when every restart fails.
func (p *Player) AutoPlaceShips(maxTriesPerShip, maxRestarts int) error {
restart:
	for attempt := 0; attempt < maxRestarts; attempt++ {
		p.ships = nil
		p.board.Reset()

		for _, kind := range Kinds {
			placed := false
			for try := 0; try < maxTriesPerShip; try++ {
				orient := RandomOrientation(p.rng)
				r := p.rng.Intn(Rows)
				c := p.rng.Intn(Cols)
				if coords := p.board.TryPlaceShip(r, c, orient, kind); coords != nil {
					p.AddShip(coords, kind)
					placed = true
					break
				}
			}
			if !placed {
				continue restart
			}
		}
		return nil
	}
	return ErrPlacementExhausted
}

// AllShipsSunk reports whether every ship the player placed is sunk.
func (p *Player) AllShipsSunk() bool {
	for i := range p.ships {
		if !p.ships[i].IsSunk(p.board) {
			return false
		}
	}
	return true
}
