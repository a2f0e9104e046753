package game

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestPlayer(name string, seed int64) *Player {
	return NewPlayer(name, rand.New(rand.NewSource(seed)))
}

func TestAddShipMarksBoard(t *testing.T) {
	p := newTestPlayer("p", 1)
	coords := p.Board().TryPlaceShip(2, 3, Down, Destroyer)
	if coords == nil {
		t.Fatal("placement should succeed on an empty board")
	}
	p.AddShip(coords, Destroyer)

	if len(p.Ships()) != 1 {
		t.Fatalf("expected 1 ship, got %d", len(p.Ships()))
	}
	for _, c := range coords {
		if p.Cell(c.Row, c.Col) != OwnShip(Destroyer) {
			t.Fatalf("cell (%d,%d) should carry the ship", c.Row, c.Col)
		}
	}
}

func TestGuessHitAndIdempotence(t *testing.T) {
	p := newTestPlayer("p", 1)
	coords := p.Board().TryPlaceShip(0, 0, Right, Carrier)
	p.AddShip(coords, Carrier)

	p.Guess(0, 0)
	if p.Cell(0, 0).Kind != StateHit {
		t.Fatalf("guessing a ship cell should hit, got %+v", p.Cell(0, 0))
	}
	p.Guess(0, 0)
	if p.Cell(0, 0).Kind != StateHit {
		t.Fatal("repeated guess should leave the hit in place")
	}
}

func TestGuessMissAndIdempotence(t *testing.T) {
	p := newTestPlayer("p", 1)
	p.Guess(9, 9)
	if p.Cell(9, 9).Kind != StateGuessed {
		t.Fatalf("guessing an empty cell should record a miss, got %+v", p.Cell(9, 9))
	}
	p.Guess(9, 9)
	if p.Cell(9, 9).Kind != StateGuessed {
		t.Fatal("repeated miss should stay a miss")
	}
}

func TestHiddenCellFogOfWar(t *testing.T) {
	p := newTestPlayer("p", 1)
	coords := p.Board().TryPlaceShip(4, 4, Right, PatrolBoat)
	p.AddShip(coords, PatrolBoat)

	if p.HiddenCell(4, 4) != Empty {
		t.Fatal("unhit ship cell should read empty through the fog view")
	}
	p.Guess(4, 4)
	if p.HiddenCell(4, 4).Kind != StateHit {
		t.Fatal("hit cell should stay visible through the fog view")
	}
	p.Guess(0, 0)
	if p.HiddenCell(0, 0).Kind != StateGuessed {
		t.Fatal("guessed miss should stay visible through the fog view")
	}
}

func TestAllShipsSunk(t *testing.T) {
	p := newTestPlayer("p", 1)
	p.AddShip([]Coord{{0, 0}, {0, 1}}, PatrolBoat)
	p.AddShip([]Coord{{5, 0}, {5, 1}, {5, 2}}, Submarine)

	if p.AllShipsSunk() {
		t.Fatal("fleet should not be sunk before any guess")
	}
	for _, c := range []Coord{{0, 0}, {0, 1}, {5, 0}, {5, 1}} {
		p.Guess(c.Row, c.Col)
	}
	if p.AllShipsSunk() {
		t.Fatal("fleet should not be sunk with one cell remaining")
	}
	p.Guess(5, 2)
	if !p.AllShipsSunk() {
		t.Fatal("fleet with every cell hit should be sunk")
	}
}

func TestAutoPlaceShipsFillsFleet(t *testing.T) {
	p := newTestPlayer("p", 42)
	if err := p.AutoPlaceShips(50, 20); err != nil {
		t.Fatalf("auto placement failed: %v", err)
	}
	if len(p.Ships()) != len(Kinds) {
		t.Fatalf("expected %d ships, got %d", len(Kinds), len(p.Ships()))
	}

	occupied := map[Coord]bool{}
	for _, s := range p.Ships() {
		if len(s.Coords()) != s.Kind().Length() {
			t.Fatalf("%s: expected %d coords, got %d", s.Kind(), s.Kind().Length(), len(s.Coords()))
		}
		for _, c := range s.Coords() {
			if occupied[c] {
				t.Fatalf("cell (%d,%d) assigned to more than one ship", c.Row, c.Col)
			}
			occupied[c] = true
		}
	}
	if len(occupied) != FleetSize() {
		t.Fatalf("expected %d occupied cells, got %d", FleetSize(), len(occupied))
	}

	// The board must agree exactly with the fleet's coordinate union.
	marked := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if p.Cell(r, c).Kind == StateOwnShip {
				marked++
				if !occupied[Coord{Row: r, Col: c}] {
					t.Fatalf("board cell (%d,%d) marked but owned by no ship", r, c)
				}
			}
		}
	}
	if marked != FleetSize() {
		t.Fatalf("expected %d marked cells on board, got %d", FleetSize(), marked)
	}
}

func TestAutoPlaceShipsExhaustion(t *testing.T) {
	p := newTestPlayer("p", 1)
	err := p.AutoPlaceShips(0, 3)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("expected ErrPlacementExhausted, got %v", err)
	}
	if len(p.Ships()) != 0 {
		t.Fatal("failed placement should leave no ships behind")
	}
}

func TestAutoPlaceShipsRestartClearsPartialFleet(t *testing.T) {
	// One try per ship forces frequent restarts; success must still end
	// with a complete, consistent fleet.
	p := newTestPlayer("p", 7)
	if err := p.AutoPlaceShips(1, 10000); err != nil {
		t.Fatalf("auto placement failed: %v", err)
	}
	if len(p.Ships()) != len(Kinds) {
		t.Fatalf("expected %d ships, got %d", len(Kinds), len(p.Ships()))
	}
}

func TestAutoGuessFindsLastUnresolvedCell(t *testing.T) {
	p := newTestPlayer("p", 3)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if r == 7 && c == 7 {
				continue
			}
			p.Guess(r, c)
		}
	}
	shot, ok := p.AutoGuess()
	if !ok {
		t.Fatal("auto guess should find the remaining cell")
	}
	if shot != (Coord{Row: 7, Col: 7}) {
		t.Fatalf("expected shot at (7,7), got %+v", shot)
	}
	if p.Cell(7, 7).Kind != StateGuessed {
		t.Fatal("auto guess should resolve the chosen cell")
	}
}

func TestAutoGuessExhaustedBoard(t *testing.T) {
	p := newTestPlayer("p", 3)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p.Guess(r, c)
		}
	}
	if _, ok := p.AutoGuess(); ok {
		t.Fatal("auto guess on a fully resolved board should report no shot")
	}
}

func TestAutoGuessHitsShips(t *testing.T) {
	p := newTestPlayer("p", 11)
	coords := p.Board().TryPlaceShip(0, 0, Right, PatrolBoat)
	p.AddShip(coords, PatrolBoat)

	// Enough guesses to cover the whole board resolves everything.
	for i := 0; i < Rows*Cols; i++ {
		if _, ok := p.AutoGuess(); !ok {
			break
		}
	}
	if !p.AllShipsSunk() {
		t.Fatal("exhaustive auto guessing should sink the fleet")
	}
}
