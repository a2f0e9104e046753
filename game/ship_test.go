package game

import (
	"math/rand"
	"testing"
)

func TestCatalog(t *testing.T) {
	lengths := map[ShipKind]int{
		Carrier:    5,
		Battleship: 4,
		Destroyer:  3,
		Submarine:  3,
		PatrolBoat: 2,
	}
	if len(Kinds) != 5 {
		t.Fatalf("expected 5 ship kinds, got %d", len(Kinds))
	}
	for _, k := range Kinds {
		if k.Length() != lengths[k] {
			t.Fatalf("%s: expected length %d, got %d", k, lengths[k], k.Length())
		}
	}
	if FleetSize() != 17 {
		t.Fatalf("expected fleet size 17, got %d", FleetSize())
	}
}

func TestOrientationNextRotatesClockwise(t *testing.T) {
	order := []Orientation{Left, Up, Right, Down, Left}
	for i := 0; i < 4; i++ {
		if order[i].Next() != order[i+1] {
			t.Fatalf("%s.Next() should be %s, got %s", order[i], order[i+1], order[i].Next())
		}
	}
}

func TestOrientationStep(t *testing.T) {
	steps := map[Orientation][2]int{
		Left:  {0, -1},
		Up:    {-1, 0},
		Right: {0, 1},
		Down:  {1, 0},
	}
	for o, want := range steps {
		dr, dc := o.Step()
		if dr != want[0] || dc != want[1] {
			t.Fatalf("%s: expected step (%d,%d), got (%d,%d)", o, want[0], want[1], dr, dc)
		}
	}
}

func TestRandomOrientationCoversAll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[Orientation]bool{}
	for i := 0; i < 100; i++ {
		seen[RandomOrientation(rng)] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all 4 orientations after 100 draws, got %d", len(seen))
	}
}

func TestIsSunk(t *testing.T) {
	b := NewBoard()
	coords := b.TryPlaceShip(0, 0, Right, Carrier)
	if coords == nil {
		t.Fatal("carrier placement should succeed on an empty board")
	}
	ship := NewShip(Carrier, coords)
	for _, c := range coords {
		b.Commit(c.Row, c.Col, OwnShip(Carrier))
	}

	for i, c := range coords {
		if ship.IsSunk(b) {
			t.Fatalf("ship should not be sunk with %d of %d cells hit", i, len(coords))
		}
		b.Commit(c.Row, c.Col, CellState{Kind: StateHit})
	}
	if !ship.IsSunk(b) {
		t.Fatal("ship with every cell hit should be sunk")
	}
}

func TestIsSunkIndependentShips(t *testing.T) {
	b := NewBoard()
	hit := NewShip(PatrolBoat, []Coord{{0, 0}, {0, 1}})
	intact := NewShip(PatrolBoat, []Coord{{5, 5}, {5, 6}})
	for _, c := range hit.Coords() {
		b.Commit(c.Row, c.Col, CellState{Kind: StateHit})
	}
	for _, c := range intact.Coords() {
		b.Commit(c.Row, c.Col, OwnShip(PatrolBoat))
	}
	if !hit.IsSunk(b) {
		t.Fatal("fully hit ship should be sunk")
	}
	if intact.IsSunk(b) {
		t.Fatal("untouched ship should not be sunk")
	}
}
