package game

import "math/rand"

// Orientation is the direction a ship extends from its origin cell.
type Orientation int

const (
	Left Orientation = iota
	Up
	Right
	Down
)

// Next returns the next orientation in clockwise order.
func (o Orientation) Next() Orientation {
	return (o + 1) % 4
}

// Step returns the per-cell row and column deltas for the orientation.
func (o Orientation) Step() (dr, dc int) {
	switch o {
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	default:
		return 1, 0
	}
}

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	default:
		return "Down"
	}
}

// RandomOrientation draws one of the four orientations uniformly.
func RandomOrientation(rng *rand.Rand) Orientation {
	return Orientation(rng.Intn(4))
}

// ShipKind identifies one of the five fixed ship templates.
type ShipKind int

const (
	Carrier ShipKind = iota
	Battleship
	Destroyer
	Submarine
	PatrolBoat
)

// Kinds lists every ship kind in catalog (placement) order.
var Kinds = []ShipKind{Carrier, Battleship, Destroyer, Submarine, PatrolBoat}

var shipSpecs = [...]struct {
	name   string
	length int
	symbol rune
}{
	Carrier:    {"Carrier", 5, 'C'},
	Battleship: {"Battleship", 4, 'B'},
	Destroyer:  {"Destroyer", 3, 'D'},
	Submarine:  {"Submarine", 3, 'S'},
	PatrolBoat: {"Patrol Boat", 2, 'P'},
}

func (k ShipKind) String() string {
	return shipSpecs[k].name
}

// Length returns how many cells the ship kind occupies.
func (k ShipKind) Length() int {
	return shipSpecs[k].length
}

// Symbol returns the single-rune display symbol for the ship kind.
func (k ShipKind) Symbol() rune {
	return shipSpecs[k].symbol
}

// FleetSize is the total number of cells a fully placed fleet occupies.
func FleetSize() int {
	n := 0
	for _, k := range Kinds {
		n += k.Length()
	}
	return n
}

// Ship is a placed ship: a kind plus the board coordinates it occupies,
// in placement traversal order. A ship references coordinates into its
// owner's board; it never holds cells directly, so sunk status is always
// re-read through the board.
type Ship struct {
	kind   ShipKind
	coords []Coord
}

// NewShip records a placement. The coordinates must come from a
// successful Board.TryPlaceShip call; they are not re-validated here.
func NewShip(kind ShipKind, coords []Coord) Ship {
	return Ship{kind: kind, coords: coords}
}

// Kind returns the ship's template.
func (s *Ship) Kind() ShipKind {
	return s.kind
}

// Coords returns the coordinates the ship occupies.
func (s *Ship) Coords() []Coord {
	return s.coords
}

// IsSunk reports whether every cell the ship occupies reads Hit on the
// given board. Recomputed on every call; the board is small.
func (s *Ship) IsSunk(b *Board) bool {
	for _, c := range s.coords {
		if b.At(c.Row, c.Col).State().Kind != StateHit {
			return false
		}
	}
	return true
}
