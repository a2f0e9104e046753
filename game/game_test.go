package game

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// fleetOfOne gives a player a single patrol boat at the given origin.
func fleetOfOne(t *testing.T, p *Player, row, col int) []Coord {
	t.Helper()
	coords := p.Board().TryPlaceShip(row, col, Right, PatrolBoat)
	if coords == nil {
		t.Fatalf("patrol boat placement at (%d,%d) should succeed", row, col)
	}
	p.AddShip(coords, PatrolBoat)
	return coords
}

func TestNewGameStartsAtTurnOne(t *testing.T) {
	g := NewGame(newTestPlayer("a", 1), newTestPlayer("b", 2))
	if g.TurnCount() != 1 {
		t.Fatalf("turn count should start at 1, got %d", g.TurnCount())
	}
}

func TestPlayTurnContinueIncrementsTurn(t *testing.T) {
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	fleetOfOne(t, a, 0, 0)
	fleetOfOne(t, b, 9, 8)
	g := NewGame(a, b)

	if outcome := g.PlayTurn(5, 5); outcome != TurnContinue {
		t.Fatalf("missing shot should continue the game, got %v", outcome)
	}
	if g.TurnCount() != 2 {
		t.Fatalf("turn count should advance to 2, got %d", g.TurnCount())
	}
	if _, ok := g.LastShotAtA(); !ok {
		t.Fatal("opponent should have answered with a shot at player A")
	}
}

func TestPlayTurnStaleGuessIsNoOp(t *testing.T) {
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	fleetOfOne(t, a, 0, 0)
	fleetOfOne(t, b, 9, 8)
	g := NewGame(a, b)

	if outcome := g.PlayTurn(5, 5); outcome != TurnContinue {
		t.Fatalf("first shot should continue, got %v", outcome)
	}
	turns := g.TurnCount()

	if outcome := g.PlayTurn(5, 5); outcome != TurnContinue {
		t.Fatalf("stale shot should continue, got %v", outcome)
	}
	if g.TurnCount() != turns {
		t.Fatalf("stale shot must not advance the turn counter: %d -> %d", turns, g.TurnCount())
	}
	if b.Cell(5, 5).Kind != StateGuessed {
		t.Fatal("stale shot must not change the cell")
	}
}

func TestPlayTurnPlayerAWins(t *testing.T) {
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	// A's fleet is a carrier: two automatic guesses cannot sink it, so
	// sinking B's patrol boat in two rounds must end with A the winner.
	coords := a.Board().TryPlaceShip(0, 0, Right, Carrier)
	a.AddShip(coords, Carrier)
	bCoords := fleetOfOne(t, b, 9, 8)
	g := NewGame(a, b)

	if outcome := g.PlayTurn(bCoords[0].Row, bCoords[0].Col); outcome != TurnContinue {
		t.Fatalf("first hit should not end the game, got %v", outcome)
	}
	if outcome := g.PlayTurn(bCoords[1].Row, bCoords[1].Col); outcome != TurnPlayerAWon {
		t.Fatalf("sinking the last ship should declare player A, got %v", outcome)
	}
	if g.TurnCount() != 2 {
		t.Fatalf("turn count should not advance past the winning round, got %d", g.TurnCount())
	}
}

func TestPlayTurnChecksOpponentFleetFirst(t *testing.T) {
	// Both fleets are one cell from sunk and player A's last cell is the
	// only unresolved cell on A's board, so the automatic reply is forced
	// to sink A in the same round. The opponent's fleet is checked first,
	// so player A must still win.
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	aCoords := fleetOfOne(t, a, 0, 0)
	bCoords := fleetOfOne(t, b, 9, 8)

	a.Guess(aCoords[0].Row, aCoords[0].Col)
	b.Guess(bCoords[0].Row, bCoords[0].Col)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if r == aCoords[1].Row && c == aCoords[1].Col {
				continue
			}
			a.Guess(r, c)
		}
	}

	g := NewGame(a, b)
	if outcome := g.PlayTurn(bCoords[1].Row, bCoords[1].Col); outcome != TurnPlayerAWon {
		t.Fatalf("player A's win must take precedence, got %v", outcome)
	}
	if !a.AllShipsSunk() {
		t.Fatal("the forced reply should have sunk player A's fleet too")
	}
}

func TestRunPlaysToWin(t *testing.T) {
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	coords := a.Board().TryPlaceShip(0, 0, Right, Carrier)
	a.AddShip(coords, Carrier)
	bCoords := fleetOfOne(t, b, 9, 8)
	g := NewGame(a, b)

	next := 0
	reason, err := g.Run(MoveFunc(func() (int, int, error) {
		c := bCoords[next]
		next++
		return c.Row, c.Col, nil
	}))
	if err != nil {
		t.Fatalf("run should end cleanly, got %v", err)
	}
	if reason != EndPlayerAWon {
		t.Fatalf("expected player A to win, got %v", reason)
	}
}

func TestRunAbortDistinctFromWin(t *testing.T) {
	a := newTestPlayer("a", 1)
	b := newTestPlayer("b", 2)
	fleetOfOne(t, a, 0, 0)
	fleetOfOne(t, b, 9, 8)
	g := NewGame(a, b)

	quit := fmt.Errorf("escape pressed")
	reason, err := g.Run(MoveFunc(func() (int, int, error) {
		return 0, 0, quit
	}))
	if reason != EndAborted {
		t.Fatalf("expected aborted end reason, got %v", reason)
	}
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("abort should carry ErrAborted, got %v", err)
	}
	if !errors.Is(err, quit) {
		t.Fatalf("abort should preserve the source error, got %v", err)
	}
}

func TestFullGameBetweenAutoPlayers(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := NewPlayer("a", rng)
	b := NewPlayer("b", rng)
	if err := a.AutoPlaceShips(100, 10); err != nil {
		t.Fatalf("player a placement failed: %v", err)
	}
	if err := b.AutoPlaceShips(100, 10); err != nil {
		t.Fatalf("player b placement failed: %v", err)
	}

	g := NewGame(a, b)
	reason, err := g.Run(MoveFunc(func() (int, int, error) {
		// Scan for the first cell that can still take a guess.
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				if k := b.Board().At(r, c).State().Kind; k != StateHit && k != StateGuessed {
					return r, c, nil
				}
			}
		}
		return 0, 0, fmt.Errorf("board exhausted without a winner")
	}))
	if err != nil {
		t.Fatalf("game should end with a winner: %v", err)
	}
	if reason != EndPlayerAWon && reason != EndPlayerBWon {
		t.Fatalf("expected a win, got %v", reason)
	}
	if g.TurnCount() > Rows*Cols {
		t.Fatalf("game ran longer than the board allows: %d turns", g.TurnCount())
	}
}
