package game

import "errors"

// ErrAborted is returned by Run when the move source signals a
// user-requested exit. It is a termination condition distinct from a win,
// not a failure of the engine.
var ErrAborted = errors.New("game: aborted by user")

// TurnOutcome is the result of one turn step.
type TurnOutcome int

const (
	// TurnContinue means neither fleet is sunk; the game goes on.
	TurnContinue TurnOutcome = iota
	// TurnPlayerAWon means player A sank player B's fleet this round.
	TurnPlayerAWon
	// TurnPlayerBWon means player B sank player A's fleet this round.
	TurnPlayerBWon
)

// EndReason says how a driven game loop finished.
type EndReason int

const (
	EndPlayerAWon EndReason = iota
	EndPlayerBWon
	EndAborted
)

// MoveSource supplies player A's next guess coordinate to Run. Returning
// an error aborts the loop; the error is surfaced alongside EndAborted.
type MoveSource interface {
	NextMove() (row, col int, err error)
}

// MoveFunc adapts a function to the MoveSource interface.
type MoveFunc func() (row, col int, err error)

func (f MoveFunc) NextMove() (row, col int, err error) {
	return f()
}

// Game drives alternating rounds between two players whose fleets are
// already placed. Player A is the externally driven side; player B
// answers each of A's guesses with an automatic guess of its own.
type Game struct {
	playerA   *Player
	playerB   *Player
	turnCount int
	lastShotA Coord // B's most recent guess against A's board
	hasShotA  bool
}

// NewGame starts a game between two players with completed placements.
// The turn counter starts at 1.
func NewGame(playerA, playerB *Player) *Game {
	return &Game{playerA: playerA, playerB: playerB, turnCount: 1}
}

// PlayerA returns the externally driven player.
func (g *Game) PlayerA() *Player {
	return g.playerA
}

// PlayerB returns the automated player.
func (g *Game) PlayerB() *Player {
	return g.playerB
}

// TurnCount returns the current round number, starting at 1.
func (g *Game) TurnCount() int {
	return g.turnCount
}

// LastShotAtA returns player B's most recent guess against player A's
// board, for rendering. ok is false before B has guessed at all.
func (g *Game) LastShotAtA() (c Coord, ok bool) {
	return g.lastShotA, g.hasShotA
}

// PlayTurn resolves one full round: player A's guess lands on B's board,
// then B's automatic guess lands on A's board. Both halves happen before
// the winner check, and B's fleet is checked before A's, so at most one
// winner is reported per round and the order is deterministic. The turn
// counter only advances when the game continues.
func (g *Game) PlayTurn(row, col int) TurnOutcome {
	// A shot at an already resolved cell cannot change anything, so the
	// whole round is a no-op: no reply, no turn accounting.
	if k := g.playerB.Board().At(row, col).State().Kind; k == StateHit || k == StateGuessed {
		return TurnContinue
	}
	g.playerB.Guess(row, col)
	if shot, ok := g.playerA.AutoGuess(); ok {
		g.lastShotA = shot
		g.hasShotA = true
	}
	if g.playerB.AllShipsSunk() {
		return TurnPlayerAWon
	}
	if g.playerA.AllShipsSunk() {
		return TurnPlayerBWon
	}
	g.turnCount++
	return TurnContinue
}

// Run pulls guesses from the move source until the game ends. A win maps
// to EndPlayerAWon or EndPlayerBWon with a nil error; a source error maps
// to EndAborted with the source's error wrapped under ErrAborted.
func (g *Game) Run(moves MoveSource) (EndReason, error) {
	for {
		row, col, err := moves.NextMove()
		if err != nil {
			return EndAborted, errors.Join(ErrAborted, err)
		}
		switch g.PlayTurn(row, col) {
		case TurnPlayerAWon:
			return EndPlayerAWon, nil
		case TurnPlayerBWon:
			return EndPlayerBWon, nil
		}
	}
}
