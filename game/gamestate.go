package game

import "mancala/meta"

// Roles assigns exactly one side to the human and one to the computer.
type Roles struct {
	Human    Side
	Computer Side
}

// Side returns the side played by role.
func (r Roles) Side(role Role) Side {
	if role == Human {
		return r.Human
	}
	return r.Computer
}

// Game pairs a board with the side assignment of a session. A Game is a
// value: copying it copies the board.
type Game struct {
	State Board
	Sides Roles
}

// NewGame initializes a fresh game where human plays the given side and the
// computer plays the other one.
func NewGame(human Side) *Game {
	return &Game{
		State: NewBoard(),
		Sides: Roles{Human: human, Computer: human.Opponent()},
	}
}

// Copy returns an independent copy of the game.
func (g *Game) Copy() *Game {
	c := *g
	return &c
}

// GameOver reports whether the game has ended. When it has, the seeds left
// in the pits are collected into their owners' stores, so callers should use
// it rather than Board.IsGameOver before reading scores.
func (g *Game) GameOver() bool {
	if g.State.IsGameOver() {
		g.State.CollectRemainingSeeds()
		return true
	}
	return false
}

// FindWinner returns the side with the larger store and its score. A tie is
// reported as a win for P2; use IsDraw to tell ties apart.
func (g *Game) FindWinner() (Side, int) {
	p1, p2 := g.State.Store(P1), g.State.Store(P2)
	if p1 > p2 {
		return P1, p1
	}
	return P2, p2
}

// IsDraw reports whether both stores hold the same number of seeds.
func (g *Game) IsDraw() bool {
	return g.State.Store(P1) == g.State.Store(P2)
}

// Evaluate returns the computer's store minus the human's store.
func (g *Game) Evaluate() int {
	return EvaluateMaterial(g)
}

// ComputerVsComputerHeuristic scores a move for side on a copy of the board:
// the seeds it adds to the side's store, plus a bonus when it grants an
// extra turn.
func (g *Game) ComputerVsComputerHeuristic(side Side, pit Pit) int {
	board := g.State
	landed, err := board.DoMove(side, pit)
	if err != nil {
		panic(err)
	}

	gain := board.Store(side) - g.State.Store(side)
	extraTurn := 0
	if landed == side.Store() {
		extraTurn = 1
	}
	return gain + extraTurn*meta.EXTRA_TURN_BONUS
}

// ApplyTurn plays pit for side and reports whether side moves again.
func (g *Game) ApplyTurn(side Side, pit Pit) (landed Pit, again bool, err error) {
	landed, err = g.State.DoMove(side, pit)
	if err != nil {
		return NoPit, false, err
	}
	return landed, landed == side.Store(), nil
}
