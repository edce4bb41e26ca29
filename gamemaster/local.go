package gamemaster

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"mancala/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type localMaster struct {
	game     game.Game
	turn     game.Side
	gameOver bool
}

// NewLocalMaster returns a master for a game where human plays the given
// side. Init must be called before the first move.
func NewLocalMaster(human game.Side) Master {
	return &localMaster{game: *game.NewGame(human), turn: game.P1}
}

func (m *localMaster) Init(starter game.Side) game.Game {
	m.game = *game.NewGame(m.game.Sides.Human)
	m.turn = starter
	m.gameOver = false
	return m.game
}

func (m *localMaster) Turn() game.Side {
	return m.turn
}

// Game returns a copy of the current game.
func (m *localMaster) Game() game.Game {
	return m.game
}

func (m *localMaster) Over() bool {
	return m.gameOver
}

func (m *localMaster) Play(pit game.Pit) (Update, error) {
	if m.gameOver {
		return Update{}, ErrGameOver
	}

	side := m.turn
	if !slices.Contains(m.game.State.PossibleMoves(side), pit) {
		return Update{}, fmt.Errorf("%w: %s cannot play pit %s", game.ErrInvalidMove, side, pit)
	}

	landed, again, err := m.game.ApplyTurn(side, pit)
	if err != nil {
		// PossibleMoves and DoMove disagree
		panic(err)
	}
	if !again {
		m.turn = side.Opponent()
	}
	m.gameOver = m.game.GameOver()

	return Update{
		Side:      side,
		Pit:       pit,
		Landed:    landed,
		ExtraTurn: again,
		GameOver:  m.gameOver,
		State:     m.game.State,
	}, nil
}
