package gamemaster

import "mancala/game"

// Master keeps the authoritative game of a session: it validates moves
// against the side to play, applies them, and decides who moves next.
type Master interface {
	Init(starter game.Side) game.Game
	Turn() game.Side
	Game() game.Game
	Over() bool
	Play(pit game.Pit) (Update, error)
}

// Update describes a move the master has applied.
type Update struct {
	Side      game.Side
	Pit       game.Pit
	Landed    game.Pit
	ExtraTurn bool
	GameOver  bool
	State     game.Board
}
