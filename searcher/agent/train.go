package agent

import (
	"golang.org/x/exp/rand"

	"mancala/experiments/metrics"
	"mancala/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// Agents created with the same seed play the same sequence of choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric) {
	moves := g.State.PossibleMoves(side)
	if len(moves) == 0 {
		return game.NoPit, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
