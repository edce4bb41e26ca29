package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns an agent that plays the best move found by an
// alpha-beta search at the minimax's configured depth.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric) {
	return a.minimax.FindMove(g, side)
}

type greedyAgent struct{}

// NewGreedyAgent returns an agent that looks a single move ahead, scoring
// store gains and extra turns.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric) {
	pit := searcher.Greedy(g, side)
	if pit == game.NoPit {
		return pit, metrics.SearchMetric{}
	}
	return pit, metrics.SearchMetric{Depth: 1, Value: g.ComputerVsComputerHeuristic(side, pit)}
}
