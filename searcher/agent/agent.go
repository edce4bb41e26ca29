package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

type Agent interface {
	// FindMove returns the pit side should play in g and the search metrics (if collected)
	FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric)
}
