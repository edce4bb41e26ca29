package searcher

import "mancala/game"

// Greedy picks side's move with the highest computer vs computer heuristic,
// keeping the first pit on ties. It returns NoPit when side cannot move.
func Greedy(g game.Game, side game.Side) game.Pit {
	best, bestScore := game.NoPit, 0
	for _, pit := range g.State.PossibleMoves(side) {
		score := g.ComputerVsComputerHeuristic(side, pit)
		if best == game.NoPit || score > bestScore {
			best, bestScore = pit, score
		}
	}
	return best
}
