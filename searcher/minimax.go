package searcher

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.SEARCH_DEPTH,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

var defaultMinimax = NewMinimax()

// Search runs minimax with alpha-beta pruning on a copy of g, scoring leaves
// with Game.Evaluate. Max nodes play the computer's side, Min nodes the
// human's. It returns the best value and the first move reaching it, or
// NoPit at a terminal node or when depth is 0.
func Search(g game.Game, p Polarity, depth, alpha, beta int) (int, game.Pit) {
	return defaultMinimax.Search(g, p, depth, alpha, beta)
}

func (m *Minimax) Depth() int {
	return m.depth
}

// Search is the package level Search using m's evaluation function and
// metrics collector.
func (m *Minimax) Search(g game.Game, p Polarity, depth, alpha, beta int) (int, game.Pit) {
	if depth < 0 {
		panic("search depth must not be negative")
	}

	m.metrics.AddNode()
	if g.GameOver() || depth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(&g), game.NoPit
	}

	side := p.side(g.Sides)
	best, bestPit := p.worst(), game.NoPit
	for _, pit := range g.State.PossibleMoves(side) {
		child := g
		if _, err := child.State.DoMove(side, pit); err != nil {
			panic(err)
		}

		value, _ := m.Search(child, p.Next(), depth-1, alpha, beta)
		if p.improves(value, best) {
			best, bestPit = value, pit
		}

		if p == Max {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best, bestPit
}

// FindMove searches for side's best move at the configured depth, treating
// side as the maximizing player regardless of the game's role assignment.
func (m *Minimax) FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric) {
	g.Sides = game.Roles{Human: side.Opponent(), Computer: side}

	m.metrics.Start(m.depth)
	value, pit := m.Search(g, Max, m.depth, NegInf, PosInf)
	metric := m.metrics.Complete(value)

	log.Debug().Msgf("%s searched depth %d: pit %s with value %d", side, m.depth, pit, value)
	return pit, metric
}
