package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/meta"
	"mancala/searcher/agent"
)

type Option func(e *localEngine)

type localEngine struct {
	agents   [2]agent.Agent // Indexed by the side they play
	master   gamemaster.Master
	starter  game.Side
	human    game.Side
	maxMoves int
	observer func(gamemaster.Update)
}

func WithStarter(starter game.Side) Option {
	return func(e *localEngine) {
		e.starter = starter
	}
}

// WithHumanSide labels the side played by the human. Both sides are still
// played by agents; the label only affects the game's role assignment.
func WithHumanSide(human game.Side) Option {
	return func(e *localEngine) {
		e.human = human
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *localEngine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// WithObserver registers a function called after every applied move.
func WithObserver(observer func(gamemaster.Update)) Option {
	return func(e *localEngine) {
		e.observer = observer
	}
}

// LocalEngine returns an engine where agents[0] plays P1 and agents[1] plays P2.
func LocalEngine(agents [2]agent.Agent, options ...Option) Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("engine needs an agent for each side")
	}

	e := &localEngine{ // Default values
		agents:   agents,
		starter:  game.P1,
		human:    game.P1,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	e.master = gamemaster.NewLocalMaster(e.human)
	return e
}

// Run executes the entire game loop until the game is over.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:           uuid.NewString(),
		StartingSide: e.starter.String(),
		StartTime:    time.Now(),
	}
	e.master.Init(e.starter)

	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, e.starter)

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.master.Over() && step <= e.maxMoves {
		side := e.master.Turn()
		g := e.master.Game()

		pit, searchMetric := e.agents[side].FindMove(g, side)
		legal := g.State.PossibleMoves(side)
		if !slices.Contains(legal, pit) {
			log.Warn().Msgf("%s chose illegal pit %s, playing %s instead", side, pit, legal[0])
			pit = legal[0]
		}

		update, err := e.master.Play(pit)
		if err != nil {
			// The pit was checked against the master's own game
			panic(err)
		}
		if e.observer != nil {
			e.observer(update)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side.String(),
			Pit:          pit.String(),
			Landed:       update.Landed.String(),
			ExtraTurn:    update.ExtraTurn,
			SearchMetric: searchMetric,
		})
		step++
	}

	final := e.master.Game()
	gameMetric.P1Score = final.State.Store(game.P1)
	gameMetric.P2Score = final.State.Store(game.P2)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	winner := ""
	switch {
	case !e.master.Over():
		log.Warn().Msgf("game %s: stopped after %d moves without a winner", gameMetric.ID, e.maxMoves)
	case final.IsDraw():
		winner = "draw"
	default:
		side, _ := final.FindWinner()
		winner = side.String()
	}
	gameMetric.Winner = winner

	log.Info().Msgf("game %s: winner %q, score %d-%d after %d moves",
		gameMetric.ID, winner, gameMetric.P1Score, gameMetric.P2Score, gameMetric.TotalMoves)
	return winner, gameMetric, moveMetrics
}
