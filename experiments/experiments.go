package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
	"mancala/searcher/agent"
)

const (
	NumGames = 20 // Per match up
	OutDir   = "experiments/out"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1, Eval: "material"},
	{ID: 2, Kind: "minimax", Depth: 2, Eval: "material"},
	{ID: 3, Kind: "minimax", Depth: 3, Eval: "material"},
	{ID: 4, Kind: "minimax", Depth: 4, Eval: "material"},
	{ID: 5, Kind: "minimax", Depth: 5, Eval: "material"},
}

// RunDepthExperiment pairs every search depth against the default depth.
func RunDepthExperiment(games int, dir string) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 3, Eval: "material"}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Run("depth", append(depthConfigs, baseline), matchUps, games, dir)
}

// RunBaselineExperiment pairs the default minimax agent against the greedy
// and random agents, and compares the two evaluation functions.
func RunBaselineExperiment(games int, seed uint64, dir string) (string, error) {
	minimax := metrics.AgentConfig{ID: 1, Kind: "minimax", Depth: 3, Eval: "material"}
	configs := []metrics.AgentConfig{
		minimax,
		{ID: 2, Kind: "minimax", Depth: 3, Eval: "stores_and_pits"},
		{ID: 3, Kind: "greedy"},
		{ID: 4, Kind: "random", Seed: seed},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{minimax, config})
	}

	return Run("baseline", configs, matchUps, games, dir)
}

// Run plays games games for each matchup, alternating which side starts,
// and stores the agent configs, game records and move records under
// <dir>/<name>/<timestamp>. The first agent of a matchup always plays P1.
// It returns the directory holding the records.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, dir string) (string, error) {
	if games <= 0 {
		return "", fmt.Errorf("number of games must be positive, got %d", games)
	}
	for _, matchup := range matchUps {
		for _, config := range matchup {
			if err := validateConfig(config); err != nil {
				return "", err
			}
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)
	progress := newBar(len(matchUps)*games, name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		wins := map[string]int{}
		for i := 0; i < games; i++ {
			starter := game.P1
			if i%2 == 1 {
				starter = game.P2
			}

			winner, gameMetric, moveMetrics := runGame(config1, config2, starter, uint64(i))
			wins[winner]++
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
			progress.Add(1)
		}
		log.Info().Msgf("completed matchup %d of %d: P1 %d, P2 %d, draws %d",
			mi+1, len(matchUps), wins["P1"], wins["P2"], wins["draw"])
	}
	progress.Close()

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, starter game.Side, round uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]agent.Agent{
		CreateAgent(config1, round),
		CreateAgent(config2, round),
	}
	e := engine.LocalEngine(agents, engine.WithStarter(starter))

	return e.Run()
}

// CreateAgent builds the agent described by config. Random agents are seeded
// with the config seed offset by round so repeated games differ.
func CreateAgent(config metrics.AgentConfig, round uint64) agent.Agent {
	switch config.Kind {
	case "minimax":
		return agent.NewMinimaxAgent(searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluations[config.Eval]),
			searcher.WithMetrics(),
		))
	case "greedy":
		return agent.NewGreedyAgent()
	case "random":
		return agent.NewRandomAgent(config.Seed + round)
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

var evaluations = map[string]game.Evaluate{
	"":                game.EvaluateMaterial,
	"material":        game.EvaluateMaterial,
	"stores_and_pits": game.EvaluateStoresAndPits,
}

func validateConfig(config metrics.AgentConfig) error {
	switch config.Kind {
	case "minimax":
		if config.Depth < 0 {
			return fmt.Errorf("agent %d: negative search depth %d", config.ID, config.Depth)
		}
		if _, ok := evaluations[config.Eval]; !ok {
			return fmt.Errorf("agent %d: unknown evaluation %q", config.ID, config.Eval)
		}
	case "greedy", "random":
	default:
		return fmt.Errorf("agent %d: unknown agent kind %q", config.ID, config.Kind)
	}
	return nil
}
