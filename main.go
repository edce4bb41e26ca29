package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mancala/config"
	"mancala/engine"
	"mancala/experiments"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/player"
	"mancala/searcher"
	"mancala/searcher/agent"
)

var (
	configFile = flag.String("f", "etc/mancala.yaml", "the config file")
	mode       = flag.String("mode", "", "hvc, cvc or experiment")
	humanSide  = flag.String("human", "", "side played by the human, P1 or P2")
	starter    = flag.String("starter", "", "who moves first: human or computer")
	depth      = flag.Int("depth", 0, "minimax search depth")
	games      = flag.Int("games", 0, "games per experiment matchup")
	seed       = flag.Uint64("seed", 0, "random agent seed")
	logLevel   = flag.String("log", "", "log level")
	colors     = flag.Bool("colors", true, "colored board")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	c, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	override(&c)
	if err := c.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(c.Level())

	switch c.Mode {
	case config.ModeHumanVsComputer:
		playHumanVsComputer(c)
	case config.ModeComputerVsComputer:
		playComputerVsComputer(c)
	case config.ModeExperiment:
		runExperiments(c)
	}
}

// override applies the flags given on the command line on top of the config.
func override(c *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			c.Mode = *mode
		case "human":
			c.HumanSide = *humanSide
		case "starter":
			c.Starter = *starter
		case "depth":
			c.Depth = *depth
		case "games":
			c.Games = *games
		case "seed":
			c.Seed = *seed
		case "log":
			c.LogLevel = *logLevel
		case "colors":
			c.Colors = *colors
		}
	})
}

func playHumanVsComputer(c config.Config) {
	human := c.Human()
	console := player.NewConsole(os.Stdin, os.Stdout, c.Colors)

	role := game.Human
	switch c.Starter {
	case "computer":
		role = game.Computer
	case "":
		var err error
		if role, err = console.ChooseStarter(); err != nil {
			log.Fatal().Err(err).Msg("failed to choose the starting player")
		}
	}
	first := game.Roles{Human: human, Computer: human.Opponent()}.Side(role)

	var agents [2]agent.Agent
	agents[human] = console
	agents[human.Opponent()] = agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(c.Depth)))

	e := engine.LocalEngine(agents,
		engine.WithStarter(first),
		engine.WithHumanSide(human),
		engine.WithObserver(func(u gamemaster.Update) {
			if u.Side != human {
				fmt.Printf("Computer chose pit %s\n", u.Pit)
			}
			if u.ExtraTurn && !u.GameOver {
				fmt.Printf("%s landed in its store and moves again\n", u.Side)
			}
			if u.GameOver {
				console.RenderBoard(game.Game{State: u.State, Sides: game.Roles{Human: human, Computer: human.Opponent()}})
			}
		}),
	)
	winner, metric, _ := e.Run()
	printResult(winner, metric.P1Score, metric.P2Score)
}

func playComputerVsComputer(c config.Config) {
	console := player.NewConsole(os.Stdin, os.Stdout, c.Colors)
	human := c.Human()

	e := engine.LocalEngine([2]agent.Agent{agent.NewGreedyAgent(), agent.NewGreedyAgent()},
		engine.WithHumanSide(human),
		engine.WithObserver(func(u gamemaster.Update) {
			fmt.Printf("%s chose pit %s\n", u.Side, u.Pit)
			if u.GameOver {
				console.RenderBoard(game.Game{State: u.State, Sides: game.Roles{Human: human, Computer: human.Opponent()}})
			}
		}),
	)
	winner, metric, _ := e.Run()
	printResult(winner, metric.P1Score, metric.P2Score)
}

func printResult(winner string, p1, p2 int) {
	switch winner {
	case "draw":
		fmt.Printf("Game Over! It's a draw with score %d\n", p1)
	case "P1":
		fmt.Printf("Game Over! Winner: %s with score %d\n", winner, p1)
	case "P2":
		fmt.Printf("Game Over! Winner: %s with score %d\n", winner, p2)
	default:
		fmt.Printf("Game stopped without a winner (%d-%d)\n", p1, p2)
	}
}

func runExperiments(c config.Config) {
	dir, err := experiments.RunBaselineExperiment(c.Games, c.Seed, c.ExperimentDir)
	if err != nil {
		log.Fatal().Err(err).Msg("baseline experiment failed")
	}
	log.Info().Msgf("baseline records stored in %s", dir)

	dir, err = experiments.RunDepthExperiment(c.Games, c.ExperimentDir)
	if err != nil {
		log.Fatal().Err(err).Msg("depth experiment failed")
	}
	log.Info().Msgf("depth records stored in %s", dir)
}
