package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"mcts/config"
	"mcts/engine"
	"mcts/experiments"
	"mcts/meta"
	"mcts/searcher"
	"mcts/tictactoe"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default "+meta.CONFIG_PATH+" when present)")
	mode := flag.String("mode", "", "play or experiment")
	iterations := flag.Int("iterations", meta.ITERATIONS, "Number of MCTS iterations per move")
	seed := flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	flag.Parse()

	conf, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			conf.Mode = *mode
		case "iterations":
			conf.Iterations = *iterations
		case "seed":
			conf.Seed = *seed
		}
	})
	if err = conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if conf.Seed == 0 {
		conf.Seed = uint64(time.Now().UnixNano())
	}

	initLogger(conf)
	log.Debug().Msgf("config: %+v", *conf)

	switch conf.Mode {
	case config.ModeExperiment:
		err = runExperiments(conf)
	default:
		err = play(conf)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", conf.Mode)
	}
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if _, err := os.Stat(meta.CONFIG_PATH); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return meta.CONFIG_PATH
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

// play runs the interactive game on the terminal. The computer always plays X:
// its rewards are scored on the first player's axis.
func play(conf *config.Config) error {
	out := termenv.NewOutput(os.Stdout)
	computer := engine.NewMCTSAgent(conf.Iterations, conf.Seed)
	human := engine.NewHumanAgent(os.Stdin, os.Stdout, "Enter your action (<row>-<column>):", tictactoe.ParseMove)

	e, err := engine.LocalEngine(tictactoe.New(), computer, human)
	if err != nil {
		return err
	}
	e.OnMove = func(player int, move searcher.Action, state searcher.State) {
		if player == 1 {
			fmt.Printf("Best move: %d (%s)\n", move, tictactoe.FormatMove(move))
		}
		fmt.Println(state.(*tictactoe.Board).Render(out))
	}

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Println(tictactoe.Result(winner))
	return nil
}

func runExperiments(conf *config.Config) error {
	runner := experiments.Runner{
		Dir:   conf.Experiment.Dir,
		Games: conf.Experiment.Games,
		Seed:  conf.Seed,
	}

	if _, err := runner.RunStrengthExperiment(conf.Experiment.Budgets); err != nil {
		return err
	}
	_, err := runner.RunThroughputExperiment(conf.Experiment.Budgets)
	return err
}
