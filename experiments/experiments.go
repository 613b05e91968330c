package experiments

import (
	"fmt"
	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/searcher"
	"mcts/tictactoe"

	"github.com/rs/zerolog/log"
)

// Summary counts results per agent config ID over a whole experiment.
type Summary struct {
	Games int
	Wins  map[int]int
	Draws int
}

type Runner struct {
	Dir   string // Root directory for records, nothing is written when empty
	Games int    // Per match up
	Seed  uint64
}

// RunStrengthExperiment pairs every MCTS budget against a uniform random mover.
// MCTS always plays X since its rewards are scored for the first player.
func (r Runner) RunStrengthExperiment(budgets []int) (Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, budget := range budgets {
		config := metrics.AgentConfig{ID: i + 1, Iterations: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	return r.runExperiment("strength", configs, matchUps)
}

// runExperiment plays every match up r.Games times, the first agent of a
// match up always moves first.
func (r Runner) runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (Summary, error) {
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seed := r.Seed

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		first, second := matchup[0], matchup[1]
		for i := 0; i < r.Games; i++ {
			seed += 2
			winner, gameMetric, moveMetrics, err := runGame(first, second, seed)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			summary.Games++
			record := metrics.GameRecord{
				ID:          summary.Games,
				Agent1:      first.ID,
				Agent2:      second.ID,
				WinnerAgent: -1,
				GameMetric:  gameMetric,
			}
			switch winner {
			case searcher.FirstPlayerWin:
				record.WinnerAgent = first.ID
				summary.Wins[first.ID]++
			case searcher.SecondPlayerWin:
				record.WinnerAgent = second.ID
				summary.Wins[second.ID]++
			default:
				summary.Draws++
			}
			gameRecords = append(gameRecords, record)

			for _, mm := range moveMetrics {
				agent := first.ID
				if mm.Player == 2 {
					agent = second.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       record.ID,
					Agent:      agent,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, tictactoe.Result(winner))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment: %d games, wins %v, draws %d", name, summary.Games, summary.Wins, summary.Draws)

	if r.Dir == "" {
		return summary, nil
	}
	return summary, store(r.Dir, name, configs, gameRecords, moveRecords)
}

func store(dir, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s experiment records in %s", name, writer.Dir())
	return nil
}

// runGame plays one tic-tac-toe game, first moves as X.
func runGame(first, second metrics.AgentConfig, seed uint64) (searcher.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.LocalEngine(tictactoe.New(), createAgent(first, seed), createAgent(second, seed+1))
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics, err := e.Run()
	gameMetric.StartingAgent = first.ID
	return winner, gameMetric, moveMetrics, err
}

func createAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	if config.Random {
		return engine.NewRandomAgent(seed)
	}
	return engine.NewMCTSAgent(config.Iterations, seed)
}
