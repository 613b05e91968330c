package experiments

import "mcts/experiments/metrics"

// RunThroughputExperiment lets every budget play against itself so the move
// records show how search time and arena size grow with the budget.
func (r Runner) RunThroughputExperiment(budgets []int) (Summary, error) {
	configs := make([]metrics.AgentConfig, 0, len(budgets))
	matchUps := [][]metrics.AgentConfig{}
	for i, budget := range budgets {
		config := metrics.AgentConfig{ID: i + 1, Iterations: budget}
		configs = append(configs, config)
		// Same config for both players in each game
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return r.runExperiment("throughput", configs, matchUps)
}
