package engine

import (
	"mcts/experiments/metrics"
	"mcts/searcher"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run() (winner searcher.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Agent chooses the next move for whoever is to move in state.
type Agent interface {
	FindMove(state searcher.State) (searcher.Action, metrics.SearchMetric, error)
}
