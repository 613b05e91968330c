package engine

import (
	"errors"
	"fmt"
	"mcts/experiments/metrics"
	"mcts/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Local plays agents against each other on one in-process state. Agents
// take turns in order, agent 0 moves first.
type Local struct {
	State  searcher.State
	Agents []Agent
	// OnMove is called after every applied move
	OnMove func(player int, move searcher.Action, state searcher.State)
}

var ErrMaxMoves = errors.New("game did not finish within the move limit")

func LocalEngine(state searcher.State, agents ...Agent) (*Local, error) {
	if len(agents) < 2 {
		return nil, fmt.Errorf("need at least two agents, got %d", len(agents))
	}

	return &Local{
		State:  state.Clone(),
		Agents: agents,
	}, nil
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (searcher.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("starting game with %d agents", len(e.Agents))

	step := 1
	for !e.State.IsTerminal() {
		if step > MaxMoves {
			return 0, gameMetric, moveMetrics, ErrMaxMoves
		}

		player := (step-1)%len(e.Agents) + 1
		move, searchMetric, err := e.Agents[player-1].FindMove(e.State.Clone())
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("player %d at step %d: %w", player, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %d plays %d", step, player, move)

		e.State.Play(move)
		if e.OnMove != nil {
			e.OnMove(player, move, e.State)
		}
		step++
	}

	winner, ok := e.State.Winner()
	if !ok {
		return 0, gameMetric, moveMetrics, fmt.Errorf("%w: finished game reports no winner", searcher.ErrInvalidGameStateContract)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1
	gameMetric.Winner = winner.String()

	log.Debug().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics, nil
}

var _ Engine = (*Local)(nil)
