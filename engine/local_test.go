package engine

import (
	"errors"
	"mcts/experiments/metrics"
	"mcts/searcher"
	"mcts/tictactoe"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptAgent struct {
	moves []searcher.Action
	err   error
}

func (s *scriptAgent) FindMove(state searcher.State) (searcher.Action, metrics.SearchMetric, error) {
	if s.err != nil {
		return 0, metrics.SearchMetric{}, s.err
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, metrics.SearchMetric{Iterations: 1}, nil
}

func TestLocalEngine(t *testing.T) {
	t.Run("needs two agents", func(t *testing.T) {
		_, err := LocalEngine(tictactoe.New(), NewRandomAgent(1))

		require.Error(t, err)
	})

	t.Run("scripted game ends with the first player winning", func(t *testing.T) {
		x := &scriptAgent{moves: []searcher.Action{0, 1, 2}}
		o := &scriptAgent{moves: []searcher.Action{3, 4}}
		e, err := LocalEngine(tictactoe.New(), x, o)
		require.NoError(t, err)

		var played []searcher.Action
		var players []int
		e.OnMove = func(player int, move searcher.Action, state searcher.State) {
			players = append(players, player)
			played = append(played, move)
		}

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, searcher.FirstPlayerWin, winner)
		require.Equal(t, []searcher.Action{0, 3, 1, 4, 2}, played)
		require.Equal(t, []int{1, 2, 1, 2, 1}, players, "Agents should alternate")
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, "first", gameMetric.Winner)
		require.Len(t, moveMetrics, 5)
		require.Equal(t, 1, moveMetrics[0].Iterations)
	})

	t.Run("random game reaches the end", func(t *testing.T) {
		start := tictactoe.New()
		e, err := LocalEngine(start, NewRandomAgent(1), NewRandomAgent(2))
		require.NoError(t, err)

		_, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
		require.GreaterOrEqual(t, gameMetric.TotalMoves, 5)
		require.LessOrEqual(t, gameMetric.TotalMoves, 9)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, tictactoe.New(), start, "Engine should play on its own copy")
	})

	t.Run("mcts against random reaches the end", func(t *testing.T) {
		e, err := LocalEngine(tictactoe.New(), NewMCTSAgent(200, 3), NewRandomAgent(4))
		require.NoError(t, err)

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 200, moveMetrics[0].Iterations, "MCTS moves should carry search metrics")
		require.Greater(t, moveMetrics[0].ArenaSize, 1)
	})

	t.Run("mcts playing first beats a random player", func(t *testing.T) {
		wins, losses := 0, 0
		for seed := uint64(0); seed < 10; seed++ {
			e, err := LocalEngine(tictactoe.New(), NewMCTSAgent(1000, seed), NewRandomAgent(100+seed))
			require.NoError(t, err)

			winner, _, _, err := e.Run()
			require.NoError(t, err)

			switch winner {
			case searcher.FirstPlayerWin:
				wins++
			case searcher.SecondPlayerWin:
				losses++
			}
		}

		require.Greater(t, wins, losses)
		require.GreaterOrEqual(t, wins, 6, "MCTS should win most games against random play")
	})

	t.Run("agent errors stop the game", func(t *testing.T) {
		boom := errors.New("boom")
		e, err := LocalEngine(tictactoe.New(), &scriptAgent{err: boom}, NewRandomAgent(1))
		require.NoError(t, err)

		_, _, _, err = e.Run()

		require.ErrorIs(t, err, boom)
	})
}

func TestHumanAgent(t *testing.T) {
	parse := func(text string) (searcher.Action, error) {
		return tictactoe.ParseMove(text)
	}

	t.Run("asks again after malformed input", func(t *testing.T) {
		var out strings.Builder
		agent := NewHumanAgent(strings.NewReader("bad\n4-1\n2-3\n"), &out, "move?", parse)

		got, _, err := agent.FindMove(tictactoe.New())

		require.NoError(t, err)
		require.Equal(t, 5, got)
		require.Equal(t, 3, strings.Count(out.String(), "move?"))
		require.Contains(t, out.String(), "malformed move")
	})

	t.Run("asks again after an occupied cell", func(t *testing.T) {
		board, err := tictactoe.FromString("X........", tictactoe.O)
		require.NoError(t, err)
		var out strings.Builder
		agent := NewHumanAgent(strings.NewReader("1-1\n1-2\n"), &out, "move?", parse)

		got, _, err := agent.FindMove(board)

		require.NoError(t, err)
		require.Equal(t, 1, got)
		require.Contains(t, out.String(), "not legal")
	})

	t.Run("closed input", func(t *testing.T) {
		var out strings.Builder
		agent := NewHumanAgent(strings.NewReader(""), &out, "move?", parse)

		_, _, err := agent.FindMove(tictactoe.New())

		require.ErrorIs(t, err, ErrNoInput)
	})
}
