package tictactoe

import (
	"mcts/searcher"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, cells string, turn Mark) *Board {
	t.Helper()
	b, err := FromString(cells, turn)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	b := New()

	require.Equal(t, X, b.Turn(), "X should move first")
	require.Equal(t, []searcher.Action{0, 1, 2, 3, 4, 5, 6, 7, 8}, b.LegalMoves())
	require.False(t, b.IsTerminal())
	_, ok := b.Winner()
	require.False(t, ok, "Running game should have no winner")
}

func TestFromString(t *testing.T) {
	t.Run("reads cells row by row", func(t *testing.T) {
		b := mustBoard(t, "XO. ... ..X", O)

		require.Equal(t, X, b.Cell(0))
		require.Equal(t, O, b.Cell(1))
		require.Equal(t, Empty, b.Cell(2))
		require.Equal(t, X, b.Cell(8))
		require.Equal(t, O, b.Turn())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := FromString("XO", X)
		require.Error(t, err, "Too few cells")

		_, err = FromString("XO?......", X)
		require.Error(t, err, "Unknown cell")

		_, err = FromString(".........", Empty)
		require.Error(t, err, "Nobody to move")
	})
}

func TestPlay(t *testing.T) {
	t.Run("marks the cell and passes the turn", func(t *testing.T) {
		b := New()

		b.Play(4)

		require.Equal(t, X, b.Cell(4))
		require.Equal(t, O, b.Turn())
		require.NotContains(t, b.LegalMoves(), 4)
	})

	t.Run("checked play rejects illegal moves", func(t *testing.T) {
		b := mustBoard(t, "X........", O)

		require.ErrorIs(t, b.PlayChecked(0), ErrIllegalMove, "Occupied cell")
		require.ErrorIs(t, b.PlayChecked(9), ErrIllegalMove, "Off the board")
		require.ErrorIs(t, b.PlayChecked(-1), ErrIllegalMove, "Off the board")
		require.NoError(t, b.PlayChecked(1))
		require.Equal(t, O, b.Cell(1))
	})

	t.Run("checked play rejects moves after the game ended", func(t *testing.T) {
		b := mustBoard(t, "XXXOO....", O)

		require.ErrorIs(t, b.PlayChecked(8), ErrIllegalMove)
	})
}

func TestWinner(t *testing.T) {
	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := mustBoard(t, "XOXXOOOXX", O)

		winner, ok := b.Winner()

		require.True(t, b.IsTerminal())
		require.True(t, ok)
		require.Equal(t, searcher.Draw, winner)
		require.Empty(t, b.LegalMoves())
	})

	t.Run("completed X line wins regardless of empty cells", func(t *testing.T) {
		b := mustBoard(t, "XXXOO....", O)

		winner, ok := b.Winner()

		require.True(t, b.IsTerminal())
		require.True(t, ok)
		require.Equal(t, searcher.FirstPlayerWin, winner)
		require.Equal(t, []searcher.Action{5, 6, 7, 8}, b.LegalMoves(), "Won board should still list its empty cells")
		require.ErrorIs(t, b.PlayChecked(5), ErrIllegalMove, "Won board should refuse further play")
	})

	t.Run("every line counts", func(t *testing.T) {
		for _, line := range lines {
			cells := []byte(".........")
			for _, i := range line {
				cells[i] = 'O'
			}
			b := mustBoard(t, string(cells), X)

			winner, ok := b.Winner()

			require.True(t, ok, "line %v", line)
			require.Equal(t, searcher.SecondPlayerWin, winner, "line %v", line)
		}
	})
}

func TestClone(t *testing.T) {
	original := mustBoard(t, "X...O....", X)
	clone := original.Clone()

	for _, move := range clone.LegalMoves()[:3] {
		clone.Play(move)
	}

	require.Equal(t, mustBoard(t, "X...O....", X), original, "Playing on a clone should not change the original")
	require.NotEqual(t, original, clone)
}

func TestRender(t *testing.T) {
	b := mustBoard(t, "X...O....", X)
	out := termenv.NewOutput(&strings.Builder{}, termenv.WithProfile(termenv.Ascii))

	got := b.Render(out)

	require.Equal(t, "  1 2 3 \n1 X - - \n2 - O - \n3 - - - \n", got)
	require.Equal(t, got, b.String())
}

func TestResult(t *testing.T) {
	require.Equal(t, "X wins!", Result(searcher.FirstPlayerWin))
	require.Equal(t, "O wins!", Result(searcher.SecondPlayerWin))
	require.Equal(t, "It's a draw!", Result(searcher.Draw))
}
