package tictactoe

import (
	"errors"
	"fmt"
	"mcts/searcher"
	"strings"
)

type Mark int

const (
	Empty Mark = iota
	X
	O
)

const Size = 9

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedInput = errors.New("malformed move, expected <row>-<column>")

	lines = [][3]int{
		// rows
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		// columns
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		// diagonals
		{0, 4, 8},
		{2, 4, 6},
	}
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

func (m Mark) opponent() Mark {
	if m == X {
		return O
	}
	return X
}

// Board is a 3x3 tic-tac-toe position. X always moves first.
type Board struct {
	cells [Size]Mark
	turn  Mark
}

func New() *Board {
	return &Board{turn: X}
}

// FromString builds a position from nine cells read row by row, using
// X, O and '.' or '-' for empty cells.
func FromString(cells string, turn Mark) (*Board, error) {
	cells = strings.ReplaceAll(cells, " ", "")
	if len(cells) != Size {
		return nil, fmt.Errorf("board needs %d cells, got %d", Size, len(cells))
	}
	if turn != X && turn != O {
		return nil, fmt.Errorf("turn must be X or O, got %v", turn)
	}

	b := &Board{turn: turn}
	for i, c := range cells {
		switch c {
		case 'X', 'x':
			b.cells[i] = X
		case 'O', 'o':
			b.cells[i] = O
		case '.', '-':
			b.cells[i] = Empty
		default:
			return nil, fmt.Errorf("unknown cell %q at %d", c, i)
		}
	}
	return b, nil
}

func (b *Board) Turn() Mark {
	return b.turn
}

func (b *Board) Cell(i int) Mark {
	return b.cells[i]
}

// LegalMoves lists the empty cells in index order. A won board keeps listing
// its empty cells so the search can still expand it, PlayChecked is what
// refuses moves once the game is over.
func (b *Board) LegalMoves() []searcher.Action {
	moves := make([]searcher.Action, 0, Size)
	for i, cell := range b.cells {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (b *Board) Play(cell searcher.Action) {
	b.cells[cell] = b.turn
	b.turn = b.turn.opponent()
}

// PlayChecked validates the move before playing it.
func (b *Board) PlayChecked(cell int) error {
	if cell < 0 || cell >= Size {
		return fmt.Errorf("%w: cell %d is off the board", ErrIllegalMove, cell)
	}
	if b.IsTerminal() {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if b.cells[cell] != Empty {
		return fmt.Errorf("%w: cell %d is occupied", ErrIllegalMove, cell)
	}
	b.Play(cell)
	return nil
}

func (b *Board) IsTerminal() bool {
	_, over := b.Winner()
	return over
}

func (b *Board) Winner() (searcher.Outcome, bool) {
	for _, line := range lines {
		a := b.cells[line[0]]
		if a != Empty && a == b.cells[line[1]] && a == b.cells[line[2]] {
			if a == X {
				return searcher.FirstPlayerWin, true
			}
			return searcher.SecondPlayerWin, true
		}
	}

	for _, cell := range b.cells {
		if cell == Empty {
			return 0, false
		}
	}
	return searcher.Draw, true
}

func (b *Board) Clone() searcher.State {
	clone := *b
	return &clone
}

// Result is the line announced when the game ends.
func Result(outcome searcher.Outcome) string {
	switch outcome {
	case searcher.FirstPlayerWin:
		return "X wins!"
	case searcher.SecondPlayerWin:
		return "O wins!"
	default:
		return "It's a draw!"
	}
}
