package tictactoe

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board with 1-indexed row and column labels. Colours are
// dropped automatically when out does not support them.
func (b *Board) Render(out *termenv.Output) string {
	var sb strings.Builder
	sb.WriteString("  1 2 3 \n")
	for row := 0; row < 3; row++ {
		sb.WriteString(string(rune('1' + row)))
		sb.WriteString(" ")
		for col := 0; col < 3; col++ {
			sb.WriteString(renderMark(out, b.cells[row*3+col]))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderMark(out *termenv.Output, m Mark) string {
	switch m {
	case X:
		return out.String(m.String()).Foreground(out.Color("1")).Bold().String()
	case O:
		return out.String(m.String()).Foreground(out.Color("4")).Bold().String()
	default:
		return out.String(m.String()).Faint().String()
	}
}

func (b *Board) String() string {
	return b.Render(termenv.NewOutput(&strings.Builder{}, termenv.WithProfile(termenv.Ascii)))
}
