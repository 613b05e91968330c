package tictactoe

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMove converts "<row>-<column>", both 1-indexed, into a cell index.
func ParseMove(text string) (int, error) {
	row, column, found := strings.Cut(strings.TrimSpace(text), "-")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return 0, fmt.Errorf("%w: row %q", ErrMalformedInput, row)
	}
	c, err := strconv.Atoi(strings.TrimSpace(column))
	if err != nil {
		return 0, fmt.Errorf("%w: column %q", ErrMalformedInput, column)
	}
	if r < 1 || r > 3 || c < 1 || c > 3 {
		return 0, fmt.Errorf("%w: %d-%d is off the board", ErrMalformedInput, r, c)
	}

	return (r-1)*3 + (c - 1), nil
}

// FormatMove is the inverse of ParseMove.
func FormatMove(cell int) string {
	return fmt.Sprintf("%d-%d", cell/3+1, cell%3+1)
}
