package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"mcts/experiments/metrics"
	"mcts/searcher"
	"slices"
	"strings"

	"golang.org/x/exp/rand"
)

// MCTSAgent builds a fresh search tree for every decision.
type MCTSAgent struct {
	iterations int
	rand       *rand.Rand
}

func NewMCTSAgent(iterations int, seed uint64) *MCTSAgent {
	return &MCTSAgent{
		iterations: iterations,
		rand:       rand.New(rand.NewSource(seed)),
	}
}

func (a *MCTSAgent) FindMove(state searcher.State) (searcher.Action, metrics.SearchMetric, error) {
	m := searcher.New(state, searcher.WithRand(a.rand), searcher.WithMetrics())
	move, err := m.BestMove(a.iterations)
	return move, m.Metrics(), err
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rand *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state searcher.State) (searcher.Action, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rand.Intn(len(moves))], metrics.SearchMetric{}, nil
}

// HumanAgent reads moves from a line based input, asking again until a legal
// move is entered.
type HumanAgent struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
	parse  func(string) (searcher.Action, error)
}

func NewHumanAgent(in io.Reader, out io.Writer, prompt string, parse func(string) (searcher.Action, error)) *HumanAgent {
	return &HumanAgent{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
		parse:  parse,
	}
}

var ErrNoInput = errors.New("input closed before a move was entered")

func (a *HumanAgent) FindMove(state searcher.State) (searcher.Action, metrics.SearchMetric, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return 0, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}

	for {
		fmt.Fprintln(a.out, a.prompt)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return 0, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
			}
			return 0, metrics.SearchMetric{}, ErrNoInput
		}

		move, err := a.parse(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}
		if !slices.Contains(legal, move) {
			fmt.Fprintf(a.out, "move %q is not legal here\n", a.in.Text())
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
