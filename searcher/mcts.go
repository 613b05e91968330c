package searcher

import (
	"fmt"
	"mcts/experiments/metrics"
	"mcts/utils"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS owns the node arena for a single move decision. Build a new one for
// every decision, trees are not reused across turns.
type MCTS struct {
	nodes   []node
	rand    *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

// WithRand injects the generator used by playouts.
func WithRand(r *rand.Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rand = r
		}
	}
}

// WithSeed makes playouts reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func New(initial State, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	m.nodes = []node{newNode(NoParent, initial.Clone(), 0, false)}
	return m
}

func (m *MCTS) Root() int {
	return rootIndex
}

func (m *MCTS) Size() int {
	return len(m.nodes)
}

func (m *MCTS) Node(i int) NodeStats {
	return m.nodes[i].stats()
}

// Metrics returns the statistics of the last BestMove call.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.last
}

// Select descends from i along max-UCT children and stops at the first node
// that still has untried actions or has no children at all.
func (m *MCTS) Select(i int) int {
	for !m.nodes[i].expandable() {
		child := m.bestUCTChild(i)
		if child == -1 {
			return i
		}
		i = child
	}
	return i
}

// Expand materializes one untried action of i as a new child. A fully
// expanded node yields its max-UCT child instead, and a node with neither
// untried actions nor children is returned unchanged.
func (m *MCTS) Expand(i int) int {
	if !m.nodes[i].expandable() {
		if child := m.bestUCTChild(i); child != -1 {
			return child
		}
		return i
	}

	action := m.nodes[i].popUntried()
	state := m.nodes[i].state.Clone()
	state.Play(action)

	child := len(m.nodes)
	m.nodes = append(m.nodes, newNode(i, state, action, true))
	m.nodes[i].children = append(m.nodes[i].children, child)
	return child
}

// Simulate plays uniformly random moves from a copy of i's position until
// the game ends and returns the reward on the first player's axis.
func (m *MCTS) Simulate(i int) (float64, error) {
	state := m.nodes[i].state.Clone()
	plies := 0
	for !state.IsTerminal() {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return 0, fmt.Errorf("%w: running position has no legal moves", ErrInvalidGameStateContract)
		}
		state.Play(moves[m.rand.Intn(len(moves))])
		plies++
	}
	m.metrics.AddFullPlayout(plies)

	winner, ok := state.Winner()
	if !ok {
		return 0, fmt.Errorf("%w: terminal position reports no winner", ErrInvalidGameStateContract)
	}
	return reward(winner)
}

func reward(outcome Outcome) (float64, error) {
	switch outcome {
	case Draw:
		return DrawReward, nil
	case FirstPlayerWin:
		return WinReward, nil
	case SecondPlayerWin:
		return LossReward, nil
	default:
		return 0, fmt.Errorf("%w: unexpected outcome %d", ErrInvalidGameStateContract, outcome)
	}
}

// Backpropagate credits the same reward to i and every ancestor.
func (m *MCTS) Backpropagate(i int, result float64) {
	for i != NoParent {
		n := &m.nodes[i]
		n.visits++
		n.wins += result
		i = n.parent
	}
}

// Search runs up to iterations cycles and reports how many completed. It
// stops early once selection lands on a node that cannot be expanded.
func (m *MCTS) Search(iterations int) (int, error) {
	completed := 0
	for completed < iterations {
		selected := m.Select(rootIndex)
		expanded := m.Expand(selected)
		if expanded == selected {
			m.metrics.SetEarlyStop()
			break
		}

		result, err := m.Simulate(expanded)
		if err != nil {
			return completed, fmt.Errorf("simulating node %d: %w", expanded, err)
		}
		m.Backpropagate(expanded, result)
		m.metrics.AddEpisode()
		completed++
	}
	return completed, nil
}

// BestMove searches with the given budget and returns the action of the
// most visited root child.
func (m *MCTS) BestMove(iterations int) (Action, error) {
	m.metrics.Start(iterations)
	completed, err := m.Search(iterations)
	m.last = m.metrics.Complete(len(m.nodes))
	if err != nil {
		return 0, err
	}

	root := &m.nodes[rootIndex]
	best := utils.ArgMax(root.children, func(child int) float64 {
		return m.nodes[child].visits
	})
	if best == -1 {
		return 0, ErrNoLegalMoves
	}

	chosen := &m.nodes[root.children[best]]
	log.Debug().Msgf("searched %d of %d iterations over %d nodes, best move %d with %.0f visits",
		completed, iterations, len(m.nodes), chosen.action, chosen.visits)
	return chosen.action, nil
}

func (m *MCTS) bestUCTChild(i int) int {
	parent := &m.nodes[i]
	if len(parent.children) == 0 {
		return -1
	}

	uct := newExplorer(parent.visits)
	best := utils.ArgMax(parent.children, func(child int) float64 {
		c := &m.nodes[child]
		return uct.score(c.wins, c.visits)
	})
	return parent.children[best]
}
