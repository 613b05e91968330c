package searcher

import "slices"

type node struct {
	state     State
	parent    int
	children  []int
	wins      float64
	visits    float64
	untried   []Action
	action    Action
	hasAction bool
}

func newNode(parent int, state State, action Action, hasAction bool) node {
	return node{
		state:     state,
		parent:    parent,
		untried:   state.LegalMoves(),
		action:    action,
		hasAction: hasAction,
	}
}

// NodeStats is a read-only snapshot of one arena node.
type NodeStats struct {
	Parent    int
	Children  []int
	Wins      float64
	Visits    float64
	Untried   []Action
	Action    Action
	HasAction bool
}

func (n *node) stats() NodeStats {
	return NodeStats{
		Parent:    n.parent,
		Children:  slices.Clone(n.children),
		Wins:      n.wins,
		Visits:    n.visits,
		Untried:   slices.Clone(n.untried),
		Action:    n.action,
		HasAction: n.hasAction,
	}
}

func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// popUntried removes the most recently listed untried action.
func (n *node) popUntried() Action {
	last := len(n.untried) - 1
	action := n.untried[last]
	n.untried = n.untried[:last]
	return action
}
