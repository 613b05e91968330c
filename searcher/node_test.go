package searcher

// nimState is a take-away game: each turn removes one or two stones and
// whoever takes the last stone wins.
type nimState struct {
	stones int
	first  bool // first player to move
	moves  int  // plays applied, shared-state detector for clone tests
}

func newNim(stones int) *nimState {
	return &nimState{stones: stones, first: true}
}

func (n *nimState) LegalMoves() []Action {
	switch {
	case n.stones >= 2:
		return []Action{1, 2}
	case n.stones == 1:
		return []Action{1}
	default:
		return nil
	}
}

func (n *nimState) Play(take Action) {
	n.stones -= take
	n.first = !n.first
	n.moves++
}

func (n *nimState) IsTerminal() bool {
	return n.stones == 0
}

func (n *nimState) Winner() (Outcome, bool) {
	if n.stones > 0 {
		return 0, false
	}
	// The player who just moved took the last stone
	if n.first {
		return SecondPlayerWin, true
	}
	return FirstPlayerWin, true
}

func (n *nimState) Clone() State {
	clone := *n
	return &clone
}

// brokenState ends immediately and reports whatever it was told to.
type brokenState struct {
	outcome  Outcome
	ok       bool
	terminal bool
}

func (b brokenState) LegalMoves() []Action    { return nil }
func (b brokenState) Play(Action)             {}
func (b brokenState) IsTerminal() bool        { return b.terminal }
func (b brokenState) Winner() (Outcome, bool) { return b.outcome, b.ok }
func (b brokenState) Clone() State            { return b }
