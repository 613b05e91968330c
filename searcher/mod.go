package searcher

import "errors"

// Action identifies a move. Games number their moves however they like, the
// engine only stores and replays them.
type Action = int

// Outcome of a finished game on the single global reward axis.
type Outcome int

const (
	SecondPlayerWin Outcome = -1
	Draw            Outcome = 0
	FirstPlayerWin  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case FirstPlayerWin:
		return "first"
	case SecondPlayerWin:
		return "second"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// State is the capability any game must provide to be searchable.
//
// Play mutates the receiver, so the engine clones before every playout and
// expansion. Clone must share no mutable data with the original.
type State interface {
	LegalMoves() []Action
	Play(Action)
	IsTerminal() bool
	// Winner reports the outcome of a terminal position, ok is false while
	// the game is still running.
	Winner() (outcome Outcome, ok bool)
	Clone() State
}

var (
	ErrNoLegalMoves             = errors.New("no legal moves available")
	ErrInvalidGameStateContract = errors.New("game state violates the search contract")
)
