package gamemaster

import (
	"errors"
	"fmt"
	"kvinti/game"
)

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrStaleResult   = errors.New("stale result: the game has moved on")
	ErrGameNotFound  = errors.New("game not found")
)

// IllegalActionError reports an action that is not in the current legal set.
// The game is left untouched.
type IllegalActionError struct {
	Action game.Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

func (e *IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}

type StatusKind int

const (
	InProgress StatusKind = iota
	Won
	Drawn
)

type Reason int

const (
	NoReason Reason = iota
	RoyalCaptured
	Elimination
	NoLegalMoves
	Repetition
)

func (r Reason) String() string {
	switch r {
	case RoyalCaptured:
		return "royal captured"
	case Elimination:
		return "elimination"
	case NoLegalMoves:
		return "no legal moves"
	case Repetition:
		return "threefold repetition"
	default:
		return ""
	}
}

type Status struct {
	Kind   StatusKind
	Winner game.Player // set when Kind is Won
	Reason Reason
}

func won(player game.Player, reason Reason) Status {
	return Status{Kind: Won, Winner: player, Reason: reason}
}

func (s Status) Over() bool {
	return s.Kind != InProgress
}

func (s Status) String() string {
	switch s.Kind {
	case Won:
		return fmt.Sprintf("player %d won (%s)", s.Winner, s.Reason)
	case Drawn:
		return fmt.Sprintf("draw (%s)", s.Reason)
	default:
		return "in progress"
	}
}
