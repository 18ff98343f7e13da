package game

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is wrapped by every rule violation. Callers are expected to
// submit only actions returned by ValidMoves, so seeing it is a caller bug.
var ErrIllegalAction = errors.New("illegal action")

// RuleError describes why an action was rejected.
type RuleError struct {
	Action Action
	Player PlayerID
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("illegal action %q by %s: %s", e.Action, e.Player, e.Reason)
}

func (e *RuleError) Unwrap() error { return ErrIllegalAction }

func (s *MatchState) violation(a Action, reason string) error {
	return &RuleError{Action: a, Player: s.ActivePlayer, Reason: reason}
}
