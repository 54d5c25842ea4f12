// internal/players/decider.go

// Package players provides decision capabilities for the Farkle engine:
// implementations that, given a game state and the legal actions, pick one.
// The engine itself never decides anything; variants here range from uniform
// random play to a trained neural policy.
package players

import (
	"errors"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// ErrNoChoices is returned when a decider is asked to act with no legal
// actions. The host is responsible for detecting bankrupt rolls before
// consulting a decider.
var ErrNoChoices = errors.New("no actions to choose from")

// Decider is the decision capability: given the observable state and the
// ordered legal actions, return one of them. The returned action must be an
// element of choices; hosts guard against violations with Offered.
type Decider interface {
	Act(state farkle.State, choices []farkle.Action) (farkle.Action, error)
	Name() string
}

// Offered reports whether action is one of choices.
func Offered(action farkle.Action, choices []farkle.Action) bool {
	for _, c := range choices {
		if c == action {
			return true
		}
	}
	return false
}
