// internal/players/greedy.go
package players

import "github.com/jason-s-yu/farkle/internal/farkle"

// Greedy is a simple bank-threshold heuristic: it always takes the
// highest-scoring combination on offer, then keeps rolling while enough dice
// remain and the unbanked sum is below its threshold.
type Greedy struct {
	// BankAt is the turn sum at which Greedy stops and banks.
	BankAt int
	// RollAtLeast is the minimum eligible dice Greedy will re-roll with.
	RollAtLeast int
}

// NewGreedy returns a Greedy decider with the default thresholds.
func NewGreedy() *Greedy {
	return &Greedy{BankAt: 1000, RollAtLeast: 3}
}

func (g *Greedy) Act(state farkle.State, choices []farkle.Action) (farkle.Action, error) {
	if len(choices) == 0 {
		return farkle.Action{}, ErrNoChoices
	}

	var best farkle.Action
	haveScoring := false
	for _, c := range choices {
		if c.IsScoring() && (!haveScoring || c.Points > best.Points) {
			best = c
			haveScoring = true
		}
	}
	if haveScoring {
		return best, nil
	}

	// Only roll/stop remain: weigh the unbanked sum against the dice left.
	stop := Offered(farkle.StopAction(), choices)
	roll := Offered(farkle.RollAction(), choices)
	if roll && (state.TurnSum() < g.BankAt || !stop) && state.EligibleToRoll() >= g.RollAtLeast {
		return farkle.RollAction(), nil
	}
	if stop {
		return farkle.StopAction(), nil
	}
	return choices[0], nil
}

func (g *Greedy) Name() string { return "greedy" }
