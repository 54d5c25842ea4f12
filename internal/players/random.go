// internal/players/random.go
package players

import (
	"math/rand"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// Random picks uniformly among the offered actions. It is the baseline
// opponent for training runs and keeps simulations reproducible through its
// injected random source.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random decider drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Act(_ farkle.State, choices []farkle.Action) (farkle.Action, error) {
	if len(choices) == 0 {
		return farkle.Action{}, ErrNoChoices
	}
	return choices[r.rng.Intn(len(choices))], nil
}

func (r *Random) Name() string { return "random" }
