// internal/players/decider_test.go
package players

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// rolledState advances a fresh game to the awaiting-score position so that
// deciders see realistic choices.
func rolledState(t *testing.T, seed int64) (farkle.State, []farkle.Action) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	state, err := farkle.NewState(2).Roll(rng)
	require.NoError(t, err)
	return state, state.Options()
}

// scorableState scans seeds for a roll that is not bankrupt.
func scorableState(t *testing.T) (farkle.State, []farkle.Action) {
	t.Helper()
	for seed := int64(0); seed < 50; seed++ {
		state, choices := rolledState(t, seed)
		if len(choices) > 0 {
			return state, choices
		}
	}
	t.Fatal("no scorable roll found")
	return farkle.State{}, nil
}

func TestOffered(t *testing.T) {
	choices := []farkle.Action{farkle.RollAction(), farkle.StopAction()}
	assert.True(t, Offered(farkle.StopAction(), choices))

	scoring := farkle.Action{Label: "5", Points: 50}
	scoring.Consumed[5] = 1
	assert.False(t, Offered(scoring, choices))
}

func TestRandomReturnsOfferedAction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	decider := NewRandom(rng)

	for seed := int64(0); seed < 20; seed++ {
		state, choices := rolledState(t, seed)
		if len(choices) == 0 {
			continue // bankrupt roll, nothing to decide
		}
		action, err := decider.Act(state, choices)
		require.NoError(t, err)
		assert.True(t, Offered(action, choices))
	}
}

func TestRandomNoChoices(t *testing.T) {
	decider := NewRandom(rand.New(rand.NewSource(1)))
	_, err := decider.Act(farkle.NewState(2), nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestGreedyTakesHighestScoringAction(t *testing.T) {
	single5 := farkle.Action{Label: "5", Points: 50}
	single5.Consumed[5] = 1
	triple5 := farkle.Action{Label: "Three 5's", Points: 500}
	triple5.Consumed[5] = 3

	choices := []farkle.Action{single5, triple5}
	action, err := NewGreedy().Act(farkle.NewState(2), choices)
	require.NoError(t, err)
	assert.Equal(t, triple5, action)
}

func TestGreedyBanksPastThreshold(t *testing.T) {
	decider := NewGreedy()
	choices := []farkle.Action{farkle.RollAction(), farkle.StopAction()}

	// Below the threshold with plenty of dice: keep rolling.
	low := playedState(t, 100)
	action, err := decider.Act(low, choices)
	require.NoError(t, err)
	assert.Equal(t, farkle.RollAction(), action)

	// At the threshold: bank.
	high := playedState(t, decider.BankAt)
	action, err = decider.Act(high, choices)
	require.NoError(t, err)
	assert.Equal(t, farkle.StopAction(), action)
}

// playedState builds a state carrying an unbanked sum via real transitions:
// a synthetic combination worth wantSum consumes the whole roll, so hot dice
// leave all six eligible.
func playedState(t *testing.T, wantSum int) farkle.State {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	rolled, err := farkle.NewState(2).Roll(rng)
	require.NoError(t, err)

	held := rolled.Counts()
	action := farkle.Action{Label: "test", Points: wantSum}
	for face := 1; face <= farkle.NumFaces; face++ {
		action.Consumed[face] = held[face]
	}
	played, err := rolled.Play(action)
	require.NoError(t, err)
	require.Equal(t, farkle.NumDice, played.EligibleToRoll())
	require.Equal(t, wantSum, played.TurnSum())
	return played
}

func TestConsoleRepromptsOnInvalidInput(t *testing.T) {
	state, choices := scorableState(t)

	var out strings.Builder
	in := strings.NewReader("banana\n99\n0\n")
	decider := NewConsole(in, &out)

	action, err := decider.Act(state, choices)
	require.NoError(t, err)
	assert.Equal(t, choices[0], action)
	assert.Contains(t, out.String(), "enter a number")
}

func TestConsoleReadFailureIsFatal(t *testing.T) {
	state, choices := scorableState(t)

	decider := NewConsole(strings.NewReader(""), &strings.Builder{})
	_, err := decider.Act(state, choices)
	assert.Error(t, err)
}
