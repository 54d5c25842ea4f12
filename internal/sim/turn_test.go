// internal/sim/turn_test.go
package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// fixedDice is a rand.Source yielding a predetermined face sequence.
// Die.Roll draws with Intn(6), which reads the top 31 bits of Int63 and
// takes them mod 6, so face f is produced by (f-1)<<32.
type fixedDice struct {
	faces []int
	i     int
}

func (f *fixedDice) Int63() int64 {
	face := f.faces[f.i%len(f.faces)]
	f.i++
	return int64(face-1) << 32
}

func (f *fixedDice) Seed(int64) {}

func fixedRng(faces ...int) *rand.Rand {
	return rand.New(&fixedDice{faces: faces})
}

// scripted replays a fixed list of picks, each choosing from the offered
// actions by label.
type scripted struct {
	labels []string
	i      int
}

func (s *scripted) Act(_ farkle.State, choices []farkle.Action) (farkle.Action, error) {
	label := s.labels[s.i]
	s.i++
	for _, c := range choices {
		if c.Label == label {
			return c, nil
		}
	}
	return farkle.Action{}, ErrNotOffered
}

func (s *scripted) Name() string { return "scripted" }

func TestFixedDiceProducesScript(t *testing.T) {
	rng := fixedRng(5, 5, 5, 5, 2, 3)

	state, err := farkle.NewState(2).Roll(rng)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{5, 5, 5, 5, 2, 3}, state.Held())
}

// TestPlayTurnBankThreeFives is the end-to-end scenario: a roll with four
// 5's, the player takes three-of-5 for 500 and stops, banking exactly 500.
func TestPlayTurnBankThreeFives(t *testing.T) {
	controller := NewController(fixedRng(5, 5, 5, 5, 2, 3), nil)
	decider := &scripted{labels: []string{"Three 5's", "stop"}}

	state, result, err := controller.PlayTurn(farkle.NewState(2), decider)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Player)
	assert.Equal(t, 500, result.Banked)
	assert.False(t, result.Farkled)
	assert.Equal(t, 1, result.Rolls)

	assert.Equal(t, 500, state.Score(0))
	assert.Equal(t, 0, state.Score(1))
	assert.Equal(t, 1, state.Round())
	assert.Equal(t, 1, state.CurrentPlayer(), "player 1 is up next")
	assert.Equal(t, 0, state.TurnSum())
}

func TestPlayTurnFarkle(t *testing.T) {
	// {2,2,3,3,4,6}: no singles, no triple, only two pairs, no straight.
	controller := NewController(fixedRng(2, 2, 3, 3, 4, 6), nil)
	decider := &scripted{} // never consulted

	state, result, err := controller.PlayTurn(farkle.NewState(2), decider)
	require.NoError(t, err)

	assert.True(t, result.Farkled)
	assert.Equal(t, 0, result.Banked)
	assert.Equal(t, []int{0, 0}, state.Scores())
	assert.Equal(t, 1, state.Round())
}

func TestPlayTurnReRoll(t *testing.T) {
	// First roll {1,2,2,3,3,4}: play the single 1, then re-roll the five
	// remaining dice into {2,2,3,3,4}, which is bankrupt.
	controller := NewController(fixedRng(1, 2, 2, 3, 3, 4, 2, 2, 3, 3, 4), nil)
	decider := &scripted{labels: []string{"1", "roll"}}

	state, result, err := controller.PlayTurn(farkle.NewState(2), decider)
	require.NoError(t, err)

	assert.True(t, result.Farkled, "unbanked 100 is lost on the second roll")
	assert.Equal(t, 2, result.Rolls)
	assert.Equal(t, []int{0, 0}, state.Scores())
}

func TestPlayTurnRejectsUnofferedAction(t *testing.T) {
	bogus := farkle.Action{Label: "Three pairs", Points: 1500}
	bogus.Consumed[2], bogus.Consumed[3], bogus.Consumed[4] = 2, 2, 2
	decider := &fixedChoice{action: bogus}

	controller := NewController(fixedRng(5, 5, 5, 5, 2, 3), nil)
	_, _, err := controller.PlayTurn(farkle.NewState(2), decider)
	assert.ErrorIs(t, err, ErrNotOffered)
}

type fixedChoice struct{ action farkle.Action }

func (f *fixedChoice) Act(farkle.State, []farkle.Action) (farkle.Action, error) {
	return f.action, nil
}

func (f *fixedChoice) Name() string { return "fixed" }

func TestPlayTurnEmitsEvents(t *testing.T) {
	var events []Event
	controller := NewController(fixedRng(5, 5, 5, 5, 2, 3), func(ev Event) {
		events = append(events, ev)
	})
	decider := &scripted{labels: []string{"Three 5's", "stop"}}

	_, _, err := controller.PlayTurn(farkle.NewState(2), decider)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, EventRoll, events[0].Type)
	assert.Equal(t, EventPlay, events[1].Type)
	require.NotNil(t, events[1].Action)
	assert.Equal(t, 500, events[1].Points)
	assert.Equal(t, EventBank, events[2].Type)
	assert.Equal(t, 500, events[2].Points)
}
