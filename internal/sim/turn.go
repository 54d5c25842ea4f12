// internal/sim/turn.go

// Package sim orchestrates Farkle games over the pure engine: a turn
// controller that drives roll/decide/apply until a turn ends, and a game
// runner that sequences turns until a player reaches the target score.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jason-s-yu/farkle/internal/farkle"
	"github.com/jason-s-yu/farkle/internal/players"
)

// ErrNotOffered is returned when a decider picks an action outside the
// offered set. This is an integration bug in the decider; the game is
// aborted rather than silently corrected.
var ErrNotOffered = errors.New("decider returned an action that was not offered")

// TurnResult summarizes one completed turn.
type TurnResult struct {
	Player  int
	Banked  int  // points credited to the player (0 on a farkle)
	Farkled bool // the turn ended on a bankrupt roll
	Rolls   int  // times the dice hit the table
}

// Controller drives a single player's turn. It is an explicit loop, not
// recursion: learning runs play many thousands of turns back to back.
type Controller struct {
	rng     *rand.Rand
	onEvent func(Event)
}

// NewController returns a Controller rolling dice from rng. onEvent may be
// nil; otherwise it receives every turn event synchronously.
func NewController(rng *rand.Rand, onEvent func(Event)) *Controller {
	return &Controller{rng: rng, onEvent: onEvent}
}

// PlayTurn runs one full turn for the current player of state, consulting
// decider for every decision, and returns the state after the turn ended.
func (c *Controller) PlayTurn(state farkle.State, decider players.Decider) (farkle.State, TurnResult, error) {
	result := TurnResult{Player: state.CurrentPlayer()}

	next, err := state.Roll(c.rng)
	if err != nil {
		return state, result, fmt.Errorf("opening roll: %w", err)
	}
	state = next
	result.Rolls++
	c.emit(Event{Type: EventRoll, Player: result.Player, State: state})

	for {
		choices := state.Options()
		if len(choices) == 0 {
			state = state.EndTurn(true)
			result.Farkled = true
			c.emit(Event{Type: EventFarkle, Player: result.Player, State: state})
			return state, result, nil
		}

		action, err := decider.Act(state, choices)
		if err != nil {
			return state, result, fmt.Errorf("decider %s: %w", decider.Name(), err)
		}
		if !players.Offered(action, choices) {
			return state, result, fmt.Errorf("decider %s chose %v: %w", decider.Name(), action, ErrNotOffered)
		}

		switch {
		case action.IsStop():
			result.Banked = state.TurnSum()
			state = state.EndTurn(false)
			c.emit(Event{Type: EventBank, Player: result.Player, Points: result.Banked, State: state})
			return state, result, nil

		case action.IsRoll():
			state, err = state.Roll(c.rng)
			if err != nil {
				return state, result, fmt.Errorf("re-roll: %w", err)
			}
			result.Rolls++
			c.emit(Event{Type: EventRoll, Player: result.Player, State: state})

		default:
			state, err = state.Play(action)
			if err != nil {
				return state, result, fmt.Errorf("apply action: %w", err)
			}
			c.emit(Event{Type: EventPlay, Player: result.Player, Action: &action, Points: action.Points, State: state})
		}
	}
}

func (c *Controller) emit(ev Event) {
	if c.onEvent != nil {
		c.onEvent(ev)
	}
}
