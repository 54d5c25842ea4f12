// internal/farkle/state.go

// Package farkle implements the Farkle rules engine: dice, the scoring
// combination enumerator, and the immutable game state with its pure
// transition functions. The package does no I/O and holds no global state;
// it is intended as a deterministic environment for policy-learning agents,
// so every transition returns a fresh value and randomness is injected.
package farkle

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrIllegalAction is returned by Play when an action consumes dice that
	// are not currently held. This is an integration bug, not a game outcome:
	// actions are expected to come from Enumerate.
	ErrIllegalAction = errors.New("action consumes dice that are not held")

	// ErrNotEligible is returned by Roll while held dice await a scoring
	// decision (the eligible-to-roll sentinel is 0).
	ErrNotEligible = errors.New("held dice must be scored before rolling again")
)

// State is one immutable point in a game. Transitions (Roll, Play, EndTurn)
// return successors and never mutate the receiver, so states can be shared
// freely, e.g. as search-tree nodes.
type State struct {
	round    int
	scores   []int
	held     []Die
	turnSum  int
	eligible int
}

// NewState returns the opening state of a game: round 0, all scores 0, no
// dice held, and all six dice eligible to roll.
func NewState(numPlayers int) State {
	return State{
		scores:   make([]int, numPlayers),
		eligible: NumDice,
	}
}

// NumPlayers returns the number of players in the game.
func (s State) NumPlayers() int { return len(s.scores) }

// Round returns the completed-turn counter; it increments once per turn, not
// once per full cycle of players.
func (s State) Round() int { return s.round }

// CurrentPlayer returns the index of the player to move.
func (s State) CurrentPlayer() int { return s.round % len(s.scores) }

// Score returns player's banked score.
func (s State) Score(player int) int { return s.scores[player] }

// Scores returns a copy of the banked scores by player index.
func (s State) Scores() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}

// Held returns the faces of the currently held dice.
func (s State) Held() []int {
	faces := make([]int, len(s.held))
	for i, d := range s.held {
		faces[i] = d.Face
	}
	return faces
}

// Counts tallies the currently held dice by face.
func (s State) Counts() FaceCounts { return CountFaces(s.held) }

// TurnSum returns the points accumulated this turn but not yet banked.
func (s State) TurnSum() int { return s.turnSum }

// EligibleToRoll returns how many dice the current player may roll next.
// Zero is the sentinel for "dice were just rolled and must be scored first".
func (s State) EligibleToRoll() int { return s.eligible }

// Leader returns the player with the highest banked score. The engine has no
// built-in win condition; orchestrators poll Leader after each turn against
// their target score.
func (s State) Leader() (player, score int) {
	for p, banked := range s.scores {
		if p == 0 || banked > score {
			player, score = p, banked
		}
	}
	return player, score
}

// Options enumerates the legal actions for the currently held dice. An empty
// result means the roll is bankrupt and the turn must be force-ended.
func (s State) Options() []Action {
	return Enumerate(CountFaces(s.held), s.eligible)
}

// Roll draws the eligible dice from rng and returns the successor state with
// the just-rolled sentinel set.
func (s State) Roll(rng *rand.Rand) (State, error) {
	if s.eligible == 0 {
		return State{}, ErrNotEligible
	}
	next := s.clone()
	next.held = RollDice(rng, s.eligible)
	next.eligible = 0
	return next, nil
}

// Play applies a scoring action: the turn sum grows by the action's points,
// the consumed dice are set aside, and the remaining held dice become
// eligible to roll. Consuming every held die is "hot dice": all six become
// eligible again.
//
// The action must come from Enumerate over the current held dice; Play
// rejects anything that consumes dice not held rather than corrupting state.
func (s State) Play(action Action) (State, error) {
	if !CountFaces(s.held).Contains(action.Consumed) {
		return State{}, fmt.Errorf("play %q: %w", action.Label, ErrIllegalAction)
	}
	next := s.clone()
	next.turnSum += action.Points
	for face := 1; face <= NumFaces; face++ {
		for i := 0; i < action.Consumed[face]; i++ {
			next.held = removeOne(next.held, face)
		}
	}
	if len(next.held) == 0 {
		next.held = nil
		next.eligible = NumDice
	} else {
		next.eligible = len(next.held)
	}
	return next, nil
}

// EndTurn finishes the current player's turn and advances the round. A
// forced end (bankrupt roll) banks nothing; otherwise the turn sum is
// credited to the current player.
func (s State) EndTurn(forced bool) State {
	next := s.clone()
	if !forced {
		next.scores[s.CurrentPlayer()] += s.turnSum
	}
	next.round++
	next.turnSum = 0
	next.held = nil
	next.eligible = NumDice
	return next
}

func (s State) clone() State {
	next := s
	next.scores = append([]int(nil), s.scores...)
	next.held = append([]Die(nil), s.held...)
	return next
}

// removeOne removes exactly one die showing face, never every match.
func removeOne(dice []Die, face int) []Die {
	for i, d := range dice {
		if d.Face == face {
			return append(dice[:i], dice[i+1:]...)
		}
	}
	return dice
}
