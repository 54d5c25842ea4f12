// internal/farkle/action.go
package farkle

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rollLabel = "roll"
	stopLabel = "stop"
)

// Action is one legal move offered to a player: either a scoring combination
// (dice consumed for points) or one of the control actions roll/stop. Actions
// are plain comparable values so that hosts can check membership with ==.
type Action struct {
	// Consumed holds how many dice of each face this action sets aside.
	// It is the zero tally for control actions.
	Consumed FaceCounts `json:"consumed"`
	// Label is a display name; it carries no game logic.
	Label string `json:"label"`
	// Points is the score added to the turn sum when the action is played.
	Points int `json:"points"`
}

// RollAction is the control action requesting a fresh roll of the remaining
// eligible dice.
func RollAction() Action { return Action{Label: rollLabel} }

// StopAction is the control action banking the turn sum and passing the turn.
func StopAction() Action { return Action{Label: stopLabel} }

// IsRoll reports whether a is the roll control action.
func (a Action) IsRoll() bool {
	return a.Consumed == (FaceCounts{}) && a.Points == 0 && a.Label == rollLabel
}

// IsStop reports whether a is the stop control action.
func (a Action) IsStop() bool {
	return a.Consumed == (FaceCounts{}) && a.Points == 0 && a.Label == stopLabel
}

// IsScoring reports whether a consumes dice for points.
func (a Action) IsScoring() bool {
	return a.Consumed != (FaceCounts{}) && a.Points > 0
}

func (a Action) String() string {
	if !a.IsScoring() {
		return a.Label
	}
	var faces []string
	for face := 1; face <= NumFaces; face++ {
		for i := 0; i < a.Consumed[face]; i++ {
			faces = append(faces, strconv.Itoa(face))
		}
	}
	return fmt.Sprintf("%s [%s] (%d points)", a.Label, strings.Join(faces, " "), a.Points)
}
