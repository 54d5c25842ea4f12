// internal/sim/events.go
package sim

import "github.com/jason-s-yu/farkle/internal/farkle"

// EventType is an enum-like type for turn and game progress notifications.
type EventType string

const (
	EventRoll    EventType = "roll"     // dice were rolled
	EventPlay    EventType = "play"     // a scoring action was applied
	EventFarkle  EventType = "farkle"   // bankrupt roll, turn force-ended
	EventBank    EventType = "bank"     // turn sum banked voluntarily
	EventGameEnd EventType = "game_end" // a player reached the target score
)

// Event describes one observable step of a game. The State field is the
// state after the step; states are immutable, so observers may retain them.
type Event struct {
	Type   EventType
	Player int
	Action *farkle.Action // set for EventPlay
	Points int            // scored (play), banked (bank), or winning score
	State  farkle.State
}
