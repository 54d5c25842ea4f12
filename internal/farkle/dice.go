// internal/farkle/dice.go
package farkle

import "math/rand"

const (
	// NumDice is the number of dice in play at the start of every turn.
	NumDice = 6
	// NumFaces is the number of sides on each die.
	NumFaces = 6
)

// Die is a single six-sided die. Dice carry no identity beyond their face:
// two dice showing the same value are interchangeable when setting dice aside.
type Die struct {
	Face int `json:"face"`
}

// Roll overwrites the die's face with a fresh uniform draw from rng and
// returns the new face. The random source is injected so that a fixed seed
// reproduces an entire game trajectory.
func (d *Die) Roll(rng *rand.Rand) int {
	d.Face = rng.Intn(NumFaces) + 1
	return d.Face
}

// RollDice draws n fresh dice from rng.
func RollDice(rng *rand.Rand, n int) []Die {
	dice := make([]Die, n)
	for i := range dice {
		dice[i].Roll(rng)
	}
	return dice
}

// FaceCounts tallies how many dice show each face. Index 0 is unused so that
// counts[face] reads naturally.
type FaceCounts [NumFaces + 1]int

// CountFaces tallies the faces of a dice multiset.
func CountFaces(dice []Die) FaceCounts {
	var counts FaceCounts
	for _, d := range dice {
		counts[d.Face]++
	}
	return counts
}

// Total is the number of dice represented by the tally.
func (c FaceCounts) Total() int {
	n := 0
	for face := 1; face <= NumFaces; face++ {
		n += c[face]
	}
	return n
}

// Contains reports whether other is a sub-multiset of c.
func (c FaceCounts) Contains(other FaceCounts) bool {
	for face := 1; face <= NumFaces; face++ {
		if other[face] > c[face] {
			return false
		}
	}
	return true
}
