// internal/farkle/score.go
package farkle

import "fmt"

// Point values for the scoring combinations.
const (
	singleOnePoints   = 100
	singleFivePoints  = 50
	threePairsPoints  = 1500
	threeOnesPoints   = 1000
	fourOfAKindPoints = 1000
	fiveOfAKindPoints = 2000
	sixOfAKindPoints  = 3000
	straightPoints    = 3000
)

// ofAKindTiers are independent: a hand with six of one face offers the four,
// five and six-of-a-kind actions simultaneously and the player picks one.
var ofAKindTiers = []struct {
	size   int
	name   string
	points int
}{
	{4, "Four", fourOfAKindPoints},
	{5, "Five", fiveOfAKindPoints},
	{6, "Six", sixOfAKindPoints},
}

// Enumerate computes every legal action for a tally of rolled dice. The
// result order is fixed for reproducibility; it is not meaningful to play.
//
// eligibleToRoll gates the control actions only: roll and stop are appended
// iff it is positive. An empty result is therefore only possible on the
// just-rolled sentinel (eligibleToRoll == 0) with nothing to score, which is
// the bankrupt signal the caller must turn into a forced end of turn.
func Enumerate(counts FaceCounts, eligibleToRoll int) []Action {
	var actions []Action

	if counts[1] >= 1 {
		a := Action{Label: "1", Points: singleOnePoints}
		a.Consumed[1] = 1
		actions = append(actions, a)
	}
	if counts[5] >= 1 {
		a := Action{Label: "5", Points: singleFivePoints}
		a.Consumed[5] = 1
		actions = append(actions, a)
	}

	// Three pairs fires only at exactly three qualifying faces; a
	// four-of-a-kind never stands in for two of the pairs.
	pairFaces := 0
	for face := 1; face <= NumFaces; face++ {
		if counts[face] >= 2 {
			pairFaces++
		}
	}
	if pairFaces == 3 {
		a := Action{Label: "Three pairs", Points: threePairsPoints}
		for face := 1; face <= NumFaces; face++ {
			if counts[face] >= 2 {
				a.Consumed[face] = 2
			}
		}
		actions = append(actions, a)
	}

	for face := 1; face <= NumFaces; face++ {
		if counts[face] >= 3 {
			points := face * 100
			if face == 1 {
				points = threeOnesPoints
			}
			a := Action{Label: fmt.Sprintf("Three %d's", face), Points: points}
			a.Consumed[face] = 3
			actions = append(actions, a)
		}
	}

	for face := 1; face <= NumFaces; face++ {
		for _, tier := range ofAKindTiers {
			if counts[face] >= tier.size {
				a := Action{Label: fmt.Sprintf("%s %d's", tier.name, face), Points: tier.points}
				a.Consumed[face] = tier.size
				actions = append(actions, a)
			}
		}
	}

	straight := true
	for face := 1; face <= NumFaces; face++ {
		if counts[face] < 1 {
			straight = false
			break
		}
	}
	if straight {
		a := Action{Label: "1-2-3-4-5-6", Points: straightPoints}
		for face := 1; face <= NumFaces; face++ {
			a.Consumed[face] = 1
		}
		actions = append(actions, a)
	}

	if eligibleToRoll > 0 {
		actions = append(actions, RollAction(), StopAction())
	}
	return actions
}
