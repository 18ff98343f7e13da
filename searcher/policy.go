package searcher

import (
	"schnapsen/game"
	"schnapsen/utils"
)

// Policy is a distribution over game.ActionSpace. Slots of actions that were
// never tried at the root hold 0.
type Policy [game.ActionSpaceSize]float64

// policyFromVisits normalizes root visit counts into a Policy. With no visits
// at all the policy stays zero.
func policyFromVisits(visits [game.ActionSpaceSize]int) Policy {
	var policy Policy
	total := 0
	for _, v := range visits {
		total += v
	}
	if total == 0 {
		return policy
	}
	for i, v := range visits {
		policy[i] = float64(v) / float64(total)
	}
	return policy
}

func (p Policy) Prob(action game.Action) float64 {
	i := game.ActionIndex(action)
	if i < 0 {
		return 0
	}
	return p[i]
}

// Best returns the legal action with the most probability mass. ok is false
// when none of the legal actions has any.
func (p Policy) Best(legal []game.Action) (action game.Action, ok bool) {
	probs := make([]float64, len(legal))
	for i, a := range legal {
		probs[i] = p.Prob(a)
	}
	i := utils.ArgMax(probs)
	if i < 0 || probs[i] == 0 {
		return game.Action{}, false
	}
	return legal[i], true
}
