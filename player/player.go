package player

import (
	"math/rand/v2"

	"schnapsen/game"
)

// CloseThreshold is the round score above which Greedy closes the deck.
const CloseThreshold = 50

type random struct {
	rng *rand.Rand
}

// NewRandom returns a player choosing uniformly among the legal actions. A nil
// rng uses the global source.
func NewRandom(rng *rand.Rand) game.Player {
	return &random{rng: rng}
}

func (p *random) SelectAction(state *game.MatchState, legal []game.Action) game.Action {
	if p.rng == nil {
		return legal[rand.IntN(len(legal))]
	}
	return legal[p.rng.IntN(len(legal))]
}

// Greedy follows a fixed order of preference: swap trump, close the deck once
// it has more than CloseThreshold points, declare a marriage, then lead its
// highest card or follow with its lowest.
type Greedy struct{}

func (Greedy) SelectAction(state *game.MatchState, legal []game.Action) game.Action {
	for _, a := range legal {
		if a.Kind == game.SwapTrump {
			return a
		}
	}
	if state.Player(state.ActivePlayer).RoundPoints > CloseThreshold {
		for _, a := range legal {
			if a.Kind == game.CloseDeck {
				return a
			}
		}
	}
	for _, a := range legal {
		if a.Kind == game.PlayMarriage {
			return a
		}
	}

	var selected game.Action
	found := false
	leading := state.IsLeading()
	for _, a := range legal {
		if a.Kind != game.PlayCard {
			continue
		}
		better := a.Card.Rank > selected.Card.Rank
		if !leading {
			better = a.Card.Rank < selected.Card.Rank
		}
		if !found || better {
			selected, found = a, true
		}
	}
	if !found {
		return legal[0]
	}
	return selected
}
