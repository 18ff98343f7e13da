package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	alice PlayerID = "alice"
	bob   PlayerID = "bob"
)

func card(s Suit, r Rank) Card { return Card{Suit: s, Rank: r} }

// stackedDeck orders a deck so that dealing it hands out the given cards, with
// the talon drawn in the order listed.
func stackedDeck(first, second Hand, trump Card, talon ...Card) Deck {
	order := make([]Card, 0, DeckSize)
	order = append(order, first[:3]...)
	order = append(order, second[:3]...)
	order = append(order, trump)
	order = append(order, first[3:]...)
	order = append(order, second[3:]...)
	order = append(order, talon...)

	deck := make(Deck, len(order))
	for i, c := range order {
		deck[len(order)-1-i] = c
	}
	return deck
}

// dealt returns a fresh round with alice leading.
//
//	alice: J♥ Q♠ K♠ A♣ 10♣
//	bob:   A♠ 10♠ J♣ Q♣ K♣
//	trump: 10♥
//	talon: A♥ K♥ Q♥ J♠ J♦ Q♦ K♦ 10♦ A♦
func dealt(t *testing.T) *MatchState {
	t.Helper()
	s := NewMatch(alice, bob, rand.New(rand.NewPCG(1, 2)))
	s.PlayerWith1stDeal = alice
	s.ResetRound(stackedDeck(
		Hand{card(Heart, Jack), card(Spade, Queen), card(Spade, King), card(Club, Ace), card(Club, Ten)},
		Hand{card(Spade, Ace), card(Spade, Ten), card(Club, Jack), card(Club, Queen), card(Club, King)},
		card(Heart, Ten),
		card(Heart, Ace), card(Heart, King), card(Heart, Queen), card(Spade, Jack),
		card(Diamond, Jack), card(Diamond, Queen), card(Diamond, King), card(Diamond, Ten), card(Diamond, Ace),
	), nil)
	return s
}

func mustApply(t *testing.T, s *MatchState, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, s.Apply(a), "apply %v", a)
	}
}
