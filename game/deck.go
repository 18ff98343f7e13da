package game

import "math/rand/v2"

// DeckSize is the number of cards in a Schnapsen deck.
const DeckSize = len(Suits) * len(Ranks)

// Deck is the face-down talon. Cards are drawn from the end of the slice.
type Deck []Card

// NewDeck returns the 20 cards in a fixed order.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// NewShuffledDeck returns a full deck shuffled with rng (the global source if nil).
func NewShuffledDeck(rng *rand.Rand) Deck {
	deck := NewDeck()
	deck.Shuffle(rng)
	return deck
}

func (d Deck) Len() int { return len(d) }

// Shuffle permutes the deck in place.
func (d Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) { d[i], d[j] = d[j], d[i] }
	if rng == nil {
		rand.Shuffle(len(d), swap)
		return
	}
	rng.Shuffle(len(d), swap)
}

// Pop removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Pop() (card Card, ok bool) {
	n := len(*d)
	if n == 0 {
		return NoCard, false
	}
	card = (*d)[n-1]
	*d = (*d)[:n-1]
	return card, true
}

func (d Deck) Copy() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
