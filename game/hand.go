package game

import "schnapsen/utils"

// Hand holds the cards owned by one player. Order carries no meaning.
type Hand []Card

func (h Hand) Has(card Card) bool {
	return utils.FindIndex(h, card) >= 0
}

// Remove takes card out of the hand. It reports false if the card is not held.
func (h *Hand) Remove(card Card) bool {
	i := utils.FindIndex(*h, card)
	if i < 0 {
		return false
	}
	*h = append((*h)[:i], (*h)[i+1:]...)
	return true
}

// OfSuit returns the held cards of suit whose rank is strictly greater than
// greaterThan. Pass 0 to get every card of the suit.
func (h Hand) OfSuit(suit Suit, greaterThan Rank) []Card {
	var out []Card
	for _, c := range h {
		if c.Suit == suit && c.Rank > greaterThan {
			out = append(out, c)
		}
	}
	return out
}

// Marriages returns the suits for which the hand holds both Queen and King.
func (h Hand) Marriages() []Suit {
	var out []Suit
	for _, s := range Suits {
		if h.Has(Card{Suit: s, Rank: Queen}) && h.Has(Card{Suit: s, Rank: King}) {
			out = append(out, s)
		}
	}
	return out
}

func (h Hand) Copy() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
