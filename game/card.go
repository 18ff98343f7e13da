package game

import "fmt"

// Suit of a card.
type Suit int

const (
	Spade Suit = iota
	Club
	Heart
	Diamond
)

// Suits lists every suit in the deck.
var Suits = [4]Suit{Spade, Club, Heart, Diamond}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spades"
	case Club:
		return "Clubs"
	case Heart:
		return "Hearts"
	case Diamond:
		return "Diamonds"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank of a card. The numeric value doubles as the card's trick points.
type Rank int

const (
	Jack  Rank = 2
	Queen Rank = 3
	King  Rank = 4
	Ten   Rank = 10
	Ace   Rank = 11
)

// Ranks lists every rank in ascending order of strength.
var Ranks = [5]Rank{Jack, Queen, King, Ten, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ten:
		return "Ten"
	case Ace:
		return "Ace"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Points returns the trick points the rank is worth.
func (r Rank) Points() int { return int(r) }

// Card is an immutable suit and rank pair. The zero value means "no card".
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NoCard marks an empty table slot.
var NoCard = Card{}

func (c Card) IsZero() bool { return c.Rank == 0 }

func (c Card) String() string {
	if c.IsZero() {
		return "-"
	}
	return c.Rank.String() + " " + c.Suit.String()
}
