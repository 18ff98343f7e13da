package game

// Marriage is a declared Queen and King of one suit.
type Marriage struct {
	Suit          Suit `json:"suit"`
	Points        int  `json:"points"`
	PointsAwarded bool `json:"points_awarded"`
}

// NewMarriage prices a marriage of suit against the trump suit.
func NewMarriage(suit, trump Suit) Marriage {
	m := Marriage{Suit: suit, Points: 20}
	if suit == trump {
		m.Points = 40
	}
	return m
}

// Cards returns the two cards that make up the marriage.
func (m Marriage) Cards() [2]Card {
	return [2]Card{{Suit: m.Suit, Rank: Queen}, {Suit: m.Suit, Rank: King}}
}

// LedgerEntry records who declared a marriage.
type LedgerEntry struct {
	Marriage Marriage `json:"marriage"`
	Player   PlayerID `json:"player"`
}
