package game

import "math/rand/v2"

const (
	RoundPointLimit = 66
	MatchPointLimit = 7
)

// PlayerID identifies a player within a match.
type PlayerID string

// Player chooses one of the legal actions for the active player. The state
// must be treated as read-only.
type Player interface {
	SelectAction(state *MatchState, legal []Action) Action
}

// PlayerState is the per-player part of a MatchState.
type PlayerState struct {
	RoundPoints int    `json:"round_points"`
	MatchPoints int    `json:"match_points"`
	Hand        Hand   `json:"hand"`
	CardsWon    []Card `json:"cards_won"`

	// Only meaningful once the deck has been closed by a player.
	MatchPointsOnOffer int `json:"match_points_on_offer"`
}

func (ps *PlayerState) copy() *PlayerState {
	out := *ps
	out.Hand = ps.Hand.Copy()
	if ps.CardsWon != nil {
		out.CardsWon = make([]Card, len(ps.CardsWon))
		copy(out.CardsWon, ps.CardsWon)
	}
	return &out
}

// MatchState is the complete, perspective-free state of one match. The rules
// engine mutates it in place; use Copy to explore alternatives.
type MatchState struct {
	Players      [2]PlayerID               `json:"players"`
	PlayerStates map[PlayerID]*PlayerState `json:"player_states"`

	Deck       Deck     `json:"deck"`
	TrumpCard  Card     `json:"trump_card"`
	TrumpTaken bool     `json:"trump_taken"`
	DeckClosed bool     `json:"deck_closed"`
	DeckCloser PlayerID `json:"deck_closer,omitempty"`

	LeadingCard   Card     `json:"leading_card"`
	FollowingCard Card     `json:"following_card"`
	LeadingPlayer PlayerID `json:"leading_player"`
	ActivePlayer  PlayerID `json:"active_player"`
	HandWinner    PlayerID `json:"hand_winner,omitempty"`

	Marriages map[Suit]LedgerEntry `json:"marriages"`

	RoundWinner            PlayerID `json:"round_winner,omitempty"`
	RoundWinnerMatchPoints int      `json:"round_winner_match_points"`
	MatchWinner            PlayerID `json:"match_winner,omitempty"`
	PlayerWith1stDeal      PlayerID `json:"player_with_1st_deal"`
	Round                  int      `json:"round"`

	RoundPointLimit int `json:"round_point_limit"`
	MatchPointLimit int `json:"match_point_limit"`
}

// NewMatch creates a match between a and b with empty hands and a randomly
// chosen first dealer. Call ResetRound to deal.
func NewMatch(a, b PlayerID, rng *rand.Rand) *MatchState {
	s := &MatchState{
		Players: [2]PlayerID{a, b},
		PlayerStates: map[PlayerID]*PlayerState{
			a: {},
			b: {},
		},
		Marriages:       map[Suit]LedgerEntry{},
		RoundPointLimit: RoundPointLimit,
		MatchPointLimit: MatchPointLimit,
	}
	s.PlayerWith1stDeal = s.Players[intN(rng, 2)]
	return s
}

// ResetRound starts a new deal. A nil deck means a freshly shuffled one; a
// given deck is dealt from its end as is. Match points, the match winner and
// the dealer rotation are left alone.
func (s *MatchState) ResetRound(deck Deck, rng *rand.Rand) {
	if deck == nil {
		deck = NewShuffledDeck(rng)
	}
	s.Deck = deck
	for _, p := range s.Players {
		ps := s.PlayerStates[p]
		ps.RoundPoints = 0
		ps.Hand = make(Hand, 0, 5)
		ps.CardsWon = nil
		ps.MatchPointsOnOffer = 0
	}
	s.TrumpCard = NoCard
	s.TrumpTaken = false
	s.DeckClosed = false
	s.DeckCloser = ""
	s.LeadingCard = NoCard
	s.FollowingCard = NoCard
	s.HandWinner = ""
	s.Marriages = map[Suit]LedgerEntry{}
	s.RoundWinner = ""
	s.RoundWinnerMatchPoints = 0
	s.Round++

	first := s.PlayerWith1stDeal
	second := s.Opponent(first)
	s.draw(first, 3)
	s.draw(second, 3)
	s.TrumpCard, _ = s.Deck.Pop()
	s.draw(first, 2)
	s.draw(second, 2)

	s.LeadingPlayer = first
	s.ActivePlayer = first
}

// Opponent returns the other player.
func (s *MatchState) Opponent(p PlayerID) PlayerID {
	if p == s.Players[0] {
		return s.Players[1]
	}
	return s.Players[0]
}

// Player returns the state of p.
func (s *MatchState) Player(p PlayerID) *PlayerState { return s.PlayerStates[p] }

// IsLeading reports whether the active player is about to lead a trick.
func (s *MatchState) IsLeading() bool { return s.LeadingCard.IsZero() }

func (s *MatchState) RoundOver() bool { return s.RoundWinner != "" }

func (s *MatchState) MatchOver() bool { return s.MatchWinner != "" }

// TrumpSuit returns the trump suit. It stays known after the trump card is taken.
func (s *MatchState) TrumpSuit() Suit { return s.TrumpCard.Suit }

// ClosedByPlayer reports whether a player, as opposed to exhaustion, closed the deck.
func (s *MatchState) ClosedByPlayer() bool { return s.DeckCloser != "" }

// CardCount counts every card the round accounts for: talon, hands, won piles,
// table and the face-up trump. It is always DeckSize during a round.
func (s *MatchState) CardCount() int {
	n := len(s.Deck)
	for _, p := range s.Players {
		ps := s.PlayerStates[p]
		n += len(ps.Hand) + len(ps.CardsWon)
	}
	if !s.LeadingCard.IsZero() {
		n++
	}
	if !s.FollowingCard.IsZero() {
		n++
	}
	if !s.TrumpCard.IsZero() && !s.TrumpTaken {
		n++
	}
	return n
}

// Copy returns a deep copy sharing no mutable memory with s.
func (s *MatchState) Copy() *MatchState {
	out := *s
	out.Deck = s.Deck.Copy()
	out.PlayerStates = make(map[PlayerID]*PlayerState, len(s.PlayerStates))
	for p, ps := range s.PlayerStates {
		out.PlayerStates[p] = ps.copy()
	}
	out.Marriages = make(map[Suit]LedgerEntry, len(s.Marriages))
	for suit, e := range s.Marriages {
		out.Marriages[suit] = e
	}
	return &out
}

// draw deals n cards to p. When the talon is empty the face-up trump is the
// last card to go, which exhausts and closes the deck.
func (s *MatchState) draw(p PlayerID, n int) {
	ps := s.PlayerStates[p]
	for i := 0; i < n; i++ {
		if card, ok := s.Deck.Pop(); ok {
			ps.Hand = append(ps.Hand, card)
			continue
		}
		if s.TrumpTaken || s.TrumpCard.IsZero() {
			return
		}
		ps.Hand = append(ps.Hand, s.TrumpCard)
		s.TrumpTaken = true
		s.DeckClosed = true
	}
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
