package game

import "math/rand/v2"

// ShuffleImperfectInformation replaces everything player cannot see with a
// random re-partition of the same cards. The opponent's hand, minus cards
// publicly tied to a marriage they declared, is pooled with the talon,
// shuffled, and dealt back in the same quantities. Everything else is left
// untouched.
func (s *MatchState) ShuffleImperfectInformation(player PlayerID, rng *rand.Rand) {
	opp := s.PlayerStates[s.Opponent(player)]

	known := make(Hand, 0, 2)
	for _, suit := range Suits {
		e, ok := s.Marriages[suit]
		if !ok || e.Player != s.Opponent(player) {
			continue
		}
		for _, c := range e.Marriage.Cards() {
			if opp.Hand.Has(c) {
				known = append(known, c)
			}
		}
	}

	pool := make(Deck, 0, len(opp.Hand)+len(s.Deck))
	for _, c := range opp.Hand {
		if !known.Has(c) {
			pool = append(pool, c)
		}
	}
	hidden := len(pool)
	pool = append(pool, s.Deck...)
	pool.Shuffle(rng)

	hand := make(Hand, 0, len(opp.Hand))
	hand = append(hand, known...)
	hand = append(hand, pool[:hidden]...)
	opp.Hand = hand
	s.Deck = pool[hidden:]
}
