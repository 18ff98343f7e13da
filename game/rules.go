package game

// Observer is notified synchronously after an action has been committed.
type Observer interface {
	OnAction(state *MatchState, player PlayerID, action Action)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(state *MatchState, player PlayerID, action Action)

func (f ObserverFunc) OnAction(state *MatchState, player PlayerID, action Action) {
	f(state, player, action)
}

// ValidMoves returns every action the active player may take. It is empty
// once the round has a winner.
func (s *MatchState) ValidMoves() []Action {
	if s.RoundOver() || s.ActivePlayer == "" {
		return nil
	}
	hand := s.PlayerStates[s.ActivePlayer].Hand

	if s.IsLeading() {
		moves := make([]Action, 0, len(hand)+4)
		if s.canSwapTrump() {
			moves = append(moves, Action{Kind: SwapTrump})
		}
		if !s.DeckClosed {
			moves = append(moves, Action{Kind: CloseDeck})
		}
		for _, suit := range s.openMarriages() {
			moves = append(moves, Marry(Card{Suit: suit, Rank: Queen}), Marry(Card{Suit: suit, Rank: King}))
		}
		for _, c := range hand {
			moves = append(moves, Play(c))
		}
		return moves
	}

	// Anything goes while the talon is open.
	cards := []Card(hand)
	if s.DeckClosed {
		cards = s.followCards(hand)
	}
	moves := make([]Action, 0, len(cards))
	for _, c := range cards {
		moves = append(moves, Play(c))
	}
	return moves
}

// Apply validates action for the active player and commits it, then notifies
// observers. Illegal actions leave the state untouched.
func (s *MatchState) Apply(action Action, observers ...Observer) error {
	player := s.ActivePlayer
	if reason := s.reject(action); reason != "" {
		return s.violation(action, reason)
	}

	switch action.Kind {
	case SwapTrump:
		s.swapTrump(player)
	case CloseDeck:
		s.closeDeck(player)
	case PlayMarriage:
		s.declareMarriage(player, action.Card.Suit)
		s.playCard(player, action.Card)
	case PlayCard:
		s.playCard(player, action.Card)
	}

	for _, o := range observers {
		o.OnAction(s, player, action)
	}
	return nil
}

// reject returns why action is illegal right now, or "" if it is legal.
func (s *MatchState) reject(a Action) string {
	if s.RoundOver() {
		return "round is over"
	}
	if s.ActivePlayer == "" {
		return "no cards have been dealt"
	}
	hand := s.PlayerStates[s.ActivePlayer].Hand
	switch a.Kind {
	case SwapTrump:
		switch {
		case !s.IsLeading():
			return "only the leading player may swap trump"
		case s.DeckClosed:
			return "deck is closed"
		case !s.canSwapTrump():
			return "jack of trumps not in hand"
		}
	case CloseDeck:
		switch {
		case !s.IsLeading():
			return "only the leading player may close the deck"
		case s.DeckClosed:
			return "deck already closed"
		}
	case PlayMarriage:
		if !s.IsLeading() {
			return "only the leading player may declare a marriage"
		}
		if a.Card.Rank != Queen && a.Card.Rank != King {
			return "marriage must be played with a queen or king"
		}
		for _, suit := range s.openMarriages() {
			if suit == a.Card.Suit {
				return ""
			}
		}
		return "no undeclared marriage in " + a.Card.Suit.String()
	case PlayCard:
		if !hand.Has(a.Card) {
			return "card not in hand"
		}
		if !s.IsLeading() && s.DeckClosed {
			for _, c := range s.followCards(hand) {
				if c == a.Card {
					return ""
				}
			}
			return "card does not follow the closed deck rules"
		}
	default:
		return "unknown action kind"
	}
	return ""
}

func (s *MatchState) canSwapTrump() bool {
	if s.DeckClosed || s.TrumpTaken || s.TrumpCard.IsZero() {
		return false
	}
	return s.PlayerStates[s.ActivePlayer].Hand.Has(Card{Suit: s.TrumpSuit(), Rank: Jack})
}

// openMarriages lists the active player's undeclared marriages.
func (s *MatchState) openMarriages() []Suit {
	var out []Suit
	for _, suit := range s.PlayerStates[s.ActivePlayer].Hand.Marriages() {
		if _, declared := s.Marriages[suit]; !declared {
			out = append(out, suit)
		}
	}
	return out
}

// followCards applies the closed deck obligations in order: beat the led card,
// follow suit, trump, then anything.
func (s *MatchState) followCards(hand Hand) []Card {
	led := s.LeadingCard
	if cards := hand.OfSuit(led.Suit, led.Rank); len(cards) > 0 {
		return cards
	}
	if cards := hand.OfSuit(led.Suit, 0); len(cards) > 0 {
		return cards
	}
	if cards := hand.OfSuit(s.TrumpSuit(), 0); len(cards) > 0 {
		return cards
	}
	return hand
}

func (s *MatchState) swapTrump(p PlayerID) {
	ps := s.PlayerStates[p]
	jack := Card{Suit: s.TrumpSuit(), Rank: Jack}
	ps.Hand.Remove(jack)
	ps.Hand = append(ps.Hand, s.TrumpCard)
	s.TrumpCard = jack
}

func (s *MatchState) closeDeck(p PlayerID) {
	s.DeckClosed = true
	s.DeckCloser = p
	s.PlayerStates[p].MatchPointsOnOffer = s.offer(p, true)
	other := s.Opponent(p)
	s.PlayerStates[other].MatchPointsOnOffer = s.offer(other, false)
}

// offer computes the match points p would win after the deck is closed, from
// the opponent's round points at this instant.
func (s *MatchState) offer(p PlayerID, closer bool) int {
	points := 1
	if !closer {
		points = 2
	}
	other := s.PlayerStates[s.Opponent(p)].RoundPoints
	if other == 0 {
		points = 3
	} else if other < 33 && closer {
		points = 2
	}
	return points
}

// declareMarriage records the marriage in the ledger. Its points are paid at
// once if p already has round points, otherwise they wait for p's next trick.
func (s *MatchState) declareMarriage(p PlayerID, suit Suit) {
	m := NewMarriage(suit, s.TrumpSuit())
	ps := s.PlayerStates[p]
	if ps.RoundPoints != 0 {
		ps.RoundPoints += m.Points
		m.PointsAwarded = true
	}
	s.Marriages[suit] = LedgerEntry{Marriage: m, Player: p}
}

func (s *MatchState) playCard(p PlayerID, card Card) {
	s.PlayerStates[p].Hand.Remove(card)
	if s.IsLeading() {
		s.LeadingCard = card
		s.ActivePlayer = s.Opponent(p)
		return
	}
	s.FollowingCard = card
	s.resolveTrick()
}

// FollowerWins reports whether the second card of a trick takes it: a higher
// card of the led suit, or a trump over a non-trump lead. The leader wins
// everything else.
func FollowerWins(leading, following Card, trump Suit) bool {
	if following.Suit == leading.Suit {
		return following.Rank > leading.Rank
	}
	return following.Suit == trump
}

func (s *MatchState) resolveTrick() {
	leading, following := s.LeadingCard, s.FollowingCard
	winner := s.LeadingPlayer
	if FollowerWins(leading, following, s.TrumpSuit()) {
		winner = s.Opponent(winner)
	}
	loser := s.Opponent(winner)

	ws := s.PlayerStates[winner]
	ws.RoundPoints += leading.Rank.Points() + following.Rank.Points() + s.flushMarriagePoints(winner)
	ws.CardsWon = append(ws.CardsWon, leading, following)

	s.HandWinner = winner
	s.LeadingCard = NoCard
	s.FollowingCard = NoCard
	if !s.DeckClosed {
		s.draw(winner, 1)
		s.draw(loser, 1)
	}
	s.LeadingPlayer = winner
	s.ActivePlayer = winner

	s.checkRoundEnd(winner, loser)
}

// flushMarriagePoints marks p's pending marriages as awarded and returns their points.
func (s *MatchState) flushMarriagePoints(p PlayerID) int {
	points := 0
	for suit, e := range s.Marriages {
		if e.Player != p || e.Marriage.PointsAwarded {
			continue
		}
		e.Marriage.PointsAwarded = true
		points += e.Marriage.Points
		s.Marriages[suit] = e
	}
	return points
}

func (s *MatchState) checkRoundEnd(winner, loser PlayerID) {
	// The loser can only be over the limit from before this trick, so they
	// got there first.
	for _, p := range [2]PlayerID{loser, winner} {
		if s.PlayerStates[p].RoundPoints >= s.RoundPointLimit {
			s.winRound(p, s.limitMatchPoints(p))
			return
		}
	}

	if len(s.PlayerStates[winner].Hand) > 0 || len(s.PlayerStates[loser].Hand) > 0 {
		return
	}
	if !s.ClosedByPlayer() {
		s.winRound(winner, 1)
		return
	}
	// The closer failed to reach the limit in time.
	closer := s.DeckCloser
	nonCloser := s.Opponent(closer)
	points := s.PlayerStates[nonCloser].MatchPointsOnOffer
	if s.PlayerStates[closer].RoundPoints == 0 {
		points = 3
	}
	s.winRound(nonCloser, points)
}

// limitMatchPoints returns what p earns for reaching the round point limit.
func (s *MatchState) limitMatchPoints(p PlayerID) int {
	if s.ClosedByPlayer() {
		return s.PlayerStates[p].MatchPointsOnOffer
	}
	return MatchPointsFor(s.PlayerStates[s.Opponent(p)].RoundPoints)
}

// MatchPointsFor is the standard schedule against the loser's round points.
func MatchPointsFor(loserRoundPoints int) int {
	switch {
	case loserRoundPoints == 0:
		return 3
	case loserRoundPoints < 33:
		return 2
	default:
		return 1
	}
}

func (s *MatchState) winRound(p PlayerID, matchPoints int) {
	s.RoundWinner = p
	s.RoundWinnerMatchPoints = matchPoints
	ps := s.PlayerStates[p]
	ps.MatchPoints += matchPoints
	s.PlayerWith1stDeal = s.Opponent(s.PlayerWith1stDeal)
	if ps.MatchPoints >= s.MatchPointLimit {
		s.MatchWinner = p
	}
}
