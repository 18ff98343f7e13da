package player

import (
	"math/rand/v2"
	"testing"

	"schnapsen/game"

	"github.com/stretchr/testify/require"
)

func newRound(seed uint64) *game.MatchState {
	rng := rand.New(rand.NewPCG(seed, seed))
	state := game.NewMatch("a", "b", rng)
	state.ResetRound(nil, rng)
	return state
}

func TestRandom(t *testing.T) {
	state := newRound(1)
	legal := state.ValidMoves()
	p := NewRandom(rand.New(rand.NewPCG(1, 1)))

	seen := map[game.Action]bool{}
	for i := 0; i < 200; i++ {
		a := p.SelectAction(state, legal)
		require.Contains(t, legal, a)
		seen[a] = true
	}
	require.Greater(t, len(seen), 1)
}

func card(s game.Suit, r game.Rank) game.Card { return game.Card{Suit: s, Rank: r} }

func TestGreedy(t *testing.T) {
	swap := game.Action{Kind: game.SwapTrump}
	closeDeck := game.Action{Kind: game.CloseDeck}
	marry := game.Marry(card(game.Club, game.Queen))
	jack := game.Play(card(game.Heart, game.Jack))
	ace := game.Play(card(game.Spade, game.Ace))
	ten := game.Play(card(game.Diamond, game.Ten))

	tests := []struct {
		name    string
		points  int
		leading bool
		legal   []game.Action
		want    game.Action
	}{
		{"swaps trump first", 60, true, []game.Action{closeDeck, marry, ace, swap}, swap},
		{"closes with enough points", 51, true, []game.Action{ace, marry, closeDeck}, closeDeck},
		{"keeps the deck open otherwise", 50, true, []game.Action{ace, marry, closeDeck}, marry},
		{"leads the highest card", 0, true, []game.Action{closeDeck, jack, ace, ten}, ace},
		{"follows with the lowest card", 0, false, []game.Action{ten, ace, jack}, jack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newRound(2)
			state.Player(state.ActivePlayer).RoundPoints = tt.points
			if !tt.leading {
				state.LeadingCard = card(game.Club, game.Ace)
			}
			require.Equal(t, tt.want, Greedy{}.SelectAction(state, tt.legal))
		})
	}
}

func TestGreedyPlaysLegalMoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	state := game.NewMatch("a", "b", rng)
	for !state.MatchOver() {
		state.ResetRound(nil, rng)
		for !state.RoundOver() {
			legal := state.ValidMoves()
			require.NoError(t, state.Apply(Greedy{}.SelectAction(state, legal)))
		}
	}
}
