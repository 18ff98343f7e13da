package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"schnapsen/game"
	"schnapsen/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotYourTurn  = errors.New("not your turn")
	ErrRoundOver    = errors.New("round is over")
	ErrRoundPending = errors.New("round is still being played")
	ErrMatchOver    = errors.New("match is over")
)

// Session is a resumable match driven one action at a time, e.g. by a UI.
// The state is saved to the store after every change.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	state     *game.MatchState
	store     store.Store
	rng       *rand.Rand
	observers []game.Observer
}

// NewSession starts a match between a and b, deals the first round and saves
// it. A nil rng uses the global source.
func NewSession(ctx context.Context, st store.Store, a, b game.PlayerID, rng *rand.Rand, observers ...game.Observer) (*Session, error) {
	s := &Session{
		ID:        uuid.New(),
		state:     game.NewMatch(a, b, rng),
		store:     st,
		rng:       rng,
		observers: observers,
	}
	s.state.ResetRound(nil, rng)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	log.Info().Msgf("session %s started, %s leads", s.ID, s.state.ActivePlayer)
	return s, nil
}

// Resume reloads a saved session.
func Resume(ctx context.Context, st store.Store, id uuid.UUID, rng *rand.Rand, observers ...game.Observer) (*Session, error) {
	state, err := st.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resume session %s: %w", id, err)
	}
	log.Info().Msgf("session %s resumed in round %d", id, state.Round)
	return &Session{
		ID:        id,
		state:     state,
		store:     st,
		rng:       rng,
		observers: observers,
	}, nil
}

// State returns a copy of the current state.
func (s *Session) State() *game.MatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Copy()
}

// ValidMoves returns the legal actions of player, who must be the one to act.
func (s *Session) ValidMoves(player game.PlayerID) ([]game.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkTurn(player); err != nil {
		return nil, err
	}
	return s.state.ValidMoves(), nil
}

// Play applies action for player and saves the new state.
func (s *Session) Play(ctx context.Context, player game.PlayerID, action game.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkTurn(player); err != nil {
		return err
	}
	if err := s.state.Apply(action, s.observers...); err != nil {
		return err
	}
	if s.state.RoundOver() {
		log.Info().Msgf("session %s: round %d won by %s for %d match points",
			s.ID, s.state.Round, s.state.RoundWinner, s.state.RoundWinnerMatchPoints)
	}
	if s.state.MatchOver() {
		log.Info().Msgf("session %s: match won by %s", s.ID, s.state.MatchWinner)
	}
	return s.save(ctx)
}

// Advance asks p for the active player's action and plays it.
func (s *Session) Advance(ctx context.Context, p game.Player) error {
	state := s.State()
	legal, err := s.ValidMoves(state.ActivePlayer)
	if err != nil {
		return err
	}
	return s.Play(ctx, state.ActivePlayer, p.SelectAction(state, legal))
}

// NextRound deals the next round once the current one has a winner.
func (s *Session) NextRound(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state.MatchOver():
		return ErrMatchOver
	case !s.state.RoundOver():
		return ErrRoundPending
	}
	s.state.ResetRound(nil, s.rng)
	return s.save(ctx)
}

// Close removes the saved state of a finished match.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.MatchOver() {
		return nil
	}
	return s.store.Delete(ctx, s.ID)
}

func (s *Session) checkTurn(player game.PlayerID) error {
	switch {
	case s.state.MatchOver():
		return ErrMatchOver
	case s.state.RoundOver():
		return ErrRoundOver
	case player != s.state.ActivePlayer:
		return fmt.Errorf("%s: %w", player, ErrNotYourTurn)
	}
	return nil
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ID, s.state); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}
	return nil
}
