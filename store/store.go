package store

import (
	"context"
	"errors"

	"schnapsen/game"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("snapshot not found")

// Store persists match snapshots so an interrupted round can be resumed.
type Store interface {
	Save(ctx context.Context, id uuid.UUID, state *game.MatchState) error
	Load(ctx context.Context, id uuid.UUID) (*game.MatchState, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
