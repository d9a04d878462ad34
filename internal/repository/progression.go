package repository

import (
	"context"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Progression defines the data access interface for per-user progression state.
//
// Load returns domain.ErrStateNotFound when the user has no state.
// Save is a compare-and-swap on state.Version: a stale version returns
// domain.ErrConflict and leaves the stored row untouched. On success the
// stored version is incremented and written back to state.Version.
type Progression interface {
	Create(ctx context.Context, state *domain.ProgressionState) error
	Load(ctx context.Context, userID string) (*domain.ProgressionState, error)
	Save(ctx context.Context, state *domain.ProgressionState) error
	ListUserIDs(ctx context.Context) ([]string, error)
}
