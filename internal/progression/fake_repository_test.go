package progression

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// fakeRepository is an in-memory repository.Progression with version checks.
// conflicts makes the next N saves fail as if another process wrote first.
// afterLoad, when set, runs after a row is read and before Load returns.
type fakeRepository struct {
	mu        sync.Mutex
	states    map[string]*domain.ProgressionState
	conflicts int
	saves     int
	saveErr   error
	afterLoad func(userID string)
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{states: make(map[string]*domain.ProgressionState)}
}

func (f *fakeRepository) Create(_ context.Context, state *domain.ProgressionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.states[state.UserID]; ok {
		return domain.ErrStateExists
	}
	state.Version = 1
	f.states[state.UserID] = state.Clone()
	return nil
}

func (f *fakeRepository) Load(_ context.Context, userID string) (*domain.ProgressionState, error) {
	f.mu.Lock()
	state, ok := f.states[userID]
	if ok {
		state = state.Clone()
	}
	hook := f.afterLoad
	f.mu.Unlock()

	if !ok {
		return nil, domain.ErrStateNotFound
	}
	if hook != nil {
		hook(userID)
	}
	return state, nil
}

func (f *fakeRepository) Save(_ context.Context, state *domain.ProgressionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	stored, ok := f.states[state.UserID]
	if !ok {
		return domain.ErrStateNotFound
	}
	if f.conflicts > 0 {
		f.conflicts--
		stored.Version++
		return domain.ErrConflict
	}
	if stored.Version != state.Version {
		return domain.ErrConflict
	}

	state.Version++
	f.states[state.UserID] = state.Clone()
	f.saves++
	return nil
}

func (f *fakeRepository) ListUserIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.states))
	for id := range f.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeRepository) put(state *domain.ProgressionState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[state.UserID] = state.Clone()
}

func (f *fakeRepository) get(userID string) *domain.ProgressionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[userID].Clone()
}
