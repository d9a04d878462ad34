package progression

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/event"
)

func newTestService(t *testing.T) (*service, *fakeRepository, *event.MemoryBus) {
	t.Helper()
	repo := newFakeRepository()
	bus := event.NewMemoryBus()
	svc := NewService(repo, newTestEngine(t), bus, DefaultConfig()).(*service)
	svc.now = func() time.Time { return testNow }
	return svc, repo, bus
}

// countEvents subscribes a counter to every event type
func countEvents(bus *event.MemoryBus) map[event.Type]*atomic.Int32 {
	counts := make(map[event.Type]*atomic.Int32)
	for _, typ := range event.AllTypes() {
		c := &atomic.Int32{}
		counts[typ] = c
		bus.Subscribe(typ, func(context.Context, event.Event) error {
			c.Add(1)
			return nil
		})
	}
	return counts
}

func TestService_CreateAndGet(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, created.PlayerLevel)
	assert.Len(t, created.CrystalValues, 8)

	_, err = svc.CreateState(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrStateExists)

	_, err = svc.CreateState(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)

	got, err := svc.GetState(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	_, err = svc.GetState(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)

	ids, err := svc.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, ids)
}

func TestService_GetStateReturnsCopies(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	first, err := svc.GetState(ctx, "user-1")
	require.NoError(t, err)
	first.CrystalValues[domain.AttributeCourage] = 99

	second, err := svc.GetState(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.CrystalValues[domain.AttributeCourage])
	assert.Equal(t, 1, svc.cache.Len())
}

func TestService_SlowReadDoesNotCacheStaleState(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	paused := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	repo.mu.Lock()
	repo.afterLoad = func(string) {
		once.Do(func() {
			close(paused)
			<-release
		})
	}
	repo.mu.Unlock()

	readDone := make(chan error, 1)
	go func() {
		_, err := svc.GetState(ctx, "user-1")
		readDone <- err
	}()
	<-paused

	writeDone := make(chan error, 1)
	go func() {
		_, err := svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 500))
		writeDone <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)
	require.NoError(t, <-readDone)
	require.NoError(t, <-writeDone)

	assert.Equal(t, int64(500), repo.get("user-1").TotalXP)
	got, err := svc.GetState(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.TotalXP)
	assert.Equal(t, int64(2), got.Version)
}

func TestService_RecordActivity(t *testing.T) {
	svc, repo, bus := newTestService(t)
	counts := countEvents(bus)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	// warm the cache so the write has to invalidate it
	_, err = svc.GetState(ctx, "user-1")
	require.NoError(t, err)

	activity := neutralActivity(domain.ActivityReflection, 500)
	activity.Attribute = domain.AttributeWisdom
	result, err := svc.RecordActivity(ctx, "user-1", activity)
	require.NoError(t, err)

	assert.Equal(t, 3, result.State.PlayerLevel)
	stored := repo.get("user-1")
	assert.Equal(t, int64(500), stored.TotalXP)
	assert.Equal(t, int64(2), stored.Version)

	got, err := svc.GetState(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.TotalXP, "cache was invalidated by the write")

	assert.Equal(t, int32(1), counts[event.ProgressionLevelUp].Load())
	assert.Zero(t, counts[event.ProgressionResonanceFired].Load())
}

func TestService_RecordActivity_ValidationDoesNotSave(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.RecordActivity(ctx, "user-1", domain.ActivityDescriptor{Kind: domain.ActivityTaskCompletion, Difficulty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidActivity)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Zero(t, repo.saves)

	_, err = svc.RecordActivity(ctx, "missing", neutralActivity(domain.ActivityTaskCompletion, 1))
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestService_RetriesOnConflict(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	repo.conflicts = DefaultMaxSaveAttempts - 1
	result, err := svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.State.TotalXP)
	assert.Equal(t, 1, repo.saves)
}

func TestService_ConflictExhausted(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	repo.conflicts = DefaultMaxSaveAttempts
	_, err = svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 10))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, repo.get("user-1").TotalXP)
}

func TestService_SaveErrorIsWrapped(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	repo.saveErr = domain.ErrDatabaseError
	_, err = svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 10))
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestService_ConcurrentActivitiesLoseNothing(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 10))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored := repo.get("user-1")
	assert.Equal(t, int64(workers*10), stored.TotalXP)
	assert.Equal(t, 3, stored.PlayerLevel)
	assert.Equal(t, int64(workers+1), stored.Version)
}

func TestService_ResonancePublishesEvents(t *testing.T) {
	svc, repo, bus := newTestService(t)
	counts := countEvents(bus)
	ctx := context.Background()
	repo.put(stateAt(t, 10, 5))

	result, err := svc.RecordActivity(ctx, "user-1", neutralActivity(domain.ActivityTaskCompletion, 5))
	require.NoError(t, err)
	require.NotNil(t, result.Resonance)

	assert.Equal(t, int32(1), counts[event.ProgressionResonanceFired].Load())

	stats, err := svc.ResonanceStatistics(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, int64(100), stats.TotalBonusXP)
}

func TestService_CompanionXP(t *testing.T) {
	svc, _, bus := newTestService(t)
	counts := countEvents(bus)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	result, err := svc.AwardCompanionXP(ctx, "user-1", 300)
	require.NoError(t, err)
	assert.Equal(t, 3, result.State.CompanionLevel)
	assert.Equal(t, int32(1), counts[event.ProgressionCompanionLevelUp].Load())

	_, err = svc.AwardCompanionXP(ctx, "user-1", -10)
	assert.ErrorIs(t, err, domain.ErrInvalidXP)
}

func TestService_SnapshotAndRebalance(t *testing.T) {
	svc, repo, bus := newTestService(t)
	counts := countEvents(bus)
	ctx := context.Background()
	_, err := svc.CreateState(ctx, "user-1")
	require.NoError(t, err)

	result, err := svc.CaptureSnapshot(ctx, "user-1", 500, domain.DailyActivity{CurrencyEarned: 100, CurrencySpent: 50})
	require.NoError(t, err)
	assert.Equal(t, domain.TierStarting, result.Snapshot.Tier)
	assert.Equal(t, 1.2, result.Multipliers.Coin)
	assert.Equal(t, int32(1), counts[event.EconomySnapshotCaptured].Load())
	assert.Equal(t, int32(1), counts[event.EconomyMultipliersAdjusted].Load())
	assert.Len(t, repo.get("user-1").EconomicSnapshots, 1)

	// unchanged multipliers publish nothing new
	rebalanced, err := svc.Rebalance(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, rebalanced.Changed)
	assert.Equal(t, int32(1), counts[event.EconomyMultipliersAdjusted].Load())

	report, err := svc.BalanceReport(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Categories["economy"].Samples)
}

func TestService_RebalancePrunesOldHistory(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	state := domain.NewProgressionState("user-1", testNow)
	state.EconomicSnapshots = []domain.EconomicSnapshot{
		{ID: "stale", UserID: "user-1", CapturedAt: testNow.AddDate(0, 0, -40), DailyIncome: 10},
		{ID: "fresh", UserID: "user-1", CapturedAt: testNow.AddDate(0, 0, -1), DailyIncome: 400, DailyXP: 250},
	}
	repo.put(state)

	result, err := svc.Rebalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, result.Adjustments, "only the in-band fresh snapshot remains")

	stored := repo.get("user-1")
	require.Len(t, stored.EconomicSnapshots, 1)
	assert.Equal(t, "fresh", stored.EconomicSnapshots[0].ID)
}

func TestService_Forecast(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	repo.put(stateAt(t, 10, 5))

	forecast, err := svc.ResonanceForecast(ctx, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, forecast, 3)
	assert.InDelta(t, 0.27, forecast[0].Probability, 1e-9)

	_, err = svc.ResonanceForecast(ctx, "user-1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidForecastDays)
}
