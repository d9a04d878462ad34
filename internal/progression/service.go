package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MindQuest_Go/internal/concurrency"
	"github.com/osse101/MindQuest_Go/internal/crystal"
	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/economy"
	"github.com/osse101/MindQuest_Go/internal/event"
	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/metrics"
	"github.com/osse101/MindQuest_Go/internal/repository"
	"github.com/osse101/MindQuest_Go/internal/resonance"
)

// Service defines the progression system business logic
type Service interface {
	// State lifecycle
	CreateState(ctx context.Context, userID string) (*domain.ProgressionState, error)
	GetState(ctx context.Context, userID string) (*domain.ProgressionState, error)
	ListUserIDs(ctx context.Context) ([]string, error)

	// Mutations (serialized per user, retried on version conflicts)
	RecordActivity(ctx context.Context, userID string, activity domain.ActivityDescriptor) (*ActivityResult, error)
	AwardCompanionXP(ctx context.Context, userID string, amount int64) (*ActivityResult, error)
	CaptureSnapshot(ctx context.Context, userID string, totalCurrency int64, day domain.DailyActivity) (*SnapshotResult, error)
	Rebalance(ctx context.Context, userID string) (*SnapshotResult, error)

	// Reporting
	ResonanceStatistics(ctx context.Context, userID string) (*resonance.Statistics, error)
	ResonanceForecast(ctx context.Context, userID string, days int) ([]resonance.DailyProbability, error)
	BalanceReport(ctx context.Context, userID string) (*economy.BalanceReport, error)
}

// Config tunes the service around the engine
type Config struct {
	MaxSaveAttempts int
	RetentionDays   int
	CacheSize       int
	CacheTTL        time.Duration
}

// DefaultConfig returns the standard service tuning
func DefaultConfig() Config {
	return Config{
		MaxSaveAttempts: DefaultMaxSaveAttempts,
		RetentionDays:   DefaultRetentionDays,
		CacheSize:       DefaultCacheSize,
		CacheTTL:        DefaultCacheTTL,
	}
}

type service struct {
	repo   repository.Progression
	engine *Engine
	bus    event.Bus
	locks  *concurrency.LockManager
	cache  *stateCache
	cfg    Config
	now    func() time.Time
}

// NewService creates a new progression service
func NewService(repo repository.Progression, engine *Engine, bus event.Bus, cfg Config) Service {
	if cfg.MaxSaveAttempts < 1 {
		cfg.MaxSaveAttempts = DefaultMaxSaveAttempts
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:   repo,
		engine: engine,
		bus:    bus,
		locks:  concurrency.NewLockManager(),
		cache:  newStateCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateState onboards a user at level 1 with every crystal at 0
func (s *service) CreateState(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	state := domain.NewProgressionState(userID, s.now())
	if err := s.repo.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create progression state: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgStateCreated, "user_id", userID)
	return state.Clone(), nil
}

// GetState returns the stored state, served from cache when possible
func (s *service) GetState(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if state, ok := s.cache.Get(userID); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "user_id", userID)
		return state, nil
	}

	// Misses load under the user's lock so a read can never race a save
	// and put the older row back into the cache.
	unlock := s.locks.Lock(userID)
	defer unlock()
	if state, ok := s.cache.Get(userID); ok {
		return state, nil
	}

	state, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progression state: %w", err)
	}
	s.cache.Set(state)
	return state, nil
}

// ListUserIDs returns every user with a stored state
func (s *service) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list progression users: %w", err)
	}
	return ids, nil
}

// RecordActivity awards one activity and persists the result
func (s *service) RecordActivity(ctx context.Context, userID string, activity domain.ActivityDescriptor) (*ActivityResult, error) {
	var result *ActivityResult
	_, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) (*domain.ProgressionState, error) {
		r, err := s.engine.ProcessActivity(ctx, state, activity, now)
		if err != nil {
			return nil, err
		}
		result = r
		return r.State, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ActivitiesProcessed.WithLabelValues(string(activity.Kind)).Inc()
	metrics.XPAwarded.Add(float64(result.XPAwarded + result.BonusXP))
	logger.FromContext(ctx).Info(LogMsgActivityRecorded,
		"user_id", userID, "kind", activity.Kind, "xp", result.XPAwarded, "level", result.State.PlayerLevel)

	s.publishActivity(ctx, userID, result)
	return result, nil
}

// AwardCompanionXP grows the companion and persists the result
func (s *service) AwardCompanionXP(ctx context.Context, userID string, amount int64) (*ActivityResult, error) {
	var result *ActivityResult
	_, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) (*domain.ProgressionState, error) {
		r, err := s.engine.AwardCompanionXP(ctx, state, amount, now)
		if err != nil {
			return nil, err
		}
		result = r
		return r.State, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.XPAwarded.Add(float64(result.BonusXP))
	logger.FromContext(ctx).Info(LogMsgCompanionXPAwarded,
		"user_id", userID, "amount", amount, "companion_level", result.State.CompanionLevel)

	s.publishActivity(ctx, userID, result)
	return result, nil
}

// CaptureSnapshot stores today's economy reading and the recomputed multipliers
func (s *service) CaptureSnapshot(ctx context.Context, userID string, totalCurrency int64, day domain.DailyActivity) (*SnapshotResult, error) {
	var result *SnapshotResult
	_, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) (*domain.ProgressionState, error) {
		r, err := s.engine.CaptureSnapshot(ctx, state, totalCurrency, day, now)
		if err != nil {
			return nil, err
		}
		result = r
		return r.State, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotCaptured,
		"user_id", userID, "tier", result.Snapshot.Tier, "balance_score", result.Snapshot.BalanceScore)

	s.publish(ctx, event.NewSnapshotCapturedEvent(*result.Snapshot))
	if result.Changed {
		s.publish(ctx, event.NewMultipliersAdjustedEvent(userID, result.Multipliers, result.Adjustments, result.Snapshot.CapturedAt))
	}
	return result, nil
}

// Rebalance prunes history and recomputes the reward multipliers from stored snapshots
func (s *service) Rebalance(ctx context.Context, userID string) (*SnapshotResult, error) {
	var result *SnapshotResult
	_, err := s.mutate(ctx, userID, func(state *domain.ProgressionState, now time.Time) (*domain.ProgressionState, error) {
		PruneRetention(state, now, s.cfg.RetentionDays)
		r, err := s.engine.Rebalance(ctx, state, now)
		if err != nil {
			return nil, err
		}
		result = r
		return r.State, nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRebalanced,
		"user_id", userID, "adjustments", len(result.Adjustments), "changed", result.Changed)

	if result.Changed {
		s.publish(ctx, event.NewMultipliersAdjustedEvent(userID, result.Multipliers, result.Adjustments, result.State.UpdatedAt))
	}
	return result, nil
}

// ResonanceStatistics aggregates the user's retained resonance history
func (s *service) ResonanceStatistics(ctx context.Context, userID string) (*resonance.Statistics, error) {
	state, err := s.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := resonance.ComputeStatistics(state.ResonanceHistory)
	return &stats, nil
}

// ResonanceForecast projects the daily resonance probability for the user's current levels
func (s *service) ResonanceForecast(ctx context.Context, userID string, days int) ([]resonance.DailyProbability, error) {
	state, err := s.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.Resonance().Forecast(state.PlayerLevel, state.CompanionLevel, days)
}

// BalanceReport scores the user's retained snapshots
func (s *service) BalanceReport(ctx context.Context, userID string) (*economy.BalanceReport, error) {
	state, err := s.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Economy().Report(state.EconomicSnapshots, economy.ProgressSamples(state.EconomicSnapshots))
	return &report, nil
}

// mutate runs load, compute and save for one user while holding the user's lock.
// A version conflict means another process wrote first: the state is reloaded
// and fn runs again on the fresh copy, up to MaxSaveAttempts times.
func (s *service) mutate(ctx context.Context, userID string, fn func(*domain.ProgressionState, time.Time) (*domain.ProgressionState, error)) (*domain.ProgressionState, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(userID)
	defer unlock()

	for attempt := 1; attempt <= s.cfg.MaxSaveAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state, err := s.repo.Load(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load progression state: %w", err)
		}

		now := s.now()
		next, err := fn(state, now)
		if err != nil {
			return nil, err
		}
		PruneRetention(next, now, s.cfg.RetentionDays)

		err = s.repo.Save(ctx, next)
		if err == nil {
			s.cache.Set(next)
			return next, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("failed to save progression state: %w", err)
		}

		metrics.SaveConflicts.Inc()
		log.Warn(LogMsgSaveConflict, "attempt", attempt)
	}

	s.cache.Invalidate(userID)
	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrConflict, s.cfg.MaxSaveAttempts)
}

// publishActivity emits one event per visible change in an activity result
func (s *service) publishActivity(ctx context.Context, userID string, result *ActivityResult) {
	now := result.State.UpdatedAt

	if result.PlayerLevel != nil {
		s.publish(ctx, event.NewLevelUpEvent(userID, result.PlayerLevel.Old, result.PlayerLevel.New,
			result.State.TotalXP, result.PlayerLevel.Rewards, now))
	}
	if result.CompanionLevel != nil {
		s.publish(ctx, event.NewCompanionLevelUpEvent(userID, result.CompanionLevel.Old, result.CompanionLevel.New,
			result.State.CompanionXP, result.CompanionLevel.Personality, now))
	}
	if result.Growth != nil {
		for _, m := range result.Growth.Milestones {
			s.publish(ctx, event.NewMilestoneReachedEvent(userID, result.Growth.Attribute, m, string(result.Growth.Event), now))
		}
	}
	for _, hit := range result.BonusMilestones {
		s.publish(ctx, event.NewMilestoneReachedEvent(userID, hit.Attribute, hit.Milestone, crystal.SourceResonanceBonus, now))
	}
	if result.Resonance != nil {
		s.publish(ctx, event.NewResonanceFiredEvent(*result.Resonance))
	}
	for _, syn := range result.Synergies {
		s.publish(ctx, event.NewSynergyUnlockedEvent(userID, syn.ID, syn.Name, syn.Effect, syn.StoryUnlock, now))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
