package progression

import (
	"time"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// ============================================================================
// Service Defaults
// ============================================================================

const (
	// DefaultMaxSaveAttempts bounds the reload-recompute-save loop on version conflicts
	DefaultMaxSaveAttempts = 5

	// DefaultRetentionDays is the rolling window kept for resonance, snapshot and growth history
	DefaultRetentionDays = 30

	// DefaultCacheSize is the maximum number of cached progression states
	DefaultCacheSize = 1000

	// DefaultCacheTTL is how long a cached progression state stays valid
	DefaultCacheTTL = 5 * time.Minute
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// ============================================================================
// Activity Routing
// ============================================================================

// activityGrowthEvents maps each activity kind to the crystal growth event it produces
var activityGrowthEvents = map[domain.ActivityKind]domain.GrowthEvent{
	domain.ActivityTaskCompletion:    domain.GrowthEventTaskCompletion,
	domain.ActivityBattleOutcome:     domain.GrowthEventChallengeOvercome,
	domain.ActivityDailyCheckIn:      domain.GrowthEventMoodImprovement,
	domain.ActivityStoryChoice:       domain.GrowthEventStoryChoice,
	domain.ActivityMoodLog:           domain.GrowthEventMoodImprovement,
	domain.ActivityReflection:        domain.GrowthEventReflectionEntry,
	domain.ActivitySocialInteraction: domain.GrowthEventSocialInteraction,
	domain.ActivityCreative:          domain.GrowthEventCreativeActivity,
	domain.ActivityChallenge:         domain.GrowthEventChallengeOvercome,
	domain.ActivityWisdom:            domain.GrowthEventWisdomGained,
}

// ============================================================================
// Diagnostics
// ============================================================================

const (
	diagPlayerLevelHealed    = "player level %d did not match total xp %d, recomputed to %d"
	diagCompanionLevelHealed = "companion level %d did not match companion xp %d, recomputed to %d"
	diagCrystalMissing       = "crystal %s was missing and was initialised to 0"
	diagGrowthRateMissing    = "growth rate for %s was missing and was reset to 1.0"
	diagMultipliersReset     = "reward multipliers were unset and were reset to neutral"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgStateHealed        = "Progression state was inconsistent and has been recomputed"
	LogMsgActivityRecorded   = "Activity recorded"
	LogMsgCompanionXPAwarded = "Companion XP awarded"
	LogMsgResonanceFired     = "Resonance event fired"
	LogMsgSnapshotCaptured   = "Economic snapshot captured"
	LogMsgRebalanced         = "Reward multipliers rebalanced"
	LogMsgSaveConflict       = "Progression state changed during update, retrying"
	LogMsgEventPublishFailed = "Failed to publish progression event"
	LogMsgStateCreated       = "Progression state created"
	LogMsgCacheHit           = "Progression state cache hit"
)
