package domain

import (
	"time"
)

// Attribute is one of the eight crystal growth dimensions
type Attribute string

const (
	AttributeSelfDiscipline Attribute = "self_discipline"
	AttributeEmpathy        Attribute = "empathy"
	AttributeResilience     Attribute = "resilience"
	AttributeCuriosity      Attribute = "curiosity"
	AttributeCommunication  Attribute = "communication"
	AttributeCreativity     Attribute = "creativity"
	AttributeCourage        Attribute = "courage"
	AttributeWisdom         Attribute = "wisdom"
)

var attributes = [...]Attribute{
	AttributeSelfDiscipline,
	AttributeEmpathy,
	AttributeResilience,
	AttributeCuriosity,
	AttributeCommunication,
	AttributeCreativity,
	AttributeCourage,
	AttributeWisdom,
}

// Attributes returns all crystal attributes in canonical order
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes[:])
	return out
}

// Valid reports whether a is one of the eight known attributes
func (a Attribute) Valid() bool {
	for _, known := range attributes {
		if a == known {
			return true
		}
	}
	return false
}

// GrowthEvent is a kind of activity that grows a crystal attribute
type GrowthEvent string

const (
	GrowthEventTaskCompletion    GrowthEvent = "task_completion"
	GrowthEventStoryChoice       GrowthEvent = "story_choice"
	GrowthEventMoodImprovement   GrowthEvent = "mood_improvement"
	GrowthEventReflectionEntry   GrowthEvent = "reflection_entry"
	GrowthEventSocialInteraction GrowthEvent = "social_interaction"
	GrowthEventCreativeActivity  GrowthEvent = "creative_activity"
	GrowthEventChallengeOvercome GrowthEvent = "challenge_overcome"
	GrowthEventWisdomGained      GrowthEvent = "wisdom_gained"
)

var growthEvents = [...]GrowthEvent{
	GrowthEventTaskCompletion,
	GrowthEventStoryChoice,
	GrowthEventMoodImprovement,
	GrowthEventReflectionEntry,
	GrowthEventSocialInteraction,
	GrowthEventCreativeActivity,
	GrowthEventChallengeOvercome,
	GrowthEventWisdomGained,
}

// GrowthEvents returns all growth events in canonical order
func GrowthEvents() []GrowthEvent {
	out := make([]GrowthEvent, len(growthEvents))
	copy(out, growthEvents[:])
	return out
}

// Valid reports whether e is a known growth event
func (e GrowthEvent) Valid() bool {
	for _, known := range growthEvents {
		if e == known {
			return true
		}
	}
	return false
}

// ResonanceType classifies a resonance event between player and companion
type ResonanceType string

const (
	ResonanceLevelSync      ResonanceType = "level_sync"
	ResonanceCrystalHarmony ResonanceType = "crystal_harmony"
	ResonanceEmotionalBond  ResonanceType = "emotional_bond"
	ResonanceWisdomSharing  ResonanceType = "wisdom_sharing"
)

var resonanceTypes = [...]ResonanceType{
	ResonanceLevelSync,
	ResonanceCrystalHarmony,
	ResonanceEmotionalBond,
	ResonanceWisdomSharing,
}

// ResonanceTypes returns all resonance types in canonical order.
// The order is the fallback order used when the preferred type is cooling down.
func ResonanceTypes() []ResonanceType {
	out := make([]ResonanceType, len(resonanceTypes))
	copy(out, resonanceTypes[:])
	return out
}

// Valid reports whether t is a known resonance type
func (t ResonanceType) Valid() bool {
	for _, known := range resonanceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Intensity is the strength tier of a resonance event
type Intensity string

const (
	IntensityWeak     Intensity = "weak"
	IntensityModerate Intensity = "moderate"
	IntensityStrong   Intensity = "strong"
	IntensityIntense  Intensity = "intense"
)

// EconomicTier is a currency-holding band
type EconomicTier string

const (
	TierStarting    EconomicTier = "starting"
	TierStable      EconomicTier = "stable"
	TierComfortable EconomicTier = "comfortable"
	TierWealthy     EconomicTier = "wealthy"
)

// BalanceMetric names a tracked behavioural metric with a target band
type BalanceMetric string

const (
	MetricCoinInflation  BalanceMetric = "coin_inflation"
	MetricXPProgression  BalanceMetric = "xp_progression"
	MetricTaskDifficulty BalanceMetric = "task_difficulty"
	MetricBattleRewards  BalanceMetric = "battle_rewards"
)

// BalanceMetrics returns the tracked metrics in evaluation order
func BalanceMetrics() []BalanceMetric {
	return []BalanceMetric{MetricCoinInflation, MetricXPProgression, MetricTaskDifficulty, MetricBattleRewards}
}

// ActivityKind is the external "activity completed" signal type
type ActivityKind string

const (
	ActivityTaskCompletion    ActivityKind = "task_completion"
	ActivityBattleOutcome     ActivityKind = "battle_outcome"
	ActivityDailyCheckIn      ActivityKind = "daily_checkin"
	ActivityStoryChoice       ActivityKind = "story_choice"
	ActivityMoodLog           ActivityKind = "mood_log"
	ActivityReflection        ActivityKind = "reflection"
	ActivitySocialInteraction ActivityKind = "social_interaction"
	ActivityCreative          ActivityKind = "creative_activity"
	ActivityChallenge         ActivityKind = "challenge_overcome"
	ActivityWisdom            ActivityKind = "wisdom_gained"
)

var activityKinds = [...]ActivityKind{
	ActivityTaskCompletion,
	ActivityBattleOutcome,
	ActivityDailyCheckIn,
	ActivityStoryChoice,
	ActivityMoodLog,
	ActivityReflection,
	ActivitySocialInteraction,
	ActivityCreative,
	ActivityChallenge,
	ActivityWisdom,
}

// ActivityKinds returns every activity kind
func ActivityKinds() []ActivityKind {
	out := make([]ActivityKind, len(activityKinds))
	copy(out, activityKinds[:])
	return out
}

// Valid reports whether k is a known activity kind
func (k ActivityKind) Valid() bool {
	for _, known := range activityKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Priority is the urgency of a completed task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ActivityDescriptor describes one XP-earning action
type ActivityDescriptor struct {
	Kind             ActivityKind `json:"kind"`
	Difficulty       int          `json:"difficulty"`
	MoodCoefficient  float64      `json:"mood_coefficient"`
	AssistMultiplier float64      `json:"assist_multiplier"`
	Priority         Priority     `json:"priority,omitempty"`
	EfficiencyBonus  float64      `json:"efficiency_bonus,omitempty"`
	// BaseXP, when positive, is scaled by Difficulty instead of using the difficulty table
	BaseXP int64 `json:"base_xp,omitempty"`
	// Attribute is the crystal grown by this activity, empty for none
	Attribute   Attribute `json:"attribute,omitempty"`
	CompanionXP int64     `json:"companion_xp,omitempty"`
}

// DailyActivity holds one day of economy counters for a user
type DailyActivity struct {
	CurrencyEarned int64 `json:"currency_earned"`
	CurrencySpent  int64 `json:"currency_spent"`
	XPEarned       int64 `json:"xp_earned"`
	TasksCreated   int   `json:"tasks_created"`
	TasksCompleted int   `json:"tasks_completed"`
	BattlesFought  int   `json:"battles_fought"`
	BattlesWon     int   `json:"battles_won"`
}

// RewardMultipliers are the per-user tuning factors recomputed by the daily rebalance
type RewardMultipliers struct {
	Coin           float64 `json:"coin"`
	XP             float64 `json:"xp"`
	TaskDifficulty float64 `json:"task_difficulty"`
	BattleHP       float64 `json:"battle_hp"`
	BattleReward   float64 `json:"battle_reward"`
}

// DefaultRewardMultipliers returns neutral multipliers
func DefaultRewardMultipliers() RewardMultipliers {
	return RewardMultipliers{
		Coin:           1.0,
		XP:             1.0,
		TaskDifficulty: 1.0,
		BattleHP:       1.0,
		BattleReward:   1.0,
	}
}

// ResonanceEvent is an immutable record of a fired resonance
type ResonanceEvent struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Type           ResonanceType     `json:"type"`
	Intensity      Intensity         `json:"intensity"`
	PlayerLevel    int               `json:"player_level"`
	CompanionLevel int               `json:"companion_level"`
	LevelGap       int               `json:"level_gap"`
	BonusXP        int64             `json:"bonus_xp"`
	CrystalBonuses map[Attribute]int `json:"crystal_bonuses"`
	RewardTokens   []string          `json:"reward_tokens"`
	StoryUnlock    string            `json:"story_unlock,omitempty"`
	Message        string            `json:"message"`
	TriggeredAt    time.Time         `json:"triggered_at"`
}

// EconomicSnapshot is an immutable daily economy reading for a user
type EconomicSnapshot struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	CapturedAt      time.Time    `json:"captured_at"`
	TotalCurrency   int64        `json:"total_currency"`
	Tier            EconomicTier `json:"tier"`
	InflationFactor float64      `json:"inflation_factor"`
	DailyIncome     int64        `json:"daily_income"`
	WeeklyIncome    int64        `json:"weekly_income"`
	DailySpent      int64        `json:"daily_spent"`
	SpendingRate    float64      `json:"spending_rate"`
	BalanceScore    float64      `json:"balance_score"`
	DailyXP         int64        `json:"daily_xp"`
	TasksCreated    int          `json:"tasks_created"`
	TasksCompleted  int          `json:"tasks_completed"`
	BattlesFought   int          `json:"battles_fought"`
	BattlesWon      int          `json:"battles_won"`
}

// BalanceAdjustment is a tuning recommendation for one drifting metric
type BalanceAdjustment struct {
	Metric       BalanceMetric `json:"metric"`
	CurrentValue float64       `json:"current_value"`
	TargetMin    float64       `json:"target_min"`
	TargetMax    float64       `json:"target_max"`
	Optimal      float64       `json:"optimal"`
	Factor       float64       `json:"factor"`
	Samples      int           `json:"samples"`
	Reason       string        `json:"reason"`
}

// CrystalGrowthRecord logs one applied crystal change.
// Applied is the clamped delta actually added to the value.
type CrystalGrowthRecord struct {
	ID         string    `json:"id"`
	Attribute  Attribute `json:"attribute"`
	Source     string    `json:"source"`
	Requested  int       `json:"requested"`
	Applied    int       `json:"applied"`
	OldValue   int       `json:"old_value"`
	NewValue   int       `json:"new_value"`
	Tier       string    `json:"tier"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProgressionState is the per-user aggregate owned by the progression engine
type ProgressionState struct {
	UserID             string                      `json:"user_id"`
	TotalXP            int64                       `json:"total_xp"`
	PlayerLevel        int                         `json:"player_level"`
	CompanionXP        int64                       `json:"companion_xp"`
	CompanionLevel     int                         `json:"companion_level"`
	CrystalValues      map[Attribute]int           `json:"crystal_values"`
	CrystalGrowthRate  map[Attribute]float64       `json:"crystal_growth_rate"`
	LastGrowthEvent    map[Attribute]time.Time     `json:"last_growth_event"`
	ResonanceLastFired map[ResonanceType]time.Time `json:"resonance_last_fired"`
	ResonanceHistory   []ResonanceEvent            `json:"resonance_history"`
	EconomicSnapshots  []EconomicSnapshot          `json:"economic_snapshots"`
	GrowthHistory      []CrystalGrowthRecord       `json:"growth_history"`
	Multipliers        RewardMultipliers           `json:"multipliers"`
	Version            int64                       `json:"version"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// NewProgressionState creates the onboarding state: level 1, no XP, all crystals at 0
func NewProgressionState(userID string, now time.Time) *ProgressionState {
	state := &ProgressionState{
		UserID:             userID,
		PlayerLevel:        1,
		CompanionLevel:     1,
		CrystalValues:      make(map[Attribute]int, len(attributes)),
		CrystalGrowthRate:  make(map[Attribute]float64, len(attributes)),
		LastGrowthEvent:    make(map[Attribute]time.Time),
		ResonanceLastFired: make(map[ResonanceType]time.Time),
		Multipliers:        DefaultRewardMultipliers(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, attr := range attributes {
		state.CrystalValues[attr] = 0
		state.CrystalGrowthRate[attr] = 1.0
	}
	return state
}

// Clone returns a deep copy so engine components never share mutable state
func (s *ProgressionState) Clone() *ProgressionState {
	if s == nil {
		return nil
	}
	out := *s

	out.CrystalValues = make(map[Attribute]int, len(s.CrystalValues))
	for k, v := range s.CrystalValues {
		out.CrystalValues[k] = v
	}
	out.CrystalGrowthRate = make(map[Attribute]float64, len(s.CrystalGrowthRate))
	for k, v := range s.CrystalGrowthRate {
		out.CrystalGrowthRate[k] = v
	}
	out.LastGrowthEvent = make(map[Attribute]time.Time, len(s.LastGrowthEvent))
	for k, v := range s.LastGrowthEvent {
		out.LastGrowthEvent[k] = v
	}
	out.ResonanceLastFired = make(map[ResonanceType]time.Time, len(s.ResonanceLastFired))
	for k, v := range s.ResonanceLastFired {
		out.ResonanceLastFired[k] = v
	}

	out.ResonanceHistory = make([]ResonanceEvent, len(s.ResonanceHistory))
	for i, evt := range s.ResonanceHistory {
		out.ResonanceHistory[i] = evt.clone()
	}
	out.EconomicSnapshots = append([]EconomicSnapshot(nil), s.EconomicSnapshots...)
	out.GrowthHistory = append([]CrystalGrowthRecord(nil), s.GrowthHistory...)

	return &out
}

func (e ResonanceEvent) clone() ResonanceEvent {
	out := e
	if e.CrystalBonuses != nil {
		out.CrystalBonuses = make(map[Attribute]int, len(e.CrystalBonuses))
		for k, v := range e.CrystalBonuses {
			out.CrystalBonuses[k] = v
		}
	}
	out.RewardTokens = append([]string(nil), e.RewardTokens...)
	return out
}

// PruneBefore drops history entries older than cutoff.
// Only persistence implementations call this; the engine never deletes history.
func (s *ProgressionState) PruneBefore(cutoff time.Time) {
	resonance := s.ResonanceHistory[:0]
	for _, evt := range s.ResonanceHistory {
		if !evt.TriggeredAt.Before(cutoff) {
			resonance = append(resonance, evt)
		}
	}
	s.ResonanceHistory = resonance

	snapshots := s.EconomicSnapshots[:0]
	for _, snap := range s.EconomicSnapshots {
		if !snap.CapturedAt.Before(cutoff) {
			snapshots = append(snapshots, snap)
		}
	}
	s.EconomicSnapshots = snapshots

	growth := s.GrowthHistory[:0]
	for _, rec := range s.GrowthHistory {
		if !rec.OccurredAt.Before(cutoff) {
			growth = append(growth, rec)
		}
	}
	s.GrowthHistory = growth
}
