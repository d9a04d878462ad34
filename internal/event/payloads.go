package event

import (
	"time"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// LevelUpPayloadV1 is the payload for player and companion level-up events
type LevelUpPayloadV1 struct {
	UserID      string   `json:"user_id"`
	OldLevel    int      `json:"old_level"`
	NewLevel    int      `json:"new_level"`
	TotalXP     int64    `json:"total_xp"`
	Rewards     []string `json:"rewards,omitempty"`
	Personality string   `json:"personality,omitempty"` // companion only
	Timestamp   int64    `json:"timestamp"`
}

// MilestoneReachedPayloadV1 is the payload for crystal milestone events
type MilestoneReachedPayloadV1 struct {
	UserID    string           `json:"user_id"`
	Attribute domain.Attribute `json:"attribute"`
	Milestone int              `json:"milestone"`
	Source    string           `json:"source"`
	Timestamp int64            `json:"timestamp"`
}

// SynergyUnlockedPayloadV1 is the payload for synergy activation events
type SynergyUnlockedPayloadV1 struct {
	UserID      string `json:"user_id"`
	SynergyID   string `json:"synergy_id"`
	Name        string `json:"name"`
	Effect      string `json:"effect"`
	StoryUnlock string `json:"story_unlock,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// ResonanceFiredPayloadV1 is the payload for resonance events
type ResonanceFiredPayloadV1 struct {
	UserID       string               `json:"user_id"`
	ResonanceID  string               `json:"resonance_id"`
	Type         domain.ResonanceType `json:"type"`
	Intensity    domain.Intensity     `json:"intensity"`
	LevelGap     int                  `json:"level_gap"`
	BonusXP      int64                `json:"bonus_xp"`
	RewardTokens []string             `json:"reward_tokens,omitempty"`
	StoryUnlock  string               `json:"story_unlock,omitempty"`
	Message      string               `json:"message"`
	Timestamp    int64                `json:"timestamp"`
}

// SnapshotCapturedPayloadV1 is the payload for economic snapshot events
type SnapshotCapturedPayloadV1 struct {
	UserID       string              `json:"user_id"`
	SnapshotID   string              `json:"snapshot_id"`
	Tier         domain.EconomicTier `json:"tier"`
	DailyIncome  int64               `json:"daily_income"`
	BalanceScore float64             `json:"balance_score"`
	Timestamp    int64               `json:"timestamp"`
}

// MultipliersAdjustedPayloadV1 is the payload for reward multiplier changes
type MultipliersAdjustedPayloadV1 struct {
	UserID      string                     `json:"user_id"`
	Multipliers domain.RewardMultipliers   `json:"multipliers"`
	Adjustments []domain.BalanceAdjustment `json:"adjustments"`
	Timestamp   int64                      `json:"timestamp"`
}

// NewLevelUpEvent creates a player level-up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int, totalXP int64, rewards []string, at time.Time) Event {
	return newEvent(ProgressionLevelUp, userID, LevelUpPayloadV1{
		UserID:    userID,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		TotalXP:   totalXP,
		Rewards:   rewards,
		Timestamp: at.Unix(),
	})
}

// NewCompanionLevelUpEvent creates a companion level-up event
func NewCompanionLevelUpEvent(userID string, oldLevel, newLevel int, totalXP int64, personality string, at time.Time) Event {
	return newEvent(ProgressionCompanionLevelUp, userID, LevelUpPayloadV1{
		UserID:      userID,
		OldLevel:    oldLevel,
		NewLevel:    newLevel,
		TotalXP:     totalXP,
		Personality: personality,
		Timestamp:   at.Unix(),
	})
}

// NewMilestoneReachedEvent creates a crystal milestone event
func NewMilestoneReachedEvent(userID string, attr domain.Attribute, milestone int, source string, at time.Time) Event {
	return newEvent(ProgressionMilestoneReached, userID, MilestoneReachedPayloadV1{
		UserID:    userID,
		Attribute: attr,
		Milestone: milestone,
		Source:    source,
		Timestamp: at.Unix(),
	})
}

// NewSynergyUnlockedEvent creates a synergy activation event
func NewSynergyUnlockedEvent(userID, synergyID, name, effect, storyUnlock string, at time.Time) Event {
	return newEvent(ProgressionSynergyUnlocked, userID, SynergyUnlockedPayloadV1{
		UserID:      userID,
		SynergyID:   synergyID,
		Name:        name,
		Effect:      effect,
		StoryUnlock: storyUnlock,
		Timestamp:   at.Unix(),
	})
}

// NewResonanceFiredEvent creates a resonance event from the fired record
func NewResonanceFiredEvent(ev domain.ResonanceEvent) Event {
	return newEvent(ProgressionResonanceFired, ev.UserID, ResonanceFiredPayloadV1{
		UserID:       ev.UserID,
		ResonanceID:  ev.ID,
		Type:         ev.Type,
		Intensity:    ev.Intensity,
		LevelGap:     ev.LevelGap,
		BonusXP:      ev.BonusXP,
		RewardTokens: ev.RewardTokens,
		StoryUnlock:  ev.StoryUnlock,
		Message:      ev.Message,
		Timestamp:    ev.TriggeredAt.Unix(),
	})
}

// NewSnapshotCapturedEvent creates an economic snapshot event
func NewSnapshotCapturedEvent(s domain.EconomicSnapshot) Event {
	return newEvent(EconomySnapshotCaptured, s.UserID, SnapshotCapturedPayloadV1{
		UserID:       s.UserID,
		SnapshotID:   s.ID,
		Tier:         s.Tier,
		DailyIncome:  s.DailyIncome,
		BalanceScore: s.BalanceScore,
		Timestamp:    s.CapturedAt.Unix(),
	})
}

// NewMultipliersAdjustedEvent creates a multiplier change event
func NewMultipliersAdjustedEvent(userID string, m domain.RewardMultipliers, adjustments []domain.BalanceAdjustment, at time.Time) Event {
	return newEvent(EconomyMultipliersAdjusted, userID, MultipliersAdjustedPayloadV1{
		UserID:      userID,
		Multipliers: m,
		Adjustments: adjustments,
		Timestamp:   at.Unix(),
	})
}
