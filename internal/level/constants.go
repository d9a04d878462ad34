package level

import "github.com/osse101/MindQuest_Go/internal/domain"

// Level curve
const (
	// MinLevel is the onboarding level
	MinLevel = 1

	// MaxLevel is the hard ceiling on levels accepted as input. Levels above
	// MaxReachableLevel have saturated thresholds and are never derived from XP,
	// so ForXP returns at most MaxReachableLevel.
	MaxLevel = 100

	// XPUnit scales the doubling curve: threshold(L) = (2^(L-1) - 1) * XPUnit
	XPUnit = 100

	// MaxReachableLevel is the highest level whose threshold fits in an int64.
	// Thresholds above it saturate at math.MaxInt64.
	MaxReachableLevel = 57
)

// Level-up rewards
const (
	AchievementInterval   = 5
	FeatureUnlockInterval = 10

	RewardAchievementFormat   = "achievement_level_%d"
	RewardFeatureUnlockFormat = "feature_unlock_level_%d"
)

// Personality is the companion's demeanour at a given level
type Personality string

const (
	PersonalityCheerful   Personality = "cheerful"
	PersonalityEnergetic  Personality = "energetic"
	PersonalityCalm       Personality = "calm"
	PersonalitySupportive Personality = "supportive"
	PersonalityWise       Personality = "wise"
)

// Activity XP bounds
const (
	MinDifficulty = 1
	MaxDifficulty = 5

	MinMoodCoefficient = 0.8
	MaxMoodCoefficient = 1.2

	MinAssistMultiplier = 1.0
	MaxAssistMultiplier = 1.3

	MaxEfficiencyBonus = 0.2
)

// difficultyBaseXP maps task difficulty 1..5 to base XP
var difficultyBaseXP = map[int]int64{
	1: 5,
	2: 10,
	3: 15,
	4: 25,
	5: 40,
}

var priorityBonus = map[domain.Priority]float64{
	domain.PriorityLow:    0,
	domain.PriorityMedium: 0.05,
	domain.PriorityHigh:   0.1,
	domain.PriorityUrgent: 0.15,
}
