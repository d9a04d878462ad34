package crystal

import "github.com/osse101/MindQuest_Go/internal/domain"

// Value and growth bounds
const (
	MinValue = 0
	MaxValue = 100

	MinGrowthAmount = 1
	MaxGrowthAmount = 20

	MinGrowthRate     = 0.5
	MaxGrowthRate     = 2.0
	DefaultGrowthRate = 1.0
)

// Milestones are the crystal values that unlock rewards when crossed
var Milestones = []int{25, 50, 75, 100}

// ResonanceThresholds buckets the sum of all crystal values into resonance levels 0..8
var ResonanceThresholds = []int{0, 200, 500, 1000, 1800, 2800, 4000, 5500, 7200}

// Harmony bonus shape: 1 + HarmonyMaxBonus * max(0, (HarmonyStdDevPivot - stddev) / HarmonyStdDevPivot)
const (
	HarmonyMaxBonus    = 0.5
	HarmonyStdDevPivot = 50.0
)

// Growth tiers used for growth record messaging
const (
	GrowthTierLow    = "low"
	GrowthTierMedium = "medium"
	GrowthTierHigh   = "high"

	growthTierLowMax    = 3
	growthTierMediumMax = 7
)

// SourceResonanceBonus marks growth records created by resonance bonuses
const SourceResonanceBonus = "resonance_bonus"

// Integrity issue kinds
const (
	IssueMissingAttribute  = "missing_attribute"
	IssueValueOutOfRange   = "value_out_of_range"
	IssueGrowthRateInvalid = "growth_rate_invalid"
)

// baseGrowth is the per-event growth before multipliers
var baseGrowth = map[domain.GrowthEvent]float64{
	domain.GrowthEventTaskCompletion:    5,
	domain.GrowthEventStoryChoice:       3,
	domain.GrowthEventMoodImprovement:   4,
	domain.GrowthEventReflectionEntry:   6,
	domain.GrowthEventSocialInteraction: 4,
	domain.GrowthEventCreativeActivity:  5,
	domain.GrowthEventChallengeOvercome: 8,
	domain.GrowthEventWisdomGained:      7,
}

// attributeEventMultiplier lists the boosted pairs; every other pair is 1.0
var attributeEventMultiplier = map[domain.Attribute]map[domain.GrowthEvent]float64{
	domain.AttributeSelfDiscipline: {
		domain.GrowthEventTaskCompletion:    1.5,
		domain.GrowthEventChallengeOvercome: 1.3,
		domain.GrowthEventReflectionEntry:   1.2,
	},
	domain.AttributeEmpathy: {
		domain.GrowthEventSocialInteraction: 1.5,
		domain.GrowthEventStoryChoice:       1.3,
		domain.GrowthEventMoodImprovement:   1.2,
	},
	domain.AttributeResilience: {
		domain.GrowthEventChallengeOvercome: 1.5,
		domain.GrowthEventMoodImprovement:   1.3,
		domain.GrowthEventTaskCompletion:    1.2,
	},
	domain.AttributeCuriosity: {
		domain.GrowthEventStoryChoice:      1.5,
		domain.GrowthEventCreativeActivity: 1.3,
		domain.GrowthEventWisdomGained:     1.2,
	},
	domain.AttributeCommunication: {
		domain.GrowthEventSocialInteraction: 1.5,
		domain.GrowthEventReflectionEntry:   1.3,
		domain.GrowthEventStoryChoice:       1.2,
	},
	domain.AttributeCreativity: {
		domain.GrowthEventCreativeActivity:  1.5,
		domain.GrowthEventStoryChoice:       1.3,
		domain.GrowthEventChallengeOvercome: 1.2,
	},
	domain.AttributeCourage: {
		domain.GrowthEventChallengeOvercome: 1.5,
		domain.GrowthEventTaskCompletion:    1.3,
		domain.GrowthEventSocialInteraction: 1.2,
	},
	domain.AttributeWisdom: {
		domain.GrowthEventWisdomGained:      1.5,
		domain.GrowthEventReflectionEntry:   1.3,
		domain.GrowthEventChallengeOvercome: 1.2,
	},
}
