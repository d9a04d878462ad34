package economy

import "github.com/osse101/MindQuest_Go/internal/domain"

// ==================== Tiers ====================

// Currency thresholds where each tier starts
const (
	StableTierMin      = 1000
	ComfortableTierMin = 5000
	WealthyTierMin     = 10000
)

// Inflation factors by tier
const (
	InflationStarting    = 1.0
	InflationStable      = 0.95
	InflationComfortable = 0.9
	InflationWealthy     = 0.8
)

// ==================== Snapshot Scoring ====================

const (
	// WeeklyWindowDays is the number of daily incomes summed into weekly income
	WeeklyWindowDays = 7

	balanceCurrencyTarget     = 10000.0
	balanceDailyIncomeTarget  = 400.0
	balanceWeeklyIncomeTarget = 2800.0
	balanceOptimalSpendRate   = 0.75

	balanceWeightCurrency = 0.3
	balanceWeightDaily    = 0.3
	balanceWeightWeekly   = 0.2
	balanceWeightSpending = 0.2
)

// ==================== Balance Bands ====================

const (
	// DefaultWindow is the number of trailing samples averaged per metric
	DefaultWindow = 7

	// MinMultiplier and MaxMultiplier bound every reward multiplier
	MinMultiplier = 0.5
	MaxMultiplier = 2.0
)

// DefaultBands are the target ranges for each tracked metric
var DefaultBands = map[domain.BalanceMetric]Band{
	domain.MetricCoinInflation:  {Min: 200, Max: 800, Optimal: 400, BelowFactor: 1.2, AboveFactor: 0.8},
	domain.MetricXPProgression:  {Min: 100, Max: 500, Optimal: 250, BelowFactor: 1.15, AboveFactor: 0.85},
	domain.MetricTaskDifficulty: {Min: 0.6, Max: 0.9, Optimal: 0.75, BelowFactor: 0.9, AboveFactor: 1.1},
	domain.MetricBattleRewards:  {Min: 0.5, Max: 0.8, Optimal: 0.65, BelowFactor: 0.9, AboveFactor: 1.1},
}

// ==================== Report ====================

// Report categories
const (
	CategoryEconomy     = "economy"
	CategoryProgression = "progression"
	CategoryEngagement  = "engagement"
)

// Report statuses
const (
	StatusExcellent        = "excellent"
	StatusGood             = "good"
	StatusNeedsImprovement = "needs_improvement"
	StatusCritical         = "critical"
	StatusNoData           = "no_data"
)

const (
	excellentMin        = 0.8
	goodMin             = 0.6
	needsImprovementMin = 0.4

	criticalCategoryMax = 0.4
	strongCategoryMin   = 0.8
)

// ==================== Velocity ====================

const (
	DefaultVelocity     = 1.0
	velocityLevelWeight = 0.6
	velocityXPWeight    = 0.4
)

// ==================== Messages ====================

const (
	reasonBelowFormat = "%s average %.2f below target range %.2f-%.2f"
	reasonAboveFormat = "%s average %.2f above target range %.2f-%.2f"

	issueFormat    = "%s balance is critical (score %.2f)"
	strengthFormat = "%s balance is strong (score %.2f)"

	recommendationBalanced = "Economy and progression are within target ranges"
)

// recommendations maps a metric drifting below or above its band to advice
var recommendations = map[domain.BalanceMetric][2]string{
	domain.MetricCoinInflation: {
		"Offer more coin-earning tasks",
		"Introduce coin sinks to absorb surplus currency",
	},
	domain.MetricXPProgression: {
		"Add quick XP wins to keep progression moving",
		"Slow XP gain to protect long-term pacing",
	},
	domain.MetricTaskDifficulty: {
		"Break tasks into smaller steps",
		"Offer more challenging tasks",
	},
	domain.MetricBattleRewards: {
		"Lower battle difficulty",
		"Raise battle difficulty",
	},
}

// metricLabels are human-readable metric names used in reasons
var metricLabels = map[domain.BalanceMetric]string{
	domain.MetricCoinInflation:  "daily income",
	domain.MetricXPProgression:  "daily XP",
	domain.MetricTaskDifficulty: "task completion rate",
	domain.MetricBattleRewards:  "battle win rate",
}
