package economy

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// TierFor returns the economic tier for a currency balance
func TierFor(totalCurrency int64) domain.EconomicTier {
	switch {
	case totalCurrency >= WealthyTierMin:
		return domain.TierWealthy
	case totalCurrency >= ComfortableTierMin:
		return domain.TierComfortable
	case totalCurrency >= StableTierMin:
		return domain.TierStable
	default:
		return domain.TierStarting
	}
}

// InflationFactor returns the reward inflation factor for a currency balance
func InflationFactor(totalCurrency int64) float64 {
	switch TierFor(totalCurrency) {
	case domain.TierWealthy:
		return InflationWealthy
	case domain.TierComfortable:
		return InflationComfortable
	case domain.TierStable:
		return InflationStable
	default:
		return InflationStarting
	}
}

// CaptureSnapshot computes today's snapshot from the day's counters and the prior snapshots.
// history must be ordered oldest first and must not include today.
func (c *Controller) CaptureSnapshot(userID string, totalCurrency int64, day domain.DailyActivity, history []domain.EconomicSnapshot, now time.Time) (*domain.EconomicSnapshot, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if err := validateCounters(totalCurrency, day); err != nil {
		return nil, err
	}

	weekly := WeeklyIncome(day.CurrencyEarned, history)
	spending := SpendingRate(day.CurrencySpent, day.CurrencyEarned)

	return &domain.EconomicSnapshot{
		ID:              c.newID(),
		UserID:          userID,
		CapturedAt:      now,
		TotalCurrency:   totalCurrency,
		Tier:            TierFor(totalCurrency),
		InflationFactor: InflationFactor(totalCurrency),
		DailyIncome:     day.CurrencyEarned,
		WeeklyIncome:    weekly,
		DailySpent:      day.CurrencySpent,
		SpendingRate:    spending,
		BalanceScore:    BalanceScore(totalCurrency, day.CurrencyEarned, weekly, spending),
		DailyXP:         day.XPEarned,
		TasksCreated:    day.TasksCreated,
		TasksCompleted:  day.TasksCompleted,
		BattlesFought:   day.BattlesFought,
		BattlesWon:      day.BattlesWon,
	}, nil
}

// WeeklyIncome sums the last six prior daily incomes with today's.
// With fewer than six prior days it extrapolates today's income over the week.
func WeeklyIncome(daily int64, history []domain.EconomicSnapshot) int64 {
	prior := WeeklyWindowDays - 1
	if len(history) < prior {
		return daily * WeeklyWindowDays
	}
	total := daily
	for _, s := range history[len(history)-prior:] {
		total += s.DailyIncome
	}
	return total
}

// SpendingRate is spent/earned capped at 1, or 0 when nothing was earned
func SpendingRate(spent, earned int64) float64 {
	if earned <= 0 {
		return 0
	}
	return math.Min(1, float64(spent)/float64(earned))
}

// BalanceScore weighs holdings, income and spending habits into [0,1]
func BalanceScore(totalCurrency, daily, weekly int64, spendingRate float64) float64 {
	score := balanceWeightCurrency*math.Min(1, float64(totalCurrency)/balanceCurrencyTarget) +
		balanceWeightDaily*math.Min(1, float64(daily)/balanceDailyIncomeTarget) +
		balanceWeightWeekly*math.Min(1, float64(weekly)/balanceWeeklyIncomeTarget) +
		balanceWeightSpending*(1-math.Abs(spendingRate-balanceOptimalSpendRate))
	return clamp(score, 0, 1)
}

// AdjustedReward scales a base reward by the snapshot's inflation and the coin multiplier
func AdjustedReward(base int64, snapshot *domain.EconomicSnapshot, m domain.RewardMultipliers) int64 {
	inflation := InflationStarting
	if snapshot != nil {
		inflation = snapshot.InflationFactor
	}
	return int64(math.Floor(float64(base)*inflation*m.Coin + floorEpsilon))
}

const floorEpsilon = 1e-9

func validateCounters(totalCurrency int64, day domain.DailyActivity) error {
	checks := []struct {
		field string
		value int64
	}{
		{"total_currency", totalCurrency},
		{"currency_earned", day.CurrencyEarned},
		{"currency_spent", day.CurrencySpent},
		{"xp_earned", day.XPEarned},
		{"tasks_created", int64(day.TasksCreated)},
		{"tasks_completed", int64(day.TasksCompleted)},
		{"battles_fought", int64(day.BattlesFought)},
		{"battles_won", int64(day.BattlesWon)},
	}
	for _, c := range checks {
		if c.value < 0 {
			return domain.NewValidationError(domain.ErrInvalidCurrency, c.field, c.value, "must not be negative")
		}
	}
	if day.BattlesWon > day.BattlesFought {
		return domain.NewValidationError(domain.ErrInvalidCurrency, "battles_won", day.BattlesWon,
			fmt.Sprintf("must not exceed battles_fought (%d)", day.BattlesFought))
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
