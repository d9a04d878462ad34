package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

func snapshotsWithIncome(incomes ...int64) []domain.EconomicSnapshot {
	out := make([]domain.EconomicSnapshot, 0, len(incomes))
	for i, inc := range incomes {
		out = append(out, domain.EconomicSnapshot{
			UserID:      "user-1",
			CapturedAt:  testNow.AddDate(0, 0, i-len(incomes)),
			DailyIncome: inc,
		})
	}
	return out
}

func TestAnalyzeAndAdjust_LowIncomeWeekRaisesCoins(t *testing.T) {
	c := newTestController(t)
	snapshots := snapshotsWithIncome(100, 200, 150, 120, 180, 160, 140)

	adjustments := c.AnalyzeAndAdjust(snapshots, nil)

	require.Len(t, adjustments, 1)
	adj := adjustments[0]
	assert.Equal(t, domain.MetricCoinInflation, adj.Metric)
	assert.Equal(t, 1.2, adj.Factor)
	assert.InDelta(t, 150.0, adj.CurrentValue, 1e-9)
	assert.Equal(t, 7, adj.Samples)
	assert.Equal(t, 200.0, adj.TargetMin)
	assert.Equal(t, 800.0, adj.TargetMax)
	assert.Contains(t, adj.Reason, "daily income")
}

func TestAnalyzeAndAdjust_Empty(t *testing.T) {
	c := newTestController(t)
	adjustments := c.AnalyzeAndAdjust(nil, []ProgressSample{{DailyXP: 10, HasXP: true}})
	assert.NotNil(t, adjustments)
	assert.Empty(t, adjustments)
}

func TestAnalyzeAndAdjust_InBand(t *testing.T) {
	c := newTestController(t)
	progress := []ProgressSample{
		{DailyXP: 250, HasXP: true, TaskCompletionRate: 0.75, HasTasks: true, BattleWinRate: 0.65, HasBattles: true},
	}
	assert.Empty(t, c.AnalyzeAndAdjust(snapshotsWithIncome(400), progress))
}

func TestAnalyzeAndAdjust_AllMetricsDrift(t *testing.T) {
	c := newTestController(t)
	progress := []ProgressSample{
		{DailyXP: 900, HasXP: true, TaskCompletionRate: 0.2, HasTasks: true, BattleWinRate: 0.95, HasBattles: true},
	}

	adjustments := c.AnalyzeAndAdjust(snapshotsWithIncome(1200), progress)
	require.Len(t, adjustments, 4)

	byMetric := map[domain.BalanceMetric]float64{}
	for _, a := range adjustments {
		byMetric[a.Metric] = a.Factor
	}
	assert.Equal(t, 0.8, byMetric[domain.MetricCoinInflation])
	assert.Equal(t, 0.85, byMetric[domain.MetricXPProgression])
	assert.Equal(t, 0.9, byMetric[domain.MetricTaskDifficulty])
	assert.Equal(t, 1.1, byMetric[domain.MetricBattleRewards])
}

func TestAnalyzeAndAdjust_UsesTrailingWindow(t *testing.T) {
	c := newTestController(t)
	// three old low days fall out of the seven day window
	snapshots := snapshotsWithIncome(10, 10, 10, 400, 400, 400, 400, 400, 400, 400)
	assert.Empty(t, c.AnalyzeAndAdjust(snapshots, nil))
}

func TestProgressSamples(t *testing.T) {
	samples := ProgressSamples([]domain.EconomicSnapshot{
		{DailyXP: 120, TasksCreated: 4, TasksCompleted: 3, BattlesFought: 2, BattlesWon: 2},
		{DailyXP: 0, TasksCreated: 0, TasksCompleted: 1},
	})
	require.Len(t, samples, 2)

	assert.True(t, samples[0].HasXP)
	assert.True(t, samples[0].HasTasks)
	assert.InDelta(t, 0.75, samples[0].TaskCompletionRate, 1e-9)
	assert.True(t, samples[0].HasBattles)
	assert.Equal(t, 1.0, samples[0].BattleWinRate)

	assert.True(t, samples[1].HasXP, "a zero XP day is still a reading")
	assert.False(t, samples[1].HasTasks)
	assert.False(t, samples[1].HasBattles)
}

func TestAnalyzeAndAdjust_IdleDaysLowerXPMean(t *testing.T) {
	c := newTestController(t)
	snapshots := snapshotsWithIncome(400, 400, 400, 400, 400, 400, 400)
	snapshots[6].DailyXP = 200

	adjustments := c.AnalyzeAndAdjust(snapshots, ProgressSamples(snapshots))

	require.Len(t, adjustments, 1)
	adj := adjustments[0]
	assert.Equal(t, domain.MetricXPProgression, adj.Metric)
	assert.Equal(t, 1.15, adj.Factor)
	assert.InDelta(t, 200.0/7, adj.CurrentValue, 1e-9)
	assert.Equal(t, 7, adj.Samples)
}

func TestApplyAdjustments(t *testing.T) {
	adjustments := []domain.BalanceAdjustment{
		{Metric: domain.MetricCoinInflation, Factor: 1.2},
		{Metric: domain.MetricBattleRewards, Factor: 0.9},
		{Metric: domain.MetricXPProgression, Factor: 5},
	}

	m := ApplyAdjustments(domain.DefaultRewardMultipliers(), adjustments)
	assert.Equal(t, 1.2, m.Coin)
	assert.Equal(t, 0.9, m.BattleHP)
	assert.InDelta(t, 1.1, m.BattleReward, 1e-9)
	assert.Equal(t, MaxMultiplier, m.XP, "clamped")
	assert.Equal(t, 1.0, m.TaskDifficulty, "untouched")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Window = 0
	assert.ErrorIs(t, cfg.Validate(), domain.ErrValidation)

	cfg = DefaultConfig()
	delete(cfg.Bands, domain.MetricBattleRewards)
	assert.ErrorIs(t, cfg.Validate(), domain.ErrValidation)

	cfg = DefaultConfig()
	b := cfg.Bands[domain.MetricXPProgression]
	b.Optimal = 900
	cfg.Bands[domain.MetricXPProgression] = b
	assert.ErrorIs(t, cfg.Validate(), domain.ErrValidation)

	// DefaultConfig hands out copies
	assert.Equal(t, 250.0, DefaultBands[domain.MetricXPProgression].Optimal)
}
