package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

func TestReport_NoData(t *testing.T) {
	c := newTestController(t)
	report := c.Report(nil, nil)

	assert.Equal(t, StatusNoData, report.Status)
	assert.Zero(t, report.OverallScore)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Recommendations)
}

func TestReport_Excellent(t *testing.T) {
	c := newTestController(t)
	progress := []ProgressSample{
		{DailyXP: 300, HasXP: true, TaskCompletionRate: 0.8, HasTasks: true, BattleWinRate: 0.7, HasBattles: true},
	}

	report := c.Report(snapshotsWithIncome(500), progress)

	assert.Equal(t, StatusExcellent, report.Status)
	assert.InDelta(t, 1.0, report.OverallScore, 1e-9)
	require.Len(t, report.Categories, 3)
	assert.Len(t, report.Strengths, 3)
	assert.Empty(t, report.CriticalIssues)
	assert.Equal(t, []string{recommendationBalanced}, report.Recommendations)
	assert.Empty(t, report.Adjustments)
}

func TestReport_CriticalEconomy(t *testing.T) {
	c := newTestController(t)

	report := c.Report(snapshotsWithIncome(100, 100), nil)

	require.Len(t, report.Categories, 1)
	assert.InDelta(t, 0.25, report.Categories[CategoryEconomy].Score, 1e-9)
	assert.Equal(t, 2, report.Categories[CategoryEconomy].Samples)
	assert.Equal(t, StatusCritical, report.Status)
	require.Len(t, report.CriticalIssues, 1)
	assert.Contains(t, report.CriticalIssues[0], CategoryEconomy)
	assert.Equal(t, []string{recommendations[domain.MetricCoinInflation][0]}, report.Recommendations)
	require.Len(t, report.Adjustments, 1)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusExcellent, statusFor(0.8))
	assert.Equal(t, StatusGood, statusFor(0.79))
	assert.Equal(t, StatusGood, statusFor(0.6))
	assert.Equal(t, StatusNeedsImprovement, statusFor(0.4))
	assert.Equal(t, StatusCritical, statusFor(0.39))
}

func TestProgressionVelocity(t *testing.T) {
	assert.Equal(t, DefaultVelocity, ProgressionVelocity(nil, VelocityPoint{Level: 3, TotalXP: 500}))

	prev := &VelocityPoint{Level: 2, TotalXP: 200}
	assert.InDelta(t, 1*0.6+0.5*0.4, ProgressionVelocity(prev, VelocityPoint{Level: 3, TotalXP: 300}), 1e-9)

	zero := &VelocityPoint{Level: 1, TotalXP: 0}
	assert.InDelta(t, 50*0.4, ProgressionVelocity(zero, VelocityPoint{Level: 1, TotalXP: 50}), 1e-9)
}
