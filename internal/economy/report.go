package economy

import (
	"fmt"
	"math"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// CategoryScore is the score of one report category
type CategoryScore struct {
	Score   float64 `json:"score"`
	Samples int     `json:"samples"`
}

// BalanceReport is a read-only summary of a user's recent balance
type BalanceReport struct {
	OverallScore    float64                          `json:"overall_score"`
	Status          string                           `json:"status"`
	Categories      map[string]CategoryScore         `json:"categories"`
	Averages        map[domain.BalanceMetric]float64 `json:"averages"`
	CriticalIssues  []string                         `json:"critical_issues"`
	Strengths       []string                         `json:"strengths"`
	Recommendations []string                         `json:"recommendations"`
	Adjustments     []domain.BalanceAdjustment       `json:"adjustments"`
}

// VelocityPoint is a level/XP reading used for progression velocity
type VelocityPoint struct {
	Level   int   `json:"level"`
	TotalXP int64 `json:"total_xp"`
}

// categoryMetrics lists the metrics averaged into each category, in report order
var categoryMetrics = []struct {
	name    string
	metrics []domain.BalanceMetric
}{
	{CategoryEconomy, []domain.BalanceMetric{domain.MetricCoinInflation}},
	{CategoryProgression, []domain.BalanceMetric{domain.MetricXPProgression}},
	{CategoryEngagement, []domain.BalanceMetric{domain.MetricTaskDifficulty, domain.MetricBattleRewards}},
}

// Report scores the trailing window of snapshots and progress by category
func (c *Controller) Report(snapshots []domain.EconomicSnapshot, progress []ProgressSample) BalanceReport {
	report := BalanceReport{
		Status:          StatusNoData,
		Categories:      make(map[string]CategoryScore),
		Averages:        make(map[domain.BalanceMetric]float64),
		CriticalIssues:  []string{},
		Strengths:       []string{},
		Recommendations: []string{},
		Adjustments:     c.AnalyzeAndAdjust(snapshots, progress),
	}
	if len(snapshots) == 0 {
		return report
	}

	for _, metric := range domain.BalanceMetrics() {
		values := c.metricSamples(metric, snapshots, progress)
		if len(values) > 0 {
			report.Averages[metric] = mean(values)
		}
	}

	total := 0.0
	for _, cat := range categoryMetrics {
		var scores []float64
		samples := 0
		for _, metric := range cat.metrics {
			avg, ok := report.Averages[metric]
			if !ok {
				continue
			}
			scores = append(scores, math.Min(1, avg/c.cfg.Bands[metric].Optimal))
			samples += len(c.metricSamples(metric, snapshots, progress))
		}
		if len(scores) == 0 {
			continue
		}
		score := mean(scores)
		report.Categories[cat.name] = CategoryScore{Score: score, Samples: samples}
		total += score

		switch {
		case score < criticalCategoryMax:
			report.CriticalIssues = append(report.CriticalIssues, fmt.Sprintf(issueFormat, cat.name, score))
		case score > strongCategoryMin:
			report.Strengths = append(report.Strengths, fmt.Sprintf(strengthFormat, cat.name, score))
		}
	}

	if len(report.Categories) == 0 {
		return report
	}
	report.OverallScore = total / float64(len(report.Categories))
	report.Status = statusFor(report.OverallScore)
	report.Recommendations = c.recommend(report.Averages)
	return report
}

func statusFor(score float64) string {
	switch {
	case score >= excellentMin:
		return StatusExcellent
	case score >= goodMin:
		return StatusGood
	case score >= needsImprovementMin:
		return StatusNeedsImprovement
	default:
		return StatusCritical
	}
}

func (c *Controller) recommend(averages map[domain.BalanceMetric]float64) []string {
	var out []string
	for _, metric := range domain.BalanceMetrics() {
		avg, ok := averages[metric]
		if !ok {
			continue
		}
		band := c.cfg.Bands[metric]
		switch {
		case avg < band.Min:
			out = append(out, recommendations[metric][0])
		case avg > band.Max:
			out = append(out, recommendations[metric][1])
		}
	}
	if len(out) == 0 {
		out = append(out, recommendationBalanced)
	}
	return out
}

// ProgressionVelocity weighs level gain and relative XP growth between two readings.
// Without a previous reading the velocity is 1.0.
func ProgressionVelocity(prev *VelocityPoint, cur VelocityPoint) float64 {
	if prev == nil {
		return DefaultVelocity
	}
	levelChange := float64(cur.Level - prev.Level)
	xpRate := float64(cur.TotalXP-prev.TotalXP) / float64(max(1, prev.TotalXP))
	return levelChange*velocityLevelWeight + xpRate*velocityXPWeight
}
