package resonance

import (
	"math"
	"time"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Statistics summarises a resonance history
type Statistics struct {
	Total          int                          `json:"total"`
	ByType         map[domain.ResonanceType]int `json:"by_type"`
	ByIntensity    map[domain.Intensity]int     `json:"by_intensity"`
	TotalBonusXP   int64                        `json:"total_bonus_xp"`
	AverageBonusXP float64                      `json:"average_bonus_xp"`
	LastFired      *time.Time                   `json:"last_fired,omitempty"`
}

// DailyProbability is one day of a resonance forecast
type DailyProbability struct {
	Day         int     `json:"day"`
	Probability float64 `json:"probability"`
}

// ComputeStatistics aggregates a history. An empty history yields zero counts.
func ComputeStatistics(history []domain.ResonanceEvent) Statistics {
	stats := Statistics{
		ByType:      make(map[domain.ResonanceType]int),
		ByIntensity: make(map[domain.Intensity]int),
	}
	var last time.Time
	for _, ev := range history {
		stats.Total++
		stats.ByType[ev.Type]++
		stats.ByIntensity[ev.Intensity]++
		stats.TotalBonusXP += ev.BonusXP
		if ev.TriggeredAt.After(last) {
			last = ev.TriggeredAt
		}
	}
	if stats.Total > 0 {
		stats.AverageBonusXP = float64(stats.TotalBonusXP) / float64(stats.Total)
		stats.LastFired = &last
	}
	return stats
}

// Forecast estimates the chance of a resonance on each of the next days.
// The estimate only looks at the current level gap and decays 10% per day.
func (m *Manager) Forecast(playerLevel, companionLevel, days int) ([]DailyProbability, error) {
	if days < 1 || days > MaxForecastDays {
		return nil, domain.NewValidationError(domain.ErrInvalidForecastDays, "days", days, "must be between 1 and 30")
	}
	if playerLevel < 1 || companionLevel < 1 {
		return nil, domain.NewValidationError(domain.ErrInvalidLevel, "level", playerLevel, "levels must be at least 1")
	}

	base := m.baseProbability(levelGap(playerLevel, companionLevel))
	out := make([]DailyProbability, 0, days)
	for d := 1; d <= days; d++ {
		out = append(out, DailyProbability{
			Day:         d,
			Probability: math.Max(0, base*(1-forecastDailyDecay*float64(d))),
		})
	}
	return out, nil
}

func (m *Manager) baseProbability(gap int) float64 {
	switch {
	case gap < m.cfg.MinGap:
		return 0
	case gap > m.cfg.MaxGap:
		return forecastOutOfRangeBase
	}
	span := m.cfg.MaxGap - m.cfg.MinGap
	if span == 0 {
		return forecastInRangeBase
	}
	return forecastInRangeBase + float64(gap-m.cfg.MinGap)/float64(span)*forecastInRangeSpan
}
