package economy

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Band is the target range for one metric and the factors used when it drifts
type Band struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Optimal     float64 `json:"optimal"`
	BelowFactor float64 `json:"below_factor"`
	AboveFactor float64 `json:"above_factor"`
}

// Config holds the balance controller tuning
type Config struct {
	Bands  map[domain.BalanceMetric]Band
	Window int
}

// DefaultConfig returns the standard bands with a seven day window
func DefaultConfig() Config {
	bands := make(map[domain.BalanceMetric]Band, len(DefaultBands))
	for k, v := range DefaultBands {
		bands[k] = v
	}
	return Config{Bands: bands, Window: DefaultWindow}
}

// Validate checks every metric has a well-formed band
func (c Config) Validate() error {
	if c.Window < 1 {
		return domain.NewValidationError(domain.ErrValidation, "window", c.Window, "must be at least 1")
	}
	for _, metric := range domain.BalanceMetrics() {
		b, ok := c.Bands[metric]
		if !ok {
			return domain.NewValidationError(domain.ErrValidation, string(metric), nil, "band missing")
		}
		if b.Min > b.Optimal || b.Optimal > b.Max || b.Optimal <= 0 {
			return domain.NewValidationError(domain.ErrValidation, string(metric), b, "band must satisfy 0 < min <= optimal <= max")
		}
		if b.BelowFactor < MinMultiplier || b.BelowFactor > MaxMultiplier ||
			b.AboveFactor < MinMultiplier || b.AboveFactor > MaxMultiplier {
			return domain.NewValidationError(domain.ErrValidation, string(metric), b, "factors must be between 0.5 and 2.0")
		}
	}
	return nil
}

// ProgressSample is one day of progression behaviour.
// The Has flags mark which readings were observed that day.
type ProgressSample struct {
	DailyXP            float64 `json:"daily_xp"`
	HasXP              bool    `json:"has_xp"`
	TaskCompletionRate float64 `json:"task_completion_rate"`
	HasTasks           bool    `json:"has_tasks"`
	BattleWinRate      float64 `json:"battle_win_rate"`
	HasBattles         bool    `json:"has_battles"`
}

// Controller computes snapshots, balance adjustments and reports.
// It is stateless apart from its configuration.
type Controller struct {
	cfg   Config
	newID func() string
}

// NewController creates a controller from a validated config
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid economy config: %w", err)
	}
	return &Controller{cfg: cfg, newID: uuid.NewString}, nil
}

// Config returns the controller's configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// ProgressSamples derives daily progress readings from snapshot counters.
// Every snapshot is an XP reading, so idle days pull the mean down.
func ProgressSamples(snapshots []domain.EconomicSnapshot) []ProgressSample {
	out := make([]ProgressSample, 0, len(snapshots))
	for _, s := range snapshots {
		p := ProgressSample{
			DailyXP: float64(s.DailyXP),
			HasXP:   true,
		}
		if s.TasksCreated > 0 {
			p.TaskCompletionRate = clamp(float64(s.TasksCompleted)/float64(s.TasksCreated), 0, 1)
			p.HasTasks = true
		}
		if s.BattlesFought > 0 {
			p.BattleWinRate = float64(s.BattlesWon) / float64(s.BattlesFought)
			p.HasBattles = true
		}
		out = append(out, p)
	}
	return out
}

// AnalyzeAndAdjust compares the trailing mean of each metric with its band and
// returns one adjustment per metric that drifted outside it. Metrics without
// samples are skipped; no snapshots means no adjustments.
func (c *Controller) AnalyzeAndAdjust(snapshots []domain.EconomicSnapshot, progress []ProgressSample) []domain.BalanceAdjustment {
	adjustments := []domain.BalanceAdjustment{}
	if len(snapshots) == 0 {
		return adjustments
	}

	for _, metric := range domain.BalanceMetrics() {
		values := c.metricSamples(metric, snapshots, progress)
		if len(values) == 0 {
			continue
		}
		if adj, ok := c.evaluate(metric, values); ok {
			adjustments = append(adjustments, adj)
		}
	}
	return adjustments
}

func (c *Controller) metricSamples(metric domain.BalanceMetric, snapshots []domain.EconomicSnapshot, progress []ProgressSample) []float64 {
	var values []float64
	switch metric {
	case domain.MetricCoinInflation:
		for _, s := range snapshots {
			values = append(values, float64(s.DailyIncome))
		}
	case domain.MetricXPProgression:
		for _, p := range progress {
			if p.HasXP {
				values = append(values, p.DailyXP)
			}
		}
	case domain.MetricTaskDifficulty:
		for _, p := range progress {
			if p.HasTasks {
				values = append(values, p.TaskCompletionRate)
			}
		}
	case domain.MetricBattleRewards:
		for _, p := range progress {
			if p.HasBattles {
				values = append(values, p.BattleWinRate)
			}
		}
	}
	return trailing(values, c.cfg.Window)
}

func (c *Controller) evaluate(metric domain.BalanceMetric, values []float64) (domain.BalanceAdjustment, bool) {
	band := c.cfg.Bands[metric]
	avg := mean(values)

	adj := domain.BalanceAdjustment{
		Metric:       metric,
		CurrentValue: avg,
		TargetMin:    band.Min,
		TargetMax:    band.Max,
		Optimal:      band.Optimal,
		Samples:      len(values),
	}
	switch {
	case avg < band.Min:
		adj.Factor = band.BelowFactor
		adj.Reason = fmt.Sprintf(reasonBelowFormat, metricLabels[metric], avg, band.Min, band.Max)
	case avg > band.Max:
		adj.Factor = band.AboveFactor
		adj.Reason = fmt.Sprintf(reasonAboveFormat, metricLabels[metric], avg, band.Min, band.Max)
	default:
		return domain.BalanceAdjustment{}, false
	}
	return adj, true
}

// ApplyAdjustments writes adjustment factors into base, clamped to [0.5,2.0].
// Battle adjustments move HP by the factor and rewards the opposite way.
func ApplyAdjustments(base domain.RewardMultipliers, adjustments []domain.BalanceAdjustment) domain.RewardMultipliers {
	out := base
	for _, adj := range adjustments {
		f := clamp(adj.Factor, MinMultiplier, MaxMultiplier)
		switch adj.Metric {
		case domain.MetricCoinInflation:
			out.Coin = f
		case domain.MetricXPProgression:
			out.XP = f
		case domain.MetricTaskDifficulty:
			out.TaskDifficulty = f
		case domain.MetricBattleRewards:
			out.BattleHP = f
			out.BattleReward = clamp(2-f, MinMultiplier, MaxMultiplier)
		}
	}
	return out
}

func trailing(values []float64, window int) []float64 {
	if len(values) > window {
		return values[len(values)-window:]
	}
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
