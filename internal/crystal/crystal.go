package crystal

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// GrowthResult is the outcome of one ApplyGrowth call
type GrowthResult struct {
	State            *domain.ProgressionState `json:"-"`
	Attribute        domain.Attribute         `json:"attribute"`
	Event            domain.GrowthEvent       `json:"event"`
	Requested        int                      `json:"requested"`
	Applied          int                      `json:"applied"`
	OldValue         int                      `json:"old_value"`
	NewValue         int                      `json:"new_value"`
	MilestoneCrossed bool                     `json:"milestone_crossed"`
	Milestones       []int                    `json:"milestones,omitempty"`
}

// MilestoneHit records a milestone crossed by a non-event bonus
type MilestoneHit struct {
	Attribute domain.Attribute `json:"attribute"`
	Milestone int              `json:"milestone"`
}

// floorEpsilon absorbs binary rounding before truncating growth amounts
const floorEpsilon = 1e-9

// GrowthAmount returns the bounded growth for one event on one attribute
func GrowthAmount(attr domain.Attribute, event domain.GrowthEvent, baseMultiplier float64) (int, error) {
	if !attr.Valid() {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownAttribute, attr)
	}
	base, ok := baseGrowth[event]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownGrowthEvent, event)
	}
	if !(baseMultiplier > 0) || math.IsInf(baseMultiplier, 0) {
		return 0, domain.NewValidationError(domain.ErrInvalidGrowthRate, "base_multiplier", baseMultiplier, "must be a positive number")
	}

	raw := int(math.Floor(base*eventMultiplier(attr, event)*baseMultiplier + floorEpsilon))
	return clampInt(raw, MinGrowthAmount, MaxGrowthAmount), nil
}

func eventMultiplier(attr domain.Attribute, event domain.GrowthEvent) float64 {
	if m, ok := attributeEventMultiplier[attr][event]; ok {
		return m
	}
	return 1.0
}

// ApplyGrowth grows one attribute for one event on a copy of state.
// The new value is clamped to [0,100] and the clamp delta is what gets recorded.
func ApplyGrowth(state *domain.ProgressionState, attr domain.Attribute, event domain.GrowthEvent, baseMultiplier float64, now time.Time) (*GrowthResult, error) {
	amount, err := GrowthAmount(attr, event, baseMultiplier)
	if err != nil {
		return nil, err
	}

	old := state.CrystalValues[attr]
	if err := ValidateValue(attr, old); err != nil {
		return nil, err
	}

	next := state.Clone()
	newValue := clampInt(old+amount, MinValue, MaxValue)
	next.CrystalValues[attr] = newValue
	next.LastGrowthEvent[attr] = now

	applied := newValue - old
	next.GrowthHistory = append(next.GrowthHistory, domain.CrystalGrowthRecord{
		ID:         uuid.NewString(),
		Attribute:  attr,
		Source:     string(event),
		Requested:  amount,
		Applied:    applied,
		OldValue:   old,
		NewValue:   newValue,
		Tier:       GrowthTier(applied),
		OccurredAt: now,
	})

	crossed := CrossedMilestones(old, newValue)
	return &GrowthResult{
		State:            next,
		Attribute:        attr,
		Event:            event,
		Requested:        amount,
		Applied:          applied,
		OldValue:         old,
		NewValue:         newValue,
		MilestoneCrossed: len(crossed) > 0,
		Milestones:       crossed,
	}, nil
}

// ApplyBonus adds fixed per-attribute bonuses on a copy of state, clamping at 100.
// Bonus amounts must already be within [1,20].
func ApplyBonus(state *domain.ProgressionState, bonuses map[domain.Attribute]int, now time.Time) (*domain.ProgressionState, []MilestoneHit, error) {
	for attr, amount := range bonuses {
		if !attr.Valid() {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownAttribute, attr)
		}
		if err := ValidateGrowthAmount(amount); err != nil {
			return nil, nil, err
		}
		if err := ValidateValue(attr, state.CrystalValues[attr]); err != nil {
			return nil, nil, err
		}
	}

	next := state.Clone()
	var hits []MilestoneHit
	for _, attr := range domain.Attributes() {
		amount, ok := bonuses[attr]
		if !ok {
			continue
		}
		old := next.CrystalValues[attr]
		newValue := clampInt(old+amount, MinValue, MaxValue)
		next.CrystalValues[attr] = newValue
		next.LastGrowthEvent[attr] = now
		next.GrowthHistory = append(next.GrowthHistory, domain.CrystalGrowthRecord{
			ID:         uuid.NewString(),
			Attribute:  attr,
			Source:     SourceResonanceBonus,
			Requested:  amount,
			Applied:    newValue - old,
			OldValue:   old,
			NewValue:   newValue,
			Tier:       GrowthTier(newValue - old),
			OccurredAt: now,
		})
		for _, m := range CrossedMilestones(old, newValue) {
			hits = append(hits, MilestoneHit{Attribute: attr, Milestone: m})
		}
	}
	return next, hits, nil
}

// CrossedMilestones returns every milestone m with oldValue < m <= newValue
func CrossedMilestones(oldValue, newValue int) []int {
	var crossed []int
	for _, m := range Milestones {
		if oldValue < m && m <= newValue {
			crossed = append(crossed, m)
		}
	}
	return crossed
}

// ResonanceLevel buckets the sum of all crystal values into 0..8
func ResonanceLevel(values map[domain.Attribute]int) int {
	total := 0
	for _, attr := range domain.Attributes() {
		total += values[attr]
	}
	return resonanceBand(total)
}

func resonanceBand(total int) int {
	if total < 0 {
		return 0
	}
	for i, t := range ResonanceThresholds {
		if total < t {
			return i - 1
		}
	}
	return len(ResonanceThresholds) - 1
}

// HarmonyBonus rewards balanced growth: 1.0 for lopsided crystals up to 1.5 for perfectly even ones
func HarmonyBonus(values map[domain.Attribute]int) float64 {
	attrs := domain.Attributes()
	mean := 0.0
	for _, attr := range attrs {
		mean += float64(values[attr])
	}
	mean /= float64(len(attrs))

	variance := 0.0
	for _, attr := range attrs {
		d := float64(values[attr]) - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(attrs)))

	return 1.0 + HarmonyMaxBonus*math.Max(0, (HarmonyStdDevPivot-stddev)/HarmonyStdDevPivot)
}

// GrowthTier labels a growth amount for messaging
func GrowthTier(amount int) string {
	switch {
	case amount <= growthTierLowMax:
		return GrowthTierLow
	case amount <= growthTierMediumMax:
		return GrowthTierMedium
	default:
		return GrowthTierHigh
	}
}

// ValidateGrowthAmount rejects explicit growth amounts outside [1,20]
func ValidateGrowthAmount(amount int) error {
	if amount < MinGrowthAmount || amount > MaxGrowthAmount {
		return domain.NewValidationError(domain.ErrInvalidGrowthAmount, "amount", amount,
			fmt.Sprintf("must be between %d and %d", MinGrowthAmount, MaxGrowthAmount))
	}
	return nil
}

// ValidateValue rejects crystal values outside [0,100]
func ValidateValue(attr domain.Attribute, value int) error {
	if value < MinValue || value > MaxValue {
		return domain.NewValidationError(domain.ErrInvalidCrystalValue, string(attr), value,
			fmt.Sprintf("must be between %d and %d", MinValue, MaxValue))
	}
	return nil
}

// ValidateGrowthRate rejects per-attribute growth rates outside [0.5,2.0]
func ValidateGrowthRate(attr domain.Attribute, rate float64) error {
	if !(rate >= MinGrowthRate && rate <= MaxGrowthRate) {
		return domain.NewValidationError(domain.ErrInvalidGrowthRate, string(attr), rate,
			fmt.Sprintf("must be between %.1f and %.1f", MinGrowthRate, MaxGrowthRate))
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
