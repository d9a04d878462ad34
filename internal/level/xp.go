package level

import (
	"fmt"
	"math"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// ActivityXP computes the XP earned by one activity:
//
//	floor(base * mood * assist * (1 + priority + efficiency))
//
// base is difficulty * BaseXP when BaseXP is positive, otherwise the difficulty table value.
func ActivityXP(activity domain.ActivityDescriptor) (int64, error) {
	if err := ValidateActivity(activity); err != nil {
		return 0, err
	}

	base := float64(difficultyBaseXP[activity.Difficulty])
	if activity.BaseXP > 0 {
		base = float64(activity.Difficulty) * float64(activity.BaseXP)
	}

	bonus := 1 + priorityBonus[activity.Priority] + activity.EfficiencyBonus
	xp := base * activity.MoodCoefficient * activity.AssistMultiplier * bonus
	if xp >= math.MaxInt64 {
		return 0, domain.NewValidationError(domain.ErrInvalidActivity, "base_xp", activity.BaseXP, "too large")
	}
	return int64(math.Floor(xp + floorEpsilon)), nil
}

// ValidateActivity rejects out-of-range activity inputs before any state mutation
func ValidateActivity(activity domain.ActivityDescriptor) error {
	if activity.Difficulty < MinDifficulty || activity.Difficulty > MaxDifficulty {
		return domain.NewValidationError(domain.ErrInvalidActivity, "difficulty", activity.Difficulty,
			fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	if !inRange(activity.MoodCoefficient, MinMoodCoefficient, MaxMoodCoefficient) {
		return domain.NewValidationError(domain.ErrInvalidActivity, "mood_coefficient", activity.MoodCoefficient,
			fmt.Sprintf("must be between %.1f and %.1f", MinMoodCoefficient, MaxMoodCoefficient))
	}
	if !inRange(activity.AssistMultiplier, MinAssistMultiplier, MaxAssistMultiplier) {
		return domain.NewValidationError(domain.ErrInvalidActivity, "assist_multiplier", activity.AssistMultiplier,
			fmt.Sprintf("must be between %.1f and %.1f", MinAssistMultiplier, MaxAssistMultiplier))
	}
	if !inRange(activity.EfficiencyBonus, 0, MaxEfficiencyBonus) {
		return domain.NewValidationError(domain.ErrInvalidActivity, "efficiency_bonus", activity.EfficiencyBonus,
			fmt.Sprintf("must be between 0 and %.1f", MaxEfficiencyBonus))
	}
	if _, ok := priorityBonus[activity.Priority]; activity.Priority != "" && !ok {
		return domain.NewValidationError(domain.ErrInvalidActivity, "priority", activity.Priority, "unknown priority")
	}
	if activity.BaseXP < 0 {
		return domain.NewValidationError(domain.ErrInvalidActivity, "base_xp", activity.BaseXP, "must be >= 0")
	}
	if activity.CompanionXP < 0 {
		return domain.NewValidationError(domain.ErrInvalidActivity, "companion_xp", activity.CompanionXP, "must be >= 0")
	}
	return nil
}

// floorEpsilon absorbs binary rounding such as 100*1.15 = 114.99999999999999
const floorEpsilon = 1e-9

// inRange also rejects NaN
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
