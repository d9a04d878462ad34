package level

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Progression describes where a total XP value sits on the level curve
type Progression struct {
	Level           int     `json:"level"`
	TotalXP         int64   `json:"total_xp"`
	CurrentLevelXP  int64   `json:"current_level_xp"`
	NextLevelXP     int64   `json:"next_level_xp"`
	XPIntoLevel     int64   `json:"xp_into_level"`
	XPNeeded        int64   `json:"xp_needed"`
	ProgressPercent float64 `json:"progress_percent"`
}

// ForXP returns the greatest level L with threshold(L) <= totalXP.
// floor(log2(totalXP/100 + 1)) + 1 is computed exactly with integer bit length.
func ForXP(totalXP int64) (int, error) {
	if totalXP < 0 {
		return 0, domain.NewValidationError(domain.ErrInvalidXP, "total_xp", totalXP, "must be >= 0")
	}
	lvl := bits.Len64(uint64(totalXP/XPUnit) + 1)
	if lvl > MaxLevel {
		lvl = MaxLevel
	}
	return lvl, nil
}

// Threshold returns the total XP required to reach level
func Threshold(level int) (int64, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, domain.NewValidationError(domain.ErrInvalidLevel, "level", level,
			fmt.Sprintf("must be between %d and %d", MinLevel, MaxLevel))
	}
	return threshold(level), nil
}

// XPForNextLevel returns the total XP at which level+1 begins
func XPForNextLevel(level int) (int64, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, domain.NewValidationError(domain.ErrInvalidLevel, "level", level,
			fmt.Sprintf("must be between %d and %d", MinLevel, MaxLevel))
	}
	return threshold(level + 1), nil
}

// threshold saturates at math.MaxInt64 once the curve leaves int64 range
func threshold(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	shift := level - 1
	if shift >= 63 {
		return math.MaxInt64
	}
	steps := int64(1)<<shift - 1
	if steps > math.MaxInt64/XPUnit {
		return math.MaxInt64
	}
	return steps * XPUnit
}

// Progress reports the level and the distance to the next one
func Progress(totalXP int64) (Progression, error) {
	lvl, err := ForXP(totalXP)
	if err != nil {
		return Progression{}, err
	}

	current := threshold(lvl)
	next := threshold(lvl + 1)
	p := Progression{
		Level:          lvl,
		TotalXP:        totalXP,
		CurrentLevelXP: current,
		NextLevelXP:    next,
		XPIntoLevel:    totalXP - current,
		XPNeeded:       next - totalXP,
	}
	if span := next - current; span > 0 {
		p.ProgressPercent = math.Min(100, float64(p.XPIntoLevel)/float64(span)*100)
	}
	return p, nil
}

// Rewards lists the reward tokens earned for every level in (oldLevel, newLevel]
func Rewards(oldLevel, newLevel int) []string {
	var rewards []string
	for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
		if lvl%AchievementInterval == 0 {
			rewards = append(rewards, fmt.Sprintf(RewardAchievementFormat, lvl))
		}
		if lvl%FeatureUnlockInterval == 0 {
			rewards = append(rewards, fmt.Sprintf(RewardFeatureUnlockFormat, lvl))
		}
	}
	return rewards
}

// CompanionPersonality returns the companion's personality for its level
func CompanionPersonality(level int) Personality {
	switch {
	case level >= 20:
		return PersonalityWise
	case level >= 15:
		return PersonalitySupportive
	case level >= 10:
		return PersonalityCalm
	case level >= 5:
		return PersonalityEnergetic
	default:
		return PersonalityCheerful
	}
}
