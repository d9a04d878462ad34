package resonance

import (
	"time"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// =============================================================================
// Default Configuration
// =============================================================================

const (
	// DefaultMinGap is the smallest player/companion level gap that can resonate
	DefaultMinGap = 5

	// DefaultMaxGap is the largest level gap that can resonate
	DefaultMaxGap = 30

	// DefaultRequiredPlayerLevel is the player level needed before any resonance fires
	DefaultRequiredPlayerLevel = 1

	// DefaultCooldown is the per-type wait after a resonance fires
	DefaultCooldown = 24 * time.Hour
)

// =============================================================================
// Intensity Bands
// =============================================================================

const (
	weakMaxGap     = 7
	moderateMaxGap = 12
	strongMaxGap   = 20
)

// intensityFactor scales crystal bonuses by intensity
var intensityFactor = map[domain.Intensity]int{
	domain.IntensityWeak:     1,
	domain.IntensityModerate: 2,
	domain.IntensityStrong:   3,
	domain.IntensityIntense:  4,
}

// =============================================================================
// Rewards
// =============================================================================

const (
	bonusXPPerGapLevel    = 10
	bonusXPPerPlayerLevel = 5

	// crystalBonusLevelStep grants one extra bonus point per this many player levels
	crystalBonusLevelStep = 10
)

// typeMultiplier weights bonus XP by resonance type
var typeMultiplier = map[domain.ResonanceType]float64{
	domain.ResonanceLevelSync:      1.0,
	domain.ResonanceCrystalHarmony: 1.2,
	domain.ResonanceEmotionalBond:  1.4,
	domain.ResonanceWisdomSharing:  1.6,
}

// typeAttributes lists the crystals boosted by each resonance type
var typeAttributes = map[domain.ResonanceType][]domain.Attribute{
	domain.ResonanceLevelSync:      {domain.AttributeEmpathy, domain.AttributeResilience},
	domain.ResonanceCrystalHarmony: {domain.AttributeCuriosity, domain.AttributeCourage},
	domain.ResonanceEmotionalBond:  {domain.AttributeCreativity, domain.AttributeSelfDiscipline},
	domain.ResonanceWisdomSharing:  {domain.AttributeWisdom, domain.AttributeCommunication},
}

// Reward tokens, granted cumulatively by intensity
const (
	TokenHarmonyProof      = "harmony_proof"
	TokenGrowthMark        = "growth_mark"
	TokenBreakthroughMedal = "breakthrough_medal"
)

// Story unlocks
const (
	StoryBreakthroughChapter = "special_chapter_breakthrough"
	StoryWisdomPath          = "wisdom_path_unlock"

	breakthroughMinLevel = 10
	wisdomPathMinLevel   = 20
)

// =============================================================================
// Forecast
// =============================================================================

const (
	// MaxForecastDays bounds Forecast requests
	MaxForecastDays = 30

	forecastOutOfRangeBase = 0.1
	forecastInRangeBase    = 0.3
	forecastInRangeSpan    = 0.4
	forecastDailyDecay     = 0.1
)

// =============================================================================
// Messages
// =============================================================================

const (
	msgResonanceFormat = "%s resonance (%s) between your level %d self and your level %d companion: +%d XP"

	reasonGapTooSmall    = "level gap below minimum"
	reasonGapTooLarge    = "level gap above maximum"
	reasonPlayerTooLow   = "player level below requirement"
	reasonAllCoolingDown = "every resonance type is cooling down"
)
