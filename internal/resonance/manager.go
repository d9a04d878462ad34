package resonance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Config holds the resonance tuning knobs
type Config struct {
	MinGap              int           `json:"min_gap"`
	MaxGap              int           `json:"max_gap"`
	RequiredPlayerLevel int           `json:"required_player_level"`
	Cooldown            time.Duration `json:"cooldown"`
}

// DefaultConfig returns the standard resonance configuration
func DefaultConfig() Config {
	return Config{
		MinGap:              DefaultMinGap,
		MaxGap:              DefaultMaxGap,
		RequiredPlayerLevel: DefaultRequiredPlayerLevel,
		Cooldown:            DefaultCooldown,
	}
}

// Validate checks the configuration is internally consistent
func (c Config) Validate() error {
	if c.MinGap < 1 {
		return domain.NewValidationError(domain.ErrValidation, "min_gap", c.MinGap, "must be at least 1")
	}
	if c.MaxGap < c.MinGap {
		return domain.NewValidationError(domain.ErrValidation, "max_gap", c.MaxGap, "must not be below min_gap")
	}
	if c.RequiredPlayerLevel < 1 {
		return domain.NewValidationError(domain.ErrValidation, "required_player_level", c.RequiredPlayerLevel, "must be at least 1")
	}
	if c.Cooldown <= 0 {
		return domain.NewValidationError(domain.ErrValidation, "cooldown", c.Cooldown, "must be positive")
	}
	return nil
}

// Phase is where a single resonance type sits in its lifecycle
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseEligible Phase = "eligible"
	PhaseFired    Phase = "fired"
	PhaseCooldown Phase = "cooldown"
)

// Eligibility is the result of CheckConditions
type Eligibility struct {
	Eligible  bool                 `json:"eligible"`
	Type      domain.ResonanceType `json:"type,omitempty"`
	Preferred domain.ResonanceType `json:"preferred,omitempty"`
	LevelGap  int                  `json:"level_gap"`
	Reason    string               `json:"reason,omitempty"`
}

// Manager decides when resonance fires and what it rewards.
// It holds no per-user state; cooldowns live on the ProgressionState.
type Manager struct {
	cfg   Config
	newID func() string
}

// NewManager creates a manager from a validated config
func NewManager(cfg Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resonance config: %w", err)
	}
	return &Manager{cfg: cfg, newID: uuid.NewString}, nil
}

// Config returns the manager's configuration
func (m *Manager) Config() Config {
	return m.cfg
}

// InCooldown reports whether a type that last fired at lastFired is still cooling down
func (m *Manager) InCooldown(lastFired, now time.Time) bool {
	return !lastFired.IsZero() && now.Before(lastFired.Add(m.cfg.Cooldown))
}

// Phase reports the lifecycle phase of one type.
// A type that fired at exactly now is Fired; it is then in Cooldown until the window passes.
func (m *Manager) Phase(lastFired time.Time, eligible bool, now time.Time) Phase {
	switch {
	case !lastFired.IsZero() && lastFired.Equal(now):
		return PhaseFired
	case m.InCooldown(lastFired, now):
		return PhaseCooldown
	case eligible:
		return PhaseEligible
	default:
		return PhaseIdle
	}
}

// CheckConditions decides whether a resonance can fire and which type it would be
func (m *Manager) CheckConditions(playerLevel, companionLevel int, lastFired map[domain.ResonanceType]time.Time, now time.Time) (Eligibility, error) {
	if playerLevel < 1 || companionLevel < 1 {
		return Eligibility{}, domain.NewValidationError(domain.ErrInvalidLevel, "level",
			fmt.Sprintf("%d/%d", playerLevel, companionLevel), "levels must be at least 1")
	}

	gap := levelGap(playerLevel, companionLevel)
	result := Eligibility{LevelGap: gap}

	switch {
	case gap < m.cfg.MinGap:
		result.Reason = reasonGapTooSmall
		return result, nil
	case gap > m.cfg.MaxGap:
		result.Reason = reasonGapTooLarge
		return result, nil
	case playerLevel < m.cfg.RequiredPlayerLevel:
		result.Reason = reasonPlayerTooLow
		return result, nil
	}

	preferred := PreferredType(gap)
	result.Preferred = preferred
	if !m.InCooldown(lastFired[preferred], now) {
		result.Eligible = true
		result.Type = preferred
		return result, nil
	}

	for _, t := range domain.ResonanceTypes() {
		if t == preferred {
			continue
		}
		if !m.InCooldown(lastFired[t], now) {
			result.Eligible = true
			result.Type = t
			return result, nil
		}
	}

	result.Reason = reasonAllCoolingDown
	return result, nil
}

// Trigger fires a resonance of type t on a copy of state.
// The returned state has the cooldown stamp and history entry; applying
// bonus XP and crystal bonuses is left to the caller.
func (m *Manager) Trigger(state *domain.ProgressionState, t domain.ResonanceType, now time.Time) (*domain.ResonanceEvent, *domain.ProgressionState, error) {
	if !t.Valid() {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownResonanceType, t)
	}
	player, companion := state.PlayerLevel, state.CompanionLevel
	if player < 1 || companion < 1 {
		return nil, nil, domain.NewValidationError(domain.ErrInvalidLevel, "level",
			fmt.Sprintf("%d/%d", player, companion), "levels must be at least 1")
	}

	gap := levelGap(player, companion)
	if gap < m.cfg.MinGap || gap > m.cfg.MaxGap || player < m.cfg.RequiredPlayerLevel {
		return nil, nil, fmt.Errorf("%w: level gap %d", domain.ErrResonanceNotEligible, gap)
	}
	if m.InCooldown(state.ResonanceLastFired[t], now) {
		return nil, nil, fmt.Errorf("%w: %s is cooling down", domain.ErrResonanceNotEligible, t)
	}

	intensity := IntensityForGap(gap)
	bonusXP := BonusXP(gap, player, t)

	ev := domain.ResonanceEvent{
		ID:             m.newID(),
		UserID:         state.UserID,
		Type:           t,
		Intensity:      intensity,
		PlayerLevel:    player,
		CompanionLevel: companion,
		LevelGap:       gap,
		BonusXP:        bonusXP,
		CrystalBonuses: CrystalBonuses(t, intensity, player),
		RewardTokens:   RewardTokens(intensity),
		StoryUnlock:    StoryUnlock(t, player),
		Message:        message(t, intensity, player, companion, bonusXP),
		TriggeredAt:    now,
	}

	next := state.Clone()
	next.ResonanceLastFired[t] = now
	next.ResonanceHistory = append(next.ResonanceHistory, ev)
	return &ev, next, nil
}

// PreferredType picks the resonance type favoured by a level gap
func PreferredType(gap int) domain.ResonanceType {
	switch {
	case gap%4 == 0:
		return domain.ResonanceWisdomSharing
	case gap%3 == 0:
		return domain.ResonanceEmotionalBond
	case gap%2 == 0:
		return domain.ResonanceCrystalHarmony
	default:
		return domain.ResonanceLevelSync
	}
}

// IntensityForGap maps a level gap to an intensity tier
func IntensityForGap(gap int) domain.Intensity {
	switch {
	case gap <= weakMaxGap:
		return domain.IntensityWeak
	case gap <= moderateMaxGap:
		return domain.IntensityModerate
	case gap <= strongMaxGap:
		return domain.IntensityStrong
	default:
		return domain.IntensityIntense
	}
}

// BonusXP is (gap*10 + player*5) scaled by the type multiplier, truncated
func BonusXP(gap, playerLevel int, t domain.ResonanceType) int64 {
	raw := gap*bonusXPPerGapLevel + playerLevel*bonusXPPerPlayerLevel
	return int64(float64(raw) * typeMultiplier[t])
}

// CrystalBonuses returns the per-attribute bonus granted by a resonance
func CrystalBonuses(t domain.ResonanceType, intensity domain.Intensity, playerLevel int) map[domain.Attribute]int {
	amount := intensityFactor[intensity] * max(1, playerLevel/crystalBonusLevelStep)
	bonuses := make(map[domain.Attribute]int, len(typeAttributes[t]))
	for _, attr := range typeAttributes[t] {
		bonuses[attr] = amount
	}
	return bonuses
}

// RewardTokens returns the cumulative special tokens for an intensity
func RewardTokens(intensity domain.Intensity) []string {
	tokens := []string{}
	switch intensity {
	case domain.IntensityIntense:
		tokens = append(tokens, TokenHarmonyProof, TokenGrowthMark, TokenBreakthroughMedal)
	case domain.IntensityStrong:
		tokens = append(tokens, TokenHarmonyProof, TokenGrowthMark)
	case domain.IntensityModerate:
		tokens = append(tokens, TokenHarmonyProof)
	}
	return tokens
}

// StoryUnlock returns the story content unlocked by a resonance, if any
func StoryUnlock(t domain.ResonanceType, playerLevel int) string {
	switch {
	case t == domain.ResonanceEmotionalBond && playerLevel >= breakthroughMinLevel:
		return StoryBreakthroughChapter
	case t == domain.ResonanceWisdomSharing && playerLevel >= wisdomPathMinLevel:
		return StoryWisdomPath
	default:
		return ""
	}
}

// DisplayName renders a resonance type for people, e.g. "Wisdom Sharing"
func DisplayName(t domain.ResonanceType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}

func message(t domain.ResonanceType, intensity domain.Intensity, player, companion int, bonusXP int64) string {
	return fmt.Sprintf(msgResonanceFormat, DisplayName(t), intensity, player, companion, bonusXP)
}

func levelGap(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
