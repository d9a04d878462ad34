package progression

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/MindQuest_Go/internal/crystal"
	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/economy"
	"github.com/osse101/MindQuest_Go/internal/level"
	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/resonance"
)

// LevelChange records a level transition caused by one call
type LevelChange struct {
	Old         int      `json:"old"`
	New         int      `json:"new"`
	Rewards     []string `json:"rewards,omitempty"`
	Personality string   `json:"personality,omitempty"`
}

// ActivityResult is everything one activity changed.
// State is the updated copy; the caller persists it.
type ActivityResult struct {
	State           *domain.ProgressionState `json:"-"`
	XPAwarded       int64                    `json:"xp_awarded"`
	BonusXP         int64                    `json:"bonus_xp"`
	CompanionXP     int64                    `json:"companion_xp"`
	PlayerLevel     *LevelChange             `json:"player_level,omitempty"`
	CompanionLevel  *LevelChange             `json:"companion_level,omitempty"`
	Growth          *crystal.GrowthResult    `json:"growth,omitempty"`
	BonusMilestones []crystal.MilestoneHit   `json:"bonus_milestones,omitempty"`
	Resonance       *domain.ResonanceEvent   `json:"resonance,omitempty"`
	Synergies       []crystal.Synergy        `json:"synergies,omitempty"`
	HarmonyBonus    float64                  `json:"harmony_bonus"`
	ResonanceLevel  int                      `json:"resonance_level"`
	Diagnostics     []string                 `json:"diagnostics,omitempty"`
}

// SnapshotResult is the outcome of a snapshot capture or a rebalance
type SnapshotResult struct {
	State       *domain.ProgressionState   `json:"-"`
	Snapshot    *domain.EconomicSnapshot   `json:"snapshot,omitempty"`
	Adjustments []domain.BalanceAdjustment `json:"adjustments"`
	Multipliers domain.RewardMultipliers   `json:"multipliers"`
	Changed     bool                       `json:"changed"`
}

// Engine runs the level, crystal, resonance and economy components for one user.
// It holds no per-user state and never mutates the state it is given.
type Engine struct {
	resonance *resonance.Manager
	economy   *economy.Controller
	synergies []crystal.Synergy
}

// NewEngine creates an engine over the given components
func NewEngine(resonanceMgr *resonance.Manager, economyCtrl *economy.Controller, synergies []crystal.Synergy) *Engine {
	return &Engine{
		resonance: resonanceMgr,
		economy:   economyCtrl,
		synergies: synergies,
	}
}

// Resonance returns the engine's resonance manager
func (e *Engine) Resonance() *resonance.Manager {
	return e.resonance
}

// Economy returns the engine's balance controller
func (e *Engine) Economy() *economy.Controller {
	return e.economy
}

// ProcessActivity awards XP for one activity, grows its crystal and fires a resonance if eligible
func (e *Engine) ProcessActivity(ctx context.Context, state *domain.ProgressionState, activity domain.ActivityDescriptor, now time.Time) (*ActivityResult, error) {
	growthEvent, ok := activityGrowthEvents[activity.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownActivityKind, activity.Kind)
	}
	if activity.Attribute != "" && !activity.Attribute.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAttribute, activity.Attribute)
	}
	xp, err := level.ActivityXP(activity)
	if err != nil {
		return nil, err
	}

	next, diagnostics, err := e.Normalize(ctx, state)
	if err != nil {
		return nil, err
	}
	before := copyValues(next.CrystalValues)

	xp = scaleXP(xp, next.Multipliers.XP)
	result := &ActivityResult{XPAwarded: xp, CompanionXP: activity.CompanionXP, Diagnostics: diagnostics}
	result.PlayerLevel = addPlayerXP(next, xp, nil)
	result.CompanionLevel = addCompanionXP(next, activity.CompanionXP)

	if activity.Attribute != "" {
		growth, err := crystal.ApplyGrowth(next, activity.Attribute, growthEvent, next.CrystalGrowthRate[activity.Attribute], now)
		if err != nil {
			return nil, err
		}
		next = growth.State
		result.Growth = growth
	}

	if err := e.finish(ctx, next, before, result, now); err != nil {
		return nil, err
	}
	return result, nil
}

// AwardCompanionXP adds XP to the companion and fires a resonance if the new gap allows one
func (e *Engine) AwardCompanionXP(ctx context.Context, state *domain.ProgressionState, amount int64, now time.Time) (*ActivityResult, error) {
	if amount < 0 {
		return nil, domain.NewValidationError(domain.ErrInvalidXP, "companion_xp", amount, "must be >= 0")
	}

	next, diagnostics, err := e.Normalize(ctx, state)
	if err != nil {
		return nil, err
	}
	before := copyValues(next.CrystalValues)

	result := &ActivityResult{CompanionXP: amount, Diagnostics: diagnostics}
	result.CompanionLevel = addCompanionXP(next, amount)

	if err := e.finish(ctx, next, before, result, now); err != nil {
		return nil, err
	}
	return result, nil
}

// finish runs the resonance check, applies its rewards and fills the read-side summary
func (e *Engine) finish(ctx context.Context, next *domain.ProgressionState, before map[domain.Attribute]int, result *ActivityResult, now time.Time) error {
	eligibility, err := e.resonance.CheckConditions(next.PlayerLevel, next.CompanionLevel, next.ResonanceLastFired, now)
	if err != nil {
		return err
	}
	if eligibility.Eligible {
		ev, fired, err := e.resonance.Trigger(next, eligibility.Type, now)
		if err != nil {
			return err
		}
		result.PlayerLevel = addPlayerXP(fired, ev.BonusXP, result.PlayerLevel)
		result.BonusXP = ev.BonusXP

		bonuses := make(map[domain.Attribute]int, len(ev.CrystalBonuses))
		for attr, amount := range ev.CrystalBonuses {
			bonuses[attr] = min(amount, crystal.MaxGrowthAmount)
		}
		boosted, hits, err := crystal.ApplyBonus(fired, bonuses, now)
		if err != nil {
			return err
		}
		next = boosted
		result.BonusMilestones = hits
		result.Resonance = ev
		logger.FromContext(ctx).Info(LogMsgResonanceFired,
			"user_id", next.UserID, "type", ev.Type, "intensity", ev.Intensity, "bonus_xp", ev.BonusXP)
	}

	result.Synergies = crystal.NewlyActive(before, next.CrystalValues, e.synergies)
	result.HarmonyBonus = crystal.HarmonyBonus(next.CrystalValues)
	result.ResonanceLevel = crystal.ResonanceLevel(next.CrystalValues)
	next.UpdatedAt = now
	result.State = next
	return nil
}

// CaptureSnapshot records today's economy reading and recomputes the reward multipliers
func (e *Engine) CaptureSnapshot(ctx context.Context, state *domain.ProgressionState, totalCurrency int64, day domain.DailyActivity, now time.Time) (*SnapshotResult, error) {
	next, _, err := e.Normalize(ctx, state)
	if err != nil {
		return nil, err
	}

	snapshot, err := e.economy.CaptureSnapshot(next.UserID, totalCurrency, day, next.EconomicSnapshots, now)
	if err != nil {
		return nil, err
	}
	next.EconomicSnapshots = append(next.EconomicSnapshots, *snapshot)

	result := e.rebalance(next, now)
	result.Snapshot = snapshot
	return result, nil
}

// Rebalance recomputes the reward multipliers from the stored snapshots without capturing a new one
func (e *Engine) Rebalance(ctx context.Context, state *domain.ProgressionState, now time.Time) (*SnapshotResult, error) {
	next, _, err := e.Normalize(ctx, state)
	if err != nil {
		return nil, err
	}
	return e.rebalance(next, now), nil
}

// rebalance derives multipliers from neutral each time so factors never compound across days
func (e *Engine) rebalance(next *domain.ProgressionState, now time.Time) *SnapshotResult {
	adjustments := e.economy.AnalyzeAndAdjust(next.EconomicSnapshots, economy.ProgressSamples(next.EconomicSnapshots))
	multipliers := economy.ApplyAdjustments(domain.DefaultRewardMultipliers(), adjustments)

	changed := multipliers != next.Multipliers
	next.Multipliers = multipliers
	next.UpdatedAt = now
	return &SnapshotResult{
		State:       next,
		Adjustments: adjustments,
		Multipliers: multipliers,
		Changed:     changed,
	}
}

// Normalize returns a copy of state with derived fields recomputed from their sources.
// Levels always follow XP; missing crystal keys are filled in. Every repair is
// returned as a diagnostic and logged. Values that cannot be repaired are errors.
func (e *Engine) Normalize(ctx context.Context, state *domain.ProgressionState) (*domain.ProgressionState, []string, error) {
	if state == nil || state.UserID == "" {
		return nil, nil, fmt.Errorf("%w: state has no user", domain.ErrInvalidUserID)
	}
	if state.TotalXP < 0 {
		return nil, nil, domain.NewValidationError(domain.ErrInvalidXP, "total_xp", state.TotalXP, "must be >= 0")
	}
	if state.CompanionXP < 0 {
		return nil, nil, domain.NewValidationError(domain.ErrInvalidXP, "companion_xp", state.CompanionXP, "must be >= 0")
	}

	next := state.Clone()
	var diagnostics []string

	playerLevel, _ := level.ForXP(next.TotalXP)
	if next.PlayerLevel != playerLevel {
		diagnostics = append(diagnostics, fmt.Sprintf(diagPlayerLevelHealed, next.PlayerLevel, next.TotalXP, playerLevel))
		next.PlayerLevel = playerLevel
	}
	companionLevel, _ := level.ForXP(next.CompanionXP)
	if next.CompanionLevel != companionLevel {
		diagnostics = append(diagnostics, fmt.Sprintf(diagCompanionLevelHealed, next.CompanionLevel, next.CompanionXP, companionLevel))
		next.CompanionLevel = companionLevel
	}

	for _, issue := range crystal.ValidateState(next) {
		switch issue.Kind {
		case crystal.IssueMissingAttribute:
			next.CrystalValues[issue.Attribute] = crystal.MinValue
			diagnostics = append(diagnostics, fmt.Sprintf(diagCrystalMissing, issue.Attribute))
		case crystal.IssueValueOutOfRange:
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidCrystalValue, issue.Detail)
		case crystal.IssueGrowthRateInvalid:
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidGrowthRate, issue.Detail)
		}
	}
	for _, attr := range domain.Attributes() {
		if _, ok := next.CrystalGrowthRate[attr]; !ok {
			next.CrystalGrowthRate[attr] = crystal.DefaultGrowthRate
			diagnostics = append(diagnostics, fmt.Sprintf(diagGrowthRateMissing, attr))
		}
	}
	if next.Multipliers == (domain.RewardMultipliers{}) {
		next.Multipliers = domain.DefaultRewardMultipliers()
		diagnostics = append(diagnostics, diagMultipliersReset)
	}

	if len(diagnostics) > 0 {
		logger.FromContext(ctx).Warn(LogMsgStateHealed, "user_id", next.UserID, "diagnostics", diagnostics)
	}
	return next, diagnostics, nil
}

// PruneRetention drops history older than the retention window, measured back from now
func PruneRetention(state *domain.ProgressionState, now time.Time, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	state.PruneBefore(now.AddDate(0, 0, -retentionDays))
}

// addPlayerXP adds xp and folds the resulting level change into prev
func addPlayerXP(state *domain.ProgressionState, xp int64, prev *LevelChange) *LevelChange {
	oldLevel := state.PlayerLevel
	state.TotalXP = saturatingAdd(state.TotalXP, xp)
	state.PlayerLevel, _ = level.ForXP(state.TotalXP)
	if state.PlayerLevel == oldLevel {
		return prev
	}

	change := &LevelChange{Old: oldLevel, New: state.PlayerLevel}
	if prev != nil {
		change.Old = prev.Old
	}
	change.Rewards = level.Rewards(change.Old, change.New)
	return change
}

func addCompanionXP(state *domain.ProgressionState, xp int64) *LevelChange {
	oldLevel := state.CompanionLevel
	state.CompanionXP = saturatingAdd(state.CompanionXP, xp)
	state.CompanionLevel, _ = level.ForXP(state.CompanionXP)
	if state.CompanionLevel == oldLevel {
		return nil
	}
	return &LevelChange{
		Old:         oldLevel,
		New:         state.CompanionLevel,
		Personality: string(level.CompanionPersonality(state.CompanionLevel)),
	}
}

// scaleXP applies the per-user XP multiplier, truncating like every other XP formula
func scaleXP(xp int64, multiplier float64) int64 {
	if multiplier <= 0 || multiplier == 1 {
		return xp
	}
	scaled := float64(xp) * multiplier
	if scaled >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(scaled + 1e-9))
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func copyValues(values map[domain.Attribute]int) map[domain.Attribute]int {
	out := make(map[domain.Attribute]int, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
