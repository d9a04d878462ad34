package resonance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

var testNow = time.Date(2026, 5, 2, 18, 30, 0, 0, time.UTC)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(DefaultConfig())
	require.NoError(t, err)
	m.newID = func() string { return "res-1" }
	return m
}

func stateWithLevels(player, companion int) *domain.ProgressionState {
	s := domain.NewProgressionState("user-1", testNow.Add(-48*time.Hour))
	s.PlayerLevel = player
	s.CompanionLevel = companion
	return s
}

func TestNewManager_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero min gap", func(c *Config) { c.MinGap = 0 }},
		{"max below min", func(c *Config) { c.MaxGap = 2 }},
		{"zero required level", func(c *Config) { c.RequiredPlayerLevel = 0 }},
		{"zero cooldown", func(c *Config) { c.Cooldown = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			_, err := NewManager(cfg)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCheckConditions_GapGate(t *testing.T) {
	m := newTestManager(t)
	for player := 1; player <= 60; player++ {
		for companion := 1; companion <= 60; companion++ {
			res, err := m.CheckConditions(player, companion, nil, testNow)
			require.NoError(t, err)

			gap := levelGap(player, companion)
			want := gap >= DefaultMinGap && gap <= DefaultMaxGap
			require.Equal(t, want, res.Eligible, "player %d companion %d", player, companion)
			if want {
				require.True(t, res.Type.Valid())
				require.Equal(t, PreferredType(gap), res.Type)
			}
		}
	}
}

func TestCheckConditions_InvalidLevels(t *testing.T) {
	m := newTestManager(t)
	_, err := m.CheckConditions(0, 5, nil, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestPreferredType(t *testing.T) {
	tests := []struct {
		gap      int
		expected domain.ResonanceType
	}{
		{5, domain.ResonanceLevelSync},
		{6, domain.ResonanceEmotionalBond},
		{8, domain.ResonanceWisdomSharing},
		{10, domain.ResonanceCrystalHarmony},
		{12, domain.ResonanceWisdomSharing},
		{9, domain.ResonanceEmotionalBond},
		{7, domain.ResonanceLevelSync},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PreferredType(tt.gap), "gap %d", tt.gap)
	}
}

func TestCheckConditions_CooldownFallback(t *testing.T) {
	m := newTestManager(t)

	// gap 5 prefers level_sync
	lastFired := map[domain.ResonanceType]time.Time{
		domain.ResonanceLevelSync: testNow.Add(-time.Hour),
	}
	res, err := m.CheckConditions(10, 5, lastFired, testNow)
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, domain.ResonanceLevelSync, res.Preferred)
	assert.Equal(t, domain.ResonanceCrystalHarmony, res.Type)

	for _, rt := range domain.ResonanceTypes() {
		lastFired[rt] = testNow.Add(-time.Hour)
	}
	res, err = m.CheckConditions(10, 5, lastFired, testNow)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, reasonAllCoolingDown, res.Reason)
}

func TestInCooldown(t *testing.T) {
	m := newTestManager(t)

	assert.False(t, m.InCooldown(time.Time{}, testNow))
	assert.True(t, m.InCooldown(testNow, testNow))
	assert.True(t, m.InCooldown(testNow.Add(-DefaultCooldown+time.Second), testNow))
	assert.False(t, m.InCooldown(testNow.Add(-DefaultCooldown), testNow))
}

func TestPhase(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, PhaseIdle, m.Phase(time.Time{}, false, testNow))
	assert.Equal(t, PhaseEligible, m.Phase(time.Time{}, true, testNow))
	assert.Equal(t, PhaseFired, m.Phase(testNow, true, testNow))
	assert.Equal(t, PhaseCooldown, m.Phase(testNow.Add(-time.Hour), true, testNow))
	assert.Equal(t, PhaseEligible, m.Phase(testNow.Add(-25*time.Hour), true, testNow))
}

func TestTrigger_WeakResonanceAtGapFive(t *testing.T) {
	m := newTestManager(t)
	state := stateWithLevels(10, 5)

	res, err := m.CheckConditions(state.PlayerLevel, state.CompanionLevel, state.ResonanceLastFired, testNow)
	require.NoError(t, err)
	require.True(t, res.Eligible)
	require.Equal(t, domain.ResonanceLevelSync, res.Type)

	ev, next, err := m.Trigger(state, res.Type, testNow)
	require.NoError(t, err)

	assert.Equal(t, "res-1", ev.ID)
	assert.Equal(t, domain.IntensityWeak, ev.Intensity)
	assert.Equal(t, 5, ev.LevelGap)
	assert.Equal(t, int64((5*10+10*5)*1.0), ev.BonusXP)
	assert.Equal(t, map[domain.Attribute]int{
		domain.AttributeEmpathy:    1,
		domain.AttributeResilience: 1,
	}, ev.CrystalBonuses)
	assert.Empty(t, ev.RewardTokens)
	assert.Empty(t, ev.StoryUnlock)
	assert.Equal(t, "Level Sync resonance (weak) between your level 10 self and your level 5 companion: +100 XP", ev.Message)

	assert.Equal(t, testNow, next.ResonanceLastFired[domain.ResonanceLevelSync])
	require.Len(t, next.ResonanceHistory, 1)
	assert.Equal(t, *ev, next.ResonanceHistory[0])
	assert.Empty(t, state.ResonanceHistory, "input state untouched")

	_, _, err = m.Trigger(next, domain.ResonanceLevelSync, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrResonanceNotEligible)
}

func TestTrigger_Rewards(t *testing.T) {
	m := newTestManager(t)

	// gap 24 prefers wisdom_sharing and is intense
	state := stateWithLevels(30, 6)
	ev, _, err := m.Trigger(state, domain.ResonanceWisdomSharing, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.IntensityIntense, ev.Intensity)
	assert.Equal(t, int64(float64(24*10+30*5)*1.6), ev.BonusXP)
	assert.Equal(t, map[domain.Attribute]int{
		domain.AttributeWisdom:        12,
		domain.AttributeCommunication: 12,
	}, ev.CrystalBonuses)
	assert.Equal(t, []string{TokenHarmonyProof, TokenGrowthMark, TokenBreakthroughMedal}, ev.RewardTokens)
	assert.Equal(t, StoryWisdomPath, ev.StoryUnlock)
}

func TestTrigger_NotEligible(t *testing.T) {
	m := newTestManager(t)

	_, _, err := m.Trigger(stateWithLevels(6, 5), domain.ResonanceLevelSync, testNow)
	assert.ErrorIs(t, err, domain.ErrResonanceNotEligible)

	_, _, err = m.Trigger(stateWithLevels(50, 5), domain.ResonanceLevelSync, testNow)
	assert.ErrorIs(t, err, domain.ErrResonanceNotEligible)

	_, _, err = m.Trigger(stateWithLevels(10, 5), "solar_flare", testNow)
	assert.ErrorIs(t, err, domain.ErrUnknownResonanceType)
}

func TestIntensityForGap(t *testing.T) {
	tests := []struct {
		gap      int
		expected domain.Intensity
	}{
		{5, domain.IntensityWeak},
		{7, domain.IntensityWeak},
		{8, domain.IntensityModerate},
		{12, domain.IntensityModerate},
		{13, domain.IntensityStrong},
		{20, domain.IntensityStrong},
		{21, domain.IntensityIntense},
		{30, domain.IntensityIntense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IntensityForGap(tt.gap), "gap %d", tt.gap)
	}
}

func TestRewardTokensAreCumulative(t *testing.T) {
	assert.Empty(t, RewardTokens(domain.IntensityWeak))
	assert.Equal(t, []string{TokenHarmonyProof}, RewardTokens(domain.IntensityModerate))
	assert.Equal(t, []string{TokenHarmonyProof, TokenGrowthMark}, RewardTokens(domain.IntensityStrong))
	assert.Subset(t, RewardTokens(domain.IntensityIntense), RewardTokens(domain.IntensityStrong))
}

func TestStoryUnlock(t *testing.T) {
	assert.Equal(t, "", StoryUnlock(domain.ResonanceEmotionalBond, 9))
	assert.Equal(t, StoryBreakthroughChapter, StoryUnlock(domain.ResonanceEmotionalBond, 10))
	assert.Equal(t, "", StoryUnlock(domain.ResonanceWisdomSharing, 19))
	assert.Equal(t, StoryWisdomPath, StoryUnlock(domain.ResonanceWisdomSharing, 20))
	assert.Equal(t, "", StoryUnlock(domain.ResonanceLevelSync, 90))
}

func TestEveryTypeHasTables(t *testing.T) {
	for _, rt := range domain.ResonanceTypes() {
		_, ok := typeMultiplier[rt]
		assert.True(t, ok, "multiplier for %s", rt)
		assert.Len(t, typeAttributes[rt], 2, "attributes for %s", rt)
	}
}
