package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func TestAttributes(t *testing.T) {
	attrs := Attributes()
	require.Len(t, attrs, 8)
	assert.Equal(t, AttributeSelfDiscipline, attrs[0])
	assert.Equal(t, AttributeWisdom, attrs[7])

	// callers get a copy
	attrs[0] = "tampered"
	assert.Equal(t, AttributeSelfDiscipline, Attributes()[0])

	assert.True(t, AttributeCourage.Valid())
	assert.False(t, Attribute("luck").Valid())
	assert.False(t, Attribute("").Valid())
}

func TestEnumValidity(t *testing.T) {
	for _, k := range ActivityKinds() {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, ActivityKind("meditation").Valid())

	for _, e := range GrowthEvents() {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, GrowthEvent("nap").Valid())

	types := ResonanceTypes()
	require.Len(t, types, 4)
	assert.Equal(t, ResonanceLevelSync, types[0])
	assert.False(t, ResonanceType("cosmic").Valid())

	assert.Len(t, BalanceMetrics(), 4)
}

func TestNewProgressionState(t *testing.T) {
	s := NewProgressionState("user-1", testNow)

	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, 1, s.PlayerLevel)
	assert.Equal(t, 1, s.CompanionLevel)
	assert.Zero(t, s.TotalXP)
	assert.Zero(t, s.Version)
	assert.Len(t, s.CrystalValues, 8)
	for _, attr := range Attributes() {
		assert.Equal(t, 0, s.CrystalValues[attr])
		assert.Equal(t, 1.0, s.CrystalGrowthRate[attr])
	}
	assert.Equal(t, DefaultRewardMultipliers(), s.Multipliers)
	assert.Equal(t, testNow, s.CreatedAt)
	assert.Equal(t, testNow, s.UpdatedAt)
}

func TestClone_IsDeep(t *testing.T) {
	assert.Nil(t, (*ProgressionState)(nil).Clone())

	s := NewProgressionState("user-1", testNow)
	s.LastGrowthEvent[AttributeEmpathy] = testNow
	s.ResonanceLastFired[ResonanceLevelSync] = testNow
	s.ResonanceHistory = []ResonanceEvent{{
		ID:             "res-1",
		CrystalBonuses: map[Attribute]int{AttributeEmpathy: 1},
		RewardTokens:   []string{"sync_badge"},
	}}
	s.EconomicSnapshots = []EconomicSnapshot{{ID: "snap-1", DailyIncome: 100}}
	s.GrowthHistory = []CrystalGrowthRecord{{ID: "g-1", Applied: 3}}

	c := s.Clone()
	require.Equal(t, s, c)

	c.CrystalValues[AttributeEmpathy] = 50
	c.CrystalGrowthRate[AttributeEmpathy] = 2
	c.LastGrowthEvent[AttributeCourage] = testNow
	c.ResonanceLastFired[ResonanceEmotionalBond] = testNow
	c.ResonanceHistory[0].CrystalBonuses[AttributeEmpathy] = 9
	c.ResonanceHistory[0].RewardTokens[0] = "other"
	c.EconomicSnapshots[0].DailyIncome = 1
	c.GrowthHistory[0].Applied = 0

	assert.Equal(t, 0, s.CrystalValues[AttributeEmpathy])
	assert.Equal(t, 1.0, s.CrystalGrowthRate[AttributeEmpathy])
	assert.NotContains(t, s.LastGrowthEvent, AttributeCourage)
	assert.NotContains(t, s.ResonanceLastFired, ResonanceEmotionalBond)
	assert.Equal(t, 1, s.ResonanceHistory[0].CrystalBonuses[AttributeEmpathy])
	assert.Equal(t, "sync_badge", s.ResonanceHistory[0].RewardTokens[0])
	assert.Equal(t, int64(100), s.EconomicSnapshots[0].DailyIncome)
	assert.Equal(t, 3, s.GrowthHistory[0].Applied)
}

func TestPruneBefore(t *testing.T) {
	s := NewProgressionState("user-1", testNow)
	old := testNow.AddDate(0, 0, -40)
	cutoff := testNow.AddDate(0, 0, -30)

	s.ResonanceHistory = []ResonanceEvent{{ID: "old", TriggeredAt: old}, {ID: "new", TriggeredAt: testNow}}
	s.EconomicSnapshots = []EconomicSnapshot{{ID: "old", CapturedAt: old}, {ID: "edge", CapturedAt: cutoff}}
	s.GrowthHistory = []CrystalGrowthRecord{{ID: "old", OccurredAt: old}}

	s.PruneBefore(cutoff)

	require.Len(t, s.ResonanceHistory, 1)
	assert.Equal(t, "new", s.ResonanceHistory[0].ID)
	require.Len(t, s.EconomicSnapshots, 1)
	assert.Equal(t, "edge", s.EconomicSnapshots[0].ID, "entries at the cutoff are kept")
	assert.Empty(t, s.GrowthHistory)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(ErrInvalidXP, "amount", -5, "must be non-negative")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrInvalidXP))
	assert.False(t, errors.Is(err, ErrInvalidLevel))
	assert.True(t, IsValidation(err))
	assert.Equal(t, "experience must be non-negative: amount=-5: must be non-negative", err.Error())

	wrapped := fmt.Errorf("award: %w", err)
	assert.True(t, IsValidation(wrapped))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "amount", ve.Field)

	assert.False(t, IsValidation(fmt.Errorf("%w: user-1", ErrStateNotFound)))
}
