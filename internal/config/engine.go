package config

import (
	"time"

	"github.com/osse101/MindQuest_Go/internal/economy"
	"github.com/osse101/MindQuest_Go/internal/progression"
	"github.com/osse101/MindQuest_Go/internal/resonance"
)

// EngineConfig tunes the progression engine, the service around it and the daily rebalance
type EngineConfig struct {
	ResonanceMinGap        int           `validate:"min=0"`
	ResonanceMaxGap        int           `validate:"gtefield=ResonanceMinGap"`
	ResonanceRequiredLevel int           `validate:"min=1"`
	ResonanceCooldown      time.Duration `validate:"gte=0s"`
	EconomyWindow          int           `validate:"min=1,max=90"`
	RetentionDays          int           `validate:"min=1"`
	MaxSaveAttempts        int           `validate:"min=1,max=20"`
	CacheSize              int           `validate:"min=1"`
	CacheTTL               time.Duration `validate:"gt=0s"`
	RebalanceSchedule      string        `validate:"required,cronspec"`
	RebalanceWorkers       int           `validate:"min=1,max=64"`
}

// DefaultEngineConfig returns the standard tuning
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ResonanceMinGap:        resonance.DefaultMinGap,
		ResonanceMaxGap:        resonance.DefaultMaxGap,
		ResonanceRequiredLevel: resonance.DefaultRequiredPlayerLevel,
		ResonanceCooldown:      resonance.DefaultCooldown,
		EconomyWindow:          economy.DefaultWindow,
		RetentionDays:          progression.DefaultRetentionDays,
		MaxSaveAttempts:        progression.DefaultMaxSaveAttempts,
		CacheSize:              progression.DefaultCacheSize,
		CacheTTL:               progression.DefaultCacheTTL,
		RebalanceSchedule:      DefaultRebalanceSchedule,
		RebalanceWorkers:       DefaultRebalanceWorkers,
	}
}

func loadEngineConfig() EngineConfig {
	d := DefaultEngineConfig()
	return EngineConfig{
		ResonanceMinGap:        getEnvAsInt("RESONANCE_MIN_GAP", d.ResonanceMinGap),
		ResonanceMaxGap:        getEnvAsInt("RESONANCE_MAX_GAP", d.ResonanceMaxGap),
		ResonanceRequiredLevel: getEnvAsInt("RESONANCE_REQUIRED_LEVEL", d.ResonanceRequiredLevel),
		ResonanceCooldown:      getEnvAsDuration("RESONANCE_COOLDOWN", d.ResonanceCooldown),
		EconomyWindow:          getEnvAsInt("ECONOMY_WINDOW", d.EconomyWindow),
		RetentionDays:          getEnvAsInt("HISTORY_RETENTION_DAYS", d.RetentionDays),
		MaxSaveAttempts:        getEnvAsInt("MAX_SAVE_ATTEMPTS", d.MaxSaveAttempts),
		CacheSize:              getEnvAsInt("STATE_CACHE_SIZE", d.CacheSize),
		CacheTTL:               getEnvAsDuration("STATE_CACHE_TTL", d.CacheTTL),
		RebalanceSchedule:      getEnv("REBALANCE_SCHEDULE", d.RebalanceSchedule),
		RebalanceWorkers:       getEnvAsInt("REBALANCE_WORKERS", d.RebalanceWorkers),
	}
}

// Validate checks the tuning against its struct tags
func (c EngineConfig) Validate() error {
	return engineValidator.Struct(c)
}

// ResonanceConfig returns the resonance manager settings
func (c EngineConfig) ResonanceConfig() resonance.Config {
	return resonance.Config{
		MinGap:              c.ResonanceMinGap,
		MaxGap:              c.ResonanceMaxGap,
		RequiredPlayerLevel: c.ResonanceRequiredLevel,
		Cooldown:            c.ResonanceCooldown,
	}
}

// EconomyConfig returns the balance controller settings with the standard bands
func (c EngineConfig) EconomyConfig() economy.Config {
	cfg := economy.DefaultConfig()
	cfg.Window = c.EconomyWindow
	return cfg
}

// ServiceConfig returns the progression service settings
func (c EngineConfig) ServiceConfig() progression.Config {
	return progression.Config{
		MaxSaveAttempts: c.MaxSaveAttempts,
		RetentionDays:   c.RetentionDays,
		CacheSize:       c.CacheSize,
		CacheTTL:        c.CacheTTL,
	}
}
