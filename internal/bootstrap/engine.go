package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MindQuest_Go/internal/config"
	"github.com/osse101/MindQuest_Go/internal/crystal"
	"github.com/osse101/MindQuest_Go/internal/economy"
	"github.com/osse101/MindQuest_Go/internal/progression"
	"github.com/osse101/MindQuest_Go/internal/resonance"
)

// InitializeEngine builds the progression engine from the validated engine settings
func InitializeEngine(cfg config.EngineConfig) (*progression.Engine, error) {
	resonanceMgr, err := resonance.NewManager(cfg.ResonanceConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResonance, err)
	}

	economyCtrl, err := economy.NewController(cfg.EconomyConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateEconomy, err)
	}

	synergies := crystal.DefaultSynergies()
	slog.Info(LogMsgEngineInitialized,
		"resonance_min_gap", cfg.ResonanceMinGap,
		"resonance_max_gap", cfg.ResonanceMaxGap,
		"economy_window", cfg.EconomyWindow,
		"synergies", len(synergies))

	return progression.NewEngine(resonanceMgr, economyCtrl, synergies), nil
}
