package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/repository"
)

const stateColumns = `
	user_id, total_xp, player_level, companion_xp, companion_level,
	crystal_values, crystal_growth_rate, last_growth_event, resonance_last_fired,
	resonance_history, economic_snapshots, growth_history, multipliers,
	version, created_at, updated_at`

const insertStateQuery = `
	INSERT INTO progression_states (` + stateColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1, $14, $15)
	ON CONFLICT (user_id) DO NOTHING`

const selectStateQuery = `SELECT ` + stateColumns + ` FROM progression_states WHERE user_id = $1`

const updateStateQuery = `
	UPDATE progression_states SET
		total_xp = $2,
		player_level = $3,
		companion_xp = $4,
		companion_level = $5,
		crystal_values = $6,
		crystal_growth_rate = $7,
		last_growth_event = $8,
		resonance_last_fired = $9,
		resonance_history = $10,
		economic_snapshots = $11,
		growth_history = $12,
		multipliers = $13,
		updated_at = $14,
		version = version + 1
	WHERE user_id = $1 AND version = $15`

// ProgressionRepository stores one row per user with history kept in JSONB columns
type ProgressionRepository struct {
	db *pgxpool.Pool
}

var _ repository.Progression = (*ProgressionRepository)(nil)

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{db: db}
}

// Create inserts a fresh state at version 1
func (r *ProgressionRepository) Create(ctx context.Context, state *domain.ProgressionState) error {
	cols, err := encodeState(state)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, insertStateQuery,
		state.UserID, state.TotalXP, state.PlayerLevel, state.CompanionXP, state.CompanionLevel,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7],
		state.CreatedAt, state.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrStateExists, state.UserID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertState, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrStateExists, state.UserID)
	}
	state.Version = 1
	return nil
}

// Load reads a user's state, returning domain.ErrStateNotFound when absent
func (r *ProgressionRepository) Load(ctx context.Context, userID string) (*domain.ProgressionState, error) {
	state, err := scanState(r.db.QueryRow(ctx, selectStateQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrStateNotFound, userID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadState, err)
	}
	return state, nil
}

// Save writes the state if its version still matches the stored row
func (r *ProgressionRepository) Save(ctx context.Context, state *domain.ProgressionState) error {
	cols, err := encodeState(state)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, updateStateQuery,
		state.UserID, state.TotalXP, state.PlayerLevel, state.CompanionXP, state.CompanionLevel,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7],
		state.UpdatedAt, state.Version,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveState, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM progression_states WHERE user_id = $1)`, state.UserID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCheckStateExist, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrStateNotFound, state.UserID)
		}
		logger.FromContext(ctx).Debug(LogMsgStateConflict, "version", state.Version)
		return fmt.Errorf("%w: user %s at version %d", domain.ErrConflict, state.UserID, state.Version)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	state.Version++
	return nil
}

// ListUserIDs returns every user with stored state, ordered by id
func (r *ProgressionRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM progression_states ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanUserID, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListUsers, err)
	}
	return ids, nil
}

func encodeState(state *domain.ProgressionState) ([][]byte, error) {
	return jsonColumns(
		state.CrystalValues,
		state.CrystalGrowthRate,
		state.LastGrowthEvent,
		state.ResonanceLastFired,
		nonNil(state.ResonanceHistory),
		nonNil(state.EconomicSnapshots),
		nonNil(state.GrowthHistory),
		state.Multipliers,
	)
}

func scanState(row pgx.Row) (*domain.ProgressionState, error) {
	var (
		s                                         domain.ProgressionState
		values, rates, lastGrowth, lastFired      []byte
		resonance, snapshots, growth, multipliers []byte
	)
	err := row.Scan(
		&s.UserID, &s.TotalXP, &s.PlayerLevel, &s.CompanionXP, &s.CompanionLevel,
		&values, &rates, &lastGrowth, &lastFired,
		&resonance, &snapshots, &growth, &multipliers,
		&s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	columns := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"crystal_values", values, &s.CrystalValues},
		{"crystal_growth_rate", rates, &s.CrystalGrowthRate},
		{"last_growth_event", lastGrowth, &s.LastGrowthEvent},
		{"resonance_last_fired", lastFired, &s.ResonanceLastFired},
		{"resonance_history", resonance, &s.ResonanceHistory},
		{"economic_snapshots", snapshots, &s.EconomicSnapshots},
		{"growth_history", growth, &s.GrowthHistory},
		{"multipliers", multipliers, &s.Multipliers},
	}
	for _, c := range columns {
		if err := decodeColumn(c.name, c.raw, c.dst); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
