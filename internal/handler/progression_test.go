package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/economy"
	"github.com/osse101/MindQuest_Go/internal/level"
	"github.com/osse101/MindQuest_Go/internal/progression"
	"github.com/osse101/MindQuest_Go/internal/resonance"
	"github.com/osse101/MindQuest_Go/mocks"
)

var handlerNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

// newTestRouter mounts the handlers on the same paths the server uses so chi fills URL params
func newTestRouter(h *ProgressionHandlers) http.Handler {
	r := chi.NewRouter()
	r.Post("/progression/users", h.HandleCreateState())
	r.Get("/progression/users/{userID}", h.HandleGetState())
	r.Post("/progression/users/{userID}/activities", h.HandleRecordActivity())
	r.Post("/progression/users/{userID}/companion-xp", h.HandleAwardCompanionXP())
	r.Post("/progression/users/{userID}/snapshots", h.HandleCaptureSnapshot())
	r.Get("/progression/users/{userID}/resonance/stats", h.HandleResonanceStats())
	r.Get("/progression/users/{userID}/resonance/forecast", h.HandleResonanceForecast())
	r.Get("/progression/users/{userID}/economy/report", h.HandleBalanceReport())
	r.Get("/progression/levels/{xp}", h.HandleLevelForXP())
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestProgressionHandlers_HandleCreateState(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		state := domain.NewProgressionState("user-1", handlerNow)
		mockSvc.On("CreateState", mock.Anything, "user-1").Return(state, nil)

		rec := doRequest(t, router, http.MethodPost, "/progression/users", CreateStateRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp domain.ProgressionState
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, 1, resp.PlayerLevel)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		mockSvc.On("CreateState", mock.Anything, "user-1").
			Return(nil, fmt.Errorf("%w: user-1", domain.ErrStateExists))

		rec := doRequest(t, router, http.MethodPost, "/progression/users", CreateStateRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, ErrMsgStateExistsError, decodeError(t, rec))
	})

	t.Run("MissingUserID", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodPost, "/progression/users", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Fields, "user_id")
		mockSvc.AssertNotCalled(t, "CreateState", mock.Anything, mock.Anything)
	})

	t.Run("UnknownField", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodPost, "/progression/users", `{"user_id":"u","admin":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decodeError(t, rec))
	})
}

func TestProgressionHandlers_HandleGetState(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		state := domain.NewProgressionState("user-1", handlerNow)
		state.TotalXP = 500
		state.PlayerLevel = 3
		state.CompanionXP = 100
		state.CompanionLevel = 2
		mockSvc.On("GetState", mock.Anything, "user-1").Return(state, nil)

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ProgressionStateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Player.Level)
		assert.Equal(t, int64(500), resp.Player.TotalXP)
		assert.Equal(t, 2, resp.Companion.Level)
		assert.Equal(t, level.CompanionPersonality(2), resp.Personality)
		require.NotNil(t, resp.State)
		assert.Equal(t, "user-1", resp.State.UserID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		mockSvc.On("GetState", mock.Anything, "ghost").
			Return(nil, fmt.Errorf("%w: ghost", domain.ErrStateNotFound))

		rec := doRequest(t, router, http.MethodGet, "/progression/users/ghost", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, ErrMsgStateNotFoundError, decodeError(t, rec))
	})
}

func TestProgressionHandlers_HandleRecordActivity(t *testing.T) {
	t.Run("DefaultsNeutralCoefficients", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		want := domain.ActivityDescriptor{
			Kind:             domain.ActivityTaskCompletion,
			Difficulty:       3,
			MoodCoefficient:  1.0,
			AssistMultiplier: 1.0,
		}
		result := &progression.ActivityResult{XPAwarded: 75, HarmonyBonus: 1.0}
		mockSvc.On("RecordActivity", mock.Anything, "user-1", want).Return(result, nil)

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/activities",
			`{"kind":"task_completion","difficulty":3}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp progression.ActivityResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(75), resp.XPAwarded)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/activities",
			`{"kind":"task_completion","difficulty":9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Fields, "difficulty")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/activities",
			`{"kind":"meditation","difficulty":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ServiceValidationError", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		vErr := domain.NewValidationError(domain.ErrInvalidActivity, "base_xp", int64(0), "must be positive")
		mockSvc.On("RecordActivity", mock.Anything, "user-1", mock.Anything).Return(nil, vErr)

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/activities",
			`{"kind":"reflection","difficulty":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "base_xp: must be positive", decodeError(t, rec))
	})

	t.Run("ConflictAfterRetries", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		mockSvc.On("RecordActivity", mock.Anything, "user-1", mock.Anything).
			Return(nil, fmt.Errorf("%w: user user-1 at version 4", domain.ErrConflict))

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/activities",
			`{"kind":"battle_outcome","difficulty":1}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProgressionHandlers_HandleAwardCompanionXP(t *testing.T) {
	mockSvc := mocks.NewMockProgressionService(t)
	router := newTestRouter(NewProgressionHandlers(mockSvc))

	mockSvc.On("AwardCompanionXP", mock.Anything, "user-1", int64(40)).
		Return(&progression.ActivityResult{CompanionXP: 40}, nil)

	rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/companion-xp", AwardCompanionXPRequest{Amount: 40})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/progression/users/user-1/companion-xp", AwardCompanionXPRequest{Amount: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressionHandlers_HandleCaptureSnapshot(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		day := domain.DailyActivity{
			CurrencyEarned: 150,
			CurrencySpent:  20,
			XPEarned:       300,
			TasksCreated:   4,
			TasksCompleted: 3,
			BattlesFought:  2,
			BattlesWon:     1,
		}
		result := &progression.SnapshotResult{
			Snapshot:    &domain.EconomicSnapshot{UserID: "user-1", DailyIncome: 150},
			Adjustments: []domain.BalanceAdjustment{{Metric: domain.MetricCoinInflation, Factor: 1.2}},
			Multipliers: domain.DefaultRewardMultipliers(),
			Changed:     true,
		}
		mockSvc.On("CaptureSnapshot", mock.Anything, "user-1", int64(900), day).Return(result, nil)

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/snapshots", CaptureSnapshotRequest{
			TotalCurrency:  900,
			CurrencyEarned: 150,
			CurrencySpent:  20,
			XPEarned:       300,
			TasksCreated:   4,
			TasksCompleted: 3,
			BattlesFought:  2,
			BattlesWon:     1,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp progression.SnapshotResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Changed)
		require.Len(t, resp.Adjustments, 1)
		assert.Equal(t, domain.MetricCoinInflation, resp.Adjustments[0].Metric)
	})

	t.Run("MoreWinsThanBattles", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodPost, "/progression/users/user-1/snapshots",
			CaptureSnapshotRequest{BattlesFought: 1, BattlesWon: 2})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProgressionHandlers_HandleResonanceForecast(t *testing.T) {
	t.Run("DefaultDays", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		forecast := make([]resonance.DailyProbability, DefaultForecastDays)
		mockSvc.On("ResonanceForecast", mock.Anything, "user-1", DefaultForecastDays).Return(forecast, nil)

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/resonance/forecast", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ForecastResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, DefaultForecastDays, resp.Days)
		assert.Len(t, resp.Forecast, DefaultForecastDays)
	})

	t.Run("MalformedDays", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/resonance/forecast?days=soon", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, fmt.Sprintf(ErrMsgInvalidQueryParam, "days"), decodeError(t, rec))
	})

	t.Run("OutOfRangeDays", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		vErr := domain.NewValidationError(domain.ErrInvalidForecastDays, "days", 90, "must be between 1 and 30")
		mockSvc.On("ResonanceForecast", mock.Anything, "user-1", 90).Return(nil, vErr)

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/resonance/forecast?days=90", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProgressionHandlers_HandleResonanceStats(t *testing.T) {
	mockSvc := mocks.NewMockProgressionService(t)
	router := newTestRouter(NewProgressionHandlers(mockSvc))

	stats := &resonance.Statistics{Total: 2, TotalBonusXP: 250}
	mockSvc.On("ResonanceStatistics", mock.Anything, "user-1").Return(stats, nil)

	rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/resonance/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp resonance.Statistics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(250), resp.TotalBonusXP)
}

func TestProgressionHandlers_HandleBalanceReport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		mockSvc.On("BalanceReport", mock.Anything, "user-1").
			Return(&economy.BalanceReport{Status: economy.StatusNoData}, nil)

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/economy/report", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp economy.BalanceReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, economy.StatusNoData, resp.Status)
	})

	t.Run("InternalErrorIsGeneric", func(t *testing.T) {
		mockSvc := mocks.NewMockProgressionService(t)
		router := newTestRouter(NewProgressionHandlers(mockSvc))

		mockSvc.On("BalanceReport", mock.Anything, "user-1").
			Return(nil, errors.New("connection reset by peer"))

		rec := doRequest(t, router, http.MethodGet, "/progression/users/user-1/economy/report", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, ErrMsgGenericServerError, decodeError(t, rec))
	})
}

func TestProgressionHandlers_HandleLevelForXP(t *testing.T) {
	router := newTestRouter(NewProgressionHandlers(mocks.NewMockProgressionService(t)))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLevel  int
	}{
		{"500 XP", "/progression/levels/500", http.StatusOK, 3},
		{"zero XP", "/progression/levels/0", http.StatusOK, 1},
		{"negative XP", "/progression/levels/-5", http.StatusBadRequest, 0},
		{"not a number", "/progression/levels/lots", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp level.Progression
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantLevel, resp.Level)
		})
	}
}
