package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MindQuest_Go/internal/crystal"
	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/level"
	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/progression"
	"github.com/osse101/MindQuest_Go/internal/resonance"
)

// DefaultForecastDays is used when the forecast request omits days
const DefaultForecastDays = 7

// CreateStateRequest onboards a user
type CreateStateRequest struct {
	UserID string `json:"user_id" validate:"required,max=128,printascii,excludes=/"`
}

// RecordActivityRequest describes one completed activity.
// Omitted mood and assist values are neutral (1.0).
type RecordActivityRequest struct {
	Kind             domain.ActivityKind `json:"kind" validate:"required,activity_kind"`
	Difficulty       int                 `json:"difficulty" validate:"min=1,max=5"`
	MoodCoefficient  *float64            `json:"mood_coefficient,omitempty" validate:"omitempty,gte=0.8,lte=1.2"`
	AssistMultiplier *float64            `json:"assist_multiplier,omitempty" validate:"omitempty,gte=1,lte=1.3"`
	Priority         domain.Priority     `json:"priority,omitempty" validate:"priority"`
	EfficiencyBonus  float64             `json:"efficiency_bonus,omitempty" validate:"gte=0,lte=0.2"`
	BaseXP           int64               `json:"base_xp,omitempty" validate:"gte=0"`
	Attribute        domain.Attribute    `json:"attribute,omitempty" validate:"attribute"`
	CompanionXP      int64               `json:"companion_xp,omitempty" validate:"gte=0"`
}

// Descriptor converts the request into the engine's activity input
func (r RecordActivityRequest) Descriptor() domain.ActivityDescriptor {
	mood, assist := 1.0, 1.0
	if r.MoodCoefficient != nil {
		mood = *r.MoodCoefficient
	}
	if r.AssistMultiplier != nil {
		assist = *r.AssistMultiplier
	}
	return domain.ActivityDescriptor{
		Kind:             r.Kind,
		Difficulty:       r.Difficulty,
		MoodCoefficient:  mood,
		AssistMultiplier: assist,
		Priority:         r.Priority,
		EfficiencyBonus:  r.EfficiencyBonus,
		BaseXP:           r.BaseXP,
		Attribute:        r.Attribute,
		CompanionXP:      r.CompanionXP,
	}
}

// AwardCompanionXPRequest grants companion XP directly
type AwardCompanionXPRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// CaptureSnapshotRequest records one day of economy counters
type CaptureSnapshotRequest struct {
	TotalCurrency  int64 `json:"total_currency" validate:"gte=0"`
	CurrencyEarned int64 `json:"currency_earned" validate:"gte=0"`
	CurrencySpent  int64 `json:"currency_spent" validate:"gte=0"`
	XPEarned       int64 `json:"xp_earned" validate:"gte=0"`
	TasksCreated   int   `json:"tasks_created" validate:"gte=0"`
	TasksCompleted int   `json:"tasks_completed" validate:"gte=0"`
	BattlesFought  int   `json:"battles_fought" validate:"gte=0"`
	BattlesWon     int   `json:"battles_won" validate:"gte=0,ltefield=BattlesFought"`
}

// ProgressionStateResponse is the public view of a user's progression
type ProgressionStateResponse struct {
	State          *domain.ProgressionState `json:"state"`
	Player         level.Progression        `json:"player"`
	Companion      level.Progression        `json:"companion"`
	Personality    level.Personality        `json:"companion_personality"`
	ResonanceLevel int                      `json:"resonance_level"`
	HarmonyBonus   float64                  `json:"harmony_bonus"`
}

// ForecastResponse lists the daily resonance probabilities
type ForecastResponse struct {
	Days     int                          `json:"days"`
	Forecast []resonance.DailyProbability `json:"forecast"`
}

// ProgressionHandlers contains HTTP handlers for the progression engine
type ProgressionHandlers struct {
	service progression.Service
}

// NewProgressionHandlers creates new progression handlers
func NewProgressionHandlers(service progression.Service) *ProgressionHandlers {
	return &ProgressionHandlers{service: service}
}

// HandleCreateState onboards a new user at level 1
// @Summary Create progression state
// @Tags progression
// @Accept json
// @Produce json
// @Param request body CreateStateRequest true "User to onboard"
// @Success 201 {object} domain.ProgressionState
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /progression/users [post]
func (h *ProgressionHandlers) HandleCreateState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create state"); err != nil {
			return
		}

		state, err := h.service.CreateState(r.Context(), req.UserID)
		if err != nil {
			respondServiceError(w, r, "Create state", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgRequestSucceeded, "operation", "Create state", "user_id", req.UserID)
		respondJSON(w, http.StatusCreated, state)
	}
}

// HandleGetState returns the user's state with derived level progress
// @Summary Get progression state
// @Tags progression
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} ProgressionStateResponse
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID} [get]
func (h *ProgressionHandlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		state, err := h.service.GetState(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}

		player, err := level.Progress(state.TotalXP)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}
		companion, err := level.Progress(state.CompanionXP)
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}

		respondJSON(w, http.StatusOK, ProgressionStateResponse{
			State:          state,
			Player:         player,
			Companion:      companion,
			Personality:    level.CompanionPersonality(companion.Level),
			ResonanceLevel: crystal.ResonanceLevel(state.CrystalValues),
			HarmonyBonus:   crystal.HarmonyBonus(state.CrystalValues),
		})
	}
}

// HandleRecordActivity applies one activity to the user's progression
// @Summary Record activity
// @Tags progression
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body RecordActivityRequest true "Activity"
// @Success 200 {object} progression.ActivityResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /progression/users/{userID}/activities [post]
func (h *ProgressionHandlers) HandleRecordActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		var req RecordActivityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record activity"); err != nil {
			return
		}

		result, err := h.service.RecordActivity(r.Context(), userID, req.Descriptor())
		if err != nil {
			respondServiceError(w, r, "Record activity", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgRequestSucceeded,
			"operation", "Record activity",
			"user_id", userID,
			"xp", result.XPAwarded,
			"resonance", result.Resonance != nil)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleAwardCompanionXP grants XP to the user's companion
// @Summary Award companion XP
// @Tags progression
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body AwardCompanionXPRequest true "Amount"
// @Success 200 {object} progression.ActivityResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID}/companion-xp [post]
func (h *ProgressionHandlers) HandleAwardCompanionXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		var req AwardCompanionXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award companion XP"); err != nil {
			return
		}

		result, err := h.service.AwardCompanionXP(r.Context(), userID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Award companion XP", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCaptureSnapshot records the day's economy and recomputes multipliers
// @Summary Capture economic snapshot
// @Tags economy
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body CaptureSnapshotRequest true "Daily counters"
// @Success 201 {object} progression.SnapshotResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID}/snapshots [post]
func (h *ProgressionHandlers) HandleCaptureSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		var req CaptureSnapshotRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Capture snapshot"); err != nil {
			return
		}

		day := domain.DailyActivity{
			CurrencyEarned: req.CurrencyEarned,
			CurrencySpent:  req.CurrencySpent,
			XPEarned:       req.XPEarned,
			TasksCreated:   req.TasksCreated,
			TasksCompleted: req.TasksCompleted,
			BattlesFought:  req.BattlesFought,
			BattlesWon:     req.BattlesWon,
		}
		result, err := h.service.CaptureSnapshot(r.Context(), userID, req.TotalCurrency, day)
		if err != nil {
			respondServiceError(w, r, "Capture snapshot", err)
			return
		}
		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleResonanceStats summarises the user's resonance history
// @Summary Resonance statistics
// @Tags resonance
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} resonance.Statistics
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID}/resonance/stats [get]
func (h *ProgressionHandlers) HandleResonanceStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.service.ResonanceStatistics(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Resonance statistics", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleResonanceForecast estimates resonance chances for the next days
// @Summary Resonance forecast
// @Tags resonance
// @Produce json
// @Param userID path string true "User ID"
// @Param days query int false "Days to forecast (1-30, default 7)"
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID}/resonance/forecast [get]
func (h *ProgressionHandlers) HandleResonanceForecast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := GetIntQueryParam(r, w, "days", DefaultForecastDays)
		if !ok {
			return
		}

		forecast, err := h.service.ResonanceForecast(r.Context(), chi.URLParam(r, "userID"), days)
		if err != nil {
			respondServiceError(w, r, "Resonance forecast", err)
			return
		}
		respondJSON(w, http.StatusOK, ForecastResponse{Days: days, Forecast: forecast})
	}
}

// HandleBalanceReport scores the user's recent economy and progression
// @Summary Balance report
// @Tags economy
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} economy.BalanceReport
// @Failure 404 {object} ErrorResponse
// @Router /progression/users/{userID}/economy/report [get]
func (h *ProgressionHandlers) HandleBalanceReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.service.BalanceReport(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Balance report", err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleLevelForXP reports where a total XP value sits on the level curve
// @Summary Level for XP
// @Tags progression
// @Produce json
// @Param xp path int true "Total XP"
// @Success 200 {object} level.Progression
// @Failure 400 {object} ErrorResponse
// @Router /progression/levels/{xp} [get]
func (h *ProgressionHandlers) HandleLevelForXP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		xp, ok := GetInt64PathParam(r, w, "xp")
		if !ok {
			return
		}

		p, err := level.Progress(xp)
		if err != nil {
			respondServiceError(w, r, "Level for XP", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}
