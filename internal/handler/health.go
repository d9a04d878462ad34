package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/MindQuest_Go/internal/database"
	"github.com/osse101/MindQuest_Go/internal/logger"
)

// ReadinessTimeout bounds all dependency checks behind /readyz
const ReadinessTimeout = 2 * time.Second

// ReadinessCheck is one named dependency probed by /readyz
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// DatabaseCheck probes the connection pool
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: CheckNameDatabase, Check: pool.Ping}
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz runs every check and reports 503 if any fails
// @Summary Readiness check
// @Description Returns OK if every dependency (database, ...) is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: HealthStatusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgReadinessFailed, "check", c.Name, "error", err)
				resp.Checks[c.Name] = HealthStatusUnavailable
				resp.Status = HealthStatusUnavailable
				resp.Message = HealthMsgDependencyFailed
				continue
			}
			resp.Checks[c.Name] = HealthStatusOK
		}

		status := http.StatusOK
		if resp.Status != HealthStatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
