package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeResponseFail, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteResponseFail, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user messages.
// Rejected input is 400, a missing state 404, duplicates and exhausted retries 409.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, fmt.Sprintf("%s: %s", vErr.Field, vErr.Reason)
	}

	switch {
	case errors.Is(err, domain.ErrStateNotFound):
		return http.StatusNotFound, ErrMsgStateNotFoundError
	case errors.Is(err, domain.ErrStateExists):
		return http.StatusConflict, ErrMsgStateExistsError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrUnknownActivityKind):
		return http.StatusBadRequest, ErrMsgUnknownKindError
	case errors.Is(err, domain.ErrUnknownAttribute):
		return http.StatusBadRequest, ErrMsgUnknownAttrError
	case isInputError(err):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

var inputErrors = []error{
	domain.ErrValidation,
	domain.ErrInvalidUserID,
	domain.ErrInvalidXP,
	domain.ErrInvalidLevel,
	domain.ErrInvalidActivity,
	domain.ErrInvalidGrowthAmount,
	domain.ErrInvalidCrystalValue,
	domain.ErrInvalidGrowthRate,
	domain.ErrInvalidCurrency,
	domain.ErrInvalidForecastDays,
	domain.ErrUnknownGrowthEvent,
	domain.ErrUnknownResonanceType,
}

func isInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
