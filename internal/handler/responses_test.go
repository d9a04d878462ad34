package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", fmt.Errorf("%w: u", domain.ErrStateNotFound), http.StatusNotFound, ErrMsgStateNotFoundError},
		{"exists", fmt.Errorf("%w: u", domain.ErrStateExists), http.StatusConflict, ErrMsgStateExistsError},
		{"conflict", fmt.Errorf("wrapped: %w", domain.ErrConflict), http.StatusConflict, ErrMsgConflictError},
		{"unknown kind", domain.ErrUnknownActivityKind, http.StatusBadRequest, ErrMsgUnknownKindError},
		{"unknown attribute", domain.ErrUnknownAttribute, http.StatusBadRequest, ErrMsgUnknownAttrError},
		{"invalid xp", fmt.Errorf("%w: -1", domain.ErrInvalidXP), http.StatusBadRequest, ErrMsgInvalidInputError},
		{
			"validation error",
			domain.NewValidationError(domain.ErrInvalidGrowthAmount, "amount", 0, "must be positive"),
			http.StatusBadRequest,
			"amount: must be positive",
		},
		{"internal", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)
}

func TestBufferPool_DropsOversizedBuffers(t *testing.T) {
	buf := getBuffer()
	assert.Zero(t, buf.Len())
	buf.WriteString("state")
	putBuffer(buf)

	reused := getBuffer()
	assert.Zero(t, reused.Len(), "buffers come back reset")
	putBuffer(reused)

	big := getBuffer()
	big.Grow(maxPooledBufferSize * 2)
	putBuffer(big)
	assert.Greater(t, big.Len()+big.Cap(), maxPooledBufferSize, "oversized buffer was left untouched")
}
