package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		path         string
		cacheControl string
	}{
		{"user state is not cacheable", "/api/v1/progression/users/user-1", HeaderValueNoStore},
		{"level table is not cacheable", "/api/v1/progression/levels/500", HeaderValueNoStore},
		{"swagger assets keep default caching", "/swagger/index.html", ""},
		{"health probe keeps default caching", "/healthz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
			assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
			assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
			assert.Equal(t, tt.cacheControl, rec.Header().Get(HeaderCacheControl))
		})
	}
}
