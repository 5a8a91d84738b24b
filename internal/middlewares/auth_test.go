package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

func TestCredentialsMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		key              string
		secret           string
		expectedStatus   int
		expectNextCalled bool
	}{
		{name: "NoHeaders", expectedStatus: http.StatusUnauthorized},
		{name: "KeyOnly", key: "k", expectedStatus: http.StatusUnauthorized},
		{name: "SecretOnly", secret: "s", expectedStatus: http.StatusUnauthorized},
		{name: "Blank", key: " ", secret: " ", expectedStatus: http.StatusUnauthorized},
		{name: "Both", key: "k", secret: "s", expectedStatus: http.StatusOK, expectNextCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var got models.Credentials
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, _ = CredentialsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/balance/USDT", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			if tt.secret != "" {
				req.Header.Set(APISecretHeader, tt.secret)
			}
			rr := httptest.NewRecorder()

			CredentialsMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectNextCalled {
				assert.Equal(t, models.Credentials{APIKey: tt.key, APISecret: tt.secret}, got)
			} else {
				assert.JSONEq(t, `{"detail":"API credentials required"}`, rr.Body.String())
			}
		})
	}
}

func TestCredentialsFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := CredentialsFromContext(req.Context())
	assert.False(t, ok)
}
