package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// Headers carrying the exchange key pair.
const (
	APIKeyHeader    = "x-api-key"
	APISecretHeader = "x-api-secret"
)

type credentialsKey struct{}

// CredentialsMiddleware requires both key headers and stores the pair in the request context.
func CredentialsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := models.Credentials{
			APIKey:    strings.TrimSpace(r.Header.Get(APIKeyHeader)),
			APISecret: strings.TrimSpace(r.Header.Get(APISecretHeader)),
		}
		if creds.IsEmpty() {
			logger.Log.Warnw("authorization failed", "uri", r.RequestURI, "err", "missing credential headers")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "API credentials required"})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCredentials(r.Context(), creds)))
	})
}

// WithCredentials returns a copy of ctx carrying creds.
func WithCredentials(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext returns the pair stored by CredentialsMiddleware.
func CredentialsFromContext(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(models.Credentials)
	return creds, ok
}
