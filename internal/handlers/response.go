package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/middlewares"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// ErrorResponse is returned by every endpoint on failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: API credentials required
	Detail string `json:"detail"`
}

var errNoCredentials = apperrors.New(apperrors.ErrAuth, "API credentials required")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers 401 for authentication failures and 400 for everything else.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, apperrors.ErrAuth) {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, ErrorResponse{Detail: err.Error()})
}

func requestCredentials(r *http.Request) (models.Credentials, error) {
	creds, ok := middlewares.CredentialsFromContext(r.Context())
	if !ok || creds.IsEmpty() {
		return models.Credentials{}, errNoCredentials
	}
	return creds, nil
}
