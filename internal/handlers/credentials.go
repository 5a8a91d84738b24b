package handlers

//go:generate mockgen -source=credentials.go -destination=credentials_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// CredentialTester probes a key pair against the exchange.
type CredentialTester interface {
	Test(ctx context.Context, creds models.Credentials) (models.CredentialCheck, error)
}

// TestCredentialsRequest represents the key pair to check
// swagger:model TestCredentialsRequest
type TestCredentialsRequest struct {
	// required: true
	APIKey string `json:"apiKey"`

	// required: true
	APISecret string `json:"apiSecret"`
}

// TestCredentialsResponse represents the outcome of a credential check
// swagger:model TestCredentialsResponse
type TestCredentialsResponse struct {
	Valid     bool     `json:"valid"`
	Message   string   `json:"message,omitempty"`
	Balance   *float64 `json:"balance,omitempty"`
	Error     string   `json:"error,omitempty"`
	DebugInfo string   `json:"debugInfo,omitempty"`
}

// NewTestCredentialsHandler returns an HTTP handler checking a key pair.
// A rejected key pair is reported with status 200 and valid=false.
// @Summary Test API credentials
// @Description Fetches the USDT balance with the given key pair and explains a failure
// @Tags credentials
// @Accept json
// @Produce json
// @Param request body handlers.TestCredentialsRequest true "Key pair"
// @Success 200 {object} handlers.TestCredentialsResponse
// @Failure 400 {object} handlers.TestCredentialsResponse
// @Failure 500 {object} handlers.TestCredentialsResponse
// @Router /test-credentials [post]
func NewTestCredentialsHandler(tester CredentialTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TestCredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("credential test request rejected", "error", err)
			writeJSON(w, http.StatusInternalServerError, TestCredentialsResponse{
				Error:     "Failed to test credentials",
				DebugInfo: err.Error(),
			})
			return
		}

		check, err := tester.Test(r.Context(), models.Credentials{APIKey: req.APIKey, APISecret: req.APISecret})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, apperrors.ErrValidation) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, TestCredentialsResponse{Error: check.Error})
			return
		}

		resp := TestCredentialsResponse{
			Valid:     check.Valid,
			Message:   check.Message,
			Error:     check.Error,
			DebugInfo: check.DebugInfo,
		}
		if check.Balance != nil {
			b := check.Balance.InexactFloat64()
			resp.Balance = &b
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
