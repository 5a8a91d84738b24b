package handlers

//go:generate mockgen -source=status.go -destination=status_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// StatusReader returns the canonical status of a withdrawal.
type StatusReader interface {
	Status(ctx context.Context, creds models.Credentials, withdrawalID string) (models.WithdrawalStatusInfo, error)
}

// StatusResponse represents the state of one withdrawal
// swagger:model StatusResponse
type StatusResponse struct {
	// Canonical status: processing, completed or failed
	// default: processing
	Status string `json:"status"`

	// Exchange record the status was derived from
	Details any `json:"details"`
}

// NewGetWithdrawalStatusHandler returns an HTTP handler for fetching a withdrawal status.
// @Summary Get withdrawal status
// @Description Looks the withdrawal up in the account history
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal id"
// @Success 200 {object} handlers.StatusResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /withdrawal-status/{id} [get]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewGetWithdrawalStatusHandler(reader StatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		id := chi.URLParam(r, "id")
		info, err := reader.Status(r.Context(), creds, id)
		if err != nil {
			logger.Log.Errorw("failed to get withdrawal status", "withdrawal_id", id, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{Status: string(info.Status), Details: info.Raw})
	}
}
