package handlers

//go:generate mockgen -source=fee.go -destination=fee_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// FeeReader returns the withdrawal fee of a coin/network pair.
type FeeReader interface {
	Fee(ctx context.Context, creds models.Credentials, coin, network string) (decimal.Decimal, error)
}

// FeeResponse represents the withdrawal fee of a coin
// swagger:model FeeResponse
type FeeResponse struct {
	// Fee charged per withdrawal, in the coin
	// default: 1.0
	Fee float64 `json:"fee"`
}

// NewGetWithdrawalFeeHandler returns an HTTP handler for fetching a withdrawal fee.
// @Summary Get withdrawal fee
// @Description Returns the fee charged for withdrawing a coin over a network
// @Tags account
// @Produce json
// @Param coin path string true "Coin symbol"
// @Param network query string false "Network; the first listed network when omitted"
// @Success 200 {object} handlers.FeeResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /withdrawal-fee/{coin} [get]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewGetWithdrawalFeeHandler(reader FeeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		coin := chi.URLParam(r, "coin")
		network := r.URL.Query().Get("network")

		fee, err := reader.Fee(r.Context(), creds, coin, network)
		if err != nil {
			logger.Log.Errorw("failed to get withdrawal fee", "coin", coin, "network", network, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, FeeResponse{Fee: fee.InexactFloat64()})
	}
}
