package handlers

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	Balance(ctx context.Context, creds models.Credentials, coin string) (decimal.Decimal, error)
}

// BalanceResponse represents the free balance of a coin
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Free balance
	// default: 125.5
	Balance float64 `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the free balance of a coin.
// @Summary Get balance
// @Description Returns the free balance of a coin on the exchange account
// @Tags account
// @Produce json
// @Param coin path string true "Coin symbol"
// @Success 200 {object} handlers.BalanceResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /balance/{coin} [get]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewGetBalanceHandler(reader BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		coin := chi.URLParam(r, "coin")
		balance, err := reader.Balance(r.Context(), creds, coin)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "coin", coin, "api_key", creds.MaskedKey(), "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance.InexactFloat64()})
	}
}
