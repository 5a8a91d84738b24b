package handlers

//go:generate mockgen -source=deposit_address.go -destination=deposit_address_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// DepositAddressReader returns where a coin can be deposited.
type DepositAddressReader interface {
	DepositAddress(ctx context.Context, creds models.Credentials, coin, network string) (models.DepositAddress, error)
}

// DepositAddressResponse represents a deposit address
// swagger:model DepositAddressResponse
type DepositAddressResponse struct {
	// Deposit address
	Address string `json:"address"`

	// Memo or tag required by some networks
	Tag string `json:"tag,omitempty"`
}

// NewGetDepositAddressHandler returns an HTTP handler for fetching a deposit address.
// @Summary Get deposit address
// @Description Returns the account deposit address of a coin, optionally on a network
// @Tags account
// @Produce json
// @Param coin path string true "Coin symbol"
// @Param network query string false "Network"
// @Success 200 {object} handlers.DepositAddressResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /deposit-address/{coin} [get]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewGetDepositAddressHandler(reader DepositAddressReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		coin := chi.URLParam(r, "coin")
		network := r.URL.Query().Get("network")

		addr, err := reader.DepositAddress(r.Context(), creds, coin, network)
		if err != nil {
			logger.Log.Errorw("failed to get deposit address", "coin", coin, "network", network, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DepositAddressResponse{Address: addr.Address, Tag: addr.Tag})
	}
}
