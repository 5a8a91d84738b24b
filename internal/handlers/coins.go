package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// CoinsResponse lists the coins offered for selection
// swagger:model CoinsResponse
type CoinsResponse struct {
	Coins []models.Coin `json:"coins"`
}

// NewGetCoinsHandler returns the known coins and their networks.
// Coins outside the list may still be used with any network.
// @Summary List coins
// @Tags catalog
// @Produce json
// @Success 200 {object} handlers.CoinsResponse
// @Router /coins [get]
func NewGetCoinsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CoinsResponse{Coins: models.KnownCoins})
	}
}
