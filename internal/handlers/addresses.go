package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

// ValidateAddressesRequest represents addresses to check for one coin
// swagger:model ValidateAddressesRequest
type ValidateAddressesRequest struct {
	// required: true
	// default: ETH
	Coin string `json:"coin"`

	// required: true
	Addresses []string `json:"addresses"`
}

// AddressResult is the verdict on one address
// swagger:model AddressResult
type AddressResult struct {
	Address        string `json:"address"`
	IsValidAddress bool   `json:"isValidAddress"`
	AddressError   string `json:"addressError,omitempty"`
}

// ValidateAddressesResponse lists the verdicts in request order
// swagger:model ValidateAddressesResponse
type ValidateAddressesResponse struct {
	Rows []AddressResult `json:"rows"`
}

// NewValidateAddressesHandler checks the format of addresses for a coin.
// @Summary Validate addresses
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body handlers.ValidateAddressesRequest true "Addresses"
// @Success 200 {object} handlers.ValidateAddressesResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /addresses/validate [post]
func NewValidateAddressesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateAddressesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.New(apperrors.ErrValidation, "invalid request body"))
			return
		}
		if strings.TrimSpace(req.Coin) == "" {
			writeError(w, apperrors.New(apperrors.ErrValidation, "coin is required"))
			return
		}

		resp := ValidateAddressesResponse{Rows: make([]AddressResult, len(req.Addresses))}
		for i, addr := range req.Addresses {
			res := validators.ValidateAddress(addr, req.Coin)
			resp.Rows[i] = AddressResult{
				Address:        strings.TrimSpace(addr),
				IsValidAddress: res.IsValid,
				AddressError:   res.Error,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
