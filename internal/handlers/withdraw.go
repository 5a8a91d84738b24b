package handlers

//go:generate mockgen -source=withdraw.go -destination=withdraw_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// Withdrawer performs a single withdrawal.
type Withdrawer interface {
	Withdraw(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) (models.WithdrawalReceipt, error)
}

// WithdrawRequest represents the JSON body for a single withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Coin symbol
	// required: true
	// default: USDT
	Coin string `json:"coin"`

	// Amount the recipient receives; the fee is charged on top.
	// Accepts a JSON number or a decimal string.
	// required: true
	// default: 10.0
	Amount decimal.Decimal `json:"amount"`

	// Destination address
	// required: true
	Address string `json:"address"`

	// Network; the exchange default when omitted
	// default: TRC20
	Network string `json:"network,omitempty"`

	// Caller's own order id, forwarded to the exchange
	WithdrawOrderID string `json:"withdraw_order_id,omitempty"`
}

// WithdrawResponse represents an accepted withdrawal
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Exchange withdrawal id
	WithdrawalID string `json:"withdrawal_id"`

	// Amount charged to the account, fee included
	// default: 11.0
	TotalAmount float64 `json:"total_amount"`

	// Network fee
	// default: 1.0
	Fee float64 `json:"fee"`

	// Amount delivered to the address
	// default: 10.0
	AmountToReceive float64 `json:"amount_to_receive"`

	// Always "initiated"
	// default: initiated
	Status string `json:"status"`
}

// NewWithdrawHandler handles a single withdrawal.
// @Summary Withdraw crypto
// @Description Sends amount to address; amount plus the network fee must be covered by the balance
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /withdraw [post]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewWithdrawHandler(withdrawer Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.New(apperrors.ErrValidation, "invalid request body"))
			return
		}

		receipt, err := withdrawer.Withdraw(r.Context(), creds, models.WithdrawalRequest{
			Coin:     req.Coin,
			Amount:   req.Amount,
			Address:  req.Address,
			Network:  req.Network,
			ClientID: req.WithdrawOrderID,
		})
		if err != nil {
			logger.Log.Errorw("withdrawal failed",
				"coin", req.Coin, "network", req.Network, "address", req.Address, "amount", req.Amount.String(), "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawResponse{
			WithdrawalID:    receipt.WithdrawalID,
			TotalAmount:     receipt.TotalAmount.InexactFloat64(),
			Fee:             receipt.Fee.InexactFloat64(),
			AmountToReceive: receipt.AmountToReceive.InexactFloat64(),
			Status:          receipt.Status,
		})
	}
}
