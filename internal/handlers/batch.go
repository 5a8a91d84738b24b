package handlers

//go:generate mockgen -source=batch.go -destination=batch_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

// BatchRunner submits the rows of a batch in order.
type BatchRunner interface {
	RunBatch(ctx context.Context, creds models.Credentials, rows []models.WithdrawalRow, sel models.CoinNetworkSelection) []models.WithdrawalRow
}

// BatchRowRequest is one destination of a batch
// swagger:model BatchRowRequest
type BatchRowRequest struct {
	// Caller supplied row id; generated when omitted
	ID string `json:"id,omitempty"`

	// Destination address
	// required: true
	Address string `json:"address"`

	// Amount the recipient receives, a JSON number or a decimal string
	// required: true
	Amount decimal.Decimal `json:"amount"`
}

// BatchWithdrawRequest represents the JSON body for a batch withdrawal
// swagger:model BatchWithdrawRequest
type BatchWithdrawRequest struct {
	// Coin shared by every row
	// required: true
	// default: USDT
	Coin string `json:"coin"`

	// Network shared by every row; the coin default when omitted
	// default: ETH
	Network string `json:"network"`

	// Destinations, submitted in this order
	Rows []BatchRowRequest `json:"rows"`
}

// BatchRowResponse is the outcome of one row
// swagger:model BatchRowResponse
type BatchRowResponse struct {
	ID             string  `json:"id"`
	Address        string  `json:"address"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	WithdrawalID   string  `json:"withdrawalId,omitempty"`
	IsValidAddress bool    `json:"isValidAddress"`
	AddressError   string  `json:"addressError,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// BatchWithdrawResponse represents the outcome of a batch
// swagger:model BatchWithdrawResponse
type BatchWithdrawResponse struct {
	Coin    string             `json:"coin"`
	Network string             `json:"network"`
	Rows    []BatchRowResponse `json:"rows"`
}

// NewBatchWithdrawHandler handles a batch withdrawal.
// @Summary Batch withdraw
// @Description Submits every row one after another with a pause in between. A failing row does not stop the batch.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body handlers.BatchWithdrawRequest true "Batch Withdraw Request"
// @Success 200 {object} handlers.BatchWithdrawResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /batch-withdraw [post]
// @Security ApiKeyAuth
// @Security ApiSecretAuth
func NewBatchWithdrawHandler(runner BatchRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := requestCredentials(r)
		if err != nil {
			writeError(w, err)
			return
		}

		var req BatchWithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.New(apperrors.ErrValidation, "invalid request body"))
			return
		}

		sel := models.NewSelection(req.Coin, req.Network)
		if err := sel.Validate(); err != nil {
			writeError(w, err)
			return
		}
		if len(req.Rows) == 0 {
			writeError(w, apperrors.New(apperrors.ErrValidation, "at least one row is required"))
			return
		}

		rows := make([]models.WithdrawalRow, len(req.Rows))
		for i, in := range req.Rows {
			id := strings.TrimSpace(in.ID)
			if id == "" {
				id = uuid.NewString()
			}
			rows[i] = models.WithdrawalRow{
				ID:      id,
				Address: strings.TrimSpace(in.Address),
				Amount:  in.Amount,
			}
			validators.ApplyTo(&rows[i], sel.Coin)
		}

		logger.Log.Infow("batch withdrawal requested",
			"coin", sel.Coin, "network", sel.Network, "rows", len(rows), "api_key", creds.MaskedKey())

		out := runner.RunBatch(r.Context(), creds, rows, sel)

		resp := BatchWithdrawResponse{
			Coin:    sel.Coin,
			Network: sel.Network,
			Rows:    make([]BatchRowResponse, len(out)),
		}
		for i, row := range out {
			resp.Rows[i] = BatchRowResponse{
				ID:             row.ID,
				Address:        row.Address,
				Amount:         row.Amount.InexactFloat64(),
				Status:         string(row.Status),
				WithdrawalID:   row.WithdrawalID,
				IsValidAddress: row.IsValidAddress,
				AddressError:   row.AddressError,
				Error:          row.Error,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
