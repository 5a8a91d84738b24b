package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

func TestWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawer := NewMockWithdrawer(ctrl)
	handler := NewWithdrawHandler(mockWithdrawer)

	tests := []struct {
		name           string
		reqBody        any
		mockWithdraw   func()
		expectedStatus int
		expectedBody   any
	}{
		{
			name: "success",
			reqBody: WithdrawRequest{
				Coin:    "USDT",
				Amount:  decimal.NewFromInt(10),
				Address: ethAddr,
				Network: "ETH",
			},
			mockWithdraw: func() {
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), testCreds, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.Credentials, req models.WithdrawalRequest) (models.WithdrawalReceipt, error) {
						assert.Equal(t, "USDT", req.Coin)
						assert.Equal(t, ethAddr, req.Address)
						assert.Equal(t, "ETH", req.Network)
						assert.True(t, req.Amount.Equal(decimal.NewFromInt(10)))
						return models.WithdrawalReceipt{
							WithdrawalID:    "w-42",
							TotalAmount:     decimal.RequireFromString("11"),
							Fee:             decimal.RequireFromString("1"),
							AmountToReceive: decimal.RequireFromString("10"),
							Status:          models.ReceiptStatusInitiated,
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody: WithdrawResponse{
				WithdrawalID:    "w-42",
				TotalAmount:     11,
				Fee:             1,
				AmountToReceive: 10,
				Status:          "initiated",
			},
		},
		{
			name:    "insufficient_balance",
			reqBody: WithdrawRequest{Coin: "ETH", Amount: decimal.NewFromInt(10), Address: ethAddr},
			mockWithdraw: func() {
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), testCreds, gomock.Any()).
					Return(models.WithdrawalReceipt{}, apperrors.New(apperrors.ErrInsufficientBalance,
						"Insufficient balance. Need 10.1 ETH but only have 5 ETH"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Detail: "Insufficient balance. Need 10.1 ETH but only have 5 ETH"},
		},
		{
			name:    "missing_fields",
			reqBody: WithdrawRequest{Coin: "ETH"},
			mockWithdraw: func() {
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), testCreds, gomock.Any()).
					Return(models.WithdrawalReceipt{}, apperrors.New(apperrors.ErrValidation, "Missing required fields: coin, amount, address"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Detail: "Missing required fields: coin, amount, address"},
		},
		{
			name:    "exchange_rejected",
			reqBody: WithdrawRequest{Coin: "ETH", Amount: decimal.NewFromInt(1), Address: ethAddr},
			mockWithdraw: func() {
				mockWithdrawer.EXPECT().
					Withdraw(gomock.Any(), testCreds, gomock.Any()).
					Return(models.WithdrawalReceipt{}, apperrors.Wrap(apperrors.ErrWithdrawal, "Withdrawal failed", errors.New("address not in whitelist")))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Detail: "Withdrawal failed: address not in whitelist"},
		},
		{
			name:           "invalid_json",
			reqBody:        `invalid-json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrorResponse{Detail: "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockWithdraw != nil {
				tt.mockWithdraw()
			}

			var bodyBytes []byte
			switch v := tt.reqBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := newAuthedRequest(http.MethodPost, "/withdraw", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			switch expected := tt.expectedBody.(type) {
			case WithdrawResponse:
				var got WithdrawResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, expected, got)
			case ErrorResponse:
				assert.Equal(t, expected, decodeError(t, rec))
			}
		})
	}
}

func TestWithdrawHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewWithdrawHandler(NewMockWithdrawer(ctrl))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithdrawHandler_KeepsAmountPrecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawer := NewMockWithdrawer(ctrl)
	handler := NewWithdrawHandler(mockWithdrawer)

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "number_18_decimals", amount: `0.123456789012345678`, want: "0.123456789012345678"},
		{name: "number_large", amount: `1234567890.12345678`, want: "1234567890.12345678"},
		{name: "string", amount: `"0.000000000000000001"`, want: "0.000000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWithdrawer.EXPECT().
				Withdraw(gomock.Any(), testCreds, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ models.Credentials, req models.WithdrawalRequest) (models.WithdrawalReceipt, error) {
					assert.True(t, req.Amount.Equal(decimal.RequireFromString(tt.want)), "got %s", req.Amount)
					return models.WithdrawalReceipt{WithdrawalID: "w-1", Status: models.ReceiptStatusInitiated}, nil
				})

			body := `{"coin":"ETH","amount":` + tt.amount + `,"address":"` + ethAddr + `"}`
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newAuthedRequest(http.MethodPost, "/withdraw", bytes.NewReader([]byte(body))))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
