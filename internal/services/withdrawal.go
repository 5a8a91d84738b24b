package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

// WithdrawalService performs single withdrawals and account lookups for request credentials.
type WithdrawalService struct {
	gateway ExchangeGateway
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(gateway ExchangeGateway) *WithdrawalService {
	return &WithdrawalService{gateway: gateway}
}

// Withdraw charges amount plus the network fee and delivers amount to the address.
// The balance must cover the total; a balance exactly equal to it is enough.
func (s *WithdrawalService) Withdraw(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) (models.WithdrawalReceipt, error) {
	req.Coin = strings.ToUpper(strings.TrimSpace(req.Coin))
	req.Network = strings.ToUpper(strings.TrimSpace(req.Network))
	req.Address = strings.TrimSpace(req.Address)

	if req.Coin == "" || req.Address == "" || req.Amount.IsZero() {
		return models.WithdrawalReceipt{}, apperrors.New(apperrors.ErrValidation, "Missing required fields: coin, amount, address")
	}
	if req.Amount.IsNegative() {
		return models.WithdrawalReceipt{}, apperrors.New(apperrors.ErrValidation, "Amount must be greater than zero")
	}
	if res := validators.ValidateAddress(req.Address, req.Coin); !res.IsValid {
		return models.WithdrawalReceipt{}, apperrors.New(apperrors.ErrValidation, res.Error)
	}

	fee, err := s.gateway.GetWithdrawalFee(ctx, creds, req.Coin, req.Network)
	if err != nil {
		return models.WithdrawalReceipt{}, err
	}
	total := req.Amount.Add(fee)

	balance, err := s.gateway.GetBalance(ctx, creds, req.Coin)
	if err != nil {
		return models.WithdrawalReceipt{}, err
	}
	if balance.LessThan(total) {
		logger.Log.Warnw("insufficient balance for withdrawal",
			"coin", req.Coin, "total", total.String(), "balance", balance.String())
		return models.WithdrawalReceipt{}, apperrors.Newf(apperrors.ErrInsufficientBalance,
			"Insufficient balance. Need %s %s but only have %s %s", total, req.Coin, balance, req.Coin)
	}

	sub, err := s.gateway.Withdraw(ctx, creds, models.WithdrawalRequest{
		Coin:     req.Coin,
		Amount:   total,
		Address:  req.Address,
		Network:  req.Network,
		ClientID: req.ClientID,
	})
	if err != nil {
		return models.WithdrawalReceipt{}, err
	}

	return models.WithdrawalReceipt{
		WithdrawalID:    sub.ID,
		TotalAmount:     total,
		Fee:             fee,
		AmountToReceive: req.Amount,
		Status:          models.ReceiptStatusInitiated,
	}, nil
}

// Balance returns the free balance of coin.
func (s *WithdrawalService) Balance(ctx context.Context, creds models.Credentials, coin string) (decimal.Decimal, error) {
	return s.gateway.GetBalance(ctx, creds, coin)
}

// Fee returns the withdrawal fee of coin on network.
func (s *WithdrawalService) Fee(ctx context.Context, creds models.Credentials, coin, network string) (decimal.Decimal, error) {
	return s.gateway.GetWithdrawalFee(ctx, creds, coin, network)
}

// Status returns the canonical status of a withdrawal.
func (s *WithdrawalService) Status(ctx context.Context, creds models.Credentials, withdrawalID string) (models.WithdrawalStatusInfo, error) {
	if strings.TrimSpace(withdrawalID) == "" {
		return models.WithdrawalStatusInfo{}, apperrors.New(apperrors.ErrValidation, "withdrawal id is required")
	}
	return s.gateway.FetchStatus(ctx, creds, withdrawalID)
}

// DepositAddress returns the deposit address of coin.
func (s *WithdrawalService) DepositAddress(ctx context.Context, creds models.Credentials, coin, network string) (models.DepositAddress, error) {
	return s.gateway.GetDepositAddress(ctx, creds, coin, network)
}

// Bind returns a BatchWithdrawer submitting through Withdraw with creds.
func (s *WithdrawalService) Bind(creds models.Credentials) *BoundWithdrawer {
	return &BoundWithdrawer{svc: s, creds: creds}
}

// BoundWithdrawer is a WithdrawalService tied to one key pair.
type BoundWithdrawer struct {
	svc   *WithdrawalService
	creds models.Credentials
}

// SubmitWithdrawal implements BatchWithdrawer.
func (b *BoundWithdrawer) SubmitWithdrawal(ctx context.Context, req models.WithdrawalRequest) (string, error) {
	receipt, err := b.svc.Withdraw(ctx, b.creds, req)
	if err != nil {
		return "", err
	}
	return receipt.WithdrawalID, nil
}
