package services

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// BalanceFeeService fetches the balance and the withdrawal fee of a coin/network pair together.
type BalanceFeeService struct {
	balances BalanceFetcher
	fees     FeeFetcher
}

// NewBalanceFeeService creates a new BalanceFeeService.
func NewBalanceFeeService(balances BalanceFetcher, fees FeeFetcher) *BalanceFeeService {
	return &BalanceFeeService{balances: balances, fees: fees}
}

// Fetch runs both lookups concurrently and waits for both. If either fails
// the snapshot carries the error and neither value.
func (s *BalanceFeeService) Fetch(ctx context.Context, sel models.CoinNetworkSelection) models.BalanceFeeSnapshot {
	var (
		g       errgroup.Group
		balance decimal.Decimal
		fee     decimal.Decimal
	)

	g.Go(func() error {
		var err error
		balance, err = s.balances.GetBalance(ctx, sel.Coin)
		return err
	})
	g.Go(func() error {
		var err error
		fee, err = s.fees.GetWithdrawalFee(ctx, sel.Coin, sel.Network)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to fetch balance and fee",
			"coin", sel.Coin, "network", sel.Network, "error", err)
		return models.BalanceFeeSnapshot{Selection: sel, Error: err.Error()}
	}

	logger.Log.Infow("balance and fee fetched",
		"coin", sel.Coin, "network", sel.Network, "balance", balance.String(), "fee", fee.String())
	return models.BalanceFeeSnapshot{Selection: sel, Balance: &balance, Fee: &fee}
}
