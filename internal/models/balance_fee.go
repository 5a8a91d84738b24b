package models

import "github.com/shopspring/decimal"

// BalanceFeeSnapshot is the balance and withdrawal fee of one coin/network pair.
// Nil values mean "unknown"; a failed fetch leaves both nil.
type BalanceFeeSnapshot struct {
	Selection CoinNetworkSelection
	Balance   *decimal.Decimal
	Fee       *decimal.Decimal
	Loading   bool
	Error     string
}

// Ready reports whether both values are known.
func (s BalanceFeeSnapshot) Ready() bool {
	return !s.Loading && s.Error == "" && s.Balance != nil && s.Fee != nil
}
