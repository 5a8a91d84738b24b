package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WithdrawalRow is one (address, amount) unit of a batch.
// All rows of a batch share the coin and network of the enclosing session.
type WithdrawalRow struct {
	ID             string          `json:"id"`
	Address        string          `json:"address"`
	Amount         decimal.Decimal `json:"amount"`
	Status         RowStatus       `json:"status"`
	WithdrawalID   string          `json:"withdrawalId,omitempty"`
	IsValidAddress bool            `json:"isValidAddress"`
	AddressError   string          `json:"addressError,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// Advance moves the row to next, refusing anything but a forward step.
func (r *WithdrawalRow) Advance(next RowStatus) error {
	if !r.Status.CanAdvanceTo(next) {
		return fmt.Errorf("%w: row %s from %s to %s", ErrInvalidTransition, r.ID, r.Status, next)
	}
	r.Status = next
	return nil
}

// Submittable reports whether the row may be sent to the exchange.
func (r WithdrawalRow) Submittable() bool {
	return r.Amount.IsPositive() && r.IsValidAddress
}
