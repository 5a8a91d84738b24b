package models

import "github.com/shopspring/decimal"

// ReceiptStatusInitiated is the status of a freshly accepted withdrawal.
const ReceiptStatusInitiated = "initiated"

// WithdrawalRequest asks for amount of coin to be delivered to address.
// ClientID, when set, is forwarded to the exchange as the caller's own order id.
type WithdrawalRequest struct {
	Coin     string
	Amount   decimal.Decimal
	Address  string
	Network  string
	ClientID string
}

// SubmittedWithdrawal is what the exchange returned for an accepted submission.
type SubmittedWithdrawal struct {
	ID  string
	Raw any
}

// WithdrawalReceipt is the server's answer to a single withdrawal.
// TotalAmount is what leaves the account: AmountToReceive plus Fee.
type WithdrawalReceipt struct {
	WithdrawalID    string
	TotalAmount     decimal.Decimal
	Fee             decimal.Decimal
	AmountToReceive decimal.Decimal
	Status          string
}

// WithdrawalStatusInfo is a canonical status plus the exchange record it came from.
type WithdrawalStatusInfo struct {
	Status RowStatus
	Raw    any
}

// DepositAddress is where a coin can be deposited into the account.
type DepositAddress struct {
	Address string
	Tag     string
}

// CredentialCheck is the outcome of probing a key pair against the exchange.
type CredentialCheck struct {
	Valid     bool
	Message   string
	Balance   *decimal.Decimal
	Error     string
	DebugInfo string
}
