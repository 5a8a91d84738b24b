// Package validators checks destination addresses before anything reaches the exchange.
package validators

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

const (
	MsgAddressRequired = "Address is required"
	MsgInvalidEthereum = "Invalid Ethereum address. Must start with 0x and be 42 characters long."
	MsgInvalidBitcoin  = "Invalid Bitcoin address format."
	MsgInvalidLength   = "Address must be between 20 and 100 characters."
)

const (
	minGenericLength = 20
	maxGenericLength = 100
)

var btcAddressRegex = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$|^bc1[a-z0-9]{39,59}$`)

// Result is the outcome of an address check. Error is empty when IsValid is true.
type Result struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// ValidateAddress performs a structural check of address for coin.
// Checksums are not verified.
func ValidateAddress(address, coin string) Result {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return Result{Error: MsgAddressRequired}
	}

	switch strings.ToUpper(strings.TrimSpace(coin)) {
	case "ETH", "USDT", "USDC", "MATIC":
		if !isEthereumAddress(trimmed) {
			return Result{Error: MsgInvalidEthereum}
		}
	case "BTC":
		if !btcAddressRegex.MatchString(trimmed) {
			return Result{Error: MsgInvalidBitcoin}
		}
	default:
		if n := len(trimmed); n < minGenericLength || n > maxGenericLength {
			return Result{Error: MsgInvalidLength}
		}
	}
	return Result{IsValid: true}
}

// isEthereumAddress accepts only the lower-case 0x prefixed form.
func isEthereumAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && len(s) == 2*common.AddressLength+2 && common.IsHexAddress(s)
}

// ValidateRows re-validates every row against coin in place.
func ValidateRows(rows []models.WithdrawalRow, coin string) {
	for i := range rows {
		ApplyTo(&rows[i], coin)
	}
}

// ApplyTo stores the result of validating row.Address on the row itself.
func ApplyTo(row *models.WithdrawalRow, coin string) {
	res := ValidateAddress(row.Address, coin)
	row.IsValidAddress = res.IsValid
	row.AddressError = res.Error
}
