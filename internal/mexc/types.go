package mexc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// APIError is an error body returned by the exchange.
type APIError struct {
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mexc: %s (code %d, http %d)", e.Msg, e.Code, e.HTTPStatus)
}

// Exchange error codes the callers branch on.
const (
	CodeInvalidAPIKey      = 10072
	CodeSignatureInvalid   = 700002
	CodeIPNotAllowed       = 700006
	CodeNoPermission       = 700007
	CodeInsufficientAssets = 30004
)

// AccountBalance is the holding of a single asset.
type AccountBalance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// AccountInfo is the response of GET /api/v3/account.
type AccountInfo struct {
	CanTrade    bool             `json:"canTrade"`
	CanWithdraw bool             `json:"canWithdraw"`
	CanDeposit  bool             `json:"canDeposit"`
	AccountType string           `json:"accountType"`
	Balances    []AccountBalance `json:"balances"`
	Permissions []string         `json:"permissions"`
}

// NetworkInfo is one withdrawal network of a currency.
// Network is the display name, NetWork the identifier used when withdrawing.
type NetworkInfo struct {
	Coin           string          `json:"coin"`
	Name           string          `json:"name"`
	Network        string          `json:"network"`
	NetWork        string          `json:"netWork"`
	DepositEnable  bool            `json:"depositEnable"`
	WithdrawEnable bool            `json:"withdrawEnable"`
	WithdrawFee    decimal.Decimal `json:"withdrawFee"`
	WithdrawMin    decimal.Decimal `json:"withdrawMin"`
	WithdrawMax    decimal.Decimal `json:"withdrawMax"`
	Contract       string          `json:"contract"`
}

// CurrencyInfo is one entry of GET /api/v3/capital/config/getall.
type CurrencyInfo struct {
	Coin        string        `json:"coin"`
	Name        string        `json:"name"`
	NetworkList []NetworkInfo `json:"networkList"`
}

// WithdrawParams are the arguments of POST /api/v3/capital/withdraw.
type WithdrawParams struct {
	Coin            string
	Address         string
	Amount          decimal.Decimal
	NetWork         string
	Memo            string
	WithdrawOrderID string
}

// IDResponse carries the id of an accepted withdrawal.
type IDResponse struct {
	ID string `json:"id"`
}

// WithdrawRecord is one entry of the withdrawal history.
type WithdrawRecord struct {
	ID             string          `json:"id"`
	TxID           string          `json:"txId"`
	Coin           string          `json:"coin"`
	Network        string          `json:"network"`
	Address        string          `json:"address"`
	Amount         decimal.Decimal `json:"amount"`
	TransferType   int64           `json:"transferType"`
	Status         int             `json:"status"`
	TransactionFee decimal.Decimal `json:"transactionFee"`
	ApplyTime      int64           `json:"applyTime"`
	Remark         string          `json:"remark"`
	Memo           string          `json:"memo"`
}

// DepositAddressInfo is one entry of GET /api/v3/capital/deposit/address.
type DepositAddressInfo struct {
	Coin    string `json:"coin"`
	Network string `json:"network"`
	Address string `json:"address"`
	Memo    string `json:"memo,omitempty"`
	Tag     string `json:"tag,omitempty"`
}
