package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/mexc"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

const withdrawHistoryLimit = 1000

// ExchangeClient is the subset of the exchange REST API the facade relies on.
type ExchangeClient interface {
	GetAccount(ctx context.Context) (*mexc.AccountInfo, error)
	GetCurrencies(ctx context.Context) ([]mexc.CurrencyInfo, error)
	Withdraw(ctx context.Context, p mexc.WithdrawParams) (*mexc.IDResponse, error)
	GetWithdrawHistory(ctx context.Context, coin string, limit int) ([]mexc.WithdrawRecord, error)
	GetDepositAddresses(ctx context.Context, coin, network string) ([]mexc.DepositAddressInfo, error)
}

// ClientFactory builds an authenticated client for one key pair.
type ClientFactory func(creds models.Credentials) ExchangeClient

// NewMEXCClientFactory returns a factory of MEXC REST clients sharing cfg.
func NewMEXCClientFactory(cfg mexc.Config) ClientFactory {
	return func(creds models.Credentials) ExchangeClient {
		return mexc.NewClient(cfg, creds)
	}
}

// ExchangeFacade translates withdrawal operations into exchange calls.
// A fresh client is built for every call from the caller's credentials.
type ExchangeFacade struct {
	newClient ClientFactory
}

// NewExchangeFacade creates a new facade.
func NewExchangeFacade(newClient ClientFactory) *ExchangeFacade {
	return &ExchangeFacade{newClient: newClient}
}

// GetBalance returns the free balance of coin.
func (f *ExchangeFacade) GetBalance(ctx context.Context, creds models.Credentials, coin string) (decimal.Decimal, error) {
	const op = "Error fetching balance"
	coin = strings.ToUpper(coin)

	acc, err := f.newClient(creds).GetAccount(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch account", "coin", coin, "error", err)
		return decimal.Zero, apperrors.Wrap(apperrors.ErrExchange, op, err)
	}

	for _, b := range acc.Balances {
		if strings.EqualFold(b.Asset, coin) {
			return b.Free, nil
		}
	}
	return decimal.Zero, apperrors.Wrap(apperrors.ErrLookup, op, fmt.Errorf("Could not find balance for %s", coin))
}

// GetWithdrawalFee returns the withdrawal fee of coin on network, or of the
// first listed network when network is empty.
func (f *ExchangeFacade) GetWithdrawalFee(ctx context.Context, creds models.Credentials, coin, network string) (decimal.Decimal, error) {
	const op = "Error fetching withdrawal fee"
	coin = strings.ToUpper(coin)

	currencies, err := f.newClient(creds).GetCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch currencies", "coin", coin, "error", err)
		return decimal.Zero, apperrors.Wrap(apperrors.ErrExchange, op, err)
	}

	cur, ok := findCurrency(currencies, coin)
	if ok {
		for _, n := range cur.NetworkList {
			if network == "" || networkMatches(n, network) {
				return n.WithdrawFee, nil
			}
		}
	}
	if network != "" {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrLookup, op,
			fmt.Errorf("Could not find fee information for %s on network %s", coin, network))
	}
	return decimal.Zero, apperrors.Wrap(apperrors.ErrLookup, op, fmt.Errorf("Could not find fee information for %s", coin))
}

// Withdraw loads currency metadata, resolves the exchange network id and
// submits the withdrawal. Every failure is reported as ErrWithdrawal.
func (f *ExchangeFacade) Withdraw(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) (models.SubmittedWithdrawal, error) {
	const op = "Withdrawal failed"
	coin := strings.ToUpper(req.Coin)
	client := f.newClient(creds)

	currencies, err := client.GetCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load currencies before withdrawal", "coin", coin, "error", err)
		return models.SubmittedWithdrawal{}, apperrors.Wrap(apperrors.ErrWithdrawal, op, err)
	}

	netWork := req.Network
	if req.Network != "" {
		if cur, ok := findCurrency(currencies, coin); ok {
			netWork = resolveNetworkID(cur, req.Network)
		}
	}

	resp, err := client.Withdraw(ctx, mexc.WithdrawParams{
		Coin:            coin,
		Address:         req.Address,
		Amount:          req.Amount,
		NetWork:         netWork,
		WithdrawOrderID: req.ClientID,
	})
	if err != nil {
		logger.Log.Errorw("withdrawal rejected",
			"coin", coin, "network", netWork, "address", req.Address, "amount", req.Amount.String(), "error", err)
		return models.SubmittedWithdrawal{}, apperrors.Wrap(apperrors.ErrWithdrawal, op, err)
	}

	logger.Log.Infow("withdrawal submitted",
		"coin", coin, "network", netWork, "address", req.Address, "amount", req.Amount.String(), "withdrawal_id", resp.ID)
	return models.SubmittedWithdrawal{ID: resp.ID, Raw: resp}, nil
}

// FetchStatus finds withdrawalID in the account history and reports its canonical status.
func (f *ExchangeFacade) FetchStatus(ctx context.Context, creds models.Credentials, withdrawalID string) (models.WithdrawalStatusInfo, error) {
	const op = "Error fetching withdrawal status"

	history, err := f.newClient(creds).GetWithdrawHistory(ctx, "", withdrawHistoryLimit)
	if err != nil {
		logger.Log.Errorw("failed to fetch withdrawal history", "withdrawal_id", withdrawalID, "error", err)
		return models.WithdrawalStatusInfo{}, apperrors.Wrap(apperrors.ErrExchange, op, err)
	}

	for _, rec := range history {
		if rec.ID == withdrawalID {
			return models.WithdrawalStatusInfo{
				Status: CanonicalStatus(mexc.WithdrawState(rec.Status)),
				Raw:    rec,
			}, nil
		}
	}
	return models.WithdrawalStatusInfo{}, apperrors.Wrap(apperrors.ErrNotFound, op, errors.New("Withdrawal not found"))
}

// GetDepositAddress returns the deposit address of coin, optionally on network.
func (f *ExchangeFacade) GetDepositAddress(ctx context.Context, creds models.Credentials, coin, network string) (models.DepositAddress, error) {
	const op = "Error fetching deposit address"
	coin = strings.ToUpper(coin)

	addrs, err := f.newClient(creds).GetDepositAddresses(ctx, coin, network)
	if err != nil {
		logger.Log.Errorw("failed to fetch deposit address", "coin", coin, "network", network, "error", err)
		return models.DepositAddress{}, apperrors.Wrap(apperrors.ErrExchange, op, err)
	}

	for _, a := range addrs {
		if a.Address == "" {
			continue
		}
		if network == "" || networkMatches(mexc.NetworkInfo{Network: a.Network}, network) {
			tag := a.Tag
			if tag == "" {
				tag = a.Memo
			}
			return models.DepositAddress{Address: a.Address, Tag: tag}, nil
		}
	}
	return models.DepositAddress{}, apperrors.Wrap(apperrors.ErrLookup, op,
		fmt.Errorf("no deposit address for %s on network %q", coin, network))
}

// CanonicalStatus maps an exchange withdrawal state onto the row status set.
// Unrecognized states are treated as still in flight.
func CanonicalStatus(state string) models.RowStatus {
	switch strings.ToLower(state) {
	case mexc.WithdrawStateOK:
		return models.StatusCompleted
	case mexc.WithdrawStateCanceled, mexc.WithdrawStateFailed:
		return models.StatusFailed
	default:
		return models.StatusProcessing
	}
}

func findCurrency(currencies []mexc.CurrencyInfo, coin string) (mexc.CurrencyInfo, bool) {
	for _, c := range currencies {
		if strings.EqualFold(c.Coin, coin) {
			return c, true
		}
	}
	return mexc.CurrencyInfo{}, false
}

// networkAliases lists exchange spellings of the networks offered for selection.
var networkAliases = map[string][]string{
	"ETH":      {"ERC20"},
	"BSC":      {"BEP20"},
	"TRC20":    {"TRX", "TRON"},
	"ARBITRUM": {"ARB", "ARBONE"},
	"POLYGON":  {"MATIC"},
	"AVAX":     {"AVAXC", "AVAX_CCHAIN"},
	"SOL":      {"SOLANA"},
}

func networkMatches(n mexc.NetworkInfo, want string) bool {
	want = strings.ToUpper(strings.TrimSpace(want))
	candidates := append([]string{want}, networkAliases[want]...)
	display := strings.ToUpper(n.Network)
	for _, c := range candidates {
		if strings.EqualFold(n.NetWork, c) || strings.EqualFold(n.Network, c) || strings.EqualFold(n.Name, c) {
			return true
		}
		if strings.Contains(display, "("+c+")") {
			return true
		}
	}
	return false
}

// resolveNetworkID returns the identifier the exchange expects for network,
// falling back to network itself when no entry matches.
func resolveNetworkID(cur mexc.CurrencyInfo, network string) string {
	for _, n := range cur.NetworkList {
		if !networkMatches(n, network) {
			continue
		}
		if n.NetWork != "" {
			return n.NetWork
		}
		return n.Network
	}
	return network
}
