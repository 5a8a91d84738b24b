package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/mexc"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// --- Fake exchange client ---
type fakeExchangeClient struct {
	account    *mexc.AccountInfo
	currencies []mexc.CurrencyInfo
	withdrawID string
	history    []mexc.WithdrawRecord
	deposits   []mexc.DepositAddressInfo
	err        error
	withdraw   error

	gotWithdraw mexc.WithdrawParams
	calls       []string
}

func (f *fakeExchangeClient) GetAccount(ctx context.Context) (*mexc.AccountInfo, error) {
	f.calls = append(f.calls, "account")
	if f.err != nil {
		return nil, f.err
	}
	return f.account, nil
}

func (f *fakeExchangeClient) GetCurrencies(ctx context.Context) ([]mexc.CurrencyInfo, error) {
	f.calls = append(f.calls, "currencies")
	if f.err != nil {
		return nil, f.err
	}
	return f.currencies, nil
}

func (f *fakeExchangeClient) Withdraw(ctx context.Context, p mexc.WithdrawParams) (*mexc.IDResponse, error) {
	f.calls = append(f.calls, "withdraw")
	f.gotWithdraw = p
	if f.withdraw != nil {
		return nil, f.withdraw
	}
	return &mexc.IDResponse{ID: f.withdrawID}, nil
}

func (f *fakeExchangeClient) GetWithdrawHistory(ctx context.Context, coin string, limit int) ([]mexc.WithdrawRecord, error) {
	f.calls = append(f.calls, "history")
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeExchangeClient) GetDepositAddresses(ctx context.Context, coin, network string) ([]mexc.DepositAddressInfo, error) {
	f.calls = append(f.calls, "deposit")
	if f.err != nil {
		return nil, f.err
	}
	return f.deposits, nil
}

var testCreds = models.Credentials{APIKey: "key", APISecret: "secret"}

func newFacade(client *fakeExchangeClient) (*ExchangeFacade, *[]models.Credentials) {
	var built []models.Credentials
	return NewExchangeFacade(func(creds models.Credentials) ExchangeClient {
		built = append(built, creds)
		return client
	}), &built
}

var usdtCurrencies = []mexc.CurrencyInfo{{
	Coin: "USDT",
	NetworkList: []mexc.NetworkInfo{
		{Network: "Ethereum(ERC20)", NetWork: "ETH", WithdrawFee: decimal.RequireFromString("2.5")},
		{Network: "Tron(TRC20)", NetWork: "TRX", WithdrawFee: decimal.RequireFromString("1")},
		{Network: "BNB Smart Chain(BEP20)", NetWork: "BSC", WithdrawFee: decimal.RequireFromString("0.3")},
	},
}}

// --- Tests ---
func TestGetBalance(t *testing.T) {
	client := &fakeExchangeClient{account: &mexc.AccountInfo{Balances: []mexc.AccountBalance{
		{Asset: "USDT", Free: decimal.RequireFromString("100.25"), Locked: decimal.NewFromInt(5)},
	}}}
	facade, built := newFacade(client)

	bal, err := facade.GetBalance(context.Background(), testCreds, "usdt")
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, []models.Credentials{testCreds}, *built)
}

func TestGetBalance_CoinAbsent(t *testing.T) {
	facade, _ := newFacade(&fakeExchangeClient{account: &mexc.AccountInfo{}})

	_, err := facade.GetBalance(context.Background(), testCreds, "XYZ")
	assert.True(t, errors.Is(err, apperrors.ErrLookup))
	assert.EqualError(t, err, "Error fetching balance: Could not find balance for XYZ")
}

func TestGetBalance_UpstreamError(t *testing.T) {
	facade, _ := newFacade(&fakeExchangeClient{err: &mexc.APIError{Code: mexc.CodeInvalidAPIKey, Msg: "Api key info invalid"}})

	_, err := facade.GetBalance(context.Background(), testCreds, "USDT")
	assert.True(t, errors.Is(err, apperrors.ErrExchange))
	var apiErr *mexc.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestGetWithdrawalFee(t *testing.T) {
	tests := []struct {
		name    string
		coin    string
		network string
		want    string
		wantErr *apperrors.Kind
	}{
		{name: "first network when omitted", coin: "USDT", want: "2.5"},
		{name: "by network id", coin: "USDT", network: "BSC", want: "0.3"},
		{name: "by alias", coin: "usdt", network: "TRC20", want: "1"},
		{name: "unknown network", coin: "USDT", network: "SOL", wantErr: apperrors.ErrLookup},
		{name: "unknown coin", coin: "PEPE", wantErr: apperrors.ErrLookup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade, _ := newFacade(&fakeExchangeClient{currencies: usdtCurrencies})

			fee, err := facade.GetWithdrawalFee(context.Background(), testCreds, tt.coin, tt.network)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)), "got %s", fee)
		})
	}
}

func TestWithdraw(t *testing.T) {
	client := &fakeExchangeClient{currencies: usdtCurrencies, withdrawID: "w-1"}
	facade, _ := newFacade(client)

	res, err := facade.Withdraw(context.Background(), testCreds, models.WithdrawalRequest{
		Coin:     "usdt",
		Amount:   decimal.RequireFromString("11"),
		Address:  "TXYZ",
		Network:  "TRC20",
		ClientID: "row-7",
	})
	require.NoError(t, err)
	assert.Equal(t, "w-1", res.ID)
	assert.Equal(t, "row-7", client.gotWithdraw.WithdrawOrderID)
	assert.Equal(t, []string{"currencies", "withdraw"}, client.calls)
	assert.Equal(t, "USDT", client.gotWithdraw.Coin)
	assert.Equal(t, "TRX", client.gotWithdraw.NetWork)
	assert.True(t, client.gotWithdraw.Amount.Equal(decimal.NewFromInt(11)))
}

func TestWithdraw_UnknownNetworkPassedThrough(t *testing.T) {
	client := &fakeExchangeClient{currencies: usdtCurrencies, withdrawID: "w-2"}
	facade, _ := newFacade(client)

	_, err := facade.Withdraw(context.Background(), testCreds, models.WithdrawalRequest{
		Coin: "USDT", Amount: decimal.NewFromInt(1), Address: "a", Network: "CUSTOMNET",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUSTOMNET", client.gotWithdraw.NetWork)
}

func TestWithdraw_Errors(t *testing.T) {
	t.Run("metadata load fails", func(t *testing.T) {
		client := &fakeExchangeClient{err: errors.New("timeout")}
		facade, _ := newFacade(client)

		_, err := facade.Withdraw(context.Background(), testCreds, models.WithdrawalRequest{Coin: "USDT", Amount: decimal.NewFromInt(1), Address: "a"})
		assert.True(t, errors.Is(err, apperrors.ErrWithdrawal))
		assert.Equal(t, []string{"currencies"}, client.calls)
	})

	t.Run("submission rejected", func(t *testing.T) {
		client := &fakeExchangeClient{currencies: usdtCurrencies, withdraw: &mexc.APIError{Code: mexc.CodeInsufficientAssets, Msg: "balance insufficient"}}
		facade, _ := newFacade(client)

		_, err := facade.Withdraw(context.Background(), testCreds, models.WithdrawalRequest{Coin: "USDT", Amount: decimal.NewFromInt(1), Address: "a"})
		assert.True(t, errors.Is(err, apperrors.ErrWithdrawal))
		assert.Contains(t, err.Error(), "Withdrawal failed: ")
		assert.Contains(t, err.Error(), "balance insufficient")
	})
}

func TestFetchStatus(t *testing.T) {
	client := &fakeExchangeClient{history: []mexc.WithdrawRecord{
		{ID: "a", Status: 7},
		{ID: "b", Status: 3},
		{ID: "c", Status: 9},
		{ID: "d", Status: 99},
	}}
	facade, _ := newFacade(client)

	tests := map[string]models.RowStatus{
		"a": models.StatusCompleted,
		"b": models.StatusProcessing,
		"c": models.StatusFailed,
		"d": models.StatusProcessing,
	}
	for id, want := range tests {
		info, err := facade.FetchStatus(context.Background(), testCreds, id)
		require.NoError(t, err)
		assert.Equal(t, want, info.Status, id)
		assert.Equal(t, id, info.Raw.(mexc.WithdrawRecord).ID)
	}

	_, err := facade.FetchStatus(context.Background(), testCreds, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.EqualError(t, err, "Error fetching withdrawal status: Withdrawal not found")
}

func TestGetDepositAddress(t *testing.T) {
	client := &fakeExchangeClient{deposits: []mexc.DepositAddressInfo{
		{Coin: "USDT", Network: "Ethereum(ERC20)", Address: "0xeth"},
		{Coin: "USDT", Network: "Tron(TRC20)", Address: "Ttron", Memo: "memo-1"},
	}}
	facade, _ := newFacade(client)

	addr, err := facade.GetDepositAddress(context.Background(), testCreds, "USDT", "")
	require.NoError(t, err)
	assert.Equal(t, models.DepositAddress{Address: "0xeth"}, addr)

	addr, err = facade.GetDepositAddress(context.Background(), testCreds, "USDT", "TRC20")
	require.NoError(t, err)
	assert.Equal(t, models.DepositAddress{Address: "Ttron", Tag: "memo-1"}, addr)

	_, err = facade.GetDepositAddress(context.Background(), testCreds, "USDT", "SOL")
	assert.True(t, errors.Is(err, apperrors.ErrLookup))
}

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		state string
		want  models.RowStatus
	}{
		{"pending", models.StatusProcessing},
		{"ok", models.StatusCompleted},
		{"OK", models.StatusCompleted},
		{"canceled", models.StatusFailed},
		{"failed", models.StatusFailed},
		{"something-new", models.StatusProcessing},
		{"", models.StatusProcessing},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalStatus(tt.state), tt.state)
	}
}
