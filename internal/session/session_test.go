package session

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

const ethAddr = "0x52908400098527886E0F7030069857D2E4169EE7"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func snapshot(sel models.CoinNetworkSelection, balance, fee string) models.BalanceFeeSnapshot {
	b, f := dec(balance), dec(fee)
	return models.BalanceFeeSnapshot{Selection: sel, Balance: &b, Fee: &f}
}

func TestNew_DefaultSelection(t *testing.T) {
	s := New(nil)
	assert.Equal(t, models.CoinNetworkSelection{Coin: "SOL", Network: "SOL"}, s.Selection())
	assert.Empty(t, s.Rows())
}

func TestParseRows(t *testing.T) {
	rows, err := ParseRows("  addr-one  \n\n addr-two , 1.5 \r\n\t\naddr-three,0\n")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "addr-one", rows[0].Address)
	assert.True(t, rows[0].Amount.IsZero())
	assert.Equal(t, "addr-two", rows[1].Address)
	assert.True(t, rows[1].Amount.Equal(dec("1.5")))
	assert.Equal(t, "addr-three", rows[2].Address)

	ids := map[string]bool{}
	for _, r := range rows {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, models.StatusNone, r.Status)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestParseRows_InvalidAmount(t *testing.T) {
	tests := []string{"addr,abc", "addr,-1"}
	for _, text := range tests {
		_, err := ParseRows("ok\n" + text)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.Contains(t, err.Error(), "line 2")
	}
}

func TestSession_SetAddresses_ValidatesAgainstCoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.BalanceFeeSnapshot{}).AnyTimes()

	s := New(fetcher)
	s.SelectCoin(context.Background(), "ETH")

	require.NoError(t, s.SetAddresses(ethAddr+"\n0x123\n"))
	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsValidAddress)
	assert.False(t, rows[1].IsValidAddress)
	assert.Equal(t, validators.MsgInvalidEthereum, rows[1].AddressError)

	// every edit of the text replaces the rows
	require.NoError(t, s.SetAddresses(ethAddr))
	assert.Len(t, s.Rows(), 1)
	assert.NotEqual(t, rows[0].ID, s.Rows()[0].ID)
	assert.Equal(t, ethAddr, s.Addresses())
}

func TestSession_SelectCoin_Revalidates(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(ctx, models.CoinNetworkSelection{Coin: "ETH", Network: "ETH"}).Return(models.BalanceFeeSnapshot{}),
		fetcher.EXPECT().Fetch(ctx, models.CoinNetworkSelection{Coin: "BTC", Network: "BTC"}).Return(models.BalanceFeeSnapshot{}),
	)

	s := New(fetcher)
	s.SelectCoin(ctx, "eth")
	require.NoError(t, s.SetAddresses(ethAddr))
	assert.True(t, s.Rows()[0].IsValidAddress)

	s.SelectCoin(ctx, "BTC")
	assert.False(t, s.Rows()[0].IsValidAddress)
	assert.Equal(t, validators.MsgInvalidBitcoin, s.Rows()[0].AddressError)
}

func TestSession_SelectCoin_CustomNeedsNetwork(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	fetcher.EXPECT().Fetch(ctx, models.CoinNetworkSelection{Coin: "DOGE", Network: "DOGE"}).
		Return(snapshot(models.CoinNetworkSelection{Coin: "DOGE", Network: "DOGE"}, "1000", "4"))

	s := New(fetcher)

	snap := s.SelectCoin(ctx, "doge")
	assert.Equal(t, models.CoinNetworkSelection{Coin: "DOGE"}, s.Selection())
	assert.Nil(t, snap.Balance)
	assert.False(t, snap.Loading)

	snap, err := s.SelectNetwork(ctx, "doge")
	require.NoError(t, err)
	assert.True(t, snap.Ready())
	assert.True(t, snap.Balance.Equal(dec("1000")))
}

func TestSession_SelectNetwork_Unsupported(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	fetcher.EXPECT().Fetch(ctx, models.CoinNetworkSelection{Coin: "BTC", Network: "BTC"}).Return(models.BalanceFeeSnapshot{})

	s := New(fetcher)
	s.SelectCoin(ctx, "BTC")

	_, err := s.SelectNetwork(ctx, "ETH")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "BTC", s.Selection().Network)
}

func TestSession_Refresh_FailureClearsValues(t *testing.T) {
	ctx := context.Background()
	sel := models.CoinNetworkSelection{Coin: "SOL", Network: "SOL"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(ctx, sel).Return(snapshot(sel, "10", "0.01")),
		fetcher.EXPECT().Fetch(ctx, sel).Return(models.BalanceFeeSnapshot{Selection: sel, Error: "Error fetching balance: boom"}),
	)

	s := New(fetcher)
	assert.True(t, s.Refresh(ctx).Ready())

	snap := s.Refresh(ctx)
	assert.Nil(t, snap.Balance)
	assert.Nil(t, snap.Fee)
	assert.Equal(t, "Error fetching balance: boom", snap.Error)
	assert.Equal(t, snap, s.Snapshot())
}

// switchingFetcher changes the selection of its session while the first fetch is in flight.
type switchingFetcher struct {
	session *Session
	calls   []models.CoinNetworkSelection
}

func (f *switchingFetcher) Fetch(ctx context.Context, sel models.CoinNetworkSelection) models.BalanceFeeSnapshot {
	f.calls = append(f.calls, sel)
	if len(f.calls) == 1 {
		f.session.SelectCoin(ctx, "BTC")
		return snapshot(sel, "1", "1")
	}
	return snapshot(sel, "2", "0.0005")
}

func TestSession_Refresh_DropsSupersededResult(t *testing.T) {
	f := &switchingFetcher{}
	s := New(f)
	f.session = s

	snap := s.SelectCoin(context.Background(), "ETH")

	require.Len(t, f.calls, 2)
	assert.Equal(t, "BTC", s.Selection().Coin)
	assert.Equal(t, "BTC", snap.Selection.Coin)
	assert.True(t, snap.Balance.Equal(dec("2")))
	assert.Equal(t, "BTC", s.Snapshot().Selection.Coin)
}

func TestSession_AmountsAndTotals(t *testing.T) {
	ctx := context.Background()
	sel := models.CoinNetworkSelection{Coin: "ETH", Network: "ETH"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := NewMockSnapshotFetcher(ctrl)
	fetcher.EXPECT().Fetch(ctx, sel).Return(snapshot(sel, "1.03", "0.01"))

	s := New(fetcher)
	s.SelectCoin(ctx, "ETH")
	require.NoError(t, s.SetAddresses(ethAddr+"\n"+ethAddr+"\n0xbad"))

	rows := s.Rows()
	assert.Empty(t, s.Eligible())

	require.NoError(t, s.SetAllAmounts(dec("0.5")))
	assert.Len(t, s.Eligible(), 2)

	totals := s.Totals()
	assert.Equal(t, 2, totals.Count)
	assert.True(t, totals.Amount.Equal(dec("1")))
	assert.True(t, totals.Fees.Equal(dec("0.02")))
	assert.True(t, totals.Grand.Equal(dec("1.02")))
	assert.False(t, s.ExceedsBalance())

	require.NoError(t, s.SetAmount(rows[1].ID, dec("0.52")))
	assert.True(t, s.Totals().Grand.Equal(dec("1.04")))
	assert.True(t, s.ExceedsBalance())

	require.NoError(t, s.SetAmount(rows[1].ID, decimal.Zero))
	assert.Len(t, s.Eligible(), 1)

	err := s.SetAmount("missing", dec("1"))
	assert.True(t, errors.Is(err, apperrors.ErrLookup))
	assert.True(t, errors.Is(s.SetAmount(rows[0].ID, dec("-1")), apperrors.ErrValidation))
	assert.True(t, errors.Is(s.SetAllAmounts(dec("-1")), apperrors.ErrValidation))
}

func TestSession_ExceedsBalance_UnknownBalance(t *testing.T) {
	s := New(nil)
	s.selection = models.CoinNetworkSelection{Coin: "ETH", Network: "ETH"}
	require.NoError(t, s.SetAddresses(ethAddr+",0.1"))

	assert.True(t, s.ExceedsBalance())
}

func TestSession_ApplyResultsAndClear(t *testing.T) {
	s := New(nil)
	s.selection = models.CoinNetworkSelection{Coin: "ETH", Network: "ETH"}
	require.NoError(t, s.SetAddresses(ethAddr+",1\n"+ethAddr+",2"))
	rows := s.Rows()

	s.ApplyResults([]models.WithdrawalRow{
		{ID: rows[1].ID, Status: models.StatusFailed, Error: "Withdrawal failed: rejected"},
		{ID: "unknown", Status: models.StatusProcessing},
	})

	got := s.Rows()
	assert.Equal(t, models.StatusNone, got[0].Status)
	assert.Equal(t, models.StatusFailed, got[1].Status)
	assert.Equal(t, "Withdrawal failed: rejected", got[1].Error)
	assert.True(t, got[1].Amount.Equal(dec("2")))

	s.Clear()
	assert.Empty(t, s.Rows())
	assert.Empty(t, s.Addresses())
}

func TestSession_Select_FetchesOnce(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sel := models.CoinNetworkSelection{Coin: "USDT", Network: "TRC20"}
	fetcher := NewMockSnapshotFetcher(ctrl)
	fetcher.EXPECT().Fetch(ctx, sel).Return(snapshot(sel, "50", "1")).Times(1)

	s := New(fetcher)
	require.NoError(t, s.SetAddresses(ethAddr))

	snap, err := s.Select(ctx, "usdt", "trc20")
	require.NoError(t, err)
	assert.Equal(t, sel, s.Selection())
	assert.True(t, snap.Ready())
	assert.True(t, s.Rows()[0].IsValidAddress)
}

func TestSession_Select_Invalid(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := New(NewMockSnapshotFetcher(ctrl))

	_, err := s.Select(ctx, "BTC", "ETH")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = s.Select(ctx, "DOGE", "")
	require.Error(t, err)

	assert.Equal(t, models.NewSelection(DefaultCoin, ""), s.Selection())
}
