// Package session holds the state of one interactive withdrawal: the chosen
// coin and network, the rows parsed from the address list and the balance and
// fee of the selection.
package session

//go:generate mockgen -source=session.go -destination=session_mock.go -package=session

import (
	"bufio"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

// DefaultCoin is selected when a session starts.
const DefaultCoin = "SOL"

// SnapshotFetcher loads the balance and fee of a selection.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, sel models.CoinNetworkSelection) models.BalanceFeeSnapshot
}

// Totals summarizes the eligible rows of a session.
type Totals struct {
	Count  int
	Amount decimal.Decimal
	Fees   decimal.Decimal
	Grand  decimal.Decimal
}

// Session is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	fetcher    SnapshotFetcher
	selection  models.CoinNetworkSelection
	addresses  string
	rows       []models.WithdrawalRow
	snapshot   models.BalanceFeeSnapshot
	generation uint64
}

// New creates a session on DefaultCoin and its default network.
// No balance is fetched until Refresh or a selection change.
func New(fetcher SnapshotFetcher) *Session {
	return &Session{
		fetcher:   fetcher,
		selection: models.NewSelection(DefaultCoin, ""),
	}
}

// Selection returns the current coin and network.
func (s *Session) Selection() models.CoinNetworkSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Addresses returns the raw address text last passed to SetAddresses.
func (s *Session) Addresses() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addresses
}

// Rows returns a copy of the rows.
func (s *Session) Rows() []models.WithdrawalRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WithdrawalRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Snapshot returns the balance and fee of the current selection.
func (s *Session) Snapshot() models.BalanceFeeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// SetAddresses replaces every row with one row per non-empty line of text.
// A line is either "address" or "address,amount"; rows without an amount
// start at zero. Rows are validated against the current coin.
func (s *Session) SetAddresses(text string) error {
	rows, err := ParseRows(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	validators.ValidateRows(rows, s.selection.Coin)
	s.addresses = text
	s.rows = rows
	logger.Log.Debugw("addresses parsed", "rows", len(rows))
	return nil
}

// ParseRows turns address text into fresh rows with new ids. Rows are not validated.
func ParseRows(text string) ([]models.WithdrawalRow, error) {
	var rows []models.WithdrawalRow
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		address, amountText, hasAmount := strings.Cut(raw, ",")
		row := models.WithdrawalRow{
			ID:      uuid.NewString(),
			Address: strings.TrimSpace(address),
		}
		if hasAmount {
			amountText = strings.TrimSpace(amountText)
			amount, err := decimal.NewFromString(amountText)
			if err != nil || amount.IsNegative() {
				return nil, apperrors.Newf(apperrors.ErrValidation, "line %d: invalid amount %q", line, amountText)
			}
			row.Amount = amount
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "read addresses", err)
	}
	return rows, nil
}

// SetAmount sets the amount of the row with id.
func (s *Session) SetAmount(id string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.New(apperrors.ErrValidation, "amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Amount = amount
			return nil
		}
	}
	return apperrors.Newf(apperrors.ErrLookup, "no row with id %s", id)
}

// SetAllAmounts sets the same amount on every row.
func (s *Session) SetAllAmounts(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.New(apperrors.ErrValidation, "amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		s.rows[i].Amount = amount
	}
	return nil
}

// SelectCoin switches to coin with its default network, revalidates every
// row under the new coin and refreshes the snapshot. A custom coin has no
// default network; the snapshot stays empty until SelectNetwork is called.
func (s *Session) SelectCoin(ctx context.Context, coin string) models.BalanceFeeSnapshot {
	s.mu.Lock()
	s.selection = models.NewSelection(coin, "")
	validators.ValidateRows(s.rows, s.selection.Coin)
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SelectNetwork switches the network of the current coin and refreshes the snapshot.
func (s *Session) SelectNetwork(ctx context.Context, network string) (models.BalanceFeeSnapshot, error) {
	s.mu.Lock()
	next := models.CoinNetworkSelection{Coin: s.selection.Coin, Network: network}.Normalize()
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return s.Snapshot(), err
	}
	s.selection = next
	s.mu.Unlock()

	return s.Refresh(ctx), nil
}

// Select switches coin and network together, revalidates every row and
// fetches the snapshot once. An empty network picks the coin's default.
// An invalid pair leaves the session unchanged and fetches nothing.
func (s *Session) Select(ctx context.Context, coin, network string) (models.BalanceFeeSnapshot, error) {
	next := models.NewSelection(coin, network)
	if err := next.Validate(); err != nil {
		return s.Snapshot(), err
	}

	s.mu.Lock()
	s.selection = next
	validators.ValidateRows(s.rows, s.selection.Coin)
	s.mu.Unlock()

	return s.Refresh(ctx), nil
}

// Refresh fetches balance and fee of the current selection. When the
// selection changes while a fetch is in flight, the older result is dropped.
func (s *Session) Refresh(ctx context.Context) models.BalanceFeeSnapshot {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	sel := s.selection
	if sel.Network == "" {
		s.snapshot = models.BalanceFeeSnapshot{Selection: sel}
		s.mu.Unlock()
		return s.snapshot
	}
	s.snapshot = models.BalanceFeeSnapshot{Selection: sel, Loading: true}
	s.mu.Unlock()

	snap := s.fetcher.Fetch(ctx, sel)
	snap.Loading = false

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		logger.Log.Debugw("discarding superseded balance", "coin", sel.Coin, "network", sel.Network)
		return s.snapshot
	}
	s.snapshot = snap
	return s.snapshot
}

// Clear drops the address text and every row.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses = ""
	s.rows = nil
}

// Eligible returns the rows a batch would submit: a positive amount and a valid address.
func (s *Session) Eligible() []models.WithdrawalRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligible()
}

func (s *Session) eligible() []models.WithdrawalRow {
	var out []models.WithdrawalRow
	for _, r := range s.rows {
		if r.Submittable() {
			out = append(out, r)
		}
	}
	return out
}

// Totals sums the eligible rows. Every row pays the fee once; an unknown fee counts as zero.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals()
}

func (s *Session) totals() Totals {
	t := Totals{Amount: decimal.Zero, Fees: decimal.Zero}
	for _, r := range s.eligible() {
		t.Count++
		t.Amount = t.Amount.Add(r.Amount)
	}
	if s.snapshot.Fee != nil {
		t.Fees = s.snapshot.Fee.Mul(decimal.NewFromInt(int64(t.Count)))
	}
	t.Grand = t.Amount.Add(t.Fees)
	return t
}

// ExceedsBalance reports whether the grand total is above the known balance.
// An unknown balance counts as zero.
func (s *Session) ExceedsBalance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance := decimal.Zero
	if s.snapshot.Balance != nil {
		balance = *s.snapshot.Balance
	}
	return s.totals().Grand.GreaterThan(balance)
}

// ApplyResults copies the outcome of a batch onto the rows with the same id.
// Rows not part of the batch are left untouched.
func (s *Session) ApplyResults(results []models.WithdrawalRow) {
	byID := make(map[string]models.WithdrawalRow, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if r, ok := byID[s.rows[i].ID]; ok {
			s.rows[i].Status = r.Status
			s.rows[i].WithdrawalID = r.WithdrawalID
			s.rows[i].Error = r.Error
		}
	}
}
