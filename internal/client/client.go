// Package client talks to the withdrawal HTTP API on behalf of the command line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

const (
	DefaultBaseURL = "http://localhost:8080"

	apiKeyHeader    = "x-api-key"
	apiSecretHeader = "x-api-secret"
)

// ErrNoCredentials is returned by authenticated calls of a client built without a key pair.
var ErrNoCredentials = apperrors.New(apperrors.ErrAuth, "No API credentials found. Please configure your MEXC API keys.")

// HTTPError is a non-2xx answer of the API.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// Client is a typed wrapper around the API endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	creds   models.Credentials
}

// New creates a client sending creds with every authenticated call.
func New(baseURL string, timeout time.Duration, creds models.Credentials) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type feeResponse struct {
	Fee decimal.Decimal `json:"fee"`
}

type withdrawRequest struct {
	Coin            string      `json:"coin"`
	Amount          json.Number `json:"amount"`
	Address         string      `json:"address"`
	Network         string      `json:"network,omitempty"`
	WithdrawOrderID string      `json:"withdraw_order_id,omitempty"`
}

type withdrawResponse struct {
	WithdrawalID    string          `json:"withdrawal_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Fee             decimal.Decimal `json:"fee"`
	AmountToReceive decimal.Decimal `json:"amount_to_receive"`
	Status          string          `json:"status"`
}

type statusResponse struct {
	Status  string          `json:"status"`
	Details json.RawMessage `json:"details"`
}

type depositAddressResponse struct {
	Address string `json:"address"`
	Tag     string `json:"tag"`
}

type credentialsRequest struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type credentialsResponse struct {
	Valid     bool             `json:"valid"`
	Message   string           `json:"message"`
	Balance   *decimal.Decimal `json:"balance"`
	Error     string           `json:"error"`
	DebugInfo string           `json:"debugInfo"`
}

type coinsResponse struct {
	Coins []models.Coin `json:"coins"`
}

type validateRequest struct {
	Coin      string   `json:"coin"`
	Addresses []string `json:"addresses"`
}

// AddressVerdict is the server's opinion of one address.
type AddressVerdict struct {
	Address        string `json:"address"`
	IsValidAddress bool   `json:"isValidAddress"`
	AddressError   string `json:"addressError"`
}

type validateResponse struct {
	Rows []AddressVerdict `json:"rows"`
}

// GetBalance returns the free balance of coin.
func (c *Client) GetBalance(ctx context.Context, coin string) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "/balance/"+url.PathEscape(coin), nil, nil, true, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Balance, nil
}

// GetWithdrawalFee returns the fee of coin on network; network may be empty.
func (c *Client) GetWithdrawalFee(ctx context.Context, coin, network string) (decimal.Decimal, error) {
	var resp feeResponse
	if err := c.do(ctx, http.MethodGet, "/withdrawal-fee/"+url.PathEscape(coin), networkQuery(network), nil, true, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Fee, nil
}

// Withdraw sends a single withdrawal. The server adds the fee on top of req.Amount.
func (c *Client) Withdraw(ctx context.Context, req models.WithdrawalRequest) (models.WithdrawalReceipt, error) {
	body := withdrawRequest{
		Coin:            req.Coin,
		Amount:          json.Number(req.Amount.String()),
		Address:         req.Address,
		Network:         req.Network,
		WithdrawOrderID: req.ClientID,
	}
	var resp withdrawResponse
	if err := c.do(ctx, http.MethodPost, "/withdraw", nil, body, true, &resp); err != nil {
		return models.WithdrawalReceipt{}, err
	}
	return models.WithdrawalReceipt{
		WithdrawalID:    resp.WithdrawalID,
		TotalAmount:     resp.TotalAmount,
		Fee:             resp.Fee,
		AmountToReceive: resp.AmountToReceive,
		Status:          resp.Status,
	}, nil
}

// SubmitWithdrawal sends one row of a batch and returns its withdrawal id.
func (c *Client) SubmitWithdrawal(ctx context.Context, req models.WithdrawalRequest) (string, error) {
	receipt, err := c.Withdraw(ctx, req)
	if err != nil {
		return "", err
	}
	return receipt.WithdrawalID, nil
}

// WithdrawalStatus returns the canonical status of a withdrawal and the raw exchange record.
func (c *Client) WithdrawalStatus(ctx context.Context, withdrawalID string) (models.WithdrawalStatusInfo, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodGet, "/withdrawal-status/"+url.PathEscape(withdrawalID), nil, nil, true, &resp); err != nil {
		return models.WithdrawalStatusInfo{}, err
	}
	status := models.RowStatus(resp.Status)
	if !status.IsCanonical() {
		return models.WithdrawalStatusInfo{}, apperrors.Newf(apperrors.ErrExchange, "unexpected withdrawal status %q", resp.Status)
	}
	return models.WithdrawalStatusInfo{Status: status, Raw: resp.Details}, nil
}

// DepositAddress returns the deposit address of coin on network; network may be empty.
func (c *Client) DepositAddress(ctx context.Context, coin, network string) (models.DepositAddress, error) {
	var resp depositAddressResponse
	if err := c.do(ctx, http.MethodGet, "/deposit-address/"+url.PathEscape(coin), networkQuery(network), nil, true, &resp); err != nil {
		return models.DepositAddress{}, err
	}
	return models.DepositAddress{Address: resp.Address, Tag: resp.Tag}, nil
}

// TestCredentials asks the server to probe creds. A rejected pair is not an error.
func (c *Client) TestCredentials(ctx context.Context, creds models.Credentials) (models.CredentialCheck, error) {
	var resp credentialsResponse
	err := c.do(ctx, http.MethodPost, "/test-credentials", nil,
		credentialsRequest{APIKey: creds.APIKey, APISecret: creds.APISecret}, false, &resp)
	if err != nil {
		return models.CredentialCheck{Error: err.Error()}, err
	}
	return models.CredentialCheck{
		Valid:     resp.Valid,
		Message:   resp.Message,
		Balance:   resp.Balance,
		Error:     resp.Error,
		DebugInfo: resp.DebugInfo,
	}, nil
}

// Coins returns the coin catalog.
func (c *Client) Coins(ctx context.Context) ([]models.Coin, error) {
	var resp coinsResponse
	if err := c.do(ctx, http.MethodGet, "/coins", nil, nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Coins, nil
}

// ValidateAddresses checks addresses for coin on the server.
func (c *Client) ValidateAddresses(ctx context.Context, coin string, addresses []string) ([]AddressVerdict, error) {
	var resp validateResponse
	if err := c.do(ctx, http.MethodPost, "/addresses/validate", nil,
		validateRequest{Coin: coin, Addresses: addresses}, false, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

func networkQuery(network string) url.Values {
	if network == "" {
		return nil
	}
	return url.Values{"network": {network}}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, result any) error {
	if authed && c.creds.IsEmpty() {
		return ErrNoCredentials
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(apiKeyHeader, c.creds.APIKey)
		req.Header.Set(apiSecretHeader, c.creds.APISecret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("api request failed", "method", method, "path", path, "error", err)
		return apperrors.Wrap(apperrors.ErrExchange, "Request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	logger.Log.Debugw("api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// responseError reads the detail of an error body, falling back to the
// fields used by the credential check.
func responseError(status int, data []byte) error {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(data, &body)

	detail := body.Detail
	if detail == "" {
		detail = body.Error
	}
	if detail == "" {
		detail = body.Message
	}
	if detail == "" {
		detail = "Request failed"
	}

	kind := apperrors.ErrExchange
	if status == http.StatusUnauthorized {
		kind = apperrors.ErrAuth
	}
	return apperrors.Wrap(kind, "", &HTTPError{StatusCode: status, Detail: detail})
}
