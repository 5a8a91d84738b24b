// Package mexc is a minimal client of the MEXC spot v3 REST API covering
// account balances, currency configuration, withdrawals and deposit addresses.
package mexc

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

const (
	DefaultBaseURL    = "https://api.mexc.com"
	DefaultRecvWindow = 5000

	apiKeyHeader = "X-MEXC-APIKEY"

	pathAccount        = "/api/v3/account"
	pathCurrencyConfig = "/api/v3/capital/config/getall"
	pathWithdraw       = "/api/v3/capital/withdraw"
	pathWithdrawList   = "/api/v3/capital/withdraw/history"
	pathDepositAddress = "/api/v3/capital/deposit/address"
)

// Config holds the transport settings shared by every client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RecvWindow int64
	// Limiter paces outbound requests; nil means unlimited.
	Limiter *rate.Limiter
}

// Client signs and sends requests on behalf of one key pair.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	recvWindow int64
	http       *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

// NewClient creates a client for creds.
func NewClient(cfg Config, creds models.Credentials) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	recvWindow := cfg.RecvWindow
	if recvWindow <= 0 {
		recvWindow = DefaultRecvWindow
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     creds.APIKey,
		apiSecret:  creds.APISecret,
		recvWindow: recvWindow,
		http:       &http.Client{Timeout: cfg.Timeout},
		limiter:    cfg.Limiter,
		now:        time.Now,
	}
}

// GetAccount returns the spot account with its balances.
func (c *Client) GetAccount(ctx context.Context) (*AccountInfo, error) {
	var resp AccountInfo
	if err := c.sendSigned(ctx, http.MethodGet, pathAccount, url.Values{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCurrencies returns every currency with its networks and withdrawal fees.
func (c *Client) GetCurrencies(ctx context.Context) ([]CurrencyInfo, error) {
	var resp []CurrencyInfo
	if err := c.sendSigned(ctx, http.MethodGet, pathCurrencyConfig, url.Values{}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Withdraw submits a withdrawal and returns its exchange id.
func (c *Client) Withdraw(ctx context.Context, p WithdrawParams) (*IDResponse, error) {
	if p.Coin == "" || p.Address == "" {
		return nil, fmt.Errorf("coin and address are required")
	}
	if !p.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", p.Amount)
	}
	params := url.Values{}
	params.Set("coin", p.Coin)
	params.Set("address", p.Address)
	params.Set("amount", p.Amount.String())
	if p.NetWork != "" {
		params.Set("netWork", p.NetWork)
	}
	if p.Memo != "" {
		params.Set("memo", p.Memo)
	}
	if p.WithdrawOrderID != "" {
		params.Set("withdrawOrderId", p.WithdrawOrderID)
	}

	var resp IDResponse
	if err := c.sendSigned(ctx, http.MethodPost, pathWithdraw, params, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("withdrawal accepted without id")
	}
	return &resp, nil
}

// GetWithdrawHistory lists recent withdrawals, optionally for one coin.
func (c *Client) GetWithdrawHistory(ctx context.Context, coin string, limit int) ([]WithdrawRecord, error) {
	params := url.Values{}
	if coin != "" {
		params.Set("coin", coin)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp []WithdrawRecord
	if err := c.sendSigned(ctx, http.MethodGet, pathWithdrawList, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetDepositAddresses lists deposit addresses of coin, optionally on one network.
func (c *Client) GetDepositAddresses(ctx context.Context, coin, network string) ([]DepositAddressInfo, error) {
	params := url.Values{}
	params.Set("coin", coin)
	if network != "" {
		params.Set("network", network)
	}
	var resp []DepositAddressInfo
	if err := c.sendSigned(ctx, http.MethodGet, pathDepositAddress, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// sign appends timestamp, recvWindow and the HMAC-SHA256 signature of the
// encoded query to params.
func (c *Client) sign(params url.Values) string {
	params.Set("recvWindow", strconv.FormatInt(c.recvWindow, 10))
	params.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	payload := params.Encode()

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(payload))
	return payload + "&signature=" + hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) sendSigned(ctx context.Context, method, path string, params url.Values, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	endpoint := c.baseURL + path + "?" + c.sign(params)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("mexc request failed",
			"method", method, "path", path, "api_key", logger.MaskKey(c.apiKey), "error", err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	logger.Log.Infow("mexc request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.Msg == "" {
			apiErr.Msg = strings.TrimSpace(string(body))
			if apiErr.Msg == "" {
				apiErr.Msg = http.StatusText(resp.StatusCode)
			}
		}
		logger.Log.Warnw("mexc error response",
			"path", path, "status", resp.StatusCode, "code", apiErr.Code, "msg", apiErr.Msg)
		return apiErr
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
