package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/mexc"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

const (
	credentialProbeCoin = "USDT"

	MsgCredentialsValid    = "API credentials are valid"
	MsgCredentialsRequired = "API key and secret are required"
	MsgInvalidAPIKey       = "Invalid API key. Please check your API key is correct."
	MsgInvalidAPISecret    = "Invalid API secret. Please check your secret key is correct."
	MsgIPNotAllowed        = "IP address not allowed. Please check API key IP restrictions."
	MsgNoPermission        = "Insufficient permissions. Please enable Spot Trading and Wallet permissions for your API key."
)

// CredentialService checks a key pair against the exchange.
type CredentialService struct {
	balances BalanceReader
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(balances BalanceReader) *CredentialService {
	return &CredentialService{balances: balances}
}

// Test probes the exchange with creds. Only missing fields are returned as an
// error; a rejected key pair is reported through the check itself.
func (s *CredentialService) Test(ctx context.Context, creds models.Credentials) (models.CredentialCheck, error) {
	if creds.IsEmpty() {
		return models.CredentialCheck{Error: MsgCredentialsRequired}, apperrors.New(apperrors.ErrValidation, MsgCredentialsRequired)
	}

	balance, err := s.balances.GetBalance(ctx, creds, credentialProbeCoin)
	if err != nil {
		logger.Log.Warnw("credential test failed", "api_key", creds.MaskedKey(), "error", err)
		msg, ok := ClassifyCredentialError(err)
		if ok {
			return models.CredentialCheck{Error: msg}, nil
		}
		return models.CredentialCheck{
			Error:     "API Error: " + err.Error(),
			DebugInfo: err.Error(),
		}, nil
	}

	logger.Log.Infow("credential test passed", "api_key", creds.MaskedKey())
	return models.CredentialCheck{
		Valid:   true,
		Message: MsgCredentialsValid,
		Balance: &balance,
	}, nil
}

// ClassifyCredentialError turns a credential failure into a user facing hint.
// Exchange error codes are checked first and the upstream text second; the
// text match depends on upstream wording.
func ClassifyCredentialError(err error) (string, bool) {
	var apiErr *mexc.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case mexc.CodeInvalidAPIKey:
			return MsgInvalidAPIKey, true
		case mexc.CodeSignatureInvalid:
			return MsgInvalidAPISecret, true
		case mexc.CodeIPNotAllowed:
			return MsgIPNotAllowed, true
		case mexc.CodeNoPermission:
			return MsgNoPermission, true
		}
	}

	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "invalid api-key"), strings.Contains(text, "api key info invalid"):
		return MsgInvalidAPIKey, true
	case strings.Contains(text, "invalid signature"), strings.Contains(text, "signature for this request is not valid"):
		return MsgInvalidAPISecret, true
	case strings.Contains(text, "ip not allowed"), strings.Contains(text, "ip white list"):
		return MsgIPNotAllowed, true
	case strings.Contains(text, "permission"):
		return MsgNoPermission, true
	}
	return "", false
}
