package models

import (
	"strings"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
)

// Credentials is an exchange API key pair.
type Credentials struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

// IsEmpty reports whether either half of the pair is missing.
func (c Credentials) IsEmpty() bool {
	return strings.TrimSpace(c.APIKey) == "" || strings.TrimSpace(c.APISecret) == ""
}

// MaskedKey is the API key reduced to its last four characters.
func (c Credentials) MaskedKey() string {
	return logger.MaskKey(c.APIKey)
}
