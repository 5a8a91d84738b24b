package models

import (
	"strings"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/apperrors"
)

// Coin is an asset with the networks it can be withdrawn over.
type Coin struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Networks []string `json:"networks"`
}

// KnownCoins are the popular assets offered for selection. Any other symbol
// is a custom coin and accepts a free-form network.
var KnownCoins = []Coin{
	{Symbol: "BTC", Name: "Bitcoin", Networks: []string{"BTC"}},
	{Symbol: "ETH", Name: "Ethereum", Networks: []string{"ETH", "BSC", "ARBITRUM"}},
	{Symbol: "SOL", Name: "Solana", Networks: []string{"SOL"}},
	{Symbol: "USDT", Name: "Tether", Networks: []string{"ETH", "BSC", "TRC20", "SOL", "ARBITRUM"}},
	{Symbol: "USDC", Name: "USD Coin", Networks: []string{"ETH", "BSC", "SOL", "ARBITRUM"}},
	{Symbol: "BNB", Name: "BNB", Networks: []string{"BSC", "ETH"}},
	{Symbol: "ADA", Name: "Cardano", Networks: []string{"ADA"}},
	{Symbol: "DOT", Name: "Polkadot", Networks: []string{"DOT"}},
	{Symbol: "MATIC", Name: "Polygon", Networks: []string{"POLYGON", "ETH", "BSC"}},
	{Symbol: "AVAX", Name: "Avalanche", Networks: []string{"AVAX", "ETH"}},
}

// FindCoin looks a symbol up in KnownCoins, case-insensitively.
func FindCoin(symbol string) (Coin, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, c := range KnownCoins {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Coin{}, false
}

// SupportsNetwork reports whether network is listed for the coin.
func (c Coin) SupportsNetwork(network string) bool {
	network = strings.ToUpper(strings.TrimSpace(network))
	for _, n := range c.Networks {
		if n == network {
			return true
		}
	}
	return false
}

// DefaultNetwork is the first listed network, or "" when none is listed.
func (c Coin) DefaultNetwork() string {
	if len(c.Networks) == 0 {
		return ""
	}
	return c.Networks[0]
}

// CoinNetworkSelection is the coin and network every row of a batch is sent with.
type CoinNetworkSelection struct {
	Coin    string `json:"coin"`
	Network string `json:"network"`
}

// NewSelection normalizes both symbols and, for a known coin given without
// a network, picks the coin's default network.
func NewSelection(coin, network string) CoinNetworkSelection {
	s := CoinNetworkSelection{Coin: coin, Network: network}.Normalize()
	if s.Network == "" {
		if c, ok := FindCoin(s.Coin); ok {
			s.Network = c.DefaultNetwork()
		}
	}
	return s
}

// Normalize trims and upper-cases both parts.
func (s CoinNetworkSelection) Normalize() CoinNetworkSelection {
	return CoinNetworkSelection{
		Coin:    strings.ToUpper(strings.TrimSpace(s.Coin)),
		Network: strings.ToUpper(strings.TrimSpace(s.Network)),
	}
}

// Validate checks that both parts are present and that a known coin uses one
// of its listed networks.
func (s CoinNetworkSelection) Validate() error {
	if s.Coin == "" || s.Network == "" {
		return apperrors.New(apperrors.ErrValidation, "coin and network are both required")
	}
	if c, ok := FindCoin(s.Coin); ok && !c.SupportsNetwork(s.Network) {
		return apperrors.Newf(apperrors.ErrValidation,
			"network %s is not supported for %s (supported: %s)",
			s.Network, c.Symbol, strings.Join(c.Networks, ", "))
	}
	return nil
}
