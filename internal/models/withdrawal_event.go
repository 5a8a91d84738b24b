package models

// WithdrawalEvent is published once per orchestrated row when it reaches its batch result.
type WithdrawalEvent struct {
	EventID      string `json:"event_id"`      // EventID is a unique identifier of the event.
	Timestamp    int64  `json:"timestamp"`     // Timestamp is the Unix time (seconds) the row settled in the batch.
	Coin         string `json:"coin"`          // Coin is the asset symbol.
	Network      string `json:"network"`       // Network is the chain the asset was sent over.
	Address      string `json:"address"`       // Address is the destination address.
	Amount       string `json:"amount"`        // Amount is the requested amount as a decimal string.
	Status       string `json:"status"`        // Status is processing or failed.
	WithdrawalID string `json:"withdrawal_id"` // WithdrawalID is the exchange identifier, empty on failure.
	Error        string `json:"error,omitempty"`
}
