package services

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=services

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// ExchangeGateway performs exchange operations on behalf of the supplied credentials.
type ExchangeGateway interface {
	GetBalance(ctx context.Context, creds models.Credentials, coin string) (decimal.Decimal, error)                           // Returns the free balance of coin
	GetWithdrawalFee(ctx context.Context, creds models.Credentials, coin, network string) (decimal.Decimal, error)            // Returns the fee of coin on network
	Withdraw(ctx context.Context, creds models.Credentials, req models.WithdrawalRequest) (models.SubmittedWithdrawal, error) // Submits a withdrawal
	FetchStatus(ctx context.Context, creds models.Credentials, withdrawalID string) (models.WithdrawalStatusInfo, error)      // Returns the canonical status of a withdrawal
	GetDepositAddress(ctx context.Context, creds models.Credentials, coin, network string) (models.DepositAddress, error)     // Returns the deposit address of coin
}

// BalanceReader returns the free balance of a coin for the given credentials.
type BalanceReader interface {
	GetBalance(ctx context.Context, creds models.Credentials, coin string) (decimal.Decimal, error)
}

// BalanceFetcher returns the balance of a coin for an already authenticated caller.
type BalanceFetcher interface {
	GetBalance(ctx context.Context, coin string) (decimal.Decimal, error)
}

// FeeFetcher returns the withdrawal fee of a coin/network pair for an already authenticated caller.
type FeeFetcher interface {
	GetWithdrawalFee(ctx context.Context, coin, network string) (decimal.Decimal, error)
}

// BatchWithdrawer submits one withdrawal of a batch and returns its id.
type BatchWithdrawer interface {
	SubmitWithdrawal(ctx context.Context, req models.WithdrawalRequest) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
