package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// BatchService runs batches on the server with the credentials of the request.
type BatchService struct {
	withdrawals *WithdrawalService
	delay       time.Duration
	kafkaWriter KafkaWriter
}

// NewBatchService creates a new BatchService. kafkaWriter may be nil.
func NewBatchService(withdrawals *WithdrawalService, delay time.Duration, kafkaWriter KafkaWriter) *BatchService {
	return &BatchService{
		withdrawals: withdrawals,
		delay:       delay,
		kafkaWriter: kafkaWriter,
	}
}

// RunBatch submits rows in order on behalf of creds.
func (s *BatchService) RunBatch(ctx context.Context, creds models.Credentials, rows []models.WithdrawalRow, sel models.CoinNetworkSelection) []models.WithdrawalRow {
	return NewBatchOrchestrator(s.withdrawals.Bind(creds), s.delay, s.kafkaWriter).Run(ctx, rows, sel)
}
