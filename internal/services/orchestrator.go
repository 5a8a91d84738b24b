package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
)

// DefaultBatchDelay is the pause between two successive submissions of a batch.
const DefaultBatchDelay = time.Second

// BatchOrchestrator submits the rows of a batch one at a time.
type BatchOrchestrator struct {
	withdrawer  BatchWithdrawer
	delay       time.Duration
	kafkaWriter KafkaWriter
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewBatchOrchestrator creates a new BatchOrchestrator. kafkaWriter may be nil.
func NewBatchOrchestrator(withdrawer BatchWithdrawer, delay time.Duration, kafkaWriter KafkaWriter) *BatchOrchestrator {
	if delay < 0 {
		delay = 0
	}
	return &BatchOrchestrator{
		withdrawer:  withdrawer,
		delay:       delay,
		kafkaWriter: kafkaWriter,
		sleep:       sleepContext,
	}
}

// Run submits rows strictly in order and returns them, in the same order,
// each ending as processing (with a withdrawal id) or failed (with an error).
// A failing row never stops the batch. Rows that cannot be submitted, and
// rows reached after ctx is done, fail without reaching the exchange.
func (o *BatchOrchestrator) Run(ctx context.Context, rows []models.WithdrawalRow, sel models.CoinNetworkSelection) []models.WithdrawalRow {
	out := make([]models.WithdrawalRow, len(rows))
	copy(out, rows)

	logger.Log.Infow("batch started", "coin", sel.Coin, "network", sel.Network, "rows", len(out))

	var submitted, failed int
	for i := range out {
		if i > 0 {
			if err := o.sleep(ctx, o.delay); err != nil {
				logger.Log.Warnw("batch delay interrupted", "index", i, "error", err)
			}
		}

		row := &out[i]
		o.process(ctx, i, row, sel)
		o.publishEvent(ctx, *row, sel)

		if row.Status == models.StatusProcessing {
			submitted++
		} else {
			failed++
		}
	}

	logger.Log.Infow("batch finished",
		"coin", sel.Coin, "network", sel.Network, "submitted", submitted, "failed", failed)
	return out
}

func (o *BatchOrchestrator) process(ctx context.Context, index int, row *models.WithdrawalRow, sel models.CoinNetworkSelection) {
	// every run starts a fresh lifecycle for the row
	row.Status = models.StatusNone
	row.WithdrawalID = ""
	row.Error = ""

	if err := ctx.Err(); err != nil {
		o.fail(index, row, fmt.Sprintf("batch cancelled: %v", err))
		return
	}
	if !row.Submittable() {
		reason := "amount must be greater than zero"
		if !row.IsValidAddress {
			reason = "invalid address"
			if row.AddressError != "" {
				reason = row.AddressError
			}
		}
		o.fail(index, row, reason)
		return
	}

	o.advance(row, models.StatusPending)

	id, err := o.withdrawer.SubmitWithdrawal(ctx, models.WithdrawalRequest{
		Coin:     sel.Coin,
		Amount:   row.Amount,
		Address:  strings.TrimSpace(row.Address),
		Network:  sel.Network,
		ClientID: row.ID,
	})
	if err != nil {
		o.fail(index, row, err.Error())
		return
	}

	row.WithdrawalID = id
	o.advance(row, models.StatusProcessing)
	logger.Log.Infow("row submitted",
		"index", index, "address", row.Address, "amount", row.Amount.String(), "withdrawal_id", id)
}

func (o *BatchOrchestrator) fail(index int, row *models.WithdrawalRow, reason string) {
	row.Error = reason
	o.advance(row, models.StatusFailed)
	logger.Log.Warnw("row failed",
		"index", index, "address", row.Address, "amount", row.Amount.String(), "error", reason)
}

func (o *BatchOrchestrator) advance(row *models.WithdrawalRow, next models.RowStatus) {
	if err := row.Advance(next); err != nil {
		logger.Log.Errorw("unexpected row transition", "row_id", row.ID, "error", err)
	}
}

// publishEvent publishes the outcome of a row to Kafka.
func (o *BatchOrchestrator) publishEvent(ctx context.Context, row models.WithdrawalRow, sel models.CoinNetworkSelection) {
	evt := models.WithdrawalEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		Coin:         sel.Coin,
		Network:      sel.Network,
		Address:      row.Address,
		Amount:       row.Amount.String(),
		Status:       string(row.Status),
		WithdrawalID: row.WithdrawalID,
		Error:        row.Error,
	}

	if o.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal withdrawal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(row.ID),
		Value: data,
	}

	// events of a cancelled batch are still published
	if err := o.kafkaWriter.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		logger.Log.Errorw("Failed to publish withdrawal event to Kafka", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Withdrawal event published to Kafka", "event_id", evt.EventID, "status", evt.Status)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
