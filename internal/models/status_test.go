package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRowStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from RowStatus
		to   RowStatus
		want bool
	}{
		{StatusNone, StatusPending, true},
		{StatusNone, StatusFailed, true},
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusFailed, true},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusFailed, true},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusFailed, false},
		{StatusFailed, StatusProcessing, false},
		{StatusPending, StatusPending, false},
		{StatusPending, StatusNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestRowStatus_IsCanonical(t *testing.T) {
	assert.True(t, StatusProcessing.IsCanonical())
	assert.False(t, StatusNone.IsCanonical())
	assert.False(t, RowStatus("ok").IsCanonical())
	assert.Equal(t, "none", StatusNone.String())
}

func TestWithdrawalRow_Advance(t *testing.T) {
	row := WithdrawalRow{ID: "r1"}

	assert.NoError(t, row.Advance(StatusPending))
	assert.NoError(t, row.Advance(StatusProcessing))
	err := row.Advance(StatusPending)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StatusProcessing, row.Status)
}

func TestWithdrawalRow_Submittable(t *testing.T) {
	tests := []struct {
		name string
		row  WithdrawalRow
		want bool
	}{
		{"valid", WithdrawalRow{Amount: decimal.RequireFromString("0.1"), IsValidAddress: true}, true},
		{"zero amount", WithdrawalRow{Amount: decimal.Zero, IsValidAddress: true}, false},
		{"negative amount", WithdrawalRow{Amount: decimal.NewFromInt(-1), IsValidAddress: true}, false},
		{"invalid address", WithdrawalRow{Amount: decimal.NewFromInt(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.Submittable())
		})
	}
}
