package models

import "errors"

// RowStatus is the lifecycle state of a withdrawal row.
// pending, processing, completed and failed form the canonical status vocabulary.
type RowStatus string

const (
	StatusNone       RowStatus = ""
	StatusPending    RowStatus = "pending"
	StatusProcessing RowStatus = "processing"
	StatusCompleted  RowStatus = "completed"
	StatusFailed     RowStatus = "failed"
)

// ErrInvalidTransition is returned when a status would move backwards.
var ErrInvalidTransition = errors.New("invalid status transition")

// Rank orders statuses: none < pending < processing < completed = failed.
func (s RowStatus) Rank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusProcessing:
		return 2
	case StatusCompleted, StatusFailed:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving from s to next is a strictly forward step.
func (s RowStatus) CanAdvanceTo(next RowStatus) bool {
	return next.Rank() > s.Rank()
}

// IsCanonical reports whether s belongs to the four-value canonical set.
func (s RowStatus) IsCanonical() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

func (s RowStatus) String() string {
	if s == StatusNone {
		return "none"
	}
	return string(s)
}
