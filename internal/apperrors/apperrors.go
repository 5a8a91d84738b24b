// Package apperrors holds the error taxonomy shared by the gateway, the
// services and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Kinds are comparable with errors.Is.
type Kind struct {
	name string
}

func (k *Kind) Error() string {
	return k.name
}

var (
	// ErrAuth means credentials are missing or rejected.
	ErrAuth = &Kind{"authentication error"}
	// ErrLookup means an unknown coin, network or address entry.
	ErrLookup = &Kind{"lookup error"}
	// ErrNotFound means an unknown withdrawal id.
	ErrNotFound = &Kind{"not found"}
	// ErrInsufficientBalance means amount plus fee exceeds the available balance.
	ErrInsufficientBalance = &Kind{"insufficient balance"}
	// ErrWithdrawal means the exchange refused or failed a withdrawal submission.
	ErrWithdrawal = &Kind{"withdrawal error"}
	// ErrValidation means malformed input or a missing required field.
	ErrValidation = &Kind{"validation error"}
	// ErrExchange is an opaque upstream failure on a read call.
	ErrExchange = &Kind{"exchange error"}
	// ErrStorage is a credential persistence failure.
	ErrStorage = &Kind{"storage error"}
)

// Error is a classified failure of a single operation.
type Error struct {
	Kind *Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && k == e.Kind
}

// Wrap classifies err under kind. A nil err yields nil.
func Wrap(kind *Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// New creates a classified error carrying only a message.
func New(kind *Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Newf is New with formatting.
func Newf(kind *Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost classified error in the chain, or nil.
func KindOf(err error) *Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
