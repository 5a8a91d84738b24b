package mexc

// Unified withdrawal states, the vocabulary shared by exchange adapters.
const (
	WithdrawStatePending  = "pending"
	WithdrawStateOK       = "ok"
	WithdrawStateFailed   = "failed"
	WithdrawStateCanceled = "canceled"
)

// Native withdrawal states reported in the history.
const (
	statusApply         = 1
	statusAuditing      = 2
	statusWait          = 3
	statusProcessing    = 4
	statusWaitPackaging = 5
	statusWaitConfirm   = 6
	statusSuccess       = 7
	statusFailed        = 8
	statusCancel        = 9
	statusManual        = 10
)

// WithdrawState translates a native status code into the unified vocabulary.
// Unknown codes are reported as "unknown".
func WithdrawState(status int) string {
	switch status {
	case statusApply, statusAuditing, statusWait, statusProcessing,
		statusWaitPackaging, statusWaitConfirm, statusManual:
		return WithdrawStatePending
	case statusSuccess:
		return WithdrawStateOK
	case statusFailed:
		return WithdrawStateFailed
	case statusCancel:
		return WithdrawStateCanceled
	default:
		return "unknown"
	}
}
