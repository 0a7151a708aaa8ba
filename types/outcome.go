package types

// Outcome is the final classification of a shutdown run. It is the only
// value the process boundary consults when choosing an exit code.
type Outcome int

const (
	// OutcomeSuccess: every machine went down — gracefully, or forced off
	// successfully after the deadline.
	OutcomeSuccess Outcome = iota
	// OutcomeTimedOut: the deadline passed with machines still running and
	// forcing disabled.
	OutcomeTimedOut
	// OutcomeDispatchFailed: at least one graceful-shutdown request could
	// not be sent. The poll loop never ran.
	OutcomeDispatchFailed
	// OutcomeForceFailed: forcing was required and at least one
	// force-terminate request failed.
	OutcomeForceFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTimedOut:
		return "timed out"
	case OutcomeDispatchFailed:
		return "dispatch failed"
	case OutcomeForceFailed:
		return "force failed"
	default:
		return "unknown"
	}
}

// ExitCode maps an outcome onto the process exit contract:
// 0 all down, 1 timeout without forcing, 3 a shutdown or destroy
// request failed to send.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess:
		return 0
	case OutcomeTimedOut:
		return 1
	case OutcomeDispatchFailed, OutcomeForceFailed:
		return 3
	default:
		return 1
	}
}

// OutcomeError carries a non-success Outcome out of a command so that
// main.go can translate it into the exit code. The human-readable account
// of what failed has already been reported by then; Error exists for logs
// and errors.As.
type OutcomeError struct {
	Outcome Outcome
}

func (e *OutcomeError) Error() string {
	switch e.Outcome {
	case OutcomeTimedOut:
		return "timeout reached with machines still running"
	case OutcomeDispatchFailed:
		return "could not send all shutdown requests"
	case OutcomeForceFailed:
		return "could not send all destroy requests"
	default:
		return "shutdown run failed"
	}
}
