package hypervisor

import (
	"errors"
	"fmt"
	"strings"
)

// QueryError wraps a failure to list running machines: the control command
// was unreachable, exited nonzero, or produced output we could not parse.
// Fatal to an orchestration run — the core does not retry inventory queries.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query running machines: %v", e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// CommandError reports a control command that ran but exited nonzero.
// ExitCode is the subprocess exit status; Stderr holds whatever the command
// wrote there, trimmed, for the failure message.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ResultCode extracts the control-command exit status from an operation
// error, walking the wrap chain. Returns -1 when the error carries no
// CommandError (the command never ran, or the backend is a test double).
func ResultCode(err error) int {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}
	return -1
}
