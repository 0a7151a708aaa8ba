// Package progress turns orchestration events into user-facing output.
//
// The shutdown core reports what happens through a Reporter; how that is
// rendered — styled console lines, the zenity --progress line protocol,
// or nothing at all — is decided here. Reporters must not influence
// control flow: every method is fire-and-forget.
package progress

import (
	"time"

	"github.com/virtstack/vmherd/types"
)

// Tick is one poll-loop status sample: how long the run has been waiting,
// the configured deadline, and which machines are still up. TimedOut marks
// the sample on which the deadline was found exceeded.
type Tick struct {
	Elapsed  time.Duration
	Timeout  time.Duration
	Running  []types.MachineID
	TimedOut bool
}

// Reporter receives orchestration events in the order they happen.
// Per-machine failure events arrive in input order, after the phase that
// produced them has finished.
type Reporter interface {
	// Starting announces the run: how many machines are up, how long we
	// will wait, and whether survivors get killed at the deadline.
	Starting(total int, timeout time.Duration, kill bool)
	// DispatchStarted marks the beginning of the graceful-shutdown phase.
	DispatchStarted()
	// DispatchFailed reports one machine whose shutdown request failed.
	DispatchFailed(id types.MachineID, err error)
	// Tick reports one poll-loop sample.
	Tick(t Tick)
	// Forcing announces the force-termination phase over the survivors.
	Forcing(machines []types.MachineID, timeout time.Duration)
	// ForceFailed reports one machine whose destroy request failed.
	ForceFailed(id types.MachineID, err error)
	// Finished reports the terminal outcome of the run.
	Finished(outcome types.Outcome)
}

// Nop is a Reporter that discards every event.
type Nop struct{}

var _ Reporter = Nop{}

func (Nop) Starting(int, time.Duration, bool)        {}
func (Nop) DispatchStarted()                         {}
func (Nop) DispatchFailed(types.MachineID, error)    {}
func (Nop) Tick(Tick)                                {}
func (Nop) Forcing([]types.MachineID, time.Duration) {}
func (Nop) ForceFailed(types.MachineID, error)       {}
func (Nop) Finished(types.Outcome)                   {}

// Multi fans every event out to each reporter in order.
func Multi(rs ...Reporter) Reporter { return multi(rs) }

type multi []Reporter

func (m multi) Starting(total int, timeout time.Duration, kill bool) {
	for _, r := range m {
		r.Starting(total, timeout, kill)
	}
}

func (m multi) DispatchStarted() {
	for _, r := range m {
		r.DispatchStarted()
	}
}

func (m multi) DispatchFailed(id types.MachineID, err error) {
	for _, r := range m {
		r.DispatchFailed(id, err)
	}
}

func (m multi) Tick(t Tick) {
	for _, r := range m {
		r.Tick(t)
	}
}

func (m multi) Forcing(machines []types.MachineID, timeout time.Duration) {
	for _, r := range m {
		r.Forcing(machines, timeout)
	}
}

func (m multi) ForceFailed(id types.MachineID, err error) {
	for _, r := range m {
		r.ForceFailed(id, err)
	}
}

func (m multi) Finished(outcome types.Outcome) {
	for _, r := range m {
		r.Finished(outcome)
	}
}
