package shutdown

import (
	"time"

	"github.com/virtstack/vmherd/types"
)

// PhaseResult records the per-machine outcome of one best-effort batch
// phase, preserving input order. A nil error marks success.
type PhaseResult struct {
	ids  []types.MachineID
	errs map[types.MachineID]error
}

func newPhaseResult(ids []types.MachineID) *PhaseResult {
	return &PhaseResult{ids: ids, errs: make(map[types.MachineID]error, len(ids))}
}

func (p *PhaseResult) record(id types.MachineID, err error) {
	if err != nil {
		p.errs[id] = err
	}
}

// Machines returns the attempted machines in input order.
func (p *PhaseResult) Machines() []types.MachineID {
	if p == nil {
		return nil
	}
	return p.ids
}

// Err returns the recorded failure for id, or nil.
func (p *PhaseResult) Err(id types.MachineID) error {
	if p == nil {
		return nil
	}
	return p.errs[id]
}

// Failures returns the failed machines in input order.
func (p *PhaseResult) Failures() []types.MachineID {
	if p == nil {
		return nil
	}
	var out []types.MachineID
	for _, id := range p.ids {
		if p.errs[id] != nil {
			out = append(out, id)
		}
	}
	return out
}

// Failed reports whether any machine in the phase failed.
func (p *PhaseResult) Failed() bool {
	return p != nil && len(p.errs) > 0
}

// Report summarizes one orchestration run.
type Report struct {
	// RunID correlates this run's report with its log lines.
	RunID string
	// Initial is the running set captured before dispatch.
	Initial []types.MachineID
	// Dispatch holds the graceful-shutdown phase results.
	Dispatch *PhaseResult
	// Force holds the force-termination phase results; nil unless the
	// deadline passed with forcing enabled.
	Force *PhaseResult
	// Remaining lists the machines still running when the deadline
	// passed; nil unless the run timed out.
	Remaining []types.MachineID
	// Ticks counts the poll samples taken.
	Ticks int
	// Elapsed is the poll-loop time consumed.
	Elapsed time.Duration
	// Outcome classifies the run terminally.
	Outcome types.Outcome
}
