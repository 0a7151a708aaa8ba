// Package shutdown implements the supervised bulk-shutdown run: ask every
// running machine to power down, poll the fleet until it drains or a
// deadline expires, then optionally destroy the survivors.
//
// The orchestrator only decides; everything observable goes through a
// progress.Reporter, and the final Outcome carries the exit contract.
package shutdown

import (
	"context"
	"time"

	"github.com/projecteru2/core/log"
	"golang.org/x/sync/errgroup"

	"github.com/virtstack/vmherd/hypervisor"
	"github.com/virtstack/vmherd/progress"
	"github.com/virtstack/vmherd/types"
	"github.com/virtstack/vmherd/utils"
)

// Orchestrator drives one bulk-shutdown run against a hypervisor.
type Orchestrator struct {
	hv       hypervisor.Hypervisor
	opts     Options
	reporter progress.Reporter
}

// New returns an Orchestrator. A nil reporter discards all events.
func New(hv hypervisor.Hypervisor, opts Options, r progress.Reporter) *Orchestrator {
	if r == nil {
		r = progress.Nop{}
	}
	return &Orchestrator{hv: hv, opts: opts, reporter: r}
}

// Run executes one supervised bulk shutdown and reports how it ended.
// Per-machine request failures are part of the Report, not the error:
// err is non-nil only for hard operational failures (bad options, an
// unreachable hypervisor, a canceled context), in which case no Report
// is returned.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	if err := o.opts.validate(); err != nil {
		return nil, err
	}
	logger := log.WithFunc("shutdown.Run")

	initial, err := o.hv.ListRunning(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{RunID: utils.NewRunID(), Initial: initial}
	logger.Infof(ctx, "run %s: %d machines running on %s, timeout %s, kill on timeout %v",
		report.RunID, len(initial), o.hv.Type(), o.opts.Timeout, o.opts.KillOnTimeout)
	o.reporter.Starting(len(initial), o.opts.Timeout, o.opts.KillOnTimeout)

	// Ask every machine to power down. A request that never went out is
	// not a machine ignoring it: on any send failure the run ends here
	// and the poll loop never starts.
	o.reporter.DispatchStarted()
	report.Dispatch = o.runBatch(ctx, initial, "shutdown", o.hv.Shutdown)
	for _, id := range report.Dispatch.Failures() {
		o.reporter.DispatchFailed(id, report.Dispatch.Err(id))
	}

	var timedOut, forceFailed bool
	if !report.Dispatch.Failed() {
		var remaining []types.MachineID
		remaining, timedOut, err = o.poll(ctx, initial, report)
		if err != nil {
			return nil, err
		}
		if timedOut {
			report.Remaining = remaining
			if o.opts.KillOnTimeout {
				o.reporter.Forcing(remaining, o.opts.Timeout)
				report.Force = o.runBatch(ctx, remaining, "destroy", o.hv.Destroy)
				for _, id := range report.Force.Failures() {
					o.reporter.ForceFailed(id, report.Force.Err(id))
				}
				forceFailed = report.Force.Failed()
			}
		}
	}

	report.Outcome = resolveOutcome(report.Dispatch.Failed(), timedOut, o.opts.KillOnTimeout, forceFailed)
	logger.Infof(ctx, "run %s finished: %s after %s (%d ticks)",
		report.RunID, report.Outcome, report.Elapsed, report.Ticks)
	o.reporter.Finished(report.Outcome)
	return report, nil
}

// poll watches the running set until it drains or the deadline passes.
// Elapsed time is always measured from one fixed start, and the deadline
// is evaluated before the interval sleep, so the loop never oversleeps
// past it. Returns the machines still running and whether the deadline
// was hit.
func (o *Orchestrator) poll(ctx context.Context, running []types.MachineID, report *Report) ([]types.MachineID, bool, error) {
	logger := log.WithFunc("shutdown.poll")
	start := time.Now()
	ticker := time.NewTicker(o.opts.Interval)
	defer ticker.Stop()

	for len(running) > 0 {
		elapsed := time.Since(start)
		timedOut := elapsed > o.opts.Timeout
		report.Ticks++
		report.Elapsed = elapsed
		o.reporter.Tick(progress.Tick{
			Elapsed:  elapsed,
			Timeout:  o.opts.Timeout,
			Running:  running,
			TimedOut: timedOut,
		})
		if timedOut {
			logger.Warnf(ctx, "deadline exceeded after %s, %d machines still running", elapsed, len(running))
			return running, true, nil
		}
		logger.Debugf(ctx, "%d machines still running after %s", len(running), elapsed)

		select {
		case <-ctx.Done():
			return running, false, ctx.Err()
		case <-ticker.C:
		}

		next, err := o.hv.ListRunning(ctx)
		if err != nil {
			return running, false, err
		}
		running = next
	}
	report.Elapsed = time.Since(start)
	return nil, false, nil
}

// runBatch issues one request per machine with at most opts.Parallel in
// flight. Every machine is attempted: a failure is recorded in the result
// and never cancels the rest of the batch. Workers write disjoint slots,
// so results need no locking and failure order follows input order.
func (o *Orchestrator) runBatch(ctx context.Context, ids []types.MachineID, op string, fn func(context.Context, types.MachineID) error) *PhaseResult {
	logger := log.WithFunc("shutdown." + op)
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(o.opts.Parallel)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				logger.Warnf(ctx, "%s %s: %v", op, id, err)
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait() // workers record failures instead of returning them

	res := newPhaseResult(ids)
	for i, id := range ids {
		res.record(id, errs[i])
	}
	return res
}

// resolveOutcome ranks the terminal conditions of a run: a failed send
// beats everything, a drained fleet is success, and a timeout is only
// survivable when every survivor was successfully destroyed.
func resolveOutcome(dispatchFailed, timedOut, killOnTimeout, forceFailed bool) types.Outcome {
	switch {
	case dispatchFailed:
		return types.OutcomeDispatchFailed
	case !timedOut:
		return types.OutcomeSuccess
	case !killOnTimeout:
		return types.OutcomeTimedOut
	case forceFailed:
		return types.OutcomeForceFailed
	default:
		return types.OutcomeSuccess
	}
}
