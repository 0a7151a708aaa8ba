package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/virtstack/vmherd/types"
)

var _ Reporter = (*Zenity)(nil)

// Zenity emits the line protocol consumed by `zenity --progress`: lines
// starting with "# " replace the dialog text, bare integer lines set the
// percentage. Only protocol lines are written; everything human-readable
// is the Console reporter's job.
type Zenity struct {
	w io.Writer
}

// NewZenity returns a Zenity reporter writing to w.
func NewZenity(w io.Writer) *Zenity {
	return &Zenity{w: w}
}

func (z *Zenity) Starting(int, time.Duration, bool) {}

func (z *Zenity) DispatchStarted() {
	fmt.Fprintln(z.w, "# Sending shutdown signals...")
}

func (z *Zenity) DispatchFailed(types.MachineID, error) {}

func (z *Zenity) Tick(t Tick) {
	n := len(t.Running)
	left := int((t.Timeout - t.Elapsed).Seconds())
	if left < 0 {
		left = 0
	}
	fmt.Fprintf(z.w, "# Waiting for %d VM%s to shut down... (%d seconds left)\n", n, plural(n), left)
	fmt.Fprintln(z.w, percent(t))
}

func (z *Zenity) Forcing(machines []types.MachineID, _ time.Duration) {
	target := "VM"
	if n := len(machines); n != 1 {
		target = fmt.Sprintf("%d VMs", n)
	}
	fmt.Fprintf(z.w, "# Timeout reached! Have to kill the remaining %s.\n", target)
}

func (z *Zenity) ForceFailed(types.MachineID, error) {}

func (z *Zenity) Finished(outcome types.Outcome) {
	if outcome != types.OutcomeSuccess {
		return
	}
	fmt.Fprintln(z.w, "# All VMs were shut down successfully.")
	fmt.Fprintln(z.w, 100)
}

// percent maps elapsed time onto 0..99; the dialog only ever sees 100
// through Finished. Samples past the deadline pin at 99.
func percent(t Tick) int {
	if t.Elapsed >= t.Timeout {
		return 99
	}
	return int(100 * t.Elapsed / t.Timeout)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
