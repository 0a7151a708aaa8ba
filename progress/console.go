package progress

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/virtstack/vmherd/hypervisor"
	"github.com/virtstack/vmherd/types"
	"github.com/virtstack/vmherd/ui"
)

var _ Reporter = (*Console)(nil)

// Console renders events as human-readable lines. Styling degrades to the
// plain text on non-TTY writers, so piped output stays clean. In verbose
// mode every tick prints a waiting block naming the surviving machines;
// otherwise the block appears once, on the timed-out tick.
type Console struct {
	w       io.Writer
	verbose bool

	timeout time.Duration // remembered from Starting for the final timeout message
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, verbose bool) *Console {
	return &Console{w: w, verbose: verbose}
}

func (c *Console) Starting(total int, timeout time.Duration, kill bool) {
	c.timeout = timeout
	mode := "Do not kill any"
	if kill {
		mode = "Kill all"
	}
	fmt.Fprintf(c.w, "Shutting down all running VMs (currently %s) within %s seconds. %s remaining VMs.\n",
		ui.Bold(strconv.Itoa(total)), seconds(timeout), mode)
}

func (c *Console) DispatchStarted() {}

func (c *Console) DispatchFailed(id types.MachineID, err error) {
	fmt.Fprintln(c.w, ui.ErrorStyle.Render(
		fmt.Sprintf("Error trying to shut down VM '%s' (code %d)!", id, hypervisor.ResultCode(err))))
}

func (c *Console) Tick(t Tick) {
	if !c.verbose && !t.TimedOut {
		return
	}
	fmt.Fprintf(c.w, "\n[%5.1fs] Still waiting for %d VMs to shut down:\n", t.Elapsed.Seconds(), len(t.Running))
	for _, id := range t.Running {
		fmt.Fprintf(c.w, " > %s\n", ui.Accent(string(id)))
	}
}

func (c *Console) Forcing(_ []types.MachineID, timeout time.Duration) {
	fmt.Fprintf(c.w, "\n%s\n", ui.WarnStyle.Render(
		fmt.Sprintf("Timeout of %s seconds reached! Killing all remaining VMs now!", seconds(timeout))))
}

func (c *Console) ForceFailed(id types.MachineID, err error) {
	if !c.verbose {
		return
	}
	fmt.Fprintln(c.w, ui.ErrorStyle.Render(
		fmt.Sprintf("Error trying to forcibly kill VM '%s' (code %d)!", id, hypervisor.ResultCode(err))))
}

func (c *Console) Finished(outcome types.Outcome) {
	switch outcome {
	case types.OutcomeSuccess:
		fmt.Fprintln(c.w, ui.SuccessStyle.Render("All VMs were shut down successfully."))
	case types.OutcomeDispatchFailed:
		fmt.Fprintln(c.w, ui.ErrorStyle.Render("ERROR: could not successfully send all shutdown commands!"))
	case types.OutcomeTimedOut:
		fmt.Fprintln(c.w, ui.ErrorStyle.Render(
			fmt.Sprintf("ERROR: Timeout of %s seconds reached!", seconds(c.timeout))))
	case types.OutcomeForceFailed:
		fmt.Fprintln(c.w, ui.ErrorStyle.Render("ERROR: could not successfully send all destroy commands!"))
	}
}

// seconds renders a duration the way it was given on the command line:
// a bare number of seconds without a unit suffix.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}
