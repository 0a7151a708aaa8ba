package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/virtstack/vmherd/types"
)

func TestZenity_DispatchStarted(t *testing.T) {
	var buf bytes.Buffer
	NewZenity(&buf).DispatchStarted()

	if got := buf.String(); got != "# Sending shutdown signals...\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestZenity_Tick(t *testing.T) {
	testCases := []struct {
		name string
		tick Tick
		want string
	}{
		{
			name: "plural early",
			tick: Tick{
				Elapsed: 3 * time.Second,
				Timeout: 30 * time.Second,
				Running: []types.MachineID{"web-1", "db-1"},
			},
			want: "# Waiting for 2 VMs to shut down... (27 seconds left)\n10\n",
		},
		{
			name: "singular",
			tick: Tick{
				Elapsed: 1 * time.Second,
				Timeout: 30 * time.Second,
				Running: []types.MachineID{"web-1"},
			},
			want: "# Waiting for 1 VM to shut down... (29 seconds left)\n3\n",
		},
		{
			name: "deadline exceeded pins at 99 and floors seconds left",
			tick: Tick{
				Elapsed:  31 * time.Second,
				Timeout:  30 * time.Second,
				Running:  []types.MachineID{"web-1"},
				TimedOut: true,
			},
			want: "# Waiting for 1 VM to shut down... (0 seconds left)\n99\n",
		},
		{
			name: "exactly at deadline pins at 99",
			tick: Tick{
				Elapsed: 30 * time.Second,
				Timeout: 30 * time.Second,
				Running: []types.MachineID{"a", "b", "c"},
			},
			want: "# Waiting for 3 VMs to shut down... (0 seconds left)\n99\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewZenity(&buf).Tick(tc.tick)
			if got := buf.String(); got != tc.want {
				t.Fatalf("Tick output = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestZenity_Forcing(t *testing.T) {
	var buf bytes.Buffer
	z := NewZenity(&buf)

	z.Forcing([]types.MachineID{"web-1"}, 30*time.Second)
	if got := buf.String(); got != "# Timeout reached! Have to kill the remaining VM.\n" {
		t.Fatalf("singular output = %q", got)
	}

	buf.Reset()
	z.Forcing([]types.MachineID{"a", "b", "c"}, 30*time.Second)
	if got := buf.String(); got != "# Timeout reached! Have to kill the remaining 3 VMs.\n" {
		t.Fatalf("plural output = %q", got)
	}
}

func TestZenity_FinishedOnlyReportsSuccess(t *testing.T) {
	var buf bytes.Buffer
	z := NewZenity(&buf)

	z.Finished(types.OutcomeSuccess)
	if got := buf.String(); got != "# All VMs were shut down successfully.\n100\n" {
		t.Fatalf("success output = %q", got)
	}

	for _, outcome := range []types.Outcome{
		types.OutcomeTimedOut, types.OutcomeDispatchFailed, types.OutcomeForceFailed,
	} {
		buf.Reset()
		z.Finished(outcome)
		if buf.Len() != 0 {
			t.Errorf("%v: expected no output, got %q", outcome, buf.String())
		}
	}
}

func TestZenity_SilentEvents(t *testing.T) {
	var buf bytes.Buffer
	z := NewZenity(&buf)

	z.Starting(3, 30*time.Second, true)
	z.DispatchFailed("web-1", nil)
	z.ForceFailed("web-1", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected protocol-only output, got %q", buf.String())
	}
}
