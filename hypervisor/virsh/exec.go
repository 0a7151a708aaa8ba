package virsh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/projecteru2/core/log"

	"github.com/virtstack/vmherd/hypervisor"
)

// argv builds the full command line, injecting the optional connection URI
// before the verb (`virsh -c URI shutdown NAME`).
func (v *Virsh) argv(args ...string) []string {
	out := make([]string, 0, len(args)+3)
	out = append(out, v.conf.VirshBinary)
	if v.conf.ConnectURI != "" {
		out = append(out, "-c", v.conf.ConnectURI)
	}
	return append(out, args...)
}

// run executes a control command whose stdout we do not need.
// In verbose mode the command inherits the terminal, mirroring what a user
// would see running virsh by hand; otherwise output is suppressed and
// stderr is captured into the returned error.
func (v *Virsh) run(ctx context.Context, args ...string) error {
	argv := v.argv(args...)
	log.WithFunc("virsh.run").Debugf(ctx, "exec: %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	var stderr bytes.Buffer
	if v.conf.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}
	return wrapExit(argv, cmd.Run(), stderr.Bytes())
}

// output executes a control command and returns its captured stdout.
func (v *Virsh) output(ctx context.Context, args ...string) ([]byte, error) {
	argv := v.argv(args...)
	log.WithFunc("virsh.output").Debugf(ctx, "exec: %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if v.conf.Verbose {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}
	if err := cmd.Run(); err != nil {
		return nil, wrapExit(argv, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

// wrapExit converts a nonzero exit into a CommandError carrying the exit
// status and captured stderr. Failures to launch at all (binary missing,
// context canceled) pass through wrapped.
func wrapExit(argv []string, err error, stderr []byte) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &hypervisor.CommandError{
			Args:     argv,
			ExitCode: ee.ExitCode(),
			Stderr:   strings.TrimSpace(string(stderr)),
		}
	}
	return fmt.Errorf("exec %s: %w", argv[0], err)
}
