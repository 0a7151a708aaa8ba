// Package virsh drives machines through the external virsh command, the
// stock control client for libvirt-managed hypervisors (QEMU/KVM and
// friends). Each operation is one subprocess invocation; virsh owns the
// connection, authentication, and wire protocol.
package virsh

import (
	"context"
	"fmt"
	"strings"

	"github.com/virtstack/vmherd/config"
	"github.com/virtstack/vmherd/hypervisor"
	"github.com/virtstack/vmherd/types"
)

const typ = "virsh"

// compile-time interface check.
var _ hypervisor.Hypervisor = (*Virsh)(nil)

// Virsh implements hypervisor.Hypervisor by shelling out to virsh.
type Virsh struct {
	conf *Config
}

// Config holds virsh specific configuration, embedding the global config.
type Config struct {
	config.Config
}

// New creates a virsh-backed hypervisor client.
func New(conf *config.Config) (*Virsh, error) {
	if conf == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if conf.VirshBinary == "" {
		return nil, fmt.Errorf("virsh binary not configured")
	}
	return &Virsh{conf: &Config{Config: *conf}}, nil
}

func (v *Virsh) Type() string { return typ }

// ListRunning queries `virsh list --state-running --name` and parses the
// newline-separated machine names. No machines running is a normal empty
// answer; any command failure surfaces as a QueryError.
func (v *Virsh) ListRunning(ctx context.Context) ([]types.MachineID, error) {
	out, err := v.output(ctx, "list", "--state-running", "--name")
	if err != nil {
		return nil, &hypervisor.QueryError{Err: err}
	}
	return parseNameList(out), nil
}

// Shutdown sends a graceful power-button request via `virsh shutdown`.
// Delivery only: the guest OS decides whether and when to act on it.
func (v *Virsh) Shutdown(ctx context.Context, id types.MachineID) error {
	return v.run(ctx, "shutdown", string(id))
}

// Destroy halts a machine immediately via `virsh destroy`, the libvirt
// equivalent of pulling the plug.
func (v *Virsh) Destroy(ctx context.Context, id types.MachineID) error {
	return v.run(ctx, "destroy", string(id))
}

// parseNameList splits virsh --name output into machine IDs, dropping
// blank lines. virsh terminates the list with an empty line; some versions
// pad names with whitespace.
func parseNameList(out []byte) []types.MachineID {
	var ids []types.MachineID
	for _, line := range strings.Split(string(out), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		ids = append(ids, types.MachineID(name))
	}
	return ids
}
