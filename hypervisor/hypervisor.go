package hypervisor

import (
	"context"

	"github.com/virtstack/vmherd/types"
)

// Hypervisor is the control interface vmherd drives. Implemented by each
// backend; the production backend shells out to virsh.
//
// All three operations are best-effort requests against an external system:
// Shutdown asks the guest OS to power off and returns once the request is
// delivered, long before the guest acts on it (if it ever does). Destroy
// cuts power unconditionally. Neither verifies the resulting state — that
// is the orchestrator's job via ListRunning.
type Hypervisor interface {
	Type() string

	// ListRunning returns the identifiers of all currently running
	// machines. An empty result is a normal answer, not an error.
	// Read-only; calling it twice without intervening state changes
	// yields the same membership.
	ListRunning(ctx context.Context) ([]types.MachineID, error)

	// Shutdown delivers a graceful power-button request to one machine.
	Shutdown(ctx context.Context, id types.MachineID) error

	// Destroy force-terminates one machine, bypassing the guest OS.
	Destroy(ctx context.Context, id types.MachineID) error
}
