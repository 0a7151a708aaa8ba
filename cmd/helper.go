package cmd

import (
	"fmt"

	"github.com/virtstack/vmherd/hypervisor"
	"github.com/virtstack/vmherd/hypervisor/virsh"
)

// initHypervisor builds the virsh-backed hypervisor client from config.
func initHypervisor() (hypervisor.Hypervisor, error) {
	v, err := virsh.New(conf)
	if err != nil {
		return nil, fmt.Errorf("init hypervisor: %w", err)
	}
	return v, nil
}
