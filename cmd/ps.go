package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/virtstack/vmherd/ui"
)

var psCmd = &cobra.Command{
	Use:     "ps",
	Aliases: []string{"list"},
	Short:   "List running VMs",
	RunE:    runPS,
}

// runPS prints one name per line, mirroring `virsh list --state-running
// --name` so the output stays pipeable.
func runPS(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	hv, err := initHypervisor()
	if err != nil {
		return err
	}

	machines, err := hv.ListRunning(ctx)
	if err != nil {
		return fmt.Errorf("ps: %w", err)
	}
	if len(machines) == 0 {
		fmt.Println(ui.Muted("No running VMs."))
		return nil
	}
	for _, id := range machines {
		fmt.Println(id)
	}
	return nil
}
