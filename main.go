package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/virtstack/vmherd/cmd"
	"github.com/virtstack/vmherd/types"
	"github.com/virtstack/vmherd/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var oe *types.OutcomeError
		if errors.As(err, &oe) {
			// The reporter already told the story on stdout; only the
			// exit code is left to deliver.
			os.Exit(oe.Outcome.ExitCode())
		}
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
