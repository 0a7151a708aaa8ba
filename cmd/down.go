package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/virtstack/vmherd/lock"
	"github.com/virtstack/vmherd/lock/flock"
	"github.com/virtstack/vmherd/progress"
	"github.com/virtstack/vmherd/shutdown"
	"github.com/virtstack/vmherd/types"
)

var downCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "down",
		Aliases: []string{"shutdown"},
		Short:   "Shut down every running VM, then optionally kill the stragglers",
		Args:    cobra.NoArgs,
		RunE:    runDown,
	}

	cmd.Flags().Float64P("interval", "i", 1, "polling interval in seconds while waiting")
	cmd.Flags().Float64P("timeout", "t", 30, "seconds to wait for all VMs to shut down")
	cmd.Flags().BoolP("kill-on-timeout", "k", false, "power-cut VMs still running when the timeout is reached")
	cmd.Flags().BoolP("verbose", "v", false, "print per-poll status and pass virsh output through")
	cmd.Flags().BoolP("zenity", "z", false, "emit zenity --progress lines on stdout")

	_ = viper.BindPFlag("interval", cmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("kill_on_timeout", cmd.Flags().Lookup("kill-on-timeout"))
	_ = viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("zenity", cmd.Flags().Lookup("zenity"))

	return cmd
}()

func runDown(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)

	if err := conf.EnsureDirs(); err != nil {
		return err
	}
	hv, err := initHypervisor()
	if err != nil {
		return err
	}

	opts := shutdown.Options{
		Interval:      conf.IntervalDuration(),
		Timeout:       conf.TimeoutDuration(),
		KillOnTimeout: conf.KillOnTimeout,
		Parallel:      conf.PoolSize,
	}

	// One bulk shutdown per host at a time: two runs would interleave
	// signals and poll each other's machines.
	runLock := flock.New(conf.LockFile())
	var report *shutdown.Report
	if err := lock.WithLock(ctx, runLock, func() error {
		var runErr error
		report, runErr = shutdown.New(hv, opts, downReporter()).Run(ctx)
		return runErr
	}); err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return fmt.Errorf("another shutdown run is already in progress: %w", err)
		}
		return err
	}

	if report.Outcome != types.OutcomeSuccess {
		return &types.OutcomeError{Outcome: report.Outcome}
	}
	return nil
}

// downReporter composes the output for a run: always the human console,
// plus the zenity protocol when requested. Protocol lines go first on a
// tick so the dialog updates before any verbose block.
func downReporter() progress.Reporter {
	console := progress.NewConsole(os.Stdout, conf.Verbose)
	if !conf.Zenity {
		return console
	}
	return progress.Multi(progress.NewZenity(os.Stdout), console)
}
