package shutdown

import (
	"fmt"
	"time"
)

// Options configure a single orchestration run. Immutable once Run starts.
type Options struct {
	// Interval is the pause between state polls.
	Interval time.Duration
	// Timeout bounds how long the run waits for machines to power down
	// after the shutdown requests went out.
	Timeout time.Duration
	// KillOnTimeout destroys whatever is still running when Timeout
	// expires, instead of failing the run.
	KillOnTimeout bool
	// Parallel bounds how many shutdown/destroy requests are in flight at
	// once. 1 keeps requests strictly serial.
	Parallel int
}

func (o Options) validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", o.Interval)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	if o.Parallel < 1 {
		return fmt.Errorf("parallel request limit must be at least 1, got %d", o.Parallel)
	}
	return nil
}
