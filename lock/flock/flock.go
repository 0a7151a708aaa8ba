package flock

import (
	"context"
	"fmt"

	"github.com/gofrs/flock"

	"github.com/virtstack/vmherd/lock"
)

// compile-time interface check.
var _ lock.Locker = (*Lock)(nil)

// Lock provides cross-process mutual exclusion using flock(2) via gofrs/flock.
// Acquisition is non-blocking: a held lock fails immediately rather than
// queueing runs behind each other. Lock files are long-lived and never
// deleted after use.
type Lock struct {
	fl *flock.Flock
}

// New creates a new Lock for the given path.
func New(path string) *Lock {
	return &Lock{fl: flock.New(path)}
}

// Lock attempts to acquire an exclusive flock without blocking.
// Reports lock.ErrHeld when another process holds it.
func (l *Lock) Lock(_ context.Context) error {
	locked, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire flock %s: %w", l.fl.Path(), err)
	}
	if !locked {
		return fmt.Errorf("flock %s: %w", l.fl.Path(), lock.ErrHeld)
	}
	return nil
}

// Unlock releases the flock.
func (l *Lock) Unlock(_ context.Context) error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("release flock %s: %w", l.fl.Path(), err)
	}
	return nil
}
