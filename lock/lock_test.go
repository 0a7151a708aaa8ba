package lock

import (
	"context"
	"errors"
	"testing"
)

type fakeLocker struct {
	lockErr   error
	locks     int
	unlocks   int
	unlockErr error
}

func (f *fakeLocker) Lock(context.Context) error {
	f.locks++
	return f.lockErr
}

func (f *fakeLocker) Unlock(context.Context) error {
	f.unlocks++
	return f.unlockErr
}

func TestWithLock_ReleasesAfterFnError(t *testing.T) {
	fl := &fakeLocker{}
	wantErr := errors.New("boom")

	err := WithLock(context.Background(), fl, func() error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if fl.locks != 1 || fl.unlocks != 1 {
		t.Errorf("expected 1 lock and 1 unlock, got %d and %d", fl.locks, fl.unlocks)
	}
}

func TestWithLock_SkipsFnOnAcquireFailure(t *testing.T) {
	fl := &fakeLocker{lockErr: ErrHeld}
	called := false

	err := WithLock(context.Background(), fl, func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrHeld) {
		t.Fatalf("expected ErrHeld, got %v", err)
	}
	if called {
		t.Error("fn should not run when acquisition fails")
	}
	if fl.unlocks != 0 {
		t.Errorf("expected no unlock, got %d", fl.unlocks)
	}
}
