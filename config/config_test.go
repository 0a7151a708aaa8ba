package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDurationConversions(t *testing.T) {
	c := DefaultConfig()
	if got := c.IntervalDuration(); got != time.Second {
		t.Errorf("default interval = %v, want 1s", got)
	}
	if got := c.TimeoutDuration(); got != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", got)
	}

	c.Interval = 0.5
	if got := c.IntervalDuration(); got != 500*time.Millisecond {
		t.Errorf("fractional interval = %v, want 500ms", got)
	}
	c.Timeout = 2.5
	if got := c.TimeoutDuration(); got != 2500*time.Millisecond {
		t.Errorf("fractional timeout = %v, want 2.5s", got)
	}
}

func TestLockFileUnderRunDir(t *testing.T) {
	c := DefaultConfig()
	c.RunDir = "/run/vmherd"
	if got := c.LockFile(); got != filepath.Join("/run/vmherd", "vmherd.lock") {
		t.Errorf("lock file = %q", got)
	}
}
