package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirs_CreatesNested(t *testing.T) {
	base := t.TempDir()
	a := filepath.Join(base, "a", "b")
	c := filepath.Join(base, "c")

	if err := EnsureDirs(a, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range []string{a, c} {
		fi, err := os.Stat(d)
		if err != nil {
			t.Fatalf("stat %s: %v", d, err)
		}
		if !fi.IsDir() {
			t.Errorf("%s is not a directory", d)
		}
	}
}

func TestEnsureDirs_ExistingIsNoop(t *testing.T) {
	base := t.TempDir()
	if err := EnsureDirs(base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnsureDirs_FileInTheWay(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := EnsureDirs(filepath.Join(blocker, "child")); err == nil {
		t.Fatal("expected error when a file blocks the path")
	}
}
