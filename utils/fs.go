package utils

import (
	"fmt"
	"os"
)

// EnsureDirs creates each directory (and missing parents) with 0750
// permissions. Existing directories are left untouched.
func EnsureDirs(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o750); err != nil {
			return fmt.Errorf("create dir %s: %w", d, err)
		}
	}
	return nil
}
