// Package filex holds small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubDir resolves dir to an absolute path and creates dir/sub with
// owner-only permissions if it is missing. The absolute dir is returned.
func EnsureSubDir(dir, sub string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	target := filepath.Join(abs, sub)
	if err := os.MkdirAll(target, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", target, err)
	}

	return abs, nil
}
