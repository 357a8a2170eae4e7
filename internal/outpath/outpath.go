// Package outpath manages output locations for generated files
package outpath

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// FilePerms is the mode for generated asset and icon files
	FilePerms = 0o644

	// DirPerms is the mode for created output directories
	DirPerms = 0o755
)

// EnsureDir creates a directory (and parents) if it does not exist.
// Calling it for an existing directory is a no-op.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, os.FileMode(DirPerms)); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// TempPath returns a sibling path for staging a file before it is moved
// into place. The PID and timestamp keep concurrent runs apart.
func TempPath(finalPath string) string {
	return fmt.Sprintf("%s.tmp.%d.%d", finalPath, os.Getpid(), time.Now().Unix())
}

// WriteFileAtomic writes data to a temporary sibling of path, then moves it
// into place. A failed write never leaves a partially written file at path.
func WriteFileAtomic(path string, data []byte, logger hclog.Logger) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	tempPath := TempPath(path)
	logger.Debug("💾 Staging file", "temp", tempPath, "size", len(data))

	if err := os.WriteFile(tempPath, data, os.FileMode(FilePerms)); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := Replace(tempPath, path, logger); err != nil {
		os.Remove(tempPath)
		return err
	}

	return nil
}
