// Package housekeeping removes aged files from the managed upload and output
// directories. It runs independently of pipeline state.
package housekeeping

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CleanupDir deletes regular files under dir whose modification time is
// older than maxAge. A missing directory is a no-op. Returns the number of
// files removed and the bytes reclaimed.
func CleanupDir(dir string, maxAge time.Duration, logger *slog.Logger) (removed int, bytesFreed int64, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, ierr := e.Info()
		if ierr != nil {
			logger.Warn("cleanup.stat.failed", "name", e.Name(), "error", ierr)
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if rerr := os.Remove(path); rerr != nil {
			logger.Warn("cleanup.remove.failed", "path", path, "error", rerr)
			continue
		}
		removed++
		bytesFreed += info.Size()
	}

	if removed > 0 {
		logger.Info("cleanup.ok", "dir", dir, "removed", removed, "bytes_freed", bytesFreed)
	}
	return removed, bytesFreed, nil
}
