// Package archive moves a finished export directory out of the way so the
// next run starts from an empty one.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveExports moves dir into an "archive" directory next to it, named
// after dir with a timestamp suffix, and returns the new path
func ArchiveExports(dir string) (string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("export directory does not exist: %s", dir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat export directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}

	parentDir := filepath.Dir(dir)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(dir)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405")))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405.000000")))
	}

	if err := os.Rename(dir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive export directory: %w", err)
	}

	return archivePath, nil
}
