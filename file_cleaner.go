package crawlclean

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// NewFileCleaner returns a Cleaner that removes the named files. Files that
// do not exist are skipped silently. Removed paths are appended to *removed
// when it is non-nil.
func NewFileCleaner(paths []string, removed *[]string) Cleaner {
	return func(ctx context.Context) error {
		var cleanErr error
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := os.Remove(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				if cleanErr == nil {
					cleanErr = fmt.Errorf("%w %q: %v", ErrRemoveFile, path, err)
				}
				continue
			}
			if removed != nil {
				*removed = append(*removed, path)
			}
		}
		return cleanErr
	}
}

// NewDirectoryCleaner returns a Cleaner that removes every entry inside dir
// while keeping the directory itself. A missing or empty directory is a
// no-op. The number of removed entries is added to *cleared when it is
// non-nil.
func NewDirectoryCleaner(dir string, cleared *int) Cleaner {
	return func(ctx context.Context) error {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrCleanDirectory, dir, err)
		}

		var cleanErr error
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				if cleanErr == nil {
					cleanErr = fmt.Errorf("%w %q: %v", ErrCleanDirectory, path, err)
				}
				continue
			}
			if cleared != nil {
				*cleared++
			}
		}
		return cleanErr
	}
}
