// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"io/fs"
	"os"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CountEntries returns the number of entries in a directory. A missing
// directory counts as empty.
func CountEntries(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// IsWritable reports whether a file can be created in dir, by creating and
// removing a probe file.
func IsWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".crawlclean-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
