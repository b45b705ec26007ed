// Package utils provides common utility functions used throughout the application.
package utils

import (
	"os"
)

// DirPerm is the permission mode used when creating output directories.
const DirPerm = 0o755

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates dir and any missing parents. It is a no-op when the
// directory already exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}
