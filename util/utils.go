package util

import (
	"os"
	"path/filepath"
)

// AbsolutePath resolves path against the current working directory. Absolute
// paths are returned cleaned.
func AbsolutePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	root, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, path), nil
}
