package util

import (
	"os"
	"path/filepath"
)

// FileExists returns true if the given file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsExecutableFile returns true if path is a regular file with any execute bit set.
func IsExecutableFile(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil || !fileInfo.Mode().IsRegular() {
		return false
	}

	return fileInfo.Mode().Perm()&0o111 != 0
}

// FindUp walks from dir towards the filesystem root and returns the first directory
// that contains a file named fileName. Returns false once stopAt or the root is passed.
func FindUp(dir, fileName, stopAt string) (string, bool) {
	dir = filepath.Clean(dir)
	stopAt = filepath.Clean(stopAt)

	for {
		if FileExists(filepath.Join(dir, fileName)) {
			return dir, true
		}

		if dir == stopAt {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}
