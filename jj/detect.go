package jj

import (
	"os"
	"path/filepath"
)

// FindRoot walks up from start looking for the .jj directory that marks a
// workspace root. It spawns no process, which keeps the detect gate far
// cheaper than the status query the host prompt framework guards with it.
func FindRoot(start string) (string, bool) {
	dir := start
	for {
		info, err := os.Stat(filepath.Join(dir, ".jj"))
		if err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// IsRepo reports whether dir is inside a jj workspace.
func IsRepo(dir string) bool {
	_, ok := FindRoot(dir)
	return ok
}
