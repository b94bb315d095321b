// Package vault locates the directory tree governing a file: the nearest
// ancestor directory containing a .tlp policy file.
package vault

import (
	"os"
	"path/filepath"
)

// PolicyFileName is the per-tree policy file that roots a vault.
const PolicyFileName = ".tlp"

func findFromDir(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, PolicyFileName)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Find walks up from filePath's parent directory looking for a vault
// root. Returns false when no ancestor holds a policy file, meaning the
// file is ungoverned.
func Find(filePath string) (string, bool) {
	return findFromDir(filepath.Dir(filePath))
}

// FindFromCwd walks up from the current working directory.
func FindFromCwd() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return findFromDir(cwd)
}
