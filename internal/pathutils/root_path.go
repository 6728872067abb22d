package pathutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FindModuleRoot returns the absolute path to the root directory of the Go module
// containing dir, by searching for a go.mod file in dir and its parent directories.
// An empty dir means the current working directory.
func FindModuleRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get current working directory")
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", dir)
	}
	for {
		goModPath := filepath.Join(dir, "go.mod")
		fi, err := os.Stat(goModPath)
		switch {
		case err == nil && !fi.IsDir():
			return dir, nil
		case err != nil && !os.IsNotExist(err):
			return "", errors.Wrapf(err, "failed to stat %s", goModPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("go.mod not found in directory tree")
}
