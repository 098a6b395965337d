package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// LockName is the liveness lock file kept inside every staged directory.
const LockName = ".scribe.lock"

// Dir is a handle to a per-run staging directory. The zero value is not
// usable; obtain one from Create.
type Dir struct {
	Path     string
	lock     *flock.Flock
	released bool
}

// Create makes a fresh, uniquely named directory under root and locks it for
// this process. Uniqueness is delegated to os.MkdirTemp, so concurrent runs
// never collide. An empty root falls back to the system temp directory.
func Create(root string) (*Dir, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = os.TempDir()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("ensure staging root: %w", err)
	}

	path, err := os.MkdirTemp(root, "scribe-")
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	lock := flock.New(filepath.Join(path, LockName))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		_ = os.RemoveAll(path)
		if err == nil {
			err = fmt.Errorf("lock already held")
		}
		return nil, fmt.Errorf("lock staging directory: %w", err)
	}

	return &Dir{Path: path, lock: lock}, nil
}

// Release unlocks and removes the directory with everything in it. It is safe
// to call on a nil handle, after the directory was already removed, and more
// than once; errors are swallowed because cleanup must never mask the run's
// real outcome.
func (d *Dir) Release() {
	if d == nil || d.released {
		return
	}
	d.released = true
	if d.lock != nil {
		_ = d.lock.Unlock()
	}
	_ = os.RemoveAll(d.Path)
}
