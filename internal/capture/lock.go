package capture

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// LockOutput acquires an advisory lock next to the output file so two runs
// cannot interleave rows in one CSV. The lock is non-blocking: a second run
// against the same output fails immediately instead of queueing.
func LockOutput(path string) (*flock.Flock, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: lock output %s: %v", ErrOutput, path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: output %s is locked by another run", ErrOutput, path)
	}
	return lock, nil
}

// ReleaseOutput drops the lock and removes its file.
func ReleaseOutput(lock *flock.Flock) {
	if lock == nil {
		return
	}
	path := lock.Path()
	_ = lock.Unlock()
	_ = os.Remove(path)
}
