package utils

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const (
	lockFileSuffix = ".lock"
)

// FileLock serializes writers of one output file across processes.
type FileLock struct {
	lock *flock.Flock
	path string
}

// NewFileLock creates a lock next to path.
func NewFileLock(path string) *FileLock {
	lockPath := path + lockFileSuffix
	return &FileLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}
}

// Lock acquires the lock, waiting if necessary.
// It will log a message if it has to wait.
func (l *FileLock) Lock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	if !locked {
		Log.Warnf("Another playscope process is writing %s, waiting for it to finish...", l.path)
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Unlock releases the lock. The lock file stays on disk: another process may
// already be waiting on it.
func (l *FileLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
