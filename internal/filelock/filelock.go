// Package filelock writes small files atomically while holding an advisory
// lock, so concurrent writers never interleave and readers never observe a
// partial file.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrExists is returned by WriteFile when the target exists and overwrite is false.
var ErrExists = errors.New("file already exists")

// ErrLockTimeout is returned when the lock is not acquired before the context expires.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// retryDelay is how often a blocked writer polls the lock.
const retryDelay = 50 * time.Millisecond

// Lock is an exclusive advisory lock on a sidecar ".lock" file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New returns the lock guarding target. The lock file is target + ".lock".
func New(target string) *Lock {
	lockPath := target + ".lock"
	return &Lock{
		flock: flock.New(lockPath),
		path:  lockPath,
	}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire blocks until the lock is held or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	locked, err := l.flock.TryLockContext(ctx, retryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, l.path)
		}
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLockTimeout, l.path)
	}
	return nil
}

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file %s: %w", l.path, err)
	}
	return nil
}

// AtomicWrite writes data through a temp file in the target directory and
// renames it over path. On failure the previous content of path is intact.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// WriteFile locks path, refuses to replace an existing file unless overwrite
// is set, and writes data atomically. The existence check happens under the
// lock, so two writers racing without overwrite produce exactly one winner.
func WriteFile(ctx context.Context, path string, data []byte, overwrite bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := New(path)
	if err := lock.Acquire(ctx); err != nil {
		return err
	}
	defer lock.Release()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	return AtomicWrite(path, data)
}
