package filelock

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "out.txt")

	lock := NewFileLock(lockPath)
	if lock == nil {
		t.Fatal("NewFileLock should not return nil")
	}
	if lock.Path() != lockPath {
		t.Errorf("Expected lock path %s, got %s", lockPath, lock.Path())
	}
}

func TestTryLockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "out.txt")
	lock := NewFileLock(lockPath)

	if err := lock.TryLock(); err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}
}

func TestTryLockContention(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "out.txt")

	first := NewFileLock(lockPath)
	if err := first.TryLock(); err != nil {
		t.Fatalf("Failed to acquire first lock: %v", err)
	}

	second := NewFileLock(lockPath)
	err := second.TryLock()
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("Expected ErrLocked while first lock is held, got %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Failed to release first lock: %v", err)
	}
	if err := second.TryLock(); err != nil {
		t.Fatalf("Expected lock after release, got %v", err)
	}
	second.Unlock()
}
