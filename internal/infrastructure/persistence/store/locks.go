package store

import "sync"

// LockManager serializes read-modify-write sequences per store file path.
// Locks for different paths never contend with each other.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockManager creates an empty lock manager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*sync.Mutex)}
}

func (lm *LockManager) lockFor(path string) *sync.Mutex {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, exists := lm.locks[path]
	if !exists {
		l = &sync.Mutex{}
		lm.locks[path] = l
	}
	return l
}

// WithLock runs fn while holding the mutex for path. The lock is released
// even when fn returns an error; the error propagates to the caller.
func (lm *LockManager) WithLock(path string, fn func() error) error {
	l := lm.lockFor(path)
	l.Lock()
	defer l.Unlock()
	return fn()
}
