package concurrency

import (
	"sync"
)

// keyLock is a mutex shared by every caller currently waiting on or holding one key
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out per-key mutual exclusion.
// Entries exist only while some caller holds or waits for the key, so the
// table does not grow with the number of distinct users ever seen.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the function that releases it.
// The returned function must be called exactly once.
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{}
		lm.locks[key] = kl
	}
	kl.refs++
	lm.mu.Unlock()

	kl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			kl.mu.Unlock()

			lm.mu.Lock()
			kl.refs--
			if kl.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Held reports how many keys currently have a holder or waiter
func (lm *LockManager) Held() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
