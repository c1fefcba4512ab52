package usecase

import "sync"

// userLocks serializes read-then-write sequences per user. Two concurrent
// allocations for the same user would otherwise race on the same day
// schedule and corrupt slot occupancy. Locks are never removed; the set of
// users is small and stable.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the user's mutex and returns the unlock function.
func (u *userLocks) acquire(userID string) func() {
	u.mu.Lock()
	lock, ok := u.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		u.locks[userID] = lock
	}
	u.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
