package concurrency

import (
	"fmt"
	"sync"
)

// LockManager hands out named mutexes so read-modify-write sequences on
// one record are serialized while other records proceed concurrently.
// A key's mutex is dropped once no goroutine holds or waits on it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock acquires the mutex for key and returns its release func.
// Calling the release func more than once is a no-op.
func (lm *LockManager) Lock(key string) func() {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

// BattleKey names the lock guarding one battle's lifecycle
func BattleKey(id int64) string {
	return fmt.Sprintf("battle:%d", id)
}

// HistoryKey names the lock that keeps a player's completed battles and
// leaderboard entry in step. Hold it before PlayerKey when taking both.
func HistoryKey(id int64) string {
	return fmt.Sprintf("history:%d", id)
}

// PlayerKey names the lock guarding one player's leaderboard entry
func PlayerKey(id int64) string {
	return fmt.Sprintf("player:%d", id)
}
