package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_Lock(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := lm.Lock(PlayerKey(7))
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Zero(t, lm.Len())
}

func TestLockManager_KeysAreIndependent(t *testing.T) {
	lm := NewLockManager()

	unlockBattle := lm.Lock(BattleKey(1))
	defer unlockBattle()

	acquired := make(chan struct{})
	go func() {
		for _, key := range []string{BattleKey(2), PlayerKey(1), HistoryKey(1)} {
			lm.Lock(key)()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("locks on other keys were blocked")
	}
}

func TestLockManager_EvictsReleasedKeys(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock(BattleKey(1))
	assert.Equal(t, 1, lm.Len())

	waiting := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(waiting)
		lm.Lock(BattleKey(1))()
		close(done)
	}()
	<-waiting

	unlock()
	unlock()
	<-done

	assert.Zero(t, lm.Len())

	for i := int64(0); i < 1000; i++ {
		lm.Lock(BattleKey(i))()
	}
	assert.Zero(t, lm.Len())
}
