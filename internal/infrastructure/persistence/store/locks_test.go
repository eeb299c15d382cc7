package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLock_MutualExclusion(t *testing.T) {
	lm := NewLockManager()

	var inside int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := lm.WithLock("content/projects.json", func() error {
				if !atomic.CompareAndSwapInt32(&inside, 0, 1) {
					t.Error("critical section entered concurrently")
				}
				atomic.StoreInt32(&inside, 0)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestWithLock_DistinctPathsDoNotContend(t *testing.T) {
	lm := NewLockManager()

	holding := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = lm.WithLock("a.json", func() error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	// Must not block behind the held a.json lock.
	done := false
	err := lm.WithLock("b.json", func() error {
		done = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, done)

	close(release)
}

func TestWithLock_ReleasedAfterError(t *testing.T) {
	lm := NewLockManager()

	wantErr := errors.New("boom")
	err := lm.WithLock("a.json", func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	ran := false
	require.NoError(t, lm.WithLock("a.json", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}
