package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()
	km := New()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("user-1|2024-03-01")
			counter++
			km.Unlock("user-1|2024-03-01")
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	// A holder of "a" must not block "b".
	<-done
	km.Unlock("a")
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	t.Parallel()
	km := New()

	km.Lock("x")
	km.Unlock("x")

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}

func TestKeyedMutex_UnlockUnheldPanics(t *testing.T) {
	t.Parallel()
	km := New()

	assert.Panics(t, func() {
		km.Unlock("never-locked")
	})
}
