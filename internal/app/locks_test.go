package app

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := newKeyedMutex()

	var (
		inFlight atomic.Int32
		peak     atomic.Int32
		wg       sync.WaitGroup
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("sess-1")
			defer unlock()

			n := inFlight.Add(1)
			if n > peak.Load() {
				peak.Store(n)
			}
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
	assert.Zero(t, km.size())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()

	km := newKeyedMutex()

	unlockA := km.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := km.Lock("b")
		unlock()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, km.size())
	unlockA()
	assert.Zero(t, km.size())
}
