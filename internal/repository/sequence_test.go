package repository

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestSequence_SameTick(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	seq := &Sequence{now: func() time.Time { return fixed }}

	assert.Equal(t, int64(1_700_000_000_000), seq.Next())
	assert.Equal(t, int64(1_700_000_000_001), seq.Next())
	assert.Equal(t, int64(1_700_000_000_002), seq.Next())
}

func TestSequence_ClockGoesBack(t *testing.T) {
	now := time.UnixMilli(2_000)
	seq := &Sequence{now: func() time.Time { return now }}

	first := seq.Next()
	now = time.UnixMilli(1_000)
	assert.Greater(t, seq.Next(), first)
}

func TestSequence_Observe(t *testing.T) {
	seq := &Sequence{now: func() time.Time { return time.UnixMilli(10) }}

	seq.Observe(5, 500, 7)
	assert.Equal(t, int64(501), seq.Next())
}

func TestSequence_Concurrent(t *testing.T) {
	seq := NewSequence()

	const n = 1000
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
