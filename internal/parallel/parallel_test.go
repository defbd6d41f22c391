package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	var counter int64
	n := 1000
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16})
	assert.Equal(t, int64(n), counter)
}

func TestFor_EveryIndexOnce(t *testing.T) {
	n := 513
	hits := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 10})
	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Sequential())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestForChunks_SmallInputRunsInline(t *testing.T) {
	calls := 0
	ForChunks(10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	}, DefaultConfig())
	assert.Equal(t, 1, calls)
}

func TestForChunks_Empty(t *testing.T) {
	ForChunks(0, func(_, _ int) {
		t.Fatal("f must not be called for n == 0")
	}, DefaultConfig())
}
