package sharded

import (
	"strconv"
	"sync"
	"testing"

	"github.com/goose-lang/std"
	"github.com/lucagiovagnoli/hash-table/hashtable"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	_, err := New[int](0, 4, nil)
	assert.ErrorIs(err, ErrInvalidShards)

	_, err = New[int](4, 0, nil)
	assert.ErrorIs(err, hashtable.ErrInvalidCapacity)

	h, err := New[int](4, 4, nil)
	assert.NoError(err)
	assert.Len(h.shards, 4)
}

func TestInsertGet(t *testing.T) {
	assert := assert.New(t)

	h, _ := New[uint64](10, 2, nil)
	_, ok := h.Get("1")
	assert.False(ok)

	assert.NoError(h.Insert("1", 10))
	v, ok := h.Get("1")
	assert.True(ok)
	assert.Equal(uint64(10), v)

	assert.NoError(h.Insert("3", 30))
	v, _ = h.Get("3")
	assert.Equal(uint64(30), v)
	v, _ = h.Get("1")
	assert.Equal(uint64(10), v)

	assert.NoError(h.Insert("1", 11))
	v, _ = h.Get("1")
	assert.Equal(uint64(11), v, "newest duplicate wins")
	assert.Equal(uint64(3), h.Len())

	assert.True(h.Remove("1"))
	v, _ = h.Get("1")
	assert.Equal(uint64(10), v)
	assert.True(h.Remove("1"))
	assert.False(h.Contains("1"))
	assert.False(h.Remove("1"))
}

func TestDestroy(t *testing.T) {
	assert := assert.New(t)

	var released = uint64(0)
	h, _ := New(3, 1, func(v int) { released++ })
	for i := 0; i < 50; i++ {
		assert.NoError(h.Insert(strconv.Itoa(i), i))
	}
	h.Destroy()
	assert.Equal(uint64(50), released)
	assert.Equal(uint64(0), h.Len())
	assert.ErrorIs(h.Insert("x", 1), hashtable.ErrDestroyed)
}

func TestConcurrentInsertGet(t *testing.T) {
	h, _ := New[int](8, 4, nil)
	// Concurrent inserts and gets, checking that we don't panic or deadlock
	// (but not checking what the gets see)
	writer := std.Spawn(func() {
		for i := 0; i < 100; i++ {
			h.Insert(strconv.Itoa(i), i)
		}
	})
	reader := std.Spawn(func() {
		for i := 0; i < 100; i++ {
			h.Get(strconv.Itoa(i))
		}
	})
	writer.Join()
	reader.Join()
	assert.Equal(t, uint64(100), h.Len())
}

func TestConcurrentInsertOrder(t *testing.T) {
	h, _ := New[int](5, 1, nil)

	// Check that gets observe inserts in the right order.

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		for i := 0; i < 100; i++ {
			h.Insert(strconv.Itoa(i), i*10)
		}
		wg.Done()
	}()

	for get_i := 0; get_i < 10; get_i++ {
		wg.Add(1)
		go func() {
			// once one get succeeds, every earlier key must be there too
			found := false
			for i := 99; i >= 0; i-- {
				ok := h.Contains(strconv.Itoa(i))
				if found {
					assert.True(t, ok)
				}
				if ok {
					found = true
				}
			}
			wg.Done()
		}()
	}
	wg.Wait()
}

func TestConcurrentRemove(t *testing.T) {
	assert := assert.New(t)

	var mu sync.Mutex
	released := map[int]int{}
	h, _ := New(4, 2, func(v int) {
		mu.Lock()
		released[v]++
		mu.Unlock()
	})
	for i := 0; i < 200; i++ {
		assert.NoError(h.Insert(strconv.Itoa(i), i))
	}

	// two workers race to remove every key; each removal happens once
	var handles []*std.JoinHandle
	removed := make([]uint64, 2)
	for w := 0; w < 2; w++ {
		handles = append(handles, std.Spawn(func() {
			for i := 0; i < 200; i++ {
				if h.Remove(strconv.Itoa(i)) {
					removed[w]++
				}
			}
		}))
	}
	for _, j := range handles {
		j.Join()
	}

	assert.Equal(uint64(200), removed[0]+removed[1])
	assert.Equal(uint64(0), h.Len())
	assert.Len(released, 200)
	for v, n := range released {
		assert.Equal(1, n, "value %d released %d times", v, n)
	}
}
