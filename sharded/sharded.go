package sharded

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goose-lang/std"
	"github.com/lucagiovagnoli/hash-table/hashtable"
)

var ErrInvalidShards = errors.New("sharded: shard count must be positive")

// A shard is one independently locked hashtable.Table.
type shard[V any] struct {
	mu    *sync.Mutex
	table *hashtable.Table[V]
}

// Table spreads keys over a fixed number of shards so that operations on
// different shards do not contend. It is safe for concurrent use. Duplicate
// keys and destructor calls behave as in hashtable.Table; the destructor runs
// with its shard locked and must not call back into the Table.
type Table[V any] struct {
	shards []*shard[V]
}

// New creates a Table of shards shards, each starting with capacity slots.
func New[V any](shards int, capacity int, destroy func(V)) (*Table[V], error) {
	if shards <= 0 {
		return nil, ErrInvalidShards
	}
	var s = []*shard[V]{}
	for i := 0; i < shards; i++ {
		t, err := hashtable.New(capacity, destroy)
		if err != nil {
			return nil, fmt.Errorf("sharded: shard %d: %w", i, err)
		}
		s = append(s, &shard[V]{mu: new(sync.Mutex), table: t})
	}
	return &Table[V]{shards: s}, nil
}

// The shard index uses a different hash from the one inside each shard, so
// keys in one shard still spread over all of its slots.
func (st *Table[V]) shardFor(key string) *shard[V] {
	return st.shards[hashtable.XXHash(key, uint64(len(st.shards)))]
}

func (st *Table[V]) Insert(key string, v V) error {
	s := st.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Insert(key, v)
}

func (st *Table[V]) Get(key string) (V, bool) {
	s := st.shardFor(key)
	s.mu.Lock()
	v, ok := s.table.Get(key)
	s.mu.Unlock()
	return v, ok
}

func (st *Table[V]) Contains(key string) bool {
	_, ok := st.Get(key)
	return ok
}

func (st *Table[V]) Remove(key string) bool {
	s := st.shardFor(key)
	s.mu.Lock()
	ok := s.table.Remove(key)
	s.mu.Unlock()
	return ok
}

// Len sums the shard sizes, locking one shard at a time. It is not a
// snapshot if other goroutines are writing.
func (st *Table[V]) Len() uint64 {
	var n = uint64(0)
	for _, s := range st.shards {
		s.mu.Lock()
		n = std.SumAssumeNoOverflow(n, s.table.Len())
		s.mu.Unlock()
	}
	return n
}

// Destroy destroys every shard.
func (st *Table[V]) Destroy() {
	for _, s := range st.shards {
		s.mu.Lock()
		s.table.Destroy()
		s.mu.Unlock()
	}
}
