package memoize

import (
	"fmt"

	"github.com/lucagiovagnoli/hash-table/hashtable"
)

const initialCapacity = 16

// Memoize caches the results of f by key. It is not safe for concurrent use.
type Memoize[V any] struct {
	f       func(string) V
	results *hashtable.Table[V]
}

func New[V any](f func(string) V) (*Memoize[V], error) {
	results, err := hashtable.New[V](initialCapacity, nil)
	if err != nil {
		return nil, err
	}
	return &Memoize[V]{f: f, results: results}, nil
}

// Call returns f(key), computing it only the first time key is seen.
func (m *Memoize[V]) Call(key string) (V, error) {
	cached, ok := m.results.Get(key)
	if ok {
		return cached, nil
	}
	y := m.f(key)
	if err := m.results.Insert(key, y); err != nil {
		return y, fmt.Errorf("memoize: caching %q: %w", key, err)
	}
	return y, nil
}

// Forget drops the cached result for key so the next Call recomputes it.
func (m *Memoize[V]) Forget(key string) bool {
	return m.results.Remove(key)
}

// Len returns the number of cached results.
func (m *Memoize[V]) Len() uint64 {
	return m.results.Len()
}
