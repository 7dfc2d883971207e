package hashtable

import (
	"errors"
	"math"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// MaxLoadFactor is the load factor above which Insert doubles the table
// before placing a new entry.
const MaxLoadFactor = 0.75

var (
	ErrInvalidCapacity  = errors.New("hashtable: capacity must be positive")
	ErrCapacityOverflow = errors.New("hashtable: capacity cannot be doubled")
	ErrDestroyed        = errors.New("hashtable: table has been destroyed")
)

// A Table is a separate-chaining hash table from string keys to values of
// type V. Keys may repeat: each Insert adds a new entry, and lookups see the
// most recent one.
//
// A Table is not safe for concurrent use; see package sharded for a locked
// variant. The destructor must not call back into the table.
type Table[V any] struct {
	slots   []*entry[V]
	n       uint64
	destroy func(V)
	hash    HashFunc
}

// New creates a table with capacity slots, hashing with Efficient. destroy
// may be nil, in which case values are never released by the table.
func New[V any](capacity int, destroy func(V)) (*Table[V], error) {
	return NewWithHash(capacity, destroy, nil)
}

// NewWithHash is like New but hashes keys with hash (Efficient if nil).
func NewWithHash[V any](capacity int, destroy func(V), hash HashFunc) (*Table[V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hash == nil {
		hash = Efficient
	}
	return &Table[V]{
		slots:   make([]*entry[V], capacity),
		destroy: destroy,
		hash:    hash,
	}, nil
}

// Len returns the number of entries, counting duplicates.
func (t *Table[V]) Len() uint64 {
	return t.n
}

// Cap returns the number of slots.
func (t *Table[V]) Cap() uint64 {
	return uint64(len(t.slots))
}

// LoadFactor returns Len()/Cap(), or 0 for a destroyed table.
func (t *Table[V]) LoadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.n) / float64(len(t.slots))
}

func (t *Table[V]) index(key string) uint64 {
	return t.hash(key, uint64(len(t.slots)))
}

// Insert adds an entry for key without checking for an existing one; call
// Contains first to avoid duplicates. If the new entry would push the load
// factor above MaxLoadFactor, the table is doubled before the entry's slot is
// chosen. On error the table is unchanged.
func (t *Table[V]) Insert(key string, v V) error {
	if t.slots == nil {
		return ErrDestroyed
	}
	if float64(t.n+1)/float64(len(t.slots)) > MaxLoadFactor {
		if err := t.resize(); err != nil {
			return err
		}
	}
	i := t.index(key)
	t.slots[i] = t.slots[i].push(&entry[V]{key: key, val: v})
	t.n = std.SumAssumeNoOverflow(t.n, 1)
	return nil
}

// resize doubles the slot array and relinks every entry into it. Entries
// are moved, not copied, and order within a chain is not preserved.
func (t *Table[V]) resize() error {
	if len(t.slots) > math.MaxInt/2 {
		return ErrCapacityOverflow
	}
	slots := make([]*entry[V], 2*len(t.slots))
	m := uint64(len(slots))
	var moved = uint64(0)
	for _, head := range t.slots {
		head.each(func(e *entry[V]) {
			i := t.hash(e.key, m)
			slots[i] = slots[i].push(e)
			moved++
		})
	}
	primitive.Assert(moved == t.n)
	t.slots = slots
	return nil
}

// Get returns the value of the most recently inserted entry for key. The
// boolean is false if there is none.
func (t *Table[V]) Get(key string) (V, bool) {
	if len(t.slots) == 0 {
		var zero V
		return zero, false
	}
	e := t.slots[t.index(key)].find(key)
	if e == nil {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Contains reports whether some entry has key.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes the most recently inserted entry for key, releasing its
// value, and reports whether one was found. Older duplicates stay in place.
func (t *Table[V]) Remove(key string) bool {
	if len(t.slots) == 0 {
		return false
	}
	i := t.index(key)
	head, e := t.slots[i].unlink(key)
	if e == nil {
		return false
	}
	t.slots[i] = head
	t.n--
	t.release(e)
	return true
}

func (t *Table[V]) release(e *entry[V]) {
	if t.destroy != nil {
		t.destroy(e.val)
	}
}

// Destroy releases every value through the destructor and drops all slots.
// Afterwards the table is empty, Insert fails with ErrDestroyed, and a
// second Destroy does nothing.
func (t *Table[V]) Destroy() {
	for _, head := range t.slots {
		head.each(func(e *entry[V]) {
			e.next = nil
			t.release(e)
		})
	}
	t.slots = nil
	t.n = 0
}
