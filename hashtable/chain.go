package hashtable

// An entry is one link of a slot's chain. The key is the caller's string and
// is never copied; val is owned by the caller and released through the
// table's destructor.
type entry[V any] struct {
	key  string
	val  V
	next *entry[V]
}

// push prepends e to the chain headed by head and returns the new head.
func (head *entry[V]) push(e *entry[V]) *entry[V] {
	e.next = head
	return e
}

// find returns the first entry in the chain whose key equals key, or nil.
func (head *entry[V]) find(key string) *entry[V] {
	for e := head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// unlink removes the first entry matching key. It returns the new head and
// the removed entry, which is nil if nothing matched.
func (head *entry[V]) unlink(key string) (*entry[V], *entry[V]) {
	if head == nil {
		return nil, nil
	}
	if head.key == key {
		next := head.next
		head.next = nil
		return next, head
	}
	prev := head
	for e := head.next; e != nil; e = e.next {
		if e.key == key {
			prev.next = e.next
			e.next = nil
			return head, e
		}
		prev = e
	}
	return head, nil
}

// each calls f on every entry from head to tail. f may relink the entry it
// is given, since the successor is read first.
func (head *entry[V]) each(f func(e *entry[V])) {
	var next *entry[V]
	for e := head; e != nil; e = next {
		next = e.next
		f(e)
	}
}
