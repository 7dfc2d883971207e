/*
Package hashtable implements a hash table with separate chaining, keyed by
strings and holding caller-owned values.

Each slot heads a singly linked chain. New entries are prepended, so when a
key is inserted more than once, Get returns the newest value and Remove drops
the newest entry, exposing the previous one. The table never checks for
duplicates; use Contains first if a key must be unique.

Basic usage:

	files, err := hashtable.New(16, func(f *os.File) { f.Close() })
	if err != nil {
		log.Fatal(err)
	}
	defer files.Destroy()

	if !files.Contains(name) {
		f, _ := os.Open(name)
		files.Insert(name, f)
	}
	f, ok := files.Get(name)

The slot array doubles whenever an insert would take the load factor above
MaxLoadFactor, and never shrinks. All operations on one table must use the
same HashFunc: Efficient by default, or PseudoUniversal and XXHash through
NewWithHash.

The destructor, if any, is called exactly once for each value, when its entry
is removed or the table is destroyed. A Table is not safe for concurrent use.
*/
package hashtable
