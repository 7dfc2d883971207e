package hashtable

import (
	"fmt"
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Debug prints every slot to standard output as "i : " followed by each value
// in chain order, rendered by print, separated by "->" and terminated by
// "NULL". A blank line follows the last slot.
func (t *Table[V]) Debug(print func(V)) {
	for i, head := range t.slots {
		fmt.Printf("%d : ", i)
		for e := head; e != nil; e = e.next {
			print(e.val)
			fmt.Print("->")
		}
		fmt.Println("NULL")
	}
	fmt.Println()
}

// Dump writes the same layout as Debug to w, formatting values with format.
// The output is built in memory and written once.
func (t *Table[V]) Dump(w io.Writer, format func(V) string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, head := range t.slots {
		buf.B = strconv.AppendInt(buf.B, int64(i), 10)
		buf.WriteString(" : ")
		for e := head; e != nil; e = e.next {
			buf.WriteString(format(e.val))
			buf.WriteString("->")
		}
		buf.WriteString("NULL\n")
	}
	buf.WriteByte('\n')

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("hashtable: dump: %w", err)
	}
	return nil
}
