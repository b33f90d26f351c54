package bidict

import "slices"

// record is one key/value item. fwd and inv both store the record's slot
// index rather than the raw value, so either side can find the item (and
// its list links) in O(1).
type record[K, V comparable] struct {
	key K
	val V

	// Order links (slot indexes). Only maintained by ordered tables.
	prev int
	next int

	live bool
}

// table is an index-based arena of records.
// Slot 0 is the sentinel of the circular order list and never holds an item,
// which also lets 0 stand for "no slot" throughout the package.
// Released slots are recycled through the free list.
type table[K, V comparable] struct {
	recs    []record[K, V]
	free    []int
	ordered bool
}

func newTable[K, V comparable](capacity int, ordered bool) table[K, V] {
	return table[K, V]{
		recs:    make([]record[K, V], 1, capacity+1),
		ordered: ordered,
	}
}

// alloc stores k/v in a free slot and, for ordered tables, links it at the tail.
func (t *table[K, V]) alloc(k K, v V) int {
	var i int
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
		t.recs[i] = record[K, V]{key: k, val: v, live: true}
	} else {
		i = len(t.recs)
		t.recs = append(t.recs, record[K, V]{key: k, val: v, live: true})
	}
	if t.ordered {
		t.append(i)
	}
	return i
}

// release unlinks slot i and puts it on the free list.
func (t *table[K, V]) release(i int) {
	if t.ordered {
		t.unlink(i)
	}
	t.recs[i] = record[K, V]{} // drop key/value references
	t.free = append(t.free, i)
}

// restore puts a released record back into slot i with the links it had
// when it was released. Records must be restored in the reverse order of
// their release so that the saved neighbours are live again.
func (t *table[K, V]) restore(i int, r record[K, V]) {
	for j := len(t.free) - 1; j >= 0; j-- {
		if t.free[j] == i {
			t.free = slices.Delete(t.free, j, j+1)
			break
		}
	}
	r.live = true
	t.recs[i] = r
	if t.ordered {
		t.recs[r.prev].next = i
		t.recs[r.next].prev = i
	}
}

// truncate drops slots n and above, which must all be released.
func (t *table[K, V]) truncate(n int) {
	if n >= len(t.recs) {
		return
	}
	t.free = slices.DeleteFunc(t.free, func(i int) bool { return i >= n })
	clear(t.recs[n:])
	t.recs = t.recs[:n]
}

// reset drops every record but keeps the allocated capacity.
func (t *table[K, V]) reset() {
	clear(t.recs)
	t.recs = t.recs[:1]
	t.free = t.free[:0]
}

func (t *table[K, V]) clone() table[K, V] {
	return table[K, V]{
		recs:    slices.Clone(t.recs),
		free:    slices.Clone(t.free),
		ordered: t.ordered,
	}
}
