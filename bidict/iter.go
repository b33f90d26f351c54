package bidict

import "iter"

// cursor is the position of one traversal. It remembers the map version it
// started at so that any later mutation is detected before the next step.
type cursor struct {
	pos     int
	version uint64
	reverse bool
	done    bool
}

func (c *core[K, V]) begin(reverse bool) cursor {
	return cursor{version: c.version, reverse: reverse}
}

// advance moves cur to the next slot. It returns 0 once the traversal is
// exhausted and ErrModified if the map changed since cur was created.
func (c *core[K, V]) advance(cur *cursor) (int, error) {
	if cur.done {
		return 0, nil
	}
	if cur.version != c.version {
		cur.done = true
		return 0, ErrModified
	}
	cur.pos = c.tab.step(cur.pos, cur.reverse)
	if cur.pos == 0 {
		cur.done = true
	}
	return cur.pos, nil
}

// Iterator walks the items of a map.
//
//	it := b.Iter()
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// Any mutation of the map after the iterator was created stops it; Err then
// returns ErrModified. Items produced before that remain valid.
type Iterator[K, V comparable] struct {
	s   side[K, V]
	cur cursor
	key K
	val V
	err error
}

func newIterator[K, V comparable](s side[K, V], reverse bool) *Iterator[K, V] {
	return &Iterator[K, V]{s: s, cur: s.begin(reverse)}
}

// Next advances to the next item and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	i, err := it.s.advance(&it.cur)
	if err != nil {
		it.err = err
		return false
	}
	if i == 0 {
		return false
	}
	it.key, it.val = it.s.at(i)
	return true
}

// Key returns the key of the current item.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value of the current item.
func (it *Iterator[K, V]) Value() V { return it.val }

// Err returns ErrModified if the traversal was abandoned, nil otherwise.
func (it *Iterator[K, V]) Err() error { return it.err }

// seq2 adapts a fresh traversal to a range-over-func sequence.
// A mutation during the loop panics with ErrModified.
func seq2[K, V comparable](s side[K, V], reverse bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := newIterator(s, reverse)
		for it.Next() {
			if !yield(it.key, it.val) {
				return
			}
		}
		if it.err != nil {
			panic(it.err)
		}
	}
}
