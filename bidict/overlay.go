package bidict

// Order bookkeeping for ordered tables. The sentinel (slot 0) closes the ring:
// recs[0].next is the oldest item and recs[0].prev the newest.

// append links slot i at the tail in O(1).
func (t *table[K, V]) append(i int) {
	tail := t.recs[0].prev
	t.recs[i].prev = tail
	t.recs[i].next = 0
	t.recs[tail].next = i
	t.recs[0].prev = i
}

// prepend links slot i at the head in O(1).
func (t *table[K, V]) prepend(i int) {
	head := t.recs[0].next
	t.recs[i].prev = 0
	t.recs[i].next = head
	t.recs[head].prev = i
	t.recs[0].next = i
}

// unlink splices slot i out in O(1) using its own links.
func (t *table[K, V]) unlink(i int) {
	p, n := t.recs[i].prev, t.recs[i].next
	t.recs[p].next = n
	t.recs[n].prev = p
	t.recs[i].prev, t.recs[i].next = 0, 0
}

// moveToEnd relinks slot i at the tail (last) or at the head.
func (t *table[K, V]) moveToEnd(i int, last bool) {
	t.unlink(i)
	if last {
		t.append(i)
	} else {
		t.prepend(i)
	}
}

// step returns the slot after i in iteration order, or 0 at the end.
// step(0, ...) returns the first slot. Unordered tables walk live slots
// in index order.
func (t *table[K, V]) step(i int, reverse bool) int {
	if t.ordered {
		if reverse {
			return t.recs[i].prev
		}
		return t.recs[i].next
	}
	if reverse {
		if i == 0 {
			i = len(t.recs)
		}
		for i--; i > 0; i-- {
			if t.recs[i].live {
				return i
			}
		}
		return 0
	}
	for i++; i < len(t.recs); i++ {
		if t.recs[i].live {
			return i
		}
	}
	return 0
}
