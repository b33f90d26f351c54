package bidict

import (
	"errors"
	"maps"
	"sync"
)

// core owns the forward and inverse indexes and the record table.
// Invariant: fwd[k] == i <=> inv[recs[i].val] == i, and len(fwd) == len(inv).
// core is not safe for concurrent use.
type core[K, V comparable] struct {
	fwd map[K]int
	inv map[V]int
	tab table[K, V]

	// version is bumped by every mutation; iterators fail fast on mismatch.
	version uint64
	frozen  bool

	opt Options[K, V]

	// Frozen only. Identity digests per orientation, and for ordered maps
	// the key/value lists in iteration order.
	fwdHash lazyHash
	invHash lazyHash
	keys    []K
	vals    []V
}

type lazyHash struct {
	once sync.Once
	sum  uint64
}

func (h *lazyHash) get(compute func() uint64) uint64 {
	h.once.Do(func() { h.sum = compute() })
	return h.sum
}

func newCore[K, V comparable](opt Options[K, V], ordered bool) *core[K, V] {
	opt = opt.withDefaults()
	return &core[K, V]{
		fwd: make(map[K]int, opt.Capacity),
		inv: make(map[V]int, opt.Capacity),
		tab: newTable[K, V](opt.Capacity, ordered),
		opt: opt,
	}
}

// ---- reads ----

func (c *core[K, V]) get(k K) (V, bool) {
	i, ok := c.fwd[k]
	if !ok {
		var zero V
		return zero, false
	}
	return c.tab.recs[i].val, true
}

func (c *core[K, V]) getInv(v V) (K, bool) {
	i, ok := c.inv[v]
	if !ok {
		var zero K
		return zero, false
	}
	return c.tab.recs[i].key, true
}

func (c *core[K, V]) length() int { return len(c.fwd) }

// ---- writes ----

// journal records applied steps so that a failed bulk update can be undone.
type journal[K, V comparable] struct {
	steps []step[K, V]
	mark  int // table length before the first step
}

// step is one applied insertion: the slot it filled and the records it
// evicted, in eviction order.
type step[K, V comparable] struct {
	slot    int
	gone    [2]record[K, V]
	slots   [2]int
	reasons [2]EvictReason
	n       int
}

// apply performs one insertion and appends it to j. On error nothing changed.
func (c *core[K, V]) apply(k K, v V, od OnDup, j *journal[K, V]) error {
	d, err := resolve(c, k, v, od)
	if err != nil {
		return err
	}
	if d.skip {
		return nil
	}

	var st step[K, V]
	// Evict by value first, then by key, so inv never points at a stale slot.
	if d.valSlot != 0 {
		st.evict(c, d.valSlot, EvictDupValue)
	}
	if d.keySlot != 0 {
		st.evict(c, d.keySlot, EvictDupKey)
	}

	i := c.tab.alloc(k, v)
	c.fwd[k] = i
	c.inv[v] = i
	st.slot = i
	c.version++

	j.steps = append(j.steps, st)
	return nil
}

func (st *step[K, V]) evict(c *core[K, V], i int, reason EvictReason) {
	r := c.tab.recs[i]
	st.gone[st.n], st.slots[st.n], st.reasons[st.n] = r, i, reason
	st.n++
	delete(c.fwd, r.key)
	delete(c.inv, r.val)
	c.tab.release(i)
}

// rollback undoes every step of j, newest first.
func (c *core[K, V]) rollback(j *journal[K, V]) {
	for s := len(j.steps) - 1; s >= 0; s-- {
		st := &j.steps[s]
		r := c.tab.recs[st.slot]
		delete(c.fwd, r.key)
		delete(c.inv, r.val)
		c.tab.release(st.slot)

		for e := st.n - 1; e >= 0; e-- {
			g, i := st.gone[e], st.slots[e]
			c.tab.restore(i, g)
			c.fwd[g.key] = i
			c.inv[g.val] = i
		}
	}
	if len(j.steps) > 0 {
		c.tab.truncate(j.mark)
		c.version++
	}
	j.steps = j.steps[:0]
}

// commit reports the steps of j to metrics, logger and OnEvict, and returns
// the evicted items (nil when there are none).
func (c *core[K, V]) commit(j *journal[K, V]) []Pair[K, V] {
	if len(j.steps) == 0 {
		return nil
	}
	var evicted []Pair[K, V]
	for s := range j.steps {
		st := &j.steps[s]
		c.opt.Metrics.Put()
		for e := 0; e < st.n; e++ {
			g := st.gone[e]
			evicted = append(evicted, Pair[K, V]{Key: g.key, Value: g.val})
			c.opt.Metrics.Evict(st.reasons[e])
			c.opt.Logger.V(2).Info("evicted", "key", g.key, "value", g.val, "reason", st.reasons[e].String())
			if cb := c.opt.OnEvict; cb != nil {
				cb(g.key, g.val, st.reasons[e])
			}
		}
	}
	c.opt.Metrics.Size(len(c.fwd))
	return evicted
}

func (c *core[K, V]) reject(err error) {
	var de *DuplicationError
	if errors.As(err, &de) {
		c.opt.Metrics.Reject(de.Kind)
	}
	c.opt.Logger.V(1).Info("put rejected", "error", err.Error())
}

// put installs k→v under od and returns the evicted items.
func (c *core[K, V]) put(k K, v V, od OnDup) ([]Pair[K, V], error) {
	var buf [1]step[K, V]
	j := journal[K, V]{steps: buf[:0], mark: len(c.tab.recs)}
	if err := c.apply(k, v, od, &j); err != nil {
		c.reject(err)
		return nil, err
	}
	return c.commit(&j), nil
}

// putAll applies items in order. If any item is rejected, every item
// applied before it is rolled back and the map is left as it was.
func (c *core[K, V]) putAll(items []Pair[K, V], od OnDup) ([]Pair[K, V], error) {
	j := journal[K, V]{steps: make([]step[K, V], 0, len(items)), mark: len(c.tab.recs)}
	for _, it := range items {
		if err := c.apply(it.Key, it.Value, od, &j); err != nil {
			c.rollback(&j)
			c.reject(err)
			return nil, err
		}
	}
	return c.commit(&j), nil
}

// removeSlot deletes the record in slot i from all three owners.
func (c *core[K, V]) removeSlot(i int) Pair[K, V] {
	r := c.tab.recs[i]
	delete(c.fwd, r.key)
	delete(c.inv, r.val)
	c.tab.release(i)
	c.version++
	c.opt.Metrics.Size(len(c.fwd))
	return Pair[K, V]{Key: r.key, Value: r.val}
}

func (c *core[K, V]) remove(k K) (V, bool) {
	i, ok := c.fwd[k]
	if !ok {
		var zero V
		return zero, false
	}
	return c.removeSlot(i).Value, true
}

func (c *core[K, V]) removeInv(v V) (K, bool) {
	i, ok := c.inv[v]
	if !ok {
		var zero K
		return zero, false
	}
	return c.removeSlot(i).Key, true
}

func (c *core[K, V]) clear() {
	clear(c.fwd)
	clear(c.inv)
	c.tab.reset()
	c.version++
	c.opt.Metrics.Size(0)
}

// moveSlot relinks slot i at either end of the order list.
func (c *core[K, V]) moveSlot(i int, last bool) {
	c.tab.moveToEnd(i, last)
	c.version++
}

func (c *core[K, V]) moveToEnd(k K, last bool) bool {
	i, ok := c.fwd[k]
	if !ok {
		return false
	}
	c.moveSlot(i, last)
	return true
}

func (c *core[K, V]) moveToEndInv(v V, last bool) bool {
	i, ok := c.inv[v]
	if !ok {
		return false
	}
	c.moveSlot(i, last)
	return true
}

// popSlot removes the newest (last) or oldest item.
func (c *core[K, V]) popSlot(last bool) (Pair[K, V], bool) {
	i := c.tab.step(0, last)
	if i == 0 {
		return Pair[K, V]{}, false
	}
	return c.removeSlot(i), true
}

// ---- copies ----

// clone returns an independent copy. Frozen copies of ordered maps also
// capture their key and value lists.
func (c *core[K, V]) clone(frozen bool) *core[K, V] {
	n := &core[K, V]{
		fwd:    maps.Clone(c.fwd),
		inv:    maps.Clone(c.inv),
		tab:    c.tab.clone(),
		frozen: frozen,
		opt:    c.opt,
	}
	if frozen {
		n.seal()
	}
	return n
}

// seal marks the map frozen and, for ordered maps, snapshots keys and values.
func (c *core[K, V]) seal() {
	c.frozen = true
	if !c.tab.ordered {
		return
	}
	c.keys = make([]K, 0, len(c.fwd))
	c.vals = make([]V, 0, len(c.fwd))
	for i := c.tab.step(0, false); i != 0; i = c.tab.step(i, false) {
		c.keys = append(c.keys, c.tab.recs[i].key)
		c.vals = append(c.vals, c.tab.recs[i].val)
	}
}
