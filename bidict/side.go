package bidict

import "github.com/IvanBrykalov/bidict/internal/hashing"

// side is one orientation of a shared core. *core[K, V] is the forward
// orientation; mirror[K, V] wraps a *core[V, K] with the roles swapped.
// Both go through the same core algorithms.
type side[K, V comparable] interface {
	get(k K) (V, bool)
	getInv(v V) (K, bool)
	length() int

	put(k K, v V, od OnDup) ([]Pair[K, V], error)
	putAll(items []Pair[K, V], od OnDup) ([]Pair[K, V], error)
	remove(k K) (V, bool)
	removeInv(v V) (K, bool)
	clear()
	moveToEnd(k K, last bool) bool
	moveToEndInv(v V, last bool) bool
	popItem(last bool) (K, V, bool)

	begin(reverse bool) cursor
	advance(cur *cursor) (int, error)
	at(i int) (K, V)

	inverse() side[V, K]
	copy(frozen bool) side[K, V]
	policy() OnDup
	isFrozen() bool
	isOrdered() bool

	// Frozen only.
	identity() uint64
	keyList() []K
	valList() []V
}

var (
	_ side[int, string] = (*core[int, string])(nil)
	_ side[int, string] = mirror[int, string]{}
)

// ---- forward orientation ----

func (c *core[K, V]) popItem(last bool) (K, V, bool) {
	p, ok := c.popSlot(last)
	return p.Key, p.Value, ok
}

func (c *core[K, V]) at(i int) (K, V) {
	r := &c.tab.recs[i]
	return r.key, r.val
}

func (c *core[K, V]) inverse() side[V, K]         { return mirror[V, K]{c: c} }
func (c *core[K, V]) copy(frozen bool) side[K, V] { return c.clone(frozen) }
func (c *core[K, V]) policy() OnDup               { return c.opt.OnDup }
func (c *core[K, V]) isFrozen() bool              { return c.frozen }
func (c *core[K, V]) isOrdered() bool             { return c.tab.ordered }
func (c *core[K, V]) keyList() []K                { return c.keys }
func (c *core[K, V]) valList() []V                { return c.vals }
func (c *core[K, V]) identity() uint64 {
	return c.fwdHash.get(func() uint64 { return digest[K, V](c) })
}

// ---- inverse orientation ----

// mirror is a handle over c with key and value roles swapped. It is a view,
// not a copy: writes through it change c.
type mirror[K, V comparable] struct {
	c *core[V, K]
}

func (m mirror[K, V]) get(k K) (V, bool)    { return m.c.getInv(k) }
func (m mirror[K, V]) getInv(v V) (K, bool) { return m.c.get(v) }
func (m mirror[K, V]) length() int          { return m.c.length() }

func (m mirror[K, V]) put(k K, v V, od OnDup) ([]Pair[K, V], error) {
	ev, err := m.c.put(v, k, od.swap())
	if err != nil {
		return nil, swapErr(err)
	}
	return flip(ev), nil
}

func (m mirror[K, V]) putAll(items []Pair[K, V], od OnDup) ([]Pair[K, V], error) {
	ev, err := m.c.putAll(flip(items), od.swap())
	if err != nil {
		return nil, swapErr(err)
	}
	return flip(ev), nil
}

func (m mirror[K, V]) remove(k K) (V, bool)             { return m.c.removeInv(k) }
func (m mirror[K, V]) removeInv(v V) (K, bool)          { return m.c.remove(v) }
func (m mirror[K, V]) clear()                           { m.c.clear() }
func (m mirror[K, V]) moveToEnd(k K, last bool) bool    { return m.c.moveToEndInv(k, last) }
func (m mirror[K, V]) moveToEndInv(v V, last bool) bool { return m.c.moveToEnd(v, last) }

func (m mirror[K, V]) popItem(last bool) (K, V, bool) {
	p, ok := m.c.popSlot(last)
	return p.Value, p.Key, ok
}

func (m mirror[K, V]) begin(reverse bool) cursor        { return m.c.begin(reverse) }
func (m mirror[K, V]) advance(cur *cursor) (int, error) { return m.c.advance(cur) }

func (m mirror[K, V]) at(i int) (K, V) {
	r := &m.c.tab.recs[i]
	return r.val, r.key
}

func (m mirror[K, V]) inverse() side[V, K]         { return m.c }
func (m mirror[K, V]) copy(frozen bool) side[K, V] { return mirror[K, V]{c: m.c.clone(frozen)} }
func (m mirror[K, V]) policy() OnDup               { return m.c.opt.OnDup }
func (m mirror[K, V]) isFrozen() bool              { return m.c.frozen }
func (m mirror[K, V]) isOrdered() bool             { return m.c.tab.ordered }
func (m mirror[K, V]) keyList() []K                { return m.c.vals }
func (m mirror[K, V]) valList() []V                { return m.c.keys }
func (m mirror[K, V]) identity() uint64 {
	return m.c.invHash.get(func() uint64 { return digest[K, V](m) })
}

func flip[K, V comparable](ps []Pair[K, V]) []Pair[V, K] {
	if ps == nil {
		return nil
	}
	out := make([]Pair[V, K], len(ps))
	for i, p := range ps {
		out[i] = Pair[V, K]{Key: p.Value, Value: p.Key}
	}
	return out
}

// digest is the order-independent content hash of s.
func digest[K, V comparable](s side[K, V]) uint64 {
	var u hashing.Unordered
	cur := s.begin(false)
	for {
		i, err := s.advance(&cur)
		if err != nil || i == 0 {
			break
		}
		k, v := s.at(i)
		u.Add(hashing.Pair(hashing.Sum64(k), hashing.Sum64(v)))
	}
	return u.Sum64()
}
