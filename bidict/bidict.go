package bidict

import "fmt"

// Bidict is a mutable, unordered bidirectional map.
// It is not safe for concurrent use; see package syncbidict for a locked wrapper.
type Bidict[K, V comparable] struct {
	view[K, V]
}

// New returns an empty Bidict configured by opt.
func New[K, V comparable](opt Options[K, V]) *Bidict[K, V] {
	return &Bidict[K, V]{view[K, V]{s: newCore(opt, false)}}
}

// FromPairs builds a Bidict by putting items one by one under opt.OnDup,
// exactly as successive Put calls would. The first rejected item aborts
// construction.
func FromPairs[K, V comparable](opt Options[K, V], items ...Pair[K, V]) (*Bidict[K, V], error) {
	c, err := build(opt, false, items)
	if err != nil {
		return nil, err
	}
	return &Bidict[K, V]{view[K, V]{s: c}}, nil
}

// FromSlices pairs keys[i] with vals[i] and behaves like FromPairs.
func FromSlices[K, V comparable](opt Options[K, V], keys []K, vals []V) (*Bidict[K, V], error) {
	items, err := Zip(keys, vals)
	if err != nil {
		return nil, err
	}
	return FromPairs(opt, items...)
}

// FromMap builds a Bidict from m. Go map order is unspecified, so when two
// keys of m share a value, which one is rejected or evicted is unspecified too.
func FromMap[K, V comparable](opt Options[K, V], m map[K]V) (*Bidict[K, V], error) {
	return FromPairs(opt, pairsOf(m)...)
}

// Inverse returns a handle over the same storage with keys and values
// swapped. Writes through it change b.
func (b *Bidict[K, V]) Inverse() *Bidict[V, K] {
	return &Bidict[V, K]{view[V, K]{s: b.s.inverse()}}
}

// Copy returns an independent copy of b.
func (b *Bidict[K, V]) Copy() *Bidict[K, V] {
	return &Bidict[K, V]{view[K, V]{s: b.s.copy(false)}}
}

// Freeze returns an immutable copy of b.
func (b *Bidict[K, V]) Freeze() *Frozen[K, V] {
	return &Frozen[K, V]{view[K, V]{s: b.s.copy(true)}}
}

// Zip pairs keys[i] with vals[i].
func Zip[K, V comparable](keys []K, vals []V) ([]Pair[K, V], error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(vals))
	}
	items := make([]Pair[K, V], len(keys))
	for i := range keys {
		items[i] = Pair[K, V]{Key: keys[i], Value: vals[i]}
	}
	return items, nil
}

func pairsOf[K, V comparable](m map[K]V) []Pair[K, V] {
	items := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		items = append(items, Pair[K, V]{Key: k, Value: v})
	}
	return items
}

// build creates a core and loads items with the configured policy.
func build[K, V comparable](opt Options[K, V], ordered bool, items []Pair[K, V]) (*core[K, V], error) {
	if opt.Capacity < len(items) {
		opt.Capacity = len(items)
	}
	c := newCore(opt, ordered)
	for _, it := range items {
		if _, err := c.put(it.Key, it.Value, c.opt.OnDup); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var _ Map[int, string] = (*Bidict[int, string])(nil)
