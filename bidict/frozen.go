package bidict

import (
	"iter"
	"slices"
)

// Frozen is an immutable bidirectional map. Every write method returns
// ErrImmutable. It is safe for concurrent reads.
type Frozen[K, V comparable] struct {
	view[K, V]
}

// NewFrozen builds a Frozen map like FromPairs does.
func NewFrozen[K, V comparable](opt Options[K, V], items ...Pair[K, V]) (*Frozen[K, V], error) {
	c, err := build(opt, false, items)
	if err != nil {
		return nil, err
	}
	c.seal()
	return &Frozen[K, V]{view[K, V]{s: c}}, nil
}

// FrozenFromMap builds a Frozen map from m; see FromMap.
func FrozenFromMap[K, V comparable](opt Options[K, V], m map[K]V) (*Frozen[K, V], error) {
	return NewFrozen(opt, pairsOf(m)...)
}

// Hash returns a digest of the item set. It is computed on first use and
// cached. Maps holding the same items hash equally, whatever their order.
// Values are stable within one process only.
func (f *Frozen[K, V]) Hash() uint64 { return f.s.identity() }

// Inverse returns the frozen inverse over the same storage.
func (f *Frozen[K, V]) Inverse() *Frozen[V, K] {
	return &Frozen[V, K]{view[V, K]{s: f.s.inverse()}}
}

// Thaw returns a mutable copy.
func (f *Frozen[K, V]) Thaw() *Bidict[K, V] {
	return &Bidict[K, V]{view[K, V]{s: f.s.copy(false)}}
}

// FrozenOrdered is an immutable bidirectional map that keeps insertion order.
type FrozenOrdered[K, V comparable] struct {
	orderedView[K, V]
}

// NewFrozenOrdered builds a FrozenOrdered map like OrderedFromPairs does.
func NewFrozenOrdered[K, V comparable](opt Options[K, V], items ...Pair[K, V]) (*FrozenOrdered[K, V], error) {
	c, err := build(opt, true, items)
	if err != nil {
		return nil, err
	}
	c.seal()
	return &FrozenOrdered[K, V]{orderedView[K, V]{view[K, V]{s: c}}}, nil
}

// Hash returns the same order-independent digest as Frozen.Hash.
func (f *FrozenOrdered[K, V]) Hash() uint64 { return f.s.identity() }

// Keys yields keys in order from the list captured at freeze time.
// The map cannot change, so the list never goes stale.
func (f *FrozenOrdered[K, V]) Keys() iter.Seq[K] { return slices.Values(f.s.keyList()) }

// Values yields values in order from the list captured at freeze time.
func (f *FrozenOrdered[K, V]) Values() iter.Seq[V] { return slices.Values(f.s.valList()) }

// Inverse returns the frozen inverse over the same storage.
func (f *FrozenOrdered[K, V]) Inverse() *FrozenOrdered[V, K] {
	return &FrozenOrdered[V, K]{orderedView[V, K]{view[V, K]{s: f.s.inverse()}}}
}

// Thaw returns a mutable copy with the same order.
func (f *FrozenOrdered[K, V]) Thaw() *OrderedBidict[K, V] {
	return &OrderedBidict[K, V]{orderedView[K, V]{view[K, V]{s: f.s.copy(false)}}}
}

var (
	_ Map[int, string] = (*Frozen[int, string])(nil)
	_ Map[int, string] = (*FrozenOrdered[int, string])(nil)
)
