package bidict

// OrderedBidict is a mutable bidirectional map that remembers insertion order.
//
// Order rules:
//   - a new item is appended at the end;
//   - re-putting an item that is already present keeps its position;
//   - an insertion that evicts items (overwriting a key or a value) removes
//     them first and appends the new item at the end.
type OrderedBidict[K, V comparable] struct {
	orderedView[K, V]
}

// NewOrdered returns an empty OrderedBidict configured by opt.
func NewOrdered[K, V comparable](opt Options[K, V]) *OrderedBidict[K, V] {
	return &OrderedBidict[K, V]{orderedView[K, V]{view[K, V]{s: newCore(opt, true)}}}
}

// OrderedFromPairs builds an OrderedBidict like FromPairs does.
func OrderedFromPairs[K, V comparable](opt Options[K, V], items ...Pair[K, V]) (*OrderedBidict[K, V], error) {
	c, err := build(opt, true, items)
	if err != nil {
		return nil, err
	}
	return &OrderedBidict[K, V]{orderedView[K, V]{view[K, V]{s: c}}}, nil
}

// OrderedFromSlices pairs keys[i] with vals[i] and behaves like OrderedFromPairs.
func OrderedFromSlices[K, V comparable](opt Options[K, V], keys []K, vals []V) (*OrderedBidict[K, V], error) {
	items, err := Zip(keys, vals)
	if err != nil {
		return nil, err
	}
	return OrderedFromPairs(opt, items...)
}

// Inverse returns a handle over the same storage and order with keys and
// values swapped.
func (b *OrderedBidict[K, V]) Inverse() *OrderedBidict[V, K] {
	return &OrderedBidict[V, K]{orderedView[V, K]{view[V, K]{s: b.s.inverse()}}}
}

// Copy returns an independent copy of b with the same order.
func (b *OrderedBidict[K, V]) Copy() *OrderedBidict[K, V] {
	return &OrderedBidict[K, V]{orderedView[K, V]{view[K, V]{s: b.s.copy(false)}}}
}

// Freeze returns an immutable copy of b with the same order.
func (b *OrderedBidict[K, V]) Freeze() *FrozenOrdered[K, V] {
	return &FrozenOrdered[K, V]{orderedView[K, V]{view[K, V]{s: b.s.copy(true)}}}
}

var _ Map[int, string] = (*OrderedBidict[int, string])(nil)
