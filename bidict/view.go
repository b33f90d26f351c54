package bidict

import (
	"fmt"
	"iter"
	"strings"
)

// view implements the Reader and Writer surfaces over one side of a core.
// Every public variant embeds it.
type view[K, V comparable] struct {
	s side[K, V]
}

// ---- Reader ----

// Get returns the value for k and a presence flag.
func (b view[K, V]) Get(k K) (V, bool) { return b.s.get(k) }

// GetKey returns the key mapped to v and a presence flag.
func (b view[K, V]) GetKey(v V) (K, bool) { return b.s.getInv(v) }

// Lookup is Get that reports a miss as a *NotFoundError.
func (b view[K, V]) Lookup(k K) (V, error) {
	v, ok := b.s.get(k)
	if !ok {
		return v, &NotFoundError{Key: k}
	}
	return v, nil
}

// LookupKey is GetKey that reports a miss as a *NotFoundError.
func (b view[K, V]) LookupKey(v V) (K, error) {
	k, ok := b.s.getInv(v)
	if !ok {
		return k, &NotFoundError{Key: v, Inverse: true}
	}
	return k, nil
}

func (b view[K, V]) ContainsKey(k K) bool {
	_, ok := b.s.get(k)
	return ok
}

func (b view[K, V]) ContainsValue(v V) bool {
	_, ok := b.s.getInv(v)
	return ok
}

// Len returns the number of items.
func (b view[K, V]) Len() int { return b.s.length() }

// Iter starts a new traversal in iteration order.
func (b view[K, V]) Iter() *Iterator[K, V] { return newIterator(b.s, false) }

// All yields every item. It panics with ErrModified if the map is
// mutated during the loop.
func (b view[K, V]) All() iter.Seq2[K, V] { return seq2(b.s, false) }

func (b view[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq2(b.s, false) {
			if !yield(k) {
				return
			}
		}
	}
}

func (b view[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq2(b.s, false) {
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns the items in iteration order.
func (b view[K, V]) Items() []Pair[K, V] {
	out := make([]Pair[K, V], 0, b.s.length())
	for k, v := range seq2(b.s, false) {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// Equal reports whether both maps hold the same items, ignoring order.
func (b view[K, V]) Equal(other Reader[K, V]) bool {
	if other == nil || b.s.length() != other.Len() {
		return false
	}
	for k, v := range seq2(b.s, false) {
		if ov, ok := other.Get(k); !ok || ov != v {
			return false
		}
	}
	return true
}

func (b view[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("bidict{")
	first := true
	for k, v := range seq2(b.s, false) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// ---- Writer ----

// Put installs k→v under the map's default policy (Options.OnDup).
// It returns the items it evicted.
func (b view[K, V]) Put(k K, v V) ([]Pair[K, V], error) {
	return b.PutWith(k, v, b.s.policy())
}

// PutWith installs k→v under od. Zero slots of od take their defaults.
//
// Collision handling:
//   - k→v already present: no-op, the item keeps its position;
//   - only k present: od.Key decides;
//   - only v present: od.Val decides;
//   - k and v belong to different items: od.KV decides; Overwrite evicts both.
//
// On error the map is unchanged.
func (b view[K, V]) PutWith(k K, v V, od OnDup) ([]Pair[K, V], error) {
	if b.s.isFrozen() {
		return nil, ErrImmutable
	}
	return b.s.put(k, v, od.normalize())
}

// ForcePut installs k→v, evicting whatever collides.
func (b view[K, V]) ForcePut(k K, v V) ([]Pair[K, V], error) {
	return b.PutWith(k, v, OnDupDropOld)
}

// Add installs k→v only if neither k nor v is present.
func (b view[K, V]) Add(k K, v V) error {
	_, err := b.PutWith(k, v, OnDupRaise)
	return err
}

// PutAll applies items in order under the default policy. If any item is
// rejected, the items applied before it are rolled back.
func (b view[K, V]) PutAll(items ...Pair[K, V]) ([]Pair[K, V], error) {
	return b.PutAllWith(b.s.policy(), items...)
}

// PutAllWith is PutAll with an explicit policy.
func (b view[K, V]) PutAllWith(od OnDup, items ...Pair[K, V]) ([]Pair[K, V], error) {
	if b.s.isFrozen() {
		return nil, ErrImmutable
	}
	return b.s.putAll(items, od.normalize())
}

// Remove deletes k and returns its value.
func (b view[K, V]) Remove(k K) (V, error) {
	if b.s.isFrozen() {
		var zero V
		return zero, ErrImmutable
	}
	v, ok := b.s.remove(k)
	if !ok {
		return v, &NotFoundError{Key: k}
	}
	return v, nil
}

// RemoveValue deletes the item holding v and returns its key.
func (b view[K, V]) RemoveValue(v V) (K, error) {
	if b.s.isFrozen() {
		var zero K
		return zero, ErrImmutable
	}
	k, ok := b.s.removeInv(v)
	if !ok {
		return k, &NotFoundError{Key: v, Inverse: true}
	}
	return k, nil
}

// Clear removes every item.
func (b view[K, V]) Clear() error {
	if b.s.isFrozen() {
		return ErrImmutable
	}
	b.s.clear()
	return nil
}

// ---- ordered extras ----

// orderedView adds the order-aware operations shared by OrderedBidict and
// FrozenOrdered.
type orderedView[K, V comparable] struct {
	view[K, V]
}

// ReverseIter starts a new traversal from the newest item.
func (b orderedView[K, V]) ReverseIter() *Iterator[K, V] { return newIterator(b.s, true) }

// Backward yields every item from newest to oldest.
func (b orderedView[K, V]) Backward() iter.Seq2[K, V] { return seq2(b.s, true) }

// EqualOrder reports whether both maps hold the same items in the same order.
func (b orderedView[K, V]) EqualOrder(other Reader[K, V]) bool {
	if other == nil || b.s.length() != other.Len() {
		return false
	}
	next, stop := iter.Pull2(other.All())
	defer stop()
	for k, v := range seq2(b.s, false) {
		k2, v2, ok := next()
		if !ok || k2 != k || v2 != v {
			return false
		}
	}
	return true
}

// MoveToEnd moves the item for k to the newest position (last) or to the
// oldest position.
func (b orderedView[K, V]) MoveToEnd(k K, last bool) error {
	if b.s.isFrozen() {
		return ErrImmutable
	}
	if !b.s.moveToEnd(k, last) {
		return &NotFoundError{Key: k}
	}
	return nil
}

// PopItem removes and returns the newest (last) or the oldest item.
func (b orderedView[K, V]) PopItem(last bool) (K, V, error) {
	if b.s.isFrozen() {
		var (
			k K
			v V
		)
		return k, v, ErrImmutable
	}
	k, v, ok := b.s.popItem(last)
	if !ok {
		return k, v, fmt.Errorf("%w: map is empty", ErrNotFound)
	}
	return k, v, nil
}
