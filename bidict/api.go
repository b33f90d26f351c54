package bidict

import "iter"

// Pair is a single key/value item of a bidirectional map.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// Reader is the read-only surface shared by every variant and by their
// inverse views. Lookups are O(1) expected in both directions.
type Reader[K, V comparable] interface {
	// Get returns the value for k and a presence flag.
	Get(k K) (V, bool)
	// GetKey returns the key mapped to v and a presence flag.
	GetKey(v V) (K, bool)

	ContainsKey(k K) bool
	ContainsValue(v V) bool

	// Len returns the number of items.
	Len() int

	// All yields items in iteration order. It panics with ErrModified
	// if the map is mutated while the range loop is running.
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
}

// Writer is the mutating surface. Frozen variants implement it too, but
// every method returns ErrImmutable and leaves the map untouched.
type Writer[K, V comparable] interface {
	// Put installs k→v under the map's default OnDup policy and returns
	// the items it evicted (zero, one or two).
	Put(k K, v V) ([]Pair[K, V], error)

	// PutWith is Put with an explicit duplication policy.
	PutWith(k K, v V, od OnDup) ([]Pair[K, V], error)

	// ForcePut installs k→v, evicting whatever items hold k or v.
	ForcePut(k K, v V) ([]Pair[K, V], error)

	// Add installs k→v only if neither k nor v is present.
	Add(k K, v V) error

	// PutAll applies items in order under the default policy.
	// Either every item is applied or none is.
	PutAll(items ...Pair[K, V]) ([]Pair[K, V], error)

	// Remove deletes k and returns the value it mapped to.
	Remove(k K) (V, error)
	// RemoveValue deletes the item holding v and returns its key.
	RemoveValue(v V) (K, error)

	Clear() error
}

// Map is a full read/write bidirectional map.
type Map[K, V comparable] interface {
	Reader[K, V]
	Writer[K, V]
}
