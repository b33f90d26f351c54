// Package syncbidict provides a bidirectional map that is safe for
// concurrent use. It guards any bidict.Map with a single sync.RWMutex:
// lookups take the read lock, writes take the write lock.
//
// The map is not sharded. A write checks the key and the value, which would
// live in different shards, so every write would need two locks anyway.
package syncbidict

import (
	"sync"

	"github.com/IvanBrykalov/bidict/bidict"
)

// Map is a concurrency-safe wrapper over a bidict.Map.
type Map[K, V comparable] struct {
	mu sync.RWMutex
	m  bidict.Map[K, V] // guarded by mu
}

// New wraps m. The caller must not use m directly afterwards.
// A nil m is replaced by an empty unordered bidict.
func New[K, V comparable](m bidict.Map[K, V]) *Map[K, V] {
	if m == nil {
		m = bidict.New[K, V](bidict.Options[K, V]{})
	}
	return &Map[K, V]{m: m}
}

// Get returns the value for k.
func (s *Map[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(k)
}

// GetKey returns the key mapped to v.
func (s *Map[K, V]) GetKey(v V) (K, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.GetKey(v)
}

func (s *Map[K, V]) ContainsKey(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.ContainsKey(k)
}

func (s *Map[K, V]) ContainsValue(v V) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.ContainsValue(v)
}

// Len returns the number of items.
func (s *Map[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Items returns a snapshot of the items in iteration order.
func (s *Map[K, V]) Items() []bidict.Pair[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bidict.Pair[K, V], 0, s.m.Len())
	for k, v := range s.m.All() {
		out = append(out, bidict.Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// Put installs k→v under the wrapped map's default policy.
func (s *Map[K, V]) Put(k K, v V) ([]bidict.Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(k, v)
}

// PutWith installs k→v under od.
func (s *Map[K, V]) PutWith(k K, v V, od bidict.OnDup) ([]bidict.Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.PutWith(k, v, od)
}

// ForcePut installs k→v, evicting whatever holds k or v.
func (s *Map[K, V]) ForcePut(k K, v V) ([]bidict.Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.ForcePut(k, v)
}

// Add installs k→v only if neither is present.
func (s *Map[K, V]) Add(k K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Add(k, v)
}

// PutAll applies items atomically.
func (s *Map[K, V]) PutAll(items ...bidict.Pair[K, V]) ([]bidict.Pair[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.PutAll(items...)
}

func (s *Map[K, V]) Remove(k K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(k)
}

func (s *Map[K, V]) RemoveValue(v V) (K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.RemoveValue(v)
}

func (s *Map[K, V]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Clear()
}

// Do runs fn with exclusive access to the wrapped map, for compound
// read-modify-write sequences. fn must not retain m.
func (s *Map[K, V]) Do(fn func(m bidict.Map[K, V]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}

// View runs fn with shared read access to the wrapped map.
func (s *Map[K, V]) View(fn func(r bidict.Reader[K, V])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.m)
}

var _ bidict.Map[int, string] = (*Map[int, string])(nil)
