// Package bidict provides generic bidirectional maps: every key maps to one
// value and every value maps back to one key, with O(1) expected lookups in
// both directions.
//
// Variants
//
//   - Bidict: mutable, unordered.
//   - OrderedBidict: mutable, remembers insertion order.
//   - Frozen / FrozenOrdered: immutable copies with a cached content Hash.
//
// Every variant has an Inverse() handle over the same storage with the key
// and value roles swapped. It is a view, not a copy.
//
// Design
//
//   - Storage: items live in an index-based record table. The forward map
//     (key -> slot) and the inverse map (value -> slot) both point into it, so
//     one record is shared by both indexes and, for ordered maps, by the
//     order list. Freed slots are recycled.
//
//   - Order: ordered maps link records into a circular doubly linked list
//     closed by a sentinel slot, so append and unlink are O(1) without
//     special cases for empty or single-item maps.
//
//   - Collisions: an insertion k→v is classified as new, key collision,
//     value collision, already present, or key-and-value collision with two
//     different items. OnDup picks Raise, Overwrite or DropNew per case.
//     Rejected writes leave the map unchanged.
//
//   - Iteration: a version counter is bumped by every mutation. Iterators
//     fail fast with ErrModified once the map changed under them.
//
//   - Metrics and logging: Options.Metrics receives Put/Evict/Reject/Size
//     signals (NoopMetrics by default, see package metrics/prom for a
//     Prometheus adapter). Options.Logger is a logr.Logger.
//
// Basic usage
//
//	b := bidict.New[int, string](bidict.Options[int, string]{})
//	b.Put(1, "a")
//	b.Put(2, "b")
//	b.Put(1, "c")              // overwrites key 1, evicts 1:"a"
//	k, _ := b.GetKey("c")      // 1
//	_, err := b.Put(3, "b")    // *DuplicationError: value "b" is mapped from 2
//	b.ForcePut(3, "b")         // evicts 2:"b"
//
// Through the inverse
//
//	inv := b.Inverse()
//	inv.Put("z", 9)            // installs 9:"z" in b
//
// Thread-safety
//
// Maps are not safe for concurrent mutation. Wrap them in your own lock or
// use package syncbidict. Frozen maps are safe for concurrent reads.
package bidict
