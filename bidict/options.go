package bidict

import "github.com/go-logr/logr"

// EvictReason explains why an item was evicted by an insertion.
type EvictReason int

const (
	// EvictDupKey: the new item reused the evicted item's key.
	EvictDupKey EvictReason = iota
	// EvictDupValue: the new item reused the evicted item's value.
	EvictDupValue
)

func (r EvictReason) String() string {
	if r == EvictDupValue {
		return "dup_value"
	}
	return "dup_key"
}

// Metrics exposes map-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Put()
	Evict(reason EvictReason)
	Reject(kind DupKind)
	Size(entries int)
}

// Options configures a map. Zero values are safe; defaults are applied
// by the constructors:
//   - zero OnDup slots => OnDupDefault
//   - nil Metrics      => NoopMetrics
//   - zero Logger      => logr.Discard()
type Options[K, V comparable] struct {
	// Capacity is an initial size hint (0 = none). It is not a limit.
	Capacity int

	// OnDup is the policy used by Put, PutAll and the From* constructors.
	OnDup OnDup

	// OnEvict is called for every item evicted by an insertion, after the
	// insertion completed. Key and value are in the orientation of the map
	// that was constructed, even when the write went through Inverse().
	// Callbacks must not mutate the map.
	OnEvict func(k K, v V, reason EvictReason)

	Metrics Metrics

	// Logger receives rejected writes at V(1) and evictions at V(2).
	Logger logr.Logger
}

func (o Options[K, V]) withDefaults() Options[K, V] {
	if o.Capacity < 0 {
		o.Capacity = 0
	}
	o.OnDup = o.OnDup.normalize()
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	return o
}
