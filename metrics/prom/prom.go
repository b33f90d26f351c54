package prom

import (
	"github.com/IvanBrykalov/bidict/bidict"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements bidict.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	puts    prometheus.Counter
	evicts  *prometheus.CounterVec
	rejects *prometheus.CounterVec
	sizeEnt prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "puts_total",
			Help:        "Items installed by successful writes",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Items evicted by overwriting writes, by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "rejections_total",
				Help:        "Writes rejected as duplicates, by kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of items",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.puts, a.evicts, a.rejects, a.sizeEnt)
	return a
}

// Put increments the put counter.
func (a *Adapter) Put() { a.puts.Inc() }

// Evict increments the eviction counter with a reason label.
func (a *Adapter) Evict(r bidict.EvictReason) {
	a.evicts.WithLabelValues(r.String()).Inc()
}

// Reject increments the rejection counter with a kind label.
func (a *Adapter) Reject(k bidict.DupKind) {
	a.rejects.WithLabelValues(kind(k)).Inc()
}

// Size updates the entries gauge.
func (a *Adapter) Size(entries int) {
	a.sizeEnt.Set(float64(entries))
}

// kind maps DupKind to a stable label value.
func kind(k bidict.DupKind) string {
	switch k {
	case bidict.DupKey:
		return "key"
	case bidict.DupValue:
		return "value"
	case bidict.DupKeyAndValue:
		return "key_and_value"
	default:
		return "unknown"
	}
}

var _ bidict.Metrics = (*Adapter)(nil)
