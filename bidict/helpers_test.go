package bidict

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// consistent reports whether fwd, inv and the record table agree.
func consistent[K, V comparable](c *core[K, V]) bool {
	if len(c.fwd) != len(c.inv) {
		return false
	}
	live := 0
	for i := 1; i < len(c.tab.recs); i++ {
		if c.tab.recs[i].live {
			live++
		}
	}
	if live != len(c.fwd) {
		return false
	}
	for k, i := range c.fwd {
		r := c.tab.recs[i]
		if !r.live || r.key != k || c.inv[r.val] != i {
			return false
		}
	}
	if c.tab.ordered {
		n := 0
		for i := c.tab.recs[0].next; i != 0; i = c.tab.recs[i].next {
			if c.tab.recs[c.tab.recs[i].next].prev != i || !c.tab.recs[i].live {
				return false
			}
			n++
			if n > len(c.fwd) {
				return false
			}
		}
		if n != len(c.fwd) {
			return false
		}
	}
	return true
}

func coreConsistent[K, V comparable](s side[K, V]) bool {
	switch x := s.(type) {
	case *core[K, V]:
		return consistent(x)
	case mirror[K, V]:
		return consistent(x.c)
	}
	return false
}

func requireConsistent[K, V comparable](t *testing.T, s side[K, V]) {
	t.Helper()
	require.True(t, coreConsistent(s), "fwd/inv/table out of sync")
}

// snapshot is a deep copy of a core's storage for byte-for-byte comparisons.
type snapshot[K, V comparable] struct {
	fwd  map[K]int
	inv  map[V]int
	recs []record[K, V]
	free []int
}

func takeSnapshot[K, V comparable](c *core[K, V]) snapshot[K, V] {
	return snapshot[K, V]{
		fwd:  maps.Clone(c.fwd),
		inv:  maps.Clone(c.inv),
		recs: slices.Clone(c.tab.recs),
		free: slices.Clone(c.tab.free),
	}
}

func coreOf[K, V comparable](t *testing.T, s side[K, V]) *core[K, V] {
	t.Helper()
	c, ok := s.(*core[K, V])
	require.True(t, ok, "expected forward orientation")
	return c
}

func pairs[K, V comparable](kv ...any) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Pair[K, V]{Key: kv[i].(K), Value: kv[i+1].(V)})
	}
	return out
}

// countingMetrics records every Metrics signal.
type countingMetrics struct {
	puts    int
	evicts  map[EvictReason]int
	rejects map[DupKind]int
	size    int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{evicts: map[EvictReason]int{}, rejects: map[DupKind]int{}}
}

func (m *countingMetrics) Put()                { m.puts++ }
func (m *countingMetrics) Evict(r EvictReason) { m.evicts[r]++ }
func (m *countingMetrics) Reject(k DupKind)    { m.rejects[k]++ }
func (m *countingMetrics) Size(n int)          { m.size = n }
