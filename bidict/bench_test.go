package bidict

import (
	"math/rand"
	"strconv"
	"testing"
)

// benchmarkMix runs a put/get/remove mix against a warm map.
// Maps are not safe for concurrent use, so workers are not parallel.
func benchmarkMix(b *testing.B, ordered bool, readsPct int) {
	var m Map[int, string]
	if ordered {
		m = NewOrdered[int, string](Options[int, string]{Capacity: 100_000})
	} else {
		m = New[int, string](Options[int, string]{Capacity: 100_000})
	}

	vals := make([]string, 1<<16)
	for i := range vals {
		vals[i] = "v:" + strconv.Itoa(i)
	}
	for i := 0; i < 50_000; i++ {
		_, _ = m.ForcePut(i, vals[i&(len(vals)-1)])
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1
	for i := 0; i < b.N; i++ {
		k := r.Intn(1<<20) & keyMask
		switch p := r.Intn(100); {
		case p < readsPct:
			m.Get(k)
		case p < readsPct+(100-readsPct)/2:
			_, _ = m.ForcePut(k, vals[(k*7)&keyMask])
		default:
			_, _ = m.Remove(k)
		}
	}
}

func BenchmarkBidict_90r10w(b *testing.B)        { benchmarkMix(b, false, 90) }
func BenchmarkBidict_50r50w(b *testing.B)        { benchmarkMix(b, false, 50) }
func BenchmarkOrderedBidict_90r10w(b *testing.B) { benchmarkMix(b, true, 90) }
func BenchmarkOrderedBidict_50r50w(b *testing.B) { benchmarkMix(b, true, 50) }

func BenchmarkFrozen_Hash(b *testing.B) {
	items := make([]Pair[int, int], 10_000)
	for i := range items {
		items[i] = Pair[int, int]{i, -i}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := NewFrozen(Options[int, int]{}, items...)
		_ = f.Hash()
	}
}
