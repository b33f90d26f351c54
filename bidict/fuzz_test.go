package bidict

import (
	"strings"
	"testing"
)

// Fuzz Put/Get/Remove on both orientations under arbitrary string inputs.
// Guards against panics and checks the bijection after every step.
func FuzzBidict_PutGetRemove(f *testing.F) {
	f.Add("", "")
	f.Add("a", "1")
	f.Add("a", "a")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		b := NewOrdered[string, string](Options[string, string]{})

		if _, err := b.Put(k, v); err != nil {
			t.Fatalf("Put into empty map: %v", err)
		}
		if got, ok := b.Get(k); !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}
		if got, ok := b.GetKey(v); !ok || got != k {
			t.Fatalf("after Put/GetKey: want %q, got %q ok=%v", k, got, ok)
		}

		// Reusing the value under another key must be rejected by Add.
		if err := b.Add(k+"'", v); err == nil {
			t.Fatalf("Add with duplicate value succeeded")
		}

		// The reverse item through the inverse: v→k already exists there.
		if _, err := b.Inverse().Put(v, k); err != nil {
			t.Fatalf("re-put through inverse: %v", err)
		}
		if b.Len() != 1 {
			t.Fatalf("Len = %d, want 1", b.Len())
		}

		if _, err := b.ForcePut(v, k); err != nil {
			t.Fatalf("ForcePut: %v", err)
		}
		if !consistent(coreOf(t, b.s)) {
			t.Fatalf("inconsistent after ForcePut")
		}

		for b.Len() > 0 {
			if _, _, err := b.PopItem(true); err != nil {
				t.Fatalf("PopItem: %v", err)
			}
		}
		if b.ContainsKey(k) || b.ContainsValue(v) {
			t.Fatalf("map must be empty")
		}
	})
}
