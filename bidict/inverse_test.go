package bidict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverse_Lookups(t *testing.T) {
	t.Parallel()

	b := mustFromPairs(t, pairs[int, string](1, "a", 2, "b")...)
	inv := b.Inverse()

	for _, v := range []string{"a", "b", "zz"} {
		k1, ok1 := inv.Get(v)
		k2, ok2 := b.GetKey(v)
		assert.Equal(t, ok2, ok1)
		assert.Equal(t, k2, k1)
	}
	assert.True(t, inv.ContainsKey("a"))
	assert.True(t, inv.ContainsValue(2))
	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Inverse().Equal(b))
}

// Writes through the inverse land in the shared storage.
func TestInverse_WritesAreShared(t *testing.T) {
	t.Parallel()

	b := mustOrdered(t, pairs[int, string](1, "a")...)
	inv := b.Inverse()

	require.NoError(t, inv.Add("b", 2))
	v, ok := b.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, pairs[int, string](1, "a", 2, "b"), b.Items())
	assert.Equal(t, pairs[string, int]("a", 1, "b", 2), inv.Items())

	// A key overwrite through the inverse is a value overwrite of b: 2:b goes.
	ev, err := inv.Put("b", 9)
	require.NoError(t, err)
	assert.Equal(t, []Pair[string, int]{{"b", 2}}, ev)
	assert.Equal(t, pairs[int, string](1, "a", 9, "b"), b.Items())

	_, err = inv.Remove("a")
	require.NoError(t, err)
	assert.False(t, b.ContainsKey(1))
	requireConsistent(t, b.s)
	requireConsistent(t, inv.s)
}

// The inverse applies the same policy in its own orientation, so a
// collision reads with swapped roles.
func TestInverse_DuplicationErrorsAreSwapped(t *testing.T) {
	t.Parallel()

	b := mustFromPairs(t, pairs[int, string](1, "a")...)
	inv := b.Inverse()

	_, err := inv.Put("b", 1)
	var de *DuplicationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, DupValue, de.Kind)
	assert.Equal(t, "b", de.Key)
	assert.Equal(t, 1, de.Value)

	_, err = inv.PutAll(pairs[string, int]("c", 2, "d", 1)...)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, DupValue, de.Kind)
	assert.Equal(t, 1, b.Len())

	_, err = inv.Remove("zz")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "zz", nf.Key)
	assert.False(t, nf.Inverse)
}

// Mutating through the inverse ends in the same state as the equivalent
// direct mutation with roles swapped.
func TestInverse_MatchesSwappedDirectWrites(t *testing.T) {
	t.Parallel()

	type op struct {
		k  int
		v  string
		od OnDup
	}
	ops := []op{
		{1, "a", OnDupDefault},
		{2, "b", OnDupDefault},
		{3, "a", OnDup{Val: Overwrite}},
		{2, "c", OnDupDefault},
		{3, "c", OnDupDropOld},
		{4, "d", OnDupRaise},
		{4, "b", OnDup{Key: DropNew}},
	}

	direct := NewOrdered[int, string](Options[int, string]{})
	viaInv := NewOrdered[int, string](Options[int, string]{})
	inv := viaInv.Inverse()
	for _, o := range ops {
		ev1, err1 := direct.PutWith(o.k, o.v, o.od)
		ev2, err2 := inv.PutWith(o.v, o.k, o.od.normalize().swap())
		assert.Equal(t, err1 == nil, err2 == nil)
		assert.Equal(t, ev1, flip(ev2))
	}
	assert.True(t, direct.EqualOrder(viaInv))
	requireConsistent(t, viaInv.s)
}

func TestInverse_OfFrozenIsFrozen(t *testing.T) {
	t.Parallel()

	f := mustFrozen(t, pairs[int, string](1, "a")...)
	k, ok := f.Inverse().Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, k)
	assert.ErrorIs(t, f.Inverse().Add("b", 2), ErrImmutable)

	thawed := f.Inverse().Thaw()
	require.NoError(t, thawed.Add("b", 2))
	assert.Equal(t, 1, f.Len())
}

func TestInverse_FreezeAndCopy(t *testing.T) {
	t.Parallel()

	b := mustOrdered(t, pairs[int, string](1, "a", 2, "b")...)
	inv := b.Inverse()

	cp := inv.Copy()
	require.NoError(t, cp.Add("c", 3))
	assert.Equal(t, 2, b.Len())

	f := inv.Freeze()
	assert.Equal(t, pairs[string, int]("a", 1, "b", 2), f.Items())
	assert.Equal(t, mustFrozen(t, pairs[string, int]("a", 1, "b", 2)...).Hash(), f.Hash())
}
