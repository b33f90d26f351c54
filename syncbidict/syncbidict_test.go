package syncbidict

import (
	"math/rand"
	"runtime"
	"strconv"
	"testing"

	"github.com/IvanBrykalov/bidict/bidict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMap_Basic(t *testing.T) {
	m := New[int, string](nil)

	_, err := m.Put(1, "a")
	require.NoError(t, err)
	require.Error(t, m.Add(2, "a"))

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	k, ok := m.GetKey("a")
	require.True(t, ok)
	assert.Equal(t, 1, k)

	ev, err := m.ForcePut(2, "a")
	require.NoError(t, err)
	assert.Equal(t, []bidict.Pair[int, string]{{1, "a"}}, ev)
	assert.False(t, m.ContainsKey(1))
	assert.True(t, m.ContainsValue("a"))

	_, err = m.PutAll(bidict.Pair[int, string]{3, "c"}, bidict.Pair[int, string]{4, "c"})
	require.ErrorIs(t, err, bidict.ErrDuplication)
	assert.Equal(t, 1, m.Len())

	_, err = m.RemoveValue("a")
	require.NoError(t, err)
	_, err = m.Remove(2)
	require.ErrorIs(t, err, bidict.ErrNotFound)
	require.NoError(t, m.Clear())
}

func TestMap_FrozenStaysImmutable(t *testing.T) {
	f, err := bidict.NewFrozen(bidict.Options[int, string]{}, bidict.Pair[int, string]{1, "a"})
	require.NoError(t, err)
	m := New[int, string](f)

	_, err = m.Put(2, "b")
	require.ErrorIs(t, err, bidict.ErrImmutable)
	assert.Equal(t, []bidict.Pair[int, string]{{1, "a"}}, m.Items())
}

// Do makes a compound swap atomic: readers never see a half-swapped map.
func TestMap_DoSwapsAtomically(t *testing.T) {
	m := New[string, int](bidict.NewOrdered[string, int](bidict.Options[string, int]{}))
	_, err := m.PutAll(bidict.Pair[string, int]{"x", 1}, bidict.Pair[string, int]{"y", 2})
	require.NoError(t, err)

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 1000; i++ {
			err := m.Do(func(b bidict.Map[string, int]) error {
				x, _ := b.Get("x")
				y, _ := b.Get("y")
				if _, err := b.ForcePut("x", y); err != nil {
					return err
				}
				_, err := b.ForcePut("y", x)
				return err
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				m.View(func(r bidict.Reader[string, int]) {
					x, _ := r.Get("x")
					y, _ := r.Get("y")
					assert.ElementsMatch(t, []int{1, 2}, []int{x, y})
				})
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// A mixed workload of concurrent Put/ForcePut/Remove/Get on random keys.
// Should pass under `-race` and leave the map a bijection.
func TestMap_Concurrent(t *testing.T) {
	m := New[string, int](bidict.New[string, int](bidict.Options[string, int]{Capacity: 1024}))

	workers := 4 * runtime.GOMAXPROCS(0)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(int64(w) * 9973))
			for i := 0; i < 2000; i++ {
				k := "k:" + strconv.Itoa(r.Intn(256))
				v := r.Intn(256)
				switch r.Intn(10) {
				case 0:
					_, _ = m.Remove(k)
				case 1, 2:
					_, _ = m.ForcePut(k, v)
				case 3, 4:
					_, _ = m.Put(k, v)
				default:
					if got, ok := m.Get(k); ok {
						m.GetKey(got)
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	items := m.Items()
	assert.Equal(t, m.Len(), len(items))
	for _, it := range items {
		k, ok := m.GetKey(it.Value)
		require.True(t, ok)
		assert.Equal(t, it.Key, k)
	}
}
