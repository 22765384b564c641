package Trees

import (
	"cmp"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	Go_DS "github.com/mihai-negru/go-data-structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heightBound(size uint32) int {
	return int(2 * math.Log2(float64(size)+1))
}

func TestRBTree_Scenario1(t *testing.T) {
	tree := NewOrderedRB[int, uint32](7)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.NoError(t, tree.Insert(k))
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, inorder[int, uint32](tree))
	get := func(v int, e error) int {
		require.NoError(t, e)
		return v
	}
	assert.Equal(t, 5, get(tree.Root()))
	assert.Equal(t, 1, get(tree.Min(5)))
	assert.Equal(t, 9, get(tree.Max(5)))
	assert.Equal(t, 4, get(tree.Predecessor(5)))
	assert.Equal(t, 7, get(tree.Successor(5)))
	assert.Equal(t, 3, get(tree.LCA(1, 4)))
	assert.Equal(t, 5, get(tree.LCA(1, 9)))
	require.NoError(t, tree.Validate())
}

func TestRBTree_Scenario2(t *testing.T) {
	tree := NewOrderedRB[int, uint32](0)
	for _, k := range []int{10, 20, 30, 40, 50, 25} {
		require.NoError(t, tree.Insert(k))
		require.NoError(t, tree.Validate())
	}
	r, _ := tree.Root()
	assert.Equal(t, 20, r)
	assert.LessOrEqual(t, tree.Height(), heightBound(6))
	assert.LessOrEqual(t, tree.Height(), int(math.Floor(2*math.Log2(7))))
}

func TestRBTree_Ascending(t *testing.T) {
	tree := NewOrderedRB[int, uint32](1000)
	want := make([]int, 0, 1000)
	for k := 1; k <= 1000; k++ {
		require.NoError(t, tree.Insert(k))
		want = append(want, k)
	}
	assert.EqualValues(t, 1000, tree.Size())
	assert.Equal(t, want, inorder[int, uint32](tree))
	assert.LessOrEqual(t, tree.Height(), 20)
	require.NoError(t, tree.Validate())
}

func TestRBTree_DeleteRoots(t *testing.T) {
	tree := NewOrderedRB[int, uint32](100)
	for k := 1; k <= 100; k++ {
		require.NoError(t, tree.Insert(k))
	}
	for i := 0; i < 100; i++ {
		r, e := tree.Root()
		require.NoError(t, e)
		require.NoError(t, tree.Delete(r))
		require.NoError(t, tree.Validate(), "after deleting root %d", r)
		require.False(t, tree.Has(r))
		require.EqualValues(t, 99-i, tree.Size())
		require.LessOrEqual(t, tree.Height(), heightBound(tree.Size()))
	}
	assert.True(t, tree.Empty())
	_, e := tree.Root()
	assert.ErrorIs(t, e, Go_DS.ErrEmpty)
}

func TestRBTree_Scenario5(t *testing.T) {
	tree := NewOrderedRB[int, uint32](8)
	for _, k := range []int{7, 3, 18, 10, 22, 8, 11, 26} {
		require.NoError(t, tree.Insert(k))
	}
	require.NoError(t, tree.Delete(18))
	assert.Equal(t, []int{3, 7, 8, 10, 11, 22, 26}, inorder[int, uint32](tree))
	require.NoError(t, tree.Validate())
}

func TestRBTree_Multiset(t *testing.T) {
	tree := NewOrderedRB[int, uint32](1)
	for range 4 {
		require.NoError(t, tree.Insert(5))
	}
	assert.EqualValues(t, 1, tree.Size())
	assert.Equal(t, []int{5}, inorder[int, uint32](tree))
	assert.EqualValues(t, 4, tree.Count(5))
	assert.EqualValues(t, 4, tree.ifs[tree.root].n)

	require.NoError(t, tree.DeleteOne(5))
	assert.EqualValues(t, 3, tree.Count(5))
	require.NoError(t, tree.Delete(5))
	assert.True(t, tree.Empty())
	assert.Zero(t, tree.Count(5))
}

func TestRBTree_MultiplicityOracle(t *testing.T) {
	tree := NewOrderedRB[int, uint32](0)
	oracle := hashmap.New[int, uint]()
	for range 20000 {
		k := rg.Intn(500)
		if rg.Intn(5) == 0 {
			if n, ok := oracle.Get(k); ok {
				require.NoError(t, tree.DeleteOne(k))
				if n == 1 {
					oracle.Del(k)
				} else {
					oracle.Set(k, n-1)
				}
			} else {
				require.Error(t, tree.DeleteOne(k))
			}
			continue
		}
		require.NoError(t, tree.Insert(k))
		n, _ := oracle.Get(k)
		oracle.Set(k, n+1)
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, oracle.Len(), int(tree.Size()))
	oracle.Range(func(k int, n uint) bool {
		assert.Equal(t, n, tree.Count(k), "multiplicity of %d", k)
		return true
	})
}

type entry struct {
	key  int
	name string
}

func TestRBTree_Destructor(t *testing.T) {
	calls := haxmap.New[int, int]()
	destroy := func(v entry) {
		n, _ := calls.Get(v.key)
		calls.Set(v.key, n+1)
	}
	tree, e := NewRB[entry, uint16](func(a, b entry) int { return cmp.Compare(a.key, b.key) }, destroy, 16)
	require.NoError(t, e)
	for k := range 64 {
		require.NoError(t, tree.Insert(entry{k, strconv.Itoa(k)}))
	}
	v, ok := tree.Find(entry{key: 10})
	require.True(t, ok)
	assert.Equal(t, "10", v.name)

	// duplicates don't replace the stored element.
	require.NoError(t, tree.Insert(entry{10, "ten"}))
	v, _ = tree.Find(entry{key: 10})
	assert.Equal(t, "10", v.name)

	require.NoError(t, tree.Delete(entry{key: 10}))
	require.Error(t, tree.Delete(entry{key: 10}))
	n, _ := calls.Get(10)
	assert.Equal(t, 1, n)

	assert.EqualValues(t, 8, tree.DeleteIf(func(v entry) bool { return v.key >= 56 }))
	require.NoError(t, tree.Free())
	assert.EqualValues(t, 64, calls.Len())
	for k := range 64 {
		n, _ := calls.Get(k)
		assert.Equal(t, 1, n, "destructor calls for %d", k)
	}
	assert.True(t, tree.Empty())
}

func TestRBTree_Map(t *testing.T) {
	tree := NewOrderedRB[int, uint32](0)
	for _, k := range []int{3, 1, 2, 2} {
		require.NoError(t, tree.Insert(k))
	}
	m, e := MapRB[int, string, uint32](tree, func(v int) string { return strings.Repeat("x", v) }, strings.Compare)
	require.NoError(t, e)
	assert.Equal(t, []string{"x", "xx", "xxx"}, inorder[string, uint32](m))
	assert.EqualValues(t, 2, m.Count("xx"))

	// a mapper that merges keys merges their multiplicities.
	m2, e := MapRB[int, int, uint32](tree, func(v int) int { return v / 2 }, cmp.Compare[int])
	require.NoError(t, e)
	assert.EqualValues(t, 2, m2.Size())
	assert.EqualValues(t, 3, m2.Count(1))

	_, e = MapRB[int, int, uint32](nil, func(v int) int { return v }, cmp.Compare[int])
	assert.ErrorIs(t, e, Go_DS.ErrNullInput)
	_, e = MapRB[int, int, uint32](tree, nil, cmp.Compare[int])
	assert.ErrorIs(t, e, Go_DS.ErrNullAction)
}

func TestRBTree_Corrupt(t *testing.T) {
	build := func() *RBTree[int, uint32] {
		tree := NewOrderedRB[int, uint32](0)
		for k := range 32 {
			require.NoError(t, tree.Insert(k))
		}
		require.False(t, tree.Corrupt())
		return tree
	}
	tree := build()
	tree.ifs[tree.root].red = true
	assert.ErrorContains(t, tree.Validate(), "root")

	tree = build()
	tree.ifs[0].red = true
	assert.ErrorContains(t, tree.Validate(), "sentinel")

	tree = build()
	l := tree.ifs[tree.root].l
	tree.ifs[l].red = !tree.ifs[l].red
	assert.True(t, tree.Corrupt())

	tree = build()
	tree.vs[tree.minimum(tree.root)] = 100
	assert.True(t, tree.Corrupt())

	tree = build()
	tree.ifs[tree.ifs[tree.root].r].p = tree.ifs[tree.root].l
	assert.ErrorContains(t, tree.Validate(), "parent")

	tree = build()
	tree.sz--
	assert.True(t, tree.Corrupt())
}
