package Trees

import (
	"cmp"

	"github.com/cockroachdb/errors"
	Go_DS "github.com/mihai-negru/go-data-structures"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black ordered multiset. Inserting a key that is already present only increments its
// multiplicity; Size counts distinct keys.
// T is the type of values it will hold, S is the unsigned type used to index its nodes, so the tree holds at
// most max(S) keys.
// Every node is red or black, the root and the sentinel are black, a red node has black children, and every
// path from a node down to the sentinel has the same number of black nodes. So the height of the tree is at most
// 2*log2(n+1).
// RBTree shouldn't be created directly using struct literal.
type RBTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// NewRB returns an empty RBTree ordered by cmp. destroy, if not nil, is called once on every element leaving
// the tree. hint is the number of nodes to allocate up front.
func NewRB[T any, S constraints.Unsigned](cmp Go_DS.Comparator[T], destroy Go_DS.Destructor[T], hint S) (*RBTree[T, S], error) {
	b, e := makeBase(cmp, destroy, hint)
	if e != nil {
		return nil, e
	}
	return &RBTree[T, S]{b}, nil
}

// NewOrderedRB is NewRB for cmp.Ordered keys without destructor.
func NewOrderedRB[T cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	t, _ := NewRB[T, S](cmp.Compare[T], nil, hint)
	return t
}

// Empty is true for a nil tree.
func (u *RBTree[T, S]) Empty() bool {
	return u == nil || u.root == 0
}

// Size is the number of distinct keys. A nil tree reports max(S), the same as a full tree, since
// index 0 is the sentinel and S addresses at most max(S) nodes.
func (u *RBTree[T, S]) Size() S {
	if u == nil {
		return ^S(0)
	}
	return u.sz
}

// Free destroys every element and releases the arena, the tree stays usable as an empty tree.
func (u *RBTree[T, S]) Free() error {
	if u == nil {
		return Go_DS.ErrFreeNull
	}
	u.drop()
	return nil
}

// Insert v. If v is already present, its multiplicity is incremented and the tree isn't modified otherwise.
// Returns Go_DS.ErrAllocFailed when S can't index another node.
func (u *RBTree[T, S]) Insert(v T) error {
	found, p, side := u.descend(v)
	if found != 0 {
		u.ifs[found].n++
		return nil
	}
	z, e := u.alloc(v)
	if e != nil {
		return e
	}
	u.attach(z, p, side)
	u.ifs[z].red = true
	u.insertFixup(z)
	return nil
}

// insertFixup restores the red-child rule broken by the red node z. At most 2 rotations.
func (u *RBTree[T, S]) insertFixup(z S) {
	for u.ifs[u.ifs[z].p].red {
		p := u.ifs[z].p
		g := u.ifs[p].p
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.ifs[y].red { //red uncle
				u.ifs[p].red, u.ifs[y].red, u.ifs[g].red = false, false, true
				z = g
				continue
			}
			if z == u.ifs[p].r { //inner side
				z = p
				u.rotateLeft(z)
				p = u.ifs[z].p
			}
			u.ifs[p].red, u.ifs[g].red = false, true
			u.rotateRight(g)
		} else {
			if y := u.ifs[g].l; u.ifs[y].red {
				u.ifs[p].red, u.ifs[y].red, u.ifs[g].red = false, false, true
				z = g
				continue
			}
			if z == u.ifs[p].l {
				z = p
				u.rotateRight(z)
				p = u.ifs[z].p
			}
			u.ifs[p].red, u.ifs[g].red = false, true
			u.rotateLeft(g)
		}
	}
	u.ifs[u.root].red = false
}

// Delete v regardless of its multiplicity.
func (u *RBTree[T, S]) Delete(v T) error {
	if u.root == 0 {
		return Go_DS.ErrPopFromEmpty
	}
	z := u.search(v)
	if z == 0 {
		return errors.Wrapf(Go_DS.ErrInvalidInput, "delete %v", v)
	}
	u.remove(z)
	return nil
}

// DeleteOne decrements the multiplicity of v, deleting it when it reaches 0.
func (u *RBTree[T, S]) DeleteOne(v T) error {
	if u.root == 0 {
		return Go_DS.ErrPopFromEmpty
	}
	z := u.search(v)
	if z == 0 {
		return errors.Wrapf(Go_DS.ErrInvalidInput, "delete one %v", v)
	}
	if u.ifs[z].n--; u.ifs[z].n == 0 {
		u.remove(z)
	}
	return nil
}

// DeleteIf deletes every key satisfying f and returns how many were deleted. f mustn't modify the tree,
// a nil f deletes nothing.
func (u *RBTree[T, S]) DeleteIf(f Go_DS.Predicate[T]) S {
	if f == nil || u.root == 0 {
		return 0
	}
	is := u.collect(f)
	for _, i := range is {
		u.remove(i)
	}
	return S(len(is))
}

// remove node z from the tree. Nodes are relinked rather than having their elements moved, so other indexes
// stay valid.
func (u *RBTree[T, S]) remove(z S) {
	y, yRed := z, u.ifs[z].red
	var x S
	if u.ifs[z].l == 0 {
		x = u.ifs[z].r
		u.replace(u.ifs[z].p, z, x)
	} else if u.ifs[z].r == 0 {
		x = u.ifs[z].l
		u.replace(u.ifs[z].p, z, x)
	} else {
		// y, the successor of z, takes z's place and colour.
		y = u.minimum(u.ifs[z].r)
		yRed, x = u.ifs[y].red, u.ifs[y].r
		if u.ifs[y].p == z {
			u.ifs[x].p = y
		} else {
			u.replace(u.ifs[y].p, y, x)
			u.ifs[y].r = u.ifs[z].r
			u.ifs[u.ifs[y].r].p = y
		}
		u.replace(u.ifs[z].p, z, y)
		u.ifs[y].l = u.ifs[z].l
		u.ifs[u.ifs[y].l].p = y
		u.ifs[y].red = u.ifs[z].red
	}
	if !yRed {
		u.deleteFixup(x)
	}
	u.ifs[0].p = 0
	u.release(z)
}

// deleteFixup restores the black height around x, which carries an extra black. x may be the sentinel, whose
// parent was set by remove.
func (u *RBTree[T, S]) deleteFixup(x S) {
	for x != u.root && !u.ifs[x].red {
		p := u.ifs[x].p
		if x == u.ifs[p].l {
			w := u.ifs[p].r
			if u.ifs[w].red {
				u.ifs[w].red, u.ifs[p].red = false, true
				u.rotateLeft(p)
				w = u.ifs[p].r
			}
			if !u.ifs[u.ifs[w].l].red && !u.ifs[u.ifs[w].r].red {
				u.ifs[w].red = true
				x = p
				continue
			}
			if !u.ifs[u.ifs[w].r].red { //only the near nephew is red
				u.ifs[u.ifs[w].l].red, u.ifs[w].red = false, true
				u.rotateRight(w)
				w = u.ifs[p].r
			}
			u.ifs[w].red, u.ifs[p].red, u.ifs[u.ifs[w].r].red = u.ifs[p].red, false, false
			u.rotateLeft(p)
		} else {
			w := u.ifs[p].l
			if u.ifs[w].red {
				u.ifs[w].red, u.ifs[p].red = false, true
				u.rotateRight(p)
				w = u.ifs[p].l
			}
			if !u.ifs[u.ifs[w].l].red && !u.ifs[u.ifs[w].r].red {
				u.ifs[w].red = true
				x = p
				continue
			}
			if !u.ifs[u.ifs[w].l].red {
				u.ifs[u.ifs[w].r].red, u.ifs[w].red = false, true
				u.rotateLeft(w)
				w = u.ifs[p].l
			}
			u.ifs[w].red, u.ifs[p].red, u.ifs[u.ifs[w].l].red = u.ifs[p].red, false, false
			u.rotateRight(p)
		}
		x = u.root
	}
	u.ifs[x].red = false
}

// Validate returns the first broken invariant found, nil if there's none.
func (u *RBTree[T, S]) Validate() error {
	if e := u.validate(); e != nil {
		return e
	}
	if u.ifs[u.root].red {
		return errors.Newf("root %v is red", u.vs[u.root])
	}
	_, e := u.blackHeight(u.root)
	return e
}

// blackHeight of the subtree at i, counting the sentinel.
func (u *RBTree[T, S]) blackHeight(i S) (int, error) {
	if i == 0 {
		return 1, nil
	}
	cur := u.ifs[i]
	if cur.red && (u.ifs[cur.l].red || u.ifs[cur.r].red) {
		return 0, errors.Newf("red node %v has a red child", u.vs[i])
	}
	lh, e := u.blackHeight(cur.l)
	if e != nil {
		return 0, e
	}
	rh, e := u.blackHeight(cur.r)
	if e != nil {
		return 0, e
	}
	if lh != rh {
		return 0, errors.Newf("black heights differ below %v: %d and %d", u.vs[i], lh, rh)
	}
	if !cur.red {
		lh++
	}
	return lh, nil
}

// Corrupt returns whether the tree has corrupt structures.
func (u *RBTree[T, S]) Corrupt() bool {
	return u.Validate() != nil
}

// MapRB builds a tree holding f of every element of t, with the same multiplicities, ordered by cmp.
func MapRB[T, U any, S constraints.Unsigned](t *RBTree[T, S], f Go_DS.Mapper[T, U], cmp Go_DS.Comparator[U]) (*RBTree[U, S], error) {
	if t == nil {
		return nil, errors.Wrap(Go_DS.ErrNullInput, "nil tree")
	}
	if f == nil {
		return nil, Go_DS.ErrNullAction
	}
	m, e := NewRB[U, S](cmp, nil, t.sz)
	if e != nil {
		return nil, e
	}
	for curI := t.minimum(t.root); curI != 0; curI = t.next(curI) {
		mv := f(t.vs[curI])
		for range t.ifs[curI].n {
			if e = m.Insert(mv); e != nil {
				return nil, e
			}
		}
	}
	return m, nil
}
