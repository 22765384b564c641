package Trees

import (
	"cmp"

	"github.com/cockroachdb/errors"
	Go_DS "github.com/mihai-negru/go-data-structures"
	"golang.org/x/exp/constraints"
)

// BSTree is the unbalanced variant of RBTree: same multiset semantics and queries, but no rebalancing, so its
// height depends on the insertion order and is n in the worst case.
type BSTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

func NewBST[T any, S constraints.Unsigned](cmp Go_DS.Comparator[T], destroy Go_DS.Destructor[T], hint S) (*BSTree[T, S], error) {
	b, e := makeBase(cmp, destroy, hint)
	if e != nil {
		return nil, e
	}
	return &BSTree[T, S]{b}, nil
}

func NewOrderedBST[T cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[T, S] {
	t, _ := NewBST[T, S](cmp.Compare[T], nil, hint)
	return t
}

func (u *BSTree[T, S]) Empty() bool {
	return u == nil || u.root == 0
}

// Size is the number of distinct keys, max(S) for a nil tree as well as for a full one.
func (u *BSTree[T, S]) Size() S {
	if u == nil {
		return ^S(0)
	}
	return u.sz
}

func (u *BSTree[T, S]) Free() error {
	if u == nil {
		return Go_DS.ErrFreeNull
	}
	u.drop()
	return nil
}

func (u *BSTree[T, S]) Insert(v T) error {
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
	return nil
}

func (u *BSTree[T, S]) Delete(v T) error {
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

func (u *BSTree[T, S]) DeleteOne(v T) error {
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

func (u *BSTree[T, S]) DeleteIf(f Go_DS.Predicate[T]) S {
	if f == nil || u.root == 0 {
		return 0
	}
	is := u.collect(f)
	for _, i := range is {
		u.remove(i)
	}
	return S(len(is))
}

func (u *BSTree[T, S]) remove(z S) {
	if cur := u.ifs[z]; cur.l == 0 {
		u.replace(cur.p, z, cur.r)
	} else if cur.r == 0 {
		u.replace(cur.p, z, cur.l)
	} else {
		y := u.minimum(cur.r)
		if u.ifs[y].p != z {
			u.replace(u.ifs[y].p, y, u.ifs[y].r)
			u.ifs[y].r = cur.r
			u.ifs[cur.r].p = y
		}
		u.replace(cur.p, z, y)
		u.ifs[y].l = cur.l
		u.ifs[cur.l].p = y
	}
	u.ifs[0].p = 0
	u.release(z)
}

func (u *BSTree[T, S]) Validate() error {
	return u.validate()
}

func (u *BSTree[T, S]) Corrupt() bool {
	return u.validate() != nil
}
