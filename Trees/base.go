package Trees

import (
	"github.com/cockroachdb/errors"
	Go_DS "github.com/mihai-negru/go-data-structures"
	"github.com/mihai-negru/go-data-structures/Queues"
	"golang.org/x/exp/constraints"
)

// A node in the tree, addressed by its index in base.ifs.
// The zero value is the sentinel: black, without children, parent 0.
type info[S constraints.Unsigned] struct {
	l, r, p S    // for a free node, l is the next free index.
	n       uint // multiplicity of the key
	red     bool
}

// base is the node arena shared by RBTree and BSTree. ifs[0] is the sentinel standing for every absent
// child and for the parent of the root; vs[i] is the element of ifs[i] and vs[0] is never read.
type base[T any, S constraints.Unsigned] struct {
	ifs            []info[S]
	vs             []T
	root, free, sz S // free is the beginning of the linked list that contains all the free indexes.
	cmp            Go_DS.Comparator[T]
	destroy        Go_DS.Destructor[T]
}

func makeBase[T any, S constraints.Unsigned](cmp Go_DS.Comparator[T], destroy Go_DS.Destructor[T], hint S) (base[T, S], error) {
	if cmp == nil {
		return base[T, S]{}, errors.Wrap(Go_DS.ErrNullInput, "nil comparator")
	}
	ifs := make([]info[S], 1, uint(hint)+1)
	vs := make([]T, 1, uint(hint)+1)
	return base[T, S]{ifs: ifs, vs: vs, cmp: cmp, destroy: destroy}, nil
}

// compare v against the element at index i, by sign only.
func (u *base[T, S]) compare(v T, i S) int {
	return Go_DS.Sign(u.cmp(v, u.vs[i]))
}

// search the index holding v, 0 if absent.
func (u *base[T, S]) search(v T) S {
	for cur := u.root; cur != 0; {
		if c := u.compare(v, cur); c < 0 {
			cur = u.ifs[cur].l
		} else if c > 0 {
			cur = u.ifs[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// descend looks for v from the root. If found, returns its index; otherwise returns 0, the parent the new node
// would hang from, and the side (-1 left, 1 right).
func (u *base[T, S]) descend(v T) (found, p S, side int) {
	for cur := u.root; cur != 0; {
		p = cur
		if side = u.compare(v, cur); side < 0 {
			cur = u.ifs[cur].l
		} else if side > 0 {
			cur = u.ifs[cur].r
		} else {
			return cur, p, 0
		}
	}
	return 0, p, side
}

// alloc a node holding v with multiplicity 1. Reuses free indexes before growing the arena. Fails when S can't
// address another node, in which case nothing is modified.
func (u *base[T, S]) alloc(v T) (S, error) {
	if i := u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i], u.vs[i] = info[S]{n: 1}, v
		return i, nil
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		return 0, errors.Wrapf(Go_DS.ErrAllocFailed, "index type exhausted at %d nodes", len(u.ifs)-1)
	}
	u.ifs, u.vs = append(u.ifs, info[S]{n: 1}), append(u.vs, v)
	return i, nil
}

// attach the new node i under p on the given side.
func (u *base[T, S]) attach(i, p S, side int) {
	u.ifs[i].p = p
	if p == 0 {
		u.root = i
	} else if side < 0 {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	u.sz++
}

// release index i once: destroys its element and adds it to the free list.
func (u *base[T, S]) release(i S) {
	if u.destroy != nil {
		u.destroy(u.vs[i])
	}
	u.vs[i] = *new(T)
	u.ifs[i] = info[S]{l: u.free}
	u.free = i
	u.sz--
}

// replace the child slot of p that holds old with nw, also the root when p is the sentinel. nw's parent is
// always updated, the sentinel's included.
func (u *base[T, S]) replace(p, old, nw S) {
	if p == 0 {
		u.root = nw
	} else if u.ifs[p].l == old {
		u.ifs[p].l = nw
	} else {
		u.ifs[p].r = nw
	}
	u.ifs[nw].p = p
}

func (u *base[T, S]) rotateLeft(x S) {
	y := u.ifs[x].r
	if u.ifs[x].r = u.ifs[y].l; u.ifs[y].l != 0 {
		u.ifs[u.ifs[y].l].p = x
	}
	u.replace(u.ifs[x].p, x, y)
	u.ifs[y].l, u.ifs[x].p = x, y
}

func (u *base[T, S]) rotateRight(x S) {
	y := u.ifs[x].l
	if u.ifs[x].l = u.ifs[y].r; u.ifs[y].r != 0 {
		u.ifs[u.ifs[y].r].p = x
	}
	u.replace(u.ifs[x].p, x, y)
	u.ifs[y].r, u.ifs[x].p = x, y
}

func (u *base[T, S]) minimum(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[T, S]) maximum(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next index in in-order, 0 if i is the last one.
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.minimum(r)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].r {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev index in in-order, 0 if i is the first one.
func (u *base[T, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.maximum(l)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].l {
		i, p = p, u.ifs[p].p
	}
	return p
}

// firstPost is the first index in post-order of the subtree at i.
func (u *base[T, S]) firstPost(i S) S {
	for {
		if l := u.ifs[i].l; l != 0 {
			i = l
		} else if r := u.ifs[i].r; r != 0 {
			i = r
		} else {
			return i
		}
	}
}

// nextPost index in post-order, 0 after the root.
func (u *base[T, S]) nextPost(i S) S {
	p := u.ifs[i].p
	if p != 0 && i == u.ifs[p].l && u.ifs[p].r != 0 {
		return u.firstPost(u.ifs[p].r)
	}
	return p
}

func (u *base[T, S]) Root() (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	return u.vs[u.root], nil
}

// Find the stored element equal to v. The stored element may carry fields that the comparator ignores.
func (u *base[T, S]) Find(v T) (T, bool) {
	if i := u.search(v); i != 0 {
		return u.vs[i], true
	}
	return *new(T), false
}

func (u *base[T, S]) Has(v T) bool {
	return u.search(v) != 0
}

// Count how many times v was inserted since it was last absent.
func (u *base[T, S]) Count(v T) uint {
	return u.ifs[u.search(v)].n
}

// Min of the subtree rooted at the node holding sub.
func (u *base[T, S]) Min(sub T) (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	i := u.search(sub)
	if i == 0 {
		return *new(T), errors.Wrapf(Go_DS.ErrInvalidInput, "min below %v", sub)
	}
	return u.vs[u.minimum(i)], nil
}

// Max of the subtree rooted at the node holding sub.
func (u *base[T, S]) Max(sub T) (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	i := u.search(sub)
	if i == 0 {
		return *new(T), errors.Wrapf(Go_DS.ErrInvalidInput, "max below %v", sub)
	}
	return u.vs[u.maximum(i)], nil
}

func (u *base[T, S]) Minimum() (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	return u.vs[u.minimum(u.root)], nil
}

func (u *base[T, S]) Maximum() (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	return u.vs[u.maximum(u.root)], nil
}

// Predecessor returns the greatest element less than v. v must be in the tree, Go_DS.ErrEmpty when the tree is empty.
func (u *base[T, S]) Predecessor(v T) (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	i := u.search(v)
	if i == 0 {
		return *new(T), errors.Wrapf(Go_DS.ErrInvalidInput, "predecessor of %v", v)
	}
	if p := u.prev(i); p != 0 {
		return u.vs[p], nil
	}
	return *new(T), Go_DS.ErrNotFound
}

// Successor returns the smallest element greater than v. v must be in the tree, Go_DS.ErrEmpty when the tree is empty.
func (u *base[T, S]) Successor(v T) (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	i := u.search(v)
	if i == 0 {
		return *new(T), errors.Wrapf(Go_DS.ErrInvalidInput, "successor of %v", v)
	}
	if n := u.next(i); n != 0 {
		return u.vs[n], nil
	}
	return *new(T), Go_DS.ErrNotFound
}

// LCA is the deepest element whose subtree holds both a and b. Both must be in the tree.
func (u *base[T, S]) LCA(a, b T) (T, error) {
	if u.root == 0 {
		return *new(T), Go_DS.ErrEmpty
	}
	if u.search(a) == 0 || u.search(b) == 0 {
		return *new(T), errors.Wrapf(Go_DS.ErrInvalidInput, "lca of %v and %v", a, b)
	}
	cur := u.root
	for {
		ca, cb := u.compare(a, cur), u.compare(b, cur)
		if ca < 0 && cb < 0 {
			cur = u.ifs[cur].l
		} else if ca > 0 && cb > 0 {
			cur = u.ifs[cur].r
		} else {
			return u.vs[cur], nil
		}
	}
}

// Height in nodes of the longest root to leaf path, 0 when empty.
func (u *base[T, S]) Height() (h int) {
	if u.root == 0 {
		return 0
	}
	q := Queues.NewArrayQueue[S](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); h++ {
		for range q.Size() {
			curI, _ := q.Pop()
			if l := u.ifs[curI].l; l != 0 {
				q.Push(l)
			}
			if r := u.ifs[curI].r; r != 0 {
				q.Push(r)
			}
		}
	}
	return
}

// InOrder traversal of the tree, ascending. Stops early when f returns false.
func (u *base[T, S]) InOrder(f Go_DS.Visitor[T]) error {
	if f == nil {
		return Go_DS.ErrNullAction
	}
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&u.vs[curI]) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return nil
}

// PreOrder traversal: node, left subtree, right subtree.
func (u *base[T, S]) PreOrder(f Go_DS.Visitor[T]) error {
	if f == nil {
		return Go_DS.ErrNullAction
	}
	if u.root == 0 {
		return nil
	}
	for st := []S{u.root}; len(st) > 0; {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&u.vs[curI]) {
			break
		}
		if r := u.ifs[curI].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[curI].l; l != 0 {
			st = append(st, l)
		}
	}
	return nil
}

// PostOrder traversal: left subtree, right subtree, node. Walks the parent links, so it needs no extra memory.
func (u *base[T, S]) PostOrder(f Go_DS.Visitor[T]) error {
	if f == nil {
		return Go_DS.ErrNullAction
	}
	if u.root == 0 {
		return nil
	}
	for curI := u.firstPost(u.root); curI != 0 && f(&u.vs[curI]); curI = u.nextPost(curI) {
	}
	return nil
}

// LevelOrder traversal, breadth first from the root.
func (u *base[T, S]) LevelOrder(f Go_DS.Visitor[T]) error {
	if f == nil {
		return Go_DS.ErrNullAction
	}
	if u.root == 0 {
		return nil
	}
	q := Queues.NewArrayQueue[S](uint(u.sz/2 + 1))
	for q.Push(u.root); !q.Empty(); {
		curI, _ := q.Pop()
		if !f(&u.vs[curI]) {
			break
		}
		if l := u.ifs[curI].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[curI].r; r != 0 {
			q.Push(r)
		}
	}
	return nil
}

// Traverse in the given order.
func (u *base[T, S]) Traverse(o Order, f Go_DS.Visitor[T]) error {
	switch o {
	case OrderIn:
		return u.InOrder(f)
	case OrderPre:
		return u.PreOrder(f)
	case OrderPost:
		return u.PostOrder(f)
	case OrderLevel:
		return u.LevelOrder(f)
	}
	return errors.Wrapf(Go_DS.ErrInvalidInput, "unknown order %d", o)
}

// Clear the tree, destroying every element in post-order. Keeps the arena's capacity.
func (u *base[T, S]) Clear() {
	if u.root != 0 && u.destroy != nil {
		for curI := u.firstPost(u.root); curI != 0; curI = u.nextPost(curI) {
			u.destroy(u.vs[curI])
		}
	}
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.ifs[0] = info[S]{}
	u.root, u.free, u.sz = 0, 0, 0
}

// drop clears the tree and the arena.
func (u *base[T, S]) drop() {
	u.Clear()
	u.ifs, u.vs = make([]info[S], 1), make([]T, 1)
}

// collect the indexes whose element satisfies f, in in-order.
func (u *base[T, S]) collect(f Go_DS.Predicate[T]) (is []S) {
	for curI := u.minimum(u.root); curI != 0; curI = u.next(curI) {
		if f(u.vs[curI]) {
			is = append(is, curI)
		}
	}
	return
}

// validate the properties shared by every binary search tree: the sentinel, ordering, parent links, and size.
func (u *base[T, S]) validate() error {
	if z := u.ifs[0]; z.l != 0 || z.r != 0 || z.p != 0 || z.red {
		return errors.Newf("sentinel is modified: %+v", z)
	}
	if u.root == 0 {
		if u.sz != 0 {
			return errors.Newf("empty tree has size %d", u.sz)
		}
		return nil
	}
	if u.ifs[u.root].p != 0 {
		return errors.Newf("root %v has a parent", u.vs[u.root])
	}
	seen := Go_DS.NewBitArray(len(u.ifs))
	var count S
	for st := []S{u.root}; len(st) > 0; {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if seen.Mark(int(curI)) {
			return errors.Newf("node %v is reachable twice", u.vs[curI])
		}
		if count++; count > u.sz {
			return errors.Newf("more than %d nodes are reachable", u.sz)
		}
		cur := u.ifs[curI]
		if cur.n == 0 {
			return errors.Newf("node %v has multiplicity 0", u.vs[curI])
		}
		for _, c := range [2]S{cur.l, cur.r} {
			if c == 0 {
				continue
			}
			if u.ifs[c].p != curI {
				return errors.Newf("child %v of %v has the wrong parent", u.vs[c], u.vs[curI])
			}
			st = append(st, c)
		}
		if cur.l != 0 && u.compare(u.vs[cur.l], curI) >= 0 {
			return errors.Newf("left child %v isn't less than %v", u.vs[cur.l], u.vs[curI])
		}
		if cur.r != 0 && u.compare(u.vs[cur.r], curI) <= 0 {
			return errors.Newf("right child %v isn't greater than %v", u.vs[cur.r], u.vs[curI])
		}
	}
	if count != u.sz {
		return errors.Newf("%d nodes are reachable, size is %d", count, u.sz)
	}
	last := S(0)
	for curI := u.minimum(u.root); curI != 0; curI = u.next(curI) {
		if last != 0 && u.compare(u.vs[last], curI) >= 0 {
			return errors.Newf("in-order isn't increasing at %v, %v", u.vs[last], u.vs[curI])
		}
		last = curI
	}
	return nil
}
