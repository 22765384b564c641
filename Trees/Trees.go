package Trees

import (
	"io"

	Go_DS "github.com/mihai-negru/go-data-structures"
	"golang.org/x/exp/constraints"
)

// Tree represents an ordered multiset implemented as a binary search tree.
// Receivers returning an error leave the tree unchanged when the error isn't nil, and the
// first return value is then the zero value of T. Errors may be wrapped, compare them using
// errors.Is against the Go_DS sentinels.
// Comparator, Destructor and Visitor functions mustn't call back into the same tree. The tree
// isn't safe for concurrent use.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree. A key that's already present has its multiplicity incremented.
	Insert(v T) error
	//Delete v from the Tree regardless of its multiplicity.
	//Go_DS.ErrPopFromEmpty on an empty tree, Go_DS.ErrInvalidInput if v is absent.
	Delete(v T) error
	//DeleteOne decrements the multiplicity of v, deleting it at 0.
	DeleteOne(v T) error
	//DeleteIf every key satisfying f. Returns the number of keys deleted, a nil f deletes nothing.
	DeleteIf(f Go_DS.Predicate[T]) S
	//Find the stored element equal to v.
	Find(v T) (T, bool)
	Has(v T) bool
	//Count is the multiplicity of v, 0 if absent.
	Count(v T) uint
	//Root element. Go_DS.ErrEmpty on an empty tree.
	Root() (T, error)
	//Min element of the subtree at sub. Go_DS.ErrInvalidInput if sub is absent.
	Min(sub T) (T, error)
	//Max element of the subtree at sub. Go_DS.ErrInvalidInput if sub is absent.
	Max(sub T) (T, error)
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v. v must be in the tree,
	//Go_DS.ErrNotFound if v is the minimum, Go_DS.ErrEmpty on an empty tree.
	Predecessor(v T) (T, error)
	//Successor returns the smallest element greater than v. v must be in the tree,
	//Go_DS.ErrNotFound if v is the maximum, Go_DS.ErrEmpty on an empty tree.
	Successor(v T) (T, error)
	//LCA is the lowest common ancestor of a and b, both must be in the tree.
	//Go_DS.ErrEmpty on an empty tree.
	LCA(a, b T) (T, error)
	//Height in nodes, 0 when empty.
	Height() int
	Empty() bool
	//Size of the tree, the number of distinct keys. A nil tree reports max(S), which is also
	//the size of a tree whose arena is full, so check Empty or nil before relying on it.
	Size() S
	//InOrder visits the elements in ascending order. The tree
	//must not be modified during the traversal.
	InOrder(f Go_DS.Visitor[T]) error
	PreOrder(f Go_DS.Visitor[T]) error
	PostOrder(f Go_DS.Visitor[T]) error
	LevelOrder(f Go_DS.Visitor[T]) error
	Traverse(o Order, f Go_DS.Visitor[T]) error
	//Render the traversal in order o to w.
	Render(w io.Writer, o Order, format func(T) string) error
	//Validate returns the first broken structural invariant, if any.
	Validate() error
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	//Clear every element, keeping the allocated capacity.
	Clear()
	//Free every element and the allocated capacity.
	Free() error
}

var (
	_ Tree[int, uint] = (*RBTree[int, uint])(nil)
	_ Tree[int, uint] = (*BSTree[int, uint])(nil)
)
