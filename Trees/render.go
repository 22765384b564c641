package Trees

import (
	"io"

	"github.com/cockroachdb/errors"
	Go_DS "github.com/mihai-negru/go-data-structures"
)

// Order of a depth first or breadth first traversal.
type Order byte

const (
	OrderIn Order = iota
	OrderPre
	OrderPost
	OrderLevel
)

func (o Order) String() string {
	switch o {
	case OrderIn:
		return "inorder"
	case OrderPre:
		return "preorder"
	case OrderPost:
		return "postorder"
	case OrderLevel:
		return "levelorder"
	}
	return "unknown"
}

// Render writes "[ a b c ]", each element formatted by format, in the order o. An empty tree is "(Nil)".
func (u *base[T, S]) Render(w io.Writer, o Order, format func(T) string) error {
	if w == nil {
		return errors.Wrap(Go_DS.ErrNullInput, "nil writer")
	}
	if format == nil {
		return Go_DS.ErrNullAction
	}
	if o > OrderLevel {
		return errors.Wrapf(Go_DS.ErrInvalidInput, "unknown order %d", o)
	}
	if u.root == 0 {
		_, e := io.WriteString(w, "(Nil)")
		return e
	}
	if _, e := io.WriteString(w, "["); e != nil {
		return e
	}
	var we error
	if e := u.Traverse(o, func(v *T) bool {
		_, we = io.WriteString(w, " "+format(*v))
		return we == nil
	}); e != nil {
		return e
	}
	if we != nil {
		return we
	}
	_, e := io.WriteString(w, " ]")
	return e
}
