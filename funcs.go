package Go_DS

// Comparator orders two values: negative if a<b, zero if a==b, positive if a>b.
// Only the sign of the result is used.
type Comparator[T any] func(a, b T) int

// Destructor is invoked once on every element leaving a container.
type Destructor[T any] func(v T)

type Predicate[T any] func(v T) bool

type Mapper[T, U any] func(v T) U

// Visitor receives a pointer to an element stored in a container. The pointer
// is only valid during the call and mustn't be written through. Returning false
// stops the traversal.
type Visitor[T any] func(v *T) bool

// Sign canonicalises a comparator result to -1, 0 or 1.
func Sign(c int) int {
	if c < 0 {
		return -1
	} else if c > 0 {
		return 1
	}
	return 0
}
