package Queues

// Queue is a FIFO of T.
type Queue[T any] interface {
	Push(item T)
	// Pop the head. Returns Go_DS.ErrPopFromEmpty when there is nothing to pop.
	Pop() (T, error)
	Empty() bool
	// Size is the number of queued items.
	Size() uint
}

var _ Queue[int] = (*ArrayQueue[int])(nil)
