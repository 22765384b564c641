package Queues

import Go_DS "github.com/mihai-negru/go-data-structures"

const minCap = 4

// ArrayQueue is a growable circular buffer. The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head uint
	buf      []T
}

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{buf: make([]T, initCap)}
}

func (q *ArrayQueue[T]) Empty() bool {
	return q.sz == 0
}

func (q *ArrayQueue[T]) Size() uint {
	return q.sz
}

// grow moves the content to the front of a buffer of n>sz slots.
func (q *ArrayQueue[T]) grow(n uint) {
	nb := make([]T, n)
	k := copy(nb, q.buf[q.head:])
	if k < int(q.sz) {
		copy(nb[k:], q.buf[:q.sz-uint(k)])
	}
	q.buf, q.head = nb, 0
}

func (q *ArrayQueue[T]) Push(item T) {
	if q.sz == uint(len(q.buf)) {
		q.grow(max(q.sz*3/2, q.sz+minCap))
	}
	q.buf[(q.head+q.sz)%uint(len(q.buf))] = item
	q.sz++
}

func (q *ArrayQueue[T]) Pop() (T, error) {
	if q.sz == 0 {
		return *new(T), Go_DS.ErrPopFromEmpty
	}
	t := q.buf[q.head]
	q.buf[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.buf))
	q.sz--
	return t, nil
}
