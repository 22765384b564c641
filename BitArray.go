package Go_DS

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Mark sets bit i and reports whether it was already up.
func (u BitArray) Mark(i int) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	had := *w&m != 0
	*w |= m
	return had
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}
