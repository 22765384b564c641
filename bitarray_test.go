package Go_DS

import "testing"

func TestBitArray(t *testing.T) {
	b := NewBitArray(130)
	if b.Len() < 130 {
		t.Fatalf("bit array length is %d, want at least %d", b.Len(), 130)
	}
	for _, i := range []int{0, 63, 64, 129} {
		if b.Mark(i) {
			t.Errorf("bit %d was up before marking", i)
		}
		if !b.Mark(i) {
			t.Errorf("bit %d is down after marking", i)
		}
	}
	if b.Count() != 4 {
		t.Errorf("count is %d, want %d", b.Count(), 4)
	}
	b.Down(63)
	if b.Get(63) || !b.Get(64) {
		t.Error("wrong bit after down")
	}
	b.Up(1)
	if !b.Get(1) {
		t.Error("wrong bit after up")
	}
}

func TestSign(t *testing.T) {
	for _, c := range [][2]int{{-7, -1}, {0, 0}, {42, 1}} {
		if Sign(c[0]) != c[1] {
			t.Errorf("sign of %d is %d, want %d", c[0], Sign(c[0]), c[1])
		}
	}
}
