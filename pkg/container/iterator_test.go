package container

import "testing"

func TestIterator(t *testing.T) {
	elems := []int{10, 18, 20, 40, 58, 68}
	iter := NewIterator(len(elems), func(current int) int {
		return elems[current]
	}, nil)
	for _, v := range elems {
		if iter.Take() != v {
			t.Error("Iterator take not equal")
		}
	}
	if iter.Next() != false {
		t.Error("Iterator no end")
	}
	iter.Reset()
	if !iter.Next() {
		t.Error("Iterator reset failed")
	}
	if iter.Tail() != len(elems) {
		t.Error("Iterator tail not equal")
	}
}
