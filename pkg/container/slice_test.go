package container

import (
	"testing"
)

func TestSliceUnique(t *testing.T) {
	s := Slice[string]{"eat", "bark", "eat", "name", "bark", "eat"}
	s.Unique()
	want := []string{"eat", "bark", "name"}
	if s.Len() != len(want) {
		t.Fatal("Unique length not equal")
	}
	for i, v := range want {
		if s[i] != v {
			t.Errorf("Unique order broken : index %d want %s have %s", i, v, s[i])
		}
	}
}

func TestSliceAppend(t *testing.T) {
	var s Slice[int]
	s.Append([]int{1, 2, 3})
	s.AppendS(4, 5)
	if s.Len() != 5 {
		t.Fatal("Append length not equal")
	}
	if !s.Contains(4) || s.Contains(100) {
		t.Fatal("Contains result invalid")
	}
	s.Reset()
	if s.Len() != 0 {
		t.Fatal("Reset failed")
	}
}
