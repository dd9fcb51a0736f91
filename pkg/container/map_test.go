package container

import (
	"strconv"
	"testing"
)

func TestSliceMapOrder(t *testing.T) {
	sMap := NewSliceMap[string, int](4)
	keys := []string{"name", "length", "prototype", "breed", "bark"}
	for i, key := range keys {
		sMap.Store(key, i)
	}
	if sMap.Len() != len(keys) {
		t.Fatal("SliceMap length not equal")
	}
	for i, key := range sMap.Keys() {
		if key != keys[i] {
			t.Errorf("Keys order broken : index %d want %s have %s", i, keys[i], key)
		}
	}
	// 覆盖写不改变原有位置
	sMap.Store("length", 100)
	if sMap.Keys()[1] != "length" {
		t.Fatal("Store on exist key moved the slot")
	}
	if sMap.Load("length") != 100 {
		t.Fatal("Store on exist key lost the value")
	}
}

func TestSliceMapDelete(t *testing.T) {
	sMap := NewSliceMap[string, int](0)
	for i := 0; i < 100; i++ {
		sMap.Store(strconv.Itoa(i), i)
	}
	sMap.Delete("50")
	if _, ok := sMap.LoadOk("50"); ok {
		t.Fatal("Delete failed")
	}
	if sMap.Len() != 99 {
		t.Fatal("Delete length not equal")
	}
	var count int
	sMap.Range(func(k string, v int) bool {
		count++
		return true
	})
	if count != 99 {
		t.Fatal("Range count not equal")
	}
}

// 删除某个Key留下空槽后, 再写入另一个仍然存活的Key
// 必须原地更新而不是复用空槽造成重复
func TestSliceMapStoreAfterDelete(t *testing.T) {
	sMap := NewSliceMap[string, int](4)
	sMap.Store("a", 1)
	sMap.Store("b", 2)
	sMap.Delete("a")
	sMap.Store("b", 3)
	if sMap.Len() != 1 {
		t.Fatalf("Store on live key after delete broke length : have %d", sMap.Len())
	}
	keys := sMap.Keys()
	if len(keys) != 1 || keys[0] != "b" {
		t.Fatalf("Store on live key after delete duplicated the key : %v", keys)
	}
	if sMap.Load("b") != 3 {
		t.Fatal("Store on live key after delete lost the value")
	}
	sMap.Delete("b")
	if _, ok := sMap.LoadOk("b"); ok {
		t.Fatal("Delete after duplicate-prone store resurrected the key")
	}
	// 新Key依旧可以复用空槽
	sMap.Store("c", 4)
	if sMap.Len() != 1 || sMap.Keys()[0] != "c" {
		t.Fatal("free slot reuse for fresh key broken")
	}
}
