package treemap

import (
	"reflect"
	"testing"
)

func TestTreeMapPutAndGet(t *testing.T) {
	tm := NewTreeMap[string, int]()
	tm.Put("b", 2)
	tm.Put("a", 1)
	tm.Put("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := tm.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = (%d, %v); want (%d, true)", key, got, ok, want)
		}
	}
	if _, ok := tm.Get("d"); ok {
		t.Errorf("Get(%q) reported a missing key as present", "d")
	}
}

func TestTreeMapReplace(t *testing.T) {
	tm := NewTreeMap[string, int]()
	tm.Put("a", 1)
	tm.Put("a", 7)

	if got, _ := tm.Get("a"); got != 7 {
		t.Errorf("Get(%q) = %d; want 7", "a", got)
	}
	if tm.Size() != 1 {
		t.Errorf("Size() = %d; want 1", tm.Size())
	}
}

func TestTreeMapInOrder(t *testing.T) {
	tm := NewTreeMap[int, string]()
	for _, k := range []int{5, 1, 4, 2, 3, 9, 0, 8, 7, 6} {
		tm.Put(k, "")
	}

	var keys []int
	tm.InOrder(func(key int, _ string) {
		keys = append(keys, key)
	})
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("InOrder keys = %v; want %v", keys, want)
	}
}

func TestTreeMapIsEmpty(t *testing.T) {
	tm := NewTreeMap[int, int]()
	if !tm.IsEmpty() {
		t.Errorf("expected new map to be empty")
	}
	tm.Put(1, 1)
	if tm.IsEmpty() {
		t.Errorf("expected map not to be empty")
	}
}
