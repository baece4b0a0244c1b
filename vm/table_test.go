// This file is part of loxvm - https://github.com/db47h/loxvm

package vm_test

import (
	"fmt"
	"testing"

	"github.com/db47h/loxvm/vm"
)

func TestStringTableSetGetDelete(t *testing.T) {
	s := vm.NewState()
	// CopyString interns foo into s.Strings, so exercise a separate table
	// in which foo really is a fresh key.
	tbl := vm.NewStringTable()
	foo := s.CopyString([]byte("foo"))

	if isNew := tbl.Set(foo, vm.Number(1)); !isNew {
		t.Fatalf("Set on a fresh key reported isNew=false")
	}
	if got, ok := tbl.Get(foo); !ok || got.AsNumber() != 1 {
		t.Fatalf("Get(foo) = %v, %v, want 1, true", got, ok)
	}
	if isNew := tbl.Set(foo, vm.Number(2)); isNew {
		t.Fatalf("Set on an existing key reported isNew=true")
	}
	if got, _ := tbl.Get(foo); got.AsNumber() != 2 {
		t.Fatalf("Get(foo) after update = %v, want 2", got)
	}
	if !tbl.Delete(foo) {
		t.Fatalf("Delete(foo) = false, want true")
	}
	if _, ok := tbl.Get(foo); ok {
		t.Fatalf("Get(foo) after delete reported present")
	}
	if tbl.Delete(foo) {
		t.Fatalf("Delete(foo) a second time reported true")
	}
}

// TestTombstoneReclamation checks that re-inserting a deleted key reuses
// its slot without growing Count beyond the live entry count (spec §8).
func TestTombstoneReclamation(t *testing.T) {
	s := vm.NewState()
	tbl := s.Strings
	k := s.CopyString([]byte("k"))

	tbl.Set(k, vm.Nil)
	if tbl.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tbl.Count())
	}
	tbl.Delete(k)
	capBefore := tbl.Capacity()
	tbl.Set(k, vm.Nil)
	if tbl.Count() != 1 {
		t.Fatalf("Count() after reinsert = %d, want 1", tbl.Count())
	}
	if tbl.Capacity() != capBefore {
		t.Fatalf("Capacity() changed across tombstone reuse: %d != %d", tbl.Capacity(), capBefore)
	}
}

// TestTableInvariant inserts 100 keys, deletes every other one, then
// reinserts them, checking the scenario from spec §8 end-to-end item 6.
func TestTableInvariant(t *testing.T) {
	s := vm.NewState()
	tbl := s.Strings
	keys := make([]*vm.Obj, 100)
	for i := range keys {
		keys[i] = s.CopyString([]byte(fmt.Sprintf("key-%03d", i)))
		tbl.Set(keys[i], vm.Nil)
	}
	if tbl.Count() != 100 {
		t.Fatalf("Count() after insert = %d, want 100", tbl.Count())
	}

	for i := 0; i < len(keys); i += 2 {
		if !tbl.Delete(keys[i]) {
			t.Fatalf("Delete(keys[%d]) = false", i)
		}
	}
	if want := 50; tbl.Count() != want {
		t.Fatalf("Count() after deleting every other key = %d, want %d", tbl.Count(), want)
	}

	for i := 0; i < len(keys); i += 2 {
		tbl.Set(keys[i], vm.Nil)
	}
	if tbl.Count() != 100 {
		t.Fatalf("Count() after reinsert = %d, want 100", tbl.Count())
	}
	maxCount := float64(tbl.Capacity()) * 0.75
	if float64(tbl.Count()) > maxCount {
		t.Fatalf("Count() %d exceeds capacity*0.75 = %v", tbl.Count(), maxCount)
	}

	for i, k := range keys {
		bs := []byte(fmt.Sprintf("key-%03d", i))
		if found := s.Strings.FindString(bs, k.Hash); found != k {
			t.Errorf("FindString(%q) did not return the original object", bs)
		}
	}
}
