// This file is part of loxvm - https://github.com/db47h/loxvm

package vm_test

import (
	"testing"

	"github.com/db47h/loxvm/vm"
)

func TestInternTableHintPreSizes(t *testing.T) {
	s := vm.NewState(vm.InternTableHint(64))
	if s.Strings.Capacity() < 64 {
		t.Fatalf("Capacity() = %d, want >= 64", s.Strings.Capacity())
	}
	if s.Strings.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 on a fresh table", s.Strings.Count())
	}
}

func TestInternTableHintIgnoresNonPositive(t *testing.T) {
	s := vm.NewState(vm.InternTableHint(0))
	if s.Strings.Capacity() != 0 {
		t.Fatalf("Capacity() = %d, want 0", s.Strings.Capacity())
	}
}
