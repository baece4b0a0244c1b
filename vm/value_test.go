// This file is part of loxvm - https://github.com/db47h/loxvm

package vm_test

import (
	"math"
	"testing"

	"github.com/db47h/loxvm/vm"
)

func TestEqual(t *testing.T) {
	s := vm.NewState()
	foo1 := s.CopyString([]byte("foo"))
	foo2 := s.CopyString([]byte("foo"))
	bar := s.CopyString([]byte("bar"))

	tests := []struct {
		name string
		a, b vm.Value
		want bool
	}{
		{"nil==nil", vm.Nil, vm.Nil, true},
		{"nil!=bool", vm.Nil, vm.Bool(false), false},
		{"bool==bool", vm.Bool(true), vm.Bool(true), true},
		{"bool!=bool", vm.Bool(true), vm.Bool(false), false},
		{"number==number", vm.Number(1), vm.Number(1), true},
		{"number!=number", vm.Number(1), vm.Number(2), false},
		{"nan!=nan", vm.Number(math.NaN()), vm.Number(math.NaN()), false},
		{"interned string==interned string", vm.ObjectRef(foo1), vm.ObjectRef(foo2), true},
		{"distinct strings differ", vm.ObjectRef(foo1), vm.ObjectRef(bar), false},
		{"object!=number", vm.ObjectRef(foo1), vm.Number(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vm.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValueArrayWrite(t *testing.T) {
	var a vm.ValueArray
	for i := 0; i < 20; i++ {
		idx := a.Write(vm.Number(float64(i)))
		if idx != i {
			t.Fatalf("Write returned index %d, want %d", idx, i)
		}
	}
	if a.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", a.Len())
	}
	for i := 0; i < 20; i++ {
		if got := a.Get(i).AsNumber(); got != float64(i) {
			t.Errorf("Get(%d) = %v, want %v", i, got, i)
		}
	}
}
