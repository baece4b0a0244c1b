// This file is part of loxvm - https://github.com/db47h/loxvm

package vm_test

import (
	"os"

	"github.com/db47h/loxvm/vm"
)

// Shows building a tiny chunk by hand and disassembling it.
func ExampleChunk_Disassemble() {
	s := vm.NewState()
	c := vm.NewChunk()

	idx := c.AddConstant(vm.Number(1))
	c.WriteOp(vm.OpConstant, 1)
	c.Write(byte(idx), 1)

	name := s.CopyString([]byte("x"))
	nameIdx := c.AddConstant(vm.ObjectRef(name))
	c.WriteOp(vm.OpDefineGlobal, 1)
	c.Write(byte(nameIdx), 1)
	c.WriteOp(vm.OpReturn, 1)

	c.Disassemble(os.Stdout, "example")
	// Output:
	// == example ==
	// 0000    1 OP_CONSTANT         0 '1'
	// 0002    | OP_DEFINE_GLOBAL    1 'x'
	// 0004    | OP_RETURN
}
