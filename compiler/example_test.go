// This file is part of loxvm - https://github.com/db47h/loxvm

package compiler_test

import (
	"fmt"
	"os"

	"github.com/db47h/loxvm/compiler"
	"github.com/db47h/loxvm/vm"
)

// Shows compiling a tiny program and disassembling the resulting chunk.
func ExampleCompile() {
	src := `var greeting = "hi"; print greeting;`

	state := vm.NewState()
	chunk, err := compiler.Compile(src, "example", state)
	if err != nil {
		fmt.Println(err)
		return
	}

	chunk.Disassemble(os.Stdout, "example")
	// Output:
	// == example ==
	// 0000    1 OP_CONSTANT         1 'hi'
	// 0002    | OP_DEFINE_GLOBAL    0 'greeting'
	// 0004    | OP_GET_GLOBAL       2 'greeting'
	// 0006    | OP_PRINT
	// 0007    | OP_RETURN
}

// Shows a syntax error surfacing through the returned ErrList.
func ExampleCompile_error() {
	_, err := compiler.Compile("a * b = c;", "example", vm.NewState())
	fmt.Println(err)
	// Output:
	// [line 1] error at '=': invalid assignment target
}
