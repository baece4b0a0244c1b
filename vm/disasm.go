// This file is part of loxvm - https://github.com/db47h/loxvm
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"fmt"
	"io"

	"github.com/db47h/loxvm/internal/errio"
)

// Disassemble writes a human-readable listing of the whole chunk to w,
// labeled name. It mirrors the teacher's asm.Disassemble in shape (an
// offset-to-offset stepping function that prints a mnemonic plus operands),
// adapted to this chunk format's per-byte line table and constant pool.
func (c *Chunk) Disassemble(w io.Writer, name string) {
	ew := errio.NewErrWriter(w)
	fmt.Fprintf(ew, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = c.disassembleInstruction(ew, offset)
	}
}

// DisassembleInstruction writes a single instruction at offset to w and
// returns the offset of the next instruction.
func (c *Chunk) DisassembleInstruction(w io.Writer, offset int) int {
	return c.disassembleInstruction(errio.NewErrWriter(w), offset)
}

func (c *Chunk) disassembleInstruction(w *errio.ErrWriter, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		w.WriteString("   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := OpCode(c.Code[offset])
	switch op {
	case OpConstant, OpGetGlobal, OpSetGlobal, OpDefineGlobal:
		return c.constantInstruction(w, op, offset)
	default:
		if int(op) >= len(operandBytes) {
			fmt.Fprintf(w, "unknown opcode %d\n", op)
			return offset + 1
		}
		w.WriteString(op.String())
		w.WriteString("\n")
		return offset + 1
	}
}

func (c *Chunk) constantInstruction(w *errio.ErrWriter, op OpCode, offset int) int {
	idx := c.Code[offset+1]
	fmt.Fprintf(w, "%-16s %4d '%s'\n", op.String(), idx, c.Constants.Get(int(idx)))
	return offset + 2
}
