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

// MaxConstants is the largest number of constants a single Chunk can hold:
// constant indices are encoded as a single byte operand (spec §3).
const MaxConstants = 1 << 8

// Chunk is a self-contained bytecode unit: an instruction stream, a
// parallel per-byte source-line table, and a constant pool (spec §3).
//
// Invariant: len(Code) == len(Lines); Lines[i] is the 1-based source line
// that produced Code[i].
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants ValueArray
}

// NewChunk returns an empty Chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// growBytes grows a []byte using the same amortized growth rule as
// ValueArray (spec §4.1: below 8 jumps to 8, otherwise doubles).
func growBytes(b []byte) []byte {
	if len(b) == cap(b) {
		newCap := valueArrayGrow(cap(b))
		grown := make([]byte, len(b), newCap)
		copy(grown, b)
		b = grown
	}
	return b
}

func growInts(n []int) []int {
	if len(n) == cap(n) {
		newCap := valueArrayGrow(cap(n))
		grown := make([]int, len(n), newCap)
		copy(grown, n)
		n = grown
	}
	return n
}

// Write appends b to the instruction stream with its source line, keeping
// Code and Lines in lockstep.
func (c *Chunk) Write(b byte, line int) {
	c.Code = growBytes(c.Code)
	c.Code = append(c.Code, b)
	c.Lines = growInts(c.Lines)
	c.Lines = append(c.Lines, line)
}

// WriteOp is a convenience wrapper over Write for opcodes.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant appends v to the constant pool and returns its index. It does
// not check MaxConstants; callers that need the compile-error behavior on
// overflow (spec §4.5 "too many constants in one chunk") use the parser's
// makeConstant in the compiler package, which wraps this and reports through the
// parser's error mechanism instead of panicking.
func (c *Chunk) AddConstant(v Value) int {
	return c.Constants.Write(v)
}

// Len returns the number of bytes in the instruction stream.
func (c *Chunk) Len() int { return len(c.Code) }

// Line returns the source line that produced the byte at offset.
func (c *Chunk) Line(offset int) int { return c.Lines[offset] }
