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

// Package vm implements the data substrate of the loxvm core: tagged
// Values, the Chunk bytecode format, heap string objects and the
// open-addressed intern table that guarantees pointer-equality for equal
// strings, and VMState, the minimal process-wide state (object list head
// plus intern table) that the compiler package allocates strings through.
//
// This package intentionally stops short of an instruction-dispatch loop:
// running a Chunk is out of scope at this stage (see spec.md and
// SPEC_FULL.md). What is here is everything a single-pass compiler needs to
// emit a correct, inspectable Chunk, plus a disassembler for tests and
// debugging.
package vm
