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

// Package compiler implements a single-pass, Pratt-style parser/compiler
// that turns source text directly into a vm.Chunk, without ever building
// an intermediate syntax tree. Tokens come from a small Scanner built on
// top of the stdlib text/scanner; expression parsing is driven by a static
// table of (prefix, infix, precedence) rules keyed by token kind, and
// statement parsing is a thin recursive-descent layer on top of that.
//
// Only a core grammar is wired: variable declarations (globals only),
// expression and print statements, and the full expression grammar through
// assignment. Control flow, functions, classes and local variables are
// reserved in the token and precedence tables but have no handlers; source
// using them fails to compile with "expect expression" or a similar
// diagnostic rather than being silently accepted.
package compiler
