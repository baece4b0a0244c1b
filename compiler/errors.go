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

package compiler

import (
	"fmt"
	"strings"
)

// Diag is a single compile diagnostic: a source line plus the message the
// parser attached to it, already formatted per errorAt's shape.
type Diag struct {
	Line    int
	Message string
}

func (d Diag) String() string { return d.Message }

// ErrList collects every diagnostic raised during a single Compile call.
// Compilation never stops at the first error (spec §4.6/§7): panicMode
// only suppresses cascading noise until the next synchronization point, so
// a single source file can surface many independent diagnostics.
type ErrList []Diag

func (e ErrList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Message
	}
	var b strings.Builder
	for i, d := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Message)
	}
	return b.String()
}

// errorAt appends a formatted diagnostic for tok, unless the parser is
// already in panic mode (in which case it is suppressed: one syntax error
// tends to cascade into bogus follow-on errors until synchronize runs).
func (p *parser) errorAt(tok Token, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	var where string
	switch tok.Kind {
	case TokEOF:
		where = " at end"
	case TokError:
		where = ""
	default:
		// The reference implementation's errorAt formats this case as
		// "errorat '%s'" (no leading space before "at"), a transcription
		// bug against its own book; this emits the corrected " at '...'".
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}

	p.errs = append(p.errs, Diag{
		Line:    tok.Line,
		Message: fmt.Sprintf("[line %d] error%s: %s", tok.Line, where, msg),
	})
}

func (p *parser) error(msg string) {
	p.errorAt(p.previous, msg)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errorAt(p.current, msg)
}
