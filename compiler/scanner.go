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
	"io"
	"text/scanner"
)

// Scanner turns source text into Tokens (spec §4.5/§6 treats this as an
// external collaborator exposing init_scanner/scan_token; here it is a
// small concrete package so that Compile is actually runnable).
//
// It is built on the stdlib text/scanner, the same foundation the teacher's
// asm.parser uses for its own token stream, with a thin layer on top: two
// rune operators (!=, ==, <=, >=) are coalesced, and identifiers that match
// a language keyword are reclassified to their keyword TokenKind.
type Scanner struct {
	s      scanner.Scanner
	errMsg string
}

// NewScanner returns a Scanner reading from src. name (e.g. a file name) is
// stored as the underlying scanner.Position's Filename field; Tokens carry
// only a line number, so it does not appear in them.
func NewScanner(name string, src io.Reader) *Scanner {
	sc := &Scanner{}
	sc.s.Init(src)
	sc.s.Filename = name
	sc.s.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	sc.s.Error = func(_ *scanner.Scanner, msg string) {
		sc.errMsg = msg
	}
	return sc
}

// Next returns the next Token, including a terminal TokEOF once the input
// is exhausted. Lex errors are never returned via a Go error: they surface
// as a TokError Token whose Lexeme carries the diagnostic, per spec §6/§7.
func (sc *Scanner) Next() Token {
	sc.errMsg = ""
	tok := sc.s.Scan()

	pos := sc.s.Position
	if !pos.IsValid() {
		pos = sc.s.Pos()
	}
	line := pos.Line

	if sc.errMsg != "" {
		return Token{Kind: TokError, Lexeme: sc.errMsg, Line: line}
	}

	switch tok {
	case scanner.EOF:
		return Token{Kind: TokEOF, Line: line}
	case scanner.Ident:
		text := sc.s.TokenText()
		if kind, ok := keywords[text]; ok {
			return Token{Kind: kind, Lexeme: text, Line: line}
		}
		return Token{Kind: TokIdentifier, Lexeme: text, Line: line}
	case scanner.Int, scanner.Float:
		return Token{Kind: TokNumber, Lexeme: sc.s.TokenText(), Line: line}
	case scanner.String:
		return Token{Kind: TokString, Lexeme: sc.s.TokenText(), Line: line}
	default:
		return sc.punct(tok, line)
	}
}

// punct classifies a single scanned rune as punctuation, combining it with
// a following '=' for the four two-rune operators the grammar defines.
func (sc *Scanner) punct(r rune, line int) Token {
	switch r {
	case '(':
		return Token{TokLeftParen, "(", line}
	case ')':
		return Token{TokRightParen, ")", line}
	case '{':
		return Token{TokLeftBrace, "{", line}
	case '}':
		return Token{TokRightBrace, "}", line}
	case ',':
		return Token{TokComma, ",", line}
	case '.':
		return Token{TokDot, ".", line}
	case '-':
		return Token{TokMinus, "-", line}
	case '+':
		return Token{TokPlus, "+", line}
	case ';':
		return Token{TokSemicolon, ";", line}
	case '/':
		return Token{TokSlash, "/", line}
	case '*':
		return Token{TokStar, "*", line}
	case '!':
		if sc.match('=') {
			return Token{TokBangEqual, "!=", line}
		}
		return Token{TokBang, "!", line}
	case '=':
		if sc.match('=') {
			return Token{TokEqualEqual, "==", line}
		}
		return Token{TokEqual, "=", line}
	case '<':
		if sc.match('=') {
			return Token{TokLessEqual, "<=", line}
		}
		return Token{TokLess, "<", line}
	case '>':
		if sc.match('=') {
			return Token{TokGreaterEqual, ">=", line}
		}
		return Token{TokGreater, ">", line}
	default:
		return Token{TokError, fmt.Sprintf("unexpected character %q", r), line}
	}
}

// match consumes the next rune if it equals want, without going through
// Scan (and therefore without classifying it as a token of its own).
func (sc *Scanner) match(want rune) bool {
	if sc.s.Peek() == want {
		sc.s.Next()
		return true
	}
	return false
}
