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
	"github.com/db47h/loxvm/vm"
)

// maxLocals bounds the Compiler's Locals array (spec §4 "Compiler state").
// Locals are reserved but unused by emitted code at this stage; the
// constant exists so the array is sized the way a later stage expects it.
const maxLocals = 256

// local names a variable slot reserved in a lexical scope. Not wired into
// variable resolution yet - see the compilerState doc comment.
type local struct {
	name  Token
	depth int
}

// compilerState tracks lexical-scope bookkeeping. Spec §4 reserves this for
// future local-variable handling; in the current grammar every declaration
// is global, so localCount and scopeDepth stay at zero and locals is never
// populated. It is kept on the parser so the shape matches the original and
// a later stage can wire it in without restructuring.
type compilerState struct {
	locals     [maxLocals]local
	localCount int
	scopeDepth int
}

// parser is the transient, per-compile state threaded through every parsing
// function: the two-token lookahead window, the sticky error flags, the
// chunk being assembled, the reserved compiler (scope) state, and the
// VMState used to intern string and identifier constants.
type parser struct {
	scanner  *Scanner
	current  Token
	previous Token

	hadError  bool
	panicMode bool
	errs      ErrList

	chunk *vm.Chunk
	state *vm.VMState
	comp  compilerState
}

// Compile compiles source into a fresh *vm.Chunk. name (e.g. a file name or
// "<repl>") is recorded as the scanner's file name; the diagnostics in the
// returned ErrList carry only a line number and do not include it.
//
// Compilation never stops at the first error: every diagnostic reachable
// before EOF is collected and returned together as an ErrList satisfying
// the error interface. When err is non-nil the returned chunk may contain
// partially emitted bytecode and must not be executed (spec §7).
func Compile(source, name string, state *vm.VMState) (*vm.Chunk, error) {
	p := &parser{
		scanner: NewScanner(name, stringsReader(source)),
		chunk:   vm.NewChunk(),
		state:   state,
	}

	p.advance()
	for !p.match(TokEOF) {
		p.declaration()
	}
	p.endCompiler()

	if p.hadError {
		return p.chunk, p.errs
	}
	return p.chunk, nil
}

func (p *parser) currentChunk() *vm.Chunk { return p.chunk }

// advance shifts current into previous and pulls the next non-error token
// from the scanner, reporting every error token it passes over along the
// way (spec §4.5: the scanner itself never prints; the compiler does).
func (p *parser) advance() {
	p.previous = p.current

	for {
		p.current = p.scanner.Next()
		if p.current.Kind != TokError {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

// consume advances past current if it has the expected kind, else reports
// msg at current.
func (p *parser) consume(kind TokenKind, msg string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(msg)
}

func (p *parser) check(kind TokenKind) bool {
	return p.current.Kind == kind
}

func (p *parser) match(kind TokenKind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// --- bytecode emission -----------------------------------------------

func (p *parser) emitByte(b byte) {
	p.currentChunk().Write(b, p.previous.Line)
}

func (p *parser) emitOp(op vm.OpCode) {
	p.currentChunk().WriteOp(op, p.previous.Line)
}

func (p *parser) emitOpByte(op vm.OpCode, operand byte) {
	p.emitOp(op)
	p.emitByte(operand)
}

func (p *parser) emitReturn() {
	p.emitOp(vm.OpReturn)
}

// makeConstant adds v to the current chunk's constant pool, reporting a
// compile error instead of overflowing the 8-bit operand when the pool is
// already full (spec §4.5/§7 "too many constants in one chunk").
func (p *parser) makeConstant(v vm.Value) byte {
	idx := p.currentChunk().AddConstant(v)
	if idx >= vm.MaxConstants {
		p.error("too many constants in one chunk")
		return 0
	}
	return byte(idx)
}

func (p *parser) emitConstant(v vm.Value) {
	p.emitOpByte(vm.OpConstant, p.makeConstant(v))
}

func (p *parser) endCompiler() {
	p.emitReturn()
}

// --- expressions --------------------------------------------------------

// parsePrecedence is the heart of the Pratt parser (spec §4.5): it consumes
// one prefix production, then keeps folding in infix productions as long as
// their rule precedence is at least minPrec, enforcing left-associativity
// through the binary handler's own minPrec+1 recursive call.
func (p *parser) parsePrecedence(minPrec Precedence) {
	p.advance()
	prefix := ruleFor(p.previous.Kind).prefix
	if prefix == nil {
		p.error("expect expression")
		return
	}

	canAssign := minPrec <= PrecAssignment
	prefix(p, canAssign)

	for minPrec <= ruleFor(p.current.Kind).precedence {
		p.advance()
		infix := ruleFor(p.previous.Kind).infix
		infix(p, canAssign)
	}

	if canAssign && p.match(TokEqual) {
		p.error("invalid assignment target")
	}
}

func (p *parser) expression() {
	p.parsePrecedence(PrecAssignment)
}

func grouping(p *parser, _ bool) {
	p.expression()
	p.consume(TokRightParen, "expect ')' after expression")
}

func unary(p *parser, _ bool) {
	op := p.previous.Kind
	p.parsePrecedence(PrecUnary)
	switch op {
	case TokBang:
		p.emitOp(vm.OpNot)
	case TokMinus:
		p.emitOp(vm.OpNegate)
	}
}

func binary(p *parser, _ bool) {
	op := p.previous.Kind
	r := ruleFor(op)
	p.parsePrecedence(r.precedence + 1)

	switch op {
	case TokBangEqual:
		p.emitOp(vm.OpEqual)
		p.emitOp(vm.OpNot)
	case TokEqualEqual:
		p.emitOp(vm.OpEqual)
	case TokGreater:
		p.emitOp(vm.OpGreater)
	case TokGreaterEqual:
		p.emitOp(vm.OpLess)
		p.emitOp(vm.OpNot)
	case TokLess:
		p.emitOp(vm.OpLess)
	case TokLessEqual:
		p.emitOp(vm.OpGreater)
		p.emitOp(vm.OpNot)
	case TokPlus:
		p.emitOp(vm.OpAdd)
	case TokMinus:
		p.emitOp(vm.OpSubtract)
	case TokStar:
		p.emitOp(vm.OpMultiply)
	case TokSlash:
		p.emitOp(vm.OpDivide)
	}
}

func literal(p *parser, _ bool) {
	switch p.previous.Kind {
	case TokFalse:
		p.emitOp(vm.OpFalse)
	case TokNil:
		p.emitOp(vm.OpNil)
	case TokTrue:
		p.emitOp(vm.OpTrue)
	}
}

func number(p *parser, _ bool) {
	v, err := parseFloat(p.previous.Lexeme)
	if err != nil {
		p.error("invalid number literal")
		return
	}
	p.emitConstant(vm.Number(v))
}

// str unquotes the lexeme text/scanner hands back for a TokString (it
// keeps the surrounding double quotes, unlike the C scanner's raw pointer
// slice) and interns the contents.
func str(p *parser, _ bool) {
	raw := p.previous.Lexeme
	unquoted, err := unquoteString(raw)
	if err != nil {
		p.error("invalid string literal")
		return
	}
	obj := p.state.CopyString([]byte(unquoted))
	p.emitConstant(vm.ObjectRef(obj))
}

// identifierConstant interns name's lexeme as a string and returns its
// constant-pool index, used both to declare a global's name and to
// reference it later (spec §4.5).
func (p *parser) identifierConstant(name Token) byte {
	obj := p.state.CopyString([]byte(name.Lexeme))
	return p.makeConstant(vm.ObjectRef(obj))
}

func (p *parser) namedVariable(name Token, canAssign bool) {
	arg := p.identifierConstant(name)
	if canAssign && p.match(TokEqual) {
		p.expression()
		p.emitOpByte(vm.OpSetGlobal, arg)
	} else {
		p.emitOpByte(vm.OpGetGlobal, arg)
	}
}

func variable(p *parser, canAssign bool) {
	p.namedVariable(p.previous, canAssign)
}

// --- statements and declarations ----------------------------------------

func (p *parser) parseVariable(errMsg string) byte {
	p.consume(TokIdentifier, errMsg)
	return p.identifierConstant(p.previous)
}

func (p *parser) defineVariable(global byte) {
	p.emitOpByte(vm.OpDefineGlobal, global)
}

func (p *parser) varDeclaration() {
	global := p.parseVariable("expect variable name")

	if p.match(TokEqual) {
		p.expression()
	} else {
		p.emitOp(vm.OpNil)
	}
	p.consume(TokSemicolon, "expect ';' after variable declaration")

	p.defineVariable(global)
}

func (p *parser) expressionStatement() {
	p.expression()
	p.consume(TokSemicolon, "expect ';' after expression")
	p.emitOp(vm.OpPop)
}

func (p *parser) printStatement() {
	p.expression()
	p.consume(TokSemicolon, "expect ';' after value")
	p.emitOp(vm.OpPrint)
}

func (p *parser) statement() {
	if p.match(TokPrint) {
		p.printStatement()
		return
	}
	p.expressionStatement()
}

func (p *parser) declaration() {
	if p.match(TokVar) {
		p.varDeclaration()
	} else {
		p.statement()
	}

	if p.panicMode {
		p.synchronize()
	}
}

// synchronize skips tokens until a likely statement boundary, so a single
// syntax error does not cascade into a wall of follow-on diagnostics
// (spec §4.5/§7).
func (p *parser) synchronize() {
	p.panicMode = false

	for p.current.Kind != TokEOF {
		if p.previous.Kind == TokSemicolon {
			return
		}
		switch p.current.Kind {
		case TokClass, TokFun, TokVar, TokFor, TokIf, TokWhile, TokPrint, TokReturn:
			return
		}
		p.advance()
	}
}
