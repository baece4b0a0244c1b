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

// Precedence orders binding strength from loosest to tightest (spec §4.5).
// parsePrecedence(p) consumes infix operators whose rule precedence is >= p.
type Precedence int

const (
	PrecNone       Precedence = iota
	PrecAssignment            // =
	PrecOr                    // or
	PrecAnd                   // and
	PrecEquality              // == !=
	PrecComparison            // < > <= >=
	PrecTerm                  // + -
	PrecFactor                // * /
	PrecUnary                 // ! -
	PrecCall                  // . ()
	PrecPrimary
)

// parseFn compiles one syntax production starting at p.Previous. canAssign
// gates whether a bare '=' may be consumed as an assignment target.
type parseFn func(p *parser, canAssign bool)

// rule is the (prefix, infix, precedence) triple the Pratt parser looks up
// per token kind. The table is kept as static data deliberately, per the
// original author's own note that a big conditional chain would be harder
// to extend - see rules below and compiler/parser.go's parsePrecedence.
type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence Precedence
}

var rules map[TokenKind]rule

func init() {
	rules = map[TokenKind]rule{
		TokLeftParen:    {grouping, nil, PrecNone},
		TokRightParen:   {nil, nil, PrecNone},
		TokLeftBrace:    {nil, nil, PrecNone},
		TokRightBrace:   {nil, nil, PrecNone},
		TokComma:        {nil, nil, PrecNone},
		TokDot:          {nil, nil, PrecNone},
		TokMinus:        {unary, binary, PrecTerm},
		TokPlus:         {nil, binary, PrecTerm},
		TokSemicolon:    {nil, nil, PrecNone},
		TokSlash:        {nil, binary, PrecFactor},
		TokStar:         {nil, binary, PrecFactor},
		TokBang:         {unary, nil, PrecNone},
		TokBangEqual:    {nil, binary, PrecEquality},
		TokEqual:        {nil, nil, PrecNone},
		TokEqualEqual:   {nil, binary, PrecEquality},
		TokGreater:      {nil, binary, PrecComparison},
		TokGreaterEqual: {nil, binary, PrecComparison},
		TokLess:         {nil, binary, PrecComparison},
		TokLessEqual:    {nil, binary, PrecComparison},
		TokIdentifier:   {variable, nil, PrecNone},
		TokString:       {str, nil, PrecNone},
		TokNumber:       {number, nil, PrecNone},
		// and/or are reserved but not wired: this stage has no control
		// flow to short-circuit, so they fall through the default
		// "no prefix/infix rule" path like any other unimplemented keyword.
		TokAnd:          {nil, nil, PrecNone},
		TokClass:        {nil, nil, PrecNone},
		TokElse:         {nil, nil, PrecNone},
		TokFalse:        {literal, nil, PrecNone},
		TokFor:          {nil, nil, PrecNone},
		TokFun:          {nil, nil, PrecNone},
		TokIf:           {nil, nil, PrecNone},
		TokNil:          {literal, nil, PrecNone},
		TokOr:           {nil, nil, PrecNone},
		TokPrint:        {nil, nil, PrecNone},
		TokReturn:       {nil, nil, PrecNone},
		TokSuper:        {nil, nil, PrecNone},
		TokThis:         {nil, nil, PrecNone},
		TokTrue:         {literal, nil, PrecNone},
		TokVar:          {nil, nil, PrecNone},
		TokWhile:        {nil, nil, PrecNone},
		TokError:        {nil, nil, PrecNone},
		TokEOF:          {nil, nil, PrecNone},
	}
}

// ruleFor returns the rule for k, defaulting to the all-nil rule for kinds
// absent from the table (there are none, but lookups stay total).
func ruleFor(k TokenKind) rule {
	if r, ok := rules[k]; ok {
		return r
	}
	return rule{nil, nil, PrecNone}
}
