// This file is part of loxvm - https://github.com/db47h/loxvm

package compiler_test

import (
	"strings"
	"testing"

	"github.com/db47h/loxvm/compiler"
)

func scanAll(t *testing.T, src string) []compiler.Token {
	t.Helper()
	sc := compiler.NewScanner("test", strings.NewReader(src))
	var toks []compiler.Token
	for {
		tok := sc.Next()
		toks = append(toks, tok)
		if tok.Kind == compiler.TokEOF {
			return toks
		}
	}
}

func TestScannerTwoRuneOperators(t *testing.T) {
	toks := scanAll(t, "!= == <= >= ! = < >")
	want := []compiler.TokenKind{
		compiler.TokBangEqual,
		compiler.TokEqualEqual,
		compiler.TokLessEqual,
		compiler.TokGreaterEqual,
		compiler.TokBang,
		compiler.TokEqual,
		compiler.TokLess,
		compiler.TokGreater,
		compiler.TokEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestScannerKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll(t, "var x = nil; print foobar;")
	want := []compiler.TokenKind{
		compiler.TokVar,
		compiler.TokIdentifier,
		compiler.TokEqual,
		compiler.TokNil,
		compiler.TokSemicolon,
		compiler.TokPrint,
		compiler.TokIdentifier,
		compiler.TokSemicolon,
		compiler.TokEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d (%q): kind = %v, want %v", i, toks[i].Lexeme, toks[i].Kind, k)
		}
	}
}

func TestScannerLineTracking(t *testing.T) {
	toks := scanAll(t, "1\n2\n\n3")
	wantLines := []int{1, 2, 4}
	for i, line := range wantLines {
		if toks[i].Line != line {
			t.Errorf("token %d: line = %d, want %d", i, toks[i].Line, line)
		}
	}
}

func TestScannerStringAndNumberLexemes(t *testing.T) {
	toks := scanAll(t, `"hello" 3.14`)
	if toks[0].Kind != compiler.TokString || toks[0].Lexeme != `"hello"` {
		t.Errorf("token 0 = %+v, want string token with lexeme \"hello\"", toks[0])
	}
	if toks[1].Kind != compiler.TokNumber || toks[1].Lexeme != "3.14" {
		t.Errorf("token 1 = %+v, want number token 3.14", toks[1])
	}
}
