// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parse

import (
	"errors"
	"testing"

	"github.com/wdamron/exists"
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/types"
)

func mustRead(t *testing.T, src string) *Value {
	t.Helper()
	v, err := Read(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return v
}

func expectParseError(t *testing.T, err error, line, col int) {
	t.Helper()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Line != line || pe.Col != col {
		t.Fatalf("expected error at %d:%d, got %v", line, col, pe)
	}
}

func TestRead(t *testing.T) {
	vals, err := ReadAll("; leading comment\n(a [b -12 +3 -] \"x\\ty\\\"z\" #t #f) ; trailing\n  sym")
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 2 {
		t.Fatalf("expected 2 values, got %d", len(vals))
	}
	list := vals[0]
	if list.Kind != List || len(list.List) != 5 || list.Head() != "a" {
		t.Fatalf("unexpected list: %s", list)
	}
	if list.Pos != (Pos{2, 1}) {
		t.Fatalf("unexpected position: %v", list.Pos)
	}
	inner := list.List[1]
	if inner.Kind != List || inner.List[1].Int != -12 || inner.List[2].Int != 3 || !inner.List[3].IsSymbol("-") {
		t.Fatalf("unexpected inner list: %s", inner)
	}
	if s := list.List[2]; s.Kind != String || s.Text != "x\ty\"z" {
		t.Fatalf("unexpected string: %q", s.Text)
	}
	if b := list.List[3]; b.Kind != Bool || !b.Bool {
		t.Fatalf("expected #t")
	}
	if b := list.List[4]; b.Kind != Bool || b.Bool {
		t.Fatalf("expected #f")
	}
	if sym := vals[1]; !sym.IsSymbol("sym") || sym.Pos != (Pos{3, 3}) {
		t.Fatalf("unexpected symbol: %s at %v", sym, sym.Pos)
	}
	if s := list.String(); s != "(a (b -12 3 -) \"x\\ty\\\"z\" #t #f)" {
		t.Fatalf("unexpected rendering: %s", s)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		src       string
		line, col int
	}{
		{"(a b", 1, 1},
		{"a)", 1, 2},
		{"\n  (a]", 2, 5},
		{"\"abc", 1, 1},
		{"(f 99999999999999999999)", 1, 4},
		{"", 1, 1},
		{"a b", 1, 3},
	}
	for _, c := range cases {
		_, err := Read(c.src)
		expectParseError(t, err, c.line, c.col)
		t.Logf("%q: %v", c.src, err)
	}
}

func TestParseType(t *testing.T) {
	for _, src := range []string{
		"int",
		"bool",
		"string",
		"unknown",
		"T0",
		"T42",
		"(list int)",
		"(list (list int))",
		"(tuple)",
		"(tuple int)",
		"(tuple int string)",
		"(-> int)",
		"(-> int int)",
		"(-> string int bool)",
		"(-> (-> int int bool) int int bool)",
		"(exists T0 (-> T0 bool))",
		"(record)",
		"(record (b int) (a (list bool)))",
		"(exists T1 (record (make (-> T1)) (get (-> T1 int))))",
	} {
		ty, err := ParseType(mustRead(t, src))
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if s := types.TypeString(ty); s != src {
			t.Fatalf("expected %s, got %s", src, s)
		}
	}

	ty, _ := ParseType(mustRead(t, "T42"))
	if v, ok := ty.(*types.Var); !ok || v.Id != 42 {
		t.Fatalf("expected type-variable 42, got %#v", ty)
	}
	ty, _ = ParseType(mustRead(t, "(exists T0 (-> T0 bool))"))
	expected := types.NewExists(0, types.NewArrow([]types.Type{types.NewVar(0)}, types.Bool))
	if !types.Equal(ty, expected) {
		t.Fatalf("expected %s, got %s", expected, ty)
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, src := range []string{
		"foo",
		"T",
		"Tx",
		"T-1",
		"T9223372036854775807",
		"T99999999999999999999",
		"5",
		"()",
		"(map int)",
		"(list)",
		"(list int bool)",
		"(->)",
		"(exists T0)",
		"(exists x int)",
		"(record a)",
		"(record (a int) (a bool))",
		"(tuple int foo)",
	} {
		_, err := ParseType(mustRead(t, src))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%s: expected a parse error, got %v", src, err)
		}
		t.Logf("%s: %v", src, err)
	}
}

func TestParseExpr(t *testing.T) {
	for _, src := range []string{
		"-5",
		"true",
		"\"a\\nb\"",
		"(+ 1 2)",
		"(if (= 1 1) 3 4)",
		"(let ((x 5) (y \"s\")) (concat y y))",
		"(lambda ((x : int) (f : (-> int bool))) : bool (f x))",
		"(lambda () : (list int) (null int))",
		"(begin (set! x 1) x)",
		"(begin)",
		"(cons 1 (cdr (cons 2 (null int))))",
		"(and (null? (null (tuple))) (<= (car xs) 0))",
		"(make-tuple (1 \"a\") : (int string))",
		"(get-nth t 0)",
		"(make-record (a 1) (b true))",
		"(record-ref r a)",
		"(pack 5 int (exists T0 T0))",
		"(unpack (p pkg T1) ((get-nth p 1) (get-nth p 0)))",
		"(unpack (p pkg) p)",
		"(f)",
	} {
		e, err := ParseExpr(mustRead(t, src))
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if s := ast.ExprString(e); s != src {
			t.Fatalf("expected %s, got %s", src, s)
		}
	}

	e, _ := ParseExpr(mustRead(t, "#f"))
	if b, ok := e.(*ast.Bool); !ok || b.Value {
		t.Fatalf("expected false, got %s", ast.ExprString(e))
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		src       string
		line, col int
	}{
		{"()", 1, 1},
		{"(if 1\n  2)", 1, 1},
		{"(let ((x 1)) \n (lambda (x) : int x))", 2, 11},
		{"(lambda ((x : int)) int x)", 1, 1},
		{"(lambda ((x int)) : int x)", 1, 10},
		{"(set! 1 2)", 1, 7},
		{"(make-tuple (1) (int))", 1, 1},
		{"(make-record (a))", 1, 14},
		{"(record-ref r \"a\")", 1, 15},
		{"(unpack (p) p)", 1, 9},
		{"(unpack (p pkg X) p)", 1, 16},
		{"(null foo)", 1, 7},
		{"(define (f) : int 1)", 1, 1},
		{"(make-env (a 1))", 1, 1},
		{"(f (g ()))", 1, 7},
	}
	for _, c := range cases {
		_, err := ParseExpr(mustRead(t, c.src))
		expectParseError(t, err, c.line, c.col)
		t.Logf("%q: %v", c.src, err)
	}
}

const paritySource = `
; mutually recursive declarations
(define (even (n : int)) : bool
  (if (= n 0) true (odd (- n 1))))

(define (odd (n : int)) : bool
  (if (= n 0) false (even (- n 1))))

(make-record (ten (even 10)) (three (odd 3)))
`

func TestParseProgram(t *testing.T) {
	prog, err := ParseProgram(paritySource)
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Funcs) != 2 || prog.Funcs[0].Name != "even" || prog.Funcs[1].Name != "odd" {
		t.Fatalf("unexpected declarations: %+v", prog.Funcs)
	}
	if s := types.TypeString(prog.Funcs[1].Signature()); s != "(-> int bool)" {
		t.Fatalf("unexpected signature: %s", s)
	}
	ty, err := exists.CheckProgram(prog)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ty); s != "(record (ten bool) (three bool))" {
		t.Fatalf("unexpected program type: %s", s)
	}

	// Multiple entry expressions are sequenced:
	prog, err = ParseProgram("(define (id (x : int)) : int x)\n(id 1)\n(concat \"a\" \"b\")")
	if err != nil {
		t.Fatal(err)
	}
	if s := ast.ExprString(prog.Entry); s != "(begin (id 1) (concat \"a\" \"b\"))" {
		t.Fatalf("unexpected entry: %s", s)
	}

	_, err = ParseProgram("(define (f) : int 1)")
	expectParseError(t, err, 1, 1)
	_, err = ParseProgram("(define f : int 1)\n(f)")
	expectParseError(t, err, 1, 1)
	_, err = ParseProgram("(define (f (x int)) : int 1)\n(f)")
	expectParseError(t, err, 1, 12)
}

func TestCheckParsed(t *testing.T) {
	cases := []struct {
		src      string
		expected string
		kind     exists.ErrorKind
	}{
		{src: "(+ 1 2)", expected: "int"},
		{src: "(if (= 1 1) 3 4)", expected: "int"},
		{src: "(let ((x 5)) (+ x 1))", expected: "int"},
		{src: "(lambda ((x : int)) : int (+ x 1))", expected: "(-> int int)"},
		{src: "(car (null int))", expected: "int"},
		{src: "(if 1 2 3)", kind: exists.NotABoolean},
		{src: "(let ((x 1) (y x)) y)", kind: exists.UnboundVariable},
		{src: "(get-nth (make-tuple (1 true) : (int bool)) 2)", kind: exists.IndexOutOfBounds},
		{src: "(record-ref (make-record (a 1)) b)", kind: exists.UnknownField},
		{
			src:      "(let ((c (pack (make-tuple (5 (lambda ((n : int)) : bool (> n 0))) : (int (-> int bool))) int (exists T0 (tuple T0 (-> T0 bool)))))) (unpack (p c T1) ((get-nth p 1) (get-nth p 0))))",
			expected: "bool",
		},
		{
			src:  "(let ((c (pack (make-tuple (5 (lambda ((n : int)) : bool (> n 0))) : (int (-> int bool))) int (exists T0 (tuple T0 (-> T0 bool)))))) (unpack (p c) (get-nth p 0)))",
			kind: exists.EscapingTypeVariable,
		},
	}
	for _, c := range cases {
		e, err := ParseExpr(mustRead(t, c.src))
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		ty, err := exists.CheckTop(e)
		if c.kind != 0 {
			if !errors.Is(err, &exists.TypeError{Kind: c.kind}) {
				t.Fatalf("%s: expected %s, got %v", c.src, c.kind, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		if s := types.TypeString(ty); s != c.expected {
			t.Fatalf("%s: expected %s, got %s", c.src, c.expected, s)
		}
	}
}

func TestIncomplete(t *testing.T) {
	for _, src := range []string{"(define (f)", "(let ((x 1))\n", "(concat \"ab"} {
		if _, err := ReadAll(src); !IsIncomplete(err) {
			t.Fatalf("%q: expected incomplete input, got %v", src, err)
		}
	}
	for _, src := range []string{"(a))", "(a]", "(f 99999999999999999999)"} {
		if _, err := ReadAll(src); err == nil || IsIncomplete(err) {
			t.Fatalf("%q: expected a complete parse error, got %v", src, err)
		}
	}
}
