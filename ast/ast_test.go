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

package ast_test

import (
	"sync"
	"testing"

	"github.com/wdamron/exists/ast"
	. "github.com/wdamron/exists/construct"
	"github.com/wdamron/exists/types"
)

func sampleExpr() ast.Expr {
	return Let(
		[]ast.LetBinding{
			LetBinding("f", Lambda([]ast.Param{Param("x", TInt())}, TInt(), Binop(ast.Add, Var("x"), Num(1)))),
			LetBinding("r", Record(LabelValue("a", Str("hi")), LabelValue("b", Bool(true)))),
		},
		Begin(
			Set("x", Num(2)),
			If(IsNull(Cons(Num(1), Null(TInt()))), Car(Cdr(Null(TInt()))), Call(Var("f"), Num(3))),
			TupleGet(Tuple([]ast.Expr{Num(1), Str("a")}, []types.Type{TInt(), TStr()}), Num(1)),
			Unpack("p", Pack(Num(1), TInt(), TExists(0, TVar(0))), TVar(1), RecordSelect(Var("r"), "a")),
		),
	)
}

func TestExprString(t *testing.T) {
	expected := `(let ((f (lambda ((x : int)) : int (+ x 1))) (r (make-record (a "hi") (b true)))) ` +
		`(begin (set! x 2) (if (null? (cons 1 (null int))) (car (cdr (null int))) (f 3)) ` +
		`(get-nth (make-tuple (1 "a") : (int string)) 1) ` +
		`(unpack (p (pack 1 int (exists T0 T0)) T1) (record-ref r a))))`
	if s := ast.ExprString(sampleExpr()); s != expected {
		t.Fatalf("expr: %s", s)
	}
}

func TestBinOpNames(t *testing.T) {
	for _, name := range []string{"+", "-", "*", "/", "<", ">", "<=", ">=", "=", "and", "or", "concat"} {
		op, ok := ast.LookupBinOp(name)
		if !ok {
			t.Fatalf("operator %s not found", name)
		}
		if op.String() != name {
			t.Fatalf("expected %s, got %s", name, op.String())
		}
	}
	if _, ok := ast.LookupBinOp("%"); ok {
		t.Fatalf("unexpected operator")
	}
	if !ast.Add.IsArithmetic() || !ast.LessOrEqual.IsOrdering() || !ast.Or.IsLogical() || ast.EqualTo.IsOrdering() {
		t.Fatalf("unexpected operator classification")
	}
}

func TestWalkExpr(t *testing.T) {
	count := 0
	names := map[string]int{}
	ast.WalkExpr(sampleExpr(), func(e ast.Expr) {
		count++
		names[e.ExprName()]++
	})
	if names["Null"] != 2 || names["Num"] != 7 || names["Unpack"] != 1 || names["Lambda"] != 1 {
		t.Fatalf("unexpected walk: %v", names)
	}

	var annotations []string
	ast.WalkAnnotations(sampleExpr(), func(ty types.Type) {
		annotations = append(annotations, types.TypeString(ty))
	})
	if len(annotations) != 9 {
		t.Fatalf("unexpected annotations: %v", annotations)
	}
}

func TestCheckedTypeSetOnce(t *testing.T) {
	e := Num(1)
	if !types.IsUnknown(e.Type()) {
		t.Fatalf("expected unknown type before checking")
	}
	e.SetType(types.Unknown{})
	if !types.IsUnknown(e.Type()) {
		t.Fatalf("unknown must not be cached")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.SetType(types.Int)
		}()
	}
	wg.Wait()
	e.SetType(types.Bool)
	if e.Type() != types.Type(types.Int) {
		t.Fatalf("expected first assignment to win, got %s", types.TypeString(e.Type()))
	}
}

func TestCopyExpr(t *testing.T) {
	orig := sampleExpr()
	orig.SetType(types.Str)
	cp := ast.CopyExpr(orig)
	if cp == orig {
		t.Fatalf("expected a new expression")
	}
	if ast.ExprString(cp) != ast.ExprString(orig) {
		t.Fatalf("copy differs: %s", ast.ExprString(cp))
	}
	if cp.Type() != types.Type(types.Str) {
		t.Fatalf("expected checked type to be copied")
	}
	let := cp.(*ast.Let)
	let.Bindings[0].Var = "g"
	if orig.(*ast.Let).Bindings[0].Var != "f" {
		t.Fatalf("copy shares bindings with the original")
	}
}
