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

package exists

import (
	"errors"
	"testing"

	"github.com/wdamron/exists/ast"
	. "github.com/wdamron/exists/construct"
	"github.com/wdamron/exists/types"
)

func decl(name string, params []ast.Param, ret types.Type, body ast.Expr) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, Return: ret, Body: body}
}

// even and odd call one another
func parityDecls() []*FuncDecl {
	n := []ast.Param{Param("n", TInt())}
	pred := func() ast.Expr { return Binop(ast.EqualTo, Var("n"), Num(0)) }
	dec := func() ast.Expr { return Binop(ast.Subtract, Var("n"), Num(1)) }
	return []*FuncDecl{
		decl("even", n, TBool(), If(pred(), Bool(true), Call(Var("odd"), dec()))),
		decl("odd", n, TBool(), If(pred(), Bool(false), Call(Var("even"), dec()))),
	}
}

func TestMutuallyRecursiveDecls(t *testing.T) {
	prog := &Program{Funcs: parityDecls(), Entry: Call(Var("even"), Num(10))}
	ty, err := CheckProgram(prog)
	if err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ty); s != "bool" {
		t.Fatalf("expected bool, got %s", s)
	}
	if s := types.TypeString(prog.Funcs[0].Signature()); s != "(-> int bool)" {
		t.Fatalf("unexpected signature: %s", s)
	}
	if types.IsUnknown(prog.Funcs[1].Body.Type()) {
		t.Fatalf("expected declaration body to be annotated")
	}
}

func TestDeclReturnMismatch(t *testing.T) {
	prog := &Program{
		Funcs: []*FuncDecl{decl("f", []ast.Param{Param("n", TInt())}, TBool(), Var("n"))},
		Entry: Call(Var("f"), Num(1)),
	}
	ctx := NewChecker()
	_, err := ctx.CheckProgram(prog)
	var de *DeclError
	if !errors.As(err, &de) || de.Decl != "f" {
		t.Fatalf("expected an error within f, got %v", err)
	}
	var te *TypeError
	if !errors.As(err, &te) || te.Kind != ReturnTypeMismatch || te.Name != "f" {
		t.Fatalf("expected return type mismatch, got %v", err)
	}
	if !errors.Is(err, &TypeError{Kind: ReturnTypeMismatch}) {
		t.Fatalf("expected errors.Is to match the error kind")
	}
	if ctx.InvalidExpr() != prog.Funcs[0].Body {
		t.Fatalf("expected the body of f to be reported")
	}
	t.Log(err)
}

func TestDuplicateDecl(t *testing.T) {
	prog := &Program{
		Funcs: []*FuncDecl{
			decl("f", nil, TInt(), Num(1)),
			decl("f", nil, TStr(), Str("a")),
		},
		Entry: Call(Var("f")),
	}
	_, err := CheckProgram(prog)
	var te *TypeError
	if !errors.As(err, &te) || te.Kind != DuplicateDeclaration || te.Name != "f" {
		t.Fatalf("expected duplicate declaration, got %v", err)
	}
}

func TestDeclScope(t *testing.T) {
	// Parameters are not visible outside the declaration:
	prog := &Program{
		Funcs: []*FuncDecl{decl("id", []ast.Param{Param("x", TInt())}, TInt(), Var("x"))},
		Entry: Var("x"),
	}
	if _, err := CheckProgram(prog); !errors.Is(err, &TypeError{Kind: UnboundVariable}) {
		t.Fatalf("expected unbound variable, got %v", err)
	}

	// Declarations may take and return packages:
	counter := TExists(0, TTuple(TVar(0), TArrow1(TVar(0), TBool())))
	use := decl("use", []ast.Param{Param("pkg", counter)}, TBool(),
		Unpack("p", Var("pkg"), nil, Call(TupleGet(Var("p"), Num(1)), TupleGet(Var("p"), Num(0)))))
	prog = &Program{Funcs: []*FuncDecl{use}, Entry: Call(Var("use"), counterPackage())}
	ty, err := CheckProgram(prog)
	if err != nil {
		t.Fatal(err)
	}
	if ty != types.Type(types.Bool) {
		t.Fatalf("expected bool, got %s", types.TypeString(ty))
	}
}

func TestCheckProgramAll(t *testing.T) {
	funcs := append(parityDecls(),
		decl("bad1", nil, TInt(), Str("a")),
		decl("bad2", nil, TInt(), Var("missing")),
	)

	ty, errs := NewChecker().CheckProgramAll(&Program{Funcs: funcs, Entry: Call(Var("odd"), Num(3))})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	for i, name := range []string{"bad1", "bad2"} {
		var de *DeclError
		if !errors.As(errs[i], &de) || de.Decl != name {
			t.Fatalf("expected an error within %s, got %v", name, errs[i])
		}
	}
	if ty != types.Type(types.Bool) {
		t.Fatalf("expected the entry type to be checked, got %v", ty)
	}

	ty, errs = NewChecker().CheckProgramAll(&Program{Funcs: funcs, Entry: Call(Var("bad1"), Num(1))})
	if len(errs) != 3 || ty != nil {
		t.Fatalf("expected 3 errors and no type, got %v, %v", ty, errs)
	}
	if !errors.Is(errs[2], &TypeError{Kind: ArityMismatch}) {
		t.Fatalf("expected arity mismatch in the entry expression, got %v", errs[2])
	}

	if _, errs := NewChecker().CheckProgramAll(&Program{}); len(errs) != 1 {
		t.Fatalf("expected an error for an empty program")
	}
}
