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
	"testing"

	"github.com/wdamron/exists/ast"
	. "github.com/wdamron/exists/construct"
)

func declNames(decls []*FuncDecl) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}

func TestAnalyzeDependencies(t *testing.T) {
	n := []ast.Param{Param("n", TInt())}
	funcs := append(parityDecls(),
		// main -> even <-> odd
		decl("main", nil, TBool(), Call(Var("even"), Num(4))),
		// Shadowed references are local:
		decl("shadow", n, TInt(), Let1("main", Num(1), Var("main"))),
		decl("lambda", nil, TArrow1(TInt(), TInt()), Lambda(n, TInt(), Call(Var("shadow"), Var("n")))),
		decl("unpack", nil, TInt(), Unpack("lambda", Var("pkg"), nil, Num(0))),
	)
	prog := &Program{Funcs: funcs, Entry: Begin(Call(Var("main")), Unpack("p", Call(Var("unpack")), nil, Num(1)))}

	deps := AnalyzeDependencies(prog)
	pos := make(map[string]int)
	for i, group := range deps.Groups {
		for _, d := range group {
			pos[d.Name] = i
		}
	}
	if len(deps.Groups) != 5 {
		t.Fatalf("expected 5 groups, got %v", deps.Groups)
	}
	if pos["even"] != pos["odd"] || len(deps.Groups[pos["even"]]) != 2 {
		t.Fatalf("expected even and odd to form a group")
	}
	if pos["even"] > pos["main"] || pos["shadow"] > pos["lambda"] {
		t.Fatalf("groups are not in dependency order: %v", deps.Groups)
	}

	unused := declNames(deps.Unused)
	if len(unused) != 2 || unused[0] != "shadow" || unused[1] != "lambda" {
		t.Fatalf("unexpected unused declarations: %v", unused)
	}
}
