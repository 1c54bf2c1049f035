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
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/internal/graph"
)

// Dependencies describes references between the declarations of a program.
type Dependencies struct {
	// Groups of mutually-recursive declarations, in dependency order: each group references
	// only itself and earlier groups.
	Groups [][]*FuncDecl
	// Declarations which are never referenced, directly or indirectly, from the entry expression
	Unused []*FuncDecl
}

// AnalyzeDependencies finds references between the declarations of prog, respecting local bindings
// which shadow declaration names. Checking does not depend on the analysis.
func AnalyzeDependencies(prog *Program) *Dependencies {
	n := len(prog.Funcs)
	a := analysis{decls: make(map[string]int, n), locals: make(map[string]int, 16)}
	for i, d := range prog.Funcs {
		if _, dup := a.decls[d.Name]; !dup {
			a.decls[d.Name] = i
		}
	}

	deps := graph.New(n)      // referenced -> referencing
	refs := graph.New(n + 1) // referencing -> referenced; vertex n is the entry expression
	for i, d := range prog.Funcs {
		a.refs = a.refs[:0]
		for _, p := range d.Params {
			a.bind(p.Name)
		}
		a.analyzeExpr(d.Body)
		for _, p := range d.Params {
			a.unbind(p.Name)
		}
		for _, j := range a.refs {
			deps.AddEdge(j, i)
			refs.AddEdge(i, j)
		}
	}
	a.refs = a.refs[:0]
	a.analyzeExpr(prog.Entry)
	for _, j := range a.refs {
		refs.AddEdge(n, j)
	}

	result := &Dependencies{Groups: make([][]*FuncDecl, 0, n)}
	for _, scc := range deps.SCC() {
		group := make([]*FuncDecl, len(scc))
		for i, v := range scc {
			group[i] = prog.Funcs[v]
		}
		result.Groups = append(result.Groups, group)
	}
	used := refs.Reachable(n)
	for i, d := range prog.Funcs {
		if !used[i] {
			result.Unused = append(result.Unused, d)
		}
	}
	return result
}

type analysis struct {
	decls  map[string]int // declaration name -> index
	locals map[string]int // name -> number of enclosing local bindings
	refs   []int
}

func (a *analysis) bind(name string) { a.locals[name]++ }

func (a *analysis) unbind(name string) {
	if n := a.locals[name]; n > 1 {
		a.locals[name] = n - 1
	} else {
		delete(a.locals, name)
	}
}

func (a *analysis) ref(name string) {
	if a.locals[name] > 0 {
		return
	}
	if i, ok := a.decls[name]; ok {
		a.refs = append(a.refs, i)
	}
}

func (a *analysis) analyzeExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Var:
		a.ref(e.Name)

	case *ast.Set:
		a.ref(e.Var)
		a.analyzeExpr(e.Value)

	case *ast.Let:
		for _, b := range e.Bindings {
			a.analyzeExpr(b.Value)
		}
		for _, b := range e.Bindings {
			a.bind(b.Var)
		}
		a.analyzeExpr(e.Body)
		for _, b := range e.Bindings {
			a.unbind(b.Var)
		}

	case *ast.Lambda:
		for _, p := range e.Params {
			a.bind(p.Name)
		}
		a.analyzeExpr(e.Body)
		for _, p := range e.Params {
			a.unbind(p.Name)
		}

	case *ast.Unpack:
		a.analyzeExpr(e.Package)
		a.bind(e.Var)
		a.analyzeExpr(e.Body)
		a.unbind(e.Var)

	case *ast.Binop:
		a.analyzeExpr(e.Left)
		a.analyzeExpr(e.Right)

	case *ast.If:
		a.analyzeExpr(e.Pred)
		a.analyzeExpr(e.Then)
		a.analyzeExpr(e.Else)

	case *ast.Begin:
		for _, sub := range e.Exprs {
			a.analyzeExpr(sub)
		}

	case *ast.Cons:
		a.analyzeExpr(e.Head)
		a.analyzeExpr(e.Tail)

	case *ast.Car:
		a.analyzeExpr(e.List)

	case *ast.Cdr:
		a.analyzeExpr(e.List)

	case *ast.IsNull:
		a.analyzeExpr(e.List)

	case *ast.Call:
		a.analyzeExpr(e.Func)
		for _, arg := range e.Args {
			a.analyzeExpr(arg)
		}

	case *ast.Tuple:
		for _, sub := range e.Elems {
			a.analyzeExpr(sub)
		}

	case *ast.TupleGet:
		a.analyzeExpr(e.Tuple)
		a.analyzeExpr(e.Index)

	case *ast.Record:
		for _, f := range e.Fields {
			a.analyzeExpr(f.Value)
		}

	case *ast.RecordSelect:
		a.analyzeExpr(e.Record)

	case *ast.Pack:
		a.analyzeExpr(e.Value)
	}
}
