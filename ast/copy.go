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

package ast

import "github.com/wdamron/exists/types"

// CopyExpr returns a deep copy of e. Checked types are copied along with each expression.
func CopyExpr(e Expr) Expr {
	switch e := e.(type) {
	case *Num:
		out := &Num{Value: e.Value}
		e.copyTo(&out.checked)
		return out

	case *Bool:
		out := &Bool{Value: e.Value}
		e.copyTo(&out.checked)
		return out

	case *Str:
		out := &Str{Value: e.Value}
		e.copyTo(&out.checked)
		return out

	case *Var:
		out := &Var{Name: e.Name}
		e.copyTo(&out.checked)
		return out

	case *Null:
		out := &Null{Elem: e.Elem}
		e.copyTo(&out.checked)
		return out

	case *Binop:
		out := &Binop{Op: e.Op, Left: CopyExpr(e.Left), Right: CopyExpr(e.Right)}
		e.copyTo(&out.checked)
		return out

	case *If:
		out := &If{Pred: CopyExpr(e.Pred), Then: CopyExpr(e.Then), Else: CopyExpr(e.Else)}
		e.copyTo(&out.checked)
		return out

	case *Let:
		bindings := make([]LetBinding, len(e.Bindings))
		for i, b := range e.Bindings {
			bindings[i] = LetBinding{b.Var, CopyExpr(b.Value)}
		}
		out := &Let{Bindings: bindings, Body: CopyExpr(e.Body)}
		e.copyTo(&out.checked)
		return out

	case *Lambda:
		params := make([]Param, len(e.Params))
		copy(params, e.Params)
		out := &Lambda{Params: params, Return: e.Return, Body: CopyExpr(e.Body)}
		e.copyTo(&out.checked)
		return out

	case *Begin:
		out := &Begin{Exprs: copyExprs(e.Exprs)}
		e.copyTo(&out.checked)
		return out

	case *Set:
		out := &Set{Var: e.Var, Value: CopyExpr(e.Value)}
		e.copyTo(&out.checked)
		return out

	case *Cons:
		out := &Cons{Head: CopyExpr(e.Head), Tail: CopyExpr(e.Tail)}
		e.copyTo(&out.checked)
		return out

	case *Car:
		out := &Car{List: CopyExpr(e.List)}
		e.copyTo(&out.checked)
		return out

	case *Cdr:
		out := &Cdr{List: CopyExpr(e.List)}
		e.copyTo(&out.checked)
		return out

	case *IsNull:
		out := &IsNull{List: CopyExpr(e.List)}
		e.copyTo(&out.checked)
		return out

	case *Call:
		out := &Call{Func: CopyExpr(e.Func), Args: copyExprs(e.Args)}
		e.copyTo(&out.checked)
		return out

	case *Tuple:
		ts := make([]types.Type, len(e.Types))
		copy(ts, e.Types)
		out := &Tuple{Elems: copyExprs(e.Elems), Types: ts}
		e.copyTo(&out.checked)
		return out

	case *TupleGet:
		out := &TupleGet{Tuple: CopyExpr(e.Tuple), Index: CopyExpr(e.Index)}
		e.copyTo(&out.checked)
		return out

	case *Record:
		fields := make([]LabelValue, len(e.Fields))
		for i, f := range e.Fields {
			fields[i] = LabelValue{f.Label, CopyExpr(f.Value)}
		}
		out := &Record{Fields: fields}
		e.copyTo(&out.checked)
		return out

	case *RecordSelect:
		out := &RecordSelect{Record: CopyExpr(e.Record), Label: e.Label}
		e.copyTo(&out.checked)
		return out

	case *Pack:
		out := &Pack{Value: CopyExpr(e.Value), Witness: e.Witness, Exists: e.Exists}
		e.copyTo(&out.checked)
		return out

	case *Unpack:
		out := &Unpack{Var: e.Var, Package: CopyExpr(e.Package), TypeVar: e.TypeVar, Body: CopyExpr(e.Body)}
		e.copyTo(&out.checked)
		return out

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}

func copyExprs(es []Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = CopyExpr(e)
	}
	return out
}
