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

// WalkExpr calls f for e and each of its sub-expressions, in depth-first order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Var, *Num, *Bool, *Str, *Null:
		f(e)

	case *Binop:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *If:
		f(e)
		WalkExpr(e.Pred, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Let:
		f(e)
		for _, b := range e.Bindings {
			WalkExpr(b.Value, f)
		}
		WalkExpr(e.Body, f)

	case *Lambda:
		f(e)
		WalkExpr(e.Body, f)

	case *Begin:
		f(e)
		for _, sub := range e.Exprs {
			WalkExpr(sub, f)
		}

	case *Set:
		f(e)
		WalkExpr(e.Value, f)

	case *Cons:
		f(e)
		WalkExpr(e.Head, f)
		WalkExpr(e.Tail, f)

	case *Car:
		f(e)
		WalkExpr(e.List, f)

	case *Cdr:
		f(e)
		WalkExpr(e.List, f)

	case *IsNull:
		f(e)
		WalkExpr(e.List, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Tuple:
		f(e)
		for _, sub := range e.Elems {
			WalkExpr(sub, f)
		}

	case *TupleGet:
		f(e)
		WalkExpr(e.Tuple, f)
		WalkExpr(e.Index, f)

	case *Record:
		f(e)
		for _, fld := range e.Fields {
			WalkExpr(fld.Value, f)
		}

	case *RecordSelect:
		f(e)
		WalkExpr(e.Record, f)

	case *Pack:
		f(e)
		WalkExpr(e.Value, f)

	case *Unpack:
		f(e)
		WalkExpr(e.Package, f)
		WalkExpr(e.Body, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// WalkAnnotations calls f for each type annotation written within e.
func WalkAnnotations(e Expr, f func(types.Type)) {
	WalkExpr(e, func(sub Expr) {
		switch sub := sub.(type) {
		case *Lambda:
			for _, p := range sub.Params {
				f(p.Type)
			}
			f(sub.Return)
		case *Null:
			f(sub.Elem)
		case *Tuple:
			for _, t := range sub.Types {
				f(t)
			}
		case *Pack:
			f(sub.Witness)
			f(sub.Exists)
		case *Unpack:
			if sub.TypeVar != nil {
				f(sub.TypeVar)
			}
		}
	})
}
