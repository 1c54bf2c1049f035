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

import (
	"strconv"
	"strings"

	"github.com/wdamron/exists/types"
)

// ExprString returns the surface syntax of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	switch et := e.(type) {
	case *Num:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *Bool:
		if et.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *Str:
		sb.WriteString(strconv.Quote(et.Value))

	case *Var:
		sb.WriteString(et.Name)

	case *Binop:
		sb.WriteByte('(')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, et.Left)
		sb.WriteByte(' ')
		exprString(sb, et.Right)
		sb.WriteByte(')')

	case *If:
		sb.WriteString("(if ")
		exprString(sb, et.Pred)
		sb.WriteByte(' ')
		exprString(sb, et.Then)
		sb.WriteByte(' ')
		exprString(sb, et.Else)
		sb.WriteByte(')')

	case *Let:
		sb.WriteString("(let (")
		for i, b := range et.Bindings {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('(')
			sb.WriteString(b.Var)
			sb.WriteByte(' ')
			exprString(sb, b.Value)
			sb.WriteByte(')')
		}
		sb.WriteString(") ")
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case *Lambda:
		sb.WriteString("(lambda (")
		for i, p := range et.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('(')
			sb.WriteString(p.Name)
			sb.WriteString(" : ")
			sb.WriteString(types.TypeString(p.Type))
			sb.WriteByte(')')
		}
		sb.WriteString(") : ")
		sb.WriteString(types.TypeString(et.Return))
		sb.WriteByte(' ')
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case *Begin:
		sb.WriteString("(begin")
		for _, sub := range et.Exprs {
			sb.WriteByte(' ')
			exprString(sb, sub)
		}
		sb.WriteByte(')')

	case *Set:
		sb.WriteString("(set! ")
		sb.WriteString(et.Var)
		sb.WriteByte(' ')
		exprString(sb, et.Value)
		sb.WriteByte(')')

	case *Cons:
		sb.WriteString("(cons ")
		exprString(sb, et.Head)
		sb.WriteByte(' ')
		exprString(sb, et.Tail)
		sb.WriteByte(')')

	case *Car:
		sb.WriteString("(car ")
		exprString(sb, et.List)
		sb.WriteByte(')')

	case *Cdr:
		sb.WriteString("(cdr ")
		exprString(sb, et.List)
		sb.WriteByte(')')

	case *IsNull:
		sb.WriteString("(null? ")
		exprString(sb, et.List)
		sb.WriteByte(')')

	case *Null:
		sb.WriteString("(null ")
		sb.WriteString(types.TypeString(et.Elem))
		sb.WriteByte(')')

	case *Call:
		sb.WriteByte('(')
		exprString(sb, et.Func)
		for _, arg := range et.Args {
			sb.WriteByte(' ')
			exprString(sb, arg)
		}
		sb.WriteByte(')')

	case *Tuple:
		sb.WriteString("(make-tuple (")
		for i, sub := range et.Elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			exprString(sb, sub)
		}
		sb.WriteString(") : (")
		for i, t := range et.Types {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(types.TypeString(t))
		}
		sb.WriteString("))")

	case *TupleGet:
		sb.WriteString("(get-nth ")
		exprString(sb, et.Tuple)
		sb.WriteByte(' ')
		exprString(sb, et.Index)
		sb.WriteByte(')')

	case *Record:
		sb.WriteString("(make-record")
		for _, f := range et.Fields {
			sb.WriteString(" (")
			sb.WriteString(f.Label)
			sb.WriteByte(' ')
			exprString(sb, f.Value)
			sb.WriteByte(')')
		}
		sb.WriteByte(')')

	case *RecordSelect:
		sb.WriteString("(record-ref ")
		exprString(sb, et.Record)
		sb.WriteByte(' ')
		sb.WriteString(et.Label)
		sb.WriteByte(')')

	case *Pack:
		sb.WriteString("(pack ")
		exprString(sb, et.Value)
		sb.WriteByte(' ')
		sb.WriteString(types.TypeString(et.Witness))
		sb.WriteByte(' ')
		sb.WriteString(types.TypeString(et.Exists))
		sb.WriteByte(')')

	case *Unpack:
		sb.WriteString("(unpack (")
		sb.WriteString(et.Var)
		sb.WriteByte(' ')
		exprString(sb, et.Package)
		if et.TypeVar != nil {
			sb.WriteByte(' ')
			sb.WriteString(types.TypeString(et.TypeVar))
		}
		sb.WriteString(") ")
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case nil:
		sb.WriteString("<nil>")
	}
}
