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

// construct provides shorthand constructors for types and expressions.
package construct

import (
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/types"
)

// Types

// Integer type: `int`
func TInt() *types.Const { return types.Int }

// Boolean type: `bool`
func TBool() *types.Const { return types.Bool }

// String type: `string`
func TStr() *types.Const { return types.Str }

// Type-variable: `T0`
func TVar(id int) *types.Var { return types.NewVar(id) }

// List type: `(list int)`
func TList(elem types.Type) *types.List { return types.NewList(elem) }

// Function type: `(-> int int bool)`
func TArrow(params []types.Type, ret types.Type) *types.Arrow { return types.NewArrow(params, ret) }

// Function type: `(-> int bool)`
func TArrow1(param types.Type, ret types.Type) *types.Arrow {
	return types.NewArrow([]types.Type{param}, ret)
}

// Function type: `(-> int int bool)`
func TArrow2(param1, param2 types.Type, ret types.Type) *types.Arrow {
	return types.NewArrow([]types.Type{param1, param2}, ret)
}

// Tuple type: `(tuple int string)`
func TTuple(elems ...types.Type) *types.Tuple { return types.NewTuple(elems) }

// Record type: `(record (a int) (b bool))`. Repeated field names are dropped.
func TRecord(fields ...types.Field) *types.Record {
	fl, _ := types.NewFieldListFrom(fields)
	return &types.Record{Fields: fl}
}

// Record field type: `(a int)`
func TField(name string, t types.Type) types.Field { return types.Field{Name: name, Type: t} }

// Existential type: `(exists T0 (-> T0 bool))`
func TExists(id int, body types.Type) *types.Exists { return types.NewExists(id, body) }

// Expressions:

// Integer literal
func Num(v int64) *ast.Num { return &ast.Num{Value: v} }

// Boolean literal
func Bool(v bool) *ast.Bool { return &ast.Bool{Value: v} }

// String literal
func Str(v string) *ast.Str { return &ast.Str{Value: v} }

// Variable
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Binary operation: `(+ a b)`
func Binop(op ast.BinOp, left, right ast.Expr) *ast.Binop {
	return &ast.Binop{Op: op, Left: left, Right: right}
}

// Conditional: `(if p c a)`
func If(pred, then, els ast.Expr) *ast.If { return &ast.If{Pred: pred, Then: then, Else: els} }

// Parallel let-bindings: `(let ((a 1) (b 2)) e)`
func Let(bindings []ast.LetBinding, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: bindings, Body: body}
}

// Single let-binding: `(let ((a 1)) e)`
func Let1(name string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Bindings: []ast.LetBinding{{Var: name, Value: value}}, Body: body}
}

// Paired identifier and value
func LetBinding(name string, value ast.Expr) ast.LetBinding {
	return ast.LetBinding{Var: name, Value: value}
}

// Abstraction: `(lambda ((x : int)) : int x)`
func Lambda(params []ast.Param, ret types.Type, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Params: params, Return: ret, Body: body}
}

// Paired parameter name and type: `(x : int)`
func Param(name string, t types.Type) ast.Param { return ast.Param{Name: name, Type: t} }

// Sequence: `(begin a b)`
func Begin(exprs ...ast.Expr) *ast.Begin { return &ast.Begin{Exprs: exprs} }

// Assignment: `(set! x e)`
func Set(name string, value ast.Expr) *ast.Set { return &ast.Set{Var: name, Value: value} }

// List construction: `(cons h t)`
func Cons(head, tail ast.Expr) *ast.Cons { return &ast.Cons{Head: head, Tail: tail} }

// Head of a list: `(car l)`
func Car(list ast.Expr) *ast.Car { return &ast.Car{List: list} }

// Tail of a list: `(cdr l)`
func Cdr(list ast.Expr) *ast.Cdr { return &ast.Cdr{List: list} }

// Emptiness test: `(null? l)`
func IsNull(list ast.Expr) *ast.IsNull { return &ast.IsNull{List: list} }

// Empty list: `(null int)`
func Null(elem types.Type) *ast.Null { return &ast.Null{Elem: elem} }

// Application: `(f x y)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: f, Args: args} }

// Tuple construction: `(make-tuple (1 "a") : (int string))`
func Tuple(elems []ast.Expr, ts []types.Type) *ast.Tuple {
	return &ast.Tuple{Elems: elems, Types: ts}
}

// Tuple projection: `(get-nth t i)`
func TupleGet(tuple ast.Expr, index ast.Expr) *ast.TupleGet {
	return &ast.TupleGet{Tuple: tuple, Index: index}
}

// Record construction: `(make-record (a 1) (b true))`
func Record(fields ...ast.LabelValue) *ast.Record { return &ast.Record{Fields: fields} }

// Paired label and value
func LabelValue(label string, value ast.Expr) ast.LabelValue {
	return ast.LabelValue{Label: label, Value: value}
}

// Selecting value of label: `(record-ref r a)`
func RecordSelect(record ast.Expr, label string) *ast.RecordSelect {
	return &ast.RecordSelect{Record: record, Label: label}
}

// Existential introduction: `(pack e witness (exists T0 ...))`
func Pack(value ast.Expr, witness types.Type, exists types.Type) *ast.Pack {
	return &ast.Pack{Value: value, Witness: witness, Exists: exists}
}

// Existential elimination: `(unpack (x pkg T1) body)`. A nil typeVar requests a fresh type-variable.
func Unpack(name string, pkg ast.Expr, typeVar *types.Var, body ast.Expr) *ast.Unpack {
	return &ast.Unpack{Var: name, Package: pkg, TypeVar: typeVar, Body: body}
}
