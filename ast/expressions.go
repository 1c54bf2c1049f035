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
	"sync/atomic"

	"github.com/wdamron/exists/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns the checked type of an expression, or types.Unknown if the expression
	// has not been checked successfully.
	Type() types.Type
	// SetType assigns the checked type of an expression. Only the first assignment takes effect.
	SetType(t types.Type)
}

var (
	_ Expr = (*Binop)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*Begin)(nil)
	_ Expr = (*Set)(nil)
	_ Expr = (*Cons)(nil)
	_ Expr = (*Car)(nil)
	_ Expr = (*Cdr)(nil)
	_ Expr = (*IsNull)(nil)
	_ Expr = (*Null)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*TupleGet)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*RecordSelect)(nil)
	_ Expr = (*Pack)(nil)
	_ Expr = (*Unpack)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Num)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Str)(nil)
)

// checked is a set-once cache for the type of an expression.
type checked struct {
	p atomic.Pointer[typeBox]
}

type typeBox struct{ t types.Type }

// Get the checked type of e.
func (c *checked) Type() types.Type {
	if b := c.p.Load(); b != nil {
		return b.t
	}
	return types.Unknown{}
}

// Assign the checked type of e. Type assignments should occur indirectly, during checking.
func (c *checked) SetType(t types.Type) {
	if types.IsUnknown(t) {
		return
	}
	c.p.CompareAndSwap(nil, &typeBox{t})
}

func (c *checked) copyTo(dst *checked) {
	if b := c.p.Load(); b != nil {
		dst.p.Store(b)
	}
}

// Binary operation: `(+ a b)`
type Binop struct {
	checked
	Op          BinOp
	Left, Right Expr
}

// "Binop"
func (e *Binop) ExprName() string { return "Binop" }

// Conditional: `(if p c a)`
type If struct {
	checked
	Pred, Then, Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Parallel let-bindings: `(let ((a 1) (b 2)) e)`
//
// Bindings are resolved against the enclosing scope and cannot refer to one another.
type Let struct {
	checked
	Bindings []LetBinding
	Body     Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Paired identifier and value
type LetBinding struct {
	Var   string
	Value Expr
}

// Abstraction with annotated parameters and return type: `(lambda ((x : int)) : int x)`
type Lambda struct {
	checked
	Params []Param
	Return types.Type
	Body   Expr
}

// "Lambda"
func (e *Lambda) ExprName() string { return "Lambda" }

// Paired parameter name and declared type
type Param struct {
	Name string
	Type types.Type
}

// Sequence: `(begin a b c)`
type Begin struct {
	checked
	Exprs []Expr
}

// "Begin"
func (e *Begin) ExprName() string { return "Begin" }

// Assignment: `(set! x e)`
type Set struct {
	checked
	Var   string
	Value Expr
}

// "Set"
func (e *Set) ExprName() string { return "Set" }

// List construction: `(cons h t)`
type Cons struct {
	checked
	Head, Tail Expr
}

// "Cons"
func (e *Cons) ExprName() string { return "Cons" }

// Head of a list: `(car l)`
type Car struct {
	checked
	List Expr
}

// "Car"
func (e *Car) ExprName() string { return "Car" }

// Tail of a list: `(cdr l)`
type Cdr struct {
	checked
	List Expr
}

// "Cdr"
func (e *Cdr) ExprName() string { return "Cdr" }

// Emptiness test: `(null? l)`
type IsNull struct {
	checked
	List Expr
}

// "IsNull"
func (e *IsNull) ExprName() string { return "IsNull" }

// Empty list with an element-type annotation: `(null int)`
type Null struct {
	checked
	Elem types.Type
}

// "Null"
func (e *Null) ExprName() string { return "Null" }

// Application: `(f x y)`
type Call struct {
	checked
	Func Expr
	Args []Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Tuple construction with element-type annotations: `(make-tuple (1 "a") : (int string))`
type Tuple struct {
	checked
	Elems []Expr
	Types []types.Type
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

// Tuple projection with a literal index: `(get-nth t 0)`
type TupleGet struct {
	checked
	Tuple Expr
	Index Expr
}

// "TupleGet"
func (e *TupleGet) ExprName() string { return "TupleGet" }

// Record construction: `(make-record (a 1) (b true))`
type Record struct {
	checked
	Fields []LabelValue
}

// "Record"
func (e *Record) ExprName() string { return "Record" }

// Paired label and value
type LabelValue struct {
	Label string
	Value Expr
}

// Selecting value of label: `(record-ref r a)`
type RecordSelect struct {
	checked
	Record Expr
	Label  string
}

// "RecordSelect"
func (e *RecordSelect) ExprName() string { return "RecordSelect" }

// Existential introduction: `(pack e int (exists T0 (-> T0 bool)))`
//
// Witness is the representation type which is hidden by Exists.
type Pack struct {
	checked
	Value   Expr
	Witness types.Type
	Exists  types.Type
}

// "Pack"
func (e *Pack) ExprName() string { return "Pack" }

// Existential elimination: `(unpack (x pkg T1) body)`
//
// Within Body, Var is bound to the contents of Package, typed in terms of TypeVar.
// If TypeVar is nil, a fresh type-variable is introduced during checking.
type Unpack struct {
	checked
	Var     string
	Package Expr
	TypeVar *types.Var
	Body    Expr
}

// "Unpack"
func (e *Unpack) ExprName() string { return "Unpack" }

// Variable
type Var struct {
	checked
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Integer literal
type Num struct {
	checked
	Value int64
}

// "Num"
func (e *Num) ExprName() string { return "Num" }

// Boolean literal
type Bool struct {
	checked
	Value bool
}

// "Bool"
func (e *Bool) ExprName() string { return "Bool" }

// String literal
type Str struct {
	checked
	Value string
}

// "Str"
func (e *Str) ExprName() string { return "Str" }
