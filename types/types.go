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

package types

// Type is the base interface for all types.
//
// Types are immutable once constructed; operations which change a type (such as Subst)
// return a new type and share unchanged sub-terms with the original.
type Type interface {
	TypeName() string
	String() string
}

var (
	_ Type = (*Const)(nil)
	_ Type = (*List)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*Tuple)(nil)
	_ Type = (*Record)(nil)
	_ Type = (*Exists)(nil)
	_ Type = (*Var)(nil)
	_ Type = Unknown{}
)

func (t *Const) TypeName() string  { return "Const" }
func (t *List) TypeName() string   { return "List" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t *Tuple) TypeName() string  { return "Tuple" }
func (t *Record) TypeName() string { return "Record" }
func (t *Exists) TypeName() string { return "Exists" }
func (t *Var) TypeName() string    { return "Var" }
func (t Unknown) TypeName() string { return "Unknown" }

func (t *Const) String() string  { return TypeString(t) }
func (t *List) String() string   { return TypeString(t) }
func (t *Arrow) String() string  { return TypeString(t) }
func (t *Tuple) String() string  { return TypeString(t) }
func (t *Record) String() string { return TypeString(t) }
func (t *Exists) String() string { return TypeString(t) }
func (t *Var) String() string    { return TypeString(t) }
func (t Unknown) String() string { return "unknown" }

// Type constant: `int`, `bool` or `string`
type Const struct {
	Name string
}

// Predeclared type constants
var (
	Int  = &Const{Name: "int"}
	Bool = &Const{Name: "bool"}
	Str  = &Const{Name: "string"}
)

// Homogeneous list: `(list int)`
type List struct {
	Elem Type
}

// Function type: `(-> int int bool)`
type Arrow struct {
	Params TypeList
	Return Type
}

// Tuple type: `(tuple int string)`
type Tuple struct {
	Elems TypeList
}

// Record type with ordered, uniquely named fields: `(record (a int) (b bool))`
type Record struct {
	Fields FieldList
}

// Existential type: `(exists T0 (-> T0 bool))`
//
// Var is the id of the bound type-variable; Body is expressed in terms of Var.
type Exists struct {
	Var  int
	Body Type
}

// Type-variable: `T0`
//
// A type-variable is only meaningful within the scope of an Exists (or an unpacked package)
// which binds the same id.
type Var struct {
	Id int
}

// Placeholder for a type which has not been checked. The checker never produces Unknown.
type Unknown struct{}

// Create a list type.
func NewList(elem Type) *List { return &List{Elem: elem} }

// Create a function type.
func NewArrow(params []Type, ret Type) *Arrow {
	return &Arrow{Params: NewTypeListFrom(params), Return: ret}
}

// Create a tuple type.
func NewTuple(elems []Type) *Tuple { return &Tuple{Elems: NewTypeListFrom(elems)} }

// Create an existential type.
func NewExists(id int, body Type) *Exists { return &Exists{Var: id, Body: body} }

// Create a type-variable.
func NewVar(id int) *Var { return &Var{Id: id} }

// IsUnknown returns true if t is nil or the Unknown placeholder.
func IsUnknown(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(Unknown)
	return ok
}
