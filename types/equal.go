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

// Equal reports whether a and b are structurally equal.
//
// Type-variables are equal when their ids are equal. Existential types are equal only when they
// bind the same id and their bodies are equal; ids are unique within a program, so no renaming is attempted.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name

	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)

	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && equalLists(a.Params, b.Params) && Equal(a.Return, b.Return)

	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalLists(a.Elems, b.Elems)

	case *Record:
		b, ok := b.(*Record)
		if !ok || a.Fields.Len() != b.Fields.Len() {
			return false
		}
		eq := true
		a.Fields.Range(func(i int, fa Field) bool {
			fb := b.Fields.At(i)
			eq = fa.Name == fb.Name && Equal(fa.Type, fb.Type)
			return eq
		})
		return eq

	case *Exists:
		b, ok := b.(*Exists)
		return ok && a.Var == b.Var && Equal(a.Body, b.Body)

	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id

	case Unknown:
		_, ok := b.(Unknown)
		return ok

	case nil:
		return false
	}
	panic("unexpected type " + a.TypeName())
}

func equalLists(a, b TypeList) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	a.Range(func(i int, ta Type) bool {
		eq = Equal(ta, b.Get(i))
		return eq
	})
	return eq
}
