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

import (
	"github.com/hashicorp/go-set/v2"
)

// FreeVars returns the ids of type-variables which occur free within t.
func FreeVars(t Type) *set.Set[int] {
	free := set.New[int](0)
	collectFreeVars(t, set.New[int](0), free)
	return free
}

// OccursFree reports whether the type-variable id occurs free within t.
func OccursFree(t Type, id int) bool { return FreeVars(t).Contains(id) }

func collectFreeVars(t Type, bound, free *set.Set[int]) {
	switch t := t.(type) {
	case *Var:
		if !bound.Contains(t.Id) {
			free.Insert(t.Id)
		}

	case *Const, Unknown:

	case *List:
		collectFreeVars(t.Elem, bound, free)

	case *Arrow:
		t.Params.Range(func(_ int, p Type) bool {
			collectFreeVars(p, bound, free)
			return true
		})
		collectFreeVars(t.Return, bound, free)

	case *Tuple:
		t.Elems.Range(func(_ int, e Type) bool {
			collectFreeVars(e, bound, free)
			return true
		})

	case *Record:
		t.Fields.Range(func(_ int, f Field) bool {
			collectFreeVars(f.Type, bound, free)
			return true
		})

	case *Exists:
		if bound.Contains(t.Var) {
			collectFreeVars(t.Body, bound, free)
			return
		}
		bound.Insert(t.Var)
		collectFreeVars(t.Body, bound, free)
		bound.Remove(t.Var)

	default:
		panic("unexpected type " + t.TypeName())
	}
}

// MentionsVar reports whether the type-variable id occurs anywhere within t, free or as a binder.
func MentionsVar(t Type, id int) bool {
	found := false
	visitVarIds(t, func(v int) {
		if v == id {
			found = true
		}
	})
	return found
}

// MaxVarId returns the largest type-variable id mentioned anywhere within t (free or bound),
// or -1 if t mentions no type-variables.
func MaxVarId(t Type) int {
	max := -1
	visitVarIds(t, func(id int) {
		if id > max {
			max = id
		}
	})
	return max
}

func visitVarIds(t Type, f func(int)) {
	switch t := t.(type) {
	case *Var:
		f(t.Id)
	case *List:
		visitVarIds(t.Elem, f)
	case *Arrow:
		t.Params.Range(func(_ int, p Type) bool {
			visitVarIds(p, f)
			return true
		})
		visitVarIds(t.Return, f)
	case *Tuple:
		t.Elems.Range(func(_ int, e Type) bool {
			visitVarIds(e, f)
			return true
		})
	case *Record:
		t.Fields.Range(func(_ int, fld Field) bool {
			visitVarIds(fld.Type, f)
			return true
		})
	case *Exists:
		f(t.Var)
		visitVarIds(t.Body, f)
	}
}
