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

// Subst replaces every free occurrence of the type-variable id within t with repl.
//
// Substitution does not descend into a nested Exists which binds the same id; occurrences under
// such a binder refer to the inner binder. If t contains no free occurrence of id, t is returned unchanged.
func Subst(t Type, id int, repl Type) Type {
	switch t := t.(type) {
	case *Var:
		if t.Id == id {
			return repl
		}
		return t

	case *Const, Unknown:
		return t

	case *List:
		elem := Subst(t.Elem, id, repl)
		if elem == t.Elem {
			return t
		}
		return &List{Elem: elem}

	case *Arrow:
		params, changed := substList(t.Params, id, repl)
		ret := Subst(t.Return, id, repl)
		if !changed && ret == t.Return {
			return t
		}
		return &Arrow{Params: params, Return: ret}

	case *Tuple:
		elems, changed := substList(t.Elems, id, repl)
		if !changed {
			return t
		}
		return &Tuple{Elems: elems}

	case *Record:
		var b *FieldListBuilder
		t.Fields.Range(func(i int, f Field) bool {
			ft := Subst(f.Type, id, repl)
			if ft == f.Type {
				return true
			}
			if b == nil {
				b = t.Fields.Builder()
			}
			b.SetType(i, ft)
			return true
		})
		if b == nil {
			return t
		}
		return &Record{Fields: b.Build()}

	case *Exists:
		if t.Var == id {
			// shadowed
			return t
		}
		body := Subst(t.Body, id, repl)
		if body == t.Body {
			return t
		}
		return &Exists{Var: t.Var, Body: body}
	}
	panic("unexpected type " + t.TypeName())
}

func substList(l TypeList, id int, repl Type) (TypeList, bool) {
	var b TypeListBuilder
	changed := false
	l.Range(func(i int, t Type) bool {
		st := Subst(t, id, repl)
		if st == t {
			return true
		}
		if !changed {
			b, changed = l.Builder(), true
		}
		b.Set(i, st)
		return true
	})
	if !changed {
		return l, false
	}
	return b.Build(), true
}
