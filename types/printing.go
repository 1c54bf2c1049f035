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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns the canonical representation of a Type, matching the syntax of type annotations:
//
//  int, bool, string, T0, (list int), (-> int int bool), (tuple int string),
//  (record (a int) (b bool)), (exists T0 (-> T0 bool))
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, t)
	s := p.sb.String()
	p.Release()
	return s
}

// VarName returns the surface name of a type-variable id, e.g. T0.
func VarName(id int) string { return "T" + strconv.Itoa(id) }

func typeString(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Const:
		p.sb.WriteString(t.Name)

	case *Var:
		p.sb.WriteString(VarName(t.Id))

	case *List:
		p.sb.WriteString("(list ")
		typeString(p, t.Elem)
		p.sb.WriteByte(')')

	case *Arrow:
		p.sb.WriteString("(->")
		t.Params.Range(func(_ int, param Type) bool {
			p.sb.WriteByte(' ')
			typeString(p, param)
			return true
		})
		p.sb.WriteByte(' ')
		typeString(p, t.Return)
		p.sb.WriteByte(')')

	case *Tuple:
		p.sb.WriteString("(tuple")
		t.Elems.Range(func(_ int, elem Type) bool {
			p.sb.WriteByte(' ')
			typeString(p, elem)
			return true
		})
		p.sb.WriteByte(')')

	case *Record:
		p.sb.WriteString("(record")
		t.Fields.Range(func(_ int, f Field) bool {
			p.sb.WriteString(" (")
			p.sb.WriteString(f.Name)
			p.sb.WriteByte(' ')
			typeString(p, f.Type)
			p.sb.WriteByte(')')
			return true
		})
		p.sb.WriteByte(')')

	case *Exists:
		p.sb.WriteString("(exists ")
		p.sb.WriteString(VarName(t.Var))
		p.sb.WriteByte(' ')
		typeString(p, t.Body)
		p.sb.WriteByte(')')

	case Unknown, nil:
		p.sb.WriteString("unknown")
	}
}
