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
	"github.com/benbjohnson/immutable"
)

var emptyIndex = immutable.NewSortedMap(nil)

var EmptyFieldList = FieldList{emptyList, emptyIndex}

// Field is a named entry within a record type.
type Field struct {
	Name string
	Type Type
}

// FieldList contains immutable, ordered mappings from field names to types.
// Field names are unique; fields are kept in declaration order.
type FieldList struct {
	l   *immutable.List
	idx *immutable.SortedMap // name -> position
}

func NewFieldList() FieldList { return EmptyFieldList }

// Create a FieldList from fields in declaration order. The second result is false if
// a field name was repeated; the repeated field is dropped.
func NewFieldListFrom(fields []Field) (FieldList, bool) {
	b := NewFieldListBuilder()
	unique := true
	for _, f := range fields {
		if !b.Add(f.Name, f.Type) {
			unique = false
		}
	}
	return b.Build(), unique
}

// Get the number of fields.
func (m FieldList) Len() int {
	if m.l == nil {
		return 0
	}
	return m.l.Len()
}

// Get the field at position i, in declaration order.
func (m FieldList) At(i int) Field { return m.l.Get(i).(Field) }

// Get the type of the named field.
func (m FieldList) Get(name string) (Type, bool) {
	if m.idx == nil {
		return nil, false
	}
	i, ok := m.idx.Get(name)
	if !ok {
		return nil, false
	}
	return m.At(i.(int)).Type, true
}

// Iterate over fields in declaration order.
// If f returns false, iteration will be stopped.
func (m FieldList) Range(f func(int, Field) bool) {
	if m.l == nil {
		return
	}
	iter := m.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Field)) {
			return
		}
	}
}

// Convert the list to a builder for modification, without mutating the existing list.
func (m FieldList) Builder() *FieldListBuilder {
	l, idx := m.l, m.idx
	if l == nil {
		l, idx = emptyList, emptyIndex
	}
	names := make([]string, 0, m.Len())
	m.Range(func(_ int, f Field) bool {
		names = append(names, f.Name)
		return true
	})
	return &FieldListBuilder{immutable.NewListBuilder(l), immutable.NewSortedMapBuilder(idx), names}
}

// FieldListBuilder enables in-place updates of a field list before finalization.
type FieldListBuilder struct {
	l     *immutable.ListBuilder
	idx   *immutable.SortedMapBuilder
	names []string
}

func NewFieldListBuilder() *FieldListBuilder {
	return &FieldListBuilder{l: immutable.NewListBuilder(emptyList), idx: immutable.NewSortedMapBuilder(emptyIndex)}
}

// Get the number of fields in the builder.
func (b *FieldListBuilder) Len() int { return len(b.names) }

// Append a field. Returns false (and leaves the builder unchanged) if the name is already present.
func (b *FieldListBuilder) Add(name string, t Type) bool {
	if _, exists := b.idx.Get(name); exists {
		return false
	}
	b.idx.Set(name, len(b.names))
	b.l.Append(Field{Name: name, Type: t})
	b.names = append(b.names, name)
	return true
}

// Replace the type of the field at position i.
func (b *FieldListBuilder) SetType(i int, t Type) {
	b.l.Set(i, Field{Name: b.names[i], Type: t})
}

// Finalize the builder into an immutable list.
func (b *FieldListBuilder) Build() FieldList {
	return FieldList{b.l.List(), b.idx.Map()}
}
