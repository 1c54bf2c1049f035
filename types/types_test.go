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
	"math"
	"sync"
	"testing"
)

func exampleTypes() []Type {
	return []Type{
		Int,
		Bool,
		Str,
		NewVar(3),
		NewList(Int),
		NewList(NewList(Str)),
		NewArrow(nil, Int),
		NewArrow([]Type{Int, Bool}, Str),
		NewTuple(nil),
		NewTuple([]Type{Int, NewVar(0)}),
		newRecord(Field{"a", Int}, Field{"b", NewList(Bool)}),
		NewExists(0, NewArrow([]Type{NewVar(0)}, Bool)),
		NewExists(1, NewExists(2, NewTuple([]Type{NewVar(1), NewVar(2)}))),
		Unknown{},
	}
}

func newRecord(fields ...Field) *Record {
	fl, ok := NewFieldListFrom(fields)
	if !ok {
		panic("duplicate field")
	}
	return &Record{Fields: fl}
}

func TestEqualReflexive(t *testing.T) {
	for _, ty := range exampleTypes() {
		if !Equal(ty, ty) {
			t.Fatalf("expected %s to equal itself", TypeString(ty))
		}
	}
}

func TestEqualStructural(t *testing.T) {
	a := NewExists(0, NewArrow([]Type{NewVar(0), Int}, NewList(NewVar(0))))
	b := NewExists(0, NewArrow([]Type{NewVar(0), Int}, NewList(NewVar(0))))
	if !Equal(a, b) {
		t.Fatalf("expected independently built existentials to be equal")
	}
	if Equal(a, NewExists(1, NewArrow([]Type{NewVar(1), Int}, NewList(NewVar(1))))) {
		t.Fatalf("existentials with different ids must not be equal")
	}
	if Equal(a, NewExists(0, NewArrow([]Type{NewVar(0), Bool}, NewList(NewVar(0))))) {
		t.Fatalf("existentials with different bodies must not be equal")
	}
	if Equal(&Const{Name: "int"}, Bool) {
		t.Fatalf("int must not equal bool")
	}
	if !Equal(&Const{Name: "int"}, Int) {
		t.Fatalf("constants are compared by name")
	}
}

func TestEqualDistinguishesShapes(t *testing.T) {
	ts := exampleTypes()
	for i := range ts {
		for j := range ts {
			if i == j {
				continue
			}
			if Equal(ts[i], ts[j]) {
				t.Fatalf("expected %s != %s", TypeString(ts[i]), TypeString(ts[j]))
			}
		}
	}
}

func TestEqualRecordOrder(t *testing.T) {
	ab := newRecord(Field{"a", Int}, Field{"b", Bool})
	ba := newRecord(Field{"b", Bool}, Field{"a", Int})
	if Equal(ab, ba) {
		t.Fatalf("record fields are ordered")
	}
	if !Equal(ab, newRecord(Field{"a", Int}, Field{"b", Bool})) {
		t.Fatalf("expected equal records")
	}
}

func TestSubstIdentity(t *testing.T) {
	for _, ty := range exampleTypes() {
		if got := Subst(ty, 42, Int); got != ty {
			t.Fatalf("substitution without occurrences changed %s to %s", TypeString(ty), TypeString(got))
		}
	}
}

func TestSubstReplacesFreeOccurrences(t *testing.T) {
	ty := NewArrow([]Type{NewVar(0), NewList(NewVar(0))},
		newRecord(Field{"x", NewVar(0)}, Field{"y", NewTuple([]Type{NewVar(1), NewVar(0)})}))
	got := Subst(ty, 0, Str)
	expected := "(-> string (list string) (record (x string) (y (tuple T1 string))))"
	if s := TypeString(got); s != expected {
		t.Fatalf("expected %s, got %s", expected, s)
	}
	// the original type is unchanged
	if s := TypeString(ty); s != "(-> T0 (list T0) (record (x T0) (y (tuple T1 T0))))" {
		t.Fatalf("substitution mutated its input: %s", s)
	}
}

func TestSubstShadowedBinder(t *testing.T) {
	inner := NewExists(0, NewVar(0))
	outer := NewExists(0, inner)
	got := Subst(outer, 0, Int)
	if got != outer {
		t.Fatalf("expected substitution to stop at the binder, got %s", TypeString(got))
	}
	// Substituting into the body of the outer binder must leave the inner binder untouched:
	body := Subst(outer.Body, 0, Int)
	if body != inner || !Equal(body, NewExists(0, NewVar(0))) {
		t.Fatalf("shadowed binder was substituted: %s", TypeString(body))
	}
	// A free occurrence next to the shadowed binder is replaced:
	mixed := NewTuple([]Type{NewVar(0), NewExists(0, NewVar(0))})
	if s := TypeString(Subst(mixed, 0, Int)); s != "(tuple int (exists T0 T0))" {
		t.Fatalf("unexpected substitution: %s", s)
	}
}

func TestSubstNestedDifferentBinder(t *testing.T) {
	ty := NewExists(1, NewArrow([]Type{NewVar(1), NewVar(0)}, NewVar(0)))
	if s := TypeString(Subst(ty, 0, Bool)); s != "(exists T1 (-> T1 bool bool))" {
		t.Fatalf("unexpected substitution: %s", s)
	}
}

func TestFreeVars(t *testing.T) {
	ty := NewTuple([]Type{NewVar(0), NewExists(1, NewArrow([]Type{NewVar(1)}, NewVar(2)))})
	free := FreeVars(ty)
	if free.Size() != 2 || !free.Contains(0) || !free.Contains(2) || free.Contains(1) {
		t.Fatalf("unexpected free variables: %v", free.Slice())
	}
	if OccursFree(NewExists(0, NewExists(0, NewVar(0))), 0) {
		t.Fatalf("bound variable reported free")
	}
	if !MentionsVar(ty, 1) || MentionsVar(ty, 3) {
		t.Fatalf("unexpected mentioned variables")
	}
	if MaxVarId(ty) != 2 || MaxVarId(Int) != -1 {
		t.Fatalf("unexpected max id")
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		t        Type
		expected string
	}{
		{Int, "int"},
		{Bool, "bool"},
		{Str, "string"},
		{NewVar(7), "T7"},
		{NewList(Int), "(list int)"},
		{NewArrow(nil, Int), "(-> int)"},
		{NewArrow([]Type{Str, Int}, Bool), "(-> string int bool)"},
		{NewTuple(nil), "(tuple)"},
		{NewTuple([]Type{Int, Str}), "(tuple int string)"},
		{newRecord(Field{"a", Int}, Field{"b", Bool}), "(record (a int) (b bool))"},
		{NewExists(0, NewArrow([]Type{NewVar(0)}, Bool)), "(exists T0 (-> T0 bool))"},
		{Unknown{}, "unknown"},
	}
	for _, c := range cases {
		if s := TypeString(c.t); s != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, s)
		}
		if s := c.t.String(); s != c.expected {
			t.Fatalf("String(): expected %s, got %s", c.expected, s)
		}
	}
}

func TestFieldList(t *testing.T) {
	fl, ok := NewFieldListFrom([]Field{{"a", Int}, {"b", Bool}, {"a", Str}})
	if ok {
		t.Fatalf("expected duplicate field to be reported")
	}
	if fl.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", fl.Len())
	}
	if ft, ok := fl.Get("a"); !ok || ft != Int {
		t.Fatalf("expected first binding of a to be kept")
	}
	if _, ok := fl.Get("c"); ok {
		t.Fatalf("unexpected field c")
	}
	b := fl.Builder()
	b.SetType(1, Str)
	updated := b.Build()
	if ft, _ := updated.Get("b"); ft != Str {
		t.Fatalf("expected updated field type")
	}
	if ft, _ := fl.Get("b"); ft != Bool {
		t.Fatalf("builder mutated the original field list")
	}
}

func TestVarSupply(t *testing.T) {
	var s VarSupply
	if id := s.Fresh(); id != 0 {
		t.Fatalf("expected 0, got %d", id)
	}
	s.Reserve(10)
	if id := s.Fresh(); id != 11 {
		t.Fatalf("expected 11, got %d", id)
	}
	s.Reserve(3)
	if id := s.Fresh(); id != 12 {
		t.Fatalf("expected 12, got %d", id)
	}

	var top VarSupply
	top.Reserve(math.MaxInt)
	top.Reserve(3)
	if top.Peek() != math.MaxInt {
		t.Fatalf("reserving the largest id lowered the floor to %d", top.Peek())
	}

	var wg sync.WaitGroup
	seen := make([]int, 100)
	for i := range seen {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = s.Fresh()
		}(i)
	}
	wg.Wait()
	unique := make(map[int]bool, len(seen))
	for _, id := range seen {
		if unique[id] || id < 13 {
			t.Fatalf("duplicate or reserved id %d", id)
		}
		unique[id] = true
	}
}
