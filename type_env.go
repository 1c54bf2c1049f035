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

package exists

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/exists/types"
)

var emptyBindings = immutable.NewList()

// Binding pairs an identifier with its declared type.
type Binding struct {
	Name string
	Type types.Type
}

// TypeEnv is a persistent type-environment containing mappings from identifiers to declared types.
//
// Extending a type-environment returns a new environment which shares structure with its parent;
// the parent is never modified. A type-environment may be shared across goroutines, and independently
// extended by each of them. A nil *TypeEnv is an empty environment.
type TypeEnv struct {
	// most recently added bindings first
	bindings *immutable.List
}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return &TypeEnv{bindings: emptyBindings} }

func (e *TypeEnv) list() *immutable.List {
	if e == nil || e.bindings == nil {
		return emptyBindings
	}
	return e.bindings
}

// Extend returns a new environment in which name is bound to t. An existing binding for name is shadowed.
func (e *TypeEnv) Extend(name string, t types.Type) *TypeEnv {
	return &TypeEnv{bindings: e.list().Prepend(Binding{Name: name, Type: t})}
}

// ExtendMany returns a new environment with each binding added in order. Later bindings shadow earlier
// bindings with the same name. The bindings are not visible to one another; types are resolved by the caller
// against e before extension.
func (e *TypeEnv) ExtendMany(bindings []Binding) *TypeEnv {
	if len(bindings) == 0 {
		return e
	}
	l := e.list()
	for _, b := range bindings {
		l = l.Prepend(b)
	}
	return &TypeEnv{bindings: l}
}

// Lookup the type for an identifier. The most recently added binding for name is returned.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	var found types.Type
	e.Range(func(b Binding) bool {
		if b.Name == name {
			found = b.Type
			return false
		}
		return true
	})
	return found, found != nil
}

// Get the number of bindings, including shadowed bindings.
func (e *TypeEnv) Len() int { return e.list().Len() }

// Iterate over bindings, most recently added first. Shadowed bindings are included.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(Binding) bool) {
	iter := e.list().Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		if !f(v.(Binding)) {
			return
		}
	}
}
