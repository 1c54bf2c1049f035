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
	"errors"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/types"
)

// FuncDecl is a top-level function declaration: `(define (f (x : int)) : int body)`
type FuncDecl struct {
	Name   string
	Params []ast.Param
	Return types.Type
	Body   ast.Expr
}

// Signature returns the declared function type of d.
func (d *FuncDecl) Signature() *types.Arrow {
	params := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		params[i] = p.Type
	}
	return types.NewArrow(params, d.Return)
}

// Program is an entry expression together with the function declarations visible to it.
type Program struct {
	Funcs []*FuncDecl
	Entry ast.Expr
}

// Check the declarations and the entry expression of prog, using a new checker.
func CheckProgram(prog *Program) (types.Type, error) { return NewChecker().CheckProgram(prog) }

// CheckProgram checks every declaration of prog, then returns the type of the entry expression.
//
// All declarations are visible to one another and to themselves. Checking stops at the first error;
// errors within a declaration are wrapped in a *DeclError.
func (c *Checker) CheckProgram(prog *Program) (types.Type, error) {
	env, err := c.declare(prog)
	if err != nil {
		return nil, err
	}
	for _, d := range prog.Funcs {
		if err := c.checkDecl(env, d); err != nil {
			return nil, err
		}
	}
	return c.check(env, prog.Entry)
}

// CheckProgramAll checks every declaration of prog independently, collecting the first error of each,
// then checks the entry expression. The entry type is nil if the entry expression failed to check.
func (c *Checker) CheckProgramAll(prog *Program) (types.Type, []error) {
	env, err := c.declare(prog)
	if err != nil {
		return nil, []error{err}
	}
	var errs []error
	for _, d := range prog.Funcs {
		if err := c.checkDecl(env, d); err != nil {
			errs = append(errs, err)
		}
	}
	t, err := c.check(env, prog.Entry)
	if err != nil {
		errs = append(errs, err)
		t = nil
	}
	return t, errs
}

// declare builds the top-level environment of prog.
func (c *Checker) declare(prog *Program) (*TypeEnv, error) {
	if prog == nil || prog.Entry == nil {
		return nil, errors.New("Empty program")
	}
	c.err, c.invalid = nil, nil
	seen := set.New[string](len(prog.Funcs))
	bindings := make([]Binding, len(prog.Funcs))
	for i, d := range prog.Funcs {
		if !seen.Insert(d.Name) {
			_, err := c.fail(d.Body, &TypeError{Kind: DuplicateDeclaration, Name: d.Name})
			return nil, err
		}
		bindings[i] = Binding{Name: d.Name, Type: d.Signature()}
	}
	env := NewTypeEnv().ExtendMany(bindings)
	for _, d := range prog.Funcs {
		c.reserve(d.Body, nil)
	}
	c.reserve(prog.Entry, env)
	return env, nil
}

func (c *Checker) checkDecl(env *TypeEnv, d *FuncDecl) error {
	if _, err := c.checkFunc(env, d.Name, d.Params, d.Return, d.Body); err != nil {
		return &DeclError{Decl: d.Name, Err: err}
	}
	return nil
}
