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

// Checker is a reusable context for type checking.
//
// A checker cannot be used concurrently; create a checker for each goroutine. Checkers which
// check parts of the same program should share a single VarSupply (see NewCheckerWithSupply).
type Checker struct {
	supply  *types.VarSupply
	err     error
	invalid ast.Expr
}

// Create a new checker with its own type-variable supply.
func NewChecker() *Checker { return &Checker{supply: &types.VarSupply{}} }

// Create a new checker which draws fresh type-variables from supply.
func NewCheckerWithSupply(supply *types.VarSupply) *Checker {
	if supply == nil {
		supply = &types.VarSupply{}
	}
	return &Checker{supply: supply}
}

// Get the type-variable supply of the checker.
func (c *Checker) Supply() *types.VarSupply { return c.supply }

// Get the error which caused the most recent check to fail.
func (c *Checker) Error() error { return c.err }

// Get the expression which caused the most recent check to fail.
func (c *Checker) InvalidExpr() ast.Expr { return c.invalid }

// Check the type of expr within env.
//
// Each successfully checked sub-expression of expr records its type (see ast.Expr.Type); recorded types
// are never consulted during checking, so repeated checks of the same expression are independent.
func (c *Checker) Check(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	c.err, c.invalid = nil, nil
	c.reserve(expr, env)
	return c.check(env, expr)
}

// Check the type of expr within an empty environment.
func (c *Checker) CheckTop(expr ast.Expr) (types.Type, error) { return c.Check(expr, NewTypeEnv()) }

// Check the type of expr within env. The type-annotated copy of expr will be returned; expr is not modified.
func (c *Checker) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	root := ast.CopyExpr(expr)
	_, err := c.Check(root, env)
	return root, err
}

// Check the type of expr within env, using a new checker.
func Check(expr ast.Expr, env *TypeEnv) (types.Type, error) { return NewChecker().Check(expr, env) }

// Check the type of expr within an empty environment, using a new checker.
func CheckTop(expr ast.Expr) (types.Type, error) { return NewChecker().CheckTop(expr) }

// Fresh type-variables must not collide with ids written in the program.
func (c *Checker) reserve(expr ast.Expr, env *TypeEnv) {
	ast.WalkAnnotations(expr, c.supply.ReserveType)
	env.Range(func(b Binding) bool {
		c.supply.ReserveType(b.Type)
		return true
	})
}

func (c *Checker) fail(e ast.Expr, err *TypeError) (types.Type, error) {
	if err.Expr == nil {
		err.Expr = e
	}
	c.invalid, c.err = err.Expr, err
	return nil, err
}

func (c *Checker) check(env *TypeEnv, e ast.Expr) (types.Type, error) {
	t, err := c.checkExpr(env, e)
	if err != nil {
		return nil, err
	}
	e.SetType(t)
	return t, nil
}

func (c *Checker) expect(e ast.Expr, context string, expected, found types.Type) error {
	if types.Equal(expected, found) {
		return nil
	}
	_, err := c.fail(e, &TypeError{Kind: TypeMismatch, Expected: expected, Found: found, Context: context})
	return err
}

func (c *Checker) checkExpr(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Num:
		return types.Int, nil

	case *ast.Bool:
		return types.Bool, nil

	case *ast.Str:
		return types.Str, nil

	case *ast.Var:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return c.fail(e, &TypeError{Kind: UnboundVariable, Name: e.Name})
		}
		return t, nil

	case *ast.Binop:
		lt, err := c.check(env, e.Left)
		if err != nil {
			return nil, err
		}
		rt, err := c.check(env, e.Right)
		if err != nil {
			return nil, err
		}
		op := e.Op.String()
		switch {
		case e.Op.IsArithmetic(), e.Op.IsOrdering():
			if err := c.expect(e.Left, op, types.Int, lt); err != nil {
				return nil, err
			}
			if err := c.expect(e.Right, op, types.Int, rt); err != nil {
				return nil, err
			}
			if e.Op.IsOrdering() {
				return types.Bool, nil
			}
			return types.Int, nil

		case e.Op == ast.EqualTo:
			if err := c.expect(e.Right, op, lt, rt); err != nil {
				return nil, err
			}
			return types.Bool, nil

		case e.Op.IsLogical():
			if err := c.expect(e.Left, op, types.Bool, lt); err != nil {
				return nil, err
			}
			if err := c.expect(e.Right, op, types.Bool, rt); err != nil {
				return nil, err
			}
			return types.Bool, nil

		case e.Op == ast.Concat:
			if err := c.expect(e.Left, op, types.Str, lt); err != nil {
				return nil, err
			}
			if err := c.expect(e.Right, op, types.Str, rt); err != nil {
				return nil, err
			}
			return types.Str, nil
		}
		return nil, errors.New("Unknown operator " + op)

	case *ast.If:
		pt, err := c.check(env, e.Pred)
		if err != nil {
			return nil, err
		}
		if !types.Equal(pt, types.Bool) {
			return c.fail(e.Pred, &TypeError{Kind: NotABoolean, Expected: types.Bool, Found: pt})
		}
		tt, err := c.check(env, e.Then)
		if err != nil {
			return nil, err
		}
		et, err := c.check(env, e.Else)
		if err != nil {
			return nil, err
		}
		if !types.Equal(tt, et) {
			return c.fail(e, &TypeError{Kind: BranchTypeMismatch, Expected: tt, Found: et})
		}
		return tt, nil

	case *ast.Let:
		bindings := make([]Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			// Bindings cannot see one another:
			t, err := c.check(env, b.Value)
			if err != nil {
				return nil, err
			}
			bindings[i] = Binding{Name: b.Var, Type: t}
		}
		return c.check(env.ExtendMany(bindings), e.Body)

	case *ast.Lambda:
		ft, err := c.checkFunc(env, "", e.Params, e.Return, e.Body)
		if err != nil {
			return nil, err
		}
		return ft, nil

	case *ast.Call:
		ft, err := c.check(env, e.Func)
		if err != nil {
			return nil, err
		}
		arrow, ok := ft.(*types.Arrow)
		if !ok {
			return c.fail(e.Func, &TypeError{Kind: NotAFunction, Found: ft})
		}
		if arrow.Params.Len() != len(e.Args) {
			return c.fail(e, &TypeError{Kind: ArityMismatch, Context: ast.ExprString(e.Func),
				ExpectedLen: arrow.Params.Len(), FoundLen: len(e.Args)})
		}
		for i, arg := range e.Args {
			at, err := c.check(env, arg)
			if err != nil {
				return nil, err
			}
			if pt := arrow.Params.Get(i); !types.Equal(pt, at) {
				return c.fail(arg, &TypeError{Kind: ArgTypeMismatch, Expected: pt, Found: at, Index: i})
			}
		}
		return arrow.Return, nil

	case *ast.Begin:
		if len(e.Exprs) == 0 {
			return c.fail(e, &TypeError{Kind: EmptyBegin})
		}
		var last types.Type
		for _, sub := range e.Exprs {
			t, err := c.check(env, sub)
			if err != nil {
				return nil, err
			}
			last = t
		}
		return last, nil

	case *ast.Set:
		vt, ok := env.Lookup(e.Var)
		if !ok {
			return c.fail(e, &TypeError{Kind: UnboundVariable, Name: e.Var})
		}
		t, err := c.check(env, e.Value)
		if err != nil {
			return nil, err
		}
		if !types.Equal(vt, t) {
			return c.fail(e.Value, &TypeError{Kind: AssignTypeMismatch, Name: e.Var, Expected: vt, Found: t})
		}
		return vt, nil

	case *ast.Cons:
		ht, err := c.check(env, e.Head)
		if err != nil {
			return nil, err
		}
		tt, err := c.check(env, e.Tail)
		if err != nil {
			return nil, err
		}
		lt := types.NewList(ht)
		if !types.Equal(lt, tt) {
			return c.fail(e.Tail, &TypeError{Kind: ListElementMismatch, Expected: lt, Found: tt})
		}
		return lt, nil

	case *ast.Car:
		lt, err := c.checkList(env, e.List, "car")
		if err != nil {
			return nil, err
		}
		return lt.Elem, nil

	case *ast.Cdr:
		lt, err := c.checkList(env, e.List, "cdr")
		if err != nil {
			return nil, err
		}
		return lt, nil

	case *ast.IsNull:
		if _, err := c.checkList(env, e.List, "null?"); err != nil {
			return nil, err
		}
		return types.Bool, nil

	case *ast.Null:
		return types.NewList(e.Elem), nil

	case *ast.Tuple:
		if len(e.Elems) != len(e.Types) {
			return c.fail(e, &TypeError{Kind: ArityMismatch, Context: "make-tuple",
				ExpectedLen: len(e.Types), FoundLen: len(e.Elems)})
		}
		for i, sub := range e.Elems {
			t, err := c.check(env, sub)
			if err != nil {
				return nil, err
			}
			if !types.Equal(e.Types[i], t) {
				return c.fail(sub, &TypeError{Kind: TupleElementMismatch, Expected: e.Types[i], Found: t, Index: i})
			}
		}
		return types.NewTuple(e.Types), nil

	case *ast.TupleGet:
		t, err := c.check(env, e.Tuple)
		if err != nil {
			return nil, err
		}
		tuple, ok := t.(*types.Tuple)
		if !ok {
			return c.fail(e.Tuple, &TypeError{Kind: NotATuple, Found: t})
		}
		index, ok := e.Index.(*ast.Num)
		if !ok {
			return c.fail(e.Index, &TypeError{Kind: NotAConstantIndex})
		}
		if index.Value < 0 || index.Value >= int64(tuple.Elems.Len()) {
			return c.fail(e.Index, &TypeError{Kind: IndexOutOfBounds, Found: tuple, Index: int(index.Value)})
		}
		index.SetType(types.Int)
		return tuple.Elems.Get(int(index.Value)), nil

	case *ast.Record:
		seen := set.New[string](len(e.Fields))
		for _, f := range e.Fields {
			if !seen.Insert(f.Label) {
				return c.fail(e, &TypeError{Kind: DuplicateField, Name: f.Label})
			}
		}
		fields := types.NewFieldListBuilder()
		for _, f := range e.Fields {
			t, err := c.check(env, f.Value)
			if err != nil {
				return nil, err
			}
			fields.Add(f.Label, t)
		}
		return &types.Record{Fields: fields.Build()}, nil

	case *ast.RecordSelect:
		t, err := c.check(env, e.Record)
		if err != nil {
			return nil, err
		}
		record, ok := t.(*types.Record)
		if !ok {
			return c.fail(e.Record, &TypeError{Kind: NotARecord, Found: t})
		}
		ft, ok := record.Fields.Get(e.Label)
		if !ok {
			return c.fail(e, &TypeError{Kind: UnknownField, Name: e.Label, Found: record})
		}
		return ft, nil

	case *ast.Pack:
		ex, ok := e.Exists.(*types.Exists)
		if !ok {
			return c.fail(e, &TypeError{Kind: NotAnExistential, Context: "pack", Found: e.Exists})
		}
		vt, err := c.check(env, e.Value)
		if err != nil {
			return nil, err
		}
		expected := types.Subst(ex.Body, ex.Var, e.Witness)
		if !types.Equal(expected, vt) {
			return c.fail(e.Value, &TypeError{Kind: ExistentialPackMismatch, Expected: expected, Found: vt})
		}
		// The witness is hidden:
		return ex, nil

	case *ast.Unpack:
		pt, err := c.check(env, e.Package)
		if err != nil {
			return nil, err
		}
		ex, ok := pt.(*types.Exists)
		if !ok {
			return c.fail(e.Package, &TypeError{Kind: NotAnExistential, Context: "unpack", Found: pt})
		}
		tv := e.TypeVar
		if tv == nil {
			tv = c.supply.NewVar()
		} else if err := c.checkUnpackVar(env, e, ex, tv); err != nil {
			return nil, err
		}
		bodyEnv := env.Extend(e.Var, types.Subst(ex.Body, ex.Var, tv))
		bt, err := c.check(bodyEnv, e.Body)
		if err != nil {
			return nil, err
		}
		if types.OccursFree(bt, tv.Id) {
			return c.fail(e.Body, &TypeError{Kind: EscapingTypeVariable, Name: types.VarName(tv.Id), Found: bt})
		}
		return bt, nil

	case nil:
		return nil, errors.New("Empty expression")
	}
	panic("unknown expression type: " + e.ExprName())
}

// A named type-variable must not already be in scope, and substituting it into the package body
// must not capture it under a nested binder.
func (c *Checker) checkUnpackVar(env *TypeEnv, e *ast.Unpack, ex *types.Exists, tv *types.Var) error {
	var found types.Type
	env.Range(func(b Binding) bool {
		if types.OccursFree(b.Type, tv.Id) {
			found = b.Type
			return false
		}
		return true
	})
	if found == nil && tv.Id != ex.Var && types.MentionsVar(ex.Body, tv.Id) {
		found = ex
	}
	if found == nil {
		return nil
	}
	_, err := c.fail(e, &TypeError{Kind: TypeVariableInScope, Name: types.VarName(tv.Id), Found: found})
	return err
}

func (c *Checker) checkList(env *TypeEnv, e ast.Expr, context string) (*types.List, error) {
	t, err := c.check(env, e)
	if err != nil {
		return nil, err
	}
	lt, ok := t.(*types.List)
	if !ok {
		_, err := c.fail(e, &TypeError{Kind: NotAList, Context: context, Found: t})
		return nil, err
	}
	return lt, nil
}

// checkFunc checks a lambda or a top-level declaration; name is empty for lambdas.
func (c *Checker) checkFunc(env *TypeEnv, name string, params []ast.Param, ret types.Type, body ast.Expr) (*types.Arrow, error) {
	bindings := make([]Binding, len(params))
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		bindings[i] = Binding{Name: p.Name, Type: p.Type}
		paramTypes[i] = p.Type
	}
	bt, err := c.check(env.ExtendMany(bindings), body)
	if err != nil {
		return nil, err
	}
	if !types.Equal(ret, bt) {
		_, err := c.fail(body, &TypeError{Kind: ReturnTypeMismatch, Name: name, Expected: ret, Found: bt})
		return nil, err
	}
	return types.NewArrow(paramTypes, ret), nil
}
