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

package parse

import (
	"github.com/wdamron/exists"
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/types"
)

// ParseExpr converts an S-expression into an expression tree.
func ParseExpr(v *Value) (ast.Expr, error) {
	switch v.Kind {
	case Int:
		return &ast.Num{Value: v.Int}, nil
	case String:
		return &ast.Str{Value: v.Text}, nil
	case Bool:
		return &ast.Bool{Value: v.Bool}, nil
	case Symbol:
		switch v.Text {
		case "true":
			return &ast.Bool{Value: true}, nil
		case "false":
			return &ast.Bool{Value: false}, nil
		}
		return &ast.Var{Name: v.Text}, nil
	}

	if len(v.List) == 0 {
		return nil, errorAt(v.Pos, "empty list found")
	}
	head, args := v.Head(), v.List[1:]
	if op, ok := ast.LookupBinOp(head); ok {
		if err := arity(v, args, 2); err != nil {
			return nil, err
		}
		l, r, err := parse2(args)
		if err != nil {
			return nil, err
		}
		return &ast.Binop{Op: op, Left: l, Right: r}, nil
	}

	switch head {
	case "if":
		if err := arity(v, args, 3); err != nil {
			return nil, err
		}
		exprs, err := parseExprs(args)
		if err != nil {
			return nil, err
		}
		return &ast.If{Pred: exprs[0], Then: exprs[1], Else: exprs[2]}, nil

	case "let":
		return parseLet(v, args)

	case "lambda":
		if len(args) != 4 {
			return nil, errorAt(v.Pos, "lambda has incorrect number of arguments; expected (lambda (params...) : type body)")
		}
		params, err := parseParams(args[0])
		if err != nil {
			return nil, err
		}
		ret, body, err := parseReturnAndBody(v, args[1:])
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Params: params, Return: ret, Body: body}, nil

	case "begin":
		// Emptiness is reported by the checker.
		exprs, err := parseExprs(args)
		if err != nil {
			return nil, err
		}
		return &ast.Begin{Exprs: exprs}, nil

	case "set!":
		if err := arity(v, args, 2); err != nil {
			return nil, err
		}
		if args[0].Kind != Symbol {
			return nil, errorAt(args[0].Pos, "set! requires a variable name, found %s", args[0])
		}
		value, err := ParseExpr(args[1])
		if err != nil {
			return nil, err
		}
		return &ast.Set{Var: args[0].Text, Value: value}, nil

	case "cons":
		if err := arity(v, args, 2); err != nil {
			return nil, err
		}
		h, t, err := parse2(args)
		if err != nil {
			return nil, err
		}
		return &ast.Cons{Head: h, Tail: t}, nil

	case "car", "cdr", "null?":
		if err := arity(v, args, 1); err != nil {
			return nil, err
		}
		list, err := ParseExpr(args[0])
		if err != nil {
			return nil, err
		}
		switch head {
		case "car":
			return &ast.Car{List: list}, nil
		case "cdr":
			return &ast.Cdr{List: list}, nil
		}
		return &ast.IsNull{List: list}, nil

	case "null":
		if err := arity(v, args, 1); err != nil {
			return nil, err
		}
		elem, err := ParseType(args[0])
		if err != nil {
			return nil, err
		}
		return &ast.Null{Elem: elem}, nil

	case "make-tuple":
		if len(args) != 3 || args[0].Kind != List || !args[1].IsSymbol(":") || args[2].Kind != List {
			return nil, errorAt(v.Pos, "make-tuple must be of the form (make-tuple (values...) : (types...))")
		}
		elems, err := parseExprs(args[0].List)
		if err != nil {
			return nil, err
		}
		ts, err := parseTypes(args[2].List)
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Elems: elems, Types: ts}, nil

	case "get-nth":
		if err := arity(v, args, 2); err != nil {
			return nil, err
		}
		tuple, index, err := parse2(args)
		if err != nil {
			return nil, err
		}
		return &ast.TupleGet{Tuple: tuple, Index: index}, nil

	case "make-record":
		fields := make([]ast.LabelValue, len(args))
		for i, f := range args {
			if f.Kind != List || len(f.List) != 2 || f.List[0].Kind != Symbol {
				return nil, errorAt(f.Pos, "record field must be of the form (label value)")
			}
			value, err := ParseExpr(f.List[1])
			if err != nil {
				return nil, err
			}
			fields[i] = ast.LabelValue{Label: f.List[0].Text, Value: value}
		}
		return &ast.Record{Fields: fields}, nil

	case "record-ref":
		if err := arity(v, args, 2); err != nil {
			return nil, err
		}
		if args[1].Kind != Symbol {
			return nil, errorAt(args[1].Pos, "record-ref requires a field label, found %s", args[1])
		}
		record, err := ParseExpr(args[0])
		if err != nil {
			return nil, err
		}
		return &ast.RecordSelect{Record: record, Label: args[1].Text}, nil

	case "pack":
		if err := arity(v, args, 3); err != nil {
			return nil, err
		}
		value, err := ParseExpr(args[0])
		if err != nil {
			return nil, err
		}
		ts, err := parseTypes(args[1:])
		if err != nil {
			return nil, err
		}
		return &ast.Pack{Value: value, Witness: ts[0], Exists: ts[1]}, nil

	case "unpack":
		return parseUnpack(v, args)

	case "define":
		return nil, errorAt(v.Pos, "define is only allowed at the top level")

	case "make-env", "env-ref":
		return nil, errorAt(v.Pos, "%s is not supported; use make-record and record-ref", head)
	}

	fn, err := ParseExpr(v.List[0])
	if err != nil {
		return nil, err
	}
	callArgs, err := parseExprs(args)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Func: fn, Args: callArgs}, nil
}

func arity(v *Value, args []*Value, n int) error {
	if len(args) != n {
		return errorAt(v.Pos, "%s expression has incorrect number of arguments: expected %d, found %d", v.Head(), n, len(args))
	}
	return nil
}

func parseExprs(vals []*Value) ([]ast.Expr, error) {
	exprs := make([]ast.Expr, len(vals))
	for i, v := range vals {
		e, err := ParseExpr(v)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func parse2(vals []*Value) (ast.Expr, ast.Expr, error) {
	exprs, err := parseExprs(vals)
	if err != nil {
		return nil, nil, err
	}
	return exprs[0], exprs[1], nil
}

// (let ((x e) ...) body)
func parseLet(v *Value, args []*Value) (ast.Expr, error) {
	if err := arity(v, args, 2); err != nil {
		return nil, err
	}
	if args[0].Kind != List {
		return nil, errorAt(args[0].Pos, "let bindings are not in a proper list")
	}
	bindings := make([]ast.LetBinding, len(args[0].List))
	for i, b := range args[0].List {
		if b.Kind != List || len(b.List) != 2 || b.List[0].Kind != Symbol {
			return nil, errorAt(b.Pos, "let binding must be of the form (name value)")
		}
		value, err := ParseExpr(b.List[1])
		if err != nil {
			return nil, err
		}
		bindings[i] = ast.LetBinding{Var: b.List[0].Text, Value: value}
	}
	body, err := ParseExpr(args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Let{Bindings: bindings, Body: body}, nil
}

// ((x : T) ...)
func parseParams(v *Value) ([]ast.Param, error) {
	if v.Kind != List {
		return nil, errorAt(v.Pos, "parameters are not in a valid list")
	}
	params := make([]ast.Param, len(v.List))
	for i, p := range v.List {
		if p.Kind != List || len(p.List) != 3 || p.List[0].Kind != Symbol || !p.List[1].IsSymbol(":") {
			return nil, errorAt(p.Pos, "parameter must be of the form (name : type)")
		}
		t, err := ParseType(p.List[2])
		if err != nil {
			return nil, err
		}
		params[i] = ast.Param{Name: p.List[0].Text, Type: t}
	}
	return params, nil
}

// : R body
func parseReturnAndBody(v *Value, args []*Value) (types.Type, ast.Expr, error) {
	if !args[0].IsSymbol(":") {
		return nil, nil, errorAt(args[0].Pos, "%s does not have the correct separator : before its return type", v.Head())
	}
	ret, err := ParseType(args[1])
	if err != nil {
		return nil, nil, err
	}
	body, err := ParseExpr(args[2])
	if err != nil {
		return nil, nil, err
	}
	return ret, body, nil
}

// (unpack (x pkg [Tn]) body)
func parseUnpack(v *Value, args []*Value) (ast.Expr, error) {
	if err := arity(v, args, 2); err != nil {
		return nil, err
	}
	b := args[0]
	if b.Kind != List || len(b.List) < 2 || len(b.List) > 3 || b.List[0].Kind != Symbol {
		return nil, errorAt(b.Pos, "unpack binding must be of the form (name package [type-variable])")
	}
	pkg, err := ParseExpr(b.List[1])
	if err != nil {
		return nil, err
	}
	var tv *types.Var
	if len(b.List) == 3 {
		if tv, err = parseTypeVar(b.List[2]); err != nil {
			return nil, err
		}
	}
	body, err := ParseExpr(args[1])
	if err != nil {
		return nil, err
	}
	return &ast.Unpack{Var: b.List[0].Text, Package: pkg, TypeVar: tv, Body: body}, nil
}

// ParseProgram reads a program: top-level declarations of the form (define (f (x : T) ...) : R body),
// followed by one or more expressions. Expressions are evaluated in order; the type of the last is the
// type of the program.
func ParseProgram(src string) (*exists.Program, error) {
	vals, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	prog := &exists.Program{}
	var entry []ast.Expr
	for _, v := range vals {
		if v.Head() == "define" {
			d, err := ParseDecl(v)
			if err != nil {
				return nil, err
			}
			prog.Funcs = append(prog.Funcs, d)
			continue
		}
		e, err := ParseExpr(v)
		if err != nil {
			return nil, err
		}
		entry = append(entry, e)
	}
	switch len(entry) {
	case 0:
		return nil, errorAt(Pos{1, 1}, "program has no entry expression")
	case 1:
		prog.Entry = entry[0]
	default:
		prog.Entry = &ast.Begin{Exprs: entry}
	}
	return prog, nil
}

// ParseDecl converts a top-level declaration of the form (define (f (x : T) ...) : R body).
func ParseDecl(v *Value) (*exists.FuncDecl, error) {
	if v.Head() != "define" {
		return nil, errorAt(v.Pos, "expected a declaration, found %s", v)
	}
	args := v.List[1:]
	if len(args) != 4 || args[0].Kind != List || len(args[0].List) == 0 || args[0].List[0].Kind != Symbol {
		return nil, errorAt(v.Pos, "define must be of the form (define (name (param : type)...) : type body)")
	}
	sig := args[0]
	params, err := parseParams(&Value{Kind: List, Pos: sig.Pos, List: sig.List[1:]})
	if err != nil {
		return nil, err
	}
	ret, body, err := parseReturnAndBody(v, args[1:])
	if err != nil {
		return nil, err
	}
	return &exists.FuncDecl{Name: sig.List[0].Text, Params: params, Return: ret, Body: body}, nil
}
