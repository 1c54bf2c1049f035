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
	"math"
	"strconv"

	"github.com/wdamron/exists/types"
)

// ParseType converts a type annotation into a type:
//
//  int, bool, string, unknown, T0, (list T), (-> P... R), (tuple T...), (record (a T)...), (exists T0 T)
func ParseType(v *Value) (types.Type, error) {
	switch v.Kind {
	case Symbol:
		switch v.Text {
		case "int":
			return types.Int, nil
		case "bool":
			return types.Bool, nil
		case "string":
			return types.Str, nil
		case "unknown":
			return types.Unknown{}, nil
		}
		if id, ok := typeVarId(v.Text); ok {
			return types.NewVar(id), nil
		}
		return nil, errorAt(v.Pos, "type annotation %s not recognized as a valid type", v.Text)

	case List:
		if len(v.List) == 0 {
			return nil, errorAt(v.Pos, "type annotation is missing values")
		}
		args := v.List[1:]
		switch v.Head() {
		case "->":
			if len(args) == 0 {
				return nil, errorAt(v.Pos, "function type is missing a return type")
			}
			params, err := parseTypes(args[:len(args)-1])
			if err != nil {
				return nil, err
			}
			ret, err := ParseType(args[len(args)-1])
			if err != nil {
				return nil, err
			}
			return types.NewArrow(params, ret), nil

		case "list":
			if len(args) != 1 {
				return nil, errorAt(v.Pos, "list type has incorrect number of values")
			}
			elem, err := ParseType(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewList(elem), nil

		case "tuple":
			elems, err := parseTypes(args)
			if err != nil {
				return nil, err
			}
			return types.NewTuple(elems), nil

		case "record":
			fields := types.NewFieldListBuilder()
			for _, f := range args {
				if f.Kind != List || len(f.List) != 2 || f.List[0].Kind != Symbol {
					return nil, errorAt(f.Pos, "record field type must be of the form (name type)")
				}
				t, err := ParseType(f.List[1])
				if err != nil {
					return nil, err
				}
				if !fields.Add(f.List[0].Text, t) {
					return nil, errorAt(f.Pos, "duplicate field %s in record type", f.List[0].Text)
				}
			}
			return &types.Record{Fields: fields.Build()}, nil

		case "exists":
			if len(args) != 2 {
				return nil, errorAt(v.Pos, "existential type has incorrect number of values")
			}
			tv, err := parseTypeVar(args[0])
			if err != nil {
				return nil, err
			}
			body, err := ParseType(args[1])
			if err != nil {
				return nil, err
			}
			return types.NewExists(tv.Id, body), nil
		}
		return nil, errorAt(v.Pos, "type annotation does not have ->, list, tuple, record or exists as first symbol")
	}
	return nil, errorAt(v.Pos, "type annotation %s is invalid", v)
}

func parseTypes(vals []*Value) ([]types.Type, error) {
	ts := make([]types.Type, len(vals))
	for i, v := range vals {
		t, err := ParseType(v)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

func parseTypeVar(v *Value) (*types.Var, error) {
	if v.Kind == Symbol {
		if id, ok := typeVarId(v.Text); ok {
			return types.NewVar(id), nil
		}
	}
	return nil, errorAt(v.Pos, "type variable %s is not of the form T0, T1, etc.", v)
}

// T followed by decimal digits
func typeVarId(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'T' {
		return 0, false
	}
	for _, ch := range name[1:] {
		if ch < '0' || ch > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(name[1:])
	return id, err == nil && id < math.MaxInt
}
