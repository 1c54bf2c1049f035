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
	"strconv"
	"strings"

	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/types"
)

// ErrorKind identifies the checking rule which failed.
type ErrorKind int

const (
	UnboundVariable ErrorKind = iota + 1
	TypeMismatch
	NotABoolean
	BranchTypeMismatch
	ReturnTypeMismatch
	NotAFunction
	ArityMismatch
	ArgTypeMismatch
	EmptyBegin
	AssignTypeMismatch
	NotAList
	ListElementMismatch
	TupleElementMismatch
	NotATuple
	IndexOutOfBounds
	NotAConstantIndex
	NotARecord
	DuplicateField
	UnknownField
	NotAnExistential
	ExistentialPackMismatch
	EscapingTypeVariable
	DuplicateDeclaration
	TypeVariableInScope
)

var errorKindNames = [...]string{
	UnboundVariable:         "UnboundVariable",
	TypeMismatch:            "TypeMismatch",
	NotABoolean:             "NotABoolean",
	BranchTypeMismatch:      "BranchTypeMismatch",
	ReturnTypeMismatch:      "ReturnTypeMismatch",
	NotAFunction:            "NotAFunction",
	ArityMismatch:           "ArityMismatch",
	ArgTypeMismatch:         "ArgTypeMismatch",
	EmptyBegin:              "EmptyBegin",
	AssignTypeMismatch:      "AssignTypeMismatch",
	NotAList:                "NotAList",
	ListElementMismatch:     "ListElementMismatch",
	TupleElementMismatch:    "TupleElementMismatch",
	NotATuple:               "NotATuple",
	IndexOutOfBounds:        "IndexOutOfBounds",
	NotAConstantIndex:       "NotAConstantIndex",
	NotARecord:              "NotARecord",
	DuplicateField:          "DuplicateField",
	UnknownField:            "UnknownField",
	NotAnExistential:        "NotAnExistential",
	ExistentialPackMismatch: "ExistentialPackMismatch",
	EscapingTypeVariable:    "EscapingTypeVariable",
	DuplicateDeclaration:    "DuplicateDeclaration",
	TypeVariableInScope:     "TypeVariableInScope",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(errorKindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return errorKindNames[k]
}

// TypeError describes the first rule violation found while checking an expression.
//
// Fields which are not relevant to Kind are left empty.
type TypeError struct {
	Kind ErrorKind
	// Expression which failed to check
	Expr ast.Expr
	// Expected and found types, for mismatches
	Expected, Found types.Type
	// Operator or form in which a mismatch occurred
	Context string
	// Variable, field, type-variable or declaration name
	Name string
	// Argument, element or tuple index
	Index int
	// Expected and found counts, for arity mismatches
	ExpectedLen, FoundLen int
}

// Is reports whether target is a *TypeError with the same Kind, so that
// errors.Is(err, &TypeError{Kind: UnknownField}) matches any unknown-field error.
func (e *TypeError) Is(target error) bool {
	t, ok := target.(*TypeError)
	return ok && t.Kind == e.Kind
}

func (e *TypeError) Error() string {
	var sb strings.Builder
	switch e.Kind {
	case UnboundVariable:
		sb.WriteString("unbound variable " + e.Name)
	case TypeMismatch:
		sb.WriteString("type mismatch in (" + e.Context + " ...): ")
		writeExpectedFound(&sb, e)
	case NotABoolean:
		sb.WriteString("if condition is not a boolean: found " + types.TypeString(e.Found))
	case BranchTypeMismatch:
		sb.WriteString("if branches have different types: " + types.TypeString(e.Expected) + " and " + types.TypeString(e.Found))
	case ReturnTypeMismatch:
		sb.WriteString("return type mismatch")
		if e.Name != "" {
			sb.WriteString(" in " + e.Name)
		}
		sb.WriteString(": ")
		writeExpectedFound(&sb, e)
	case NotAFunction:
		sb.WriteString("cannot call a value of type " + types.TypeString(e.Found))
	case ArityMismatch:
		sb.WriteString(e.Context + " expects " + strconv.Itoa(e.ExpectedLen) + " arguments, found " + strconv.Itoa(e.FoundLen))
	case ArgTypeMismatch:
		sb.WriteString("argument " + strconv.Itoa(e.Index) + " has the wrong type: ")
		writeExpectedFound(&sb, e)
	case EmptyBegin:
		sb.WriteString("begin requires at least one expression")
	case AssignTypeMismatch:
		sb.WriteString("cannot assign to " + e.Name + ": ")
		writeExpectedFound(&sb, e)
	case NotAList:
		sb.WriteString(e.Context + " requires a list: found " + types.TypeString(e.Found))
	case ListElementMismatch:
		sb.WriteString("cons tail does not match its head: ")
		writeExpectedFound(&sb, e)
	case TupleElementMismatch:
		sb.WriteString("tuple element " + strconv.Itoa(e.Index) + " does not match its annotation: ")
		writeExpectedFound(&sb, e)
	case NotATuple:
		sb.WriteString("get-nth requires a tuple: found " + types.TypeString(e.Found))
	case IndexOutOfBounds:
		sb.WriteString("tuple index " + strconv.Itoa(e.Index) + " out of bounds for " + types.TypeString(e.Found))
	case NotAConstantIndex:
		sb.WriteString("tuple index must be an integer literal")
	case NotARecord:
		sb.WriteString("record-ref requires a record: found " + types.TypeString(e.Found))
	case DuplicateField:
		sb.WriteString("duplicate field " + e.Name)
	case UnknownField:
		sb.WriteString("unknown field " + e.Name + " in " + types.TypeString(e.Found))
	case NotAnExistential:
		sb.WriteString(e.Context + " requires an existential type: found " + types.TypeString(e.Found))
	case ExistentialPackMismatch:
		sb.WriteString("packed value does not match the existential type: ")
		writeExpectedFound(&sb, e)
	case EscapingTypeVariable:
		sb.WriteString("type variable " + e.Name + " escapes its scope in " + types.TypeString(e.Found))
	case DuplicateDeclaration:
		sb.WriteString("duplicate declaration " + e.Name)
	case TypeVariableInScope:
		sb.WriteString("type variable " + e.Name + " is already in scope in " + types.TypeString(e.Found))
	default:
		sb.WriteString(e.Kind.String())
	}
	return sb.String()
}

func writeExpectedFound(sb *strings.Builder, e *TypeError) {
	sb.WriteString("expected ")
	sb.WriteString(types.TypeString(e.Expected))
	sb.WriteString(", found ")
	sb.WriteString(types.TypeString(e.Found))
}

// DeclError wraps an error found within a top-level function declaration.
type DeclError struct {
	Decl string
	Err  error
}

func (e *DeclError) Error() string { return "in " + e.Decl + ": " + e.Err.Error() }

func (e *DeclError) Unwrap() error { return e.Err }
