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

package ast

// BinOp is a binary operator.
type BinOp int

const (
	Add BinOp = iota
	Subtract
	Multiply
	Divide
	LessThan
	GreaterThan
	LessOrEqual
	GreaterOrEqual
	EqualTo
	And
	Or
	Concat
)

var binOpNames = [...]string{
	Add:            "+",
	Subtract:       "-",
	Multiply:       "*",
	Divide:         "/",
	LessThan:       "<",
	GreaterThan:    ">",
	LessOrEqual:    "<=",
	GreaterOrEqual: ">=",
	EqualTo:        "=",
	And:            "and",
	Or:             "or",
	Concat:         "concat",
}

// String returns the surface syntax of op.
func (op BinOp) String() string {
	if op < 0 || int(op) >= len(binOpNames) {
		return "BinOp(?)"
	}
	return binOpNames[op]
}

// LookupBinOp returns the operator with the given surface syntax.
func LookupBinOp(name string) (BinOp, bool) {
	for op, s := range binOpNames {
		if s == name {
			return BinOp(op), true
		}
	}
	return 0, false
}

// Arithmetic operators take and return integers.
func (op BinOp) IsArithmetic() bool { return op >= Add && op <= Divide }

// Ordering operators compare integers.
func (op BinOp) IsOrdering() bool { return op >= LessThan && op <= GreaterOrEqual }

// Logical operators take and return booleans.
func (op BinOp) IsLogical() bool { return op == And || op == Or }
