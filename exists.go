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

// exists provides type checking for a small, explicitly typed functional language with S-expression syntax
// and existential types.
//
// The type-system is simply typed, extended with System F style existential types: a value may be packed
// together with a hidden representation type, and unpacked within a scope where the representation type
// is only known as an abstract type-variable.
//
//
// Supported Features:
//
//   * Integers, booleans, strings, homogeneous lists, tuples and records
//   * Annotated lambdas and mutually-recursive top-level function declarations
//   * Parallel let-bindings and sequencing with assignment
//   * Existential introduction (pack) and elimination (unpack) with escape checking
//   * Persistent type-environments which can be shared across goroutines
//   * Set-once type annotations on checked expressions
//
//
// Links:
//
// Types and Programming Languages, Chapter 24 (Existential Types): https://www.cis.upenn.edu/~bcpierce/tapl/
//
// System F: https://en.wikipedia.org/wiki/System_F
package exists
