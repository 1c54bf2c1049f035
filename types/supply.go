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
	"sync/atomic"
)

// VarSupply is a source of unique type-variable ids.
//
// Ids are never reused; a single supply should be shared by everything which introduces
// binders for one program. A VarSupply is safe for concurrent use.
type VarSupply struct {
	next atomic.Int64
}

// Get the next unused id.
func (s *VarSupply) Fresh() int { return int(s.next.Add(1) - 1) }

// Create a type-variable with a fresh id.
func (s *VarSupply) NewVar() *Var { return &Var{Id: s.Fresh()} }

// Reserve ensures that ids up to and including id will never be returned by Fresh.
// The floor never decreases; it saturates at math.MaxInt64.
func (s *VarSupply) Reserve(id int) {
	for {
		next := s.next.Load()
		if int64(id) < next {
			return
		}
		floor := int64(math.MaxInt64)
		if int64(id) < math.MaxInt64 {
			floor = int64(id) + 1
		}
		if s.next.CompareAndSwap(next, floor) {
			return
		}
	}
}

// Reserve every type-variable id mentioned within t.
func (s *VarSupply) ReserveType(t Type) {
	if id := MaxVarId(t); id >= 0 {
		s.Reserve(id)
	}
}

// Peek returns the id which the next call to Fresh would return.
func (s *VarSupply) Peek() int { return int(s.next.Load()) }
