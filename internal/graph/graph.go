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

// Package graph provides directed graphs over dense integer vertices.
package graph

// Graph is an adjacency list; vertex v has successors g[v].
type Graph [][]int

func New(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

// AddEdge adds an edge if it is not already present.
func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// Reachable marks every vertex reachable from roots, including the roots.
func (g Graph) Reachable(roots ...int) []bool {
	seen := make([]bool, len(g))
	stack := append([]int(nil), roots...)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			continue
		}
		seen[v] = true
		stack = append(stack, g[v]...)
	}
	return seen
}

// SCC returns the strongly-connected components of g in topological order: when an edge
// leads from a vertex in one component to a vertex in another, the first component is returned first.
// Vertices within each component are sorted.
func (g Graph) SCC() [][]int {
	t := tarjan{
		g:       g,
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	for v := range g {
		if t.index[v] == 0 {
			t.visit(v)
		}
	}
	// Components are found in reversed topological order:
	sccs := t.sccs
	for i, j := 0, len(sccs)-1; i < j; i, j = i+1, j-1 {
		sccs[i], sccs[j] = sccs[j], sccs[i]
	}
	return sccs
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
type tarjan struct {
	g       Graph
	next    int
	index   []int // 0 until visited
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) visit(v int) {
	t.next++
	t.index[v], t.lowLink[v] = t.next, t.next
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, succ := range t.g[v] {
		switch {
		case t.index[succ] == 0:
			t.visit(succ)
			if t.lowLink[succ] < t.lowLink[v] {
				t.lowLink[v] = t.lowLink[succ]
			}
		case t.onStack[succ] && t.index[succ] < t.lowLink[v]:
			t.lowLink[v] = t.index[succ]
		}
	}

	if t.lowLink[v] != t.index[v] {
		return
	}
	// v is the root of a component:
	var c []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		c = insertSorted(c, w)
		if w == v {
			break
		}
	}
	t.sccs = append(t.sccs, c)
}

func insertSorted(s []int, v int) []int {
	i := len(s)
	s = append(s, v)
	for i > 0 && s[i-1] > v {
		s[i] = s[i-1]
		i--
	}
	s[i] = v
	return s
}
