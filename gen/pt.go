// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"sort"

	"github.com/samber/lo"

	"github.com/satkit/cdcl/inter"
	"github.com/satkit/cdcl/z"
)

// Dest is anything the generators in this package can build a CNF onto:
// a sequence of z.LitUndef-terminated clauses added via Add.
type Dest = inter.Adder

// PartVar returns the literal asserting that element i is in partition k
// of an n-element, k-part partitioning.
func PartVar(i, k, n int) z.Lit {
	return z.Var(k*n + i).Pos()
}

// Partition adds constraints to dst stating that there exists a
// partition of n elements into k parts. Every model of the result has
// PartVar(i, k, n) true iff element i is in partition k.
func Partition(dst Dest, n, k int) {
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			dst.Add(PartVar(i, j, n))
		}
		dst.Add(z.LitUndef)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			for h := 0; h < j; h++ {
				dst.Add(PartVar(i, j, n).Negate())
				dst.Add(PartVar(i, h, n).Negate())
				dst.Add(z.LitUndef)
			}
		}
	}
}

// PyTriples adds constraints stating there is a k-partition of the values
// occurring in the first n Pythagorean triples (a,b,c) with a^2+b^2=c^2
// such that no part contains a whole triple. Values are renumbered densely
// (in ascending order) before being mapped to PartVar elements.
func PyTriples(dst Dest, n, k int) {
	m, ts := pytriples(n)
	e := len(m)
	Partition(dst, e, k)
	for _, t := range ts {
		for p := 0; p < k; p++ {
			a := PartVar(m[t.a], p, e)
			b := PartVar(m[t.b], p, e)
			c := PartVar(m[t.c], p, e)
			dst.Add(a.Negate())
			dst.Add(b.Negate())
			dst.Add(c.Negate())
			dst.Add(z.LitUndef)
		}
	}
}

// Py2Triples adds constraints to dst stating that there is a 2-partition
// of the values occurring in the first n Pythagorean triples such that no
// such triple (a,b,c) lies entirely in one partition. Value i is variable
// z.Var(i).
func Py2Triples(dst Dest, n int) {
	_, ts := pytriples(n)
	for _, t := range ts {
		a, b, c := z.Var(t.a).Pos(), z.Var(t.b).Pos(), z.Var(t.c).Pos()
		dst.Add(a)
		dst.Add(b)
		dst.Add(c)
		dst.Add(z.LitUndef)
		dst.Add(a.Negate())
		dst.Add(b.Negate())
		dst.Add(c.Negate())
		dst.Add(z.LitUndef)
	}
}

type squares struct {
	d []int
}

func (s *squares) get(i int) int {
	t := s.d
	for len(t) <= i {
		t = append(t, len(t)*len(t))
	}
	s.d = t
	return t[i]
}

func (s *squares) root(v int) int {
	t := s.d
	for len(t)*len(t) <= v {
		t = append(t, len(t)*len(t))
	}
	s.d = t
	if t[len(t)-1] == v {
		return len(t) - 1
	}
	i := sort.Search(len(t), func(i int) bool { return t[i] >= v })
	if i < len(t) && t[i] == v {
		return i
	}
	return -1
}

type triple struct {
	a, b, c int
}

// pytriples finds the first n Pythagorean triples (a,b,c) with a<b<c,
// returning them alongside a dense renumbering of every value that
// appears in at least one.
func pytriples(n int) (map[int]int, []triple) {
	ai, bi := 1, 2
	res := make([]triple, 0, n)
	sqrs := &squares{make([]int, 0, n)}
	in := make(map[int]int, n)
	for len(res) < n {
		a2, b2 := sqrs.get(ai), sqrs.get(bi)
		c2 := a2 + b2
		ci := sqrs.root(c2)
		if ci != -1 {
			in[ai] = 0
			in[bi] = 0
			in[ci] = 0
			res = append(res, triple{ai, bi, ci})
		}
		ai++
		if ai == bi {
			ai = 1
			bi++
		}
	}
	ins := lo.Keys(in)
	sort.Ints(ins)
	for i, s := range ins {
		in[s] = i
	}
	return in, res
}

func counts(ts []triple) []int {
	res := make([]int, 0, len(ts)+len(ts)/2)
	for _, t := range ts {
		for _, v := range []int{t.a, t.b, t.c} {
			for len(res) <= v {
				res = append(res, 0)
			}
			res[v]++
		}
	}
	return res
}

// ptElim eliminates every triple containing a variable that occurs in
// only that one triple, iterating to a fixed point. Any model of the
// reduced formula extends to the original by assigning the eliminated
// variable a partition not already taken by its triple-mates. Unused by
// Py2Triples/PyTriples directly; kept for callers building reduced
// instances for harder solver stress tests.
func ptElim(ts []triple) []triple {
	cs := counts(ts)
	for {
		j := 0
		for _, t := range ts {
			if cs[t.a] == 1 || cs[t.b] == 1 || cs[t.c] == 1 {
				cs[t.a]--
				cs[t.b]--
				cs[t.c]--
				continue
			}
			ts[j] = t
			j++
		}
		if j == len(ts) {
			return ts
		}
		ts = ts[:j]
	}
}
