// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/cdcl/z"
)

func addClause(t *testing.T, s *Solver, lits ...int) {
	t.Helper()
	ls := make([]z.Lit, len(lits))
	for i, d := range lits {
		ls[i] = z.Dimacs2Lit(d)
	}
	ok := s.AddClause(ls, z.RangeUndef)
	require.True(t, ok, "AddClause(%v)", lits)
}

func newSolver(n int) *Solver {
	s := NewSolver(DefaultOptions())
	for i := 0; i < n; i++ {
		s.NewVar(false, true)
	}
	return s
}

func TestSolveSat(t *testing.T) {
	s := newSolver(3)
	addClause(t, s, 1, 2, 3)
	addClause(t, s, -1, 2)
	addClause(t, s, -2, 3)
	res := s.Solve()
	require.Equal(t, Sat, res)
	for _, c := range [][]int{{1, 2, 3}, {-1, 2}, {-2, 3}} {
		satisfied := false
		for _, d := range c {
			m := z.Dimacs2Lit(d)
			val := s.Model[m.Var()]
			if m.Sign() {
				val = val.Not()
			}
			if val == z.LTrue {
				satisfied = true
			}
		}
		assert.True(t, satisfied, "clause %v not satisfied by model", c)
	}
}

func TestSolveUnsat(t *testing.T) {
	s := newSolver(1)
	addClause(t, s, 1)
	require.False(t, s.AddClause([]z.Lit{z.Dimacs2Lit(-1)}, z.RangeUndef))
	assert.Equal(t, Unsat, s.Solve())
}

func TestSolvePigeonhole(t *testing.T) {
	// 3 pigeons, 2 holes: unsatisfiable.
	s := NewSolver(DefaultOptions())
	v := func(p, h int) z.Var { return z.Var(p*2 + h) }
	for i := 0; i < 6; i++ {
		s.NewVar(false, true)
	}
	for p := 0; p < 3; p++ {
		addClause(t, s, int(v(p, 0).Pos().Dimacs()), int(v(p, 1).Pos().Dimacs()))
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				addClause(t, s, int(v(p1, h).Neg().Dimacs()), int(v(p2, h).Neg().Dimacs()))
			}
		}
	}
	assert.Equal(t, Unsat, s.Solve())
}

func TestAssumeWhy(t *testing.T) {
	s := newSolver(2)
	addClause(t, s, 1, 2)
	addClause(t, s, -1, -2)
	s.Assume(z.Dimacs2Lit(1), z.Dimacs2Lit(2))
	require.Equal(t, Unsat, s.Solve())
	why := s.Why(nil)
	assert.NotEmpty(t, why)
	// assumptions are consumed after Solve
	require.Empty(t, s.Assumptions)
}

func TestInterrupt(t *testing.T) {
	s := newSolver(5)
	addClause(t, s, 1, 2, 3, 4, 5)
	s.Interrupt()
	res := s.Solve()
	assert.Equal(t, Unknown, res)
}
