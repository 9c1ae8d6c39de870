// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/cdcl/z"
)

type recordingVisitor struct {
	resolvents      int
	chainResolvents int
	finalChain      bool
}

func (r *recordingVisitor) VisitResolvent(parent, p1 z.Lit, p2 ClauseRef) {
	r.resolvents++
}

func (r *recordingVisitor) VisitChainResolvent(parent ClauseRef, chainClauses []ClauseRef, chainPivots []z.Lit) {
	r.chainResolvents++
	if parent == ClauseRefUndef {
		r.finalChain = true
	}
}

func (r *recordingVisitor) VisitChainResolventUnit(parent z.Lit, chainClauses []ClauseRef, chainPivots []z.Lit) {
	r.chainResolvents++
}

func newValidSolver() *Solver {
	opts := DefaultOptions()
	opts.Valid = true
	return NewSolver(opts)
}

func TestValidateUnsatProof(t *testing.T) {
	s := newValidSolver()
	for i := 0; i < 1; i++ {
		s.NewVar(false, true)
	}
	addClause(t, s, 1)
	require.False(t, s.AddClause([]z.Lit{z.Dimacs2Lit(-1)}, z.RangeUndef))
	require.Equal(t, Unsat, s.Solve())
	require.NotEmpty(t, s.Proof)
	assert.True(t, s.Validate())
}

func TestValidateAcceptsPigeonhole(t *testing.T) {
	s := newValidSolver()
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
	require.Equal(t, Unsat, s.Solve())
	require.NotEmpty(t, s.Proof)
	assert.True(t, s.Validate())

	v2 := &recordingVisitor{}
	s.Replay(v2)
	assert.True(t, v2.finalChain, "replay should eventually label the empty clause")
}
