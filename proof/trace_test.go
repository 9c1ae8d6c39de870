// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/z"
)

// unsatSolver builds the pigeonhole instance for 3 pigeons and 2 holes
// (unsatisfiable only via search, not at AddClause time), solves,
// validates and returns it ready for Replay.
func unsatSolver(t *testing.T) *xo.Solver {
	t.Helper()
	opts := xo.DefaultOptions()
	opts.Valid = true
	s := xo.NewSolver(opts)
	for i := 0; i < 6; i++ {
		s.NewVar(false, true)
	}
	lits := func(ds ...int) []z.Lit {
		ls := make([]z.Lit, len(ds))
		for i, d := range ds {
			ls[i] = z.Dimacs2Lit(d)
		}
		return ls
	}
	v := func(p, h int) z.Var { return z.Var(p*2 + h) }
	for p := 0; p < 3; p++ {
		require.True(t, s.AddClause(lits(int(v(p, 0).Pos().Dimacs()), int(v(p, 1).Pos().Dimacs())), z.RangeUndef))
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				require.True(t, s.AddClause(lits(int(v(p1, h).Neg().Dimacs()), int(v(p2, h).Neg().Dimacs())), z.RangeUndef))
			}
		}
	}
	require.Equal(t, xo.Unsat, s.Solve())
	require.True(t, s.Validate())
	return s
}

func TestTraceVisitorEmitsCertificate(t *testing.T) {
	s := unsatSolver(t)
	var buf bytes.Buffer
	tv := NewTraceVisitor(&buf)
	s.Replay(tv)
	require.NoError(t, tv.Flush())

	out := buf.String()
	assert.Contains(t, out, "vL (l")
	assert.Contains(t, out, "vH (0 0 ")
}

func TestCaptureLog(t *testing.T) {
	s := unsatSolver(t)
	log := Capture(s)
	require.Equal(t, len(s.Proof), log.Len())
	require.NotZero(t, log.Len())
	assert.NotEmpty(t, log.Entries[log.Len()-1].Lits, "the conflicting clause that ends the proof still has its literals")
}

func TestTraceVisitorLabelsOnce(t *testing.T) {
	s := unsatSolver(t)
	var buf bytes.Buffer
	tv := NewTraceVisitor(&buf)
	s.Replay(tv)
	require.NoError(t, tv.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	seen := map[string]int{}
	for _, l := range lines {
		if strings.HasPrefix(l, "vL ") {
			seen[l]++
		}
	}
	for label, n := range seen {
		assert.Equal(t, 1, n, "label %q emitted more than once", label)
	}
}
