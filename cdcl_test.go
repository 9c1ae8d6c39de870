// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cdcl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/cdcl/dimacs"
	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/z"
)

func TestAddClauseAndSolveSat(t *testing.T) {
	s := New()
	for i := 0; i < 2; i++ {
		s.Lit()
	}
	require.True(t, s.AddClause([]z.Lit{z.Dimacs2Lit(1), z.Dimacs2Lit(2)}, -1))
	require.True(t, s.AddClause([]z.Lit{z.Dimacs2Lit(-1), z.Dimacs2Lit(-2)}, -1))
	assert.Equal(t, 1, s.Solve())
}

func TestNewFromDimacsUnsatAndProof(t *testing.T) {
	cnf := "p cnf 2 4\n1 2 0\n-1 -2 0\n1 0\n2 0\n"
	s, e := NewWithOptions(withValid())
	require.NoError(t, e)
	require.NoError(t, dimacs.ReadCnf(strings.NewReader(cnf), s))
	assert.Equal(t, -1, s.Solve())
	assert.True(t, s.Validate())
	log := s.ProofLog()
	assert.NotZero(t, log.Len())
}

func TestNewWithOptionsRejectsInvalid(t *testing.T) {
	opts := xo.DefaultOptions()
	opts.VarDecay = 2
	_, e := NewWithOptions(opts)
	assert.Error(t, e)
}

func withValid() xo.Options {
	opts := xo.DefaultOptions()
	opts.Valid = true
	return opts
}
