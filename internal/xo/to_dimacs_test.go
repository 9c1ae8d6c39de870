// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/cdcl/z"
)

func TestToDimacsWritesLiveClauses(t *testing.T) {
	s := newSolver(3)
	addClause(t, s, 1, 2, 3)
	addClause(t, s, -1, 2)

	var buf bytes.Buffer
	require.NoError(t, s.ToDimacs(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "p cnf "))
	assert.Equal(t, len(lines)-1, 2, "one line per live clause")
}

func TestToDimacsUnsat(t *testing.T) {
	s := newSolver(1)
	addClause(t, s, 1)
	require.False(t, s.AddClause([]z.Lit{z.Dimacs2Lit(-1)}, z.RangeUndef))
	require.False(t, s.Ok())

	var buf bytes.Buffer
	require.NoError(t, s.ToDimacs(&buf, nil))
	assert.Equal(t, "p cnf 1 2\n1 0\n-1 0\n", buf.String())
}

func TestToDimacsWithAssumptions(t *testing.T) {
	s := newSolver(2)
	addClause(t, s, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, s.ToDimacs(&buf, []z.Lit{z.Dimacs2Lit(1)}))
	out := buf.String()
	assert.Contains(t, out, "p cnf ")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "0"))
}
