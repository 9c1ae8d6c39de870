// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarPosNeg(t *testing.T) {
	v := Var(33)
	m := v.Pos()
	n := v.Neg()
	assert.True(t, m.IsPos())
	assert.True(t, n.Sign())
	assert.Equal(t, n, m.Negate())
	assert.Equal(t, v, m.Var())
	assert.Equal(t, v, n.Var())
	assert.Equal(t, "v33", v.String())
}

func TestDimacsRoundTrip(t *testing.T) {
	for i := 1; i < 100; i++ {
		assert.Equal(t, i, Dimacs2Lit(i).Dimacs())
		assert.Equal(t, -i, Dimacs2Lit(-i).Dimacs())
		assert.True(t, Dimacs2Lit(i).IsPos())
		assert.False(t, Dimacs2Lit(-i).IsPos())
	}
}

func TestLBoolNot(t *testing.T) {
	assert.Equal(t, LFalse, LTrue.Not())
	assert.Equal(t, LTrue, LFalse.Not())
	assert.Equal(t, LUndef, LUndef.Not())
	assert.Equal(t, LTrue, FromBool(true))
	assert.Equal(t, LFalse, FromBool(false))
}

func TestRangeJoin(t *testing.T) {
	assert.True(t, RangeUndef.IsUndef())
	a := Singleton(2)
	b := Singleton(5)
	j := Join(a, b)
	assert.Equal(t, Range{Lo: 2, Hi: 5}, j)
	assert.Equal(t, a, Join(RangeUndef, a))
	assert.Equal(t, b, Join(b, RangeUndef))
	assert.True(t, a.IsSingleton())
	assert.False(t, j.IsSingleton())
}
