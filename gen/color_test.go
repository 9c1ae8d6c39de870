// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satkit/cdcl/gen"
)

func TestRandGraph(t *testing.T) {
	g := gen.RandGraph(100, 2000)
	assert.Len(t, g, 100)
	m := 0
	for _, es := range g {
		m += len(es)
	}
	assert.Equal(t, 4000, m, "each of 2000 edges counted from both endpoints")
}
