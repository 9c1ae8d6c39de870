// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satkit/cdcl"
)

func TestPart(t *testing.T) {
	_, trips := pytriples(1000)
	for _, p := range trips {
		assert.Equal(t, p.c*p.c, p.a*p.a+p.b*p.b, "triple %+v", p)
	}
}

func TestPy2Triples(t *testing.T) {
	s := cdcl.New()
	Py2Triples(s, 60)
	res := s.Solve()
	assert.NotEqual(t, 0, res, "solve should not time out on this small instance")
}
