// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satkit/cdcl/z"
)

type cnfCase struct {
	body     string
	strictOK bool
	looseOK  bool
}

var cnfCases = []cnfCase{
	{`c this
c is
c a
c comment
c but
c there
c is
c no
c body
`, false, true},
	{`p cnf 6 6
-1 0
-2 0
-3 0
-4 0
-5 0
-6 0
`, true, true},
	{`p cnf 2 3
1 0
2 0`, false, true},
	{`c hello
c world
10 11 23 44 -55 0`, false, true},
}

type nopVis struct{}

func (nopVis) Init(int, int) {}
func (nopVis) Add(z.Lit)     {}
func (nopVis) Eof()          {}

func TestReadCnfStrict(t *testing.T) {
	for i, c := range cnfCases {
		e := ReadCnfStrict(bytes.NewBufferString(c.body), nopVis{}, true)
		assert.Equal(t, c.strictOK, e == nil, "case %d: %v", i, e)
	}
}

func TestReadCnfLoose(t *testing.T) {
	for i, c := range cnfCases {
		e := ReadCnf(bytes.NewBufferString(c.body), nopVis{})
		assert.Equal(t, c.looseOK, e == nil, "case %d: %v", i, e)
	}
}
