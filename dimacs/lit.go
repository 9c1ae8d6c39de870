// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"

	"github.com/satkit/cdcl/z"
)

// litUndefInt is the DIMACS terminator digit, kept separate from
// z.Dimacs2Lit (which panics on 0) because it has no Var of its own.
const litUndefInt = 0

func readLit(r *bufio.Reader) (z.Lit, error) {
	i, e := readInt(r)
	if e != nil {
		return z.LitUndef, e
	}
	if i == litUndefInt {
		return z.LitUndef, nil
	}
	return z.Dimacs2Lit(i), nil
}
