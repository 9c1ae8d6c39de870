// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit packs a Var and a sign into a single dense integer: var*2 is the
// positive literal, var*2+1 its negation. Negation is therefore a single
// xor, and literals index directly into per-literal arrays (watch lists,
// trail-part, etc.) without a branch.
type Lit int32

// LitUndef marks the absence of a literal (e.g. a clause with no reason,
// or the end of a DIMACS clause terminator that hasn't arrived yet).
const LitUndef Lit = -1

// MkLit builds the literal for variable v with the given sign (neg=true
// for the negative literal).
func MkLit(v Var, neg bool) Lit {
	l := Lit(int32(v) << 1)
	if neg {
		l |= 1
	}
	return l
}

// Var returns the underlying variable.
func (l Lit) Var() Var {
	return Var(int32(l) >> 1)
}

// Sign reports whether l is the negative literal of its variable.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// IsPos is the complement of Sign.
func (l Lit) IsPos() bool {
	return l&1 == 0
}

// Negate returns ~l.
func (l Lit) Negate() Lit {
	return l ^ 1
}

// Dimacs renders l the way DIMACS CNF does: a signed, 1-based variable.
func (l Lit) Dimacs() int {
	d := int(l.Var()) + 1
	if l.Sign() {
		d = -d
	}
	return d
}

// Dimacs2Lit is the inverse of Dimacs: a non-zero signed 1-based integer
// becomes the corresponding Lit over a 0-based Var.
func Dimacs2Lit(d int) Lit {
	if d == 0 {
		panic("z: Dimacs2Lit(0)")
	}
	neg := d < 0
	if neg {
		d = -d
	}
	return MkLit(Var(d-1), neg)
}

func (l Lit) String() string {
	if l == LitUndef {
		return "<undef>"
	}
	return fmt.Sprintf("%d", l.Dimacs())
}
