// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z holds the dense value types shared by every layer of the
// solver: variables, literals, tri-state values and partition ranges.
// Nothing in this package touches assignment state — it is pure arithmetic
// on small integers, kept separate so the core, the proof log and the
// replayer can all depend on it without pulling in solver internals.
package z

import "fmt"

// Var is a dense, 0-based variable index. Variables are never freed once
// created; VarUndef (-1) is the sentinel for "no variable" (the zero
// value, Var(0), is a real variable).
type Var int32

// VarUndef marks the absence of a variable.
const VarUndef Var = -1

func (v Var) String() string {
	return fmt.Sprintf("v%d", int32(v))
}

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(int32(v) << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(int32(v)<<1 | 1)
}
