// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter defines the narrow interfaces the public cdcl package and
// its proof-replay tooling are built against, so callers can depend on
// behavior rather than on the internal/xo.Solver concrete type.
package inter

import "github.com/satkit/cdcl/z"

// Solvable encapsulates a decision procedure which may run for a long
// time. Solve returns 1 if the problem is SAT, -1 if UNSAT, 0 if the call
// was interrupted or exhausted its budget before deciding either way.
type Solvable interface {
	Solve() int
}

// Adder encapsulates something to which clauses can be added as
// sequences of z.LitUndef-terminated literals.
//
// For performance reasons when reading large DIMACS files, Add should not
// be used concurrently with any other method on the same object.
type Adder interface {
	// Add appends a literal to the clause under construction. m ==
	// z.LitUndef signals the end of the clause.
	Add(m z.Lit)
}

// MaxVar is something which records the maximum variable seen across a
// stream of Adds/Assumes and can report it back.
type MaxVar interface {
	MaxVar() z.Var
}

// Liter produces fresh variables and returns the corresponding positive
// literal.
type Liter interface {
	Lit() z.Lit
}

// Model encapsulates something a satisfying assignment can be read from.
type Model interface {
	Value(m z.Lit) bool
}

// Assumable encapsulates a problem that can be solved under a temporary
// set of assumed literals, with the failed subset recoverable afterward.
type Assumable interface {
	Assume(m ...z.Lit)
	Why(dst []z.Lit) []z.Lit
}

// S is the complete incremental SAT interface the public cdcl.Solver
// implements: add clauses, assume literals, solve, and read back a model
// or an assumption conflict.
type S interface {
	MaxVar
	Liter
	Adder
	Solvable
	Model
	Assumable
}
