// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cdcl is the public entry point: a thin facade over
// internal/xo.Solver exposing the CDCL core, its proof log, and DIMACS
// I/O as a single incremental SAT interface, the way a top-level gini.go
// would delegate to an internal solver implementation.
package cdcl

import (
	"io"

	"github.com/satkit/cdcl/dimacs"
	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/proof"
	"github.com/satkit/cdcl/z"
)

// Solver is a CDCL SAT solver with optional resolution-proof logging,
// validation and replay.
type Solver struct {
	xo *xo.Solver
}

// New creates a solver with default options.
func New() *Solver {
	return &Solver{xo: xo.NewSolver(xo.DefaultOptions())}
}

// NewWithOptions creates a solver with explicit options.
func NewWithOptions(opts xo.Options) (*Solver, error) {
	if e := opts.Validate(); e != nil {
		return nil, e
	}
	return &Solver{xo: xo.NewSolver(opts)}, nil
}

// NewFromDimacs builds a solver by reading a DIMACS CNF stream.
func NewFromDimacs(r io.Reader) (*Solver, error) {
	s := New()
	if e := dimacs.ReadCnf(r, s.xo); e != nil {
		return nil, e
	}
	return s, nil
}

// MaxVar returns the highest variable index the solver has created.
func (s *Solver) MaxVar() z.Var {
	return s.xo.MaxVar()
}

// Lit creates a fresh variable and returns its positive literal.
func (s *Solver) Lit() z.Lit {
	return s.xo.Lit()
}

// Add appends a literal to the clause under construction; z.LitUndef ends
// it, exactly like inter.Adder.
func (s *Solver) Add(m z.Lit) {
	s.xo.Add(m)
}

// Init preallocates storage for vars variables, so *Solver satisfies
// dimacs.CnfVis directly and a CNF reader can build a solver in place.
func (s *Solver) Init(vars, clauses int) {
	s.xo.Init(vars, clauses)
}

// Eof implements dimacs.CnfVis.
func (s *Solver) Eof() {
	s.xo.Eof()
}

// AddClause adds a whole clause at once, optionally tagged with a
// partition id for interpolation bookkeeping.
func (s *Solver) AddClause(lits []z.Lit, partition int) bool {
	part := z.RangeUndef
	if partition >= 0 {
		part = z.Singleton(partition)
	}
	return s.xo.AddClause(lits, part)
}

// Assume appends ms to the assumptions the next Solve call makes.
func (s *Solver) Assume(ms ...z.Lit) {
	s.xo.Assume(ms...)
}

// Why appends to dst the negations of the last Solve call's assumptions
// that an Unsat result was traced back to. The set is not minimised.
func (s *Solver) Why(dst []z.Lit) []z.Lit {
	return s.xo.Why(dst)
}

// Solve runs the solver to completion, returning 1 for SAT, -1 for UNSAT,
// 0 for unknown (interrupted or budget-exhausted).
func (s *Solver) Solve() int {
	return int(s.xo.Solve())
}

// Value reports m's truth value in the model from the last Solve call.
// Only meaningful immediately after a SAT result.
func (s *Solver) Value(m z.Lit) bool {
	model := s.xo.Model
	if int(m.Var()) >= len(model) {
		return false
	}
	val := model[m.Var()]
	if m.Sign() {
		val = val.Not()
	}
	return val == z.LTrue
}

// Interrupt requests the currently running (or next) Solve call return
// Unknown as soon as it safely can. Safe to call from another goroutine.
func (s *Solver) Interrupt() {
	s.xo.Interrupt()
}

// ClearInterrupt resets the interrupt flag ahead of a fresh Solve call.
func (s *Solver) ClearInterrupt() {
	s.xo.ClearInterrupt()
}

// Stats reports the solver's running counters.
func (s *Solver) Stats() xo.Stats {
	var st xo.Stats
	s.xo.ReadStats(&st)
	return st
}

// Validate runs the DRUP-style backward proof check. Only valid to call
// once Solve has returned -1 (UNSAT) with proof logging enabled
// (Options.Valid).
func (s *Solver) Validate() bool {
	return s.xo.Validate()
}

// Replay walks the validated proof log forward, reporting each
// resolution step it reconstructs to v.
func (s *Solver) Replay(v xo.ProofVisitor) {
	s.xo.Replay(v)
}

// ToDimacs writes the current clause database as DIMACS CNF.
func (s *Solver) ToDimacs(w io.Writer, assumps []z.Lit) error {
	return s.xo.ToDimacs(w, assumps)
}

// ProofLog captures the resolution proof from the last Solve call as a
// standalone snapshot, for persisting or re-walking without holding a
// reference to the solver. Only meaningful once Solve has returned -1
// with proof logging enabled.
func (s *Solver) ProofLog() proof.Log {
	return proof.Capture(s.xo)
}
