// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// Add implements the DIMACS-visitor contract: literals accumulate in an
// internal buffer until a z.LitUndef terminator arrives, at which point the
// buffered clause is added at partition Singleton(part) (or RangeUndef if
// part is unset). Any variable mentioned beyond the current Max is created
// on the fly, so a stream of Adds need not be preceded by NewVar calls.
func (s *Solver) Add(m z.Lit) {
	if m == z.LitUndef {
		s.AddClause(s.addBuf, s.addPart)
		s.addBuf = s.addBuf[:0]
		s.addPart = z.RangeUndef
		return
	}
	s.ensureVar(m.Var())
	s.addBuf = append(s.addBuf, m)
}

// SetAddPartition tags the next clause flushed by Add with the given
// partition id, for callers building a partitioned (interpolation-ready)
// instance clause by clause over the Add/Eof surface.
func (s *Solver) SetAddPartition(id int) {
	s.addPart = z.Singleton(id)
}

func (s *Solver) ensureVar(v z.Var) {
	for v > s.Vars.Max {
		s.NewVar(false, true)
	}
}

// Init implements dimacs.CnfVis. The core grows its variable/clause
// storage on demand, so the header counts are informational only; this
// preallocates to avoid repeated slice growth on large instances.
func (s *Solver) Init(vars, clauses int) {
	for s.Vars.Max < z.Var(vars)-1 {
		s.NewVar(false, true)
	}
}

// Eof signals the end of a DIMACS stream. The core needs no finalization
// step, but implements it so Solver satisfies dimacs.CnfVis.
func (s *Solver) Eof() {}

// MaxVar returns the highest variable index the solver has created.
func (s *Solver) MaxVar() z.Var {
	return s.Vars.Max
}

// Lit creates a fresh variable and returns its positive literal.
func (s *Solver) Lit() z.Lit {
	v := s.NewVar(false, true)
	return v.Pos()
}
