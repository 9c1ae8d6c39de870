// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// Validate performs the DRUP-style backward pass over the proof log: it
// confirms the final clause is a genuine conflict under the current
// (all-false) assignment, then walks the log in reverse, re-deriving and
// marking as Core every clause whose absence would invalidate the
// certificate, and unwinding from the trail every literal a learnt clause
// forced (input-clause units stay assigned at level 0). It must
// only be called once Solve has returned Unsat with proof logging on.
func (s *Solver) Validate() bool {
	last := s.Arena.Clause(s.Proof[len(s.Proof)-1])
	last.Core = true
	for _, l := range last.Lits {
		if s.Value(l) != z.LFalse {
			return false
		}
		x := l.Var()
		s.Arena.Clause(s.Vars.Reason(x)).Core = true
	}

	trailSz := s.Trail.Len()
	s.ok = true

	for i := len(s.Proof) - 2; i >= 0; i-- {
		cr := s.Proof[i]
		c := s.Arena.Clause(cr)

		if c.Deleted() {
			s.Arena.MarkLive(cr)
			if c.Size() > 1 {
				s.attachClause(cr)
			} else {
				s.enqueue(c.Lits[0], cr)
			}
			continue
		}

		if s.locked(cr) {
			for s.Trail.At(trailSz-1) != c.Lits[0] {
				x := s.Trail.At(trailSz - 1).Var()
				s.Vars.ForceUndef(x)
				s.Vars.InsertVarOrder(x)
				trailSz--

				r := s.Vars.Reason(x)
				if s.Arena.Clause(r).Core {
					rc := s.Arena.Clause(r)
					for j := 1; j < len(rc.Lits); j++ {
						y := rc.Lits[j].Var()
						s.Arena.Clause(s.Vars.Reason(y)).Core = true
					}
				}
			}
			s.Vars.ForceUndef(c.Lits[0].Var())
			s.Vars.InsertVarOrder(c.Lits[0].Var())
			trailSz--
		}

		if c.Size() > 1 {
			s.detachClause(cr, false)
		}
		s.Arena.MarkDeleted(cr)

		if c.Core {
			s.Trail.Shrink(trailSz)
			s.Trail.SetQHead(s.Trail.Len())
			s.Trail.SetLevelZeroLimit(s.Trail.Len())
			if !s.validateLemma(cr) {
				return false
			}
		}
	}

	s.Trail.Shrink(trailSz)
	s.Trail.SetQHead(s.Trail.Len())
	s.Trail.SetLevelZeroLimit(s.Trail.Len())

	for i := s.Trail.Len() - 1; i >= 0; i-- {
		c := s.Arena.Clause(s.Vars.Reason(s.Trail.At(i).Var()))
		if c.Core {
			for j := 1; j < len(c.Lits); j++ {
				y := c.Lits[j].Var()
				s.Arena.Clause(s.Vars.Reason(y)).Core = true
			}
		}
	}

	return true
}

// validateLemma re-derives cr (already detached and marked deleted by the
// caller) by assuming its negation and checking that propagation reaches a
// conflict, marking every clause the derivation actually depended on as
// Core.
func (s *Solver) validateLemma(cr ClauseRef) bool {
	lemma := s.Arena.Clause(cr)

	s.newDecisionLevel()
	for _, l := range lemma.Lits {
		s.enqueue(l.Negate(), ClauseRefUndef)
	}

	s.newDecisionLevel()
	confl := s.Propagate(false)
	if confl == ClauseRefUndef {
		return false
	}
	conflC := s.Arena.Clause(confl)
	conflC.Core = true
	for _, l := range conflC.Lits {
		x := l.Var()
		switch {
		case s.Vars.Level(x) > 1:
			s.Vars.MarkSeen(x)
		case s.Vars.Level(x) <= 0:
			s.Arena.Clause(s.Vars.Reason(x)).Core = true
		}
	}

	for i := s.Trail.Len() - 1; i >= s.Trail.LevelLimit(1); i-- {
		x := s.Trail.At(i).Var()
		if !s.Vars.Seen(x) {
			continue
		}
		s.Vars.ClearSeen(x)
		r := s.Vars.Reason(x)
		c := s.Arena.Clause(r)
		c.Core = true
		for j := 1; j < len(c.Lits); j++ {
			y := c.Lits[j].Var()
			switch {
			case s.Vars.Level(y) > 1:
				s.Vars.MarkSeen(y)
			case s.Vars.Level(y) <= 0:
				s.Arena.Clause(s.Vars.Reason(y)).Core = true
			}
		}
	}

	s.cancelUntil(0)
	s.ok = true
	return true
}
