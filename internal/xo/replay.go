// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// Replay walks the proof log forward, re-deriving each core lemma by
// temporarily assuming its negation and running propagation, and reports
// every resolution step it reconstructs to v. It assumes the initial
// clause database (the state Validate left behind, or the original
// database if Validate was never run) propagates to a fixed point without
// conflict.
func (s *Solver) Replay(v ProofVisitor) {
	confl := s.Propagate(true) // the initial database must already be consistent

	s.labelLevel0(v)

	for i := 0; i < len(s.Proof); i++ {
		cr := s.Proof[i]
		c := s.Arena.Clause(cr)

		if !c.Deleted() && !s.locked(cr) && !c.Core {
			if c.Size() > 1 {
				s.detachClause(cr, false)
			}
			s.Arena.MarkDeleted(cr)
			continue
		}
		if !c.Core || !c.Deleted() {
			continue
		}

		s.newDecisionLevel()
		for _, l := range c.Lits {
			s.enqueue(l.Negate(), ClauseRefUndef)
		}
		s.newDecisionLevel()
		p := s.Propagate(true)

		if s.traverseProof(v, cr, p) {
			s.cancelUntil(0)
			s.Arena.MarkLive(cr)
			if c.Size() <= 1 || s.Value(c.Lits[1]) == z.LFalse {
				s.uncheckedEnqueue(c.Lits[0], cr)
				confl = s.Propagate(true)
				s.labelLevel0(v)
				if confl != ClauseRefUndef {
					s.labelFinal(v, confl)
					break
				}
			} else {
				s.attachClause(cr)
			}
		} else {
			s.cancelUntil(0)
		}
	}

	if len(s.Proof) == 1 {
		s.labelFinal(v, s.Proof[0])
	}
}

// labelFinal reports the chain that resolves confl's clause down to the
// empty clause, using each of its (all-false) literals as a pivot.
func (s *Solver) labelFinal(v ProofVisitor, confl ClauseRef) {
	source := s.Arena.Clause(confl)
	chainClauses := []ClauseRef{confl}
	chainPivots := make([]z.Lit, 0, len(source.Lits))
	for _, l := range source.Lits {
		chainPivots = append(chainPivots, l.Negate())
	}
	v.VisitChainResolvent(ClauseRefUndef, chainClauses, chainPivots)
}

// traverseProof reconstructs the resolution chain that derives proofClause
// from confl (the conflict produced by assuming proofClause's negation),
// walking the trail from its tail and folding in reason clauses until
// every literal of confl has been accounted for. Reports false if the
// chain turns out to be empty (confl was already implied at a level the
// walk never visits).
func (s *Solver) traverseProof(v ProofVisitor, proofClause, confl ClauseRef) bool {
	conflC := s.Arena.Clause(confl)
	pathC := conflC.Size()
	for _, l := range conflC.Lits {
		s.Vars.MarkSeen(l.Var())
	}

	chainClauses := []ClauseRef{confl}
	var chainPivots []z.Lit

	for i := s.Trail.Len() - 1; pathC > 0; i-- {
		x := s.Trail.At(i).Var()
		if !s.Vars.Seen(x) {
			continue
		}
		s.Vars.ClearSeen(x)
		pathC--

		if s.Vars.Level(x) == 1 {
			continue
		}

		chainPivots = append(chainPivots, s.Trail.At(i))
		if s.Vars.Level(x) > 0 {
			chainClauses = append(chainClauses, s.Vars.Reason(x))
		} else {
			continue
		}

		rc := s.Arena.Clause(s.Vars.Reason(x))
		for j := 1; j < len(rc.Lits); j++ {
			w := rc.Lits[j].Var()
			if !s.Vars.Seen(w) {
				s.Vars.MarkSeen(w)
				pathC++
			}
		}
	}

	if len(chainPivots) == 0 {
		return false
	}
	v.VisitChainResolvent(proofClause, chainClauses, chainPivots)
	return true
}

// labelLevel0 reports every level-0 unit derived since the last call as a
// resolution step (binary, if its reason has exactly two literals, or a
// chain otherwise), then bookmarks how far it has walked.
func (s *Solver) labelLevel0(v ProofVisitor) {
	size := s.Trail.Len() - 1
	for i := s.replayStart; i <= size; i++ {
		x := s.Trail.At(i).Var()
		r := s.Vars.Reason(x)
		if r == ClauseRefUndef {
			continue
		}
		c := s.Arena.Clause(r)
		if c.Size() == 1 {
			continue
		}
		if c.Size() == 2 {
			v.VisitResolvent(s.Trail.At(i), c.Lits[1].Negate(), r)
			continue
		}
		chainClauses := []ClauseRef{r}
		chainPivots := make([]z.Lit, 0, c.Size()-1)
		for j := 1; j < c.Size(); j++ {
			chainPivots = append(chainPivots, c.Lits[j].Negate())
		}
		v.VisitChainResolventUnit(s.Trail.At(i), chainClauses, chainPivots)
	}
	s.replayStart = size + 1
}
