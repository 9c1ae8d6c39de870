// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"golang.org/x/exp/slices"

	"github.com/satkit/cdcl/z"
)

// reduceDB drops roughly the lower half of the learnt clause database by
// activity, skipping binary and locked clauses, which are never removed
// regardless of how inactive they are.
func (s *Solver) reduceDB() {
	extraLim := s.claInc / float64(len(s.learnts))

	less := func(a, b ClauseRef) bool {
		x, y := s.Arena.Clause(a), s.Arena.Clause(b)
		return x.Size() > 2 && (y.Size() == 2 || x.Activity < y.Activity)
	}
	slices.SortFunc(s.learnts, func(a, b ClauseRef) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})

	n := len(s.learnts)
	j := 0
	for i := 0; i < n; i++ {
		cr := s.learnts[i]
		c := s.Arena.Clause(cr)
		if c.Size() > 2 && !s.locked(cr) && (i < n/2 || float64(c.Activity) < extraLim) {
			s.removeClause(cr)
			s.stats.Removed++
		} else {
			s.learnts[j] = s.learnts[i]
			j++
		}
	}
	s.learnts = s.learnts[:j]
	s.checkGarbage()
}

// removeSatisfiedFrom drops every clause in refs that is satisfied at the
// current (level-0) assignment, compacting refs in place.
func (s *Solver) removeSatisfiedFrom(refs []ClauseRef) []ClauseRef {
	j := 0
	for i := range refs {
		if s.satisfied(refs[i]) {
			s.removeClause(refs[i])
		} else {
			refs[j] = refs[i]
			j++
		}
	}
	return refs[:j]
}

// rebuildOrderHeap repopulates the decision-variable order heap from
// scratch with every currently unassigned decision variable, discarding
// stale entries accumulated by simplify's clause removal.
func (s *Solver) rebuildOrderHeap() {
	var vs []z.Var
	for v := z.Var(0); v <= s.Vars.Max; v++ {
		if s.Vars.IsDecisionVar(v) && s.Vars.VarValue(v) == z.LUndef {
			vs = append(vs, v)
		}
	}
	s.Vars.Heap.Rebuild(vs)
}

// simplify removes satisfied clauses from the database at decision level
// 0. It is a cheap no-op on calls where nothing relevant has changed since
// the last one.
func (s *Solver) simplify() bool {
	if !s.ok || s.Propagate(false) != ClauseRefUndef {
		s.ok = false
		return false
	}
	if s.Trail.Len() == s.simpDBAssigns || s.simpDBProps > 0 {
		return true
	}

	s.learnts = s.removeSatisfiedFrom(s.learnts)
	if s.removeSatisfiedOrig {
		s.clauses = s.removeSatisfiedFrom(s.clauses)
	}
	s.checkGarbage()
	s.rebuildOrderHeap()

	s.simpDBAssigns = s.Trail.Len()
	s.simpDBProps = int64(s.clausesLiterals + s.learntsLiterals)
	return true
}
