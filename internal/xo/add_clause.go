// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"golang.org/x/exp/slices"

	"github.com/satkit/cdcl/z"
)

// AddClause adds the disjunction ps to the clause database at decision
// level 0, tagging it with the partition range part (recorded on the
// stored clause whether or not proof logging is on). It reports whether the solver remains
// satisfiable; once it returns false, Ok() stays false for the life of the
// solver.
//
// A clause containing a literal already assigned true, or two complementary
// literals, is a tautology and is silently dropped rather than added — this
// mirrors the reference solver's addClause_.
func (s *Solver) AddClause(ps []z.Lit, part z.Range) bool {
	if !s.ok {
		return false
	}

	lits := append([]z.Lit(nil), ps...)
	slices.SortFunc(lits, func(a, b z.Lit) int { return int(a) - int(b) })

	var prev z.Lit = z.LitUndef
	j := 0
	if s.LogProof {
		for i := 0; i < len(lits); i++ {
			if s.Value(lits[i]) == z.LTrue || lits[i] == prev.Negate() {
				return true
			}
			if lits[i] != prev {
				lits[j] = lits[i]
				prev = lits[i]
				j++
			}
		}
		lits = lits[:j]
		// Move false literals to the tail so a non-false literal ends up
		// in position 0 (and, if one exists, position 1) whenever possible.
		sz := len(lits)
		for i := 0; i < sz; i++ {
			if s.Value(lits[i]) == z.LFalse {
				lits[i], lits[sz-1] = lits[sz-1], lits[i]
				sz--
				i--
			}
		}
	} else {
		for i := 0; i < len(lits); i++ {
			if s.Value(lits[i]) == z.LTrue || lits[i] == prev.Negate() {
				return true
			}
			if s.Value(lits[i]) != z.LFalse && lits[i] != prev {
				lits[j] = lits[i]
				prev = lits[i]
				j++
			}
		}
		lits = lits[:j]
	}

	switch {
	case len(lits) == 0:
		s.ok = false
		return false

	case s.LogProof && s.Value(lits[0]) == z.LFalse:
		cr := s.Arena.Alloc(lits, false, part)
		s.Proof = append(s.Proof, cr)
		if part.IsSingleton() {
			for _, l := range lits {
				s.Vars.JoinPartInfo(l.Var(), part)
			}
		}
		s.ok = false
		return false

	case len(lits) == 1 || (s.LogProof && s.Value(lits[1]) == z.LFalse):
		if s.LogProof {
			cr := s.Arena.Alloc(lits, false, part)
			s.clauses = append(s.clauses, cr)
			s.totalPart = z.Join(s.totalPart, part)
			s.uncheckedEnqueue(lits[0], cr)
		} else {
			s.uncheckedEnqueue(lits[0], ClauseRefUndef)
		}
		if part.IsSingleton() {
			for _, l := range lits {
				s.Vars.JoinPartInfo(l.Var(), part)
			}
		}
		s.ok = s.Propagate(false) == ClauseRefUndef
		return s.ok

	default:
		cr := s.Arena.Alloc(lits, false, part)
		s.clauses = append(s.clauses, cr)
		s.totalPart = z.Join(s.totalPart, part)
		s.attachClause(cr)
		if part.IsSingleton() {
			for _, l := range lits {
				s.Vars.JoinPartInfo(l.Var(), part)
			}
		}
		return true
	}
}

// attachClause registers cr's two watched literals in the watch lists. cr
// must refer to a clause of size >= 2.
func (s *Solver) attachClause(cr ClauseRef) {
	c := s.Arena.Clause(cr)
	s.Watches.Append(c.Lits[0].Negate(), Watcher{Cref: cr, Blocker: c.Lits[1]})
	s.Watches.Append(c.Lits[1].Negate(), Watcher{Cref: cr, Blocker: c.Lits[0]})
	if c.Learnt {
		s.learntsLiterals += len(c.Lits)
	} else {
		s.clausesLiterals += len(c.Lits)
	}
}

// detachClause removes cr's watches. strict does an immediate scan-and-
// remove; the lazy default just smudges the two lists for CleanAll to
// sweep on the next propagate.
func (s *Solver) detachClause(cr ClauseRef, strict bool) {
	c := s.Arena.Clause(cr)
	if strict {
		removeWatcher(s.Watches, c.Lits[0].Negate(), cr)
		removeWatcher(s.Watches, c.Lits[1].Negate(), cr)
	} else {
		s.Watches.Smudge(c.Lits[0].Negate())
		s.Watches.Smudge(c.Lits[1].Negate())
	}
	if c.Learnt {
		s.learntsLiterals -= len(c.Lits)
	} else {
		s.clausesLiterals -= len(c.Lits)
	}
}

func removeWatcher(w *WatchList, lit z.Lit, cr ClauseRef) {
	ws := w.Watches(lit)
	for i, e := range ws {
		if e.Cref == cr {
			ws = append(ws[:i], ws[i+1:]...)
			break
		}
	}
	w.SetWatches(lit, ws)
}

// removeClause logically removes cr: while proof logging is on, its
// storage is retained (a validator/replayer may still need to walk or
// resurrect it) and only its deletion is recorded; otherwise it is
// unlinked and its storage reclaimed.
func (s *Solver) removeClause(cr ClauseRef) {
	if s.LogProof {
		s.Proof = append(s.Proof, cr)
	}
	c := s.Arena.Clause(cr)
	if c.Size() > 1 {
		s.detachClause(cr, false)
	}
	if s.locked(cr) && !s.LogProof {
		s.Vars.Assign(c.Lits[0].Var(), s.Vars.VarValue(c.Lits[0].Var()), ClauseRefUndef, s.Vars.Level(c.Lits[0].Var()))
	}
	s.Arena.MarkDeleted(cr)
	if !s.LogProof {
		s.Arena.Free(cr)
	}
}

// locked reports whether cr is the reason some currently-assigned variable
// was propagated — i.e. removing it would leave a dangling reason pointer.
func (s *Solver) locked(cr ClauseRef) bool {
	c := s.Arena.Clause(cr)
	v := c.Lits[0].Var()
	return s.Value(c.Lits[0]) == z.LTrue && s.Vars.Reason(v) == cr
}

// satisfied reports whether some literal of cr is currently true.
func (s *Solver) satisfied(cr ClauseRef) bool {
	c := s.Arena.Clause(cr)
	for _, l := range c.Lits {
		if s.Value(l) == z.LTrue {
			return true
		}
	}
	return false
}
