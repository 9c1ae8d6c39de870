// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// learntSizeAdjustStartConfl/Inc govern how often the learnt-clause size
// limit grows during search; unlike the decay/restart knobs these aren't
// independently tunable in the external interface, so they follow the
// classic MiniSat schedule.
const (
	learntSizeAdjustStartConfl = 100
	learntSizeAdjustInc        = 1.5
)

// cancelUntil unwinds the trail back to the given decision level,
// restoring phase-saved polarities per the phase-saving option and
// reinserting every unassigned decision variable into the order heap.
func (s *Solver) cancelUntil(level int) {
	if s.Trail.Level() <= level {
		return
	}
	limit := s.Trail.LevelLimit(level)
	lastLevelStart := s.Trail.LevelLimit(s.Trail.Level() - 1)
	for c := s.Trail.Len() - 1; c >= limit; c-- {
		x := s.Trail.At(c).Var()
		if s.Opts.PhaseSaving > 1 || (s.Opts.PhaseSaving == 1 && c > lastLevelStart) {
			s.Vars.SetPolarity(x, s.Trail.At(c).Sign())
		}
		s.Vars.Unassign(x)
	}
	s.Trail.SetQHead(limit)
	s.Trail.Shrink(limit)
	for s.Trail.Level() > level {
		s.Trail.PopLevel()
	}
}

// pickBranchLit chooses the next decision literal via the activity-ordered
// heap, occasionally picking uniformly at random per rnd-freq, and phase
// saving the polarity of the chosen variable's last assignment. Returns
// z.LitUndef when every decision variable is already assigned — a model
// has been found.
func (s *Solver) pickBranchLit() z.Lit {
	next := z.VarUndef

	if s.Opts.RndFreq > 0 && s.rng.Float64() < s.Opts.RndFreq && !s.Vars.Heap.Empty() {
		cand := s.Vars.Heap.At(s.rng.Intn(s.Vars.Heap.Len()))
		if s.Vars.VarValue(cand) == z.LUndef && s.Vars.IsDecisionVar(cand) {
			next = cand
		}
	}

	for next == z.VarUndef || s.Vars.VarValue(next) != z.LUndef || !s.Vars.IsDecisionVar(next) {
		if s.Vars.Heap.Empty() {
			next = z.VarUndef
			break
		}
		next = s.Vars.Heap.PopMax()
	}

	if next == z.VarUndef {
		return z.LitUndef
	}
	return z.MkLit(next, s.Vars.Polarity(next))
}

// newDecisionLevel opens a fresh decision level on the trail.
func (s *Solver) newDecisionLevel() {
	s.Trail.NewDecisionLevel()
}

// search runs CDCL until it has either found a model, proved unsatisfiability,
// or burned through nofConflicts conflicts (a negative bound means no limit
// beyond the resource budgets), returning Unknown in the last case.
func (s *Solver) search(nofConflicts int) Result {
	conflictC := 0
	s.stats.Restarts++

	for {
		confl := s.Propagate(false)
		if confl != ClauseRefUndef {
			s.conflicts++
			s.stats.Conflicts++
			conflictC++
			if s.Trail.Level() == 0 {
				if s.LogProof {
					s.Proof = append(s.Proof, confl)
				}
				return Unsat
			}

			learnt, btLevel, part := s.Analyze(confl)
			s.cancelUntil(btLevel)

			if len(learnt) == 1 {
				if s.LogProof {
					cr := s.Arena.Alloc(learnt, true, part)
					s.Proof = append(s.Proof, cr)
					s.uncheckedEnqueue(learnt[0], cr)
				} else {
					s.uncheckedEnqueue(learnt[0], ClauseRefUndef)
				}
				s.stats.LearntUnits++
			} else {
				cr := s.Arena.Alloc(learnt, true, part)
				if s.LogProof {
					s.Proof = append(s.Proof, cr)
				}
				s.learnts = append(s.learnts, cr)
				s.attachClause(cr)
				s.claBumpActivity(cr)
				s.uncheckedEnqueue(learnt[0], cr)
				s.stats.Learnts++
			}

			s.Vars.Decay()
			s.claDecayActivity()

			s.learntsizeAdjCnt--
			if s.learntsizeAdjCnt == 0 {
				s.learntsizeAdjConfl *= learntSizeAdjustInc
				s.learntsizeAdjCnt = int(s.learntsizeAdjConfl)
				s.maxLearnts *= s.Opts.LearntSizeInc
			}
		} else {
			if (nofConflicts >= 0 && conflictC >= nofConflicts) || !s.withinBudget() {
				s.cancelUntil(0)
				return Unknown
			}

			if s.Trail.Level() == 0 && !s.simplify() {
				return Unsat
			}

			if len(s.learnts)-s.Trail.Len() >= int(s.maxLearnts) {
				s.reduceDB()
			}

			next := z.LitUndef
			for s.Trail.Level() < len(s.Assumptions) {
				a := s.Assumptions[s.Trail.Level()]
				switch s.Value(a) {
				case z.LTrue:
					s.newDecisionLevel()
				case z.LFalse:
					s.analyzeFinal(a.Negate())
					return Unsat
				default:
					next = a
				}
				if next != z.LitUndef {
					break
				}
			}

			if next == z.LitUndef {
				s.decisions++
				s.stats.Decisions++
				next = s.pickBranchLit()
				if next == z.LitUndef {
					return Sat
				}
			}

			s.newDecisionLevel()
			s.uncheckedEnqueue(next, ClauseRefUndef)
		}
	}
}

// Solve runs the full restart-scheduled search to completion (or until
// interrupted / budget-exhausted), populating Model on Sat and ConflictLits
// on an assumption-driven Unsat.
func (s *Solver) Solve() Result {
	s.Model = nil
	s.conflict = s.conflict[:0]
	if !s.ok {
		return Unsat
	}

	s.maxLearnts = float64(len(s.clauses)) * s.Opts.LearntSizeFactor
	s.learntsizeAdjConfl = learntSizeAdjustStartConfl
	s.learntsizeAdjCnt = int(s.learntsizeAdjConfl)

	status := Unknown
	currRestarts := 0
	for status == Unknown {
		restBase := s.Opts.restartBase(currRestarts)
		status = s.search(int(restBase * float64(s.Opts.RFirst)))
		if !s.withinBudget() {
			break
		}
		currRestarts++
	}

	if status == Sat {
		s.Model = make([]z.LBool, s.Vars.Max+1)
		for v := z.Var(0); v <= s.Vars.Max; v++ {
			s.Model[v] = s.Vars.VarValue(v)
		}
		s.stats.Sat++
	} else if status == Unsat && len(s.conflict) == 0 {
		s.ok = false
		s.stats.Unsat++
	} else if status == Unsat {
		s.stats.Unsat++
	}

	s.cancelUntil(0)
	s.Assumptions = s.Assumptions[:0]
	return status
}
