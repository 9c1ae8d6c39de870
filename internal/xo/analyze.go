// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// claBumpActivity increases a learnt clause's activity, rescaling every
// learnt clause's activity if the increment would overflow — mirrors
// VarState.Bump's rescale-on-overflow shape.
func (s *Solver) claBumpActivity(cr ClauseRef) {
	c := s.Arena.Clause(cr)
	c.Activity += float32(s.claInc)
	if c.Activity > 1e20 {
		for _, lr := range s.learnts {
			lc := s.Arena.Clause(lr)
			lc.Activity *= 1e-20
		}
		s.claInc *= 1e-20
	}
}

func (s *Solver) claDecayActivity() {
	s.claInc /= s.Opts.ClaDecay
}

// abstractLevel returns a 32-bit abstraction of v's decision level, used by
// litRedundant to cheaply rule out a reason clause that cannot possibly be
// resolved away.
func (s *Solver) abstractLevel(v z.Var) uint32 {
	return 1 << (uint32(s.Vars.Level(v)) & 31)
}

// Analyze walks back from the conflicting clause confl to the first-UIP
// learnt clause, returning it, the backtrack level to unwind to, and (when
// proof logging is on) the partition folded over every clause and level-0
// literal the derivation touched.
//
// analyzeToClear is reused across calls purely to avoid reallocating; it is
// always left empty on return.
func (s *Solver) Analyze(confl ClauseRef) (learnt []z.Lit, btLevel int, part z.Range) {
	pathC := 0
	p := z.LitUndef

	learnt = append(learnt, z.LitUndef) // room for the asserting literal
	index := s.Trail.Len()

	if s.LogProof {
		part = s.Arena.Clause(confl).Partition
	}

	for {
		c := s.Arena.Clause(confl)
		if s.LogProof {
			part = z.Join(part, c.Partition)
		}
		if c.Learnt {
			s.claBumpActivity(confl)
		}

		start := 0
		if p != z.LitUndef {
			start = 1
		}
		for j := start; j < len(c.Lits); j++ {
			q := c.Lits[j]
			if s.Vars.Seen(q.Var()) {
				continue
			}
			if s.Vars.Level(q.Var()) > 0 {
				s.Vars.Bump(q.Var())
				s.Vars.MarkSeen(q.Var())
				if s.Vars.Level(q.Var()) >= s.Trail.Level() {
					pathC++
				} else {
					learnt = append(learnt, q)
				}
			} else if s.LogProof {
				part = z.Join(part, s.Vars.TrailPart(q.Var()))
			}
		}

		for {
			index--
			if s.Vars.Seen(s.Trail.At(index).Var()) {
				break
			}
		}
		p = s.Trail.At(index)
		confl = s.Vars.Reason(p.Var())
		s.Vars.ClearSeen(p.Var())
		pathC--

		if pathC <= 0 {
			break
		}
	}
	learnt[0] = p.Negate()

	s.analyzeToClear = append(s.analyzeToClear[:0], learnt...)

	var i, j int
	switch s.Opts.CCMinMode {
	case 2:
		var abstractLevels uint32
		for i := 1; i < len(learnt); i++ {
			abstractLevels |= s.abstractLevel(learnt[i].Var())
		}
		j = 1
		for i = 1; i < len(learnt); i++ {
			if s.Vars.Reason(learnt[i].Var()) == ClauseRefUndef || !s.litRedundant(learnt[i], abstractLevels, &part) {
				learnt[j] = learnt[i]
				j++
			}
		}
		learnt = learnt[:j]
	case 1:
		j = 1
		for i = 1; i < len(learnt); i++ {
			x := learnt[i].Var()
			r := s.Vars.Reason(x)
			if r == ClauseRefUndef {
				learnt[j] = learnt[i]
				j++
				continue
			}
			c := s.Arena.Clause(r)
			for k := 1; k < len(c.Lits); k++ {
				w := c.Lits[k].Var()
				if !s.Vars.Seen(w) && s.Vars.Level(w) > 0 {
					learnt[j] = learnt[i]
					j++
					break
				}
			}
		}
		learnt = learnt[:j]
	default:
		// no minimization
	}

	for _, l := range s.analyzeToClear {
		s.Vars.ClearSeen(l.Var())
	}
	s.analyzeToClear = s.analyzeToClear[:0]

	if len(learnt) == 1 {
		btLevel = 0
	} else {
		maxI := 1
		for i := 2; i < len(learnt); i++ {
			if s.Vars.Level(learnt[i].Var()) > s.Vars.Level(learnt[maxI].Var()) {
				maxI = i
			}
		}
		learnt[maxI], learnt[1] = learnt[1], learnt[maxI]
		btLevel = s.Vars.Level(learnt[1].Var())
	}

	return learnt, btLevel, part
}

// litRedundant reports whether p's assignment is implied by literals
// already in the learnt clause, so it can be dropped during ccmin-mode 2
// minimization. On success, the partition of every clause visited during
// the search is folded into part; on failure, every seen mark and
// analyzeToClear entry added during this call is rolled back and part is
// left untouched — a failed attempt must not leak its derivation into the
// caller's partition, only a successful one may.
func (s *Solver) litRedundant(p z.Lit, abstractLevels uint32, part *z.Range) bool {
	stack := []z.Lit{p}
	var lPart z.Range
	top := len(s.analyzeToClear)

	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cr := s.Vars.Reason(q.Var())
		c := s.Arena.Clause(cr)
		if s.LogProof {
			lPart = z.Join(lPart, c.Partition)
		}

		for i := 1; i < len(c.Lits); i++ {
			l := c.Lits[i]
			if s.Vars.Seen(l.Var()) {
				continue
			}
			if s.Vars.Level(l.Var()) > 0 {
				r := s.Vars.Reason(l.Var())
				if r != ClauseRefUndef && s.abstractLevel(l.Var())&abstractLevels != 0 {
					s.Vars.MarkSeen(l.Var())
					stack = append(stack, l)
					s.analyzeToClear = append(s.analyzeToClear, l)
				} else {
					for j := top; j < len(s.analyzeToClear); j++ {
						s.Vars.ClearSeen(s.analyzeToClear[j].Var())
					}
					s.analyzeToClear = s.analyzeToClear[:top]
					return false
				}
			} else if s.LogProof {
				lPart = z.Join(lPart, s.Vars.TrailPart(l.Var()))
			}
		}
	}

	if s.LogProof {
		*part = z.Join(*part, lPart)
	}
	return true
}
