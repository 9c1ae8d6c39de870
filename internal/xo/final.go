// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// analyzeFinal computes the (possibly empty) subset of assumptions that
// forced p's assignment, storing it as the final conflict clause over
// negated assumptions.
func (s *Solver) analyzeFinal(p z.Lit) {
	s.conflict = s.conflict[:0]
	s.conflict = append(s.conflict, p)

	if s.Trail.Level() == 0 {
		return
	}

	s.Vars.MarkSeen(p.Var())

	for i := s.Trail.Len() - 1; i >= s.Trail.LevelLimit(0); i-- {
		x := s.Trail.At(i).Var()
		if !s.Vars.Seen(x) {
			continue
		}
		if r := s.Vars.Reason(x); r == ClauseRefUndef {
			s.conflict = append(s.conflict, s.Trail.At(i).Negate())
		} else {
			c := s.Arena.Clause(r)
			for j := 1; j < len(c.Lits); j++ {
				w := c.Lits[j].Var()
				if s.Vars.Level(w) > 0 {
					s.Vars.MarkSeen(w)
				}
			}
		}
		s.Vars.ClearSeen(x)
	}

	s.Vars.ClearSeen(p.Var())
}
