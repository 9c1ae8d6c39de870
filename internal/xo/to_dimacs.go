// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/satkit/cdcl/z"
)

// ToDimacs writes the current clause database (original clauses plus
// assumps, remapped onto a dense 1..N range covering only the variables of
// non-false literals in unsatisfied clauses and of assumps) as DIMACS CNF
// to w. If
// the solver is already known-unsatisfiable, it writes a trivial
// contradictory instance instead of the real database.
func (s *Solver) ToDimacs(w io.Writer, assumps []z.Lit) error {
	if !s.ok {
		_, e := io.WriteString(w, "p cnf 1 2\n1 0\n-1 0\n")
		return errors.Wrap(e, "xo: writing contradictory dimacs")
	}

	remap := make(map[z.Var]int)
	maxVar := 0
	mapVar := func(v z.Var) int {
		id, ok := remap[v]
		if !ok {
			maxVar++
			id = maxVar
			remap[v] = id
		}
		return id
	}

	live := make([]ClauseRef, 0, len(s.clauses))
	for _, cr := range s.clauses {
		if !s.satisfied(cr) {
			live = append(live, cr)
		}
	}
	for _, cr := range live {
		c := s.Arena.Clause(cr)
		for _, l := range c.Lits {
			if s.Value(l) != z.LFalse {
				mapVar(l.Var())
			}
		}
	}
	for _, a := range assumps {
		mapVar(a.Var())
	}

	if _, e := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(live)+len(assumps)); e != nil {
		return errors.Wrap(e, "xo: writing dimacs header")
	}
	for _, cr := range live {
		if e := s.writeDimacsClause(w, cr, mapVar); e != nil {
			return e
		}
	}
	for _, a := range assumps {
		sign := ""
		if a.Sign() {
			sign = "-"
		}
		if _, e := fmt.Fprintf(w, "%s%d 0\n", sign, mapVar(a.Var())); e != nil {
			return errors.Wrap(e, "xo: writing dimacs assumption")
		}
	}
	return nil
}

func (s *Solver) writeDimacsClause(w io.Writer, cr ClauseRef, mapVar func(z.Var) int) error {
	c := s.Arena.Clause(cr)
	for _, l := range c.Lits {
		if s.Value(l) == z.LFalse {
			continue
		}
		sign := ""
		if l.Sign() {
			sign = "-"
		}
		if _, e := fmt.Fprintf(w, "%s%d ", sign, mapVar(l.Var())); e != nil {
			return errors.Wrap(e, "xo: writing dimacs literal")
		}
	}
	if _, e := io.WriteString(w, "0\n"); e != nil {
		return errors.Wrap(e, "xo: writing dimacs clause terminator")
	}
	return nil
}
