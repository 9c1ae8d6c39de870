// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package proof

import (
	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/z"
)

// Entry is one clause from a finished solve's resolution proof, captured
// as plain literals so it survives independently of the solver's clause
// arena (which may later compact or free the clause it came from).
type Entry struct {
	Lits      []z.Lit
	Learnt    bool
	Partition z.Range
}

// Log is a read-only snapshot of a finished Solve call's resolution
// proof, for callers that want to persist or re-walk it without holding
// a reference to the solver itself.
type Log struct {
	Entries []Entry
}

// Capture copies s's current proof log into a standalone Log. The log is
// a complete refutation only after an Unsat result with Options.Valid
// set; with Options.Valid unset s.Proof is empty and Capture returns a
// zero Log.
func Capture(s *xo.Solver) Log {
	entries := make([]Entry, len(s.Proof))
	for i, cr := range s.Proof {
		c := s.Arena.Clause(cr)
		lits := make([]z.Lit, len(c.Lits))
		copy(lits, c.Lits)
		entries[i] = Entry{Lits: lits, Learnt: c.Learnt, Partition: c.Partition}
	}
	return Log{Entries: entries}
}

// Len returns the number of proof entries (learnt clauses and deletion
// records, in the order Solve produced them). After an Unsat result the
// last entry is the final conflicting clause, all of whose literals are
// false at level 0.
func (l Log) Len() int {
	return len(l.Entries)
}
