// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// clauseOverhead approximates the bookkeeping cost of a clause beyond its
// literals, for the wasted/size ratio that drives compaction.
const clauseOverhead = 3

// Arena is dense, relocatable storage of clauses addressed by the opaque
// ClauseRef. It supports compaction (Compact), which is only ever invoked
// while proof logging is off — proof entries hold ClauseRefs that a
// relocation would otherwise invalidate without a rewrite pass over the
// proof log itself, so the core simply disables compaction instead.
type Arena struct {
	clauses     []Clause
	wasted      int
	size        int
	garbageFrac float64
	logProof    bool
}

// NewArena creates an empty arena. garbageFrac is the wasted/size ratio
// that triggers compaction (gc-frac option); logProof disables compaction
// and makes Free a no-op.
func NewArena(garbageFrac float64, logProof bool) *Arena {
	return &Arena{garbageFrac: garbageFrac, logProof: logProof}
}

// Alloc appends a new clause and returns its ref. The literal slice is
// copied so the caller's backing array may be reused.
func (a *Arena) Alloc(lits []z.Lit, learnt bool, part z.Range) ClauseRef {
	cp := make([]z.Lit, len(lits))
	copy(cp, lits)
	a.clauses = append(a.clauses, Clause{Lits: cp, Learnt: learnt, Partition: part})
	a.size += len(cp) + clauseOverhead
	return ClauseRef(len(a.clauses) - 1)
}

// Clause dereferences r. The returned pointer is only valid until the next
// call to Alloc or Compact: callers must not hold it across either.
func (a *Arena) Clause(r ClauseRef) *Clause {
	return &a.clauses[r]
}

// Len returns the number of clause slots, live or dead, in the arena.
func (a *Arena) Len() int {
	return len(a.clauses)
}

// Free marks r for eventual reclamation. While proof logging is on it only
// sets the deletion mark and keeps the literals, so the validator/replayer
// can still walk it.
func (a *Arena) Free(r ClauseRef) {
	c := &a.clauses[r]
	c.mark = markDeleted
	if a.logProof {
		return
	}
	a.wasted += len(c.Lits) + clauseOverhead
	c.Lits = nil
}

// MarkDeleted sets the deletion bit without reclaiming storage, used by the
// proof log path where a "deletion" proof entry must still be resurrectable
// by the validator.
func (a *Arena) MarkDeleted(r ClauseRef) {
	a.clauses[r].mark = markDeleted
}

// MarkLive clears the deletion bit, resurrecting a clause the validator
// determined is still needed.
func (a *Arena) MarkLive(r ClauseRef) {
	a.clauses[r].mark = markLive
}

// NeedsGC reports whether wasted/size has crossed garbageFrac. Always false
// while proof logging is on.
func (a *Arena) NeedsGC() bool {
	if a.logProof || a.size == 0 {
		return false
	}
	return float64(a.wasted)/float64(a.size) > a.garbageFrac
}

// Compact relocates every clause for which keep returns true into a fresh,
// densely packed arena, in ascending ref order, and returns the table
// mapping old refs to new ones (refs not present in the map were dropped).
// Compact must only be called when logProof is false.
func (a *Arena) Compact(keep func(ClauseRef) bool) map[ClauseRef]ClauseRef {
	remap := make(map[ClauseRef]ClauseRef, len(a.clauses))
	fresh := make([]Clause, 0, len(a.clauses))
	for i := range a.clauses {
		r := ClauseRef(i)
		if !keep(r) {
			continue
		}
		remap[r] = ClauseRef(len(fresh))
		fresh = append(fresh, a.clauses[i])
	}
	a.clauses = fresh
	a.wasted = 0
	a.size = 0
	for i := range a.clauses {
		a.size += len(a.clauses[i].Lits) + clauseOverhead
	}
	return remap
}
