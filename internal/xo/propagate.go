// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// uncheckedEnqueue assigns p (without checking for a prior conflicting
// assignment — callers must already know p is safe to assign), records its
// reason and level, and pushes it onto the trail. When proof logging is on
// and we are at level 0, it folds the partitions of the reason clause's
// other literals' reasons into the newly enqueued literal's partition.
func (s *Solver) uncheckedEnqueue(p z.Lit, reason ClauseRef) {
	val := z.LTrue
	if p.Sign() {
		val = z.LFalse
	}
	v := p.Var()
	s.Vars.Assign(v, val, reason, s.Trail.Level())
	if s.LogProof && s.Trail.Level() == 0 {
		c := s.Arena.Clause(reason)
		part := c.Partition
		for i := 1; i < len(c.Lits); i++ {
			w := c.Lits[i].Var()
			part = z.Join(part, s.Arena.Clause(s.Vars.Reason(w)).Partition)
		}
		s.Vars.SetTrailPart(v, part)
	}
	s.Trail.Push(p)
}

// enqueue is the checked counterpart of uncheckedEnqueue: it reports
// whether p is consistent with the current assignment (already true, or
// newly and successfully assigned), without propagating. Used by the
// validator and replayer, which drive propagate themselves.
func (s *Solver) enqueue(p z.Lit, from ClauseRef) bool {
	if s.Value(p) != z.LUndef {
		return s.Value(p) == z.LTrue
	}
	s.uncheckedEnqueue(p, from)
	return true
}

// Propagate drains the propagation queue with two-watched-literal BCP,
// returning the conflicting clause ref, or ClauseRefUndef if none. When
// coreOnly is set (used by validate/replay), clauses not marked Core are
// left untouched by the watch-swap logic — they are skipped entirely.
func (s *Solver) Propagate(coreOnly bool) ClauseRef {
	s.Watches.CleanAll(func(cr ClauseRef) bool {
		return s.Arena.Clause(cr).Deleted()
	})
	confl := ClauseRefUndef
	numProps := 0
	for s.Trail.QHead() < s.Trail.Len() {
		p := s.Trail.At(s.Trail.QHead())
		s.Trail.SetQHead(s.Trail.QHead() + 1)

		ws := s.Watches.Watches(p)
		keep := 0
		i := 0
		n := len(ws)
		for i < n {
			wch := ws[i]
			if s.Value(wch.Blocker) == z.LTrue {
				ws[keep] = wch
				keep++
				i++
				continue
			}
			cr := wch.Cref
			c := s.Arena.Clause(cr)
			if coreOnly && !c.Core {
				ws[keep] = wch
				keep++
				i++
				continue
			}
			if c.Lits[0] == p.Negate() {
				c.Lits[0], c.Lits[1] = c.Lits[1], c.Lits[0]
			}
			if s.Value(c.Lits[0]) == z.LTrue {
				ws[keep] = Watcher{Cref: cr, Blocker: c.Lits[0]}
				keep++
				i++
				continue
			}
			moved := false
			for k := 2; k < len(c.Lits); k++ {
				if s.Value(c.Lits[k]) != z.LFalse {
					c.Lits[1], c.Lits[k] = c.Lits[k], c.Lits[1]
					s.Watches.Append(c.Lits[1].Negate(), Watcher{Cref: cr, Blocker: c.Lits[0]})
					moved = true
					break
				}
			}
			if moved {
				i++
				continue
			}
			// no replacement watch found: stays watching p.
			ws[keep] = Watcher{Cref: cr, Blocker: c.Lits[0]}
			keep++
			i++
			if s.Value(c.Lits[0]) == z.LFalse {
				confl = cr
				s.Trail.SetQHead(s.Trail.Len())
				for ; i < n; i++ {
					ws[keep] = ws[i]
					keep++
				}
				break
			}
			s.uncheckedEnqueue(c.Lits[0], cr)
		}
		s.Watches.SetWatches(p, ws[:keep])
		s.propagations++
		s.stats.Propagations++
		numProps++
		if confl != ClauseRefUndef {
			break
		}
	}
	s.simpDBProps -= int64(numProps)
	return confl
}
