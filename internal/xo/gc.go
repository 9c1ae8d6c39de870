// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

// checkGarbage triggers a compaction when the arena's wasted fraction has
// crossed gc-frac. A no-op while proof logging is on, since Arena.NeedsGC
// always reports false in that mode.
func (s *Solver) checkGarbage() {
	if s.Arena.NeedsGC() {
		s.garbageCollect()
	}
}

// garbageCollect compacts the arena, dropping every clause marked deleted,
// and rewrites every ClauseRef the rest of the solver holds onto: the
// clauses/learnts lists, every watch list, and every variable's reason.
func (s *Solver) garbageCollect() {
	remap := s.Arena.Compact(func(cr ClauseRef) bool {
		return !s.Arena.Clause(cr).Deleted()
	})
	s.clauses = remapRefs(s.clauses, remap)
	s.learnts = remapRefs(s.learnts, remap)
	s.Watches.Remap(remap)
	s.Vars.RemapReasons(remap)
	s.stats.Compactions++
}

func remapRefs(refs []ClauseRef, remap map[ClauseRef]ClauseRef) []ClauseRef {
	out := refs[:0]
	for _, r := range refs {
		if nr, ok := remap[r]; ok {
			out = append(out, nr)
		}
	}
	return out
}
