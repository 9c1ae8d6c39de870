// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// Watcher is one entry of a literal's watch list: the clause being watched,
// plus a cached blocker literal that lets propagate skip the clause
// entirely when the blocker is already true.
type Watcher struct {
	Cref    ClauseRef
	Blocker z.Lit
}

// WatchList is the per-literal index of (clause, blocker) pairs. Deletion
// is lazy: Smudge marks a literal's list dirty and CleanAll later filters
// it in one amortized pass, rather than paying an O(n) scan on every
// clause removal.
type WatchList struct {
	lists [][]Watcher
	dirty []bool
}

// NewWatchList creates a watch list with no literals yet; Grow extends it.
func NewWatchList() *WatchList {
	return &WatchList{}
}

// Grow ensures the list can index every literal over variables < top.
func (w *WatchList) Grow(top z.Var) {
	n := int(top) * 2
	for len(w.lists) < n {
		w.lists = append(w.lists, nil)
		w.dirty = append(w.dirty, false)
	}
}

// Init ensures lit's list exists (a no-op here since Grow pre-allocates;
// kept as an explicit call at every watch site for symmetry).
func (w *WatchList) Init(lit z.Lit) {
	_ = lit
}

// Watches returns lit's current watch list. The caller must not retain the
// slice across a Smudge/CleanAll/Append-induced reallocation of the same
// literal's list.
func (w *WatchList) Watches(lit z.Lit) []Watcher {
	return w.lists[lit]
}

// SetWatches replaces lit's watch list wholesale (propagate rewrites lists
// in place while draining them).
func (w *WatchList) SetWatches(lit z.Lit, ws []Watcher) {
	w.lists[lit] = ws
}

// Append adds wch to lit's watch list.
func (w *WatchList) Append(lit z.Lit, wch Watcher) {
	w.lists[lit] = append(w.lists[lit], wch)
}

// Smudge marks lit's list as containing stale (deleted-clause) entries.
func (w *WatchList) Smudge(lit z.Lit) {
	w.dirty[lit] = true
}

// CleanAll rewrites every dirty list, dropping entries whose clause is
// marked dead according to isDead.
func (w *WatchList) CleanAll(isDead func(ClauseRef) bool) {
	for lit := range w.dirty {
		if !w.dirty[lit] {
			continue
		}
		ws := w.lists[lit]
		n := 0
		for _, e := range ws {
			if isDead(e.Cref) {
				continue
			}
			ws[n] = e
			n++
		}
		w.lists[lit] = ws[:n]
		w.dirty[lit] = false
	}
}

// Remap rewrites every ClauseRef in every watch list through remap after an
// arena compaction, dropping entries whose ref has no mapping (a dead
// clause that CleanAll should already have filtered out).
func (w *WatchList) Remap(remap map[ClauseRef]ClauseRef) {
	for lit := range w.lists {
		ws := w.lists[lit]
		n := 0
		for _, e := range ws {
			nr, ok := remap[e.Cref]
			if !ok {
				continue
			}
			e.Cref = nr
			ws[n] = e
			n++
		}
		w.lists[lit] = ws[:n]
	}
}
