// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// Trail is the ordered sequence of assigned literals, bookmarked per
// decision level. lim[k] is the trail index where decision level k+1's
// first literal sits; decisionLevel() == len(lim).
type Trail struct {
	lits  []z.Lit
	lim   []int
	qhead int
	Props int64
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{}
}

// Level returns the current decision level.
func (t *Trail) Level() int {
	return len(t.lim)
}

// Len returns the number of assigned literals.
func (t *Trail) Len() int {
	return len(t.lits)
}

// At returns the i'th assigned literal.
func (t *Trail) At(i int) z.Lit {
	return t.lits[i]
}

// QHead returns the propagation cursor.
func (t *Trail) QHead() int {
	return t.qhead
}

// SetQHead repositions the propagation cursor (used by the validator when
// rewinding below a lemma it is about to recheck).
func (t *Trail) SetQHead(q int) {
	t.qhead = q
}

// NewDecisionLevel opens a new decision level at the current trail length.
func (t *Trail) NewDecisionLevel() {
	t.lim = append(t.lim, len(t.lits))
}

// Push appends a literal to the trail.
func (t *Trail) Push(l z.Lit) {
	t.lits = append(t.lits, l)
}

// Shrink truncates the trail to n entries without touching variable state;
// callers are responsible for unassigning anything being dropped.
func (t *Trail) Shrink(n int) {
	t.lits = t.lits[:n]
}

// PopLevel drops the current top decision level's bookmark and returns the
// trail index at which that level started.
func (t *Trail) PopLevel() int {
	n := len(t.lim)
	start := t.lim[n-1]
	t.lim = t.lim[:n-1]
	return start
}

// LevelLimit returns the trail index at which decision level k+1 begins.
func (t *Trail) LevelLimit(k int) int {
	return t.lim[k]
}

// SetLevelZeroLimit is used by the validator to extend trail_lim[0] back
// over a level-0 literal it just resurrected.
func (t *Trail) SetLevelZeroLimit(n int) {
	if len(t.lim) == 0 {
		return
	}
	t.lim[0] = n
}
