// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// VarState holds everything the solver tracks per variable: assignment,
// reason clause, decision level, activity, saved polarity, the transient
// "seen" mark used by analysis and proof traversal, whether the variable
// is eligible to be picked as a decision, and its partition range for
// interpolation.
type VarState struct {
	Max z.Var // highest variable index in use

	assign      []z.LBool
	reason      []ClauseRef
	level       []int
	activity    []float64
	polarity    []bool
	seen        []bool
	decisionVar []bool
	partInfo    []z.Range
	// trailPart[v] is the partition folded into v's assignment at the
	// moment it was enqueued at level 0 while proof logging is on; it is
	// read back by analysis and litRedundant whenever they walk past a
	// level-0 literal.
	trailPart []z.Range

	varInc  float64
	varDecay float64

	Heap *OrderHeap
}

// NewVarState creates an empty VarState. varDecay is the activity decay
// multiplier (var-decay option).
func NewVarState(varDecay float64) *VarState {
	vs := &VarState{Max: -1, varInc: 1.0, varDecay: varDecay}
	vs.Heap = NewOrderHeap(&vs.activity)
	return vs
}

// NewVar appends a fresh variable, returning it. initialSign is the
// starting saved polarity (true = negative); isDecision controls whether
// the variable is pushed to the order heap and thus eligible to be picked.
// initialActivity seeds the variable's VSIDS activity (0 normally, a small
// random value when rnd-init asks for randomized initial activity).
func (vs *VarState) NewVar(initialSign bool, isDecision bool, initialActivity float64) z.Var {
	v := vs.Max + 1
	vs.Max = v
	vs.assign = append(vs.assign, z.LUndef)
	vs.reason = append(vs.reason, ClauseRefUndef)
	vs.level = append(vs.level, -1)
	vs.activity = append(vs.activity, initialActivity)
	vs.polarity = append(vs.polarity, initialSign)
	vs.seen = append(vs.seen, false)
	vs.decisionVar = append(vs.decisionVar, isDecision)
	vs.partInfo = append(vs.partInfo, z.RangeUndef)
	vs.trailPart = append(vs.trailPart, z.RangeUndef)
	vs.Heap.Grow(v + 1)
	if isDecision {
		vs.Heap.Insert(v)
	}
	return v
}

// Value returns the value of literal l under the current assignment.
func (vs *VarState) Value(l z.Lit) z.LBool {
	a := vs.assign[l.Var()]
	if l.Sign() {
		return a.Not()
	}
	return a
}

// VarValue returns the value of variable v's positive literal.
func (vs *VarState) VarValue(v z.Var) z.LBool {
	return vs.assign[v]
}

// Assign sets v's assignment, reason and level. Unassign restores LUndef.
func (vs *VarState) Assign(v z.Var, val z.LBool, reason ClauseRef, level int) {
	vs.assign[v] = val
	vs.reason[v] = reason
	vs.level[v] = level
}

// Unassign clears v's assignment and pushes it back onto the order heap if
// it is decision-eligible.
func (vs *VarState) Unassign(v z.Var) {
	vs.assign[v] = z.LUndef
	vs.reason[v] = ClauseRefUndef
	vs.level[v] = -1
	if vs.decisionVar[v] {
		vs.Heap.Insert(v)
	}
}

// Reason returns v's reason clause, or ClauseRefUndef for a decision or a
// level-0 input unit.
func (vs *VarState) Reason(v z.Var) ClauseRef {
	return vs.reason[v]
}

// Level returns v's decision level, or -1 if unassigned.
func (vs *VarState) Level(v z.Var) int {
	return vs.level[v]
}

// Bump increases v's activity by the current increment, rescaling every
// variable's activity if the increment would overflow, and restores the
// heap property if v is present.
func (vs *VarState) Bump(v z.Var) {
	vs.activity[v] += vs.varInc
	if vs.activity[v] > 1e100 {
		for i := range vs.activity {
			vs.activity[i] *= 1e-100
		}
		vs.varInc *= 1e-100
	}
	if vs.Heap.InHeap(v) {
		vs.Heap.Update(v)
	}
}

// Decay grows the activity increment, implementing exponential decay of
// older bumps without rescaling every variable on every conflict.
func (vs *VarState) Decay() {
	vs.varInc /= vs.varDecay
}

// Seen reports and Mark/ClearSeen set the transient analysis mark, which
// must be cleared via ClearSeen after every analysis pass that touched it.
func (vs *VarState) Seen(v z.Var) bool     { return vs.seen[v] }
func (vs *VarState) MarkSeen(v z.Var)      { vs.seen[v] = true }
func (vs *VarState) ClearSeen(v z.Var)     { vs.seen[v] = false }

// Polarity returns v's saved phase (true = negative), used for phase
// saving when picking the next decision.
func (vs *VarState) Polarity(v z.Var) bool {
	return vs.polarity[v]
}

// SetPolarity records the phase that v was last assigned, for phase
// saving on the next decision.
func (vs *VarState) SetPolarity(v z.Var, neg bool) {
	vs.polarity[v] = neg
}

// PartInfo and JoinPartInfo read/update the per-variable partition range.
func (vs *VarState) PartInfo(v z.Var) z.Range {
	return vs.partInfo[v]
}

func (vs *VarState) JoinPartInfo(v z.Var, r z.Range) {
	vs.partInfo[v] = z.Join(vs.partInfo[v], r)
}

// IsDecisionVar reports whether v may be picked as a decision.
func (vs *VarState) IsDecisionVar(v z.Var) bool {
	return vs.decisionVar[v]
}

// ForceUndef clears v's assignment only, leaving its reason/level/heap
// membership untouched — the validator manages those directly while
// unwinding the trail entry by entry.
func (vs *VarState) ForceUndef(v z.Var) {
	vs.assign[v] = z.LUndef
}

// InsertVarOrder pushes v back onto the order heap if it is decision-
// eligible and not already present, without touching its assignment,
// reason or level — used by the validator, which manages those directly
// while unwinding the trail.
func (vs *VarState) InsertVarOrder(v z.Var) {
	if !vs.Heap.InHeap(v) && vs.decisionVar[v] {
		vs.Heap.Insert(v)
	}
}

// RemapReasons rewrites every variable's reason ref through remap after an
// arena compaction, clearing reasons whose clause was dropped (a decision
// or a unit that no longer needs one).
func (vs *VarState) RemapReasons(remap map[ClauseRef]ClauseRef) {
	for v := range vs.reason {
		if vs.reason[v] == ClauseRefUndef {
			continue
		}
		if nr, ok := remap[vs.reason[v]]; ok {
			vs.reason[v] = nr
		} else {
			vs.reason[v] = ClauseRefUndef
		}
	}
}

// TrailPart and SetTrailPart read/update the partition folded into v's
// level-0 assignment (meaningful only once v has actually been assigned at
// level 0 with proof logging on).
func (vs *VarState) TrailPart(v z.Var) z.Range {
	return vs.trailPart[v]
}

func (vs *VarState) SetTrailPart(v z.Var, r z.Range) {
	vs.trailPart[v] = r
}
