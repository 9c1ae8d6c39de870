// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package proof holds tooling built on top of internal/xo's resolution
// proof log: TraceVisitor, a reference ProofVisitor implementation that
// emits a line-per-step certificate in its own vL/vR/vH notation (not the
// numbered-clause TraceCheck file format), and Log, a thin read-only
// view over a finished solve's proof entries for external inspection.
package proof

import (
	"bufio"
	"fmt"
	"io"

	"github.com/satkit/cdcl/internal/xo"
	"github.com/satkit/cdcl/z"
)

// TraceVisitor implements xo.ProofVisitor, writing each resolution step
// Replay reconstructs as a line of a TraceCheck-style certificate: "vL"
// introduces a clause or unit literal the first time it is referenced,
// "vR" records a single binary resolution, and "vH" records a chain of
// resolutions that together derive a clause or unit.
type TraceVisitor struct {
	w          *bufio.Writer
	seenClause map[xo.ClauseRef]bool
	seenUnit   map[z.Var]bool
}

// NewTraceVisitor returns a TraceVisitor writing to w.
func NewTraceVisitor(w io.Writer) *TraceVisitor {
	return &TraceVisitor{
		w:          bufio.NewWriter(w),
		seenClause: make(map[xo.ClauseRef]bool),
		seenUnit:   make(map[z.Var]bool),
	}
}

// Flush must be called once Replay returns, to push any buffered output.
func (t *TraceVisitor) Flush() error {
	return t.w.Flush()
}

func (t *TraceVisitor) labelUnit(l z.Lit) {
	if t.seenUnit[l.Var()] {
		return
	}
	t.seenUnit[l.Var()] = true
	fmt.Fprintf(t.w, "vL (l%d)\n", l.Dimacs())
}

func (t *TraceVisitor) labelClause(c xo.ClauseRef) {
	if t.seenClause[c] {
		return
	}
	t.seenClause[c] = true
	fmt.Fprintf(t.w, "vL (c%d)\n", c)
}

// VisitResolvent implements xo.ProofVisitor.
func (t *TraceVisitor) VisitResolvent(parent, p1 z.Lit, p2 xo.ClauseRef) {
	t.labelUnit(p1)
	t.labelClause(p2)
	fmt.Fprintf(t.w, "vR (l%d, l%d, c%d)\n", parent.Dimacs(), p1.Dimacs(), p2)
}

// VisitChainResolvent implements xo.ProofVisitor. parent == xo.ClauseRefUndef
// marks the chain deriving the empty clause (the final UNSAT certificate).
func (t *TraceVisitor) VisitChainResolvent(parent xo.ClauseRef, chainClauses []xo.ClauseRef, chainPivots []z.Lit) {
	t.labelClause(chainClauses[0])
	for i, piv := range chainPivots {
		if i+1 < len(chainClauses) {
			t.labelClause(chainClauses[i+1])
		} else {
			t.labelUnit(piv)
		}
	}
	if parent == xo.ClauseRefUndef {
		fmt.Fprint(t.w, "vH (0 0 ")
	} else {
		t.seenClause[parent] = true
		fmt.Fprintf(t.w, "vH (c%d 0 ", parent)
	}
	t.writeChain(chainClauses, chainPivots)
}

// VisitChainResolventUnit implements xo.ProofVisitor.
func (t *TraceVisitor) VisitChainResolventUnit(parent z.Lit, chainClauses []xo.ClauseRef, chainPivots []z.Lit) {
	t.labelClause(chainClauses[0])
	for i, piv := range chainPivots {
		if i+1 < len(chainClauses) {
			t.labelClause(chainClauses[i+1])
		} else {
			t.labelUnit(piv)
		}
	}
	t.seenUnit[parent.Var()] = true
	fmt.Fprintf(t.w, "vH (l%d 0 ", parent.Dimacs())
	t.writeChain(chainClauses, chainPivots)
}

func (t *TraceVisitor) writeChain(chainClauses []xo.ClauseRef, chainPivots []z.Lit) {
	fmt.Fprintf(t.w, "c%d ", chainClauses[0])
	for i, piv := range chainPivots {
		if i+1 < len(chainClauses) {
			fmt.Fprintf(t.w, "c%d ", chainClauses[i+1])
		} else {
			fmt.Fprintf(t.w, "l%d ", piv.Dimacs())
		}
	}
	fmt.Fprint(t.w, " 0)\n")
}
