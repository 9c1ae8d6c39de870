// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// ProofVisitor receives the resolution steps Replay reconstructs while
// walking the proof log forward. A chain groups one or more resolution
// steps that together derive a single clause or unit literal: chainClauses
// lists the clauses resolved against (chainClauses[0] is the clause the
// chain starts from) and chainPivots lists the pivot literal eliminated at
// each step, in the same order.
type ProofVisitor interface {
	// VisitResolvent records a single binary resolution step: reason
	// clause p2 resolved on pivot p1 derives unit literal parent.
	VisitResolvent(parent, p1 z.Lit, p2 ClauseRef)

	// VisitChainResolvent records a chain of resolution steps that
	// together derive the clause parent. ClauseRefUndef as parent means
	// the chain derives the empty clause (the final UNSAT certificate).
	VisitChainResolvent(parent ClauseRef, chainClauses []ClauseRef, chainPivots []z.Lit)

	// VisitChainResolventUnit is VisitChainResolvent for a chain that
	// derives a unit literal rather than an existing clause ref.
	VisitChainResolventUnit(parent z.Lit, chainClauses []ClauseRef, chainPivots []z.Lit)

	// No itpExists capability method: nothing in Replay ever asks a
	// visitor whether it wants interpolant tracking, so there is no
	// caller-visible distinction to query.
}
