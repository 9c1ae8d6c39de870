// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// ClauseRef is an opaque offset into a solver's clause arena: a newtype
// index into a Go slice rather than a pointer, so clauses can be relocated
// wholesale during compaction without invalidating everything that is
// still live.
type ClauseRef uint32

// ClauseRefUndef marks "no clause" (e.g. a decision's reason).
const ClauseRefUndef ClauseRef = 1<<32 - 1

const (
	markLive    uint8 = 0
	markDeleted uint8 = 1
)

// Clause is an arena-owned disjunction of literals. Lits[0] and Lits[1]
// are the watched literals for every attached clause of size >= 2.
type Clause struct {
	Lits      []z.Lit
	Learnt    bool
	mark      uint8
	Core      bool
	Activity  float32
	Partition z.Range
}

// Size returns the number of literals currently in the clause. Propagation
// reorders literals but never removes them; only Arena.Free (proof logging
// off) drops them, leaving size 0.
func (c *Clause) Size() int {
	return len(c.Lits)
}

// Deleted reports whether the clause has been logically removed. While
// proof logging is on, a deleted clause's storage is retained (its ref may
// still be walked by the validator/replayer); with proof logging off, a
// deleted clause is simply unreachable arena space waiting for compaction.
func (c *Clause) Deleted() bool {
	return c.mark == markDeleted
}
