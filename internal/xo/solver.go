// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package xo is the CDCL core: clause arena, watches, variable state,
// trail, two-watched-literal propagation, first-UIP analysis, the search
// driver, clause-DB reduction, and an append-only resolution proof log
// together with its DRUP-style validator and forward replayer.
//
// The package is internal because every conceptual component (arena,
// watch index, trail, propagator, analyzer, driver, proof log, validator,
// replayer) shares one mutable Solver and is easiest to reason about as
// one package split across files by concern, the way Cdb/Trail/Guess/
// Driver are kept together under internal/xo.
package xo

import (
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/satkit/cdcl/z"
)

// Solver implements the CDCL engine: two-watched-literal propagation,
// first-UIP analysis with clause minimization,
// activity-driven heuristics with decay, restarts, clause-DB reduction,
// and (when LogProof is set) resolution-proof logging, validation and
// replay.
type Solver struct {
	Opts Options

	Arena   *Arena
	Watches *WatchList
	Vars    *VarState
	Trail   *Trail

	// clauses holds every non-learnt attached clause ref (for to_dimacs
	// and model checking); learnts holds every learnt clause ref.
	clauses []ClauseRef
	learnts []ClauseRef

	ok bool

	// LogProof enables proof-log bookkeeping, partition tracking, and
	// makes arena deletion mark-only.
	LogProof  bool
	Proof     []ClauseRef
	totalPart z.Range

	claInc float64

	Assumptions []z.Lit
	conflict    []z.Lit

	Model []z.LBool

	conflicts     int64
	propagations  int64
	decisions     int64
	conflictBudget    int64
	propagationBudget int64

	maxLearnts          float64
	learntsizeAdjConfl  float64
	learntsizeAdjCnt    int

	// clausesLiterals/learntsLiterals track total literal counts across
	// attached original/learnt clauses; simplify uses them (together with
	// simpDBAssigns/simpDBProps) to skip a no-op simplification pass.
	clausesLiterals int
	learntsLiterals int
	simpDBAssigns   int
	simpDBProps     int64
	removeSatisfiedOrig bool

	// replayStart bookmarks how far labelLevel0 has already walked the
	// trail, so replay's repeated calls only visit newly-derived units.
	replayStart int

	rng *rand.Rand

	// analyzeToClear is the scratch stack Analyze seeds with the raw
	// learnt clause and litRedundant (ccmin-mode 2) extends while probing
	// whether a literal can be resolved away; everything pushed onto it
	// gets its seen mark cleared at the end of Analyze.
	analyzeToClear []z.Lit

	asynchInterrupt atomic.Bool

	// addBuf/addPart back the single-literal Add/Eof surface (see
	// dimacsvis.go), buffering one clause between terminators.
	addBuf  []z.Lit
	addPart z.Range

	Logger *logrus.Logger
	stats  Stats
}

// NewSolver creates a solver with the given options.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		Opts:    opts,
		Arena:   NewArena(opts.GCFrac, opts.Valid),
		Watches: NewWatchList(),
		Vars:    NewVarState(opts.VarDecay),
		Trail:   NewTrail(),
		ok:      true,
		LogProof: opts.Valid,
		claInc:  1.0,
		rng:     rand.New(rand.NewSource(opts.RndSeed)),
		Logger:  logrus.StandardLogger(),
		conflictBudget:      opts.ConflictBudget,
		propagationBudget:   opts.PropagationBudget,
		removeSatisfiedOrig: true,
		simpDBAssigns:       -1,
		addPart:             z.RangeUndef,
	}
	return s
}

// Ok reports whether the problem is still known-consistent at level 0
// (false once a top-level conflict has been derived).
func (s *Solver) Ok() bool {
	return s.ok
}

// NewVar creates a fresh variable. initialSign sets the starting saved
// polarity (true = start assuming the negative phase); isDecision controls
// whether it is eligible to be picked by the branching heuristic. When
// Opts.RndInit is set, the variable's activity is seeded with a small
// random value instead of 0, so the very first decisions break ties by the
// random seed rather than variable order.
func (s *Solver) NewVar(initialSign bool, isDecision bool) z.Var {
	initialActivity := 0.0
	if s.Opts.RndInit {
		initialActivity = s.rng.Float64() * 0.00001
	}
	v := s.Vars.NewVar(initialSign, isDecision, initialActivity)
	s.Watches.Grow(s.Vars.Max + 1)
	return v
}

// Interrupt requests a graceful return of Unknown from the currently
// running (or next) Solve/search loop. It is the single permitted
// concurrent write onto the solver — call it from a signal handler or a
// timer goroutine, never any other method.
func (s *Solver) Interrupt() {
	s.asynchInterrupt.Store(true)
}

// ClearInterrupt resets the interrupt flag before a fresh Solve call.
func (s *Solver) ClearInterrupt() {
	s.asynchInterrupt.Store(false)
}

func (s *Solver) withinBudget() bool {
	if s.asynchInterrupt.Load() {
		return false
	}
	if s.conflictBudget >= 0 && s.conflicts >= s.conflictBudget {
		return false
	}
	if s.propagationBudget >= 0 && s.propagations >= s.propagationBudget {
		return false
	}
	return true
}

// Value returns the value of literal l under the current assignment.
func (s *Solver) Value(l z.Lit) z.LBool {
	return s.Vars.Value(l)
}

// Assume appends ms to the set of literals the next Solve call assumes
// true, consumed and forgotten once that call returns.
func (s *Solver) Assume(ms ...z.Lit) {
	for _, m := range ms {
		s.ensureVar(m.Var())
	}
	s.Assumptions = append(s.Assumptions, ms...)
}

// Why appends to dst the final conflict of the last Solve call's Unsat
// result under assumptions: the negations of the assumptions that
// analyzeFinal traced the failure back to. The set is not minimised.
func (s *Solver) Why(dst []z.Lit) []z.Lit {
	return append(dst, s.conflict...)
}

// ConflictLits returns the final assumption-conflict from the last Solve call,
// valid only if that call returned Unsat under assumptions.
func (s *Solver) ConflictLits() []z.Lit {
	return s.conflict
}

// ReadStats adds the solver's running counters onto dst.
func (s *Solver) ReadStats(dst *Stats) {
	dst.Restarts += s.stats.Restarts
	dst.Conflicts += s.stats.Conflicts
	dst.Decisions += s.stats.Decisions
	dst.Propagations += s.stats.Propagations
	dst.Sat += s.stats.Sat
	dst.Unsat += s.stats.Unsat
	dst.Learnts += s.stats.Learnts
	dst.LearntUnits += s.stats.LearntUnits
	dst.Removed += s.stats.Removed
	dst.Compactions += s.stats.Compactions
}

// Result is the three-valued SAT/UNSAT/UNKNOWN solver outcome.
type Result int

const (
	Unsat   Result = -1
	Unknown Result = 0
	Sat     Result = 1
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}
