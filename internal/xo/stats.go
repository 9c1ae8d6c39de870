// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "fmt"

// Stats accumulates solver counters for reporting; each subsystem owns its
// own running counts and folds them in on ReadStats, matching the
// teacher's per-component stats design.
type Stats struct {
	Restarts    int64
	Conflicts   int64
	Decisions   int64
	Propagations int64
	Sat         int64
	Unsat       int64
	Learnts     int64
	LearntUnits int64
	Removed     int64
	Compactions int64
}

// NewStats returns a zeroed Stats.
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"restarts=%d conflicts=%d decisions=%d props=%d sat=%d unsat=%d learnts=%d learnt_units=%d removed=%d gc=%d",
		s.Restarts, s.Conflicts, s.Decisions, s.Propagations, s.Sat, s.Unsat,
		s.Learnts, s.LearntUnits, s.Removed, s.Compactions)
}
