// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLubySeqMatchesClassicSequence(t *testing.T) {
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}
	for k, w := range want {
		assert.Equal(t, w, lubySeq(2, k), "k=%d", k)
	}
}

// Luby is not wired into the driver's restart schedule (restartBase
// calls lubySeq directly), but is kept as a standalone sequence
// generator for callers outside search that want to drive their own
// restart-shaped cadence, e.g. the bench harness staggering timeouts.
func TestLubyGenerator(t *testing.T) {
	l := NewLuby(2)
	var got []float64
	for i := 0; i < 7; i++ {
		got = append(got, l.Next())
	}
	assert.Equal(t, []float64{1, 1, 2, 1, 1, 2, 4}, got)
}
