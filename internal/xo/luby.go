// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "math"

// lubySeq computes the Luby sequence 1,1,2,1,1,2,4,1,... scaled by y, the
// restart growth factor. Used by search's restart-interval schedule when
// the luby option is set.
func lubySeq(y float64, k int) float64 {
	// Find the finite subsequence that k belongs to.
	size, seq := 1, 0
	for size < k+1 {
		seq++
		size = 2*size + 1
	}
	for size != k+1 {
		size = (size - 1) / 2
		seq--
		k = k % size
	}
	return math.Pow(y, float64(seq))
}

// Luby is a standalone generator over lubySeq. search does not use it:
// restartBase calls lubySeq directly.
type Luby struct {
	rinc float64
	k    int
}

// NewLuby creates a fresh generator with restart growth factor rinc.
func NewLuby(rinc float64) *Luby {
	return &Luby{rinc: rinc}
}

// Next returns the next value in the sequence and advances the generator.
func (l *Luby) Next() float64 {
	v := lubySeq(l.rinc, l.k)
	l.k++
	return v
}
