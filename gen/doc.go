// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common families of CNF instances
// (random k-SAT, pigeonhole, graph coloring, Pythagorean-triple
// partitioning) used as property-test fixtures for the solver core.
package gen
