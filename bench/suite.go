// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"github.com/satkit/cdcl/gen"
	"github.com/satkit/cdcl/inter"
	"github.com/satkit/cdcl/internal/xo"
)

// DefaultSuite is a small, varied set of instances covering the solver's
// main stress cases: random 3-SAT near threshold, pigeonhole (hard for
// resolution), and graph coloring.
func DefaultSuite() []Instance {
	return []Instance{
		{Name: "rand3cnf-150", Build: func(dst inter.Adder) { gen.HardRand3Cnf(dst, 150) }},
		{Name: "php-8-7", Build: func(dst inter.Adder) { gen.Php(dst, 8, 7) }},
		{Name: "color-30-60-3", Build: func(dst inter.Adder) { gen.RandColor(dst, 30, 60, 3) }},
	}
}

// DefaultConfigs compares Luby and geometric restart schedules against
// each other, everything else at the classic MiniSat defaults.
func DefaultConfigs() []Config {
	luby := xo.DefaultOptions()
	luby.Luby = true
	geometric := xo.DefaultOptions()
	geometric.Luby = false
	return []Config{
		{Name: "luby", Opts: luby},
		{Name: "geometric", Opts: geometric},
	}
}
