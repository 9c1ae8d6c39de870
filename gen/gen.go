// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/satkit/cdcl/inter"
	"github.com/satkit/cdcl/z"
)

// rng is the package-level seedable source every generator in this file
// draws from, guarded by mu so concurrent property tests can call these
// generators from multiple goroutines safely.
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the package generator, for reproducible test runs.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// BinCycle generates (1,-2) (2,-3), (3,-4) ... (n-1, -n), (n, -1): a
// binary clause cycle that is satisfiable but forces every model to
// agree on all n variables' polarities.
func BinCycle(dst inter.Adder, n int) {
	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			j = 0
		}
		dst.Add(z.Var(i).Pos())
		dst.Add(z.Var(j).Neg())
		dst.Add(z.LitUndef)
	}
}

// Rand3Cnf generates a random 3-CNF with n variables and m clauses, no
// clause containing a repeated variable.
func Rand3Cnf(dst inter.Adder, n, m int) {
	mu.Lock()
	defer mu.Unlock()
	ms := make([]z.Lit, 3)
	for i := 0; i < m; i++ {
		for j := 0; j < 3; j++ {
			ms[j] = randLit(n)
			for j == 1 && ms[0].Var() == ms[1].Var() {
				ms[j] = randLit(n)
			}
			for j == 2 && (ms[0].Var() == ms[2].Var() || ms[1].Var() == ms[2].Var()) {
				ms[j] = randLit(n)
			}
		}
		dst.Add(ms[0])
		dst.Add(ms[1])
		dst.Add(ms[2])
		dst.Add(z.LitUndef)
	}
}

func randLit(n int) z.Lit {
	return z.MkLit(z.Var(rng.Intn(n)), rng.Intn(2) == 1)
}

// HardRand3Cnf generates a random 3-CNF with n variables near the
// satisfiability threshold (clause-to-variable ratio 4.0).
func HardRand3Cnf(dst inter.Adder, n int) {
	Rand3Cnf(dst, n, 4*n)
}

// Php generates the pigeonhole instance asking whether P pigeons can be
// placed into H holes with at most one pigeon per hole; unsatisfiable
// whenever P > H, and a classic hard case for resolution-based provers.
func Php(dst inter.Adder, P, H int) {
	for i := 0; i < P; i++ {
		for j := 0; j < H; j++ {
			dst.Add(PartVar(i, j, P))
		}
		dst.Add(z.LitUndef)
	}
	for i := 0; i < P; i++ {
		for j := 0; j < i; j++ {
			for h := 0; h < H; h++ {
				dst.Add(PartVar(i, h, P).Negate())
				dst.Add(PartVar(j, h, P).Negate())
				dst.Add(z.LitUndef)
			}
		}
	}
}
