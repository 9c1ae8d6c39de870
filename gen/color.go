// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"

	"github.com/satkit/cdcl/inter"
	"github.com/satkit/cdcl/z"
)

// RandColor builds the formula asking whether a random simple graph with
// n nodes and m edges can be colored with k colors: every node gets at
// least one color, and no two adjacent nodes share a color. There are no
// at-most-one-color clauses, so a model may give a node several colors.
func RandColor(dst inter.Adder, n, m, k int) {
	g := RandGraph(n, m)
	mkVar := func(node, color int) z.Var {
		return z.Var(node*k + color)
	}
	for i := range g {
		for j := 0; j < k; j++ {
			dst.Add(mkVar(i, j).Pos())
		}
		dst.Add(z.LitUndef)
	}
	for a, es := range g {
		for _, b := range es {
			if b >= a {
				continue
			}
			for c := 0; c < k; c++ {
				dst.Add(mkVar(a, c).Neg())
				dst.Add(mkVar(b, c).Neg())
				dst.Add(z.LitUndef)
			}
		}
	}
}

type edge struct {
	a, b int
}

// RandGraph creates a simple undirected random graph with n nodes and m
// edges, returned as an adjacency list. Nodes are 0-based; there are no
// multi-edges or self-edges, and edges are sampled without replacement.
// Returns nil if m exceeds the number of possible edges.
func RandGraph(n, m int) [][]int {
	if m > n*(n-1)/2 {
		return nil
	}
	ns := make([][]int, n)

	es := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			es = append(es, edge{i, j})
		}
	}

	for i := 0; i < m; i++ {
		el := len(es)
		j := rand.Intn(el)
		e := es[j]
		ns[e.a] = append(ns[e.a], e.b)
		el--
		es[j], es[el] = es[el], es[j]
		es = es[:el]
	}
	for i, adj := range ns {
		for _, j := range adj {
			ns[j] = append(ns[j], i)
		}
	}
	return ns
}
