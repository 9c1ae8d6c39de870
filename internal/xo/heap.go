// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import "github.com/satkit/cdcl/z"

// OrderHeap is a binary max-heap over decision-eligible variables, ordered
// by activity. It holds exactly the unassigned decision-eligible variables
// plus stale entries that get skipped at pop time.
type OrderHeap struct {
	data     []z.Var
	indices  []int32 // data index of var, or -1 if not in heap
	activity *[]float64
}

// NewOrderHeap builds a heap that reads priorities from *activity, which
// the VarState owns and mutates via Bump/Decay.
func NewOrderHeap(activity *[]float64) *OrderHeap {
	return &OrderHeap{activity: activity}
}

// Grow ensures the heap can track variables up to top.
func (h *OrderHeap) Grow(top z.Var) {
	for z.Var(len(h.indices)) < top {
		h.indices = append(h.indices, -1)
	}
}

func (h *OrderHeap) act(v z.Var) float64 {
	return (*h.activity)[v]
}

// InHeap reports whether v is currently present.
func (h *OrderHeap) InHeap(v z.Var) bool {
	return int(v) < len(h.indices) && h.indices[v] >= 0
}

// Empty reports whether the heap has no entries.
func (h *OrderHeap) Empty() bool {
	return len(h.data) == 0
}

// Len returns the number of entries currently in the heap.
func (h *OrderHeap) Len() int {
	return len(h.data)
}

// At returns the variable stored at heap-internal slot i, for the
// occasional uniform-random pick rnd-freq performs over the whole heap
// rather than just its root.
func (h *OrderHeap) At(i int) z.Var {
	return h.data[i]
}

// Insert adds v, which must not already be in the heap.
func (h *OrderHeap) Insert(v z.Var) {
	if h.InHeap(v) {
		return
	}
	h.indices[v] = int32(len(h.data))
	h.data = append(h.data, v)
	h.percolateUp(len(h.data) - 1)
}

// Update restores the heap property for v after its activity changed,
// inserting it if it is not already present.
func (h *OrderHeap) Update(v z.Var) {
	if !h.InHeap(v) {
		h.Insert(v)
		return
	}
	i := int(h.indices[v])
	h.percolateUp(i)
	h.percolateDown(i)
}

// PopMax removes and returns the variable with the greatest activity.
func (h *OrderHeap) PopMax() z.Var {
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.indices[h.data[0]] = 0
	h.indices[top] = -1
	h.data = h.data[:last]
	if last > 0 {
		h.percolateDown(0)
	}
	return top
}

// Rebuild discards the current heap contents and reinserts exactly vs, in
// the order given, restoring the heap property from scratch. Used after a
// simplification pass to drop stale entries for variables that are no
// longer decision-eligible or have since been assigned.
func (h *OrderHeap) Rebuild(vs []z.Var) {
	h.data = h.data[:0]
	for i := range h.indices {
		h.indices[i] = -1
	}
	for _, v := range vs {
		h.Insert(v)
	}
}

func (h *OrderHeap) percolateUp(i int) {
	v := h.data[i]
	for i != 0 {
		p := (i - 1) / 2
		if h.act(h.data[p]) >= h.act(v) {
			break
		}
		h.data[i] = h.data[p]
		h.indices[h.data[i]] = int32(i)
		i = p
	}
	h.data[i] = v
	h.indices[v] = int32(i)
}

func (h *OrderHeap) percolateDown(i int) {
	v := h.data[i]
	n := len(h.data)
	for {
		l, r := 2*i+1, 2*i+2
		largest := i
		if l < n && h.act(h.data[l]) > h.act(v) {
			largest = l
		}
		best := v
		if largest != i {
			best = h.data[largest]
		}
		if r < n && h.act(h.data[r]) > h.act(best) {
			largest = r
		}
		if largest == i {
			break
		}
		h.data[i] = h.data[largest]
		h.indices[h.data[i]] = int32(i)
		i = largest
	}
	h.data[i] = v
	h.indices[v] = int32(i)
}
