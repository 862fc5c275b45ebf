// Schnorr–Euchner enumeration.
//
// The engine walks integer coordinate vectors x from level N−1 down to 0. At
// level k the center
//
//	c_k = u_k − Σ_{j>k} R_kj·(x_j − u_j) / R_kk
//
// is rounded and the candidates are tried in zig-zag order round(c_k),
// round(c_k)±1, … so that the partial distance
//
//	d_k = d_{k+1} + (s·R_kk·(x_k − c_k))²
//
// is nondecreasing along the sequence and the first candidate beyond the
// current bound ends the level. s scales the lattice (s = 2 searches 2L).
// Leaves are handed to a visit callback that returns the new bound, which
// lets one engine serve closest point, shortest vector and coset minima.
//
// Budget: node count is checked on every node, the deadline on every 4096th.

package cvp

import (
	"math"
	"time"
)

type enumerator struct {
	n     int
	rf    []float64 // row-major upper R
	scale float64
	u     []float64 // center in coordinates

	x     []int
	bound float64
	visit func(x []int, d float64) float64

	maxNodes int64
	deadline time.Time
	nodes    int64
	stopped  bool
}

func newEnumerator(f *factor, scale float64, u []float64, bound float64, o options, visit func([]int, float64) float64) *enumerator {
	e := &enumerator{
		n:        f.n,
		rf:       f.rf,
		scale:    scale,
		u:        u,
		x:        make([]int, f.n),
		bound:    bound,
		visit:    visit,
		maxNodes: o.maxNodes,
	}
	if o.timeLimit > 0 {
		e.deadline = time.Now().Add(o.timeLimit)
	}

	return e
}

// run enumerates the whole tree and reports whether it completed.
func (e *enumerator) run() bool {
	if e.n == 0 {
		return true
	}
	e.search(e.n-1, 0)

	return !e.stopped
}

func (e *enumerator) budgetExhausted() bool {
	e.nodes++
	if e.maxNodes > 0 && e.nodes > e.maxNodes {
		return true
	}
	if !e.deadline.IsZero() && e.nodes&4095 == 1 && time.Now().After(e.deadline) {
		return true
	}

	return false
}

func (e *enumerator) search(k int, above float64) {
	n := e.n
	rkk := e.rf[k*n+k]
	var s float64
	for j := k + 1; j < n; j++ {
		s += e.rf[k*n+j] * (float64(e.x[j]) - e.u[j])
	}
	c := e.u[k] - s/rkk
	base := math.Round(c)
	dir := 1.0
	if c < base {
		dir = -1
	}
	w := e.scale * rkk

	var (
		xk, diff, d float64
		off         int
	)
	for i := 0; ; i++ {
		// offsets 0, +1, −1, +2, −2, … relative to base in direction dir
		if i%2 == 1 {
			off = (i + 1) / 2
		} else {
			off = -i / 2
		}
		xk = base + dir*float64(off)
		diff = w * (xk - c)
		d = above + diff*diff
		if d > e.bound {
			return
		}
		if e.budgetExhausted() {
			e.stopped = true

			return
		}
		e.x[k] = int(xk)
		if k == 0 {
			e.bound = e.visit(e.x, d)
		} else {
			e.search(k-1, d)
		}
		if e.stopped {
			return
		}
	}
}
