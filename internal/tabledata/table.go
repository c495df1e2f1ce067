// internal/tabledata/table.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Immutable lookup tables used throughout the correction kernels. Two
// shapes, per the data model: scalar tables (1-D and 2-D, linearly
// interpolated and clamped at the ends) and vector tables (same, but the
// looked-up value is a fixed-size vector interpolated component-wise).
//
// Tables are built once, at package init, from the embedded JSON bundle
// and never mutated afterward; Lookup is pure, deterministic, and
// allocates nothing in the steady state.
package tabledata

import (
	"fmt"

	"github.com/dancebunny98/tolperf/internal/perfmath"
)

// Table1D is a sorted (key, value) scalar lookup table.
type Table1D struct {
	keys []float32
	vals []float32
}

// NewTable1D builds a table from parallel key/value slices. It panics if
// the data doesn't satisfy the table invariants (fewer than two points,
// or keys not strictly increasing) — these are malformed-fixture bugs,
// not runtime conditions, so they're caught at load time rather than
// threaded through every Lookup call.
func NewTable1D(name string, keys, vals []float32) *Table1D {
	if len(keys) != len(vals) {
		panic(fmt.Sprintf("tabledata: %s: %d keys but %d values", name, len(keys), len(vals)))
	}
	if len(keys) < 2 {
		panic(fmt.Sprintf("tabledata: %s: table needs at least two points, has %d", name, len(keys)))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic(fmt.Sprintf("tabledata: %s: keys must be strictly increasing, got %v", name, keys))
		}
	}
	return &Table1D{keys: keys, vals: vals}
}

// Bounds returns the table's lowest and highest sampled (key, value)
// pairs, for callers that need to detect when a query falls outside the
// table's sampled domain rather than silently accepting the clamp.
func (t *Table1D) Bounds() (loKey, loVal, hiKey, hiVal float32) {
	n := len(t.keys)
	return t.keys[0], t.vals[0], t.keys[n-1], t.vals[n-1]
}

// Lookup returns the interpolated value at key, clamping at the table's
// endpoints.
func (t *Table1D) Lookup(key float32) float32 {
	if key <= t.keys[0] {
		return t.vals[0]
	}
	n := len(t.keys)
	if key >= t.keys[n-1] {
		return t.vals[n-1]
	}
	i := bracket(t.keys, key)
	frac := (key - t.keys[i]) / (t.keys[i+1] - t.keys[i])
	return perfmath.Lerp(frac, t.vals[i], t.vals[i+1])
}

// bracket returns the index i such that keys[i] <= key < keys[i+1]. Keys
// must be strictly increasing and key must lie within [keys[0], keys[n-1]).
func bracket(keys []float32, key float32) int {
	lo, hi := 0, len(keys)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if keys[mid] <= key {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// VectorTable1D is a sorted (key, vector) lookup table, interpolated
// component-wise. Used for the three-element V1/Vr/V2 contaminated-runway
// tables and for the (a, b) Tvmcg coefficient table.
type VectorTable1D struct {
	keys []float32
	vals [][3]float32
}

func NewVectorTable1D(name string, keys []float32, vals [][3]float32) *VectorTable1D {
	if len(keys) != len(vals) {
		panic(fmt.Sprintf("tabledata: %s: %d keys but %d vectors", name, len(keys), len(vals)))
	}
	if len(keys) < 2 {
		panic(fmt.Sprintf("tabledata: %s: table needs at least two points, has %d", name, len(keys)))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			panic(fmt.Sprintf("tabledata: %s: keys must be strictly increasing, got %v", name, keys))
		}
	}
	return &VectorTable1D{keys: keys, vals: vals}
}

func (t *VectorTable1D) Lookup(key float32) [3]float32 {
	if key <= t.keys[0] {
		return t.vals[0]
	}
	n := len(t.keys)
	if key >= t.keys[n-1] {
		return t.vals[n-1]
	}
	i := bracket(t.keys, key)
	frac := (key - t.keys[i]) / (t.keys[i+1] - t.keys[i])
	var out [3]float32
	for c := 0; c < 3; c++ {
		out[c] = perfmath.Lerp(frac, t.vals[i][c], t.vals[i+1][c])
	}
	return out
}

// Table2D is an irregular two-key scalar lookup table: a sorted set of
// k1 rows, each itself a Table1D over k2. The source data rarely forms a
// full rectangular grid (e.g. runway-performance tables sample different
// TORA breakpoints at different pressure altitudes), so rows are
// resolved independently and missing k2 coverage in a row simply clamps
// within that row rather than requiring a dense tensor.
type Table2D struct {
	k1s  []float32
	rows []*Table1D
}

func NewTable2D(name string, k1s []float32, rows []*Table1D) *Table2D {
	if len(k1s) != len(rows) {
		panic(fmt.Sprintf("tabledata: %s: %d k1 rows but %d tables", name, len(k1s), len(rows)))
	}
	if len(k1s) < 2 {
		panic(fmt.Sprintf("tabledata: %s: table needs at least two k1 rows, has %d", name, len(k1s)))
	}
	for i := 1; i < len(k1s); i++ {
		if k1s[i] <= k1s[i-1] {
			panic(fmt.Sprintf("tabledata: %s: k1 rows must be strictly increasing, got %v", name, k1s))
		}
	}
	return &Table2D{k1s: k1s, rows: rows}
}

// Lookup bilinearly interpolates at (k1, k2): each of the two k1 rows
// straddling k1 is evaluated (with clamping) at k2, then the two
// row-results are linearly blended across k1.
func (t *Table2D) Lookup(k1, k2 float32) float32 {
	if k1 <= t.k1s[0] {
		return t.rows[0].Lookup(k2)
	}
	n := len(t.k1s)
	if k1 >= t.k1s[n-1] {
		return t.rows[n-1].Lookup(k2)
	}
	i := bracket(t.k1s, k1)
	frac := (k1 - t.k1s[i]) / (t.k1s[i+1] - t.k1s[i])
	lo := t.rows[i].Lookup(k2)
	hi := t.rows[i+1].Lookup(k2)
	return perfmath.Lerp(frac, lo, hi)
}
