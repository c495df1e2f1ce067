// internal/tabledata/table_test.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package tabledata

import "testing"

func TestTable1DLookup(t *testing.T) {
	tbl := NewTable1D("test", []float32{0, 10, 20}, []float32{100, 200, 400})

	cases := []struct {
		key  float32
		want float32
	}{
		{-5, 100},  // clamped low
		{0, 100},   // exact low
		{5, 150},   // interior, first segment
		{10, 200},  // exact midpoint
		{15, 300},  // interior, second segment
		{20, 400},  // exact high
		{25, 400},  // clamped high
	}
	for _, c := range cases {
		if got := tbl.Lookup(c.key); got != c.want {
			t.Errorf("Lookup(%v) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestTable1DPanicsOnBadData(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic, got none", name)
			}
		}()
		f()
	}

	mustPanic("mismatched lengths", func() {
		NewTable1D("bad", []float32{0, 1}, []float32{1, 2, 3})
	})
	mustPanic("too few points", func() {
		NewTable1D("bad", []float32{0}, []float32{1})
	})
	mustPanic("non-increasing keys", func() {
		NewTable1D("bad", []float32{0, 0, 1}, []float32{1, 2, 3})
	})
}

func TestTable1DBounds(t *testing.T) {
	tbl := NewTable1D("test", []float32{0, 10, 20}, []float32{100, 200, 400})
	loKey, loVal, hiKey, hiVal := tbl.Bounds()
	if loKey != 0 || loVal != 100 || hiKey != 20 || hiVal != 400 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want (0,100,20,400)", loKey, loVal, hiKey, hiVal)
	}
}

func TestVectorTable1DLookup(t *testing.T) {
	tbl := NewVectorTable1D("test", []float32{0, 10}, [][3]float32{{1, 2, 3}, {11, 12, 13}})
	got := tbl.Lookup(5)
	want := [3]float32{6, 7, 8}
	if got != want {
		t.Errorf("Lookup(5) = %v, want %v", got, want)
	}
}

func TestTable2DLookup(t *testing.T) {
	row0 := NewTable1D("row0", []float32{0, 100}, []float32{0, 100})
	row1 := NewTable1D("row1", []float32{0, 100}, []float32{0, 200})
	tbl := NewTable2D("test", []float32{0, 10}, []*Table1D{row0, row1})

	// At k1=5 (halfway), k2=50: row0 gives 50, row1 gives 100, blend gives 75.
	if got := tbl.Lookup(5, 50); got != 75 {
		t.Errorf("Lookup(5, 50) = %v, want 75", got)
	}
	if got := tbl.Lookup(-5, 50); got != 50 {
		t.Errorf("Lookup(-5, 50) (clamped low) = %v, want 50", got)
	}
	if got := tbl.Lookup(15, 50); got != 100 {
		t.Errorf("Lookup(15, 50) (clamped high) = %v, want 100", got)
	}
}
