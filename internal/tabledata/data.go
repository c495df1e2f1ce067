// internal/tabledata/data.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Loads the embedded table bundle once at package init, following
// mmp/vice's pkg/aviation/db.go pattern (parseAircraftPerformance
// unmarshalling an embedded/resource JSON file into process-wide
// immutable state at init time). Unlike vice's executable-relative
// resources directory, this module is a library: the bundle is
// compiled in via go:embed so the package has no runtime file
// dependency at all.
package tabledata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/dancebunny98/tolperf/internal/perfmath"
)

//go:embed fixtures/tables.json
var tablesJSON []byte

// Tables is the process-wide, immutable parsed table bundle. It is
// populated once at init and never mutated afterward; every calculation
// reads from it concurrently without locking.
var Tables *Database

// Database is the fully-typed, ready-to-query form of the embedded
// fixture: every sorted sample sequence has become a Table1D/Table2D/
// VectorTable1D, validated for the table invariants (§3: strictly
// monotonic keys, at least two points) at construction time.
type Database struct {
	StructuralMtowKg float32
	OewKg            float32
	MaxPressureAltFt float32
	MaxTailwindKt    float32
	MaxSlopePercent  float32
	TireSpeedMaxKt   float32
	MaxHeadwindKt    float32

	TRef            *Table1D
	TMax            *Table1D
	LineupDistanceM [3]float32 // indexed by LineupAngle (0, 90, 180 degrees)

	Families map[string]*Family

	BleedEngineWingKg float32
	BleedPacksKg      float32

	ForwardCg0                     [3]float32
	ForwardCg1                     [3]float32
	ForwardCgSpeedActivationCeilKg float32

	TvmcgA *VectorTable1D
	TvmcgB *VectorTable1D

	WetTow, WetFlex, WetV1, WetVr, WetV2 WetAffineFamily

	Contaminated map[string]*ContaminatedCondition

	VSpeedKernels [3]VSpeedKernel

	MinVmcg  *Table1D
	MinVmca  *Table1D
	MinV2Vmc [3]*Table1D
	MinV2Vmu [3]*Table2D

	LandingReference   map[string]LandingRef
	LandingCorrections LandingCorrections
	Vls                [2]*Table1D // [Full, Conf3]

	EnvelopeMtow []perfmath.Point2
	EnvelopeMzfw []perfmath.Point2
	EnvelopeMlw  []perfmath.Point2
}

// Family holds the typed per-configuration coefficient groups for one
// limit family, per §4.3-4.4.
type Family struct {
	Base        [3]*Table1D
	SlopeCoef   [3]float32
	Altitude    [3][2]float32
	Temperature [3][6]float32
	WindHead    [3][]float32
	WindTail    [3][]float32
}

// VSpeedKernel and LandingRef/LandingCorrections need no conversion —
// they're already flat numeric fixtures, so the raw JSON shape doubles
// as the typed one.
type (
	VSpeedKernel       = rawVSpeedKernel
	LandingRef         = rawLandingRef
	LandingCorrections = rawLandingCorrections
)

// HeadwindAffine is one branch (above- or at/below-Tvmcg) of a
// headwind-indexed two-affine-form correction, per §4.4's wet-runway
// adjustment pattern: two affine forms in L are evaluated, the more
// negative one wins, and the result is clipped non-positive.
type HeadwindAffine struct {
	m1, b1, m2, b2 *Table1D
}

func newHeadwindAffine(name string, raw rawHeadwindAffine) HeadwindAffine {
	return HeadwindAffine{
		m1: NewTable1D(name+".m1", raw.HeadwindBreakpoints, raw.M1),
		b1: NewTable1D(name+".b1", raw.HeadwindBreakpoints, raw.B1),
		m2: NewTable1D(name+".m2", raw.HeadwindBreakpoints, raw.M2),
		b2: NewTable1D(name+".b2", raw.HeadwindBreakpoints, raw.B2),
	}
}

// Eval returns the (non-positive) correction for the given headwind and
// L = adjustedTora - pressureAlt/20.
func (h HeadwindAffine) Eval(headwind, l float32) float32 {
	form1 := h.m1.Lookup(headwind)*l + h.b1.Lookup(headwind)
	form2 := h.m2.Lookup(headwind)*l + h.b2.Lookup(headwind)
	return perfmath.Min(perfmath.Min(form1, form2), 0)
}

// WetAffineFamily is a per-configuration pair of HeadwindAffine
// branches, selected by whether OAT is above or at/below Tvmcg.
type WetAffineFamily struct {
	Above [3]HeadwindAffine
	Below [3]HeadwindAffine
}

func newWetAffineFamily(name string, raw rawWetAffine) WetAffineFamily {
	var w WetAffineFamily
	for c := 0; c < 3; c++ {
		w.Above[c] = newHeadwindAffine(fmt.Sprintf("%s.above[%d]", name, c), raw.AboveTvmcg[c])
		w.Below[c] = newHeadwindAffine(fmt.Sprintf("%s.below[%d]", name, c), raw.BelowTvmcg[c])
	}
	return w
}

func (w WetAffineFamily) Eval(conf int, aboveTvmcg bool, headwind, l float32) float32 {
	if aboveTvmcg {
		return w.Above[conf].Eval(headwind, l)
	}
	return w.Below[conf].Eval(headwind, l)
}

// ContaminatedCondition holds the per-configuration tables used by a
// single non-dry, non-wet runway condition, per §4.7.
type ContaminatedCondition struct {
	WeightCorrection [3]*Table1D
	Mtow             [3]*Table1D
	MinCorrectedKg   [3]float32
	VSpeeds          [3]*VectorTable1D
}

func init() {
	Tables = mustLoad(tablesJSON)
}

func mustLoad(data []byte) *Database {
	var raw rawFixture
	if err := json.Unmarshal(data, &raw); err != nil {
		panic(fmt.Sprintf("tabledata: malformed embedded fixture: %v", err))
	}
	db, err := convert(&raw)
	if err != nil {
		spew.Dump(raw)
		panic(fmt.Sprintf("tabledata: invalid embedded fixture: %v", err))
	}
	return db
}

func toPoints1D(name string, pts []point) *Table1D {
	keys := make([]float32, len(pts))
	vals := make([]float32, len(pts))
	for i, p := range pts {
		keys[i], vals[i] = p[0], p[1]
	}
	return NewTable1D(name, keys, vals)
}

func toTable2D(name string, raw rawTable2D) *Table2D {
	rows := make([]*Table1D, len(raw.Rows))
	for i, r := range raw.Rows {
		rows[i] = toPoints1D(fmt.Sprintf("%s.row[%d]", name, i), r)
	}
	return NewTable2D(name, raw.K1s, rows)
}

func toTowVec(name string, raw []rawTowVec) *VectorTable1D {
	keys := make([]float32, len(raw))
	vals := make([][3]float32, len(raw))
	for i, r := range raw {
		keys[i], vals[i] = r.TowKg, r.V
	}
	return NewVectorTable1D(name, keys, vals)
}

func convert(raw *rawFixture) (db *Database, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	db = &Database{
		StructuralMtowKg: raw.Structural.StructuralMtowKg,
		OewKg:            raw.Structural.OewKg,
		MaxPressureAltFt: raw.Structural.MaxPressureAltFt,
		MaxTailwindKt:    raw.Structural.MaxTailwindKt,
		MaxSlopePercent:  raw.Structural.MaxSlopePercent,
		TireSpeedMaxKt:   raw.Structural.TireSpeedMaxKt,
		MaxHeadwindKt:    raw.Structural.MaxHeadwindKt,

		TRef:            toPoints1D("tRefByElevation", raw.Environment.TRefByElevation),
		TMax:            toPoints1D("tMaxByPressureAlt", raw.Environment.TMaxByPressureAlt),
		LineupDistanceM: raw.Environment.LineupDistanceM,

		Families: map[string]*Family{},

		BleedEngineWingKg: raw.Bleed.EngineWingKg,
		BleedPacksKg:      raw.Bleed.PacksKg,

		ForwardCg0:                     raw.ForwardCg.Cg0,
		ForwardCg1:                     raw.ForwardCg.Cg1,
		ForwardCgSpeedActivationCeilKg: raw.ForwardCg.SpeedActivationCeilKg,

		TvmcgA: toTowVec("tvmcg.a", zipTowVec(raw.Tvmcg.HeadwindBreakpoints, raw.Tvmcg.A)),
		TvmcgB: toTowVec("tvmcg.b", zipTowVec(raw.Tvmcg.HeadwindBreakpoints, raw.Tvmcg.B)),

		WetTow:  newWetAffineFamily("wetTow", raw.WetAdjust.Tow),
		WetFlex: newWetAffineFamily("wetFlex", raw.WetAdjust.Flex),
		WetV1:   newWetAffineFamily("wetV1", raw.WetAdjust.V1),
		WetVr:   newWetAffineFamily("wetVr", raw.WetAdjust.Vr),
		WetV2:   newWetAffineFamily("wetV2", raw.WetAdjust.V2),

		Contaminated: map[string]*ContaminatedCondition{},

		VSpeedKernels: raw.VSpeedKernels,

		MinVmcg: toPoints1D("minControlSpeeds.vmcg", raw.MinControl.Vmcg),
		MinVmca: toPoints1D("minControlSpeeds.vmca", raw.MinControl.Vmca),

		LandingReference:   map[string]LandingRef{},
		LandingCorrections: raw.Landing.Corrections,

		EnvelopeMtow: toEnvelope(raw.Envelopes.Mtow),
		EnvelopeMzfw: toEnvelope(raw.Envelopes.Mzfw),
		EnvelopeMlw:  toEnvelope(raw.Envelopes.Mlw),
	}

	for c := 0; c < 3; c++ {
		db.MinV2Vmc[c] = toPoints1D(fmt.Sprintf("minControlSpeeds.v2vmc[%d]", c), raw.MinControl.V2Vmc[c])
		db.MinV2Vmu[c] = toTable2D(fmt.Sprintf("minControlSpeeds.v2vmu[%d]", c), raw.MinControl.V2Vmu[c])
		db.Vls[0], db.Vls[1] = toPoints1D("vls.full", raw.Landing.Vls[0]), toPoints1D("vls.conf3", raw.Landing.Vls[1])
	}

	for name, f := range raw.Families {
		fam := &Family{
			SlopeCoef:   f.SlopeCoef,
			Altitude:    f.Altitude,
			Temperature: f.Temperature,
			WindHead:    f.WindHead,
			WindTail:    f.WindTail,
		}
		for c := 0; c < 3; c++ {
			fam.Base[c] = toPoints1D(fmt.Sprintf("families.%s.base[%d]", name, c), f.Base[c])
		}
		db.Families[name] = fam
	}

	for cond, c := range raw.Contaminated {
		cc := &ContaminatedCondition{MinCorrectedKg: c.MinCorrectedKg}
		for i := 0; i < 3; i++ {
			cc.WeightCorrection[i] = toPoints1D(fmt.Sprintf("contaminated.%s.weightCorrection[%d]", cond, i), c.WeightCorrection[i])
			cc.Mtow[i] = toPoints1D(fmt.Sprintf("contaminated.%s.mtow[%d]", cond, i), c.Mtow[i])
			cc.VSpeeds[i] = toTowVec(fmt.Sprintf("contaminated.%s.vSpeeds[%d]", cond, i), c.VSpeeds[i])
		}
		db.Contaminated[cond] = cc
	}

	for cond, ref := range raw.Landing.Reference {
		db.LandingReference[cond] = ref
	}

	return db, nil
}

// zipTowVec reassembles the Tvmcg (a, b) per-breakpoint-per-conf arrays
// into the []rawTowVec shape toTowVec expects, reusing the same
// headwind-indexed vector-table machinery used for Tvmcg as the one
// used for TOW-indexed contaminated-runway V-speeds: both are "sorted
// (key, 3-vector)" tables per the data model, just keyed differently.
func zipTowVec(breakpoints []float32, vecs [][3]float32) []rawTowVec {
	out := make([]rawTowVec, len(breakpoints))
	for i, bp := range breakpoints {
		out[i] = rawTowVec{TowKg: bp, V: vecs[i]}
	}
	return out
}

func toEnvelope(pts []point) []perfmath.Point2 {
	out := make([]perfmath.Point2, len(pts))
	for i, p := range pts {
		out[i] = perfmath.Point2{p[0], p[1]}
	}
	return out
}
