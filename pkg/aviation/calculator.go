// pkg/aviation/calculator.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The public calculator surface (§6): wires the environment resolver,
// limit-weight solver, flex search, Tvmcg, wet/contaminated adjusters,
// and V-speed kernel/reconciler into the single `calculate` entry
// point, plus the optimal-configuration search, crosswind limits, and
// landing distances.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// Inputs is the raw takeoff-performance request (§3); immutable
// throughout a calculation.
type Inputs struct {
	Tow             float32
	ForwardCg       bool
	Conf            Configuration
	ToraM           float32
	SlopePercent    float32
	Lineup          LineupAngle
	WindKt          float32
	ElevationFt     float32
	QnhHpa          float32
	Oat             float32
	AntiIce         AntiIce
	Packs           bool
	ForceToga       bool
	RunwayCondition RunwayCondition
	CgPercentMAC    *float32 // optional
}

// AnchorFactors is the dominant limiting factor at each of the four
// temperature anchors.
type AnchorFactors struct {
	Oat, TRef, TMax, TFlexMax LimitingFactor
}

// Result is the full output of a calculation (§3): inputs echo,
// resolved environment, the per-family limit chains, the governing
// factor at each anchor, the final MTOW, the optional flex result, the
// final reconciled V-speeds, the intermediate dry speeds, and the
// error code. StabTrim is left at its zero value: the CG-to-stab-trim
// linear mapping is an external collaborator, out of scope here.
type Result struct {
	Inputs Inputs
	Env    Environment

	Limits    AllLimitWeights
	Governing AnchorFactors

	Mtow float32
	Flex FlexResult

	Dry        DrySpeeds
	V1, Vr, V2 float32

	StabTrim float32

	Err Error
}

// Calculator is the takeoff/landing performance engine. It holds no
// mutable state beyond a reference to the (process-wide immutable)
// table database, so it is safe to share across any number of
// concurrent callers.
type Calculator struct {
	db *tabledata.Database
}

// NewCalculator builds a Calculator against the embedded table bundle.
func NewCalculator() *Calculator {
	return &Calculator{db: tabledata.Tables}
}

// setErr records err only if no error has been recorded yet: later,
// less-fundamental failures never mask an earlier one.
func setErr(res *Result, err Error) {
	if res.Err == ErrNone {
		res.Err = err
	}
}

// Calculate runs the full takeoff-performance procedure for one
// configuration (§6).
func (c *Calculator) Calculate(in Inputs) Result {
	if in.ForceToga {
		// Shallow, bounded (one re-entry) recursion per §9: force TOGA
		// is evaluated as the same calculation with a fixed worst-case
		// wind assumption and no further forceToga recursion, so the
		// V-speeds it returns are forthright rather than tailored to
		// the actual, possibly-favorable wind.
		modified := in
		modified.WindKt = -15
		modified.ForceToga = false
		res := c.Calculate(modified)
		res.Inputs = in
		return res
	}

	db := c.db
	res := Result{Inputs: in}

	if !in.Conf.valid() || in.ToraM <= 0 || in.Tow <= 0 {
		res.Err = ErrInvalidData
		return res
	}
	if in.Tow > db.StructuralMtowKg {
		res.Err = ErrStructuralMtow
		return res
	}
	if in.Tow < db.OewKg {
		res.Err = ErrOew
		return res
	}
	if perfmath.Abs(in.SlopePercent) > db.MaxSlopePercent {
		res.Err = ErrMaxSlope
		return res
	}

	env := ResolveEnvironment(db, in.ElevationFt, in.QnhHpa, in.Oat, in.WindKt, in.Lineup, in.ToraM)
	res.Env = env

	if env.PressureAlt > db.MaxPressureAltFt {
		res.Err = ErrMaxPressureAlt
		return res
	}
	if in.Oat > env.TMax {
		res.Err = ErrMaxTemperature
		return res
	}
	if in.WindKt < -db.MaxTailwindKt {
		res.Err = ErrMaxTailwind
		return res
	}
	if in.CgPercentMAC != nil && !isCgWithinLimits(db, *in.CgPercentMAC, in.Tow) {
		res.Err = ErrCgOutOfLimits
		return res
	}

	all := computeAllLimitWeights(db, in.Conf, env, in.Oat, in.SlopePercent, in.WindKt, in.AntiIce, in.Packs)
	res.Limits = all

	govOat, _, okOat := all.governingFactor(AnchorOat)
	govTRef, _, _ := all.governingFactor(AnchorTRef)
	govTMax, _, _ := all.governingFactor(AnchorTMax)
	govTFlexMax, _, _ := all.governingFactor(AnchorTFlexMax)
	res.Governing = AnchorFactors{Oat: govOat, TRef: govTRef, TMax: govTMax, TFlexMax: govTFlexMax}

	if !okOat {
		res.Err = ErrInvalidData
		return res
	}

	tvmcg := computeTvmcg(db, in.Conf, env)
	condition := in.RunwayCondition

	var mtow float32
	switch {
	case condition.contaminated():
		dryMtow, _, _ := all.dryMtow()
		m, _, tooLight := contaminatedMtow(db, condition, in.Conf, env, dryMtow)
		if tooLight {
			setErr(&res, ErrTooLight)
		}
		mtow = m
	case condition == Wet:
		dryMtow, _, _ := all.dryMtow()
		mtow = dryMtow + wetTowAdjustment(db, in.Conf, env, in.Oat, tvmcg)
	default:
		dryMtow, _, _ := all.dryMtow()
		mtow = dryMtow
	}

	speedSideActive := false
	if in.ForwardCg && !condition.contaminated() {
		mtow, speedSideActive = applyForwardCg(db, in.Conf, govOat, mtow)
	}
	res.Mtow = mtow

	if mtow < in.Tow {
		setErr(&res, ErrTooHeavy)
	}

	res.Flex = computeFlex(db, in.Conf, env, all, in.Tow, in.Oat, in.WindKt, in.AntiIce, in.Packs, condition, tvmcg)

	dry := drySpeedKernel(db, in.Conf, env, govOat, in.SlopePercent)
	res.Dry = dry

	var v1, vr, v2 float32
	if condition.contaminated() {
		v1, vr, v2 = contaminatedVSpeeds(db, condition, in.Conf, in.Tow)
	} else {
		v1, vr, v2 = dry.V1, dry.Vr, dry.V2
		if condition == Wet {
			v1 += wetV1Adjustment(db, in.Conf, env, in.Oat, tvmcg)
			vr += wetVrAdjustment(db, in.Conf, env, in.Oat, tvmcg)
			v2 += wetV2Adjustment(db, in.Conf, env, in.Oat, tvmcg)
		}
	}

	vmuWeight := in.Tow
	if speedSideActive {
		vmuWeight = mtow
	}
	rec := reconcile(db, in.Conf, env.PressureAlt, vmuWeight, roundSpeed(v1), roundSpeed(vr), roundSpeed(v2))
	setErr(&res, rec.Err)
	res.V1, res.Vr, res.V2 = rec.V1, rec.Vr, rec.V2

	return res
}

// CalculateOptimalConfiguration tries every takeoff configuration,
// keeps the ones that complete without error, and returns the one that
// maximizes flex, breaking ties by minimum V1 (§6). If no configuration
// succeeds, the last attempted result is returned.
func (c *Calculator) CalculateOptimalConfiguration(in Inputs) Result {
	confs := [3]Configuration{Configuration1, Configuration2, Configuration3}

	var last Result
	var best *Result
	var bestResult [3]Result

	for i, conf := range confs {
		trial := in
		trial.Conf = conf
		bestResult[i] = c.Calculate(trial)
		last = bestResult[i]
	}

	for i := range bestResult {
		r := &bestResult[i]
		if r.Err != ErrNone {
			continue
		}
		if best == nil || betterConfiguration(*r, *best) {
			best = r
		}
	}
	if best == nil {
		return last
	}
	return *best
}

// betterConfiguration reports whether a should be preferred over b:
// higher flex wins; on a flex tie (or neither flexing), lower V1 wins.
func betterConfiguration(a, b Result) bool {
	if a.Flex.Ok != b.Flex.Ok {
		return a.Flex.Ok
	}
	if a.Flex.Ok && a.Flex.Temp != b.Flex.Temp {
		return a.Flex.Temp > b.Flex.Temp
	}
	return a.V1 < b.V1
}

// IsCgWithinLimits reports whether the given CG falls inside the MTOW
// weight-and-balance envelope at the given weight.
func (c *Calculator) IsCgWithinLimits(cgPercentMAC, weightKg float32) bool {
	return isCgWithinLimits(c.db, cgPercentMAC, weightKg)
}

// GetCrosswindLimit returns the published crosswind limit, in knots,
// for the given runway condition and OAT (§6).
func (c *Calculator) GetCrosswindLimit(condition RunwayCondition, oat float32) float32 {
	switch condition {
	case Dry, Wet:
		return 35
	case CompactedSnow:
		if oat <= -15 {
			return 29
		}
		return 25
	case DrySnow10mm, DrySnow100mm, WetSnow5mm, WetSnow15mm, WetSnow30mm:
		return 25
	default: // Water6mm, Water13mm, Slush6mm, Slush13mm
		return 20
	}
}

// CalculateLandingDistances runs the landing distance calculator
// (§4.9) against this calculator's table database.
func (c *Calculator) CalculateLandingDistances(in LandingInputs) LandingDistances {
	return CalculateLandingDistances(c.db, in)
}

// CheckPerformanceEnvelope tests a (cg, weight) point against the
// published MTOW/MZFW/MLW envelopes.
func (c *Calculator) CheckPerformanceEnvelope(cgPercentMAC, weightKg float32) EnvelopeCheck {
	return checkPerformanceEnvelope(c.db, cgPercentMAC, weightKg)
}

// CheckWeights verifies gross/zero-fuel/fuel weight consistency.
func (c *Calculator) CheckWeights(gw, zfw, fuel float32) WeightCheck {
	return checkWeights(gw, zfw, fuel)
}

// ComputeCgPercentMAC converts a CG position to percent MAC.
func (c *Calculator) ComputeCgPercentMAC(posM, macStartM, macLenM float32) float32 {
	return computeCgPercentMAC(posM, macStartM, macLenM)
}
