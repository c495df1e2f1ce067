// pkg/aviation/vspeed.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The V-speed kernels and reconciler (§4.8). Dry V1/Vr/V2 come from one
// of two coefficient sets per configuration — ground-limited (Runway or
// Vmcg governs) or airborne-limited (SecondSegment or BrakeEnergy
// governs) — each a simple base + runway-length + altitude + slope +
// wind kernel. Wet and contaminated runways then layer their own
// adjustments or replace the kernel output entirely.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

func isAirborneLimited(f LimitingFactor) bool {
	return f == SecondSegment || f == BrakeEnergy
}

// DrySpeeds are the uncorrected V1/Vr/V2 straight out of the kernel,
// before the wet/contaminated adjustment and before reconciliation —
// kept in Result so callers can see what the reconciler changed.
type DrySpeeds struct {
	V1, Vr, V2 float32
}

func drySpeedKernel(db *tabledata.Database, conf Configuration, env Environment, governing LimitingFactor, slopePercent float32) DrySpeeds {
	set := db.VSpeedKernels[conf.index()].GroundLimited
	if isAirborneLimited(governing) {
		set = db.VSpeedKernels[conf.index()].AirborneLimited
	}

	eval := func(base, perRunway, perAlt, perSlope, perWind float32) float32 {
		return base +
			perRunway*env.AdjustedTora +
			perAlt*(env.PressureAlt/1000) +
			perSlope*slopePercent +
			perWind*env.Headwind
	}

	return DrySpeeds{
		V1: eval(set.BaseV1, set.PerRunwayM[0], set.PerAltFt[0], set.PerSlopePct[0], set.PerWindKt[0]),
		Vr: eval(set.BaseVr, set.PerRunwayM[1], set.PerAltFt[1], set.PerSlopePct[1], set.PerWindKt[1]),
		V2: eval(set.BaseV2, set.PerRunwayM[2], set.PerAltFt[2], set.PerSlopePct[2], set.PerWindKt[2]),
	}
}

// ReconcileResult is the output of speed reconciliation: the final
// V1/Vr/V2 triple, or an Error if the floors/ceilings could not be
// satisfied in order.
type ReconcileResult struct {
	V1, Vr, V2 float32
	Err        Error
}

// reconcile enforces §4.8's ordered minimum/ceiling constraints against
// an already integer-rounded V1/Vr/V2 triple. vmuWeight is the weight
// the VMU-derived V2 floor is looked up against: ordinarily the actual
// TOW, but callers pass the forward-CG-bumped MTOW instead when §4.4's
// speed-side correction is active, since that floor is what the bump
// is protecting.
func reconcile(db *tabledata.Database, conf Configuration, pressureAlt, vmuWeight, v1, vr, v2 float32) ReconcileResult {
	minV1 := perfmath.Ceil(db.MinVmcg.Lookup(pressureAlt))
	minVr := perfmath.Ceil(db.MinVmca.Lookup(pressureAlt))
	minV2 := perfmath.Ceil(perfmath.Max(
		db.MinV2Vmc[conf.index()].Lookup(pressureAlt),
		db.MinV2Vmu[conf.index()].Lookup(pressureAlt, vmuWeight)))

	v1 = perfmath.Max(v1, minV1)
	vr = perfmath.Max(vr, minVr)
	v2 = perfmath.Max(v2, minV2)

	if vr > v2 {
		vr = v2
		if vr < minVr {
			return ReconcileResult{Err: ErrVmcgVmcaLimits}
		}
	}

	tireMax := db.TireSpeedMaxKt
	if v2 > tireMax {
		if vr > tireMax {
			return ReconcileResult{Err: ErrMaxTireSpeed}
		}
		vr = perfmath.Min(vr, tireMax-(v2-tireMax))
	}

	if v1 > vr {
		v1 = vr
		if v1 < minV1 {
			return ReconcileResult{Err: ErrVmcgVmcaLimits}
		}
	}

	return ReconcileResult{V1: v1, Vr: vr, V2: v2}
}

func roundSpeed(v float32) float32 {
	return perfmath.Floor(v + 0.5)
}
