// pkg/aviation/envelope.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Weight-and-balance envelope validation (§4.6, §6): point-in-polygon
// checks against the published MTOW/MZFW/MLW (cgPercentMAC, weightKg)
// envelopes, plus the CG-percent-MAC and gross/zero-fuel/fuel weight
// consistency helpers that feed them.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// EnvelopeCheck is the result of testing one (cg, weight) point against
// all three published envelopes.
type EnvelopeCheck struct {
	Ok      bool
	Failing []string
}

// checkPerformanceEnvelope tests the point against the MTOW, MZFW and
// MLW polygons, reporting by name which (if any) it falls outside of.
func checkPerformanceEnvelope(db *tabledata.Database, cgPercentMAC, weightKg float32) EnvelopeCheck {
	p := perfmath.Point2{cgPercentMAC, weightKg}

	var failing []string
	if !perfmath.PointInPolygon(p, db.EnvelopeMtow) {
		failing = append(failing, "MTOW")
	}
	if !perfmath.PointInPolygon(p, db.EnvelopeMzfw) {
		failing = append(failing, "MZFW")
	}
	if !perfmath.PointInPolygon(p, db.EnvelopeMlw) {
		failing = append(failing, "MLW")
	}
	return EnvelopeCheck{Ok: len(failing) == 0, Failing: failing}
}

// WeightCheck is the result of checking gross/zero-fuel/fuel weight
// consistency.
type WeightCheck struct {
	Ok         bool
	Violations []string
}

// checkWeights verifies the three reported weights are mutually
// consistent: fuel can't be negative, zero-fuel weight can't exceed
// gross weight, and gross weight must equal zero-fuel weight plus fuel
// within a small tolerance.
func checkWeights(gw, zfw, fuel float32) WeightCheck {
	const tolerance = 1.0

	var violations []string
	if fuel < 0 {
		violations = append(violations, "negative fuel weight")
	}
	if zfw > gw {
		violations = append(violations, "zero-fuel weight exceeds gross weight")
	}
	if perfmath.Abs(gw-(zfw+fuel)) > tolerance {
		violations = append(violations, "gross weight inconsistent with zero-fuel weight plus fuel")
	}
	return WeightCheck{Ok: len(violations) == 0, Violations: violations}
}

// computeCgPercentMAC converts a CG position (meters from a reference
// datum) to percent mean aerodynamic chord.
func computeCgPercentMAC(posM, macStartM, macLenM float32) float32 {
	return 100 * (posM - macStartM) / macLenM
}

// isCgWithinLimits reports whether the given CG falls inside the MTOW
// envelope at the given weight — the check the top-level calculator
// runs during input validation, ahead of any limit computation.
func isCgWithinLimits(db *tabledata.Database, cgPercentMAC, weightKg float32) bool {
	return perfmath.PointInPolygon(perfmath.Point2{cgPercentMAC, weightKg}, db.EnvelopeMtow)
}
