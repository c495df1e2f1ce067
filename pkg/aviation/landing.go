// pkg/aviation/landing.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Landing distance calculation (§4.9): for each autobrake mode, the
// reference distance for the runway condition/flap combination is
// adjusted for weight, approach-speed excess, wind, reverser use,
// pressure altitude, slope, temperature, overweight-landing procedure
// and autoland, then inflated by a fixed safety margin.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// LandingInputs is everything the landing distance calculator needs
// beyond the table database itself.
type LandingInputs struct {
	WeightKg  float32
	Flap      LandingFlapConfig
	Condition RunwayCondition

	ElevationFt float32
	QnhHpa      float32
	Oat         float32
	SlopePct    float32 // negative = downhill

	WindKt          float32 // wind speed, magnitude
	HeadingDeltaDeg float32 // angle between wind direction and runway heading

	// ApproachSpeedKt is the speed actually flown; if zero, the target
	// approach speed itself is used and the speed correction is zero.
	ApproachSpeedKt float32

	ReverseThrust bool
	Overweight    bool
	Autoland      bool
}

// LandingDistances is the per-autobrake-mode result.
type LandingDistances struct {
	Max, Medium, Low float32
	TargetApproachKt float32
}

// targetApproachSpeed looks up the reference Vls table for the landing
// flap configuration, floored using the aerodynamic stall relationship
// (Vstall is proportional to sqrt(weight)) for weights below the
// table's lowest sampled breakpoint: a table clamp alone would hold the
// lightest tabulated speed constant no matter how light the aircraft
// actually is, which is not physical. The ratio is itself floored at
// 0.6 to keep the scaling from collapsing to an implausibly low speed.
func targetApproachSpeed(db *tabledata.Database, flap LandingFlapConfig, weightTonnes float32) float32 {
	table := db.Vls[flap.index()]
	v := table.Lookup(weightTonnes)

	loWeight, loSpeed, _, _ := table.Bounds()
	if weightTonnes < loWeight && loWeight > 0 {
		ratio := perfmath.Max(0.6, weightTonnes/loWeight)
		v = loSpeed * perfmath.Sqrt(ratio)
	}
	return v
}

// tailwindComponent resolves the along-runway wind component from a
// wind speed and the angle between wind direction and runway heading,
// returning only the tailwind portion (a headwind contributes nothing
// to landing distance penalties here).
func tailwindComponent(windKt, headingDeltaDeg float32) float32 {
	comp := perfmath.Cos(perfmath.Pi-perfmath.Radians(headingDeltaDeg)) * perfmath.Abs(windKt)
	return perfmath.Max(0, comp)
}

// distanceForMode computes one autobrake mode's corrected landing
// distance, given the reference distance for that mode and the shared
// per-condition deltas.
func distanceForMode(refDistance float32, deltas float32, margin float32) float32 {
	return (refDistance + deltas) * margin
}

// CalculateLandingDistances runs §4.9's full procedure for all three
// autobrake modes.
func CalculateLandingDistances(db *tabledata.Database, in LandingInputs) LandingDistances {
	flapIdx := in.Flap.index()
	ref := db.LandingReference[in.Condition.fixtureKey()]
	c := db.LandingCorrections

	pAlt := pressureAltitude(in.ElevationFt, in.QnhHpa)
	isa := isaTempAt(pAlt)

	weightTonnes := in.WeightKg / 1000
	target := targetApproachSpeed(db, in.Flap, weightTonnes)

	dw := in.WeightKg - ref.RefWeightKg
	var deltaWeight float32
	if dw >= 0 {
		deltaWeight = dw * c.WeightAboveKgPerKg
	} else {
		deltaWeight = perfmath.Abs(dw) * c.WeightBelowKgPerKg
	}

	approachKt := in.ApproachSpeedKt
	if approachKt <= 0 {
		approachKt = target
	}
	deltaSpeed := perfmath.Max(0, approachKt-target) / 5 * c.SpeedPer5Kt

	tailwind := tailwindComponent(in.WindKt, in.HeadingDeltaDeg)
	deltaWind := tailwind / 5 * c.WindPer5Kt

	deltaAltitude := perfmath.Max(0, pAlt/1000) * c.AltitudePer1000Ft
	deltaSlope := perfmath.Max(0, -in.SlopePct) * c.SlopePerPercent
	deltaTemp := perfmath.Max(0, in.Oat-isa) / 10 * c.TempPer10C

	var deltaOverweight float32
	if in.Overweight {
		deltaOverweight = c.OverweightProc
	}

	var deltaAutoland float32
	if in.Autoland {
		if in.Flap == FlapFull {
			deltaAutoland = c.AutolandFull
		} else {
			deltaAutoland = c.AutolandConf3
		}
	}

	var deltaReverse float32
	if in.ReverseThrust {
		deltaReverse = c.ReverserCorrection * 2
	}

	sum := deltaWeight + deltaSpeed + deltaWind + deltaAltitude + deltaSlope +
		deltaTemp + deltaOverweight + deltaAutoland + deltaReverse

	return LandingDistances{
		Max:              distanceForMode(ref.Max[flapIdx], sum, c.SafetyMargin),
		Medium:           distanceForMode(ref.Medium[flapIdx], sum, c.SafetyMargin),
		Low:              distanceForMode(ref.Low[flapIdx], sum, c.SafetyMargin),
		TargetApproachKt: target,
	}
}
