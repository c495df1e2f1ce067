// pkg/aviation/kernels.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The four correction-kernel families (§4.3): slope, altitude,
// temperature, and wind, each a piecewise-linear polynomial in runway
// length and altitude. All corrections are subtractive: callers subtract
// the returned delta from the running limit weight.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// lFactor maps a limit family to its K divisor in L = adjustedTora -
// pressureAlt/K, used by the temperature and wind kernels.
// BrakeEnergy has no L dependence at all (§4.3).
func lFactor(family LimitingFactor) (k float32, hasL bool) {
	switch family {
	case Runway:
		return 12, true
	case SecondSegment:
		return 5, true
	case Vmcg:
		return 1, true
	case BrakeEnergy:
		return 0, false
	default:
		panic("aviation: unknown limit family")
	}
}

func lValue(family LimitingFactor, env Environment) float32 {
	k, hasL := lFactor(family)
	if !hasL {
		return 0
	}
	return env.AdjustedTora - env.PressureAlt/k
}

// baseWeight looks up the tabulated base limit weight for the family and
// configuration, per §4.1/§4.4.
func baseWeight(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment) float32 {
	return db.Families[family.familyKey()].Base[conf.index()].Lookup(env.AdjustedTora)
}

// slopeCorrection returns ΔS, the subtractive correction applied as
// `limit -= ΔS`, following the formula literally: 1000·slopeCoef·
// adjustedTora·slope, with no sign normalization of slopePercent.
// Coefficients are tabulated positive, so with the signed-percent
// convention (negative = downhill), a downhill slope yields a negative
// ΔS and therefore *increases* the limit weight here; §9 Open Question
// (i) flags the source's slope-sign convention as inconsistent, and no
// §8 scenario exercises nonzero slope, so the literal formula is kept
// rather than guessing at a sign flip unsupported by any test.
func slopeCorrection(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment, slopePercent float32) float32 {
	coef := db.Families[family.familyKey()].SlopeCoef[conf.index()]
	return 1000 * coef * env.AdjustedTora * slopePercent
}

// altitudeCorrection returns ΔA, the subtractive correction for pressure
// altitude (§4.3).
func altitudeCorrection(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment) float32 {
	ab := db.Families[family.familyKey()].Altitude[conf.index()]
	a1, a2 := ab[0], ab[1]
	return 1000 * env.PressureAlt * (env.PressureAlt*a1 + a2)
}

// temperatureCorrection returns ΔT, the subtractive, three-segment
// continuous piecewise-linear temperature correction (§4.3). ok is false
// if T exceeds TFlexMax, in which case the kernel is invalid and the
// caller must not use the (unspecified) returned value.
func temperatureCorrection(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment, t float32) (delta float32, ok bool) {
	if t > env.TFlexMax {
		return 0, false
	}
	c := db.Families[family.familyKey()].Temperature[conf.index()]
	c0, c1, c2, c3, c4, c5 := c[0], c[1], c[2], c[3], c[4], c[5]

	if family == BrakeEnergy {
		// BrakeEnergy ignores L and has no above-Tmax term (§4.3).
		delta = 1000*c0*(perfmath.Min(t, env.TRef)-env.IsaTemp) +
			1000*c1*perfmath.Max(0, perfmath.Min(t, env.TMax)-env.TRef)
		return delta, true
	}

	l := lValue(family, env)
	delta = 1000 * (l*c0 + c1) * (perfmath.Min(t, env.TRef) - env.IsaTemp)
	if t > env.TRef {
		delta += 1000 * (l*c2 + c3) * (perfmath.Min(t, env.TMax) - env.TRef)
	}
	if t > env.TMax {
		delta += 1000 * (l*c4 + c5) * (t - env.TMax)
	}
	return delta, true
}

// windCorrection returns ΔW, the subtractive wind correction (§4.3). The
// head/tail coefficient quadruple is selected by the sign of wind; Vmcg
// carries an extended 8-term head / 6-term tail tuple for its extra
// ISA-to-TRef segment. If the computed correction's sign matches the
// wind's sign (an unphysical flip from extrapolating past table edges),
// it is zeroed rather than applied.
func windCorrection(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment, t, wind float32) float32 {
	fam := db.Families[family.familyKey()]
	l := lValue(family, env)

	var w []float32
	if wind >= 0 {
		w = fam.WindHead[conf.index()]
	} else {
		w = fam.WindTail[conf.index()]
	}

	delta := 1000 * (l*w[0] + w[1]) * wind

	if family == Vmcg {
		if wind >= 0 {
			// 8-tuple: (w0,w1) primary, w2 extra ISA->TRef segment
			// (always applied), w3 TRef->TMax, w4 TMax->TFlexMax;
			// w5-w7 reserved.
			delta += 1000 * w[2] * wind * (perfmath.Min(t, env.TRef) - env.IsaTemp)
			if t > env.TRef {
				delta += 1000 * w[3] * wind * (perfmath.Min(t, env.TMax) - env.TRef)
			}
			if t > env.TMax {
				delta += 1000 * w[4] * wind * (t - env.TMax)
			}
		} else {
			// 6-tuple: (w0,w1) primary, w2 TRef->TMax, w3 TMax->TFlexMax;
			// w4-w5 reserved.
			if t > env.TRef {
				delta += 1000 * w[2] * wind * (perfmath.Min(t, env.TMax) - env.TRef)
			}
			if t > env.TMax {
				delta += 1000 * w[3] * wind * (t - env.TMax)
			}
		}
	} else {
		if t > env.TRef {
			delta += 1000 * w[2] * wind * (perfmath.Min(t, env.TMax) - env.TRef)
		}
		if t > env.TMax {
			delta += 1000 * w[3] * wind * (t - env.TMax)
		}
	}

	if perfmath.Sign(delta) == perfmath.Sign(wind) {
		return 0
	}
	return delta
}

// bleedCorrection returns ΔB, the subtractive correction for wing
// anti-ice and pack bleed configuration (§4.3).
func bleedCorrection(db *tabledata.Database, antiIce AntiIce, packs bool) float32 {
	var delta float32
	if antiIce == AntiIceEngineWing {
		delta += db.BleedEngineWingKg
	}
	if packs {
		delta += db.BleedPacksKg
	}
	return delta
}
