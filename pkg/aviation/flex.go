// pkg/aviation/flex.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The flex-temperature search (§4.5): a bounded integer scan over one of
// three temperature brackets, choosing the bracket from which limit
// bracket contains TOW, and returning the highest temperature that still
// admits TOW under both the bracket's "from" and "to" governing
// factors.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// FlexResult is the outcome of the flex search.
type FlexResult struct {
	Temp           float32
	LimitingFactor LimitingFactor
	Ok             bool
}

// candidateTow evaluates the altitude-corrected limit weight for the
// given family at temperature t, the same altLimit - ΔT(t) - ΔW(t, wind)
// form used by the limit-weight solver, but for an arbitrary integer t
// rather than one of the four fixed anchors.
//
// t is clamped to TFlexMax before being handed to the kernels: the
// bracket-3 scan range intentionally runs up to TFlexMax+8 so that the
// post-adjustment anti-ice/pack subtraction (up to 8 degrees) has room
// to land back at or below TFlexMax, per §4.5's "cap at tFlexMax" step —
// but the temperature kernel itself is only ever defined up to TFlexMax
// (§4.3), so candidates above it are evaluated at the TFlexMax kernel
// value.
func candidateTow(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment, altLimit, t, wind float32) float32 {
	tEff := perfmath.Min(t, env.TFlexMax)
	dt, _ := temperatureCorrection(db, family, conf, env, tEff)
	dw := windCorrection(db, family, conf, env, tEff, wind)
	return altLimit - dt - dw
}

// searchFlex runs the bracketed integer scan and returns the highest
// admissible temperature (before the anti-ice/pack/wet post-adjustment)
// and which side of the bracket was tighter there.
func searchFlex(db *tabledata.Database, conf Configuration, env Environment, all AllLimitWeights, tow, wind float32) (temp float32, factor LimitingFactor, ok bool) {
	govOat, _, foundOat := all.governingFactor(AnchorOat)
	if !foundOat {
		return 0, 0, false
	}
	if tow >= all.withBleedAt(govOat, AnchorTRef) {
		return 0, 0, false
	}

	govTMax, _, foundTMax := all.governingFactor(AnchorTMax)
	govTFlex, _, foundTFlex := all.governingFactor(AnchorTFlexMax)
	if !foundTMax || !foundTFlex {
		return 0, 0, false
	}

	var lo, hi float32
	var from, to LimitingFactor
	switch {
	case tow > all.noBleedAt(govTMax, AnchorTMax):
		govTRef, _, foundTRef := all.governingFactor(AnchorTRef)
		if !foundTRef {
			return 0, 0, false
		}
		lo, hi = env.TRef, env.TMax
		from, to = govTRef, govTMax
	case tow > all.noBleedAt(govTFlex, AnchorTFlexMax):
		lo, hi = env.TMax, env.TFlexMax
		from, to = govTMax, govTFlex
	default:
		lo, hi = env.TFlexMax, env.TFlexMax+8
		from, to = govTFlex, govTFlex
	}

	fromAlt := all[from].AltLimit
	toAlt := all[to].AltLimit

	found := false
	for t := perfmath.Floor(hi); t >= perfmath.Ceil(lo); t-- {
		fromTow := candidateTow(db, from, conf, env, fromAlt, t, wind)
		toTow := candidateTow(db, to, conf, env, toAlt, t, wind)
		cand := perfmath.Min(fromTow, toTow)
		if tow <= cand {
			temp = t
			if fromTow <= toTow {
				factor = from
			} else {
				factor = to
			}
			found = true
			break
		}
	}
	return temp, factor, found
}

// computeFlex runs the full flex procedure, including the post-search
// anti-ice/pack/wet adjustments and the final OAT floor check, per §4.5.
// Flex is only attempted on dry and wet runways.
func computeFlex(db *tabledata.Database, conf Configuration, env Environment, all AllLimitWeights, tow, oat, wind float32, antiIce AntiIce, packs bool, condition RunwayCondition, tvmcg float32) FlexResult {
	if condition.contaminated() {
		return FlexResult{}
	}

	temp, factor, ok := searchFlex(db, conf, env, all, tow, wind)
	if !ok {
		return FlexResult{}
	}

	switch antiIce {
	case AntiIceEngine:
		temp -= 2
	case AntiIceEngineWing:
		temp -= 6
	}
	if packs {
		temp -= 2
	}
	temp = perfmath.Min(temp, env.TFlexMax)
	temp = perfmath.Floor(temp)

	if condition == Wet {
		temp += wetFlexAdjustment(db, conf, env, oat, tvmcg)
	}

	if temp <= oat {
		return FlexResult{}
	}
	return FlexResult{Temp: temp, LimitingFactor: factor, Ok: true}
}
