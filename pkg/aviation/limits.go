// pkg/aviation/limits.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The limit-weight solver (§4.4): for each limit family, computes a
// chain from the tabulated base weight down through slope, altitude,
// temperature, and (optionally) bleed corrections, at each of the four
// temperature anchors.
package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// TemperatureAnchor identifies one of the four temperatures at which the
// limit-weight solver evaluates each family.
type TemperatureAnchor int

const (
	AnchorOat TemperatureAnchor = iota
	AnchorTRef
	AnchorTMax
	AnchorTFlexMax
)

// AnchorLimit holds the limit weight at one temperature anchor, with and
// without the bleed correction applied, plus the individual deltas that
// produced it (kept for diagnostics and for the flex search, which needs
// the no-bleed limit directly).
type AnchorLimit struct {
	DeltaT float32
	DeltaW float32

	LimitNoBleed float32
	Limit        float32
	Valid        bool // false if DeltaT's temperature kernel exceeded TFlexMax
}

// LimitWeights is the full chain of intermediates for one limit family,
// per §3's LimitWeights[factor] entity.
type LimitWeights struct {
	Base       float32
	SlopeLimit float32
	AltLimit   float32

	Anchors [4]AnchorLimit // indexed by TemperatureAnchor
}

// computeLimitWeights runs the base -> slope -> altitude -> (temperature
// + wind) -> bleed chain for one family, at all four temperature
// anchors, per §4.4.
func computeLimitWeights(db *tabledata.Database, family LimitingFactor, conf Configuration, env Environment, oat, slopePercent, wind float32, antiIce AntiIce, packs bool) LimitWeights {
	var lw LimitWeights
	lw.Base = baseWeight(db, family, conf, env)
	lw.SlopeLimit = lw.Base - slopeCorrection(db, family, conf, env, slopePercent)
	lw.AltLimit = lw.SlopeLimit - altitudeCorrection(db, family, conf, env)

	bleed := bleedCorrection(db, antiIce, packs)

	anchorTemps := [4]float32{oat, env.TRef, env.TMax, env.TFlexMax}
	for i, t := range anchorTemps {
		dt, ok := temperatureCorrection(db, family, conf, env, t)
		al := &lw.Anchors[i]
		if !ok {
			al.Valid = false
			continue
		}
		dw := windCorrection(db, family, conf, env, t, wind)
		al.DeltaT, al.DeltaW, al.Valid = dt, dw, true
		al.LimitNoBleed = lw.AltLimit - dt - dw
		al.Limit = al.LimitNoBleed - bleed
	}
	return lw
}

// AllLimitWeights computes the limit-weight chain for every family.
type AllLimitWeights map[LimitingFactor]LimitWeights

func computeAllLimitWeights(db *tabledata.Database, conf Configuration, env Environment, oat, slopePercent, wind float32, antiIce AntiIce, packs bool) AllLimitWeights {
	all := make(AllLimitWeights, len(allFamilies))
	for _, f := range allFamilies {
		all[f] = computeLimitWeights(db, f, conf, env, oat, slopePercent, wind, antiIce, packs)
	}
	return all
}

// governingFactor returns the family with the smallest Limit at the
// given anchor, breaking ties by the fixed factor order Runway <
// SecondSegment < BrakeEnergy < Vmcg (§4.4). Families whose temperature
// kernel was invalid at this anchor (T > TFlexMax) are skipped.
func (all AllLimitWeights) governingFactor(anchor TemperatureAnchor) (LimitingFactor, float32, bool) {
	best := LimitingFactor(-1)
	var bestLimit float32
	found := false
	for _, f := range allFamilies {
		al := all[f].Anchors[anchor]
		if !al.Valid {
			continue
		}
		if !found || al.Limit < bestLimit {
			best, bestLimit, found = f, al.Limit, true
		}
	}
	return best, bestLimit, found
}

// withBleedAt returns the bleed-corrected limit weight for the given
// family at the given anchor.
func (all AllLimitWeights) withBleedAt(f LimitingFactor, anchor TemperatureAnchor) float32 {
	return all[f].Anchors[anchor].Limit
}

// noBleedAt returns the bleed-excluded limit weight for the given family
// at the given anchor — the flex search needs this form directly.
func (all AllLimitWeights) noBleedAt(f LimitingFactor, anchor TemperatureAnchor) float32 {
	return all[f].Anchors[anchor].LimitNoBleed
}

// dryMtow is the OAT-anchor MTOW: the bleed-corrected limit of the
// family that governs at OAT.
func (all AllLimitWeights) dryMtow() (mtow float32, governing LimitingFactor, ok bool) {
	f, _, found := all.governingFactor(AnchorOat)
	if !found {
		return 0, 0, false
	}
	return all.withBleedAt(f, AnchorOat), f, true
}

// applyForwardCg applies §4.4's forward-CG MTOW bump: if the OAT-anchor
// governing factor is Runway or Vmcg, add max(0, cg0*MTOW + cg1) to MTOW.
// The speed-side correction (§4.4's "further... activates only when MTOW
// ≤ a threshold") reports as speedSideActive: the fixture carries no
// separate coefficient table for it, only the activation ceiling, so
// there is nothing here for a magnitude to be read from. What the
// bumped weight does change is the margin the VMU-derived V2 floor is
// checked against (§4.8's MinV2Vmu, which is itself weight-indexed);
// speedSideActive tells the caller to look that floor up against the
// bumped MTOW rather than the raw TOW, per DESIGN.md's Open Question
// resolution for this correction.
func applyForwardCg(db *tabledata.Database, conf Configuration, governing LimitingFactor, mtow float32) (bumped float32, speedSideActive bool) {
	if governing != Runway && governing != Vmcg {
		return mtow, false
	}
	cg0 := db.ForwardCg0[conf.index()]
	cg1 := db.ForwardCg1[conf.index()]
	bumped = mtow + perfmath.Max(0, cg0*mtow+cg1)
	return bumped, bumped <= db.ForwardCgSpeedActivationCeilKg
}
