// pkg/aviation/contaminated.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Contaminated-runway MTOW (§4.7): subtract a per-condition weight
// correction from dry MTOW, then map the corrected weight through a
// per-condition MTOW table; a corrected weight below the condition's
// minimum yields TooLight.
package aviation

import "github.com/dancebunny98/tolperf/internal/tabledata"

func contaminatedMtow(db *tabledata.Database, condition RunwayCondition, conf Configuration, env Environment, dryMtow float32) (mtow, corrected float32, tooLight bool) {
	cc := db.Contaminated[condition.fixtureKey()]
	idx := conf.index()

	correction := cc.WeightCorrection[idx].Lookup(env.AdjustedTora)
	corrected = dryMtow - correction

	if corrected < cc.MinCorrectedKg[idx] {
		return 0, corrected, true
	}

	mtow = cc.Mtow[idx].Lookup(corrected)
	return mtow, corrected, false
}

// contaminatedVSpeeds reads V1/Vr/V2 directly from the per-condition
// TOW-indexed table, per §4.8.
func contaminatedVSpeeds(db *tabledata.Database, condition RunwayCondition, conf Configuration, towKg float32) (v1, vr, v2 float32) {
	v := db.Contaminated[condition.fixtureKey()].VSpeeds[conf.index()].Lookup(towKg)
	return v[0], v[1], v[2]
}
