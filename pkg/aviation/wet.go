// pkg/aviation/wet.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Wet-runway MTOW, flex, and V-speed adjustments (§4.4, §4.5, §4.8). All
// of the wet adjustments share the same shape: a headwind-indexed pair
// of affine forms in L = adjustedTora - pressureAlt/20, branched on
// whether OAT is above or at/below Tvmcg, clipped non-positive.
package aviation

import "github.com/dancebunny98/tolperf/internal/tabledata"

// wetL is the L used throughout the wet adjustment tables, distinct
// from the per-family L used by the temperature/wind kernels.
func wetL(env Environment) float32 {
	return env.AdjustedTora - env.PressureAlt/20
}

func wetTowAdjustment(db *tabledata.Database, conf Configuration, env Environment, oat, tvmcg float32) float32 {
	return db.WetTow.Eval(conf.index(), oat > tvmcg, env.Headwind, wetL(env))
}

func wetFlexAdjustment(db *tabledata.Database, conf Configuration, env Environment, oat, tvmcg float32) float32 {
	return db.WetFlex.Eval(conf.index(), oat > tvmcg, env.Headwind, wetL(env))
}

func wetV1Adjustment(db *tabledata.Database, conf Configuration, env Environment, oat, tvmcg float32) float32 {
	return db.WetV1.Eval(conf.index(), oat > tvmcg, env.Headwind, wetL(env))
}

func wetVrAdjustment(db *tabledata.Database, conf Configuration, env Environment, oat, tvmcg float32) float32 {
	return db.WetVr.Eval(conf.index(), oat > tvmcg, env.Headwind, wetL(env))
}

func wetV2Adjustment(db *tabledata.Database, conf Configuration, env Environment, oat, tvmcg float32) float32 {
	return db.WetV2.Eval(conf.index(), oat > tvmcg, env.Headwind, wetL(env))
}
