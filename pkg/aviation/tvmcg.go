// pkg/aviation/tvmcg.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// computeTvmcg returns the threshold temperature above which a wet-
// runway takeoff becomes Vmcg-limited (§4.6): a headwind-indexed
// (a, b) vector lookup evaluated against L = adjustedTora -
// pressureAlt/10.
func computeTvmcg(db *tabledata.Database, conf Configuration, env Environment) float32 {
	a := db.TvmcgA.Lookup(env.Headwind)[conf.index()]
	b := db.TvmcgB.Lookup(env.Headwind)[conf.index()]
	l := env.AdjustedTora - env.PressureAlt/10
	return a*l + b
}
