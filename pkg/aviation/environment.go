// pkg/aviation/environment.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/dancebunny98/tolperf/internal/perfmath"
	"github.com/dancebunny98/tolperf/internal/tabledata"
)

// Environment holds the intermediates derived once per call from the
// raw inputs (§4.2). Every downstream kernel consumes these rather than
// re-deriving them.
type Environment struct {
	IsaTemp      float32 // degrees C at field elevation
	PressureAlt  float32 // feet
	TRef         float32 // degrees C
	TMax         float32 // degrees C
	TFlexMax     float32 // degrees C
	AdjustedTora float32 // meters, after lineup correction
	Headwind     float32 // knots, positive = headwind, clamped to maxHeadwind; tailwind stays negative
}

// isaTempAt returns the ISA temperature at the given field elevation.
func isaTempAt(elevationFt float32) float32 {
	return 15 - 0.0019812*elevationFt
}

// pressureAltitude converts a field elevation and altimeter setting to
// pressure altitude, per the standard ICAO approximation.
func pressureAltitude(elevationFt, qnhHpa float32) float32 {
	return elevationFt + 145442.15*(1-perfmath.Pow(qnhHpa/1013.25, 0.190263))
}

// ResolveEnvironment derives the shared intermediates from the raw
// environmental inputs, per §4.2.
func ResolveEnvironment(db *tabledata.Database, elevationFt, qnhHpa, oat, windKt float32, lineup LineupAngle, toraM float32) Environment {
	isa := isaTempAt(elevationFt)
	pAlt := pressureAltitude(elevationFt, qnhHpa)

	var env Environment
	env.IsaTemp = isa
	env.PressureAlt = pAlt
	env.TRef = db.TRef.Lookup(elevationFt)
	env.TMax = db.TMax.Lookup(pAlt)
	env.TFlexMax = isa + 59
	env.AdjustedTora = toraM - db.LineupDistanceM[lineup.index()]
	env.Headwind = perfmath.Min(db.MaxHeadwindKt, windKt)
	return env
}
