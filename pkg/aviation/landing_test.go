// pkg/aviation/landing_test.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "testing"

// TestLandingScalingAtZeroDeltas pins §8 scenario 8: with every correction
// term zeroed out, the result is just the reference distance inflated by
// the fixed safety margin.
func TestLandingScalingAtZeroDeltas(t *testing.T) {
	calc := NewCalculator()
	in := LandingInputs{
		WeightKg:    350000,
		Flap:        FlapFull,
		Condition:   Dry,
		ElevationFt: 0,
		QnhHpa:      1013.25,
		Oat:         15, // isa at pressure altitude 0
		SlopePct:    0,
		WindKt:      0,
	}
	got := calc.CalculateLandingDistances(in)

	want := float32(1450) * 1.15
	if diff := got.Max - want; diff > 1e-2 || diff < -1e-2 {
		t.Errorf("Max = %v, want %v", got.Max, want)
	}
}

// TestLandingApproachSpeedDefaultsToTarget pins the rule that a zero
// ApproachSpeedKt means "flown at the target speed", contributing no
// speed-excess correction.
func TestLandingApproachSpeedDefaultsToTarget(t *testing.T) {
	calc := NewCalculator()
	base := LandingInputs{
		WeightKg:    350000,
		Flap:        FlapFull,
		Condition:   Dry,
		ElevationFt: 0,
		QnhHpa:      1013.25,
		Oat:         15,
	}
	implicit := calc.CalculateLandingDistances(base)

	explicit := base
	explicit.ApproachSpeedKt = implicit.TargetApproachKt
	got := calc.CalculateLandingDistances(explicit)

	if got.Max != implicit.Max {
		t.Errorf("explicit target speed gave Max=%v, implicit gave %v", got.Max, implicit.Max)
	}
}

// TestLandingWeightMonotonic pins §4.9's weight correction sign: a
// heavier-than-reference landing never shortens the landing distance.
func TestLandingWeightMonotonic(t *testing.T) {
	calc := NewCalculator()
	in := LandingInputs{
		Flap:        FlapFull,
		Condition:   Dry,
		ElevationFt: 0,
		QnhHpa:      1013.25,
		Oat:         15,
	}

	in.WeightKg = 350000
	atRef := calc.CalculateLandingDistances(in)

	in.WeightKg = 380000
	heavier := calc.CalculateLandingDistances(in)

	if heavier.Max < atRef.Max {
		t.Errorf("heavier landing gave shorter distance: ref=%v heavier=%v", atRef.Max, heavier.Max)
	}
}

// TestLandingReverseThrustShortensDistance pins §4.9: reverse thrust is
// the one correction with a negative coefficient, so enabling it can
// only shorten (or leave unchanged) the corrected distance.
func TestLandingReverseThrustShortensDistance(t *testing.T) {
	calc := NewCalculator()
	in := LandingInputs{
		WeightKg:    350000,
		Flap:        FlapFull,
		Condition:   Dry,
		ElevationFt: 0,
		QnhHpa:      1013.25,
		Oat:         15,
	}
	without := calc.CalculateLandingDistances(in)

	in.ReverseThrust = true
	with := calc.CalculateLandingDistances(in)

	if with.Max > without.Max {
		t.Errorf("reverse thrust lengthened distance: without=%v with=%v", without.Max, with.Max)
	}
}

func TestTailwindComponentIgnoresPureHeadwind(t *testing.T) {
	if got := tailwindComponent(20, 0); got != 0 {
		t.Errorf("directly-aligned headwind gave tailwind component %v, want 0", got)
	}
}

func TestTailwindComponentFullTailwind(t *testing.T) {
	got := tailwindComponent(20, 180)
	if diff := got - 20; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("180-degree wind gave tailwind component %v, want 20", got)
	}
}

// TestTargetApproachSpeedStallFloor pins the sqrt(weight-ratio) floor
// applied below the table's lowest sampled breakpoint: below that point
// the speed scales down with weight instead of clamping flat, but the
// ratio itself is floored at 0.6.
func TestTargetApproachSpeedStallFloor(t *testing.T) {
	db := NewCalculator().db

	want := float32(110.1648596254554)
	if got := targetApproachSpeed(db, FlapFull, 200); got-want > 1e-2 || got-want < -1e-2 {
		t.Errorf("targetApproachSpeed(200t) = %v, want %v", got, want)
	}

	wantFloored := float32(99.14837366290988)
	if got := targetApproachSpeed(db, FlapFull, 100); got-wantFloored > 1e-2 || got-wantFloored < -1e-2 {
		t.Errorf("targetApproachSpeed(100t) = %v, want %v (0.6 ratio floor)", got, wantFloored)
	}
}
