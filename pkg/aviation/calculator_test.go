// pkg/aviation/calculator_test.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "testing"

func benignInputs() Inputs {
	return Inputs{
		Tow:          380000,
		Conf:         Configuration2,
		ToraM:        3500,
		SlopePercent: 0,
		Lineup:       Lineup90,
		WindKt:       10,
		ElevationFt:  0,
		QnhHpa:       1013.25,
		Oat:          15,
		AntiIce:      AntiIceOff,
		Packs:        true,
	}
}

func TestCalculateBenignProducesOrderedSpeeds(t *testing.T) {
	calc := NewCalculator()
	res := calc.Calculate(benignInputs())
	if res.Err != ErrNone {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !(res.V1 <= res.Vr && res.Vr <= res.V2) {
		t.Errorf("reconciled speeds out of order: V1=%v Vr=%v V2=%v", res.V1, res.Vr, res.V2)
	}
}

func TestCalculateTooHeavy(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.Tow = 512000
	in.ToraM = 1200
	res := calc.Calculate(in)
	if res.Err != ErrTooHeavy {
		t.Fatalf("expected TooHeavy, got %v", res.Err)
	}
	if res.Mtow >= in.Tow {
		t.Errorf("expected mtow < tow, got mtow=%v tow=%v", res.Mtow, in.Tow)
	}
}

// TestContaminatedMtowTooLight pins §4.7: a dry MTOW low enough that the
// condition's weight correction drives the corrected weight below the
// condition's minimum yields TooLight rather than a table lookup.
func TestContaminatedMtowTooLight(t *testing.T) {
	db := NewCalculator().db
	env := Environment{AdjustedTora: 3000}

	_, _, tooLight := contaminatedMtow(db, Slush13mm, Configuration3, env, 100000)
	if !tooLight {
		t.Fatalf("expected a contrived low dryMtow to be flagged too light")
	}
}

// TestCalculateContaminatedPropagatesTooLight exercises the same
// condition through the full Calculate pipeline: Configuration3 on a
// short runway keeps dry MTOW low enough that the slush13mm correction
// still drives it below the condition's minimum.
func TestCalculateContaminatedPropagatesTooLight(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.RunwayCondition = Slush13mm
	in.Conf = Configuration3
	in.ToraM = 1200
	in.Tow = 220001
	res := calc.Calculate(in)
	if res.Err != ErrTooLight {
		t.Fatalf("expected TooLight, got %v (mtow=%v)", res.Err, res.Mtow)
	}
}

func TestCalculateBelowOew(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.Tow = 1000
	res := calc.Calculate(in)
	if res.Err != ErrOew {
		t.Fatalf("expected Oew, got %v", res.Err)
	}
}

func TestCalculateAboveStructuralMtow(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.Tow = 10_000_000
	res := calc.Calculate(in)
	if res.Err != ErrStructuralMtow {
		t.Fatalf("expected StructuralMtow, got %v", res.Err)
	}
}

// TestMonotonicTora pins §8 invariant 3: holding everything else fixed,
// increasing tora never decreases MTOW.
func TestMonotonicTora(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.ToraM = 2500
	short := calc.Calculate(in)
	in.ToraM = 4500
	long := calc.Calculate(in)
	if long.Mtow < short.Mtow {
		t.Errorf("longer tora gave lower mtow: short=%v long=%v", short.Mtow, long.Mtow)
	}
}

// TestMonotonicHeadwind pins §8 invariant 3: increasing headwind never
// decreases MTOW, and increasing tailwind never increases it.
func TestMonotonicHeadwind(t *testing.T) {
	calc := NewCalculator()
	in := benignInputs()
	in.WindKt = 0
	noWind := calc.Calculate(in)
	in.WindKt = 20
	headwind := calc.Calculate(in)
	if headwind.Mtow < noWind.Mtow {
		t.Errorf("headwind gave lower mtow: no-wind=%v headwind=%v", noWind.Mtow, headwind.Mtow)
	}

	in.WindKt = -5
	tailwind := calc.Calculate(in)
	if tailwind.Mtow > noWind.Mtow {
		t.Errorf("tailwind gave higher mtow: no-wind=%v tailwind=%v", noWind.Mtow, tailwind.Mtow)
	}
}

// TestForceTogaMatchesWindOverride pins §9's design note and §8 scenario
// 5: forceToga recurses once into the same calculation with wind forced
// to -15 knots.
func TestForceTogaMatchesWindOverride(t *testing.T) {
	calc := NewCalculator()

	in := benignInputs()
	in.Tow = 400000
	in.ToraM = 3000
	in.WindKt = 20
	in.ForceToga = true
	toga := calc.Calculate(in)

	equivalent := in
	equivalent.WindKt = -15
	equivalent.ForceToga = false
	direct := calc.Calculate(equivalent)

	if toga.V1 != direct.V1 || toga.Vr != direct.Vr || toga.V2 != direct.V2 {
		t.Errorf("forceToga speeds (%v,%v,%v) != wind-override speeds (%v,%v,%v)",
			toga.V1, toga.Vr, toga.V2, direct.V1, direct.Vr, direct.V2)
	}
	if toga.Inputs.WindKt != 20 || !toga.Inputs.ForceToga {
		t.Errorf("forceToga result should echo the original inputs, got %+v", toga.Inputs)
	}
}

func TestGetCrosswindLimit(t *testing.T) {
	calc := NewCalculator()
	cases := []struct {
		condition RunwayCondition
		oat       float32
		want      float32
	}{
		{Dry, 20, 35},
		{Wet, -40, 35},
		{CompactedSnow, -20, 29},
		{CompactedSnow, 0, 25},
		{Water13mm, 100, 20},
		{Slush6mm, -50, 20},
		{DrySnow10mm, 0, 25},
	}
	for _, c := range cases {
		if got := calc.GetCrosswindLimit(c.condition, c.oat); got != c.want {
			t.Errorf("GetCrosswindLimit(%v, %v) = %v, want %v", c.condition, c.oat, got, c.want)
		}
	}
}

func TestComputeCgPercentMACRoundTrip(t *testing.T) {
	calc := NewCalculator()
	macStart, macLen := float32(30), float32(10)
	for _, x := range []float32{0, 0.25, 0.5, 1, 2, -0.5} {
		pos := macStart + x*macLen
		got := calc.ComputeCgPercentMAC(pos, macStart, macLen)
		want := 100 * x
		if diff := got - want; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("ComputeCgPercentMAC(%v) = %v, want %v", pos, got, want)
		}
	}
}

func TestPressureAltitudeAtStandardQnh(t *testing.T) {
	env := ResolveEnvironment(NewCalculator().db, 1500, 1013.25, 15, 0, Lineup0, 2000)
	if diff := env.PressureAlt - 1500; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("pressureAlt at standard QNH = %v, want 1500", env.PressureAlt)
	}
}

func TestEnvelopeScenario(t *testing.T) {
	calc := NewCalculator()

	inside := calc.CheckPerformanceEnvelope(31, 370000)
	if !inside.Ok {
		t.Errorf("cg=31, weight=370000 should be inside all envelopes, failing: %v", inside.Failing)
	}

	outside := calc.CheckPerformanceEnvelope(45, 370000)
	if outside.Ok {
		t.Errorf("cg=45, weight=370000 should fail all envelopes")
	}
	if len(outside.Failing) != 3 {
		t.Errorf("expected all 3 envelopes to fail, got %v", outside.Failing)
	}
}

// TestReconcilerIdempotent pins §8 invariant 7: re-running reconciliation
// on an already-valid triple changes nothing.
func TestReconcilerIdempotent(t *testing.T) {
	db := NewCalculator().db
	first := reconcile(db, Configuration2, 0, 380000, 140, 150, 160)
	if first.Err != ErrNone {
		t.Fatalf("unexpected error: %v", first.Err)
	}
	second := reconcile(db, Configuration2, 0, 380000, first.V1, first.Vr, first.V2)
	if second != first {
		t.Errorf("reconcile is not idempotent: first=%+v second=%+v", first, second)
	}
}

func TestCheckWeights(t *testing.T) {
	calc := NewCalculator()
	if ok := calc.CheckWeights(300000, 250000, 50000); !ok.Ok {
		t.Errorf("expected consistent weights to be ok, got violations: %v", ok.Violations)
	}
	if ok := calc.CheckWeights(300000, 250000, -5); ok.Ok {
		t.Error("expected negative fuel to be flagged")
	}
	if ok := calc.CheckWeights(300000, 400000, 50000); ok.Ok {
		t.Error("expected zfw > gw to be flagged")
	}
}
