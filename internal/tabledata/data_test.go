// internal/tabledata/data_test.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package tabledata

import "testing"

// TestTablesLoaded pins that the embedded fixture loads cleanly at
// package init and produces a database with every family and
// contaminated condition populated.
func TestTablesLoaded(t *testing.T) {
	if Tables == nil {
		t.Fatal("Tables is nil; embedded fixture failed to load")
	}
	if Tables.StructuralMtowKg <= Tables.OewKg {
		t.Errorf("structuralMtowKg (%v) should exceed oewKg (%v)", Tables.StructuralMtowKg, Tables.OewKg)
	}

	for _, key := range []string{"runway", "secondSegment", "brakeEnergy", "vmcg"} {
		if Tables.Families[key] == nil {
			t.Errorf("missing family %q", key)
		}
	}

	conditions := []string{
		"dry", "wet", "compactedSnow", "drySnow10mm", "drySnow100mm",
		"wetSnow5mm", "wetSnow15mm", "wetSnow30mm", "water6mm", "water13mm",
		"slush6mm", "slush13mm",
	}
	for _, key := range conditions {
		if key == "dry" || key == "wet" {
			if _, ok := Tables.LandingReference[key]; !ok {
				t.Errorf("missing landing reference %q", key)
			}
			continue
		}
		if Tables.Contaminated[key] == nil {
			t.Errorf("missing contaminated condition %q", key)
		}
		if _, ok := Tables.LandingReference[key]; !ok {
			t.Errorf("missing landing reference %q", key)
		}
	}
}

func TestEnvelopesNonEmpty(t *testing.T) {
	if len(Tables.EnvelopeMtow) < 3 {
		t.Error("EnvelopeMtow has fewer than 3 vertices")
	}
	if len(Tables.EnvelopeMzfw) < 3 {
		t.Error("EnvelopeMzfw has fewer than 3 vertices")
	}
	if len(Tables.EnvelopeMlw) < 3 {
		t.Error("EnvelopeMlw has fewer than 3 vertices")
	}
}
