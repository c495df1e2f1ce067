// pkg/aviation/types.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "fmt"

// Configuration is the takeoff flap-setting family.
type Configuration int

const (
	Configuration1 Configuration = 1
	Configuration2 Configuration = 2
	Configuration3 Configuration = 3
)

func (c Configuration) String() string {
	switch c {
	case Configuration1:
		return "CONF1"
	case Configuration2:
		return "CONF2"
	case Configuration3:
		return "CONF3"
	default:
		return fmt.Sprintf("Configuration(%d)", int(c))
	}
}

// index returns the 0-based slot this configuration occupies in the
// fixed-size, per-configuration coefficient arrays (§9: "fixed-size
// indexed array keyed by the configuration enum").
func (c Configuration) index() int { return int(c) - 1 }

func (c Configuration) valid() bool { return c >= Configuration1 && c <= Configuration3 }

// LandingFlapConfig is the landing flap family, independent of the
// takeoff Configuration.
type LandingFlapConfig int

const (
	FlapFull LandingFlapConfig = iota
	FlapConf3
)

func (f LandingFlapConfig) String() string {
	if f == FlapConf3 {
		return "CONF3"
	}
	return "FULL"
}

func (f LandingFlapConfig) index() int { return int(f) }

// LimitingFactor identifies which correction-kernel family governs a
// weight limit at a given temperature anchor.
type LimitingFactor int

const (
	Runway LimitingFactor = iota
	SecondSegment
	BrakeEnergy
	Vmcg
)

var limitingFactorNames = [...]string{"Runway", "SecondSegment", "BrakeEnergy", "Vmcg"}

func (f LimitingFactor) String() string {
	if f >= 0 && int(f) < len(limitingFactorNames) {
		return limitingFactorNames[f]
	}
	return fmt.Sprintf("LimitingFactor(%d)", int(f))
}

// familyKey is the key used to index internal/tabledata's Families map;
// it must stay in sync with the fixture's JSON keys.
func (f LimitingFactor) familyKey() string {
	switch f {
	case Runway:
		return "runway"
	case SecondSegment:
		return "secondSegment"
	case BrakeEnergy:
		return "brakeEnergy"
	case Vmcg:
		return "vmcg"
	default:
		panic(fmt.Sprintf("aviation: invalid LimitingFactor %d", int(f)))
	}
}

// allFamilies is the fixed factor order used to break ties when two
// families produce the same limit weight (§4.4: "Runway < SecondSegment
// < BrakeEnergy < Vmcg").
var allFamilies = [...]LimitingFactor{Runway, SecondSegment, BrakeEnergy, Vmcg}

// RunwayCondition is the runway surface contamination state.
type RunwayCondition int

const (
	Dry RunwayCondition = iota
	Wet
	CompactedSnow
	DrySnow10mm
	DrySnow100mm
	WetSnow5mm
	WetSnow15mm
	WetSnow30mm
	Water6mm
	Water13mm
	Slush6mm
	Slush13mm
)

var runwayConditionNames = [...]string{
	"Dry", "Wet", "CompactedSnow", "DrySnow10mm", "DrySnow100mm",
	"WetSnow5mm", "WetSnow15mm", "WetSnow30mm", "Water6mm", "Water13mm",
	"Slush6mm", "Slush13mm",
}

func (c RunwayCondition) String() string {
	if c >= 0 && int(c) < len(runwayConditionNames) {
		return runwayConditionNames[c]
	}
	return fmt.Sprintf("RunwayCondition(%d)", int(c))
}

// contaminated reports whether this is one of the ten non-dry,
// non-wet conditions that route through §4.7's contaminated-runway
// MTOW/V-speed tables rather than the dry/wet correction kernels.
func (c RunwayCondition) contaminated() bool { return c >= CompactedSnow }

// fixtureKey is the lowerCamelCase key used in the embedded fixture's
// "contaminated"/"landing.reference" maps.
func (c RunwayCondition) fixtureKey() string {
	switch c {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	case CompactedSnow:
		return "compactedSnow"
	case DrySnow10mm:
		return "drySnow10mm"
	case DrySnow100mm:
		return "drySnow100mm"
	case WetSnow5mm:
		return "wetSnow5mm"
	case WetSnow15mm:
		return "wetSnow15mm"
	case WetSnow30mm:
		return "wetSnow30mm"
	case Water6mm:
		return "water6mm"
	case Water13mm:
		return "water13mm"
	case Slush6mm:
		return "slush6mm"
	case Slush13mm:
		return "slush13mm"
	default:
		panic(fmt.Sprintf("aviation: invalid RunwayCondition %d", int(c)))
	}
}

// AutobrakeMode is one of the preselected landing deceleration profiles.
type AutobrakeMode int

const (
	AutobrakeLow AutobrakeMode = iota
	AutobrakeMedium
	AutobrakeMax
)

func (m AutobrakeMode) String() string {
	switch m {
	case AutobrakeLow:
		return "LOW"
	case AutobrakeMedium:
		return "MEDIUM"
	case AutobrakeMax:
		return "MAX"
	default:
		return fmt.Sprintf("AutobrakeMode(%d)", int(m))
	}
}

// LineupAngle is the angle the aircraft turns through to line up on the
// runway centerline before brake release.
type LineupAngle int

const (
	Lineup0 LineupAngle = 0
	Lineup90 LineupAngle = 90
	Lineup180 LineupAngle = 180
)

// index returns the slot into Database.LineupDistanceM.
func (a LineupAngle) index() int {
	switch a {
	case Lineup0:
		return 0
	case Lineup90:
		return 1
	case Lineup180:
		return 2
	default:
		return 0
	}
}

// AntiIce is the ignition/anti-ice bleed configuration.
type AntiIce int

const (
	AntiIceOff AntiIce = iota
	AntiIceEngine
	AntiIceEngineWing
)
