// internal/tabledata/schema.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// The raw JSON shape of the embedded table bundle. These types exist
// only to unmarshal the fixture file; convert (data.go) turns them into the
// immutable, typed tables the engine actually consults.
package tabledata

// point is a (key, value) sample, JSON-encoded as a 2-element array.
type point = [2]float32

type rawFixture struct {
	Structural  rawStructural         `json:"structural"`
	Environment rawEnvironment        `json:"environment"`
	Families    map[string]rawFamily  `json:"families"`
	Bleed       rawBleed              `json:"bleed"`
	ForwardCg   rawForwardCg          `json:"forwardCg"`
	Tvmcg       rawTvmcg              `json:"tvmcg"`
	WetAdjust   rawWetAdjustment      `json:"wetAdjustment"`
	Contaminated map[string]rawContaminated `json:"contaminated"`
	VSpeedKernels [3]rawVSpeedKernel  `json:"vSpeedKernels"`
	MinControl  rawMinControlSpeeds   `json:"minControlSpeeds"`
	Landing     rawLanding            `json:"landing"`
	Envelopes   rawEnvelopes          `json:"envelopes"`
}

type rawStructural struct {
	StructuralMtowKg float32 `json:"structuralMtowKg"`
	OewKg            float32 `json:"oewKg"`
	MaxPressureAltFt float32 `json:"maxPressureAltFt"`
	MaxTailwindKt    float32 `json:"maxTailwindKt"`
	MaxSlopePercent  float32 `json:"maxSlopePercent"`
	TireSpeedMaxKt   float32 `json:"tireSpeedMaxKt"`
	MaxHeadwindKt    float32 `json:"maxHeadwindKt"`
}

type rawEnvironment struct {
	TRefByElevation     []point    `json:"tRefByElevation"`
	TMaxByPressureAlt   []point    `json:"tMaxByPressureAlt"`
	LineupDistanceM     [3]float32 `json:"lineupDistanceM"` // [0deg, 90deg, 180deg]
}

// rawFamily holds the five per-configuration coefficient groups for one
// limit family (Runway, SecondSegment, BrakeEnergy, Vmcg). Base is
// represented as a sampled table rather than raw polynomial coefficients
// for every family (not just Runway): this keeps the
// whole correction stack table-driven, consistent with the rest of the
// engine, since the spec leaves the non-Runway "base polynomial" shape
// unspecified beyond "a coefficient tuple".
type rawFamily struct {
	Base        [3][]point    `json:"base"`        // per conf: adjustedTora -> base weight
	SlopeCoef   [3]float32    `json:"slopeCoef"`   // per conf
	Altitude    [3][2]float32 `json:"altitude"`    // per conf: (a1, a2)
	Temperature [3][6]float32 `json:"temperature"` // per conf: (c0..c5); brakeEnergy uses only c0,c1
	WindHead    [3][]float32  `json:"windHead"`    // per conf: 4-tuple, or 8 for vmcg
	WindTail    [3][]float32  `json:"windTail"`    // per conf: 4-tuple, or 6 for vmcg
}

type rawBleed struct {
	EngineWingKg float32 `json:"engineWingKg"`
	PacksKg      float32 `json:"packsKg"`
}

type rawForwardCg struct {
	Cg0                    [3]float32 `json:"cg0"` // per conf
	Cg1                    [3]float32 `json:"cg1"`
	SpeedActivationCeilKg  float32    `json:"speedActivationCeilKg"`
}

type rawTvmcg struct {
	HeadwindBreakpoints []float32 `json:"headwindBreakpoints"`
	A                   [][3]float32 `json:"a"` // per breakpoint: per-conf coefficient
	B                   [][3]float32 `json:"b"`
}

// rawWetAffine is the two-branch (above/at-below Tvmcg) affine correction
// used for the wet-runway TOW/flex/V1/Vr/V2 adjustments; each branch is
// itself headwind-indexed per configuration, evaluated as two affine
// forms in L and clipped non-positive, per §4.4.
type rawWetAffine struct {
	AboveTvmcg [3]rawHeadwindAffine `json:"aboveTvmcg"` // per conf
	BelowTvmcg [3]rawHeadwindAffine `json:"belowTvmcg"`
}

type rawHeadwindAffine struct {
	HeadwindBreakpoints []float32    `json:"headwindBreakpoints"`
	M1                  []float32    `json:"m1"` // slope of first affine form in L, per breakpoint
	B1                  []float32    `json:"b1"`
	M2                  []float32    `json:"m2"` // slope of second affine form in L, per breakpoint
	B2                  []float32    `json:"b2"`
}

type rawWetAdjustment struct {
	Tow  rawWetAffine `json:"tow"`
	Flex rawWetAffine `json:"flex"`
	V1   rawWetAffine `json:"v1"`
	Vr   rawWetAffine `json:"vr"`
	V2   rawWetAffine `json:"v2"`
}

type rawContaminated struct {
	WeightCorrection [3][]point `json:"weightCorrection"` // per conf: adjustedTora -> kg subtracted from dry MTOW
	Mtow             [3][]point `json:"mtow"`             // per conf: corrected -> contaminated MTOW
	MinCorrectedKg   [3]float32 `json:"minCorrectedKg"`   // per conf
	VSpeeds          [3][]rawTowVec `json:"vSpeeds"`      // per conf: TOW-indexed [V1,Vr,V2]
}

type rawTowVec struct {
	TowKg float32    `json:"towKg"`
	V     [3]float32 `json:"v"` // [V1, Vr, V2]
}

// rawVSpeedKernel holds the coefficients for the dry V1/Vr/V2 kernels for
// one configuration, instantiated twice (ground/airborne-limited) per
// §4.8: base + runway + altitude + slope + wind contributions.
type rawVSpeedKernel struct {
	GroundLimited   rawSpeedCoefSet `json:"groundLimited"`
	AirborneLimited rawSpeedCoefSet `json:"airborneLimited"`
}

type rawSpeedCoefSet struct {
	BaseV1 float32 `json:"baseV1"`
	BaseVr float32 `json:"baseVr"`
	BaseV2 float32 `json:"baseV2"`

	PerRunwayM  [3]float32 `json:"perRunwayM"`  // kt per meter of adjustedTora, [V1,Vr,V2]
	PerAltFt    [3]float32 `json:"perAltFt"`     // kt per 1000ft of pressure altitude
	PerSlopePct [3]float32 `json:"perSlopePct"` // kt per percent slope
	PerWindKt   [3]float32 `json:"perWindKt"`    // kt per knot of headwind
}

type rawMinControlSpeeds struct {
	Vmcg  []point       `json:"vmcg"`  // pressureAlt -> minimum V1 (Vmcg-derived)
	Vmca  []point       `json:"vmca"`  // pressureAlt -> minimum Vr (Vmca-derived)
	V2Vmc [3][]point    `json:"v2vmc"` // per conf: pressureAlt -> minimum V2 from Vmc
	V2Vmu [3]rawTable2D `json:"v2vmu"` // per conf: (pressureAlt, towKg) -> minimum V2 from Vmu
}

type rawTable2D struct {
	K1s  []float32 `json:"k1s"`
	Rows [][]point `json:"rows"` // one Table1D per k1
}

type rawLanding struct {
	Reference   map[string]rawLandingRef `json:"reference"` // key: runway condition name
	Corrections rawLandingCorrections    `json:"corrections"`
	Vls         [2][]point               `json:"vls"` // [Full, Conf3]: weight tonnes -> target speed
}

type rawLandingRef struct {
	Max    [2]float32 `json:"max"`    // [Full, Conf3] reference distance, meters
	Medium [2]float32 `json:"medium"`
	Low    [2]float32 `json:"low"`
	RefWeightKg   float32 `json:"refWeightKg"`
}

type rawLandingCorrections struct {
	WeightAboveKgPerKg float32 `json:"weightAboveKgPerKg"`
	WeightBelowKgPerKg float32 `json:"weightBelowKgPerKg"`
	SpeedPer5Kt        float32 `json:"speedPer5Kt"`
	WindPer5Kt         float32 `json:"windPer5Kt"`
	ReverserCorrection float32 `json:"reverserCorrection"`
	AltitudePer1000Ft  float32 `json:"altitudePer1000Ft"`
	SlopePerPercent    float32 `json:"slopePerPercent"`
	TempPer10C         float32 `json:"tempPer10C"`
	OverweightProc     float32 `json:"overweightProc"`
	AutolandFull       float32 `json:"autolandFull"`
	AutolandConf3      float32 `json:"autolandConf3"`
	SafetyMargin       float32 `json:"safetyMargin"`
}

type rawEnvelopes struct {
	Mtow []point `json:"mtow"`
	Mzfw []point `json:"mzfw"`
	Mlw  []point `json:"mlw"`
}
