// pkg/aviation/errors.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import "fmt"

// Error is the closed set of business-logic failure modes the engine
// can report. Per §7, the engine never panics for these — it always
// returns a fully populated Result with Error set accordingly. Panics
// are reserved for malformed embedded table data, a programming error
// (§3 Invariants, §9).
type Error int

const (
	ErrNone Error = iota
	ErrInvalidData
	ErrStructuralMtow
	ErrMaxPressureAlt
	ErrMaxTemperature
	ErrOew
	ErrCgOutOfLimits
	ErrMaxTailwind
	ErrMaxSlope
	ErrTooHeavy
	ErrTooLight
	ErrVmcgVmcaLimits
	ErrMaxTireSpeed
)

var errorNames = [...]string{
	"None", "InvalidData", "StructuralMtow", "MaxPressureAlt", "MaxTemperature",
	"Oew", "CgOutOfLimits", "MaxTailwind", "MaxSlope", "TooHeavy", "TooLight",
	"VmcgVmcaLimits", "MaxTireSpeed",
}

func (e Error) String() string {
	if e >= 0 && int(e) < len(errorNames) {
		return errorNames[e]
	}
	return fmt.Sprintf("Error(%d)", int(e))
}
