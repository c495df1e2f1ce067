// internal/perfmath/core.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package perfmath

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// A handful of utility functions used throughout the correction kernels;
// since the engine works in float32 throughout, it's handy to have these
// rather than casting back and forth at every call site.

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp returns the linear interpolation of a and b at parameter x, where
// x==0 gives a and x==1 gives b.
func Lerp(x, a, b float32) float32 {
	return (1-x)*a + x*b
}

func Sign(v float32) float32 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Sqrt(a float32) float32 {
	return float32(gomath.Sqrt(float64(a)))
}

func Pow(a, b float32) float32 {
	return float32(gomath.Pow(float64(a), float64(b)))
}

func Cos(a float32) float32 {
	return float32(gomath.Cos(float64(a)))
}

func Radians(deg float32) float32 {
	return deg * Pi / 180
}

func Ceil(v float32) float32 {
	return float32(gomath.Ceil(float64(v)))
}

func Floor(v float32) float32 {
	return float32(gomath.Floor(float64(v)))
}

func IsNaN(v float32) bool {
	return gomath.IsNaN(float64(v))
}

const Pi = float32(gomath.Pi)
