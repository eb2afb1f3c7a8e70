// SPDX-License-Identifier: MIT
// Package: montepi/estimator
//
// formula.go — volume-ratio → π conversion.
//
// With p = V(n)/2ⁿ the fraction of the cube occupied by the unit n-ball:
//
//	n = 2k   : V(n) = πᵏ/k!                  ⇒ π = (f·p)^(1/k),   f = 2ⁿ·k!
//	n = 2k+1 : V(n) = 2·k!·(4π)ᵏ/(2k+1)!     ⇒ π = ¼·(f·p)^(1/k), f = 2ⁿ·(2k+1)!/(2·k!)
//
// f is evaluated in float64 while it stays finite (exact for small n, so the
// n=2 branch reduces to 4·p bit for bit); beyond that the same expression is
// evaluated in log space through math.Lgamma.

package estimator

import "math"

// parity selects one of the two closed forms.
type parity uint8

const (
	evenDimension parity = iota
	oddDimension
)

// piConverter is the pure per-dimension part of the inversion, computed once
// per run and applied to every prefix fraction.
type piConverter struct {
	kind  parity
	k     float64 // exponent denominator
	scale float64 // 1 (even) or ¼ (odd)
	f     float64 // volume factor; +Inf when it overflows float64
	logF  float64 // ln f, always finite
}

// newPiConverter builds the converter for dimension ≥ 2.
func newPiConverter(dimension int) piConverter {
	n := float64(dimension)
	switch parity(dimension % 2) {
	case oddDimension:
		k := (dimension - 1) / 2
		lf := n*math.Ln2 + lgamma(2*k+2) - math.Ln2 - lgamma(k+1)
		f := math.Ldexp(factorial(2*k+1)/(2*factorial(k)), dimension)
		return piConverter{kind: oddDimension, k: float64(k), scale: 0.25, f: f, logF: lf}
	default:
		k := dimension / 2
		lf := n*math.Ln2 + lgamma(k+1)
		f := math.Ldexp(factorial(k), dimension)
		return piConverter{kind: evenDimension, k: float64(k), scale: 1, f: f, logF: lf}
	}
}

// pi converts an inside fraction p ∈ [0,1] into a π estimate.
func (c piConverter) pi(p float64) float64 {
	if !math.IsInf(c.f, 0) && !math.IsNaN(c.f) {
		return c.scale * math.Pow(c.f*p, 1/c.k)
	}
	if p == 0 {
		return 0
	}

	return c.scale * math.Exp((c.logF+math.Log(p))/c.k)
}

// PiFromFraction converts the fraction of cube draws that fell inside the unit
// n-ball into a π estimate, using the parity-specific closed form.
//
// Errors:
//   - ErrInvalidArgument if dimension < 2 or fraction ∉ [0,1] (or NaN).
//
// Complexity: O(dimension) for the factorials.
func PiFromFraction(dimension int, fraction float64) (float64, error) {
	if err := validateDimension(dimension); err != nil {
		return 0, estimatorErrorf(opPiFromFraction, err, "")
	}
	if !(fraction >= 0 && fraction <= 1) {
		return 0, estimatorErrorf(opPiFromFraction, ErrInvalidArgument, "fraction %v outside [0,1]", fraction)
	}

	return newPiConverter(dimension).pi(fraction), nil
}

// factorial returns n! as float64 (+Inf once it overflows, from 171!).
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

// lgamma returns ln Γ(x) for the positive integer x.
func lgamma(x int) float64 {
	v, _ := math.Lgamma(float64(x))
	return v
}
