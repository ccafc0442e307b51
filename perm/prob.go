// Package perm: angle-to-probability scoring.

package perm

import "math"

// thetaToProb scores one angle. Normalize by π, drop the sign, split into
// integer and fractional parts, reduce the integer part modulo 2 and take
// the absolute difference against the fraction:
//
//	x = k·π (k even) → 0    x = k·π (k odd) → 1    x = π/2 → 0.5
//
// The result is the probability that the angle should snap to π rather
// than 0.
func thetaToProb(x float64) float64 {
	x = math.Abs(x / math.Pi)
	ipart, frac := math.Modf(x)
	parity := math.Mod(ipart, 2)

	return math.Abs(frac - parity)
}

// ThetasToProb maps each angle to its closeness-to-π probability; see
// thetaToProb for the per-element rule.
//
// Complexity: O(len(x)).
func ThetasToProb(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = thetaToProb(v)
	}

	return out
}
