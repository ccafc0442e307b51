// Package perm: sentinel error set. Match with errors.Is.

package perm

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix input.
	ErrNilMatrix = errors.New("perm: nil matrix")

	// ErrNotPermutation indicates a matrix that is not a square 0/1 matrix
	// with exactly one 1 per row and per column.
	ErrNotPermutation = errors.New("perm: matrix is not a permutation matrix")

	// ErrBadSymbol indicates a malformed two-line symbol: rows of unequal
	// length, or rows that are not both permutations of 0…n-1.
	ErrBadSymbol = errors.New("perm: malformed two-line symbol")

	// ErrSampleCount indicates a non-positive number of requested samples.
	ErrSampleCount = errors.New("perm: sample count must be at least 1")
)
