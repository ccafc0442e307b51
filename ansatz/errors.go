// Package ansatz: sentinel error set.
// All validation failures are immediate and fatal to the call; construction
// is aborted, nothing is retried or logged. Match with errors.Is.

package ansatz

import "errors"

var (
	// ErrNilMatrix indicates a nil adjacency (or permutation) matrix input.
	ErrNilMatrix = errors.New("ansatz: nil matrix")

	// ErrNotSquare indicates a non-square adjacency matrix.
	ErrNotSquare = errors.New("ansatz: adjacency matrix is not square")

	// ErrNotPowerOfTwo indicates a matrix side length that is not a power
	// of two (1 counts as a valid power of two).
	ErrNotPowerOfTwo = errors.New("ansatz: matrix side must be a power of two")

	// ErrPatternTooLarge indicates a pattern graph with more vertices than
	// the host graph.
	ErrPatternTooLarge = errors.New("ansatz: pattern graph larger than host graph")

	// ErrParamShape indicates a parameter tensor whose shape does not match
	// (edge count × BlockParamCount).
	ErrParamShape = errors.New("ansatz: parameter tensor shape mismatch")

	// ErrShrinkExtension indicates a zero-extension target smaller than the
	// input matrix; padding only grows, never shrinks.
	ErrShrinkExtension = errors.New("ansatz: zero-extension must not shrink")

	// ErrOddPartition indicates an operator qubit count that cannot be
	// split into two equal index registers plus one ancilla.
	ErrOddPartition = errors.New("ansatz: qubit count minus ancilla must be even")

	// ErrObservableSize indicates a non-positive qubit count for the
	// observable.
	ErrObservableSize = errors.New("ansatz: observable needs at least 1 qubit")

	// ErrStateLength indicates a state vector whose length does not match
	// the observable's 2^n dimension.
	ErrStateLength = errors.New("ansatz: state length does not match observable")
)
