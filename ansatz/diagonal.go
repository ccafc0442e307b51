// Package ansatz: diagonal phase encoding of adjacency matrices.
//
// An adjacency matrix is injected into the circuit as pure relative phase:
// the matrix is thresholded to bits, flattened row-major, prefixed with an
// equal-length all-zero block (one extra address qubit discriminates the
// ancilla), and each bit b becomes the diagonal entry exp(iπ·b) = ±1.

package ansatz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quantalab/qisom/circuit"
)

// ZeroExtend zero-pads a square matrix to side length n, keeping the
// original values in the top-left block and non-edges elsewhere. Padding
// only grows: n must be at least the input's side length.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrShrinkExtension.
// Complexity: O(n²).
func ZeroExtend(adj mat.Matrix, n int) (*mat.Dense, error) {
	if adj == nil {
		return nil, ErrNilMatrix
	}
	r, c := adj.Dims()
	if r != c {
		return nil, fmt.Errorf("%dx%d: %w", r, c, ErrNotSquare)
	}
	if n < r {
		return nil, fmt.Errorf("extend %d to %d: %w", r, n, ErrShrinkExtension)
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, adj.At(i, j))
		}
	}

	return out, nil
}

// indexRegisters partitions numQubits operator qubits into the fixed
// register layout of the encoder: two equal "vertex index" registers i and
// j plus a single-qubit ancilla a. Requires (numQubits-1) to be even.
func indexRegisters(numQubits int) ([3]circuit.Register, error) {
	if numQubits < 1 || (numQubits-1)%2 != 0 {
		return [3]circuit.Register{}, fmt.Errorf("%d qubits: %w", numQubits, ErrOddPartition)
	}
	m := (numQubits - 1) / 2

	return [3]circuit.Register{
		{Name: "i", Size: m},
		{Name: "j", Size: m},
		{Name: "a", Size: 1},
	}, nil
}

// adjacencyDiagonal builds the diagonal phase operator circuit for adj.
// When ext > 0 the matrix is first zero-extended to ext×ext (ext must be a
// power of two not smaller than the input side). The returned circuit is a
// single block labeled "QAdj" over registers i, j, a.
//
// The diagonal is addressed with register i as the low bits (the column
// index of the flattened matrix), register j above it (the row index), and
// the ancilla as the most significant bit selecting the adjacency half.
func adjacencyDiagonal(adj mat.Matrix, ext int) (*circuit.Circuit, error) {
	n, err := validateAdjacency(adj)
	if err != nil {
		return nil, err
	}
	if ext > 0 {
		if !isPowerOfTwo(ext) {
			return nil, fmt.Errorf("extension side %d: %w", ext, ErrNotPowerOfTwo)
		}
		if adj, err = ZeroExtend(adj, ext); err != nil {
			return nil, err
		}
		n = ext
	}

	// 2·n² diagonal entries: an all-zero half, then the flattened bits.
	length := n * n
	phases := make([]complex128, 2*length)
	for k := 0; k < length; k++ {
		phases[k] = 1
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			p := complex128(1)
			if edgeBit(adj.At(row, col)) {
				p = -1 // exp(iπ)
			}
			phases[length+row*n+col] = p
		}
	}

	numQubits := 2*log2i(n) + 1
	regs, err := indexRegisters(numQubits)
	if err != nil {
		return nil, err
	}
	qc, err := circuit.New(regs[0], regs[1], regs[2])
	if err != nil {
		return nil, err
	}
	var qubits []int
	for _, r := range qc.Registers() {
		qubits = append(qubits, r.Qubits()...)
	}
	if err = qc.Diagonal(phases, qubits...); err != nil {
		return nil, err
	}

	return qc.ToBlock("QAdj"), nil
}
