// Package ansatz: shared adjacency-matrix validation.
// Validators return plain wrapped sentinels so call sites stay minimal.

package ansatz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// isPowerOfTwo reports whether v is a positive power of two (1 included).
func isPowerOfTwo(v int) bool { return v > 0 && v&(v-1) == 0 }

// log2i returns log2(v) for a positive power of two v.
func log2i(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}

	return n
}

// validateAdjacency checks that adj is a non-nil square matrix with a
// power-of-two side length and returns that side length.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrNotPowerOfTwo.
// Complexity: O(1).
func validateAdjacency(adj mat.Matrix) (int, error) {
	if adj == nil {
		return 0, ErrNilMatrix
	}
	r, c := adj.Dims()
	if r != c {
		return 0, fmt.Errorf("%dx%d: %w", r, c, ErrNotSquare)
	}
	if !isPowerOfTwo(r) {
		return 0, fmt.Errorf("side %d: %w", r, ErrNotPowerOfTwo)
	}

	return r, nil
}

// edgeBit thresholds one adjacency entry to a boolean edge: any value that
// rounds away from zero is an edge.
func edgeBit(v float64) bool { return math.Round(v) != 0 }
