// Package perm: two-line notation for permutation matrices.

package perm

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TwoLine is a permutation in two-line notation: Top[k] is the k-th domain
// index (ascending after construction), Bottom[k] its image.
type TwoLine struct {
	Top    []int
	Bottom []int
}

// Len returns the number of mapped indices.
func (s TwoLine) Len() int { return len(s.Top) }

// ToTwoLine converts a 0/1 permutation matrix to its two-line symbol.
//
// The coordinates of the non-zero entries form a 2×N index array
// (rows, columns). By default the column index becomes the domain row —
// the column-to-row reading of the matrix; with inverse=true the rows are
// swapped, giving the inverse permutation. Either way the symbol's columns
// are sorted by the top row ascending.
//
// Errors: ErrNilMatrix, ErrNotPermutation (non-square, non-0/1 entries, or
// a row/column without exactly one 1).
// Complexity: O(N²).
func ToTwoLine(m mat.Matrix, inverse bool) (TwoLine, error) {
	if m == nil {
		return TwoLine{}, ErrNilMatrix
	}
	n, c := m.Dims()
	if n != c {
		return TwoLine{}, fmt.Errorf("%dx%d: %w", n, c, ErrNotPermutation)
	}

	rows := make([]int, 0, n)
	cols := make([]int, 0, n)
	rowHits := make([]int, n)
	colHits := make([]int, n)
	for r := 0; r < n; r++ {
		for cc := 0; cc < n; cc++ {
			switch math.Round(m.At(r, cc)) {
			case 0:
			case 1:
				rows = append(rows, r)
				cols = append(cols, cc)
				rowHits[r]++
				colHits[cc]++
			default:
				return TwoLine{}, fmt.Errorf("entry (%d,%d): %w", r, cc, ErrNotPermutation)
			}
		}
	}
	for k := 0; k < n; k++ {
		if rowHits[k] != 1 || colHits[k] != 1 {
			return TwoLine{}, fmt.Errorf("row/col %d: %w", k, ErrNotPermutation)
		}
	}

	top, bottom := cols, rows
	if inverse {
		top, bottom = rows, cols
	}

	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return top[order[a]] < top[order[b]] })

	out := TwoLine{Top: make([]int, n), Bottom: make([]int, n)}
	for k, idx := range order {
		out.Top[k] = top[idx]
		out.Bottom[k] = bottom[idx]
	}

	return out, nil
}

// FromTwoLine reconstructs the permutation matrix a two-line symbol was
// extracted from: entry (Bottom[k], Top[k]) is 1 for every k.
//
// Errors: ErrBadSymbol when the rows differ in length or are not both
// permutations of 0…n-1.
// Complexity: O(N²) (output allocation).
func FromTwoLine(s TwoLine) (*mat.Dense, error) {
	n := len(s.Top)
	if len(s.Bottom) != n {
		return nil, fmt.Errorf("rows of length %d and %d: %w", n, len(s.Bottom), ErrBadSymbol)
	}
	if n == 0 {
		return nil, fmt.Errorf("empty symbol: %w", ErrBadSymbol)
	}
	seenTop := make([]bool, n)
	seenBottom := make([]bool, n)
	for k := 0; k < n; k++ {
		t, b := s.Top[k], s.Bottom[k]
		if t < 0 || t >= n || b < 0 || b >= n || seenTop[t] || seenBottom[b] {
			return nil, fmt.Errorf("column %d = (%d,%d): %w", k, t, b, ErrBadSymbol)
		}
		seenTop[t] = true
		seenBottom[b] = true
	}

	out := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		out.Set(s.Bottom[k], s.Top[k], 1)
	}

	return out, nil
}
