// Package topology: the Topology variant type and its expansion.
package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTopology indicates an unrecognized topology keyword.
	ErrUnknownTopology = errors.New("topology: unrecognized topology")

	// ErrRegisterTooSmall indicates that a named topology was expanded over
	// fewer than two qubits, where no entangling pair exists.
	ErrRegisterTooSmall = errors.New("topology: register needs at least 2 qubits")

	// ErrPairOutOfRange indicates an explicit pair referencing a qubit index
	// outside [0, N).
	ErrPairOutOfRange = errors.New("topology: pair index out of register range")
)

// kind discriminates the named topology patterns.
type kind uint8

const (
	kindLinear kind = iota
	kindCircular
	kindExplicit
)

// Topology is a tagged variant: a named pattern (linear, circular) or an
// explicit pair list. The zero value is the linear topology. Construct via
// Linear, Circular, Pairs or Parse; resolve via Expand.
type Topology struct {
	kind  kind
	pairs [][2]int
}

// Linear returns the nearest-neighbour chain topology.
func Linear() Topology { return Topology{kind: kindLinear} }

// Circular returns the chain topology closed into a ring. Over exactly two
// qubits the wrap-around pair is omitted (it would duplicate the single
// edge), so Circular and Linear coincide there.
func Circular() Topology { return Topology{kind: kindCircular} }

// Pairs returns an explicit topology over the given entangling pairs. The
// slice is copied. Pair indices are validated at Expand time, when the
// register size is known.
func Pairs(pairs [][2]int) Topology {
	cp := make([][2]int, len(pairs))
	copy(cp, pairs)

	return Topology{kind: kindExplicit, pairs: cp}
}

// Parse resolves a topology keyword ("linear" or "circular"). Any other
// string yields ErrUnknownTopology.
func Parse(s string) (Topology, error) {
	switch s {
	case "linear":
		return Linear(), nil
	case "circular":
		return Circular(), nil
	default:
		return Topology{}, fmt.Errorf("%q: %w", s, ErrUnknownTopology)
	}
}

// String returns the keyword form of a named topology, or "explicit" for a
// pair-list topology.
func (t Topology) String() string {
	switch t.kind {
	case kindLinear:
		return "linear"
	case kindCircular:
		return "circular"
	default:
		return "explicit"
	}
}

// Expand resolves the topology over an n-qubit register into a concrete
// (E,2) pair list of register-relative qubit indices.
//
// Errors:
//   - ErrRegisterTooSmall — named topology with n < 2.
//   - ErrPairOutOfRange   — explicit pair outside [0, n).
//
// Complexity: O(E).
func (t Topology) Expand(n int) ([][2]int, error) {
	switch t.kind {
	case kindLinear, kindCircular:
		if n < 2 {
			return nil, fmt.Errorf("%s over %d qubits: %w", t, n, ErrRegisterTooSmall)
		}
		pairs := make([][2]int, 0, n)
		for k := 0; k < n-1; k++ {
			pairs = append(pairs, [2]int{k, k + 1})
		}
		if t.kind == kindCircular && n > 2 {
			pairs = append(pairs, [2]int{n - 1, 0})
		}

		return pairs, nil
	default:
		pairs := make([][2]int, len(t.pairs))
		for i, p := range t.pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
				return nil, fmt.Errorf("pair %d = (%d,%d) over %d qubits: %w", i, p[0], p[1], n, ErrPairOutOfRange)
			}
			pairs[i] = p
		}

		return pairs, nil
	}
}
