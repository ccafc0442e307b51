// Package ansatz: the S4 permutation ansatz.

package ansatz

import (
	"fmt"

	"github.com/quantalab/qisom/circuit"
	"github.com/quantalab/qisom/topology"
)

// S4 constructs the permutation ansatz over an n-qubit register from one
// S4 block per entangling pair of topo.
//
// Blocks are composed in topology order: later edges act after earlier
// ones. The composition is non-commutative, so this order fixes the
// semantics of the constructed permutation; it is part of the contract,
// not an implementation detail.
//
// params supplies the block angles as an (E × BlockParamCount) tensor,
// where E is the edge count topo expands to over n qubits. Pass nil to
// allocate a fresh symbolic tensor named "t"; the tensor actually used is
// returned either way, and its first dimension always equals E.
//
// The result is wrapped as a single block labeled "PermAnsatz" so it can
// be reused (and inverted) as one operator.
//
// Errors: topology expansion errors, ErrParamShape on a caller-supplied
// tensor of the wrong shape.
func S4(topo topology.Topology, n int, params *circuit.Tensor) (*circuit.Circuit, *circuit.Tensor, error) {
	pairs, err := topo.Expand(n)
	if err != nil {
		return nil, nil, err
	}
	if params == nil {
		params = circuit.NewTensor("t", len(pairs), BlockParamCount)
	}
	rows, cols := params.Shape()
	if rows != len(pairs) || cols != BlockParamCount {
		return nil, nil, fmt.Errorf("tensor (%d,%d) for %d edges: %w", rows, cols, len(pairs), ErrParamShape)
	}

	qc, err := circuit.New(circuit.Register{Name: "q", Size: n})
	if err != nil {
		return nil, nil, err
	}
	qreg := qc.Registers()[0]
	for e, pair := range pairs {
		angles := make([]circuit.Angle, BlockParamCount)
		for k := range angles {
			angles[k] = circuit.Symbolic(params.At(e, k))
		}
		blk, berr := s4Block(angles)
		if berr != nil {
			return nil, nil, berr
		}
		if err = qc.Compose(blk, circuit.OnQubits(qreg.Qubit(pair[0]), qreg.Qubit(pair[1]))); err != nil {
			return nil, nil, err
		}
	}

	return qc.ToBlock("PermAnsatz"), params, nil
}
