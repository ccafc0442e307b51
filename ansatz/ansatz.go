// Package ansatz: the full isomorphism-search circuit assembler.

package ansatz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quantalab/qisom/circuit"
	"github.com/quantalab/qisom/topology"
)

// Ansatz assembles the variational circuit that searches for an embedding
// of the pattern graph adj2 into the host graph adj1.
//
// Both matrices must be square with power-of-two side length, and adj2
// must not be larger than adj1. Equal shapes select the full-isomorphism
// case; otherwise the subgraph case additionally prepends the inverse of
// the permutation ansatz onto both index registers, undoing the host
// graph's structural bias before the search layer acts.
//
// Assembly order (two copies of the shared permutation ansatz act on the
// symmetric index registers i and j; the diagonal encoders inject graph
// structure as relative phase; the closing Hadamard layer interferes the
// two branches):
//
//	[H layer] [P⁻¹ on j] [P⁻¹ on i]   (subgraph case only, prepended)
//	[QAdj(adj1)] [P on i] [P on j] [QAdj(adj2 padded)] [H layer]
//
// Returns the assembled circuit together with the parameter tensor of the
// shared permutation ansatz; bind it and hand both to an execution
// backend, e.g. circuit.Run with Observable(qc.NumQubits()).
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrNotPowerOfTwo, ErrPatternTooLarge,
// plus topology expansion errors.
func Ansatz(adj1, adj2 mat.Matrix, topo topology.Topology) (*circuit.Circuit, *circuit.Tensor, error) {
	n1, err := validateAdjacency(adj1)
	if err != nil {
		return nil, nil, fmt.Errorf("host graph: %w", err)
	}
	n2, err := validateAdjacency(adj2)
	if err != nil {
		return nil, nil, fmt.Errorf("pattern graph: %w", err)
	}
	if n2 > n1 {
		return nil, nil, fmt.Errorf("pattern %d > host %d: %w", n2, n1, ErrPatternTooLarge)
	}
	gisom := n1 == n2

	qc, err := adjacencyDiagonal(adj1, 0)
	if err != nil {
		return nil, nil, err
	}
	regs := qc.Registers() // i, j, a

	hLayer, err := hadamardLayer(regs, n2)
	if err != nil {
		return nil, nil, err
	}

	perm, params, err := S4(topo, regs[0].Size, nil)
	if err != nil {
		return nil, nil, err
	}

	if !gisom {
		inv := perm.Inverse().ToBlock("PermAnsatzDg")
		if err = qc.Compose(inv, circuit.OnQubits(regs[0].Qubits()...), circuit.Front()); err != nil {
			return nil, nil, err
		}
		if err = qc.Compose(inv, circuit.OnQubits(regs[1].Qubits()...), circuit.Front()); err != nil {
			return nil, nil, err
		}
	}
	if err = qc.Compose(hLayer, circuit.Front()); err != nil {
		return nil, nil, err
	}
	if err = qc.Compose(perm, circuit.OnQubits(regs[0].Qubits()...)); err != nil {
		return nil, nil, err
	}
	if err = qc.Compose(perm, circuit.OnQubits(regs[1].Qubits()...)); err != nil {
		return nil, nil, err
	}

	diag2, err := adjacencyDiagonal(adj2, n1)
	if err != nil {
		return nil, nil, err
	}
	if err = qc.Compose(diag2); err != nil {
		return nil, nil, err
	}
	if err = qc.Compose(hLayer); err != nil {
		return nil, nil, err
	}

	return qc, params, nil
}

// hadamardLayer builds the superposition layer: Hadamards on the first
// log2(patternSize) qubits of each index register and on the full ancilla.
func hadamardLayer(regs []circuit.Register, patternSize int) (*circuit.Circuit, error) {
	h, err := circuit.New(
		circuit.Register{Name: regs[0].Name, Size: regs[0].Size},
		circuit.Register{Name: regs[1].Name, Size: regs[1].Size},
		circuit.Register{Name: regs[2].Name, Size: regs[2].Size},
	)
	if err != nil {
		return nil, err
	}
	hRegs := h.Registers()
	nlog := log2i(patternSize)
	for _, r := range hRegs[:2] {
		for k := 0; k < nlog; k++ {
			if err = h.H(r.Qubit(k)); err != nil {
				return nil, err
			}
		}
	}
	for k := 0; k < hRegs[2].Size; k++ {
		if err = h.H(hRegs[2].Qubit(k)); err != nil {
			return nil, err
		}
	}

	return h, nil
}
