// Package ansatz: the S4 two-qubit block.
//
// The S4 block is the atomic parameterized unitary of the permutation
// ansatz. Its internal structure is fixed; only the five angle values vary.
// At all-zero angles every phase rotation vanishes and the Hadamard pairs
// cancel, so the block reduces to the identity.

package ansatz

import (
	"fmt"

	"github.com/quantalab/qisom/circuit"
)

// BlockParamCount is the number of parameters of one S4 block, and the
// required column count of every permutation-ansatz parameter tensor.
const BlockParamCount = 5

// hcph appends the Hadamard-phase-Hadamard sandwich on target: H, then a
// phase rotation (controlled by ctrl when ctrl ≥ 0, plain otherwise), then
// H again.
func hcph(qc *circuit.Circuit, theta circuit.Angle, ctrl, target int) error {
	if err := qc.H(target); err != nil {
		return err
	}
	if ctrl >= 0 {
		if err := qc.CP(theta, ctrl, target); err != nil {
			return err
		}
	} else {
		if err := qc.P(theta, target); err != nil {
			return err
		}
	}

	return qc.H(target)
}

// s4Block builds the fixed 2-qubit S4 circuit from exactly five angles:
//
//	hcph(θ0) on qubit 0 (uncontrolled);
//	H·P(θ1) on qubit 1 interleaved with CP(θ2) from 0 to 1, closed by H;
//	hcph(θ3) on qubit 0 controlled by 1;
//	hcph(θ4) on qubit 1 controlled by 0.
func s4Block(thetas []circuit.Angle) (*circuit.Circuit, error) {
	if len(thetas) != BlockParamCount {
		return nil, fmt.Errorf("%d angles, want %d: %w", len(thetas), BlockParamCount, ErrParamShape)
	}
	qc, err := circuit.New(circuit.Register{Name: "q", Size: 2})
	if err != nil {
		return nil, err
	}

	if err = hcph(qc, thetas[0], -1, 0); err != nil {
		return nil, err
	}

	if err = qc.H(1); err != nil {
		return nil, err
	}
	if err = qc.P(thetas[1], 1); err != nil {
		return nil, err
	}
	if err = qc.CP(thetas[2], 0, 1); err != nil {
		return nil, err
	}
	if err = qc.H(1); err != nil {
		return nil, err
	}

	if err = hcph(qc, thetas[3], 1, 0); err != nil {
		return nil, err
	}
	if err = hcph(qc, thetas[4], 0, 1); err != nil {
		return nil, err
	}

	return qc, nil
}
