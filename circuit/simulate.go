// Package circuit: state-vector evaluation.
//
// Gates are applied to a dense amplitude vector by bit-mask iteration:
// for an n-qubit circuit the state has 2^n complex amplitudes and qubit q
// corresponds to bit 1<<q of the basis-state index. Phase-type gates only
// scale amplitudes in place; Hadamard mixes amplitude pairs.
package circuit

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Run evaluates the circuit on the all-zeros input state |0…0⟩ and returns
// the resulting state vector of length 2^NumQubits. Every symbolic angle
// must be resolvable through b, otherwise ErrUnboundParameter is returned.
func (c *Circuit) Run(b Binding) ([]complex128, error) {
	state := make([]complex128, 1<<c.n)
	state[0] = 1
	if err := c.apply(state, b); err != nil {
		return nil, err
	}

	return state, nil
}

// Unitary builds the circuit's dense operator matrix by evaluating the
// circuit on every computational basis state: column k of the result is
// the image of |k⟩. Intended for small circuits (tests, verification);
// cost is O(4^n) memory.
func (c *Circuit) Unitary(b Binding) (*mat.CDense, error) {
	dim := 1 << c.n
	u := mat.NewCDense(dim, dim, nil)
	for col := 0; col < dim; col++ {
		state := make([]complex128, dim)
		state[col] = 1
		if err := c.apply(state, b); err != nil {
			return nil, err
		}
		for row := 0; row < dim; row++ {
			u.Set(row, col, state[row])
		}
	}

	return u, nil
}

// apply runs the gate list over state in place.
func (c *Circuit) apply(state []complex128, b Binding) error {
	for _, g := range c.gates {
		if err := applyGate(state, g, b); err != nil {
			return err
		}
	}

	return nil
}

// applyGate dispatches one gate onto the state vector. Block gates recurse
// into their sub-circuit with the block's qubit mapping applied.
func applyGate(state []complex128, g gate, b Binding) error {
	switch g.kind {
	case kindH:
		applyH(state, g.target)
	case kindP:
		phi, err := g.theta.Eval(b)
		if err != nil {
			return err
		}
		applyPhase(state, g.target, phi)
	case kindCP:
		phi, err := g.theta.Eval(b)
		if err != nil {
			return err
		}
		applyCPhase(state, g.ctrl, g.target, phi)
	case kindDiag:
		applyDiagonal(state, g.qubits, g.phases)
	case kindBlock:
		for _, sg := range g.sub.gates {
			if err := applyGate(state, sg.remap(g.qubits), b); err != nil {
				return err
			}
		}
	}

	return nil
}

// applyH mixes amplitude pairs (i, i|bit) with the Hadamard coefficients.
func applyH(state []complex128, q int) {
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range state {
		if i&bit == 0 {
			j := i | bit
			a, c := state[i], state[j]
			state[i] = h * (a + c)
			state[j] = h * (a - c)
		}
	}
}

// applyPhase multiplies every |1⟩ amplitude of qubit q by e^{iφ}.
func applyPhase(state []complex128, q int, phi float64) {
	ph := cmplx.Exp(complex(0, phi))
	bit := 1 << q
	for i := range state {
		if i&bit != 0 {
			state[i] *= ph
		}
	}
}

// applyCPhase multiplies amplitudes with both control and target set by
// e^{iφ}.
func applyCPhase(state []complex128, ctrl, tgt int, phi float64) {
	ph := cmplx.Exp(complex(0, phi))
	cBit, tBit := 1<<ctrl, 1<<tgt
	for i := range state {
		if i&cBit != 0 && i&tBit != 0 {
			state[i] *= ph
		}
	}
}

// applyDiagonal scales each amplitude by the diagonal entry addressed by
// the bits of the basis index read through the qubit list (qubits[0] is
// the least significant bit of the diagonal index).
func applyDiagonal(state []complex128, qubits []int, phases []complex128) {
	for i := range state {
		idx := 0
		for k, q := range qubits {
			if i&(1<<q) != 0 {
				idx |= 1 << k
			}
		}
		state[i] *= phases[idx]
	}
}
