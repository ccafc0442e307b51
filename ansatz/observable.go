// Package ansatz: the measurement observable of the VQE loop.

package ansatz

import (
	"fmt"
	"math/cmplx"
)

// DiagObservable is the diagonal observable −((Z+I)/2)^{⊗n}. Per qubit
// (Z+I)/2 projects onto |0⟩, so the tensor power projects onto the all-zero
// basis state; the sign makes minimizing the expectation value reward
// constructive interference at |0…0⟩. Diagonal entry 0 is −1, all others
// are 0.
type DiagObservable struct {
	n int
}

// Observable prepares the diagonal observable over n qubits for the
// external VQE driver. Returns ErrObservableSize for n < 1.
func Observable(n int) (*DiagObservable, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrObservableSize)
	}

	return &DiagObservable{n: n}, nil
}

// NumQubits returns the number of qubits the observable acts on.
func (o *DiagObservable) NumQubits() int { return o.n }

// Diagonal returns the full 2^n diagonal of the observable.
func (o *DiagObservable) Diagonal() []float64 {
	d := make([]float64, 1<<o.n)
	d[0] = -1

	return d
}

// Expectation computes ⟨ψ|O|ψ⟩ for a state vector of length 2^n. For this
// observable that is −|⟨0…0|ψ⟩|², so the value lies in [−1, 0] for any
// normalized state and reaches −1 exactly at a perfect match.
//
// Errors: ErrStateLength.
func (o *DiagObservable) Expectation(state []complex128) (float64, error) {
	if len(state) != 1<<o.n {
		return 0, fmt.Errorf("state length %d, want %d: %w", len(state), 1<<o.n, ErrStateLength)
	}
	a := cmplx.Abs(state[0])

	return -a * a, nil
}
