// Package circuit: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests and callers match them via errors.Is.
// Panics are reserved for programmer errors in private helpers.

package circuit

import "errors"

var (
	// ErrRegisterSize is returned when a register is declared with a
	// negative size.
	ErrRegisterSize = errors.New("circuit: register size must be non-negative")

	// ErrQubitOutOfRange indicates that a gate references a qubit index
	// outside the circuit's qubit range.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrSelfControl indicates a controlled gate whose control and target
	// are the same qubit.
	ErrSelfControl = errors.New("circuit: control and target must differ")

	// ErrDiagonalLength indicates a diagonal whose length is not 2^k for
	// the k qubits it is applied to.
	ErrDiagonalLength = errors.New("circuit: diagonal length must be 2^(qubit count)")

	// ErrQubitCountMismatch indicates that a qubit mapping supplied to
	// Compose does not cover the child circuit's qubits exactly once.
	ErrQubitCountMismatch = errors.New("circuit: qubit mapping does not match child circuit")

	// ErrNilCircuit indicates that a nil *Circuit was passed where a
	// circuit was required.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrUnboundParameter is returned by Run/Unitary when a symbolic
	// parameter has no value in the supplied Binding.
	ErrUnboundParameter = errors.New("circuit: unbound parameter")

	// ErrBindLength indicates that Tensor.Bind received a value slice whose
	// length differs from the tensor's element count.
	ErrBindLength = errors.New("circuit: binding length mismatch")
)
