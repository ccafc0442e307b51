// Package circuit: core value types (Register, Angle, gate).
package circuit

import (
	"fmt"
	"math/cmplx"
)

// Register describes a named, ordered group of qubit slots. A register is
// placed into a circuit by New, which assigns the register's offset within
// the circuit's global qubit index space. Use the copies returned by
// Circuit.Registers (not the literal passed to New) when resolving qubit
// handles: only those carry the assigned offset.
type Register struct {
	// Name identifies the register ("i", "j", "a", ...).
	Name string
	// Size is the number of qubits in the register. Must be non-negative.
	Size int

	offset int
}

// Qubit returns the circuit-global index of the i-th qubit of the register.
// Precondition: 0 ≤ i < Size and the register was obtained from
// Circuit.Registers (so its offset is set).
func (r Register) Qubit(i int) int { return r.offset + i }

// Qubits returns the circuit-global indices of all qubits in the register,
// in order.
func (r Register) Qubits() []int {
	qs := make([]int, r.Size)
	for i := range qs {
		qs[i] = r.offset + i
	}

	return qs
}

// Angle is a rotation angle operand: either a concrete value or a symbolic
// parameter scaled by a coefficient. Inverting a circuit negates the
// coefficient (or the constant), which realizes the adjoint of every phase
// rotation without touching the parameter itself.
type Angle struct {
	param *Parameter
	coeff float64
	value float64
}

// Const returns a concrete (non-symbolic) angle.
func Const(v float64) Angle { return Angle{value: v} }

// Symbolic returns an angle referencing p with coefficient +1.
func Symbolic(p *Parameter) Angle { return Angle{param: p, coeff: 1} }

// IsSymbolic reports whether the angle references an unresolved parameter.
func (a Angle) IsSymbolic() bool { return a.param != nil }

// Neg returns the adjoint angle (-θ).
func (a Angle) Neg() Angle {
	return Angle{param: a.param, coeff: -a.coeff, value: -a.value}
}

// Eval resolves the angle against b. Symbolic angles with no entry in b
// yield ErrUnboundParameter (wrapped with the parameter name).
func (a Angle) Eval(b Binding) (float64, error) {
	if a.param == nil {
		return a.value, nil
	}
	v, ok := b[a.param.name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", a.param.name, ErrUnboundParameter)
	}

	return a.coeff * v, nil
}

// gateKind discriminates the gate variants of the internal gate list.
type gateKind uint8

const (
	kindH gateKind = iota
	kindP
	kindCP
	kindDiag
	kindBlock
)

// gate is one entry of a circuit's operation list. Depending on kind only a
// subset of the fields is meaningful:
//
//	kindH     — target
//	kindP     — target, theta
//	kindCP    — ctrl, target, theta
//	kindDiag  — qubits, phases (len(phases) == 2^len(qubits))
//	kindBlock — qubits (parent positions of the sub-circuit's qubits),
//	            sub, label
type gate struct {
	kind   gateKind
	target int
	ctrl   int
	theta  Angle
	qubits []int
	phases []complex128
	sub    *Circuit
	label  string
}

// remap returns a copy of g with every qubit reference translated through
// m (child index → parent index). Block sub-circuits keep their internal
// indexing; only the block's qubit list is translated. The sub-circuit is
// cloned so the copy is independent of the original gate.
func (g gate) remap(m []int) gate {
	out := g
	switch g.kind {
	case kindH, kindP:
		out.target = m[g.target]
	case kindCP:
		out.ctrl = m[g.ctrl]
		out.target = m[g.target]
	case kindDiag, kindBlock:
		qs := make([]int, len(g.qubits))
		for i, q := range g.qubits {
			qs[i] = m[q]
		}
		out.qubits = qs
		if g.kind == kindBlock {
			out.sub = g.sub.clone()
		}
	}

	return out
}

// inverse returns the adjoint of g.
func (g gate) inverse() gate {
	out := g
	switch g.kind {
	case kindP, kindCP:
		out.theta = g.theta.Neg()
	case kindDiag:
		ph := make([]complex128, len(g.phases))
		for i, p := range g.phases {
			ph[i] = cmplx.Conj(p)
		}
		out.phases = ph
	case kindBlock:
		out.sub = g.sub.Inverse()
		out.label = g.label + "†"
	case kindH:
		// self-adjoint
	}

	return out
}
