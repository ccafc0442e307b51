// Package circuit provides the minimal quantum-circuit representation used
// by the qisom ansatz builders: named qubit registers, a parameterized gate
// list, circuit composition and inversion, and a state-vector evaluator.
//
// 🚀 What lives here?
//
//	A circuit is an ordered sequence of gate operations over one or more
//	registers. The gate set is intentionally small — exactly what the
//	permutation ansatz and the diagonal graph encoders need:
//	  • H          — Hadamard
//	  • P(θ)       — single-qubit phase rotation
//	  • CP(θ)      — controlled phase rotation
//	  • Diagonal   — an arbitrary diagonal unitary given by its phases
//	  • Block      — a labeled sub-circuit reused as a single operator
//
// ✨ Key features:
//   - Symbolic parameters: gates may carry unresolved Parameter handles,
//     bound to concrete angles later via a Binding.
//   - Composition: inline a child circuit into a parent, optionally at the
//     front, optionally restricted to a sub-set of qubits (OnQubits).
//   - Inversion: reversed gate order with adjoint angles and phases.
//   - Evaluation: Run produces the state vector from |0…0⟩; Unitary builds
//     the dense operator matrix (gonum mat.CDense) column by column.
//
// ⚙️ Usage:
//
//	q := circuit.Register{Name: "q", Size: 2}
//	qc, _ := circuit.New(q)
//	_ = qc.H(0)
//	_ = qc.CP(circuit.Const(math.Pi/2), 0, 1)
//	state, _ := qc.Run(nil)
//
// Qubit 0 is the least significant bit of a basis-state index.
//
// All user-triggered failures are returned as sentinel errors (errors.go);
// the package never panics on bad input.
package circuit
