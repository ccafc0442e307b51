// Package ansatz assembles the variational quantum circuit that searches
// for graph and subgraph isomorphisms between two adjacency matrices.
//
// 🚀 How the circuit is built
//
//	The pipeline is strictly linear and purely functional:
//	  1. Each adjacency matrix is flattened row-major, zero-padded, and
//	     encoded as a diagonal phase operator (entries ±1) over two equal
//	     "vertex index" registers i and j plus one ancilla qubit a.
//	  2. A permutation ansatz is composed from 5-parameter two-qubit S4
//	     blocks, one per entangling pair of the chosen topology.
//	  3. Hadamard layers, two copies of the permutation ansatz (on i and
//	     on j), and the two diagonal encoders are wired into one circuit:
//	     interference under the closing Hadamard layer reveals isomorphism
//	     through the expectation value of Observable.
//
// ✨ Entry points:
//   - Ansatz(adj1, adj2, topo)  — the full assembled circuit + parameters
//   - S4(topo, n, params)       — the permutation ansatz alone
//   - Observable(n)             — the diagonal observable −((Z+I)/2)^{⊗n}
//   - ZeroExtend(adj, n)        — zero-padding helper for adjacency input
//
// ⚙️ Usage:
//
//	adj1 := mat.NewDense(4, 4, ...) // host graph (cycle, say)
//	adj2 := mat.NewDense(2, 2, ...) // pattern graph
//	qc, params, err := ansatz.Ansatz(adj1, adj2, topology.Circular())
//	// hand qc + params to an optimizer; bind angles via params.Bind(...)
//
// Both matrices must be square with power-of-two side length, and the
// pattern graph must not be larger than the host graph. When the two sizes
// are equal the circuit searches for a full isomorphism; otherwise an
// inverse permutation layer is prepended to undo the host graph's bias
// before the subgraph search.
//
// The package builds circuits and observables only; executing them and
// driving the parameter optimization belong to external collaborators.
package ansatz
