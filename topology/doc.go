// Package topology describes which qubit pairs the entangling blocks of an
// ansatz act on, and expands symbolic topologies into concrete pair lists.
//
// 🚀 What is a topology?
//
//	A topology is either a named pattern or an explicit list of qubit-index
//	pairs:
//	  • Linear()    — (0,1), (1,2), …, (N-2,N-1)
//	  • Circular()  — Linear plus the wrap-around pair (N-1,0) when N > 2
//	  • Pairs(...)  — any explicit (E,2) pair list
//
// The N=2 special case of Circular matters: with two qubits the wrap-around
// pair would duplicate the only existing edge, so Circular(2 qubits) and
// Linear(2 qubits) both expand to the single pair (0,1). Downstream
// parameter-tensor shapes depend on this edge count, so the case is pinned
// by tests and must not change.
//
// ⚙️ Usage:
//
//	pairs, err := topology.Circular().Expand(4)
//	// pairs = [[0 1] [1 2] [2 3] [3 0]]
//
//	t, err := topology.Parse("linear") // keyword boundary for user input
//
// Expansion is resolved once at the boundary; everything after Expand works
// on a plain [][2]int.
package topology
