// Package qisom builds parameterized quantum circuits that search for
// graph and subgraph isomorphisms variationally — from the atomic S4
// entangling block up to the fully assembled interference circuit.
//
// 🚀 What is qisom?
//
//	A pure-Go library that turns two adjacency matrices into an ansatz
//	circuit whose expectation value, minimized by an external optimizer,
//	reveals a vertex permutation matching the two graphs:
//		• circuit/   — registers, parameterized gates, composition,
//		  inversion, state-vector evaluation
//		• topology/  — linear/circular/explicit entangling-pair layouts
//		• ansatz/    — S4 blocks, permutation ansatz, diagonal graph
//		  encoders, the full assembler and the VQE observable
//		• perm/      — angle discretization and two-line permutation
//		  symbols for reading the result back out
//
// ✨ Why choose qisom?
//
//   - Pure functions – build sub-circuit, compose into parent, return
//     circuit plus parameter handles; no hidden state anywhere
//   - Explicit randomness – every stochastic step takes an injected source
//   - Fatal-fast validation – shape errors surface as sentinel errors at
//     the point of detection, never later inside the circuit
//
// Quick ASCII sketch of the assembled circuit (subgraph case):
//
//	i: ─H─[P⁻¹]─┤QAdj(G₁)├─[P]─┤QAdj(G₂)├─H─
//	j: ─H─[P⁻¹]─┤        ├─[P]─┤        ├─H─
//	a: ─H───────┤        ├─────┤        ├─H─
//
// Execution backends and classical optimizers are external collaborators:
// qisom only constructs circuits, parameters and observables.
//
//	go get github.com/quantalab/qisom
package qisom
