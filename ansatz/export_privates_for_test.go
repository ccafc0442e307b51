package ansatz

// Test-bridge exposing private builders to the external ansatz_test
// package. Thin pass-through aliases only; no behavior lives here.

var (
	// ExportedS4Block exposes s4Block for white-box block tests.
	ExportedS4Block = s4Block
	// ExportedAdjacencyDiagonal exposes adjacencyDiagonal for encoder tests.
	ExportedAdjacencyDiagonal = adjacencyDiagonal
	// ExportedIndexRegisters exposes indexRegisters for partition tests.
	ExportedIndexRegisters = indexRegisters
)
