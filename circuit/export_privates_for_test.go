package circuit

// Test-bridge exposing internals to the external circuit_test package.
// Thin pass-through accessors only; no behavior lives here.

// ExportedBlockSub returns the sub-circuit of the i-th gate when that gate
// is a block, or nil otherwise.
func ExportedBlockSub(c *Circuit, i int) *Circuit {
	if i < 0 || i >= len(c.gates) || c.gates[i].kind != kindBlock {
		return nil
	}

	return c.gates[i].sub
}
