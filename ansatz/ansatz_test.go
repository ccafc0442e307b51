package ansatz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quantalab/qisom/ansatz"
	"github.com/quantalab/qisom/topology"
)

// cycle4 is the adjacency matrix of the 4-vertex cycle 0-1-2-3-0.
func cycle4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		0, 1, 0, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
	})
}

// edge2 is the adjacency matrix of the single-edge 2-vertex graph.
func edge2() *mat.Dense {
	return mat.NewDense(2, 2, []float64{0, 1, 1, 0})
}

// TestAnsatz_InputValidation covers the shape and precondition errors.
func TestAnsatz_InputValidation(t *testing.T) {
	topo := topology.Circular()

	_, _, err := ansatz.Ansatz(nil, edge2(), topo)
	assert.ErrorIs(t, err, ansatz.ErrNilMatrix)

	_, _, err = ansatz.Ansatz(mat.NewDense(4, 3, nil), edge2(), topo)
	assert.ErrorIs(t, err, ansatz.ErrNotSquare)

	_, _, err = ansatz.Ansatz(mat.NewDense(3, 3, nil), edge2(), topo)
	assert.ErrorIs(t, err, ansatz.ErrNotPowerOfTwo)

	_, _, err = ansatz.Ansatz(cycle4(), mat.NewDense(3, 3, nil), topo)
	assert.ErrorIs(t, err, ansatz.ErrNotPowerOfTwo)

	_, _, err = ansatz.Ansatz(edge2(), cycle4(), topo)
	assert.ErrorIs(t, err, ansatz.ErrPatternTooLarge)
}

// TestAnsatz_SubgraphCase verifies the 4-vertex host / 2-vertex pattern
// assembly: 5 qubits total, the circular N=2 single-edge parameter tensor,
// and the extra inverse-ansatz layer of the subgraph branch.
func TestAnsatz_SubgraphCase(t *testing.T) {
	qc, params, err := ansatz.Ansatz(cycle4(), edge2(), topology.Circular())
	require.NoError(t, err)

	assert.Equal(t, 5, qc.NumQubits(), "2·log2(4)+1 qubits")
	rows, cols := params.Shape()
	assert.Equal(t, 1, rows, "circular over the 2-qubit index register has a single edge")
	assert.Equal(t, ansatz.BlockParamCount, cols)

	// Top-level operations: 2 inverse blocks, the Hadamard layer (3 gates:
	// first pattern qubit of i and of j, plus the ancilla), host diagonal,
	// 2 ansatz blocks, padded pattern diagonal, closing Hadamard layer.
	assert.Equal(t, 2+3+1+2+1+3, qc.NumGates())
}

// TestAnsatz_FullIsomorphismCase verifies that equal shapes skip the
// inverse-ansatz prepend entirely.
func TestAnsatz_FullIsomorphismCase(t *testing.T) {
	qc, params, err := ansatz.Ansatz(cycle4(), cycle4(), topology.Circular())
	require.NoError(t, err)

	assert.Equal(t, 5, qc.NumQubits())
	rows, _ := params.Shape()
	assert.Equal(t, 1, rows)

	// Hadamard layer now covers both index qubits of i and j plus the
	// ancilla (5 gates) and no inverse blocks are present.
	assert.Equal(t, 5+1+2+1+5, qc.NumGates())

	sub, _, err := ansatz.Ansatz(cycle4(), edge2(), topology.Circular())
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumGates()-(qc.NumGates()-4),
		"the subgraph branch differs by exactly the two inverse blocks "+
			"(the smaller pattern also shrinks each Hadamard layer by two gates)")
}

// TestAnsatz_PerfectMatchExpectation runs the assembled circuit end to
// end: for identical graphs with all angles at zero the two diagonal
// encoders cancel and the interference is fully constructive, so the
// observable reaches its minimum of -1.
func TestAnsatz_PerfectMatchExpectation(t *testing.T) {
	qc, params, err := ansatz.Ansatz(cycle4(), cycle4(), topology.Circular())
	require.NoError(t, err)

	state, err := qc.Run(params.Zeros())
	require.NoError(t, err)

	obs, err := ansatz.Observable(qc.NumQubits())
	require.NoError(t, err)
	e, err := obs.Expectation(state)
	require.NoError(t, err)
	assert.InDelta(t, -1, e, 1e-12)
}

// TestAnsatz_SubgraphMatchExpectation verifies that the identity
// permutation embedding of the single edge into the cycle's vertices 0-1
// is already a perfect match at the all-zero parameter point.
func TestAnsatz_SubgraphMatchExpectation(t *testing.T) {
	qc, params, err := ansatz.Ansatz(cycle4(), edge2(), topology.Circular())
	require.NoError(t, err)

	state, err := qc.Run(params.Zeros())
	require.NoError(t, err)

	obs, err := ansatz.Observable(qc.NumQubits())
	require.NoError(t, err)
	e, err := obs.Expectation(state)
	require.NoError(t, err)
	assert.InDelta(t, -1, e, 1e-12)
}

// TestAnsatz_MismatchExpectation embeds the single-edge pattern into an
// edgeless host: no permutation can match, and at the all-zero parameter
// point the interference only reaches -0.25.
func TestAnsatz_MismatchExpectation(t *testing.T) {
	empty4 := mat.NewDense(4, 4, nil)
	qc, params, err := ansatz.Ansatz(empty4, edge2(), topology.Circular())
	require.NoError(t, err)

	state, err := qc.Run(params.Zeros())
	require.NoError(t, err)

	obs, err := ansatz.Observable(qc.NumQubits())
	require.NoError(t, err)
	e, err := obs.Expectation(state)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, e, 1e-12)
	assert.Greater(t, e, -1.0, "a structural mismatch stays above the perfect-match minimum")
}

// TestAnsatz_TopologyPropagation verifies that topology errors surface
// through the assembler.
func TestAnsatz_TopologyPropagation(t *testing.T) {
	_, _, err := ansatz.Ansatz(cycle4(), edge2(), topology.Pairs([][2]int{{0, 9}}))
	assert.ErrorIs(t, err, topology.ErrPairOutOfRange)
}
