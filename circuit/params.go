// Package circuit: symbolic parameters and parameter tensors.
//
// A Parameter is a named placeholder for an angle that is chosen later by
// an external optimizer. Parameters are grouped into vectors and 2-D
// tensors; a Binding assigns concrete values by parameter name.
package circuit

import "fmt"

// Parameter is a named symbolic scalar. Two parameters are interchangeable
// exactly when their names are equal; NewParameterVector guarantees unique
// names within a vector.
type Parameter struct {
	name string
}

// Name returns the parameter's unique name, e.g. "t[3]".
func (p *Parameter) Name() string { return p.name }

// ParameterVector is an ordered sequence of symbolic parameters.
type ParameterVector []*Parameter

// NewParameterVector creates n parameters named name[0] … name[n-1].
func NewParameterVector(name string, n int) ParameterVector {
	v := make(ParameterVector, n)
	for i := range v {
		v[i] = &Parameter{name: fmt.Sprintf("%s[%d]", name, i)}
	}

	return v
}

// Names returns the parameter names in vector order.
func (v ParameterVector) Names() []string {
	out := make([]string, len(v))
	for i, p := range v {
		out[i] = p.name
	}

	return out
}

// Binding maps parameter names to concrete angle values.
type Binding map[string]float64

// Tensor is a (rows × cols) grid of symbolic parameters backed by a single
// row-major ParameterVector. The permutation ansatz allocates one row of
// BlockParamCount parameters per topology edge.
type Tensor struct {
	name string
	rows int
	cols int
	vec  ParameterVector
}

// NewTensor allocates a fresh (rows × cols) parameter tensor whose flat
// elements are named name[0] … name[rows*cols-1]. rows and cols must be
// non-negative; a zero dimension yields an empty tensor.
func NewTensor(name string, rows, cols int) *Tensor {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Tensor{name: name, rows: rows, cols: cols, vec: NewParameterVector(name, rows*cols)}
}

// Shape returns the tensor's dimensions.
func (t *Tensor) Shape() (rows, cols int) { return t.rows, t.cols }

// At returns the parameter at row r, column c.
// Precondition: 0 ≤ r < rows, 0 ≤ c < cols.
func (t *Tensor) At(r, c int) *Parameter { return t.vec[r*t.cols+c] }

// Row returns the parameters of row r in column order.
func (t *Tensor) Row(r int) []*Parameter {
	out := make([]*Parameter, t.cols)
	copy(out, t.vec[r*t.cols:(r+1)*t.cols])

	return out
}

// Names returns all parameter names in row-major order.
func (t *Tensor) Names() []string { return t.vec.Names() }

// Bind pairs the tensor's parameters with values, row-major. Returns
// ErrBindLength when len(values) differs from rows*cols.
func (t *Tensor) Bind(values []float64) (Binding, error) {
	if len(values) != len(t.vec) {
		return nil, fmt.Errorf("%d values for %d parameters: %w", len(values), len(t.vec), ErrBindLength)
	}
	b := make(Binding, len(values))
	for i, p := range t.vec {
		b[p.name] = values[i]
	}

	return b, nil
}

// Zeros returns a binding assigning 0 to every parameter of the tensor.
// With all angles at zero the S4 blocks collapse to the identity, which
// makes this the natural starting point for optimization.
func (t *Tensor) Zeros() Binding {
	b := make(Binding, len(t.vec))
	for _, p := range t.vec {
		b[p.name] = 0
	}

	return b
}
