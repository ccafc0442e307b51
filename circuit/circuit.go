// Package circuit: circuit construction, composition and inversion.
package circuit

import "fmt"

// Circuit is an ordered sequence of gate operations over a fixed set of
// registers. Circuits are built bottom-up: gates are appended one by one,
// or whole child circuits are inlined via Compose. A circuit is never
// mutated by the operations it was composed into; composing copies.
type Circuit struct {
	regs  []Register
	n     int
	gates []gate
}

// New creates an empty circuit over the given registers, laid out in
// declaration order: the first register occupies qubits [0, r0.Size), the
// second [r0.Size, r0.Size+r1.Size), and so on.
//
// Returns ErrRegisterSize if any register has a negative size.
func New(regs ...Register) (*Circuit, error) {
	c := &Circuit{regs: make([]Register, len(regs))}
	for i, r := range regs {
		if r.Size < 0 {
			return nil, fmt.Errorf("register %q: %w", r.Name, ErrRegisterSize)
		}
		r.offset = c.n
		c.regs[i] = r
		c.n += r.Size
	}

	return c, nil
}

// NumQubits returns the total number of qubits across all registers.
func (c *Circuit) NumQubits() int { return c.n }

// NumGates returns the number of top-level operations in the circuit.
// A composed block counts as a single operation.
func (c *Circuit) NumGates() int { return len(c.gates) }

// Registers returns a copy of the circuit's registers with their offsets
// assigned, in declaration order.
func (c *Circuit) Registers() []Register {
	out := make([]Register, len(c.regs))
	copy(out, c.regs)

	return out
}

// Register looks a register up by name.
func (c *Circuit) Register(name string) (Register, bool) {
	for _, r := range c.regs {
		if r.Name == name {
			return r, true
		}
	}

	return Register{}, false
}

// checkQubit validates a circuit-global qubit index.
func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.n {
		return fmt.Errorf("qubit %d of %d: %w", q, c.n, ErrQubitOutOfRange)
	}

	return nil
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, gate{kind: kindH, target: q})

	return nil
}

// P appends a phase rotation P(θ) on qubit q.
func (c *Circuit) P(theta Angle, q int) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, gate{kind: kindP, target: q, theta: theta})

	return nil
}

// CP appends a controlled phase rotation CP(θ) with control ctrl and
// target tgt. Returns ErrSelfControl when ctrl == tgt.
func (c *Circuit) CP(theta Angle, ctrl, tgt int) error {
	if err := c.checkQubit(ctrl); err != nil {
		return err
	}
	if err := c.checkQubit(tgt); err != nil {
		return err
	}
	if ctrl == tgt {
		return ErrSelfControl
	}
	c.gates = append(c.gates, gate{kind: kindCP, ctrl: ctrl, target: tgt, theta: theta})

	return nil
}

// Diagonal appends a diagonal unitary over the given qubits. phases holds
// the full diagonal; entry k applies to the basis state whose bits, read
// through the qubit list (qubits[0] = least significant), equal k.
// len(phases) must be exactly 2^len(qubits).
func (c *Circuit) Diagonal(phases []complex128, qubits ...int) error {
	for _, q := range qubits {
		if err := c.checkQubit(q); err != nil {
			return err
		}
	}
	if len(phases) != 1<<len(qubits) {
		return fmt.Errorf("%d phases for %d qubits: %w", len(phases), len(qubits), ErrDiagonalLength)
	}
	ph := make([]complex128, len(phases))
	copy(ph, phases)
	qs := make([]int, len(qubits))
	copy(qs, qubits)
	c.gates = append(c.gates, gate{kind: kindDiag, qubits: qs, phases: ph})

	return nil
}

// composeCfg collects Compose options.
type composeCfg struct {
	qubits []int
	front  bool
}

// ComposeOption configures Circuit.Compose.
type ComposeOption func(*composeCfg)

// OnQubits maps the child circuit's qubit k onto the parent qubit qs[k].
// len(qs) must equal the child's qubit count and every entry must be a
// distinct, valid parent qubit.
func OnQubits(qs ...int) ComposeOption {
	return func(cfg *composeCfg) { cfg.qubits = qs }
}

// Front prepends the child's gates before the parent's existing gates
// instead of appending them.
func Front() ComposeOption {
	return func(cfg *composeCfg) { cfg.front = true }
}

// Compose inlines child into the receiver. By default the child's qubit k
// maps onto parent qubit k (the child must not be wider than the parent);
// OnQubits overrides the mapping. The child is copied — later changes to
// it do not affect the receiver.
func (c *Circuit) Compose(child *Circuit, opts ...ComposeOption) error {
	if child == nil {
		return ErrNilCircuit
	}
	var cfg composeCfg
	for _, o := range opts {
		o(&cfg)
	}

	mapping := cfg.qubits
	if mapping == nil {
		if child.n > c.n {
			return fmt.Errorf("child has %d qubits, parent %d: %w", child.n, c.n, ErrQubitCountMismatch)
		}
		mapping = make([]int, child.n)
		for i := range mapping {
			mapping[i] = i
		}
	}
	if len(mapping) != child.n {
		return fmt.Errorf("mapping covers %d of %d child qubits: %w", len(mapping), child.n, ErrQubitCountMismatch)
	}
	seen := make(map[int]struct{}, len(mapping))
	for _, q := range mapping {
		if err := c.checkQubit(q); err != nil {
			return err
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("duplicate parent qubit %d: %w", q, ErrQubitCountMismatch)
		}
		seen[q] = struct{}{}
	}

	mapped := make([]gate, len(child.gates))
	for i, g := range child.gates {
		mapped[i] = g.remap(mapping)
	}
	if cfg.front {
		c.gates = append(mapped, c.gates...)
	} else {
		c.gates = append(c.gates, mapped...)
	}

	return nil
}

// clone returns a deep copy of the circuit: the gate list is duplicated
// and block sub-circuits are cloned recursively.
func (c *Circuit) clone() *Circuit {
	out := &Circuit{regs: c.Registers(), n: c.n, gates: make([]gate, len(c.gates))}
	for i, g := range c.gates {
		if g.kind == kindBlock {
			g.sub = g.sub.clone()
		}
		out.gates[i] = g
	}

	return out
}

// Inverse returns the adjoint circuit: gates in reverse order, each
// replaced by its own adjoint (negated angles, conjugated diagonals,
// recursively inverted blocks). The receiver is left untouched.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{regs: c.Registers(), n: c.n, gates: make([]gate, len(c.gates))}
	for i, g := range c.gates {
		inv.gates[len(c.gates)-1-i] = g.inverse()
	}

	return inv
}

// ToBlock wraps the circuit's whole gate list as a single labeled operator
// over the same registers, so it can be reused (and displayed) as one unit.
func (c *Circuit) ToBlock(label string) *Circuit {
	sub := &Circuit{regs: c.Registers(), n: c.n, gates: make([]gate, len(c.gates))}
	copy(sub.gates, c.gates)

	ident := make([]int, c.n)
	for i := range ident {
		ident[i] = i
	}
	out := &Circuit{regs: c.Registers(), n: c.n}
	out.gates = append(out.gates, gate{kind: kindBlock, qubits: ident, sub: sub, label: label})

	return out
}
