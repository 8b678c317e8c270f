// Package ca implements a generic, dimension-agnostic cellular-automata
// engine: a double-buffered grid of rank 1-3, advanced under a selectable
// neighborhood, boundary policy, and transition rule.
package ca

// Cell is the contract a grid element must satisfy. T must be comparable
// (Go's zero-value and value-copy semantics already give default
// construction and copy-assignment for free) and expose its integer state
// through accessors, since Go generics cannot constrain struct fields
// directly.
type Cell interface {
	comparable
	GetState() int
	SetState(int)
}

// IntCell is the minimal Cell: a bare integer state, for CA models that
// carry no per-cell attributes beyond state.
type IntCell struct {
	State int
}

// GetState returns the cell's state.
func (c IntCell) GetState() int { return c.State }

// SetState sets the cell's state.
func (c *IntCell) SetState(s int) { c.State = s }

// Coord is a coordinate in a rank 1-3 grid. Only the first Shape.Rank
// entries are meaningful; higher entries are always 0.
type Coord [3]int

// Neighborhood selects the shape of a cell's local neighborhood.
type Neighborhood int

const (
	// Moore is the full (2r+1)^rank box neighborhood.
	Moore Neighborhood = iota
	// VonNeumann is the axial cross neighborhood (2*rank*r+1 cells).
	VonNeumann
)

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "Moore"
	case VonNeumann:
		return "VonNeumann"
	default:
		return "Neighborhood(?)"
	}
}

// Boundary selects how neighborhoods behave at grid edges.
type Boundary int

const (
	// Periodic wraps neighbor coordinates modulo each axis length.
	Periodic Boundary = iota
	// Walled freezes any cell on the boundary of an active axis; interior
	// cells behave as CutOff.
	Walled
	// CutOff drops out-of-range neighbor coordinates from the sequence.
	CutOff
)

func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "Periodic"
	case Walled:
		return "Walled"
	case CutOff:
		return "CutOff"
	default:
		return "Boundary(?)"
	}
}

// RuleType selects the transition rule applied at each cell.
type RuleType int

const (
	// Majority sets the new state to the most common neighbor state,
	// ties broken toward the lowest state value.
	Majority RuleType = iota
	// Parity sets the new state to the sum of neighbor states modulo
	// num_states.
	Parity
	// Custom invokes a user-supplied CustomRuleFunc.
	Custom
)

func (r RuleType) String() string {
	switch r {
	case Majority:
		return "Majority"
	case Parity:
		return "Parity"
	case Custom:
		return "Custom"
	default:
		return "Rule(?)"
	}
}

// Shape describes the rank and per-axis extent of a grid. Only the first
// Rank entries of Dims are meaningful.
type Shape struct {
	Rank int
	Dims [3]int
}

// Size returns the total number of cells in the shape.
func (s Shape) Size() int {
	n := 1
	for i := 0; i < s.Rank; i++ {
		n *= s.Dims[i]
	}
	return n
}

// EngineState is the Engine façade's lifecycle state.
type EngineState int

const (
	Unconfigured EngineState = iota
	Shaped
	Seeded
	Advancing
)

func (s EngineState) String() string {
	switch s {
	case Unconfigured:
		return "Unconfigured"
	case Shaped:
		return "Shaped"
	case Seeded:
		return "Seeded"
	case Advancing:
		return "Advancing"
	default:
		return "EngineState(?)"
	}
}
