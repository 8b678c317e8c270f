package ca

import (
	"fmt"
	"io"
	"time"

	cacore "cagrid/pkg/core"
)

// Config holds the Engine's tunable configuration. Fields mirror spec.md's
// Configuration block; defaults are Moore neighborhood, Periodic boundary,
// num_states=2, Majority rule.
type Config struct {
	Neighborhood Neighborhood
	Boundary     Boundary
	Radius       int
	NumStates    int
	Rule         RuleType
}

// DefaultConfig returns the engine façade's documented defaults.
func DefaultConfig() Config {
	return Config{
		Neighborhood: Moore,
		Boundary:     Periodic,
		Radius:       1,
		NumStates:    2,
		Rule:         Majority,
	}
}

// Engine is the public façade over the grid, geometry, neighborhood view,
// rule engine, and stepper. It owns both of the grid's buffers and tracks
// the configuration lifecycle state machine:
// Unconfigured -> Shaped (SetDimensions*) -> Seeded (InitCondition) ->
// Advancing (Step). Configuration setters other than dimensions may be
// called in any state; failed calls leave the engine in its prior state.
type Engine[T Cell] struct {
	cfg   Config
	state EngineState

	grid *Grid[T]

	custom  CustomRuleFunc[T]
	workers int

	stepsTaken int

	seed     int64
	hasSeed  bool
	rng      *cacore.RNG
}

// NewEngine returns an unconfigured Engine with default configuration.
func NewEngine[T Cell]() *Engine[T] {
	return &Engine[T]{cfg: DefaultConfig(), state: Unconfigured}
}

// SetNeighborhood sets the neighborhood shape. Always succeeds.
func (e *Engine[T]) SetNeighborhood(n Neighborhood) {
	e.cfg.Neighborhood = n
}

// SetBoundary sets the boundary policy and radius. Fails with
// ErrInvalidRadius if r <= 0; fails with ErrRadiusTooLarge if r exceeds
// floor(Di/2) on any active axis, once dimensions are configured.
func (e *Engine[T]) SetBoundary(b Boundary, r int) error {
	if r <= 0 {
		return NewError(ErrInvalidRadius)
	}
	if e.grid != nil {
		if err := validateRadius(e.grid.Shape(), r); err != nil {
			return err
		}
	}
	e.cfg.Boundary = b
	e.cfg.Radius = r
	return nil
}

// SetNumStates sets the number of distinct cell states. Fails with
// ErrInvalidNumStates if n < 2.
func (e *Engine[T]) SetNumStates(n int) error {
	if n < 2 {
		return NewError(ErrInvalidNumStates)
	}
	e.cfg.NumStates = n
	return nil
}

// SetRule sets the active rule. Always succeeds; a missing custom function
// for RuleType Custom is only checked at Step time.
func (e *Engine[T]) SetRule(r RuleType) {
	e.cfg.Rule = r
}

// SetCustomRule stores the default custom rule function used by Step when
// Step is called without an explicit override.
func (e *Engine[T]) SetCustomRule(fn CustomRuleFunc[T]) {
	e.custom = fn
}

// SetWorkers bounds the number of concurrent goroutines the Stepper uses
// per Step. Zero or negative means unbounded (errgroup.Group's default).
func (e *Engine[T]) SetWorkers(n int) {
	e.workers = n
}

// Seed sets the deterministic seed used by InitCondition. Per spec.md's
// open-question resolution, a rewrite must accept an explicit seed and
// only default to a time-derived seed when none is given — unlike the
// source, which reseeds from wall-clock time on every call.
func (e *Engine[T]) Seed(seed int64) {
	e.seed = seed
	e.hasSeed = true
}

func validateRadius(shape Shape, r int) error {
	for axis := 0; axis < shape.Rank; axis++ {
		if r > shape.Dims[axis]/2 {
			return NewError(ErrRadiusTooLarge)
		}
	}
	return nil
}

// setDimensions is the shared implementation of SetDimensions1D/2D/3D.
func (e *Engine[T]) setDimensions(rank int, dims [3]int, fill T) error {
	if e.grid != nil {
		return NewError(ErrAlreadyInitialized)
	}
	for axis := 0; axis < rank; axis++ {
		if dims[axis] <= 0 {
			return NewError(ErrAllocationFailed)
		}
	}
	if e.cfg.Radius > 0 {
		if err := validateRadius(Shape{Rank: rank, Dims: dims}, e.cfg.Radius); err != nil {
			return err
		}
	}
	e.grid = NewGrid(Shape{Rank: rank, Dims: dims}, fill)
	e.state = Shaped
	return nil
}

// SetDimensions1D allocates a rank-1 grid of length d1. Fails with
// ErrAlreadyInitialized if a grid already exists.
func (e *Engine[T]) SetDimensions1D(d1 int, fill T) error {
	return e.setDimensions(1, [3]int{d1, 0, 0}, fill)
}

// SetDimensions2D allocates a rank-2 grid of shape (d1, d2).
func (e *Engine[T]) SetDimensions2D(d1, d2 int, fill T) error {
	return e.setDimensions(2, [3]int{d1, d2, 0}, fill)
}

// SetDimensions3D allocates a rank-3 grid of shape (d1, d2, d3).
func (e *Engine[T]) SetDimensions3D(d1, d2, d3 int, fill T) error {
	return e.setDimensions(3, [3]int{d1, d2, d3}, fill)
}

// Shape returns the grid's shape, or a zero Shape if unconfigured.
func (e *Engine[T]) Shape() Shape {
	if e.grid == nil {
		return Shape{}
	}
	return e.grid.Shape()
}

// Grid exposes the underlying Grid for callers (such as example clients)
// that need direct read access beyond InitCondition/Step, e.g. rendering
// or seeding bespoke per-cell attributes.
func (e *Engine[T]) Grid() *Grid[T] {
	return e.grid
}

func (e *Engine[T]) rngSource() *cacore.RNG {
	if e.rng == nil {
		seed := e.seed
		if !e.hasSeed {
			seed = time.Now().UnixNano()
		}
		e.rng = cacore.NewRNG(seed)
	}
	return e.rng
}

// Rand exposes the engine's own seeded random source, lazily initialized on
// first use (from Seed's value, or a time-derived seed if Seed was never
// called). Example clients that need additional randomized setup beyond
// InitCondition (such as assigning per-cell attributes) should draw from
// this source rather than constructing their own, so that Seed fully
// determines a run.
func (e *Engine[T]) Rand() *cacore.RNG {
	return e.rngSource()
}

// InitCondition seeds the initial condition: for each cell in current,
// independently sample a uniform [0,1) draw; if below p, set state := x.
// Other fields are left at their default. Fails with
// ErrInvalidStateCondition if x >= NumStates.
func (e *Engine[T]) InitCondition(x int, p float64) error {
	if e.grid == nil {
		return NewError(ErrCellsNull)
	}
	if x < 0 || x >= e.cfg.NumStates {
		return NewError(ErrInvalidStateCondition)
	}
	rng := e.rngSource()
	e.grid.Each(func(c Coord) {
		if rng.Float64() < p {
			v := e.grid.Get(c)
			v.SetState(x)
			e.grid.current[e.grid.index(c)] = v
		}
	})
	e.state = Seeded
	return nil
}

// Step advances the simulation by one generation. If override is non-nil
// it is used in place of the stored custom rule for this call only (e.g.
// to supply a different motion rule per invocation); otherwise the rule
// registered via SetCustomRule is used. Returns ErrCellsNull if the grid
// has not been allocated, and ErrCustomRuleMissing if RuleType is Custom
// and no function is available.
func (e *Engine[T]) Step(override CustomRuleFunc[T]) error {
	if e.grid == nil {
		return NewError(ErrCellsNull)
	}
	fn := e.custom
	if override != nil {
		fn = override
	}
	if e.cfg.Rule == Custom && fn == nil {
		return NewError(ErrCustomRuleMissing)
	}
	cfg := stepperConfig{
		neighborhood: e.cfg.Neighborhood,
		boundary:     e.cfg.Boundary,
		radius:       e.cfg.Radius,
		numStates:    e.cfg.NumStates,
		rule:         e.cfg.Rule,
		workers:      e.workers,
	}
	if err := step(e.grid, cfg, fn); err != nil {
		return err
	}
	e.stepsTaken++
	e.state = Advancing
	return nil
}

// StepsTaken returns the number of generations committed so far.
func (e *Engine[T]) StepsTaken() int { return e.stepsTaken }

// State returns the engine's current lifecycle state.
func (e *Engine[T]) State() EngineState { return e.state }

// PrintGrid writes a canonical text rendering of the current buffer to w.
// Rank-1: whitespace-separated state values on one line. Rank-2: D1 rows of
// D2 values each. Rank-3: for each i in [0, D1), a "Printing i'th slice of
// Tensor" header followed by the rank-2 rendering (D2 rows of D3 values) of
// slice i. Matches Include/CAdatatypes.h's print_grid loop nesting
// (matrix[j][k], tensor[i][j][k]) exactly.
func (e *Engine[T]) PrintGrid(w io.Writer) error {
	if e.grid == nil {
		return NewError(ErrCellsNull)
	}
	shape := e.grid.Shape()
	switch shape.Rank {
	case 1:
		return printRow(w, e.grid, Coord{}, 0, shape.Dims[0])
	case 2:
		for j := 0; j < shape.Dims[0]; j++ {
			if err := printRow(w, e.grid, Coord{j, 0, 0}, 1, shape.Dims[1]); err != nil {
				return err
			}
		}
		return nil
	case 3:
		for i := 0; i < shape.Dims[0]; i++ {
			if _, err := fmt.Fprintf(w, "Printing %d'th slice of Tensor\n", i); err != nil {
				return err
			}
			for j := 0; j < shape.Dims[1]; j++ {
				if err := printRow(w, e.grid, Coord{i, j, 0}, 2, shape.Dims[2]); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return NewError(ErrInvalidState)
	}
}

// printRow writes one whitespace-separated row of states, varying the
// coordinate's varyAxis from 0 to n-1.
func printRow[T Cell](w io.Writer, g *Grid[T], base Coord, varyAxis, n int) error {
	for i := 0; i < n; i++ {
		c := base
		c[varyAxis] = i
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, g.Get(c).GetState()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
