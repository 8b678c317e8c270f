package ca

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteLogHeader writes the three-line log header cmd/density's
// get_density-style reader expects: a line with num_states, a line naming
// the active rule, then a line of comma-separated dimensions (always
// three fields, trailing zero-padded for lower-rank shapes, matching
// get_density's fixed dim[3] buffer). Call once before any WriteLogStep
// calls.
func (e *Engine[T]) WriteLogHeader(w io.Writer) error {
	if e.grid == nil {
		return NewError(ErrCellsNull)
	}
	if _, err := fmt.Fprintln(w, e.cfg.NumStates); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, e.cfg.Rule); err != nil {
		return err
	}
	shape := e.grid.Shape()
	dims := make([]string, 3)
	for i := 0; i < 3; i++ {
		dims[i] = strconv.Itoa(shape.Dims[i])
	}
	_, err := fmt.Fprintln(w, strings.Join(dims, ","))
	return err
}

// WriteLogStep appends one comma-separated line of every cell's current
// state, in row-major order, matching what cmd/density's get_density-style
// reader expects per simulation step.
func (e *Engine[T]) WriteLogStep(w io.Writer) error {
	if e.grid == nil {
		return NewError(ErrCellsNull)
	}
	states := make([]string, len(e.grid.current))
	e.grid.Each(func(c Coord) {
		states[e.grid.index(c)] = strconv.Itoa(e.grid.Get(c).GetState())
	})
	_, err := fmt.Fprintln(w, strings.Join(states, ","))
	return err
}
