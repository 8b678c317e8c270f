// Package galaxy is the toy "galaxy" example client of pkg/ca: a
// gravitationally-attracting N-body-flavored Custom rule demonstrating
// motion, collision merging, and per-cell attributes beyond state.
package galaxy

// Cell is a star system: an integer state (0 = empty, incremented on
// collision merges to track how many systems combined), a mass, and a
// velocity vector. Mirrors Include/galaxydatatypes.h's GalaxyCell.
type Cell struct {
	State int
	Mass  float64
	Vel   [3]float64
}

// GetState satisfies ca.Cell.
func (c Cell) GetState() int { return c.State }

// SetState satisfies ca.Cell.
func (c *Cell) SetState(s int) { c.State = s }
