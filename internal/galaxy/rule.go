package galaxy

import "cagrid/pkg/ca"

// NewRule returns a ca.CustomRuleFunc implementing galaxy_formation_rule:
// sum gravitational force from every non-focus neighbor in the engine's
// Von Neumann neighborhood (matching
// get_periodic_von_neumann_neighbor_index, the neighbor-index function
// galaxy.cpp actually calls; the canonical neighborhood sequence includes
// the focus cell at the zero offset, which is skipped, matching
// galaxy_formation_rule's cell_of_interest_index := neighborhood_size/2
// convention), integrate to a displacement vector, round it to an integer
// offset (ties away from zero), and move the cell there under periodic
// wrap.
//
// Collision handling departs from the source's Bresenham-with-inline-
// collision-check walk: a Custom rule in this engine has no access to the
// grid beyond its own neighborhood view and mutable coordinate (spec.md
// §4.4), so collisions are only detected when the rounded destination
// offset falls within the already-fetched neighborhood — if it does and
// that slot is occupied by another cell, the focus absorbs it (inelastic:
// masses add, velocities mass-weighted-average, state counts add) and the
// merged cell moves onto that slot. The absorbed neighbor is not removed:
// its own write to next is resolved by the engine's last-write-wins
// semantics. A zero displacement is never a collision, and a destination
// outside the neighborhood radius is not checked for occupancy.
func NewRule(dims [3]int, timeStep float64) ca.CustomRuleFunc[Cell] {
	return func(coord *ca.Coord, neighbors ca.Neighbors[Cell], focus *Cell) error {
		if focus.State == 0 {
			return nil
		}

		var totalForce [3]float64
		for i, off := range neighbors.Offsets {
			if off == (ca.Coord{}) {
				continue // skip the cell of interest itself
			}
			neighbor := neighbors.Cells[i]
			if neighbor.State == 0 {
				continue
			}
			offsetF := [3]float64{float64(off[0]), float64(off[1]), float64(off[2])}
			f := gravitationalForce(focus.Mass, neighbor.Mass, offsetF)
			totalForce[0] += f[0]
			totalForce[1] += f[1]
			totalForce[2] += f[2]
		}

		accel := acceleration(totalForce, focus.Mass)
		newVel := velocity(accel, focus.Vel, timeStep)
		disp := displacement(focus.Vel, newVel, timeStep)

		dest := ca.Coord{roundInt(disp[0]), roundInt(disp[1]), roundInt(disp[2])}
		focus.Vel = newVel

		for i, off := range neighbors.Offsets {
			if off != dest || off == (ca.Coord{}) {
				continue // only another cell's slot can be a collision
			}
			neighbor := neighbors.Cells[i]
			if neighbor.State == 0 {
				break
			}
			focus.Vel = mergeVelocity(focus.Mass, focus.Vel, neighbor.Mass, neighbor.Vel)
			focus.Mass += neighbor.Mass
			focus.State += neighbor.State
			break
		}

		coord[0] = ca.Wrap(coord[0], dest[0], dims[0])
		coord[1] = ca.Wrap(coord[1], dest[1], dims[1])
		coord[2] = ca.Wrap(coord[2], dest[2], dims[2])
		return nil
	}
}
