package ca

// Neighbors is the ordered, read-only sequence of neighbor cell values for
// a focus coordinate, produced under the engine's active boundary policy
// and neighborhood shape. Offsets[i] is the neighbor-offset (per
// EnumerateOffsets' canonical order) that produced Cells[i], so a Custom
// rule may treat position i as neighbor-offset Offsets[i].
//
// If Frozen is true (a Walled boundary cell), Cells/Offsets are empty and
// the Stepper writes the focus cell unchanged into next without consulting
// the RuleEngine.
type Neighbors[T Cell] struct {
	Frozen  bool
	Offsets []Coord
	Cells   []T
}

// ViewNeighborhood produces the Neighbors sequence for a focus coordinate c
// under the given shape/boundary/radius, borrowing read-only values out of
// g's current buffer.
func ViewNeighborhood[T Cell](g *Grid[T], c Coord, shape Neighborhood, boundary Boundary, radius int) Neighbors[T] {
	rank := g.Shape().Rank
	dims := g.Shape().Dims

	if boundary == Walled && onBoundary(c, rank, dims) {
		return Neighbors[T]{Frozen: true}
	}

	offsets := EnumerateOffsets(rank, radius, shape)

	if boundary == Periodic {
		cells := make([]T, len(offsets))
		for i, o := range offsets {
			var nc Coord
			for axis := 0; axis < rank; axis++ {
				nc[axis] = Wrap(c[axis], o[axis], dims[axis])
			}
			cells[i] = g.Get(nc)
		}
		return Neighbors[T]{Offsets: offsets, Cells: cells}
	}

	// Walled-but-interior and CutOff both drop out-of-range absolute
	// neighbor coordinates from the sequence, per spec: the bound check
	// uses the absolute neighbor coordinate, not a relative-offset check.
	keepOffsets := make([]Coord, 0, len(offsets))
	cells := make([]T, 0, len(offsets))
	for _, o := range offsets {
		var nc Coord
		valid := true
		for axis := 0; axis < rank; axis++ {
			nc[axis] = c[axis] + o[axis]
			if nc[axis] < 0 || nc[axis] >= dims[axis] {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		keepOffsets = append(keepOffsets, o)
		cells = append(cells, g.Get(nc))
	}
	return Neighbors[T]{Offsets: keepOffsets, Cells: cells}
}

// onBoundary reports whether c sits on the boundary of any active axis
// (index 0 or Dims[axis]-1).
func onBoundary(c Coord, rank int, dims [3]int) bool {
	for axis := 0; axis < rank; axis++ {
		if c[axis] == 0 || c[axis] == dims[axis]-1 {
			return true
		}
	}
	return false
}
