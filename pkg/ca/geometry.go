package ca

// Wrap computes the periodic axis index for a center i and a signed offset
// di on an axis of length D. Negative offsets are handled uniformly via a
// double modulo.
func Wrap(i, di, D int) int {
	return ((i+di)%D + D) % D
}

// Cardinality returns the neighborhood size for the given rank, radius, and
// shape, per the closed forms in the geometry contract. Moore is the full
// (2r+1)^rank box; VonNeumann is the source's axial-arms-plus-center
// convention, 2*rank*r+1, not a textbook ball-radius count.
func Cardinality(rank, radius int, shape Neighborhood) int {
	switch shape {
	case Moore:
		f := 2*radius + 1
		n := 1
		for i := 0; i < rank; i++ {
			n *= f
		}
		return n
	case VonNeumann:
		return 2*rank*radius + 1
	default:
		return 0
	}
}

// isDiagonal2D reports whether offset (i, j) is a diagonal neighbor.
func isDiagonal2D(i, j int) bool {
	return i != 0 && j != 0
}

// isDiagonal3D reports whether offset (i, j, k) is a diagonal neighbor. The
// predicate pivots asymmetrically on whether the axis-1 offset i is zero:
// when i == 0, both j and k must be non-zero to count as diagonal;
// otherwise either being non-zero suffices. This is a deliberately
// preserved source behavior (not a "any two axes non-zero" definition) and
// changes Von Neumann membership for non-central slices; see geometry_test.go
// for a test against the uniform definition it diverges from.
func isDiagonal3D(i, j, k int) bool {
	if i == 0 {
		return j != 0 && k != 0
	}
	return j != 0 || k != 0
}

// isDiagonal reports whether offset is a diagonal neighbor for the given
// rank. Rank 1 has no diagonals.
func isDiagonal(rank int, offset Coord) bool {
	switch rank {
	case 1:
		return false
	case 2:
		return isDiagonal2D(offset[0], offset[1])
	case 3:
		return isDiagonal3D(offset[0], offset[1], offset[2])
	default:
		return false
	}
}

// EnumerateOffsets returns the canonical, deterministic sequence of
// neighbor offsets for the given rank, radius, and shape, each coordinate
// in the inclusive range [-r, r]. Moore is the full box enumerated in
// lexicographic axis order. VonNeumann is obtained by enumerating the same
// box and filtering to non-diagonal offsets: because the Moore box is
// generated in lexicographic order (outer axis first), filtering it by the
// (possibly asymmetric) diagonal predicate reproduces, one axis at a time,
// the source's "negative arm, embedded lower-rank cross, positive arm"
// construction — so one code path serves both the canonical ordering
// contract and the boundary-enumeration algorithm described for
// NeighborhoodView.
func EnumerateOffsets(rank, radius int, shape Neighborhood) []Coord {
	box := enumerateMooreBox(rank, radius)
	if shape == Moore {
		return box
	}
	out := make([]Coord, 0, Cardinality(rank, radius, VonNeumann))
	for _, o := range box {
		if !isDiagonal(rank, o) {
			out = append(out, o)
		}
	}
	return out
}

// enumerateMooreBox returns every offset in the (2r+1)^rank box, in
// lexicographic order by axis (axis 1 varies slowest).
func enumerateMooreBox(rank, radius int) []Coord {
	n := Cardinality(rank, radius, Moore)
	out := make([]Coord, 0, n)
	var rec func(axis int, cur Coord)
	rec = func(axis int, cur Coord) {
		if axis == rank {
			out = append(out, cur)
			return
		}
		for d := -radius; d <= radius; d++ {
			next := cur
			next[axis] = d
			rec(axis+1, next)
		}
	}
	rec(0, Coord{})
	return out
}

// FlatToOffset maps a flat index q in [0, Cardinality(rank,radius,Moore))
// to its offset in the Moore box, in the same lexicographic order
// EnumerateOffsets/enumerateMooreBox produce. It is the inverse of
// enumerating the box and indexing position q.
func FlatToOffset(rank, radius, q int) Coord {
	f := 2*radius + 1
	var out Coord
	for axis := rank - 1; axis >= 0; axis-- {
		out[axis] = (q % f) - radius
		q /= f
	}
	return out
}
