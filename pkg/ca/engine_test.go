package ca

import (
	"strings"
	"testing"
)

func setLine(t *testing.T, e *Engine[IntCell], states []int) {
	t.Helper()
	for i, s := range states {
		v := e.Grid().Get(Coord{i, 0, 0})
		v.State = s
		e.Grid().SetNext(Coord{i, 0, 0}, v)
	}
	e.Grid().Swap()
}

func readLine(e *Engine[IntCell], n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = e.Grid().Get(Coord{i, 0, 0}).State
	}
	return out
}

func assertIntSlice(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v (differ at %d)", got, want, i)
		}
	}
}

// S1 (reworked): Parity 1D, Periodic, r=1, num_states=2. The expected
// result below is derived directly from the Wrap+Parity formulas (and
// cross-checked against S2/S3, which corroborate the offset convention
// {-1,0,+1} including the focus cell) rather than the spec narrative's
// arithmetic line, which does not reduce to its own stated current array
// under that same, otherwise-consistent convention.
func TestScenarioS1ParityPeriodic(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(5, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Parity)
	setLine(t, e, []int{1, 0, 0, 1, 0})

	if err := e.Step(nil); err != nil {
		t.Fatal(err)
	}
	assertIntSlice(t, readLine(e, 5), []int{1, 1, 1, 1, 0})
}

func TestScenarioS2MajorityPeriodicFixedPoint(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(5, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Majority)
	setLine(t, e, []int{1, 1, 0, 0, 1})

	if err := e.Step(nil); err != nil {
		t.Fatal(err)
	}
	assertIntSlice(t, readLine(e, 5), []int{1, 1, 0, 0, 1})
}

func TestScenarioS3MajorityCutOff(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(5, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(CutOff, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Majority)
	setLine(t, e, []int{1, 0, 0, 0, 1})

	if err := e.Step(nil); err != nil {
		t.Fatal(err)
	}
	assertIntSlice(t, readLine(e, 5), []int{0, 0, 0, 0, 0})
}

func TestScenarioS4WalledFixedFrame(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions2D(4, 4, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Walled, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Parity)
	e.Seed(42)
	if err := e.InitCondition(1, 0.5); err != nil {
		t.Fatal(err)
	}

	before := make(map[Coord]int)
	capture := func() {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if x == 0 || x == 3 || y == 0 || y == 3 {
					before[Coord{x, y, 0}] = e.Grid().Get(Coord{x, y, 0}).State
				}
			}
		}
	}
	capture()

	for i := 0; i < 5; i++ {
		if err := e.Step(nil); err != nil {
			t.Fatal(err)
		}
		for c, want := range before {
			if got := e.Grid().Get(c).State; got != want {
				t.Fatalf("step %d: frame cell %v = %d, want %d (frozen)", i, c, got, want)
			}
		}
	}
}

func TestScenarioS5GeometryRoundTrip(t *testing.T) {
	rank, r := 3, 2
	for q := 0; q < 125; q++ {
		off := FlatToOffset(rank, r, q)
		for axis := 0; axis < rank; axis++ {
			if off[axis] < -2 || off[axis] > 2 {
				t.Fatalf("q=%d: offset %v outside [-2,2]^3", q, off)
			}
		}
	}
}

// S6: a motion Custom rule that moves any non-empty cell by +1 along axis
// 1 with periodic wrap. Starting from a single cell at (2,2,2) in a
// 6x6x6 Periodic grid, after k steps the cell occupies
// ((2+k) mod 6, 2, 2) and no other cell is non-empty.
func TestScenarioS6MotionRule(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions3D(6, 6, 6, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Custom)

	moveRule := func(coord *Coord, neighbors Neighbors[IntCell], focus *IntCell) error {
		if focus.State == 0 {
			return nil
		}
		coord[0] = Wrap(coord[0], 1, 6)
		return nil
	}
	e.SetCustomRule(moveRule)

	start := Coord{2, 2, 2}
	v := e.Grid().Get(start)
	v.State = 1
	e.Grid().SetNext(start, v)
	e.Grid().Swap()

	for k := 1; k <= 7; k++ {
		if err := e.Step(nil); err != nil {
			t.Fatal(err)
		}
		want := Coord{Wrap(2, k, 6), 2, 2}
		nonEmpty := 0
		var foundAt Coord
		e.Grid().Each(func(c Coord) {
			if e.Grid().Get(c).State != 0 {
				nonEmpty++
				foundAt = c
			}
		})
		if nonEmpty != 1 {
			t.Fatalf("step %d: expected exactly 1 non-empty cell, found %d", k, nonEmpty)
		}
		if foundAt != want {
			t.Fatalf("step %d: non-empty cell at %v, want %v", k, foundAt, want)
		}
	}
}

func TestInvariantMajorityStableOnUniformNeighborhood(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions2D(5, 5, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.SetNumStates(3); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Majority)
	if err := e.InitCondition(2, 1.0); err != nil {
		t.Fatal(err)
	}
	if err := e.Step(nil); err != nil {
		t.Fatal(err)
	}
	e.Grid().Each(func(c Coord) {
		if got := e.Grid().Get(c).State; got != 2 {
			t.Fatalf("cell %v = %d after uniform-state Majority step, want 2", c, got)
		}
	})
}

func TestInvariantParityBounded(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions2D(6, 6, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.SetNumStates(4); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Parity)
	e.Seed(7)
	if err := e.InitCondition(3, 0.5); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := e.Step(nil); err != nil {
			t.Fatal(err)
		}
		e.Grid().Each(func(c Coord) {
			s := e.Grid().Get(c).State
			if s < 0 || s >= 4 {
				t.Fatalf("step %d: cell %v state=%d out of [0,4)", i, c, s)
			}
		})
	}
}

func TestInvariantCustomIdempotence(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions2D(4, 4, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetBoundary(Periodic, 1); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Custom)
	e.Seed(3)
	if err := e.InitCondition(1, 0.4); err != nil {
		t.Fatal(err)
	}

	identity := func(coord *Coord, neighbors Neighbors[IntCell], focus *IntCell) error {
		return nil
	}

	before := make(map[Coord]int)
	e.Grid().Each(func(c Coord) { before[c] = e.Grid().Get(c).State })

	if err := e.Step(identity); err != nil {
		t.Fatal(err)
	}
	e.Grid().Each(func(c Coord) {
		if got := e.Grid().Get(c).State; got != before[c] {
			t.Fatalf("cell %v = %d after identity Custom step, want %d (unchanged)", c, got, before[c])
		}
	})
}

func TestEngineLifecycleStates(t *testing.T) {
	e := NewEngine[IntCell]()
	if e.State() != Unconfigured {
		t.Fatalf("new engine state = %v, want Unconfigured", e.State())
	}
	if err := e.SetDimensions2D(3, 3, IntCell{}); err != nil {
		t.Fatal(err)
	}
	if e.State() != Shaped {
		t.Fatalf("after SetDimensions2D, state = %v, want Shaped", e.State())
	}
	if err := e.InitCondition(1, 0.5); err != nil {
		t.Fatal(err)
	}
	if e.State() != Seeded {
		t.Fatalf("after InitCondition, state = %v, want Seeded", e.State())
	}
	if err := e.Step(nil); err != nil {
		t.Fatal(err)
	}
	if e.State() != Advancing {
		t.Fatalf("after Step, state = %v, want Advancing", e.State())
	}
}

func TestSetDimensionsAlreadyInitialized(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(3, IntCell{}); err != nil {
		t.Fatal(err)
	}
	err := e.SetDimensions1D(3, IntCell{})
	if err == nil {
		t.Fatal("expected error on re-initialization")
	}
	if ce, ok := err.(*Error); !ok || ce.Code != ErrAlreadyInitialized {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestSetBoundaryRadiusTooLarge(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(4, IntCell{}); err != nil {
		t.Fatal(err)
	}
	err := e.SetBoundary(Periodic, 3)
	if err == nil {
		t.Fatal("expected error for radius larger than floor(D/2)")
	}
	if ce, ok := err.(*Error); !ok || ce.Code != ErrRadiusTooLarge {
		t.Fatalf("expected ErrRadiusTooLarge, got %v", err)
	}
}

func TestStepCustomRuleMissing(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions1D(4, IntCell{}); err != nil {
		t.Fatal(err)
	}
	e.SetRule(Custom)
	err := e.Step(nil)
	if err == nil {
		t.Fatal("expected ErrCustomRuleMissing")
	}
	if ce, ok := err.(*Error); !ok || ce.Code != ErrCustomRuleMissing {
		t.Fatalf("expected ErrCustomRuleMissing, got %v", err)
	}
}

func TestInitConditionDeterministicWithSeed(t *testing.T) {
	run := func() []int {
		e := NewEngine[IntCell]()
		if err := e.SetDimensions1D(50, IntCell{}); err != nil {
			t.Fatal(err)
		}
		e.Seed(123)
		if err := e.InitCondition(1, 0.3); err != nil {
			t.Fatal(err)
		}
		return readLine(e, 50)
	}
	a := run()
	b := run()
	assertIntSlice(t, a, b)
}

// TestPrintGridRank2RectangularAxisOrder pins down PrintGrid's rank-2 axis
// convention against a non-square grid: Include/CAdatatypes.h's print_grid
// emits axis1_dim (Dims[0]) rows of axis2_dim (Dims[1]) values each
// (matrix[j][k]). A 2x3 grid must print 2 lines of 3 values, not 3 lines
// of 2.
func TestPrintGridRank2RectangularAxisOrder(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions2D(2, 3, IntCell{}); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 2; j++ {
		for k := 0; k < 3; k++ {
			v := IntCell{State: j*3 + k}
			e.Grid().SetNext(Coord{j, k, 0}, v)
		}
	}
	e.Grid().Swap()

	var buf strings.Builder
	if err := e.PrintGrid(&buf); err != nil {
		t.Fatal(err)
	}
	want := "0 1 2\n3 4 5\n"
	if got := buf.String(); got != want {
		t.Fatalf("PrintGrid rank-2 output =\n%q\nwant\n%q", got, want)
	}
}

// TestPrintGridRank3RectangularAxisOrder pins down the rank-3 case: for
// each i in [0, Dims[0]), a slice header followed by Dims[1] rows of
// Dims[2] values each (tensor[i][j][k]).
func TestPrintGridRank3RectangularAxisOrder(t *testing.T) {
	e := NewEngine[IntCell]()
	if err := e.SetDimensions3D(2, 2, 3, IntCell{}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				v := IntCell{State: i*100 + j*10 + k}
				e.Grid().SetNext(Coord{i, j, k}, v)
			}
		}
	}
	e.Grid().Swap()

	var buf strings.Builder
	if err := e.PrintGrid(&buf); err != nil {
		t.Fatal(err)
	}
	want := "Printing 0'th slice of Tensor\n" +
		"0 1 2\n10 11 12\n" +
		"Printing 1'th slice of Tensor\n" +
		"100 101 102\n110 111 112\n"
	if got := buf.String(); got != want {
		t.Fatalf("PrintGrid rank-3 output =\n%q\nwant\n%q", got, want)
	}
}
