package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jkrumbiegel/isoband/grid"
)

//----------------------------------------------------------------------------//
// NewContext and FromRows Tests
//----------------------------------------------------------------------------//

// TestNewContext_Errors verifies that NewContext rejects mismatched inputs.
func TestNewContext_Errors(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	z := []float64{0, 0, 1, 1}

	cases := []struct {
		name       string
		x, y, z    []float64
		nrow, ncol int
		err        error
	}{
		{"ZeroRows", x, y, z, 0, 2, grid.ErrGridSize},
		{"NegativeCols", x, y, z, 2, -1, grid.ErrGridSize},
		{"ShortX", x[:1], y, z, 2, 2, grid.ErrXLength},
		{"ShortY", x, y[:1], z, 2, 2, grid.ErrYLength},
		{"ShortZ", x, y, z[:3], 2, 2, grid.ErrZLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewContext(tc.x, tc.y, tc.z, tc.nrow, tc.ncol)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewContext error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestFromRows checks the column-stride layout and the ragged-row error.
func TestFromRows(t *testing.T) {
	z, nrow, ncol, err := grid.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if nrow != 2 || ncol != 3 {
		t.Fatalf("FromRows dims = (%d, %d); want (2, 3)", nrow, ncol)
	}
	// Element (r, c) lives at offset r + c*nrow.
	want := []float64{1, 4, 2, 5, 3, 6}
	for i := range want {
		if z[i] != want[i] {
			t.Errorf("z[%d] = %v; want %v", i, z[i], want[i])
		}
	}

	if _, _, _, err = grid.FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, grid.ErrRaggedRows) {
		t.Errorf("ragged FromRows error = %v; want ErrRaggedRows", err)
	}
	if _, _, _, err = grid.FromRows[float64](nil); !errors.Is(err, grid.ErrGridSize) {
		t.Errorf("empty FromRows error = %v; want ErrGridSize", err)
	}
}

//----------------------------------------------------------------------------//
// Addressing and Interpolation Tests
//----------------------------------------------------------------------------//

// mustContext builds a Context from row-major data or fails the test.
func mustContext(t *testing.T, x, y []float64, rows [][]float64) *grid.Context[float64] {
	t.Helper()
	z, nrow, ncol, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	g, err := grid.NewContext(x, y, z, nrow, ncol)
	if err != nil {
		t.Fatalf("NewContext error: %v", err)
	}

	return g
}

// TestAt_CentralValue checks O(1) addressing against a known matrix.
func TestAt_CentralValue(t *testing.T) {
	g := mustContext(t, []float64{0, 1}, []float64{0, 1}, [][]float64{
		{1, 2},
		{3, 4},
	})
	if got := g.At(0, 1); got != 2 {
		t.Errorf("At(0,1) = %v; want 2", got)
	}
	if got := g.At(1, 0); got != 3 {
		t.Errorf("At(1,0) = %v; want 3", got)
	}
	if got := g.CentralValue(0, 0); got != 2.5 {
		t.Errorf("CentralValue = %v; want 2.5", got)
	}
}

// TestCoord verifies corner lookup and linear interpolation of all four
// crossing kinds, including non-unit spacing.
func TestCoord(t *testing.T) {
	g := mustContext(t, []float64{0, 3}, []float64{10, 16}, [][]float64{
		{0, 3},
		{6, 9},
	})
	const lo, hi = 1.0, 2.0

	cases := []struct {
		name   string
		p      grid.Point
		wx, wy float64
	}{
		{"Corner", grid.Point{R: 1, C: 1, Kind: grid.Corner}, 3, 16},
		// row 0 edge runs z 0→3: lo crossing at d=1/3, hi at d=2/3
		{"HorzLo", grid.Point{R: 0, C: 0, Kind: grid.HorzLo}, 1, 10},
		{"HorzHi", grid.Point{R: 0, C: 0, Kind: grid.HorzHi}, 2, 10},
		// column 0 edge runs z 0→6: lo crossing at d=1/6, hi at d=1/3
		{"VertLo", grid.Point{R: 0, C: 0, Kind: grid.VertLo}, 0, 11},
		{"VertHi", grid.Point{R: 0, C: 0, Kind: grid.VertHi}, 0, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := g.Coord(tc.p, lo, hi)
			if math.Abs(x-tc.wx) > 1e-12 || math.Abs(y-tc.wy) > 1e-12 {
				t.Errorf("Coord(%v) = (%v, %v); want (%v, %v)", tc.p, x, y, tc.wx, tc.wy)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Classification Tests
//----------------------------------------------------------------------------//

// TestBinarize_Boundary pins the closed-below rule: z == v codes as 1.
func TestBinarize_Boundary(t *testing.T) {
	g := mustContext(t, []float64{0, 1}, []float64{0, 1}, [][]float64{
		{0, 0.5},
		{0.4999, 1},
	})
	codes := g.Binarize(0.5, nil)
	// column-stride layout: (0,0), (1,0), (0,1), (1,1)
	want := []uint8{0, 0, 1, 1}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %d; want %d", i, codes[i], want[i])
		}
	}
}

// TestTernarize_Boundary pins the half-open interval [lo, hi).
func TestTernarize_Boundary(t *testing.T) {
	g := mustContext(t, []float64{0, 1, 2}, []float64{0}, [][]float64{
		{0.4, 0.5, 1.5},
	})
	codes := g.Ternarize(0.5, 1.5, nil)
	want := []uint8{0, 1, 2}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %d; want %d", i, codes[i], want[i])
		}
	}
}

// TestLineCells checks the 8-4-2-1 index assembly and the NaN override.
func TestLineCells(t *testing.T) {
	g := mustContext(t, []float64{0, 1, 2}, []float64{0, 1}, [][]float64{
		{1, 0, math.NaN()},
		{0, 1, 0},
	})
	codes := g.Binarize(0.5, nil)
	cells := g.LineCells(codes, nil)
	// cell (0,0): TL=1 TR=0 BR=1 BL=0 → 10; cell (0,1) touches NaN → 0
	if cells[0] != 10 {
		t.Errorf("cells[0] = %d; want 10", cells[0])
	}
	if cells[1] != 0 {
		t.Errorf("cells[1] = %d; want 0 (NaN suppression)", cells[1])
	}
}

// TestBandCells checks the 27-9-3-1 index assembly and the Inf override.
func TestBandCells(t *testing.T) {
	g := mustContext(t, []float64{0, 1, 2}, []float64{0, 1}, [][]float64{
		{2, 1, math.Inf(1)},
		{0, 1, 1},
	})
	codes := g.Ternarize(0.5, 1.5, nil)
	cells := g.BandCells(codes, nil)
	// cell (0,0): TL=2 TR=1 BR=1 BL=0 → 27·2+9+3 = 66; cell (0,1) touches +Inf → 0
	if cells[0] != 66 {
		t.Errorf("cells[0] = %d; want 66", cells[0])
	}
	if cells[1] != 0 {
		t.Errorf("cells[1] = %d; want 0 (Inf suppression)", cells[1])
	}
}

// TestFloat32 exercises the float32 instantiation of the substrate.
func TestFloat32(t *testing.T) {
	x := []float32{0, 1}
	y := []float32{0, 1}
	z := []float32{0, 1, 0, 1} // (0,0)=0 (1,0)=1 (0,1)=0 (1,1)=1
	g, err := grid.NewContext(x, y, z, 2, 2)
	if err != nil {
		t.Fatalf("NewContext error: %v", err)
	}
	px, py := g.Coord(grid.Point{R: 0, C: 0, Kind: grid.VertLo}, 0.5, 0.5)
	if px != 0 || py != 0.5 {
		t.Errorf("Coord = (%v, %v); want (0, 0.5)", px, py)
	}
}
