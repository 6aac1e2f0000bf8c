package grid

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Context is a validated, read-only view over one contouring input: the
// column coordinates x (length ncol), the row coordinates y (length nrow)
// and the flat value matrix z, stored with element (r, c) at offset
// r + c*nrow. It is shared by the isoline and isoband engines.
//
// Context does not copy its inputs; callers must not mutate them while an
// engine bound to the Context is running.
type Context[T constraints.Float] struct {
	x, y, z    []T
	nrow, ncol int
}

// NewContext validates the input dimensions and wraps them.
// Returns ErrGridSize, ErrXLength, ErrYLength or ErrZLength on mismatch.
// Complexity: O(1).
func NewContext[T constraints.Float](x, y, z []T, nrow, ncol int) (*Context[T], error) {
	if nrow < 1 || ncol < 1 {
		return nil, ErrGridSize
	}
	if len(x) != ncol {
		return nil, ErrXLength
	}
	if len(y) != nrow {
		return nil, ErrYLength
	}
	if len(z) != nrow*ncol {
		return nil, ErrZLength
	}

	return &Context[T]{x: x, y: y, z: z, nrow: nrow, ncol: ncol}, nil
}

// NRow returns the number of grid rows.
func (g *Context[T]) NRow() int { return g.nrow }

// NCol returns the number of grid columns.
func (g *Context[T]) NCol() int { return g.ncol }

// CellRows returns the number of cell rows, nrow−1.
func (g *Context[T]) CellRows() int { return g.nrow - 1 }

// CellCols returns the number of cell columns, ncol−1.
func (g *Context[T]) CellCols() int { return g.ncol - 1 }

// At returns the z value at row r, column c. Complexity: O(1).
func (g *Context[T]) At(r, c int) T {
	return g.z[r+c*g.nrow]
}

// Finite reports whether the z value at (r, c) is neither NaN nor ±Inf.
// The float64 widening is exact for float32 inputs.
func (g *Context[T]) Finite(r, c int) bool {
	v := float64(g.At(r, c))
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CellFinite reports whether all four corners of cell (r, c) are finite.
// Cells touching a non-finite value contribute no contour fragments.
func (g *Context[T]) CellFinite(r, c int) bool {
	return g.Finite(r, c) && g.Finite(r, c+1) && g.Finite(r+1, c) && g.Finite(r+1, c+1)
}

// CentralValue returns the arithmetic mean of the four corners of cell
// (r, c), the proxy for the field value at the cell center used to
// disambiguate saddles. Complexity: O(1).
func (g *Context[T]) CentralValue(r, c int) T {
	return (g.At(r, c) + g.At(r, c+1) + g.At(r+1, c) + g.At(r+1, c+1)) / 4
}

// interpolate returns the coordinate where the value crosses v on the
// straight edge from (x0, z0) to (x1, z1).
func interpolate[T constraints.Float](x0, x1, z0, z1, v T) T {
	d := (v - z0) / (z1 - z0)

	return x0 + d*(x1-x0)
}

// Coord maps a Point to output (x, y) coordinates. Corners read straight
// from the coordinate vectors; crossings interpolate linearly between the
// two bracketing corners at the low (lo) or high (hi) threshold.
// Complexity: O(1).
func (g *Context[T]) Coord(p Point, lo, hi T) (x, y T) {
	switch p.Kind {
	case HorzLo:
		return interpolate(g.x[p.C], g.x[p.C+1], g.At(p.R, p.C), g.At(p.R, p.C+1), lo), g.y[p.R]
	case HorzHi:
		return interpolate(g.x[p.C], g.x[p.C+1], g.At(p.R, p.C), g.At(p.R, p.C+1), hi), g.y[p.R]
	case VertLo:
		return g.x[p.C], interpolate(g.y[p.R], g.y[p.R+1], g.At(p.R, p.C), g.At(p.R+1, p.C), lo)
	case VertHi:
		return g.x[p.C], interpolate(g.y[p.R], g.y[p.R+1], g.At(p.R, p.C), g.At(p.R+1, p.C), hi)
	default: // Corner
		return g.x[p.C], g.y[p.R]
	}
}

// FromRows flattens a rectangular [][]T matrix (rows[r][c]) into the flat
// column-stride layout expected by NewContext, returning the flat slice
// and the dimensions. Returns ErrGridSize for an empty matrix and
// ErrRaggedRows when row lengths differ.
// Complexity: O(nrow·ncol).
func FromRows[T constraints.Float](rows [][]T) (z []T, nrow, ncol int, err error) {
	nrow = len(rows)
	if nrow == 0 || len(rows[0]) == 0 {
		return nil, 0, 0, ErrGridSize
	}
	ncol = len(rows[0])
	for _, row := range rows {
		if len(row) != ncol {
			return nil, 0, 0, ErrRaggedRows
		}
	}
	z = make([]T, nrow*ncol)
	for r := 0; r < nrow; r++ {
		for c := 0; c < ncol; c++ {
			z[r+c*nrow] = rows[r][c]
		}
	}

	return z, nrow, ncol, nil
}
