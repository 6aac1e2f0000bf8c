// Package contour provides one-call drivers over the reusable engines.
package contour

import (
	"golang.org/x/exp/constraints"

	"github.com/jkrumbiegel/isoband/grid"
)

// Isobands computes one isoband per (lo[i], hi[i]) threshold pair over
// the grid described by x (length ncol), y (length nrow) and z (length
// nrow·ncol, element (r, c) at offset r + c·nrow). One Bander instance is
// reused across all pairs.
//
// Returns grid dimension errors, ErrLevelCount when len(lo) ≠ len(hi),
// or ErrMergeConflict on an internal invariant violation.
// Complexity: O(nbands·nrow·ncol).
func Isobands[T constraints.Float](x, y, z []T, nrow, ncol int, lo, hi []T) ([]Result[T], error) {
	if len(lo) != len(hi) {
		return nil, ErrLevelCount
	}
	g, err := grid.NewContext(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}

	b := NewBander(g)
	out := make([]Result[T], len(lo))
	for i := range lo {
		b.SetLevels(lo[i], hi[i])
		if err = b.Calculate(); err != nil {
			return nil, err
		}
		out[i] = b.Collect()
	}

	return out, nil
}

// Isolines computes one isoline set per threshold in values over the grid
// described by x (length ncol), y (length nrow) and z (length nrow·ncol,
// element (r, c) at offset r + c·nrow). One Liner instance is reused
// across all thresholds.
//
// Returns grid dimension errors or ErrMergeConflict on an internal
// invariant violation.
// Complexity: O(nvalues·nrow·ncol).
func Isolines[T constraints.Float](x, y, z []T, nrow, ncol int, values []T) ([]Result[T], error) {
	g, err := grid.NewContext(x, y, z, nrow, ncol)
	if err != nil {
		return nil, err
	}

	l := NewLiner(g)
	out := make([]Result[T], len(values))
	for i, v := range values {
		l.SetLevel(v)
		if err = l.Calculate(); err != nil {
			return nil, err
		}
		out[i] = l.Collect()
	}

	return out, nil
}
