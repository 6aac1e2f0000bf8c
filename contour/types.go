// Package contour defines the result type and sentinel errors for the
// contour subpackage of github.com/jkrumbiegel/isoband.
package contour

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for contour operations.
var (
	// ErrLevelCount indicates the lo and hi threshold slices differ in length.
	ErrLevelCount = errors.New("contour: lo and hi threshold slices must have the same length")
	// ErrMergeConflict indicates an unreachable merge configuration in the
	// stitcher; this is an internal invariant violation, not a user error.
	ErrMergeConflict = errors.New("contour: unmergeable configuration")
)

// Result holds the paths produced for one threshold (pair) as three
// parallel slices: consecutive entries sharing an ID value form one path.
// Ids are dense positive integers starting at 1, unique within one Result
// but not across Results.
//
// Isoband paths are closed rings whose first vertex is not repeated at the
// end; isoline paths are open polylines, except closed loops, which emit
// their starting vertex twice.
type Result[T constraints.Float] struct {
	X, Y []T
	ID   []int
}

// Len returns the number of emitted vertices.
func (r Result[T]) Len() int { return len(r.ID) }

// Paths returns the number of distinct paths, equal to the largest id.
func (r Result[T]) Paths() int {
	if len(r.ID) == 0 {
		return 0
	}

	return r.ID[len(r.ID)-1]
}

// append adds one vertex to the result under the given path id.
func (r *Result[T]) append(x, y T, id int) {
	r.X = append(r.X, x)
	r.Y = append(r.Y, y)
	r.ID = append(r.ID, id)
}
