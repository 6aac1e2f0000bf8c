package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrGridSize indicates nrow or ncol is zero or negative.
	ErrGridSize = errors.New("grid: nrow and ncol must be positive")
	// ErrXLength indicates len(x) does not equal ncol.
	ErrXLength = errors.New("grid: number of x coordinates must match number of columns")
	// ErrYLength indicates len(y) does not equal nrow.
	ErrYLength = errors.New("grid: number of y coordinates must match number of rows")
	// ErrZLength indicates len(z) does not equal nrow*ncol.
	ErrZLength = errors.New("grid: number of z values must equal nrow*ncol")
	// ErrRaggedRows indicates FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
)
