// Package grid defines the point identifiers and enums shared by the
// contour engines of github.com/jkrumbiegel/isoband.
package grid

import "fmt"

// Kind classifies a Point within abstract grid space.
type Kind uint8

const (
	// Corner is a point on the original data lattice, at (x[c], y[r]).
	Corner Kind = iota
	// HorzLo is the low-threshold crossing on the horizontal edge from
	// column c to c+1 at row r.
	HorzLo
	// HorzHi is the high-threshold crossing on the same horizontal edge.
	HorzHi
	// VertLo is the low-threshold crossing on the vertical edge from
	// row r to r+1 at column c.
	VertLo
	// VertHi is the high-threshold crossing on the same vertical edge.
	VertHi
)

// String returns a short human-readable tag, used in error messages.
func (k Kind) String() string {
	switch k {
	case Corner:
		return "corner"
	case HorzLo:
		return "h-lo"
	case HorzHi:
		return "h-hi"
	case VertLo:
		return "v-lo"
	case VertHi:
		return "v-hi"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Point identifies a location in abstract grid space: a lattice corner or
// an interpolated threshold crossing anchored at row R, column C. Points
// are comparable structs; equality is structural over all three fields, so
// a Point can key a map directly and two adjacent cells that emit vertices
// along their shared edge produce identical keys.
type Point struct {
	R, C int
	Kind Kind
}

// NoPoint is the off-grid sentinel: it marks an unset prev/next slot
// during stitching. Negative indices never occur for real points.
var NoPoint = Point{R: -1, C: -1, Kind: Corner}

// String renders the point as (c, r, kind), matching the column-first
// convention of the output coordinate space.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d, %s)", p.C, p.R, p.Kind)
}

// Less orders points by row, then column, then kind. The collectors sort
// map keys with it so that path ids are reproducible across runs.
func (p Point) Less(q Point) bool {
	if p.R != q.R {
		return p.R < q.R
	}
	if p.C != q.C {
		return p.C < q.C
	}
	return p.Kind < q.Kind
}
