package contour

import "github.com/jkrumbiegel/isoband/grid"

// Static case tables.
//
// Every cell case maps to an ordered list of elementary vertices given as
// offsets relative to the cell origin (r, c). Two properties carry the
// whole stitching design:
//
//  1. All isoband shapes are listed clockwise, so two adjacent cells
//     traverse their shared edge in opposite directions, which is exactly
//     the cancellation the polygon merge exploits.
//  2. Vertices on a shared edge use identical (row, column, kind)
//     offsets in both cells, so they hash to the same map key.
//
// Saddle cases carry alternate shape lists selected by comparing the
// cell's central value against the thresholds.

// tv is one table vertex: row/column offsets in {0, 1} plus the kind.
type tv struct {
	dr, dc int
	kind   grid.Kind
}

// shape is one elementary polygon (3–8 vertices) or segment (2 vertices).
type shape []tv

const (
	cnr = grid.Corner
	hlo = grid.HorzLo
	hhi = grid.HorzHi
	vlo = grid.VertLo
	vhi = grid.VertHi
)

// bandEntry describes one of the 81 isoband cases. shapes is the default
// emission; belowLo/aboveHi, when non-nil, replace it for saddle cells
// whose central value is below the low / at-or-above the high threshold.
type bandEntry struct {
	shapes  []shape
	belowLo []shape
	aboveHi []shape
}

// pick selects the shape list for a cell given its saddle comparisons.
func (e *bandEntry) pick(belowLo, aboveHi bool) []shape {
	if e.belowLo != nil && belowLo {
		return e.belowLo
	}
	if e.aboveHi != nil && aboveHi {
		return e.aboveHi
	}

	return e.shapes
}

// bandTable maps the 81-way ternary cell index (27·TL + 9·TR + 3·BR + BL)
// to its elementary shapes. Indices 0 (0000) and 80 (2222) emit nothing.
var bandTable = [81]bandEntry{
	// single triangle
	1:  {shapes: []shape{{{0, 0, vlo}, {1, 0, hlo}, {1, 0, cnr}}}},                 // 0001
	3:  {shapes: []shape{{{0, 1, vlo}, {1, 1, cnr}, {1, 0, hlo}}}},                 // 0010
	9:  {shapes: []shape{{{0, 0, hlo}, {0, 1, cnr}, {0, 1, vlo}}}},                 // 0100
	27: {shapes: []shape{{{0, 0, vlo}, {0, 0, cnr}, {0, 0, hlo}}}},                 // 1000
	79: {shapes: []shape{{{0, 0, vhi}, {1, 0, hhi}, {1, 0, cnr}}}},                 // 2221
	77: {shapes: []shape{{{0, 1, vhi}, {1, 1, cnr}, {1, 0, hhi}}}},                 // 2212
	71: {shapes: []shape{{{0, 0, hhi}, {0, 1, cnr}, {0, 1, vhi}}}},                 // 2122
	53: {shapes: []shape{{{0, 0, vhi}, {0, 0, cnr}, {0, 0, hhi}}}},                 // 1222

	// single trapezoid
	78: {shapes: []shape{{{0, 0, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}}},    // 2220
	74: {shapes: []shape{{{1, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}}}},    // 2202
	62: {shapes: []shape{{{0, 1, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}}}},    // 2022
	26: {shapes: []shape{{{0, 0, hhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}}}},    // 0222
	2:  {shapes: []shape{{{0, 0, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}}},    // 0002
	6:  {shapes: []shape{{{1, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}}}},    // 0020
	18: {shapes: []shape{{{0, 1, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}}}},    // 0200
	54: {shapes: []shape{{{0, 0, hlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}}}},    // 2000

	// single rectangle
	4:  {shapes: []shape{{{0, 0, vlo}, {0, 1, vlo}, {1, 1, cnr}, {1, 0, cnr}}}},    // 0011
	12: {shapes: []shape{{{0, 0, hlo}, {0, 1, cnr}, {1, 1, cnr}, {1, 0, hlo}}}},    // 0110
	36: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vlo}, {0, 0, vlo}}}},    // 1100
	28: {shapes: []shape{{{0, 0, hlo}, {1, 0, hlo}, {1, 0, cnr}, {0, 0, cnr}}}},    // 1001
	76: {shapes: []shape{{{0, 0, vhi}, {0, 1, vhi}, {1, 1, cnr}, {1, 0, cnr}}}},    // 2211
	68: {shapes: []shape{{{0, 0, hhi}, {0, 1, cnr}, {1, 1, cnr}, {1, 0, hhi}}}},    // 2112
	44: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vhi}, {0, 0, vhi}}}},    // 1122
	52: {shapes: []shape{{{0, 0, hhi}, {1, 0, hhi}, {1, 0, cnr}, {0, 0, cnr}}}},    // 1221
	72: {shapes: []shape{{{0, 0, vhi}, {0, 1, vhi}, {0, 1, vlo}, {0, 0, vlo}}}},    // 2200
	56: {shapes: []shape{{{0, 0, hhi}, {0, 0, hlo}, {1, 0, hlo}, {1, 0, hhi}}}},    // 2002
	8:  {shapes: []shape{{{0, 0, vlo}, {0, 1, vlo}, {0, 1, vhi}, {0, 0, vhi}}}},    // 0022
	24: {shapes: []shape{{{0, 0, hlo}, {0, 0, hhi}, {1, 0, hhi}, {1, 0, hlo}}}},    // 0220

	// single square
	40: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {1, 1, cnr}, {1, 0, cnr}}}},    // 1111

	// single pentagon
	49: {shapes: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {1, 1, cnr}, {1, 0, cnr}}}}, // 1211
	67: {shapes: []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 1, cnr}, {1, 1, cnr}}}}, // 2111
	41: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}}}}, // 1112
	43: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, cnr}}}}, // 1121
	31: {shapes: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {1, 1, cnr}, {1, 0, cnr}}}}, // 1011
	13: {shapes: []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}, {0, 1, cnr}, {1, 1, cnr}}}}, // 0111
	39: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}}}}, // 1110
	37: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, cnr}}}}, // 1101
	45: {shapes: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {0, 0, vlo}}}}, // 1200
	15: {shapes: []shape{{{0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, hlo}}}}, // 0120
	5:  {shapes: []shape{{{0, 0, vlo}, {0, 1, vlo}, {1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}}}}, // 0012
	55: {shapes: []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {1, 0, hlo}}}}, // 2001
	35: {shapes: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {0, 0, vhi}}}}, // 1022
	65: {shapes: []shape{{{0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, hhi}}}}, // 2102
	75: {shapes: []shape{{{0, 0, vhi}, {0, 1, vhi}, {1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}}}}, // 2210
	25: {shapes: []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {1, 0, hhi}}}}, // 0221
	29: {shapes: []shape{{{0, 0, cnr}, {0, 0, hlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}}}, // 1002
	63: {shapes: []shape{{{0, 1, cnr}, {0, 1, vlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}}}}, // 2100
	21: {shapes: []shape{{{1, 1, cnr}, {1, 0, hlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}}}}, // 0210
	7:  {shapes: []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}}}}, // 0021
	51: {shapes: []shape{{{0, 0, cnr}, {0, 0, hhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}}}, // 1220
	17: {shapes: []shape{{{0, 1, cnr}, {0, 1, vhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}}}}, // 0122
	59: {shapes: []shape{{{1, 1, cnr}, {1, 0, hhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}}}}, // 2012
	73: {shapes: []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}}}}, // 2201

	// single hexagon
	22: {shapes: []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}, {1, 1, cnr}}}}, // 0211
	66: {shapes: []shape{{{0, 1, cnr}, {1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}}}}, // 2110
	38: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}}}, // 1102
	34: {shapes: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, cnr}}}}, // 1021
	58: {shapes: []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}, {1, 1, cnr}}}}, // 2011
	14: {shapes: []shape{{{0, 1, cnr}, {1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}}}}, // 0112
	42: {shapes: []shape{{{0, 0, cnr}, {0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}}}, // 1120
	46: {shapes: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, cnr}}}}, // 1201
	64: {shapes: []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}}}}, // 2101
	16: {shapes: []shape{{{0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}}}}, // 0121
	32: {shapes: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}}}}, // 1012
	48: {shapes: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}}}}, // 1210

	// 6-sided saddle: hexagon, or two triangles when the center falls
	// outside the band
	10: { // 0101
		shapes:  []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}, {0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}}},
		belowLo: []shape{{{1, 0, cnr}, {0, 0, vlo}, {1, 0, hlo}}, {{0, 1, cnr}, {0, 1, vlo}, {0, 0, hlo}}},
	},
	30: { // 1010
		shapes:  []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}}},
		belowLo: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 0, vlo}}, {{1, 1, cnr}, {1, 0, hlo}, {0, 1, vlo}}},
	},
	70: { // 2121
		shapes:  []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}}},
		aboveHi: []shape{{{1, 0, cnr}, {0, 0, vhi}, {1, 0, hhi}}, {{0, 1, cnr}, {0, 1, vhi}, {0, 0, hhi}}},
	},
	50: { // 1212
		shapes:  []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}}},
		aboveHi: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 0, vhi}}, {{1, 1, cnr}, {1, 0, hhi}, {0, 1, vhi}}},
	},

	// 7-sided saddle: heptagon, or a triangle plus a trapezoid
	69: { // 2120
		shapes:  []shape{{{0, 1, cnr}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}}},
		aboveHi: []shape{{{0, 1, cnr}, {0, 1, vhi}, {0, 0, hhi}}, {{0, 0, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}},
	},
	61: { // 2021
		shapes:  []shape{{{1, 0, cnr}, {0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}}},
		aboveHi: []shape{{{1, 0, cnr}, {0, 0, vhi}, {1, 0, hhi}}, {{0, 1, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}}},
	},
	47: { // 1202
		shapes:  []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}},
		aboveHi: []shape{{{0, 0, cnr}, {0, 0, hhi}, {0, 0, vhi}}, {{1, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}}},
	},
	23: { // 0212
		shapes:  []shape{{{1, 1, cnr}, {1, 0, hhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}}},
		aboveHi: []shape{{{1, 1, cnr}, {1, 0, hhi}, {0, 1, vhi}}, {{0, 0, hhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}}},
	},
	11: { // 0102
		shapes:  []shape{{{0, 1, cnr}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}, {0, 0, vlo}, {0, 0, hlo}}},
		belowLo: []shape{{{0, 1, cnr}, {0, 1, vlo}, {0, 0, hlo}}, {{0, 0, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}},
	},
	19: { // 0201
		shapes:  []shape{{{1, 0, cnr}, {0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}}},
		belowLo: []shape{{{1, 0, cnr}, {0, 0, vlo}, {1, 0, hlo}}, {{0, 1, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}}},
	},
	33: { // 1020
		shapes:  []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}},
		belowLo: []shape{{{0, 0, cnr}, {0, 0, hlo}, {0, 0, vlo}}, {{1, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}}},
	},
	57: { // 2010
		shapes:  []shape{{{1, 1, cnr}, {1, 0, hlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}}},
		belowLo: []shape{{{1, 1, cnr}, {1, 0, hlo}, {0, 1, vlo}}, {{0, 0, hlo}, {0, 0, vlo}, {0, 0, vhi}, {0, 0, hhi}}},
	},

	// 8-sided saddle: octagon, or two quadrilaterals paired by the side
	// of the band the center falls on
	60: { // 2020
		shapes: []shape{{{0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}, {0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}}},
		belowLo: []shape{
			{{0, 0, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 0, vlo}},
			{{0, 1, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 1, vlo}},
		},
		aboveHi: []shape{
			{{0, 0, vhi}, {1, 0, hhi}, {1, 0, hlo}, {0, 0, vlo}},
			{{0, 1, vhi}, {0, 0, hhi}, {0, 0, hlo}, {0, 1, vlo}},
		},
	},
	20: { // 0202
		shapes: []shape{{{0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}, {0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}}},
		belowLo: []shape{
			{{0, 0, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 0, vhi}},
			{{0, 1, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 1, vhi}},
		},
		aboveHi: []shape{
			{{0, 0, vlo}, {0, 0, hlo}, {0, 0, hhi}, {0, 0, vhi}},
			{{0, 1, vlo}, {1, 0, hlo}, {1, 0, hhi}, {0, 1, vhi}},
		},
	},
}

// lineTable maps the 16-way binary cell index (8·TL + 4·TR + 2·BR + BL)
// to its line segments. Saddle cells (5 and 10) emit two segments; the
// index swap for a low central value happens before the lookup.
var lineTable = [16][]shape{
	1:  {{{0, 0, vlo}, {1, 0, hlo}}},
	2:  {{{0, 1, vlo}, {1, 0, hlo}}},
	3:  {{{0, 0, vlo}, {0, 1, vlo}}},
	4:  {{{0, 0, hlo}, {0, 1, vlo}}},
	5:  {{{0, 1, vlo}, {1, 0, hlo}}, {{0, 0, hlo}, {0, 0, vlo}}},
	6:  {{{0, 0, hlo}, {1, 0, hlo}}},
	7:  {{{0, 0, hlo}, {0, 0, vlo}}},
	8:  {{{0, 0, hlo}, {0, 0, vlo}}},
	9:  {{{0, 0, hlo}, {1, 0, hlo}}},
	10: {{{0, 0, vlo}, {1, 0, hlo}}, {{0, 0, hlo}, {0, 1, vlo}}},
	11: {{{0, 0, hlo}, {0, 1, vlo}}},
	12: {{{0, 0, vlo}, {0, 1, vlo}}},
	13: {{{0, 1, vlo}, {1, 0, hlo}}},
	14: {{{0, 0, vlo}, {1, 0, hlo}}},
}

// place materializes a table shape at cell (r, c) into dst, reusing its
// storage; a capacity of 8 covers every elementary shape, and dst grows
// when its capacity is smaller than the shape.
func place(s shape, r, c int, dst []grid.Point) []grid.Point {
	dst = dst[:0]
	for _, v := range s {
		dst = append(dst, grid.Point{R: r + v.dr, C: c + v.dc, Kind: v.kind})
	}

	return dst
}
