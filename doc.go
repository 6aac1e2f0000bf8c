// Package isoband computes contour lines (isolines) and contour polygons
// (isobands) from rectangular grids of scalar values, using the marching
// squares algorithm with saddle disambiguation and global stitching of
// per-cell fragments into maximal paths.
//
// 🚀 What is isoband?
//
//	A small, allocation-conscious contouring engine that brings together:
//		• Isolines: the locus where a scalar field equals a threshold
//		• Isobands: closed polygons where the field lies between two thresholds
//		• Saddle resolution via the cell's central value
//		• Local-to-global stitching: per-cell fragments merge into maximal
//		  polylines and closed rings, including the corner case where two
//		  distinct rings of the same band meet at a grid vertex
//
// ✨ Why choose isoband?
//
//   - Deterministic – reproducible path ids and orderings, suitable for
//     golden-output testing
//   - Generic – one engine body serves float32 and float64 grids
//   - Reusable – engines amortize their scratch buffers across thresholds
//   - Pure Go – no cgo, a tiny dependency surface
//
// Everything is organized under two subpackages:
//
//	grid/    — grid addressing, corner classification, threshold interpolation
//	contour/ — the Bander/Liner engines, stitchers, collectors and drivers
//
// Quick example (one band on a 3×3 ramp):
//
//	x := []float64{0, 1, 2}
//	y := []float64{0, 1, 2}
//	z, _, _, _ := grid.FromRows([][]float64{
//		{0, 1, 2},
//		{0, 1, 2},
//		{0, 1, 2},
//	})
//	res, err := contour.Isobands(x, y, z, 3, 3, []float64{0.5}, []float64{1.5})
//
// Dive into the contour package documentation for the full API.
package isoband
