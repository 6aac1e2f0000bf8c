// Package contour implements the marching-squares contour engines: the
// Liner (isolines at a single threshold) and the Bander (isobands between
// a low and a high threshold), together with the stitching machinery that
// merges per-cell fragments into globally consistent paths.
//
// What:
//
//   - Isolines / Isobands: one-call drivers over a grid and a list of
//     thresholds (pairs), returning one Result per threshold.
//   - Liner / Bander: reusable engines binding a grid.Context; retarget
//     with SetLevel / SetLevels, then Calculate and Collect per contour.
//   - A connectivity map keyed by grid.Point links every emitted vertex to
//     its neighbors; elementary polygons and segments are merged into it
//     cell by cell, and the collectors walk the final graph into paths.
//
// Why:
//
//   - Marching squares is local: each cell contributes at most two line
//     segments or two small polygons (triangle up to octagon). The hard
//     part is global: fragments must fuse across cell borders, two rings
//     of one band may share a corner vertex, and half-assembled polylines
//     sometimes join head-to-head and must be reversed. The stitchers
//     here handle all of it deterministically.
//
// Saddle cells (diagonal corners on the same side of a threshold) are
// disambiguated by the cell's central value, the mean of its corners: a
// central value below the threshold routes the contour along the other
// diagonal. Ties count as "at or above", consistent with the closed-below
// corner coding.
//
// Complexity, for an nrow×ncol grid and one threshold (pair):
//
//   - Calculate: O(nrow·ncol), Memory: O(nrow·ncol).
//   - Collect:   O(V log V) for V stitched vertices (keys are sorted so
//     that path ids are reproducible).
//
// Errors:
//
//   - ErrLevelCount: the lo/hi threshold slices differ in length.
//   - ErrMergeConflict: an unreachable merge configuration, reported with
//     the offending score; indicates a corrupted case table, never user
//     input. Fail fast, no recovery.
//   - Dimension errors from grid.NewContext pass through unchanged.
//
// Results are flat: each Result holds parallel X, Y and ID slices, where
// consecutive entries with the same id form one path. Ids are dense and
// start at 1 within each Result. Isoband rings do not repeat their first
// vertex; closed isolines do, so that the polyline visibly closes.
package contour
