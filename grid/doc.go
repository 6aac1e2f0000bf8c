// Package grid provides the substrate shared by the contour engines:
// abstract grid-point identifiers, a validated view over the input
// coordinate/value arrays, corner classification against thresholds, and
// linear interpolation of threshold crossings along cell edges.
//
// What:
//
//   - Point identifies a location in abstract grid space: a lattice corner
//     or an interpolated crossing of the low/high threshold on a cell edge.
//   - Context wraps the x/y coordinate vectors and the flat z matrix,
//     validates their dimensions once, and answers O(1) addressing queries.
//   - Binarize / Ternarize encode each lattice corner against one or two
//     thresholds; BandCells / LineCells assemble per-cell case indices.
//   - Coord maps any Point to output (x, y) coordinates, interpolating
//     crossings linearly between the two bracketing corners.
//
// Why:
//
//   - Both the isoline and the isoband engine need identical addressing and
//     classification; keeping it here lets the engines stay pure algorithm.
//   - Points are plain comparable structs, so they serve directly as map
//     keys during stitching — two cells that share an edge produce the very
//     same Point values, which is what makes global merging possible.
//
// Complexity:
//
//   - Binarize/Ternarize: O(nrow·ncol), Memory: O(nrow·ncol).
//   - BandCells/LineCells: O(nrow·ncol), Memory: O((nrow−1)·(ncol−1)).
//   - At/Coord/CentralValue: O(1).
//
// Errors:
//
//   - ErrGridSize: nrow or ncol is not positive.
//   - ErrXLength / ErrYLength / ErrZLength: coordinate or value vectors do
//     not match the declared dimensions.
//   - ErrRaggedRows: FromRows received rows of differing lengths.
package grid
