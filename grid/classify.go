package grid

// Corner classification and per-cell case-index assembly.
//
// Both engines binar-/ternarize every lattice corner once, then combine
// the four corner codes of each cell into a single case index. Cells with
// a non-finite corner are forced to index 0 (no contour contribution).

// Binarize writes the one-threshold corner coding into dst and returns it:
// 1 where z ≥ v, 0 otherwise. dst is reused when it has sufficient
// capacity. Complexity: O(nrow·ncol).
func (g *Context[T]) Binarize(v T, dst []uint8) []uint8 {
	dst = resize(dst, len(g.z))
	for i, zv := range g.z {
		if zv >= v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}

	return dst
}

// Ternarize writes the two-threshold corner coding into dst and returns
// it: 0 where z < lo, 1 where lo ≤ z < hi, 2 where z ≥ hi. Intervals are
// closed below and open above. Complexity: O(nrow·ncol).
func (g *Context[T]) Ternarize(lo, hi T, dst []uint8) []uint8 {
	dst = resize(dst, len(g.z))
	for i, zv := range g.z {
		switch {
		case zv >= hi:
			dst[i] = 2
		case zv >= lo:
			dst[i] = 1
		default:
			dst[i] = 0
		}
	}

	return dst
}

// LineCells combines binarized corner codes into the 16-way isoline case
// index per cell, 8·TL + 4·TR + 2·BR + 1·BL, stored at r + c*(nrow−1).
// Cells touching a non-finite corner get index 0.
// Complexity: O(nrow·ncol).
func (g *Context[T]) LineCells(codes []uint8, dst []int) []int {
	dst = resize(dst, g.CellRows()*g.CellCols())
	for r := 0; r < g.nrow-1; r++ {
		for c := 0; c < g.ncol-1; c++ {
			idx := 0
			if g.CellFinite(r, c) {
				idx = 8*int(codes[r+c*g.nrow]) +
					4*int(codes[r+(c+1)*g.nrow]) +
					2*int(codes[r+1+(c+1)*g.nrow]) +
					int(codes[r+1+c*g.nrow])
			}
			dst[r+c*(g.nrow-1)] = idx
		}
	}

	return dst
}

// BandCells combines ternarized corner codes into the 81-way isoband case
// index per cell, 27·TL + 9·TR + 3·BR + 1·BL, stored at r + c*(nrow−1).
// Cells touching a non-finite corner get index 0.
// Complexity: O(nrow·ncol).
func (g *Context[T]) BandCells(codes []uint8, dst []int) []int {
	dst = resize(dst, g.CellRows()*g.CellCols())
	for r := 0; r < g.nrow-1; r++ {
		for c := 0; c < g.ncol-1; c++ {
			idx := 0
			if g.CellFinite(r, c) {
				idx = 27*int(codes[r+c*g.nrow]) +
					9*int(codes[r+(c+1)*g.nrow]) +
					3*int(codes[r+1+(c+1)*g.nrow]) +
					int(codes[r+1+c*g.nrow])
			}
			dst[r+c*(g.nrow-1)] = idx
		}
	}

	return dst
}

// resize returns a slice of length n, reusing buf's storage when possible.
func resize[E any](buf []E, n int) []E {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]E, n)
}
