package contour

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/jkrumbiegel/isoband/grid"
)

// Bander computes isobands: closed polygons bounding the region where the
// grid values lie in the half-open interval [lo, hi). A Bander binds one
// grid.Context and is reused across threshold pairs; its connectivity map
// and scratch buffers persist between calls to amortize allocation.
//
// A Bander is single-threaded: only Cancel may be called from another
// goroutine.
type Bander[T constraints.Float] struct {
	g      *grid.Context[T]
	lo, hi T

	conns   connMap
	corners []uint8
	cells   []int
	poly    []grid.Point // elementary shape buffer, at most 8 vertices
	scratch []connection
	del     []bool
	keys    []grid.Point

	cancel      atomic.Bool
	interrupted bool
}

// NewBander returns a Bander bound to g with no levels set.
func NewBander[T constraints.Float](g *grid.Context[T]) *Bander[T] {
	return &Bander[T]{
		g:       g,
		conns:   make(connMap),
		poly:    make([]grid.Point, 0, 8),
		scratch: make([]connection, 8),
		del:     make([]bool, 8),
	}
}

// SetLevels retargets the band to the interval [lo, hi).
func (b *Bander[T]) SetLevels(lo, hi T) {
	b.lo, b.hi = lo, hi
}

// Cancel requests cooperative cancellation. A calculation observing the
// flag stops between cell iterations and its Collect returns an empty
// Result; no partial output is emitted. Safe for concurrent use.
func (b *Bander[T]) Cancel() {
	b.cancel.Store(true)
}

// Calculate classifies every cell against the current levels, emits the
// elementary polygons from the case table, and stitches them into the
// connectivity map. An empty or inverted interval (hi ≤ lo) yields an
// empty band. Returns ErrMergeConflict on an internal invariant
// violation.
// Complexity: O(nrow·ncol), Memory: O(nrow·ncol).
func (b *Bander[T]) Calculate() error {
	b.reset()
	if b.interrupted {
		return nil
	}
	if b.hi <= b.lo {
		return nil // the interval [lo, hi) is empty
	}

	b.corners = b.g.Ternarize(b.lo, b.hi, b.corners)
	b.cells = b.g.BandCells(b.corners, b.cells)
	if b.checkCancel() {
		return nil
	}

	nr, nc := b.g.CellRows(), b.g.CellCols()
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			e := &bandTable[b.cells[r+c*nr]]
			shapes := e.shapes
			if e.belowLo != nil || e.aboveHi != nil {
				vc := b.g.CentralValue(r, c)
				shapes = e.pick(vc < b.lo, vc >= b.hi)
			}
			for _, s := range shapes {
				b.poly = place(s, r, c, b.poly)
				if err := mergePolygon(b.conns, b.poly, b.scratch, b.del); err != nil {
					return err
				}
			}
		}
		if b.checkCancel() {
			return nil
		}
	}

	return nil
}

// Collect walks the stitched connectivity map and emits every ring once.
// Rings are implicit: the closing vertex is not repeated. Vertices where
// two rings touch are visited twice, once per chain. Keys are sorted so
// path ids are reproducible.
func (b *Bander[T]) Collect() Result[T] {
	var res Result[T]
	if b.interrupted {
		return res
	}

	b.keys = sortedKeys(b.conns, b.keys)
	id := 0
	for _, start := range b.keys {
		sc := b.conns[start]
		if (sc.collected && !sc.alt) || (sc.collected && sc.collected2 && sc.alt) {
			continue // fully consumed
		}
		id++

		cur := start
		prev := sc.prev
		// An uncollected alternate chain is traversed first.
		if sc.alt && !sc.collected2 {
			prev = sc.prev2
		}
		for {
			cc := b.conns[cur]
			x, y := b.g.Coord(cur, b.lo, b.hi)
			res.append(x, y, id)

			// Choose the slot whose recorded prev matches the walk.
			if cc.alt && cc.prev2 == prev {
				cc.collected2 = true
				prev, cur = cur, cc.next2
			} else {
				cc.collected = true
				prev, cur = cur, cc.next
			}
			if cur == start {
				break
			}
		}
	}

	return res
}

// reset clears the connectivity map and latches the cancellation flag
// state for the upcoming calculation.
func (b *Bander[T]) reset() {
	clear(b.conns)
	b.interrupted = false
	if b.cancel.Load() {
		b.interrupted = true
	}
}

// checkCancel polls the cancellation flag between major phases.
func (b *Bander[T]) checkCancel() bool {
	if b.interrupted {
		return true
	}
	if b.cancel.Load() {
		b.interrupted = true
		return true
	}

	return false
}
