package contour

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/jkrumbiegel/isoband/grid"
)

// Liner computes isolines: maximal polylines tracing the locus where the
// grid values equal a single threshold. Values exactly at the threshold
// classify as "at or above". A Liner binds one grid.Context and is reused
// across thresholds.
//
// A Liner is single-threaded: only Cancel may be called from another
// goroutine.
type Liner[T constraints.Float] struct {
	g *grid.Context[T]
	v T

	conns   connMap
	corners []uint8
	cells   []int
	seg     []grid.Point
	keys    []grid.Point

	cancel      atomic.Bool
	interrupted bool
}

// NewLiner returns a Liner bound to g with no level set.
func NewLiner[T constraints.Float](g *grid.Context[T]) *Liner[T] {
	return &Liner[T]{
		g:     g,
		conns: make(connMap),
		seg:   make([]grid.Point, 0, 2),
	}
}

// SetLevel retargets the isoline to threshold v.
func (l *Liner[T]) SetLevel(v T) {
	l.v = v
}

// Cancel requests cooperative cancellation. A calculation observing the
// flag stops between cell iterations and its Collect returns an empty
// Result. Safe for concurrent use.
func (l *Liner[T]) Cancel() {
	l.cancel.Store(true)
}

// Calculate classifies every cell against the current level, emits the
// line segments from the case table, and stitches them into maximal
// chains. Saddle cells (cases 5 and 10) swap interpretation when the
// cell's central value lies below the threshold, routing the two segments
// along the diagonal that stays under the level; a central value exactly
// at the threshold does not swap.
// Complexity: O(nrow·ncol), Memory: O(nrow·ncol).
func (l *Liner[T]) Calculate() error {
	l.reset()
	if l.interrupted {
		return nil
	}

	l.corners = l.g.Binarize(l.v, l.corners)
	l.cells = l.g.LineCells(l.corners, l.cells)
	if l.checkCancel() {
		return nil
	}

	nr, nc := l.g.CellRows(), l.g.CellCols()
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			idx := l.cells[r+c*nr]
			if idx == 5 || idx == 10 {
				if l.g.CentralValue(r, c) < l.v {
					idx = 15 - idx // swap 5 and 10
				}
			}
			for _, s := range lineTable[idx] {
				l.seg = place(s, r, c, l.seg)
				if err := mergeSegment(l.conns, l.seg[0], l.seg[1]); err != nil {
					return err
				}
			}
		}
		if l.checkCancel() {
			return nil
		}
	}

	return nil
}

// Collect walks the stitched chains and emits every polyline once. For
// each un-collected vertex the walk first backtracks along prev links to
// an endpoint (or all the way around a loop), then emits forward along
// next links. Closed loops emit their anchor twice so the polyline
// visibly closes; open lines do not. Keys are sorted so path ids are
// reproducible.
func (l *Liner[T]) Collect() Result[T] {
	var res Result[T]
	if l.interrupted {
		return res
	}

	l.keys = sortedKeys(l.conns, l.keys)
	id := 0
	for _, key := range l.keys {
		if l.conns[key].collected {
			continue
		}
		id++

		// Backtrack to the chain start, or circle around once.
		start := key
		cur := start
		if l.conns[cur].prev != grid.NoPoint {
			for {
				cur = l.conns[cur].prev
				if cur == start || l.conns[cur].prev == grid.NoPoint {
					break
				}
			}
		}

		start = cur
		for {
			cc := l.conns[cur]
			x, y := l.g.Coord(cur, l.v, l.v)
			res.append(x, y, id)
			cc.collected = true
			cur = cc.next
			if cur == start || cur == grid.NoPoint {
				break
			}
		}
		if cur == start {
			// Closed loop: repeat the anchor to close the polyline.
			x, y := l.g.Coord(cur, l.v, l.v)
			res.append(x, y, id)
		}
	}

	return res
}

// reset clears the connectivity map and latches the cancellation flag
// state for the upcoming calculation.
func (l *Liner[T]) reset() {
	clear(l.conns)
	l.interrupted = false
	if l.cancel.Load() {
		l.interrupted = true
	}
}

// checkCancel polls the cancellation flag between major phases.
func (l *Liner[T]) checkCancel() bool {
	if l.interrupted {
		return true
	}
	if l.cancel.Load() {
		l.interrupted = true
		return true
	}

	return false
}
