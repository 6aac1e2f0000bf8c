package contour

import (
	"fmt"
	"sort"

	"github.com/jkrumbiegel/isoband/grid"
)

// Connectivity map: the vertex→neighbor graph into which elementary
// polygons and line segments are merged. Each record carries a primary
// prev/next pair plus an alternate pair for the one legal collision case:
// two distinct rings of the same band touching at a corner vertex.

// connection is the per-vertex connectivity record. Unset slots hold
// grid.NoPoint.
type connection struct {
	prev, next   grid.Point // neighbors along the primary chain
	prev2, next2 grid.Point // alternate chain, valid only when alt is set
	alt          bool       // alternate slot occupied
	collected    bool       // primary chain consumed by the collector
	collected2   bool       // alternate chain consumed by the collector
}

// connMap maps each stitched vertex to its connectivity record.
type connMap map[grid.Point]*connection

// newConnection returns a record with every slot unset.
func newConnection() *connection {
	return &connection{prev: grid.NoPoint, next: grid.NoPoint, prev2: grid.NoPoint, next2: grid.NoPoint}
}

// mergePolygon merges one clockwise elementary polygon into m. Scoring of
// all k vertices happens against the pre-merge map state; the staged
// records are committed (and score-3 vertices deleted) only afterwards,
// because earlier writes would interfere with later score computations.
//
// scratch and del are caller-owned staging buffers of capacity ≥ k.
func mergePolygon(m connMap, poly []grid.Point, scratch []connection, del []bool) error {
	k := len(poly)
	for i := 0; i < k; i++ {
		del[i] = false
		st := &scratch[i]
		st.alt = false
		st.collected = false
		st.collected2 = false
		st.next = poly[(i+1)%k]
		st.prev = poly[(i-1+k)%k]

		ex, ok := m[poly[i]]
		if !ok {
			continue // fresh vertex, tentative links stand
		}
		if !ex.alt {
			// Basic scenario: no alternate at this location. A 2-bit score
			// tests the tentative links against the existing record; matching
			// links are opposing traversals of the same edge and cancel.
			score := 0
			if st.next == ex.prev {
				score += 2
			}
			if st.prev == ex.next {
				score++
			}
			switch score {
			case 3: // both cancel, vertex is interior and disappears
				del[i] = true
			case 2: // merge in "next" direction
				st.next = ex.next
			case 1: // merge in "prev" direction
				st.prev = ex.prev
			default: // 0
				// Two polygon vertices share the grid location in an
				// unmergeable configuration; keep both chains.
				st.prev2 = ex.prev
				st.next2 = ex.next
				st.alt = true
			}
			continue
		}
		// Alternate already present: a 4-bit score tests the tentative links
		// against both the existing primary and the alternate chain.
		score := 0
		if st.next == ex.prev2 {
			score += 8
		}
		if st.prev == ex.next2 {
			score += 4
		}
		if st.next == ex.prev {
			score += 2
		}
		if st.prev == ex.next {
			score++
		}
		switch score {
		case 9: // 1001: three-way merge
			st.next = ex.next2
			st.prev = ex.prev
		case 6: // 0110: three-way merge, mirror
			st.next = ex.next
			st.prev = ex.prev2
		case 8: // 1000: two-way merge with the alternate only
			st.next2 = ex.next2
			st.prev2 = st.prev
			st.prev = ex.prev
			st.next = ex.next
			st.alt = true
		case 4: // 0100: two-way merge with the alternate only, mirror
			st.prev2 = ex.prev2
			st.next2 = st.next
			st.prev = ex.prev
			st.next = ex.next
			st.alt = true
		case 2: // 0010: two-way merge with the primary only
			st.next = ex.next
			st.prev2 = ex.prev2
			st.next2 = ex.next2
			st.alt = true
		case 1: // 0001: two-way merge with the primary only, mirror
			st.prev = ex.prev
			st.prev2 = ex.prev2
			st.next2 = ex.next2
			st.alt = true
		default:
			return fmt.Errorf("%w: polygon merge score %d at %v", ErrMergeConflict, score, poly[i])
		}
	}

	// Commit: write staged records, drop fully cancelled vertices.
	for i := 0; i < k; i++ {
		p := poly[i]
		if del[i] {
			delete(m, p)
			continue
		}
		c, ok := m[p]
		if !ok {
			c = new(connection)
			m[p] = c
		}
		*c = scratch[i]
	}

	return nil
}

// mergeSegment merges one ordered isoline segment (a, b) into m. Open
// polyline endpoints have exactly one populated slot; joining two open
// chains may require reversing one of them.
func mergeSegment(m connMap, a, b grid.Point) error {
	ca, okA := m[a]
	cb, okB := m[b]

	score := 0
	if okB {
		score += 2
	}
	if okA {
		score++
	}
	switch score {
	case 0: // completely unconnected segment
		ca = newConnection()
		cb = newConnection()
		ca.next = b
		cb.prev = a
		m[a] = ca
		m[b] = cb
	case 1: // only a seen before; attach b on a's empty slot
		cb = newConnection()
		switch {
		case ca.next == grid.NoPoint:
			ca.next = b
			cb.prev = a
		case ca.prev == grid.NoPoint:
			ca.prev = b
			cb.next = a
		default:
			return fmt.Errorf("%w: segment lands on interior vertex %v", ErrMergeConflict, a)
		}
		m[b] = cb
	case 2: // only b seen before; symmetric
		ca = newConnection()
		switch {
		case cb.next == grid.NoPoint:
			cb.next = a
			ca.prev = b
		case cb.prev == grid.NoPoint:
			cb.prev = a
			ca.next = b
		default:
			return fmt.Errorf("%w: segment lands on interior vertex %v", ErrMergeConflict, b)
		}
		m[a] = ca
	default: // 3: both seen, two open chains join into one
		score2 := 0
		if ca.next == grid.NoPoint {
			score2 += 8
		}
		if ca.prev == grid.NoPoint {
			score2 += 4
		}
		if cb.next == grid.NoPoint {
			score2 += 2
		}
		if cb.prev == grid.NoPoint {
			score2++
		}
		switch score2 {
		case 9: // 1001: head-to-tail
			ca.next = b
			cb.prev = a
		case 6: // 0110: head-to-tail, mirror
			ca.prev = b
			cb.next = a
		case 10: // 1010: head-to-head; reverse the chain hanging off b
			ca.next = b
			cb.next = a
			reverseChain(m, b, false)
		case 5: // 0101: tail-to-tail; reverse the chain hanging off a
			ca.prev = b
			cb.prev = a
			reverseChain(m, a, true)
		default:
			return fmt.Errorf("%w: segment join score %d at %v-%v", ErrMergeConflict, score2, a, b)
		}
	}

	return nil
}

// reverseChain swaps the prev/next slots along the chain starting at p,
// following the pre-swap prev links (fromNext=false) or next links
// (fromNext=true) until an unset link terminates the walk.
func reverseChain(m connMap, p grid.Point, fromNext bool) {
	cur := p
	for cur != grid.NoPoint {
		c := m[cur]
		var old grid.Point
		if fromNext {
			old = c.next
		} else {
			old = c.prev
		}
		c.prev, c.next = c.next, c.prev
		cur = old
	}
}

// sortedKeys returns m's vertices ordered by (row, column, kind), so that
// collection order, and with it path id assignment, is reproducible.
func sortedKeys(m connMap, buf []grid.Point) []grid.Point {
	if cap(buf) >= len(m) {
		buf = buf[:0]
	} else {
		buf = make([]grid.Point, 0, len(m))
	}
	for p := range m {
		buf = append(buf, p)
	}
	sort.Slice(buf, func(i, j int) bool { return buf[i].Less(buf[j]) })

	return buf
}
