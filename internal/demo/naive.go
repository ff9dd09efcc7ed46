package demo

import "github.com/gogama/spatial/rtree"

// naiveRange scans every target for boxes intersecting b.
func naiveRange(targets []*Target, b rtree.Box) []*Target {
	r := make([]*Target, 0)
	for _, t := range targets {
		tb := t.Bounds()
		if tb.Intersects(&b) {
			r = append(r, t)
		}
	}
	return r
}

// naiveKNN selects the k targets nearest to p by repeated linear
// scans, nearest first. Ties go to the target listed first.
func naiveKNN(targets []*Target, p rtree.Point, k int) []*Target {
	r := make([]*Target, 0, k)
	chosen := make(map[*Target]bool)
	for len(r) < k && len(r) < len(targets) {
		var best *Target
		var bestDist float64
		for _, t := range targets {
			if chosen[t] {
				continue
			}
			tb := t.Bounds()
			if d := tb.SqrDistance(p); best == nil || d < bestDist {
				best, bestDist = t, d
			}
		}
		chosen[best] = true
		r = append(r, best)
	}
	return r
}
