package curve

import "math"

// DistanceToSegment returns the distance from p to the line segment a-b.
// The projection of p onto the segment's carrier line is clamped to the
// segment before measuring.
func DistanceToSegment(p, a, b Pt) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// NearestSegment returns the index k of the consecutive anchor pair
// (anchors[k], anchors[k+1]) closest to p. Ties resolve to the lowest
// index. Requires at least two anchors.
func NearestSegment(p Pt, anchors []Pt) int {
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < len(anchors)-1; i++ {
		d := DistanceToSegment(p, anchors[i], anchors[i+1])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// DistanceToPolyline returns the minimum distance from p to any consecutive
// pair of pts. Used for hit-testing a flattened curve against a pointer
// position.
func DistanceToPolyline(p Pt, pts []Pt) float64 {
	if len(pts) == 1 {
		return math.Hypot(p.X-pts[0].X, p.Y-pts[0].Y)
	}
	min := math.Inf(1)
	for i := 0; i < len(pts)-1; i++ {
		if d := DistanceToSegment(p, pts[i], pts[i+1]); d < min {
			min = d
		}
	}
	return min
}
