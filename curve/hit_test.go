package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceToSegmentInterior(t *testing.T) {
	// Perpendicular foot lands inside the segment.
	d := DistanceToSegment(Pt{50, 30}, Pt{0, 0}, Pt{100, 0})
	assert.InDelta(t, 30.0, d, eps)
}

func TestDistanceToSegmentClampsToEndpoints(t *testing.T) {
	a := Pt{0, 0}
	b := Pt{100, 0}

	d := DistanceToSegment(Pt{-30, 40}, a, b)
	assert.InDelta(t, 50.0, d, eps, "clamped to start")

	d = DistanceToSegment(Pt{130, -40}, a, b)
	assert.InDelta(t, 50.0, d, eps, "clamped to end")
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	// Zero-length segment degrades to point distance.
	d := DistanceToSegment(Pt{3, 4}, Pt{0, 0}, Pt{0, 0})
	assert.InDelta(t, 5.0, d, eps)
}

func TestNearestSegmentPicksClosest(t *testing.T) {
	anchors := []Pt{{0, 0}, {100, 0}, {100, 100}, {0, 100}}

	assert.Equal(t, 0, NearestSegment(Pt{50, 5}, anchors))
	assert.Equal(t, 1, NearestSegment(Pt{95, 50}, anchors))
	assert.Equal(t, 2, NearestSegment(Pt{50, 95}, anchors))
}

func TestNearestSegmentTieBreaksLow(t *testing.T) {
	// The query point is equidistant from both segments around the shared
	// anchor; the lower index wins.
	anchors := []Pt{{0, 0}, {100, 0}, {200, 0}}
	assert.Equal(t, 0, NearestSegment(Pt{100, 50}, anchors))
}

func TestDistanceToPolyline(t *testing.T) {
	poly := []Pt{{0, 0}, {50, 0}, {50, 50}}

	assert.InDelta(t, 10.0, DistanceToPolyline(Pt{25, 10}, poly), eps)
	assert.InDelta(t, 5.0, DistanceToPolyline(Pt{45, 25}, poly), eps)

	// Single-point polyline.
	assert.InDelta(t, math.Hypot(3, 4), DistanceToPolyline(Pt{3, 4}, []Pt{{0, 0}}), eps)
}
