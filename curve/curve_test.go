package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertPt(t *testing.T, want, got Pt, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func TestSmoothPathTooFewPointsPanics(t *testing.T) {
	mustPanic(t, func() { SmoothPath(nil) })
	mustPanic(t, func() { SmoothPath([]Pt{{1, 2}}) })
}

func TestSmoothPathTwoPointsIsStraight(t *testing.T) {
	p := SmoothPath([]Pt{{0, 0}, {100, 0}})
	assert.Len(t, p.Segments, 1)

	// A straight span evaluates to the line through start and end.
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		pt := p.PointAt(0, tt)
		assert.InDelta(t, 100*tt, pt.X, eps)
		assert.InDelta(t, 0.0, pt.Y, eps)
	}
}

func TestSmoothPathInterpolatesEveryPoint(t *testing.T) {
	pts := []Pt{{0, 0}, {40, 60}, {90, 10}, {150, 80}, {200, 0}}
	p := SmoothPath(pts)
	assert.Len(t, p.Segments, len(pts)-1)

	for i := range p.Segments {
		assertPt(t, pts[i], p.PointAt(i, 0), "segment %d start", i)
		assertPt(t, pts[i+1], p.PointAt(i, 1), "segment %d end", i)
	}
	assertPt(t, pts[0], p.Start())
	assertPt(t, pts[len(pts)-1], p.End())
}

func TestSmoothPathTangentContinuity(t *testing.T) {
	pts := []Pt{{0, 0}, {50, 50}, {100, 0}, {150, 50}}
	p := SmoothPath(pts)

	// At each interior point the outgoing handle of one segment and the
	// incoming handle of the next are reflections through the point, so
	// the arrival and departure directions agree.
	for i := 0; i < len(p.Segments)-1; i++ {
		in := p.Segments[i]
		out := p.Segments[i+1]
		arriveX := in.P3.X - in.C2.X
		arriveY := in.P3.Y - in.C2.Y
		departX := out.C1.X - out.P0.X
		departY := out.C1.Y - out.P0.Y
		assert.InDelta(t, arriveX, departX, eps)
		assert.InDelta(t, arriveY, departY, eps)
	}
}

func TestFlattenEndpoints(t *testing.T) {
	pts := []Pt{{0, 0}, {30, 40}, {80, 20}}
	p := SmoothPath(pts)
	poly := p.Flatten(8)

	assert.Len(t, poly, len(p.Segments)*8+1)
	assertPt(t, pts[0], poly[0])
	assertPt(t, pts[len(pts)-1], poly[len(poly)-1])

	// Interpolated interior point shows up at a segment boundary.
	assertPt(t, pts[1], poly[8])
}

func TestArrowAngleStraightLine(t *testing.T) {
	p := SmoothPath([]Pt{{0, 0}, {100, 0}})
	angle := ArrowAngle(p.End(), p.Inbound())
	assert.InDelta(t, 0.0, angle, eps)

	p = SmoothPath([]Pt{{0, 0}, {0, 50}})
	angle = ArrowAngle(p.End(), p.Inbound())
	assert.InDelta(t, math.Pi/2, angle, eps)

	// Explicit two-point rule: angle equals atan2(end-start).
	p = SmoothPath([]Pt{{10, 10}, {-20, 40}})
	angle = ArrowAngle(p.End(), p.Inbound())
	assert.InDelta(t, math.Atan2(30, -30), angle, eps)
}

func TestArrowTriangleGeometry(t *testing.T) {
	tip := Pt{100, 0}
	tri := ArrowTriangle(tip, 0, 12)

	assertPt(t, tip, tri[0])

	// Base corners sit behind the tip, symmetric about the heading.
	assert.Less(t, tri[1].X, tip.X)
	assert.Less(t, tri[2].X, tip.X)
	assert.InDelta(t, tri[1].X, tri[2].X, eps)
	assert.InDelta(t, tri[1].Y, -tri[2].Y, eps)

	// Both base corners lie at the requested size from the tip.
	assert.InDelta(t, 12.0, math.Hypot(tri[1].X-tip.X, tri[1].Y-tip.Y), eps)
	assert.InDelta(t, 12.0, math.Hypot(tri[2].X-tip.X, tri[2].Y-tip.Y), eps)
}

func TestScenarioStraightArrow(t *testing.T) {
	// Straight 2-anchor arrow (0,0) -> (100,0): apex at (100,0), heading 0.
	p := SmoothPath([]Pt{{0, 0}, {100, 0}})
	angle := ArrowAngle(p.End(), p.Inbound())
	tri := ArrowTriangle(p.End(), angle, 14)

	assertPt(t, Pt{100, 0}, tri[0])
	assert.InDelta(t, 0.0, angle, eps)
}
