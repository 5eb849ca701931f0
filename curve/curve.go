/*
Package curve is the pure geometry engine behind movement arrows and trail
segments. It builds smooth piecewise-cubic paths through an ordered point
sequence, derives arrowhead placement from the path's final tangent, and
answers nearest-segment queries used for control-point insertion.

The package has no dependencies on the rest of the module and no state;
every function is deterministic in its inputs.
*/
package curve

import "math"

// Pt is a 2D point in scene coordinates.
type Pt struct {
	X, Y float64
}

// Segment is one cubic Bezier span. P0 and P3 lie on the curve; C1 and C2
// are the off-curve control handles.
type Segment struct {
	P0, C1, C2, P3 Pt
}

// Path is a piecewise-cubic curve through an ordered point sequence.
// Segment k starts at input point k and ends at input point k+1.
type Path struct {
	Segments []Segment
}

// headAngleDeg is the half-opening of the arrowhead triangle.
const headAngleDeg = 30.0

// smoothTension scales the Catmull-Rom tangents when deriving Bezier
// handles. 1/6 reproduces the standard uniform Catmull-Rom conversion.
const smoothTension = 1.0 / 6.0

// SmoothPath builds a path that passes through every point in order.
//
// With exactly two points the result is a single straight span. With three
// or more, each consecutive pair (p1, p2) becomes a cubic span whose handles
// are derived from the neighboring points p0 and p3 (clamped to p1/p2 at the
// ends), which makes the curve interpolate every input point and stay
// tangent-continuous at interior points.
//
// Panics if fewer than two points are supplied; callers always have at least
// a start and an end anchor.
func SmoothPath(points []Pt) Path {
	if len(points) < 2 {
		panic("curve: SmoothPath needs at least 2 points")
	}

	if len(points) == 2 {
		return Path{Segments: []Segment{straightSpan(points[0], points[1])}}
	}

	segs := make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		p0 := p1
		if i > 0 {
			p0 = points[i-1]
		}
		p3 := p2
		if i+2 < len(points) {
			p3 = points[i+2]
		}
		segs = append(segs, Segment{
			P0: p1,
			C1: Pt{p1.X + (p2.X-p0.X)*smoothTension, p1.Y + (p2.Y-p0.Y)*smoothTension},
			C2: Pt{p2.X - (p3.X-p1.X)*smoothTension, p2.Y - (p3.Y-p1.Y)*smoothTension},
			P3: p2,
		})
	}
	return Path{Segments: segs}
}

// straightSpan returns a cubic span that evaluates to the straight line
// from a to b, with handles placed at the one-third points.
func straightSpan(a, b Pt) Segment {
	return Segment{
		P0: a,
		C1: Pt{a.X + (b.X-a.X)/3, a.Y + (b.Y-a.Y)/3},
		C2: Pt{a.X + (b.X-a.X)*2/3, a.Y + (b.Y-a.Y)*2/3},
		P3: b,
	}
}

// Start returns the first on-curve point.
func (p Path) Start() Pt {
	return p.Segments[0].P0
}

// End returns the final on-curve point (the arrow tip).
func (p Path) End() Pt {
	return p.Segments[len(p.Segments)-1].P3
}

// Inbound returns the handle feeding the final on-curve point. The vector
// from Inbound() to End() is the curve's arrival direction, which orients
// an arrowhead at the tip. For a straight two-point path this degenerates
// to a point on the line through start and end, so the angle is exact.
func (p Path) Inbound() Pt {
	return p.Segments[len(p.Segments)-1].C2
}

// PointAt evaluates segment seg at parameter t in [0, 1].
func (p Path) PointAt(seg int, t float64) Pt {
	s := p.Segments[seg]
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Pt{
		X: b0*s.P0.X + b1*s.C1.X + b2*s.C2.X + b3*s.P3.X,
		Y: b0*s.P0.Y + b1*s.C1.Y + b2*s.C2.Y + b3*s.P3.Y,
	}
}

// Flatten samples the path into a polyline with stepsPerSegment subdivisions
// per cubic span. The result starts at Start() and ends at End().
func (p Path) Flatten(stepsPerSegment int) []Pt {
	if stepsPerSegment < 1 {
		stepsPerSegment = 1
	}
	out := make([]Pt, 0, len(p.Segments)*stepsPerSegment+1)
	out = append(out, p.Start())
	for i := range p.Segments {
		for s := 1; s <= stepsPerSegment; s++ {
			out = append(out, p.PointAt(i, float64(s)/float64(stepsPerSegment)))
		}
	}
	return out
}

// ArrowAngle returns the heading of an arrowhead whose tip sits at tip and
// whose shaft arrives from inbound. The angle is atan2 of inbound→tip, in
// radians.
func ArrowAngle(tip, inbound Pt) float64 {
	return math.Atan2(tip.Y-inbound.Y, tip.X-inbound.X)
}

// ArrowTriangle returns the three corners of an isosceles arrowhead: the
// apex at tip, and two base corners swept back from the heading by ±30
// degrees at the given size.
func ArrowTriangle(tip Pt, angle, size float64) [3]Pt {
	spread := headAngleDeg * math.Pi / 180
	return [3]Pt{
		tip,
		{tip.X - size*math.Cos(angle-spread), tip.Y - size*math.Sin(angle-spread)},
		{tip.X - size*math.Cos(angle+spread), tip.Y - size*math.Sin(angle+spread)},
	}
}
