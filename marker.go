package shotplan

import "math"

// Marker dimensions in scene units.
const (
	// ActorRadius is the actor disc radius.
	ActorRadius = 14.0

	// CameraSize is the camera wedge edge length.
	CameraSize = 20.0

	// HandleRadius is the drawn radius of curve anchor handles.
	HandleRadius = 6.0

	// handleHitSlop pads the handle hit area beyond its drawn radius;
	// handles are small targets on a touch screen.
	handleHitSlop = 6.0

	// lineHitTolerance is the stroke hit distance for curve lines.
	lineHitTolerance = 8.0
)

// NewActorMarker places an actor marker on the board: a colored disc with a
// heading tick, drag-capable and trail-capable.
func NewActorMarker(b *Board, x, y float64, color Color) *Object {
	m := newObject(KindActor)
	m.EntityID = nextEntityID()
	m.X = x
	m.Y = y
	m.Color = color
	m.Evented = true
	m.Selectable = true
	b.Add(m)
	return m
}

// NewCameraMarker places a camera marker on the board: a black wedge whose
// rotation is the camera's facing direction.
func NewCameraMarker(b *Board, x, y, rotation float64) *Object {
	m := newObject(KindCamera)
	m.EntityID = nextEntityID()
	m.X = x
	m.Y = y
	m.Rotation = rotation
	m.Color = ColorBlack
	m.Evented = true
	m.Selectable = true
	b.Add(m)
	return m
}

// NewLabel places a text annotation on the board.
func NewLabel(b *Board, x, y float64, text string, fontSize float64, color Color) *Object {
	l := newObject(KindLabel)
	l.EntityID = nextEntityID()
	l.X = x
	l.Y = y
	l.Text = text
	l.FontSize = fontSize
	l.Color = color
	l.Evented = true
	l.Selectable = true
	b.Add(l)
	return l
}

// MoveObject updates an object's position and reports the modification.
// For free pose objects (markers, labels, ghosts) only; curve handles move
// through Arrow.MoveAnchor so the derived geometry stays consistent.
func (b *Board) MoveObject(o *Object, x, y float64) {
	o.X = x
	o.Y = y
	b.NotifyModified(o)
}

// RotateObject updates an object's rotation and reports the modification.
func (b *Board) RotateObject(o *Object, rotation float64) {
	o.Rotation = rotation
	b.NotifyModified(o)
}

// objectContains is the per-kind hit test in scene coordinates.
func objectContains(o *Object, p Vec2) bool {
	switch o.Kind {
	case KindActor:
		return math.Hypot(p.X-o.X, p.Y-o.Y) <= ActorRadius
	case KindCamera, KindGhost:
		return math.Hypot(p.X-o.X, p.Y-o.Y) <= CameraSize
	case KindControlHandle, KindStartHandle, KindEndHandle:
		return math.Hypot(p.X-o.X, p.Y-o.Y) <= HandleRadius+handleHitSlop
	case KindCurveLine:
		return polylineHit(o.Points, p, lineHitTolerance)
	case KindCurveHead:
		return false // the line is the hit surface for a curve
	case KindLabel:
		w := o.FontSize * 0.6 * float64(len(o.Text))
		h := o.FontSize * 1.4
		return Rect{o.X, o.Y, w, h}.Contains(p.X, p.Y)
	default:
		return false
	}
}

// polylineHit reports whether p lies within tolerance of the polyline.
func polylineHit(pts []Vec2, p Vec2, tolerance float64) bool {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if segDistance(p, a, b) <= tolerance {
			return true
		}
	}
	return false
}

// segDistance is the clamped point-to-segment distance in board space.
// The curve package owns the canonical implementation; this local copy
// avoids converting every polyline point to curve.Pt on the hit path.
func segDistance(p, a, b Vec2) float64 {
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
