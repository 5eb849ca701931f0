package shotplan

import (
	"github.com/phanxgames/shotplan/curve"
)

// Tunables for new arrows. All distances are in scene units.
const (
	// defaultBendRatio is the perpendicular offset of a new arrow's first
	// control point relative to its start-end distance. A fresh arrow is
	// never perfectly straight, so the user always has a visible bend
	// handle to grab.
	defaultBendRatio = 0.2

	// DefaultInsertMinDist rejects control-point insertion closer than this
	// to any existing anchor, preventing degenerate zero-length spans.
	DefaultInsertMinDist = 20.0

	// defaultHeadSize is the arrowhead edge length.
	defaultHeadSize = 14.0

	// flattenSteps is the polyline resolution per cubic span used for
	// rendering and line hit-testing.
	flattenSteps = 16
)

// Style holds the visual properties of a curve line.
type Style struct {
	Color       Color
	StrokeWidth float64
	Dash        Dash
}

// HeadPolicy selects arrowhead rendering for an Arrow.
type HeadPolicy uint8

const (
	HeadNone HeadPolicy = iota // no arrowhead (actor trails)
	HeadEnd                    // arrowhead at the end anchor (camera trails, free arrows)
)

// AnchorRef identifies one anchor of an Arrow: the start, the end, or an
// interior control point by index.
type AnchorRef struct {
	kind  uint8
	index int
}

const (
	anchorStart uint8 = iota
	anchorEnd
	anchorControl
)

// AnchorStart refers to an arrow's start anchor.
var AnchorStart = AnchorRef{kind: anchorStart}

// AnchorEnd refers to an arrow's end anchor.
var AnchorEnd = AnchorRef{kind: anchorEnd}

// ControlAnchor refers to the interior control point at index i.
func ControlAnchor(i int) AnchorRef {
	return AnchorRef{kind: anchorControl, index: i}
}

// Arrow is one movement arrow or trail segment: the owner of a full anchor
// list (start, ordered interior control points, end) and of every derived
// visual part on the Board: one curve line, an optional arrowhead, a start
// and end handle, and one handle per control point.
//
// The derived path is always regenerated from the anchor list, never patched
// incrementally, so the rendered state cannot diverge from the anchor data.
// Line and arrowhead objects are replaced wholesale on each rebuild; handle
// objects keep their identity so an in-progress drag is never interrupted.
type Arrow struct {
	EntityID uint32

	Start    Vec2
	End      Vec2
	Controls []Vec2 // never empty after creation
	Style    Style
	Head     HeadPolicy
	HeadSize float64

	// InsertMinDist is the rejection radius for InsertControlPoint.
	InsertMinDist float64

	// Chain linkage; zero values for a free-standing arrow.
	ChainID      string
	SegmentIndex int

	board       *Board
	line        *Object
	head        *Object
	startHandle *Object
	endHandle   *Object
	handles     []*Object // one per control point, same order

	flat    []curve.Pt // cached flattened polyline, scene space
	removed bool
}

// NewArrow creates a movement arrow from start to end, places its initial
// control point at the perpendicular offset from the segment midpoint
// (magnitude 20% of the segment length, left-hand side), builds all visual
// parts, and adds them to the board.
func NewArrow(b *Board, start, end Vec2, style Style, head HeadPolicy) *Arrow {
	a := &Arrow{
		EntityID:      nextEntityID(),
		Start:         start,
		End:           end,
		Controls:      []Vec2{initialBend(start, end)},
		Style:         style,
		Head:          head,
		HeadSize:      defaultHeadSize,
		InsertMinDist: b.InsertMinDist,
		board:         b,
	}
	a.buildParts()
	b.arrows[a.EntityID] = a
	return a
}

// newArrowRaw rebuilds an Arrow from snapshot data: explicit entity id,
// anchor list, and chain linkage, without inventing a bend point.
func newArrowRaw(b *Board, entityID uint32, start, end Vec2, controls []Vec2,
	style Style, head HeadPolicy, headSize float64, chainID string, segmentIndex int) *Arrow {
	a := &Arrow{
		EntityID:      entityID,
		Start:         start,
		End:           end,
		Controls:      controls,
		Style:         style,
		Head:          head,
		HeadSize:      headSize,
		InsertMinDist: b.InsertMinDist,
		ChainID:       chainID,
		SegmentIndex:  segmentIndex,
		board:         b,
	}
	bumpEntityID(entityID)
	a.buildParts()
	b.arrows[a.EntityID] = a
	return a
}

// initialBend returns the default first control point: segment midpoint
// offset to the left-hand perpendicular by 20% of the segment length.
func initialBend(start, end Vec2) Vec2 {
	dx := end.X - start.X
	dy := end.Y - start.Y
	return Vec2{
		X: (start.X+end.X)/2 + dy*defaultBendRatio,
		Y: (start.Y+end.Y)/2 - dx*defaultBendRatio,
	}
}

// anchors returns the full traversal sequence [start, controls..., end].
func (a *Arrow) anchors() []curve.Pt {
	pts := make([]curve.Pt, 0, len(a.Controls)+2)
	pts = append(pts, curve.Pt{X: a.Start.X, Y: a.Start.Y})
	for _, c := range a.Controls {
		pts = append(pts, curve.Pt{X: c.X, Y: c.Y})
	}
	pts = append(pts, curve.Pt{X: a.End.X, Y: a.End.Y})
	return pts
}

// buildParts constructs every visual object from scratch and adds them to
// the board: line, arrowhead per policy, start/end handles, control handles.
func (a *Arrow) buildParts() {
	a.rebuildPath()

	a.startHandle = a.newHandle(KindStartHandle, a.Start, 0)
	a.endHandle = a.newHandle(KindEndHandle, a.End, 0)
	a.handles = a.handles[:0]
	for i, c := range a.Controls {
		a.handles = append(a.handles, a.newHandle(KindControlHandle, c, i))
	}
}

// newHandle creates and adds one handle object.
func (a *Arrow) newHandle(kind Kind, pos Vec2, index int) *Object {
	h := newObject(kind)
	h.EntityID = a.EntityID
	h.ChainID = a.ChainID
	h.SegmentIndex = a.SegmentIndex
	h.X = pos.X
	h.Y = pos.Y
	h.HandleIndex = index
	h.Color = a.Style.Color
	h.Evented = true
	h.Selectable = true
	a.board.Add(h)
	return h
}

// rebuildPath regenerates the curve line and arrowhead from the current
// anchors. The previous line and head objects are removed and fresh ones
// added; handles are untouched.
func (a *Arrow) rebuildPath() {
	if a.line != nil {
		a.board.Remove(a.line)
		a.line = nil
	}
	if a.head != nil {
		a.board.Remove(a.head)
		a.head = nil
	}

	path := curve.SmoothPath(a.anchors())
	a.flat = path.Flatten(flattenSteps)

	line := newObject(KindCurveLine)
	line.EntityID = a.EntityID
	line.ChainID = a.ChainID
	line.SegmentIndex = a.SegmentIndex
	line.Color = a.Style.Color
	line.StrokeWidth = a.Style.StrokeWidth
	line.Dash = a.Style.Dash
	line.Evented = true
	line.Selectable = true
	line.Points = make([]Vec2, len(a.flat))
	for i, p := range a.flat {
		line.Points[i] = Vec2{p.X, p.Y}
	}
	a.board.Add(line)
	a.line = line

	if a.Head == HeadEnd {
		angle := curve.ArrowAngle(path.End(), path.Inbound())
		tri := curve.ArrowTriangle(path.End(), angle, a.HeadSize)
		head := newObject(KindCurveHead)
		head.EntityID = a.EntityID
		head.ChainID = a.ChainID
		head.SegmentIndex = a.SegmentIndex
		head.Color = a.Style.Color
		head.Points = []Vec2{
			{tri[0].X, tri[0].Y},
			{tri[1].X, tri[1].Y},
			{tri[2].X, tri[2].Y},
		}
		a.board.Add(head)
		a.head = head
	}
}

// MoveAnchor updates the referenced anchor and regenerates the path and
// arrowhead. The handle object for the moved anchor keeps its identity and
// is repositioned in place, so a drag gesture holding it is not interrupted.
//
// Panics if the arrow has been removed or the control index is out of range.
func (a *Arrow) MoveAnchor(ref AnchorRef, pos Vec2) {
	if a.removed {
		panic("shotplan: MoveAnchor on removed arrow")
	}
	switch ref.kind {
	case anchorStart:
		a.Start = pos
		a.startHandle.X = pos.X
		a.startHandle.Y = pos.Y
		a.board.NotifyModified(a.startHandle)
	case anchorEnd:
		a.End = pos
		a.endHandle.X = pos.X
		a.endHandle.Y = pos.Y
		a.board.NotifyModified(a.endHandle)
	case anchorControl:
		if ref.index < 0 || ref.index >= len(a.Controls) {
			panic("shotplan: control anchor index out of range")
		}
		a.Controls[ref.index] = pos
		h := a.handles[ref.index]
		h.X = pos.X
		h.Y = pos.Y
		a.board.NotifyModified(h)
	}
	a.rebuildPath()
}

// InsertControlPoint inserts pos as a new interior control point on the
// segment of the anchor sequence nearest to it. Returns false without any
// mutation when pos lies within InsertMinDist of an existing anchor; an
// imprecise tap near a handle is expected user behavior, not an error.
//
// All control handles are rebuilt with recomputed indices afterward.
func (a *Arrow) InsertControlPoint(pos Vec2) bool {
	if a.removed {
		panic("shotplan: InsertControlPoint on removed arrow")
	}
	anchors := a.anchors()
	p := curve.Pt{X: pos.X, Y: pos.Y}
	for _, q := range anchors {
		if dx, dy := p.X-q.X, p.Y-q.Y; dx*dx+dy*dy < a.InsertMinDist*a.InsertMinDist {
			return false
		}
	}

	// Segment k runs from anchors[k] to anchors[k+1]; since the start anchor
	// occupies position 0, segment k maps to interior insertion index k.
	k := curve.NearestSegment(p, anchors)
	a.Controls = append(a.Controls, Vec2{})
	copy(a.Controls[k+1:], a.Controls[k:])
	a.Controls[k] = pos

	a.rebuildControlHandles()
	a.rebuildPath()
	return true
}

// rebuildControlHandles discards every control handle object and recreates
// the set with sequential indices matching Controls.
func (a *Arrow) rebuildControlHandles() {
	for _, h := range a.handles {
		a.board.Remove(h)
	}
	a.handles = a.handles[:0]
	for i, c := range a.Controls {
		a.handles = append(a.handles, a.newHandle(KindControlHandle, c, i))
	}
}

// Remove deletes the arrow and every derived part (line, arrowhead, all
// handles) in one operation. A removed arrow is terminal; further entity
// operations on it panic.
func (a *Arrow) Remove() {
	if a.removed {
		return
	}
	a.removed = true
	delete(a.board.arrows, a.EntityID)
	if a.line != nil {
		a.board.Remove(a.line)
		a.line = nil
	}
	if a.head != nil {
		a.board.Remove(a.head)
		a.head = nil
	}
	a.board.Remove(a.startHandle)
	a.board.Remove(a.endHandle)
	a.startHandle = nil
	a.endHandle = nil
	for _, h := range a.handles {
		a.board.Remove(h)
	}
	a.handles = nil
}

// IsRemoved reports whether Remove has been called.
func (a *Arrow) IsRemoved() bool {
	return a.removed
}

// SetStyle updates color, stroke width, and dash on every part in place.
// Pure visual change: no geometry is rebuilt.
func (a *Arrow) SetStyle(style Style) {
	if a.removed {
		panic("shotplan: SetStyle on removed arrow")
	}
	a.Style = style
	a.line.Color = style.Color
	a.line.StrokeWidth = style.StrokeWidth
	a.line.Dash = style.Dash
	a.board.NotifyModified(a.line)
	if a.head != nil {
		a.head.Color = style.Color
		a.board.NotifyModified(a.head)
	}
	for _, h := range append([]*Object{a.startHandle, a.endHandle}, a.handles...) {
		h.Color = style.Color
		a.board.NotifyModified(h)
	}
}

// HitLine reports whether p lies within tolerance of the drawn curve.
func (a *Arrow) HitLine(p Vec2, tolerance float64) bool {
	return curve.DistanceToPolyline(curve.Pt{X: p.X, Y: p.Y}, a.flat) <= tolerance
}

// Line returns the current curve-line object. The returned object is
// replaced on every geometry rebuild; do not retain it across mutations.
func (a *Arrow) Line() *Object {
	return a.line
}

// HeadObject returns the current arrowhead object, or nil under HeadNone.
func (a *Arrow) HeadObject() *Object {
	return a.head
}

// Handles returns the control handle objects in control-point order.
// The returned slice MUST NOT be mutated.
func (a *Arrow) Handles() []*Object {
	return a.handles
}

// StartHandle returns the start anchor's handle object.
func (a *Arrow) StartHandle() *Object {
	return a.startHandle
}

// EndHandle returns the end anchor's handle object.
func (a *Arrow) EndHandle() *Object {
	return a.endHandle
}
