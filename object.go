package shotplan

// Object is the fundamental Board element. A single flat struct is used for
// every Kind to avoid interface dispatch on the hot path; fields that do not
// apply to a given Kind are simply left at their zero values.
type Object struct {
	// Identity
	ID   uint32
	Kind Kind

	// Linkage tags. EntityID groups the derived parts of one logical entity
	// (a curve line plus its arrowhead and handles, or a marker). ChainID and
	// SegmentIndex tie trail parts to their chain.
	EntityID     uint32
	ChainID      string
	SegmentIndex int

	// Pose (markers, ghosts, labels, handles)
	X, Y     float64
	Rotation float64

	// Visual properties
	Color       Color
	Opacity     float64
	StrokeWidth float64
	Dash        Dash

	// Polyline / triangle geometry (curve lines, arrowheads)
	Points []Vec2

	// Text fields (KindLabel)
	Text     string
	FontSize float64

	// Ghost fields (KindGhost): the marker Kind this ghost was cloned from.
	// Zero when the clone fell back to the generic placeholder shape.
	GhostOf Kind

	// Handle fields: position of this handle within its curve's interior
	// control-point list. Recomputed whenever handles are rebuilt.
	HandleIndex int

	// Interaction flags
	Evented    bool
	Selectable bool

	// Internal
	disposed bool
}

// newObject creates an object of the given kind with common defaults.
func newObject(kind Kind) *Object {
	return &Object{
		ID:      nextObjectID(),
		Kind:    kind,
		Opacity: 1,
		Color:   ColorBlack,
	}
}

// Pos returns the object's pose position as a Vec2.
func (o *Object) Pos() Vec2 {
	return Vec2{o.X, o.Y}
}

// IsDisposed reports whether the object has been removed from its Board.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// isMarker reports whether the kind is a trail-capable marker.
func isMarker(k Kind) bool {
	return k == KindActor || k == KindCamera
}
