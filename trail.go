package shotplan

import (
	"math"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Trail tunables.
const (
	// DefaultTapThreshold is the displacement below which a completed marker
	// drag counts as a tap and produces no trail segment.
	DefaultTapThreshold = 5.0

	// DefaultSweepAfter is how long a tracked drag pose may sit idle before
	// the sweep discards it. Safety net for gestures that never complete;
	// the board's drag-end path is the primary, deterministic signal.
	DefaultSweepAfter float32 = 1.5

	// ghostOpacity is the resting opacity a ghost fades in to.
	ghostOpacity = 0.45

	// ghostFadeDuration is the ghost fade-in time in seconds.
	ghostFadeDuration float32 = 0.25
)

// trackedPose is a marker's pose recorded at drag start.
type trackedPose struct {
	marker   *Object
	x, y     float64
	rotation float64
	age      float32
}

// ghostFade animates one ghost's opacity. Advanced from Update; dropped when
// finished or when the ghost is removed (chain deletion, undo restore).
type ghostFade struct {
	tween *gween.Tween
	ghost *Object
}

// TrailManager turns completed marker drags into persistent chained curve
// segments: a frozen ghost at the pre-drag pose plus an Arrow from the ghost
// to the marker's new position. Successive drags of the same marker append
// segments to the same chain.
type TrailManager struct {
	board   *Board
	history *History // may be nil

	// TapThreshold and SweepAfter default to the package constants.
	TapThreshold float64
	SweepAfter   float32

	tracked map[uint32]*trackedPose // marker entity id -> pose at drag start
	fades   []ghostFade
}

// NewTrailManager creates a trail manager bound to the board and registers
// its per-frame sweep. history may be nil when undo is not wired.
func NewTrailManager(b *Board, h *History) *TrailManager {
	m := &TrailManager{
		board:        b,
		history:      h,
		TapThreshold: DefaultTapThreshold,
		SweepAfter:   DefaultSweepAfter,
		tracked:      make(map[uint32]*trackedPose),
	}
	b.AddUpdater(m.Update)
	return m
}

// BeginDrag records the marker's pose at gesture start. Only trail-capable
// markers (actor, camera) participate; anything else is ignored.
func (m *TrailManager) BeginDrag(marker *Object) {
	if !isMarker(marker.Kind) {
		return
	}
	m.tracked[marker.EntityID] = &trackedPose{
		marker:   marker,
		x:        marker.X,
		y:        marker.Y,
		rotation: marker.Rotation,
	}
}

// CompleteDrag compares the marker's current pose to the recorded start
// pose. Displacement below TapThreshold is a tap: the recorded pose is
// discarded and nothing is created. Otherwise one chain segment is built:
// ghost at the start pose, Arrow from ghost to the new position, chain id
// minted (or reused when the marker already owns a chain), segment index
// dense and ordered.
func (m *TrailManager) CompleteDrag(marker *Object) *Arrow {
	start, ok := m.tracked[marker.EntityID]
	if !ok {
		return nil
	}
	delete(m.tracked, marker.EntityID)

	if math.Hypot(marker.X-start.x, marker.Y-start.y) < m.TapThreshold {
		return nil
	}

	chainID := marker.ChainID
	if chainID == "" {
		chainID = uuid.NewString()
		marker.ChainID = chainID
	}
	segIndex := len(m.board.chains[chainID])

	ghost := m.makeGhost(marker, start, chainID, segIndex)
	m.board.Add(ghost)
	m.board.chainGhosts[chainID] = append(m.board.chainGhosts[chainID], ghost)
	m.fades = append(m.fades, ghostFade{
		tween: gween.New(0, ghostOpacity, ghostFadeDuration, ease.OutQuad),
		ghost: ghost,
	})

	arrow := NewArrow(m.board, Vec2{start.x, start.y}, marker.Pos(), trailStyle(marker), trailHead(marker))
	arrow.ChainID = chainID
	arrow.SegmentIndex = segIndex
	retagArrow(arrow)
	m.board.chains[chainID] = append(m.board.chains[chainID], arrow)

	Log.Debug().
		Str("chain", chainID).
		Int("segment", segIndex).
		Str("marker", marker.Kind.String()).
		Msg("trail segment created")

	if m.history != nil {
		m.history.Record()
	}
	return arrow
}

// trailStyle returns the segment style for a marker kind: actors leave a
// dotted trail in their own color, cameras a solid black line.
func trailStyle(marker *Object) Style {
	if marker.Kind == KindActor {
		return Style{Color: marker.Color, StrokeWidth: 2, Dash: DashDotted}
	}
	return Style{Color: ColorBlack, StrokeWidth: 2, Dash: DashNone}
}

// trailHead returns the arrowhead policy for a marker kind: camera chains
// always show the direction of movement, actor chains do not.
func trailHead(marker *Object) HeadPolicy {
	if marker.Kind == KindCamera {
		return HeadEnd
	}
	return HeadNone
}

// retagArrow stamps the chain linkage onto the arrow's already-built parts.
func retagArrow(a *Arrow) {
	for _, o := range []*Object{a.line, a.head, a.startHandle, a.endHandle} {
		if o != nil {
			o.ChainID = a.ChainID
			o.SegmentIndex = a.SegmentIndex
		}
	}
	for _, h := range a.handles {
		h.ChainID = a.ChainID
		h.SegmentIndex = a.SegmentIndex
	}
}

// makeGhost clones the marker's appearance into a non-interactive object
// frozen at the start pose. When the marker kind has no clone shape the
// ghost falls back to a generic placeholder disc at the same position and
// opacity, so the chain is still visually anchored.
func (m *TrailManager) makeGhost(marker *Object, start *trackedPose, chainID string, segIndex int) *Object {
	g := newObject(KindGhost)
	g.ChainID = chainID
	g.SegmentIndex = segIndex
	g.X = start.x
	g.Y = start.y
	g.Rotation = start.rotation
	g.Opacity = 0 // fades in
	g.Evented = false
	g.Selectable = false

	switch marker.Kind {
	case KindActor, KindCamera:
		g.GhostOf = marker.Kind
		g.Color = marker.Color
	default:
		g.GhostOf = 0
		g.Color = Color{0.5, 0.5, 0.5, 1}
		Log.Warn().
			Str("kind", marker.Kind.String()).
			Msg("no ghost shape for marker kind, using placeholder")
	}
	return g
}

// RemoveChain deletes every segment and ghost of a chain in one operation
// and clears the chain id from any marker that owned it.
func (m *TrailManager) RemoveChain(chainID string) {
	segments := m.board.chains[chainID]
	for _, a := range segments {
		a.Remove()
	}
	delete(m.board.chains, chainID)

	for _, g := range m.board.chainGhosts[chainID] {
		if !g.IsDisposed() {
			m.board.Remove(g)
		}
	}
	delete(m.board.chainGhosts, chainID)

	for _, o := range m.board.Objects() {
		if isMarker(o.Kind) && o.ChainID == chainID {
			o.ChainID = ""
		}
	}

	Log.Debug().Str("chain", chainID).Int("segments", len(segments)).Msg("chain removed")
}

// ChainAt returns the chain segment whose drawn line lies within tolerance
// of p, or nil. Clicking a segment's line is how users reach its control
// handle without first hitting the small handle itself.
func (m *TrailManager) ChainAt(p Vec2, tolerance float64) *Arrow {
	for _, segments := range m.board.chains {
		for _, a := range segments {
			if a.HitLine(p, tolerance) {
				return a
			}
		}
	}
	return nil
}

// Update ages tracked poses and discards ones whose marker never crossed the
// threshold within SweepAfter, and advances ghost fades. Call once per frame
// (registered automatically by NewTrailManager).
//
// A pose whose marker has already moved beyond TapThreshold is a live drag,
// not a stale one; it survives the sweep no matter how long the gesture is
// held. Only idle poses (and poses whose marker left the board) age out.
func (m *TrailManager) Update(dt float32) {
	for id, pose := range m.tracked {
		if pose.marker.IsDisposed() {
			delete(m.tracked, id)
			continue
		}
		if math.Hypot(pose.marker.X-pose.x, pose.marker.Y-pose.y) >= m.TapThreshold {
			pose.age = 0
			continue
		}
		pose.age += dt
		if pose.age >= m.SweepAfter {
			delete(m.tracked, id)
		}
	}

	alive := m.fades[:0]
	for _, f := range m.fades {
		if f.ghost.IsDisposed() {
			continue
		}
		val, finished := f.tween.Update(dt)
		f.ghost.Opacity = float64(val)
		m.board.NotifyModified(f.ghost)
		if !finished {
			alive = append(alive, f)
		}
	}
	m.fades = alive
}

// TrackedCount reports the number of pending drag poses. Intended for
// debugging and tests.
func (m *TrailManager) TrackedCount() int {
	return len(m.tracked)
}
