package shotplan

import (
	"errors"
	"sort"
)

// ErrSnapshotCorrupt indicates a snapshot that cannot be restored. It should
// not occur for snapshots produced by Capture; when it does, the restore is
// aborted before any board mutation, leaving the live scene untouched.
var ErrSnapshotCorrupt = errors.New("shotplan: snapshot is corrupt")

// Record is the serialized form of one logical entity. Derived parts of a
// curve entity (arrowhead, handles) are not recorded; they are regenerated
// by the entity model on restore, which is what keeps multi-part entities
// atomic across an undo boundary.
type Record struct {
	Kind         Kind
	EntityID     uint32
	ChainID      string
	SegmentIndex int

	// Pose (markers, ghosts, labels)
	X, Y, Rotation float64

	// Style
	Color       Color
	Opacity     float64
	StrokeWidth float64
	Dash        Dash

	// Label fields
	Text     string
	FontSize float64

	// Ghost fields
	GhostOf Kind

	// Curve fields
	Start, End Vec2
	Controls   []Vec2
	Head       HeadPolicy
	HeadSize   float64
}

// Snapshot is an immutable copy of the whole scene at one instant. Records
// are ordered by board insertion order; restoring replaces the live scene
// wholesale.
type Snapshot struct {
	records []Record
}

// Len returns the number of entity records in the snapshot.
func (s Snapshot) Len() int {
	return len(s.records)
}

// Capture serializes the complete current scene graph into one snapshot.
// Slices are copied so later live edits can never reach into a past
// snapshot.
func Capture(b *Board) Snapshot {
	var records []Record
	for _, o := range b.objects {
		switch o.Kind {
		case KindActor, KindCamera:
			records = append(records, Record{
				Kind:     o.Kind,
				EntityID: o.EntityID,
				ChainID:  o.ChainID,
				X:        o.X,
				Y:        o.Y,
				Rotation: o.Rotation,
				Color:    o.Color,
				Opacity:  o.Opacity,
			})
		case KindLabel:
			records = append(records, Record{
				Kind:     o.Kind,
				EntityID: o.EntityID,
				X:        o.X,
				Y:        o.Y,
				Color:    o.Color,
				Opacity:  o.Opacity,
				Text:     o.Text,
				FontSize: o.FontSize,
			})
		case KindGhost:
			records = append(records, Record{
				Kind:         o.Kind,
				ChainID:      o.ChainID,
				SegmentIndex: o.SegmentIndex,
				X:            o.X,
				Y:            o.Y,
				Rotation:     o.Rotation,
				Color:        o.Color,
				Opacity:      o.Opacity,
				GhostOf:      o.GhostOf,
			})
		case KindCurveLine:
			a := b.arrows[o.EntityID]
			if a == nil {
				// Line without a live entity: nothing to serialize.
				continue
			}
			controls := make([]Vec2, len(a.Controls))
			copy(controls, a.Controls)
			records = append(records, Record{
				Kind:         o.Kind,
				EntityID:     a.EntityID,
				ChainID:      a.ChainID,
				SegmentIndex: a.SegmentIndex,
				Color:        a.Style.Color,
				StrokeWidth:  a.Style.StrokeWidth,
				Dash:         a.Style.Dash,
				Start:        a.Start,
				End:          a.End,
				Controls:     controls,
				Head:         a.Head,
				HeadSize:     a.HeadSize,
			})
		case KindCurveHead, KindControlHandle, KindStartHandle, KindEndHandle:
			// Derived parts of a curve entity; regenerated on restore.
		default:
			// Unknown kinds cannot appear through the public API.
		}
	}
	return Snapshot{records: records}
}

// validate checks a snapshot before any board mutation happens.
func (s Snapshot) validate() error {
	for _, r := range s.records {
		switch r.Kind {
		case KindActor, KindCamera, KindLabel, KindGhost:
		case KindCurveLine:
			if len(r.Controls) == 0 {
				return ErrSnapshotCorrupt
			}
		default:
			return ErrSnapshotCorrupt
		}
	}
	return nil
}

// restoreInto replaces the board's contents with the snapshot's. The caller
// (the history engine) holds the re-entrancy guard for the duration. On
// validation failure the board is left untouched.
func (s Snapshot) restoreInto(b *Board) error {
	if err := s.validate(); err != nil {
		return err
	}

	b.clear()
	for _, r := range s.records {
		switch r.Kind {
		case KindActor, KindCamera:
			m := newObject(r.Kind)
			m.EntityID = r.EntityID
			m.ChainID = r.ChainID
			m.X = r.X
			m.Y = r.Y
			m.Rotation = r.Rotation
			m.Color = r.Color
			m.Opacity = r.Opacity
			m.Evented = true
			m.Selectable = true
			bumpEntityID(r.EntityID)
			b.Add(m)
		case KindLabel:
			l := newObject(KindLabel)
			l.EntityID = r.EntityID
			l.X = r.X
			l.Y = r.Y
			l.Color = r.Color
			l.Opacity = r.Opacity
			l.Text = r.Text
			l.FontSize = r.FontSize
			l.Evented = true
			l.Selectable = true
			bumpEntityID(r.EntityID)
			b.Add(l)
		case KindGhost:
			g := newObject(KindGhost)
			g.ChainID = r.ChainID
			g.SegmentIndex = r.SegmentIndex
			g.X = r.X
			g.Y = r.Y
			g.Rotation = r.Rotation
			g.Color = r.Color
			g.Opacity = r.Opacity
			g.GhostOf = r.GhostOf
			b.Add(g)
			b.chainGhosts[r.ChainID] = append(b.chainGhosts[r.ChainID], g)
		case KindCurveLine:
			controls := make([]Vec2, len(r.Controls))
			copy(controls, r.Controls)
			a := newArrowRaw(b, r.EntityID, r.Start, r.End, controls,
				Style{Color: r.Color, StrokeWidth: r.StrokeWidth, Dash: r.Dash},
				r.Head, r.HeadSize, r.ChainID, r.SegmentIndex)
			if r.ChainID != "" {
				b.chains[r.ChainID] = append(b.chains[r.ChainID], a)
			}
		}
	}

	// Record order follows board insertion order, which an edited segment's
	// rebuild may have shuffled; chain order comes from the stored indices.
	for _, segments := range b.chains {
		sort.SliceStable(segments, func(i, j int) bool {
			return segments[i].SegmentIndex < segments[j].SegmentIndex
		})
	}
	for _, ghosts := range b.chainGhosts {
		sort.SliceStable(ghosts, func(i, j int) bool {
			return ghosts[i].SegmentIndex < ghosts[j].SegmentIndex
		})
	}
	return nil
}
