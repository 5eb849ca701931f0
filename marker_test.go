package shotplan

import "testing"

func TestActorMarkerDefaults(t *testing.T) {
	b := NewBoard()
	m := NewActorMarker(b, 30, 40, ColorRed)

	if m.Kind != KindActor {
		t.Errorf("Kind = %v, want %v", m.Kind, KindActor)
	}
	if m.X != 30 || m.Y != 40 {
		t.Errorf("pos = (%v, %v), want (30, 40)", m.X, m.Y)
	}
	if m.Color != ColorRed {
		t.Errorf("Color = %v, want red", m.Color)
	}
	if !m.Evented || !m.Selectable {
		t.Error("markers should be evented and selectable")
	}
	if m.EntityID == 0 {
		t.Error("markers should carry an entity id")
	}
	if b.NumObjects() != 1 {
		t.Errorf("NumObjects = %d, want 1", b.NumObjects())
	}
}

func TestCameraMarkerDefaults(t *testing.T) {
	b := NewBoard()
	m := NewCameraMarker(b, 10, 20, 1.5)

	if m.Kind != KindCamera {
		t.Errorf("Kind = %v, want %v", m.Kind, KindCamera)
	}
	if m.Rotation != 1.5 {
		t.Errorf("Rotation = %v, want 1.5", m.Rotation)
	}
	if m.Color != ColorBlack {
		t.Errorf("Color = %v, want black", m.Color)
	}
}

func TestLabelDefaults(t *testing.T) {
	b := NewBoard()
	l := NewLabel(b, 5, 6, "INT. KITCHEN", 16, ColorBlue)

	if l.Kind != KindLabel {
		t.Errorf("Kind = %v, want %v", l.Kind, KindLabel)
	}
	if l.Text != "INT. KITCHEN" || l.FontSize != 16 {
		t.Errorf("text = %q size %v", l.Text, l.FontSize)
	}
}

func TestMarkerEntityIDsUnique(t *testing.T) {
	b := NewBoard()
	seen := map[uint32]bool{}
	for i := 0; i < 4; i++ {
		m := NewActorMarker(b, 0, 0, ColorRed)
		if seen[m.EntityID] {
			t.Fatalf("duplicate entity id %d", m.EntityID)
		}
		seen[m.EntityID] = true
	}
}

func TestMoveObjectNotifies(t *testing.T) {
	b := NewBoard()
	m := NewActorMarker(b, 0, 0, ColorRed)

	var notified *Object
	b.OnObjectModified(func(o *Object) { notified = o })

	b.MoveObject(m, 70, 80)
	if m.X != 70 || m.Y != 80 {
		t.Errorf("pos = (%v, %v), want (70, 80)", m.X, m.Y)
	}
	if notified != m {
		t.Error("MoveObject should fire the modified hook")
	}
}

func TestRotateObjectNotifies(t *testing.T) {
	b := NewBoard()
	m := NewCameraMarker(b, 0, 0, 0)

	notified := 0
	b.OnObjectModified(func(*Object) { notified++ })

	b.RotateObject(m, 2.0)
	if m.Rotation != 2.0 {
		t.Errorf("Rotation = %v, want 2.0", m.Rotation)
	}
	if notified != 1 {
		t.Errorf("modified hooks fired %d times, want 1", notified)
	}
}

// --- Hit testing ---

func TestActorHitRadius(t *testing.T) {
	o := newObject(KindActor)
	o.X, o.Y = 100, 100

	if !objectContains(o, Vec2{100 + ActorRadius - 1, 100}) {
		t.Error("point inside the disc should hit")
	}
	if objectContains(o, Vec2{100 + ActorRadius + 1, 100}) {
		t.Error("point outside the disc should miss")
	}
}

func TestHandleHitIncludesSlop(t *testing.T) {
	o := newObject(KindControlHandle)
	o.X, o.Y = 50, 50

	if !objectContains(o, Vec2{50 + HandleRadius + handleHitSlop - 1, 50}) {
		t.Error("point within the padded radius should hit")
	}
	if objectContains(o, Vec2{50 + HandleRadius + handleHitSlop + 1, 50}) {
		t.Error("point beyond the padded radius should miss")
	}
}

func TestCurveLineHitByStrokeDistance(t *testing.T) {
	o := newObject(KindCurveLine)
	o.Points = []Vec2{{0, 0}, {100, 0}}

	if !objectContains(o, Vec2{50, lineHitTolerance - 1}) {
		t.Error("point near the stroke should hit")
	}
	if objectContains(o, Vec2{50, lineHitTolerance + 1}) {
		t.Error("point off the stroke should miss")
	}
}

func TestCurveHeadNotHittable(t *testing.T) {
	o := newObject(KindCurveHead)
	o.Points = []Vec2{{0, 0}, {10, 5}, {10, -5}}
	if objectContains(o, Vec2{5, 0}) {
		t.Error("the line, not the head, is the hit surface for a curve")
	}
}

func TestLabelHitBox(t *testing.T) {
	o := newObject(KindLabel)
	o.X, o.Y = 10, 10
	o.Text = "CUT"
	o.FontSize = 20

	if !objectContains(o, Vec2{20, 20}) {
		t.Error("point inside the label box should hit")
	}
	if objectContains(o, Vec2{9, 10}) {
		t.Error("point left of the box should miss")
	}
	if objectContains(o, Vec2{10 + 20*0.6*3 + 1, 10}) {
		t.Error("point right of the box should miss")
	}
}
