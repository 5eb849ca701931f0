package shotplan

import "testing"

func newTestPress(t *testing.T) (*LongPress, *int) {
	t.Helper()
	fires := 0
	g := NewLongPress(func(x, y float64) { fires++ })
	return g, &fires
}

func TestLongPressFiresAfterDuration(t *testing.T) {
	var fx, fy float64
	fires := 0
	g := NewLongPress(func(x, y float64) {
		fires++
		fx, fy = x, y
	})

	g.Begin(40, 60)
	g.Update(0.3)
	if fires != 0 {
		t.Fatal("should not fire before the duration elapses")
	}
	g.Update(0.3)
	if fires != 1 {
		t.Fatalf("fires = %d, want 1", fires)
	}
	if fx != 40 || fy != 60 {
		t.Errorf("fired at (%v, %v), want the down position (40, 60)", fx, fy)
	}
	if g.Active() {
		t.Error("recognizer should disarm after firing")
	}
}

func TestLongPressFiresOnlyOnce(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(0, 0)
	for i := 0; i < 10; i++ {
		g.Update(0.2)
	}
	if *fires != 1 {
		t.Errorf("fires = %d, want 1", *fires)
	}
}

func TestLongPressSmallDriftTolerated(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(100, 100)
	g.Move(104, 103) // within slop
	g.Update(1)
	if *fires != 1 {
		t.Errorf("fires = %d, want 1; drift within slop must not cancel", *fires)
	}
}

func TestLongPressMoveBeyondSlopCancels(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(100, 100)
	g.Move(100, 115)
	if g.Active() {
		t.Error("drift beyond slop should cancel the press")
	}
	g.Update(1)
	if *fires != 0 {
		t.Errorf("fires = %d, want 0", *fires)
	}
}

func TestLongPressSecondPointerCancels(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(0, 0)
	g.Update(0.4)
	g.SecondPointer()
	g.Update(1)
	if *fires != 0 {
		t.Errorf("fires = %d, want 0; a second pointer means pinch, not hold", *fires)
	}
}

func TestLongPressReleaseBeforeDurationCancels(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(0, 0)
	g.Update(0.4)
	g.End()
	g.Update(1)
	if *fires != 0 {
		t.Errorf("fires = %d, want 0", *fires)
	}
}

func TestLongPressRearmRestartsTimer(t *testing.T) {
	g, fires := newTestPress(t)
	g.Begin(0, 0)
	g.Update(0.4)
	g.Begin(10, 10) // new press, timer restarts
	g.Update(0.4)
	if *fires != 0 {
		t.Fatal("restarted timer should not have elapsed yet")
	}
	g.Update(0.2)
	if *fires != 1 {
		t.Errorf("fires = %d, want 1", *fires)
	}
}

func TestLongPressCustomDuration(t *testing.T) {
	g, fires := newTestPress(t)
	g.Duration = 2
	g.Begin(0, 0)
	g.Update(1)
	if *fires != 0 {
		t.Fatal("should honor the configured duration")
	}
	g.Update(1)
	if *fires != 1 {
		t.Errorf("fires = %d, want 1", *fires)
	}
}

func TestLongPressUpdateWhileIdleIsNoop(t *testing.T) {
	g, fires := newTestPress(t)
	g.Update(5)
	if *fires != 0 || g.Active() {
		t.Error("idle recognizer should do nothing")
	}
}
