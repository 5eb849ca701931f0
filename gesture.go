package shotplan

import "math"

// Long-press tunables.
const (
	// DefaultLongPressDuration is how long a pointer must stay down and
	// still before the long-press fires. Seconds.
	DefaultLongPressDuration float32 = 0.5

	// DefaultLongPressSlop is the movement allowance before cancellation.
	DefaultLongPressSlop = 10.0
)

// LongPress recognizes a press-and-hold gesture. It is a pure frame-driven
// timer: armed on pointer down, cancelled outright by a second pointer, by
// movement beyond the slop, or by release before the duration elapses. A
// cancelled press has no side effects; a completed one fires OnFire exactly
// once.
type LongPress struct {
	Duration float32
	Slop     float64
	OnFire   func(x, y float64)

	active  bool
	fired   bool
	elapsed float32
	x, y    float64
}

// NewLongPress creates a recognizer with the default duration and slop.
func NewLongPress(onFire func(x, y float64)) *LongPress {
	return &LongPress{
		Duration: DefaultLongPressDuration,
		Slop:     DefaultLongPressSlop,
		OnFire:   onFire,
	}
}

// Begin arms the recognizer at the pointer-down position. Re-arming while
// active restarts the timer.
func (g *LongPress) Begin(x, y float64) {
	g.active = true
	g.fired = false
	g.elapsed = 0
	g.x = x
	g.y = y
}

// Move reports pointer movement. The press is cancelled once the pointer
// drifts beyond the slop radius from the down position.
func (g *LongPress) Move(x, y float64) {
	if !g.active {
		return
	}
	if math.Hypot(x-g.x, y-g.y) > g.Slop {
		g.Cancel()
	}
}

// SecondPointer cancels the press; a second touch means the gesture is a
// pinch, not a hold.
func (g *LongPress) SecondPointer() {
	g.Cancel()
}

// End releases the pointer. If the press has not fired yet it is cancelled.
func (g *LongPress) End() {
	g.Cancel()
}

// Cancel disarms the recognizer without firing.
func (g *LongPress) Cancel() {
	g.active = false
	g.elapsed = 0
}

// Active reports whether a press is currently armed.
func (g *LongPress) Active() bool {
	return g.active
}

// Update advances the hold timer. When the duration elapses the recognizer
// fires once at the down position and disarms.
func (g *LongPress) Update(dt float32) {
	if !g.active || g.fired {
		return
	}
	g.elapsed += dt
	if g.elapsed >= g.Duration {
		g.fired = true
		g.active = false
		if g.OnFire != nil {
			g.OnFire(g.x, g.y)
		}
	}
}
