package shotplan

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Common marker palette defaults.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{0.86, 0.2, 0.18, 1}
	ColorBlue  = Color{0.16, 0.38, 0.8, 1}
)

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and anchors throughout
// the API. Coordinates are scene-space: origin top-left, Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Kind distinguishes the closed set of visual object variants a Board can
// hold. Every object carries exactly one Kind; rendering, hit-testing, and
// snapshotting dispatch on it exhaustively.
type Kind uint8

const (
	KindActor         Kind = iota + 1 // positionable actor marker
	KindCamera                        // positionable camera marker
	KindLabel                         // free-standing text annotation
	KindCurveLine                     // the stroked body of a movement arrow
	KindCurveHead                     // arrowhead triangle at a curve's tip
	KindControlHandle                 // draggable interior curve anchor
	KindStartHandle                   // draggable curve start anchor
	KindEndHandle                     // draggable curve end anchor
	KindGhost                         // frozen marker clone left by a trail segment
)

// String returns the snapshot tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "marker-actor"
	case KindCamera:
		return "marker-camera"
	case KindLabel:
		return "text"
	case KindCurveLine:
		return "curve-line"
	case KindCurveHead:
		return "curve-arrowhead"
	case KindControlHandle:
		return "curve-handle-control"
	case KindStartHandle:
		return "curve-handle-start"
	case KindEndHandle:
		return "curve-handle-end"
	case KindGhost:
		return "chain-ghost"
	default:
		return "unknown"
	}
}

// Dash selects a stroke pattern for curve lines.
type Dash uint8

const (
	DashNone   Dash = iota // solid stroke
	DashDotted             // dot trail (actor movement)
	DashDashed             // dashed stroke
)

// --- ID counters ---

// Counters are plain (no atomics); shotplan is single-threaded by design,
// all mutation happens on the game loop thread.
var (
	objectIDCounter uint32
	entityIDCounter uint32
)

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// bumpEntityID raises the entity counter to at least floor. Snapshot restore
// uses it so resurrected entity ids never collide with future ones.
func bumpEntityID(floor uint32) {
	if entityIDCounter < floor {
		entityIDCounter = floor
	}
}
