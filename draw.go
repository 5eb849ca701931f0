package shotplan

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image used to fill triangles. Created lazily so
// importing the package never touches the graphics device (tests stay
// headless).
var whitePixel *ebiten.Image

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// drawLayer orders kinds back to front: ghosts under everything, handles on
// top of the curves they edit.
func drawLayer(k Kind) int {
	switch k {
	case KindGhost:
		return 0
	case KindCurveLine:
		return 1
	case KindCurveHead:
		return 2
	case KindActor, KindCamera:
		return 3
	case KindLabel:
		return 4
	case KindControlHandle, KindStartHandle, KindEndHandle:
		return 5
	default:
		return 6
	}
}

// Draw renders the background and every object through the view transform.
// Dispatch over Kind is exhaustive; an object of unknown kind panics in
// debug mode and is skipped otherwise.
func (b *Board) Draw(screen *ebiten.Image) {
	b.renderDirty = false

	if b.background != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.viewScale, b.viewScale)
		op.GeoM.Translate(b.viewOffsetX, b.viewOffsetY)
		screen.DrawImage(b.background, op)
	}

	ordered := make([]*Object, len(b.objects))
	copy(ordered, b.objects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return drawLayer(ordered[i].Kind) < drawLayer(ordered[j].Kind)
	})

	for _, o := range ordered {
		switch o.Kind {
		case KindActor:
			b.drawActor(screen, o, o.Opacity)
		case KindCamera:
			b.drawCamera(screen, o, o.Opacity)
		case KindGhost:
			b.drawGhost(screen, o)
		case KindCurveLine:
			b.drawCurveLine(screen, o)
		case KindCurveHead:
			b.fillTriangle(screen, o.Points, o.Color, o.Opacity)
		case KindControlHandle:
			b.drawHandle(screen, o, true)
		case KindStartHandle, KindEndHandle:
			b.drawHandle(screen, o, false)
		case KindLabel:
			b.drawLabel(screen, o)
		default:
			if b.debug {
				panic(fmt.Sprintf("shotplan: cannot draw object of kind %d", o.Kind))
			}
		}
	}
}

// tx and ty map scene coordinates to screen coordinates.
func (b *Board) tx(x float64) float32 {
	return float32(x*b.viewScale + b.viewOffsetX)
}

func (b *Board) ty(y float64) float32 {
	return float32(y*b.viewScale + b.viewOffsetY)
}

func withOpacity(c Color, opacity float64) color.RGBA {
	c.A *= opacity
	return c.toRGBA()
}

func (b *Board) drawActor(screen *ebiten.Image, o *Object, opacity float64) {
	r := float32(ActorRadius * b.viewScale)
	vector.DrawFilledCircle(screen, b.tx(o.X), b.ty(o.Y), r, withOpacity(o.Color, opacity), true)

	// Heading tick.
	tipX := o.X + math.Cos(o.Rotation)*ActorRadius*1.4
	tipY := o.Y + math.Sin(o.Rotation)*ActorRadius*1.4
	vector.StrokeLine(screen, b.tx(o.X), b.ty(o.Y), b.tx(tipX), b.ty(tipY),
		float32(2*b.viewScale), withOpacity(o.Color, opacity), true)
}

func (b *Board) drawCamera(screen *ebiten.Image, o *Object, opacity float64) {
	// Wedge pointing along the rotation: apex at the pose, two base corners
	// swept back.
	pts := []Vec2{
		{o.X, o.Y},
		{o.X - math.Cos(o.Rotation-0.5)*CameraSize, o.Y - math.Sin(o.Rotation-0.5)*CameraSize},
		{o.X - math.Cos(o.Rotation+0.5)*CameraSize, o.Y - math.Sin(o.Rotation+0.5)*CameraSize},
	}
	b.fillTriangle(screen, pts, o.Color, opacity)
}

func (b *Board) drawGhost(screen *ebiten.Image, o *Object) {
	switch o.GhostOf {
	case KindActor:
		b.drawActor(screen, o, o.Opacity)
	case KindCamera:
		b.drawCamera(screen, o, o.Opacity)
	default:
		// Placeholder disc: the clone fallback shape.
		r := float32(ActorRadius * b.viewScale)
		vector.DrawFilledCircle(screen, b.tx(o.X), b.ty(o.Y), r, withOpacity(o.Color, o.Opacity), true)
	}
}

func (b *Board) drawCurveLine(screen *ebiten.Image, o *Object) {
	if len(o.Points) < 2 {
		return
	}
	w := float32(o.StrokeWidth * b.viewScale)
	clr := withOpacity(o.Color, o.Opacity)

	switch o.Dash {
	case DashNone:
		for i := 0; i+1 < len(o.Points); i++ {
			p, q := o.Points[i], o.Points[i+1]
			vector.StrokeLine(screen, b.tx(p.X), b.ty(p.Y), b.tx(q.X), b.ty(q.Y), w, clr, true)
		}
	case DashDotted:
		r := float32(math.Max(o.StrokeWidth, 1.5) * b.viewScale)
		for _, p := range samplePolyline(o.Points, 8) {
			vector.DrawFilledCircle(screen, b.tx(p.X), b.ty(p.Y), r, clr, true)
		}
	case DashDashed:
		b.strokeDashes(screen, o.Points, 10, 6, w, clr)
	}
}

// samplePolyline returns points spaced every step units of arc length along
// the polyline.
func samplePolyline(pts []Vec2, step float64) []Vec2 {
	var out []Vec2
	carry := 0.0
	for i := 0; i+1 < len(pts); i++ {
		a, c := pts[i], pts[i+1]
		segLen := math.Hypot(c.X-a.X, c.Y-a.Y)
		if segLen == 0 {
			continue
		}
		d := carry
		for d < segLen {
			t := d / segLen
			out = append(out, Vec2{a.X + (c.X-a.X)*t, a.Y + (c.Y-a.Y)*t})
			d += step
		}
		carry = d - segLen
	}
	return out
}

// strokeDashes walks the polyline alternating on/off spans of the given
// lengths.
func (b *Board) strokeDashes(screen *ebiten.Image, pts []Vec2, on, off float64, w float32, clr color.RGBA) {
	pen := true
	remain := on
	for i := 0; i+1 < len(pts); i++ {
		a, c := pts[i], pts[i+1]
		segLen := math.Hypot(c.X-a.X, c.Y-a.Y)
		pos := 0.0
		for pos < segLen {
			run := math.Min(remain, segLen-pos)
			t0 := pos / segLen
			t1 := (pos + run) / segLen
			if pen {
				x0 := a.X + (c.X-a.X)*t0
				y0 := a.Y + (c.Y-a.Y)*t0
				x1 := a.X + (c.X-a.X)*t1
				y1 := a.Y + (c.Y-a.Y)*t1
				vector.StrokeLine(screen, b.tx(x0), b.ty(y0), b.tx(x1), b.ty(y1), w, clr, true)
			}
			pos += run
			remain -= run
			if remain <= 0 {
				pen = !pen
				if pen {
					remain = on
				} else {
					remain = off
				}
			}
		}
	}
}

func (b *Board) drawHandle(screen *ebiten.Image, o *Object, filled bool) {
	r := float32(HandleRadius * b.viewScale)
	clr := withOpacity(o.Color, o.Opacity)
	if filled {
		vector.DrawFilledCircle(screen, b.tx(o.X), b.ty(o.Y), r, clr, true)
	} else {
		vector.StrokeCircle(screen, b.tx(o.X), b.ty(o.Y), r, float32(2*b.viewScale), clr, true)
	}
}

func (b *Board) drawLabel(screen *ebiten.Image, o *Object) {
	// Debug-font rendering; an embedding application that needs real
	// typography draws labels itself on top of the board.
	ebitenutil.DebugPrintAt(screen, o.Text, int(b.tx(o.X)), int(b.ty(o.Y)))
}

// fillTriangle renders a filled triangle from three scene-space points.
func (b *Board) fillTriangle(screen *ebiten.Image, pts []Vec2, c Color, opacity float64) {
	if len(pts) < 3 {
		return
	}
	clr := c
	clr.A *= opacity
	verts := make([]ebiten.Vertex, 3)
	for i := 0; i < 3; i++ {
		verts[i] = ebiten.Vertex{
			DstX:   b.tx(pts[i].X),
			DstY:   b.ty(pts[i].Y),
			SrcX:   0,
			SrcY:   0,
			ColorR: float32(clr.R * clr.A),
			ColorG: float32(clr.G * clr.A),
			ColorB: float32(clr.B * clr.A),
			ColorA: float32(clr.A),
		}
	}
	screen.DrawTriangles(verts, []uint16{0, 1, 2}, getWhitePixel(), nil)
}
