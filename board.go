package shotplan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Board is the retained scene host: the ordered collection of every placed
// visual object, the change-notification hub the history engine listens to,
// and the per-frame update driver for the engines that own timers (history
// debounce, trail sweep, ghost fades).
//
// All mutation goes through Add, Remove, and NotifyModified so that every
// structural change is observable. The Board itself never mutates entity
// data; the entity models (Arrow, TrailManager) do, through these methods.
type Board struct {
	objects []*Object

	// Entity indices, maintained transactionally by the entity models.
	// arrows maps a curve entity id to its live Arrow; chains maps a chain
	// id to its ordered segments; chainGhosts maps a chain id to its ghost
	// objects, one per segment.
	arrows      map[uint32]*Arrow
	chains      map[string][]*Arrow
	chainGhosts map[string][]*Object

	// Change hooks, fired synchronously after the mutation completes.
	onAdded    []func(*Object)
	onRemoved  []func(*Object)
	onModified []func(*Object)

	// Per-frame updaters registered by engines (history, trails, gestures).
	updaters []func(dt float32)

	// View transform: scene = (device - offset) / scale. Pan/zoom values are
	// set by the embedder; gesture decoding happens outside the Board.
	viewOffsetX, viewOffsetY float64
	viewScale                float64

	// InsertMinDist seeds Arrow.InsertMinDist for arrows created on this
	// board. Config-overridable.
	InsertMinDist float64

	background  *ebiten.Image
	renderDirty bool
	debug       bool
}

// NewBoard creates an empty board with an identity view transform.
func NewBoard() *Board {
	return &Board{
		arrows:        make(map[uint32]*Arrow),
		chains:        make(map[string][]*Arrow),
		chainGhosts:   make(map[string][]*Object),
		InsertMinDist: DefaultInsertMinDist,
		viewScale:     1,
		renderDirty:   true,
	}
}

// --- Object collection ---

// Add places an object on the board and fires the added hooks.
// Panics if obj is nil or has been disposed.
func (b *Board) Add(obj *Object) {
	if obj == nil {
		panic("shotplan: cannot add nil object")
	}
	if obj.disposed {
		panic("shotplan: cannot add disposed object")
	}
	b.objects = append(b.objects, obj)
	for _, fn := range b.onAdded {
		fn(obj)
	}
	b.RequestRender()
}

// Remove detaches an object from the board, marks it disposed, and fires
// the removed hooks. Panics if the object is not on this board.
func (b *Board) Remove(obj *Object) {
	for i, o := range b.objects {
		if o == obj {
			copy(b.objects[i:], b.objects[i+1:])
			b.objects[len(b.objects)-1] = nil
			b.objects = b.objects[:len(b.objects)-1]
			obj.disposed = true
			for _, fn := range b.onRemoved {
				fn(obj)
			}
			b.RequestRender()
			return
		}
	}
	panic("shotplan: object is not on this board")
}

// NotifyModified reports an in-place mutation of an object already on the
// board (pose change, style change) to the modified hooks.
func (b *Board) NotifyModified(obj *Object) {
	for _, fn := range b.onModified {
		fn(obj)
	}
	b.RequestRender()
}

// Objects returns the object list in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (b *Board) Objects() []*Object {
	return b.objects
}

// NumObjects returns the number of objects on the board.
func (b *Board) NumObjects() int {
	return len(b.objects)
}

// ObjectsByEntity returns every object tagged with the given entity id.
func (b *Board) ObjectsByEntity(entityID uint32) []*Object {
	var out []*Object
	for _, o := range b.objects {
		if o.EntityID == entityID {
			out = append(out, o)
		}
	}
	return out
}

// ObjectsByChain returns every object tagged with the given chain id,
// ghosts included.
func (b *Board) ObjectsByChain(chainID string) []*Object {
	var out []*Object
	for _, o := range b.objects {
		if o.ChainID == chainID {
			out = append(out, o)
		}
	}
	return out
}

// ObjectAt returns the topmost evented object whose hit area contains the
// scene point p, or nil. Markers, ghosts, and handles hit by disc radius;
// curve lines by stroke distance; labels by their box.
func (b *Board) ObjectAt(p Vec2) *Object {
	for i := len(b.objects) - 1; i >= 0; i-- {
		o := b.objects[i]
		if !o.Evented {
			continue
		}
		if objectContains(o, p) {
			return o
		}
	}
	return nil
}

// --- Entity indices ---

// ArrowByEntity returns the live Arrow with the given curve entity id, or nil.
func (b *Board) ArrowByEntity(entityID uint32) *Arrow {
	return b.arrows[entityID]
}

// Chain returns the ordered segments of a chain.
// The returned slice MUST NOT be mutated.
func (b *Board) Chain(chainID string) []*Arrow {
	return b.chains[chainID]
}

// ChainGhosts returns the ghost objects of a chain, in segment order.
// The returned slice MUST NOT be mutated.
func (b *Board) ChainGhosts(chainID string) []*Object {
	return b.chainGhosts[chainID]
}

// Arrows returns every live Arrow, keyed by entity id.
// The returned map MUST NOT be mutated.
func (b *Board) Arrows() map[uint32]*Arrow {
	return b.arrows
}

// --- Change hooks ---

// OnObjectAdded registers a hook fired synchronously after an object is added.
func (b *Board) OnObjectAdded(fn func(*Object)) {
	b.onAdded = append(b.onAdded, fn)
}

// OnObjectRemoved registers a hook fired synchronously after an object is removed.
func (b *Board) OnObjectRemoved(fn func(*Object)) {
	b.onRemoved = append(b.onRemoved, fn)
}

// OnObjectModified registers a hook fired synchronously after an in-place
// object mutation is reported via NotifyModified.
func (b *Board) OnObjectModified(fn func(*Object)) {
	b.onModified = append(b.onModified, fn)
}

// --- Frame loop ---

// AddUpdater registers a per-frame updater. Engines with timers (history
// debounce, trail sweep, ghost fades, long-press) register themselves here;
// there is no global manager.
func (b *Board) AddUpdater(fn func(dt float32)) {
	b.updaters = append(b.updaters, fn)
}

// Update advances all registered engine timers by dt seconds. Call once per
// frame from the game loop.
func (b *Board) Update(dt float32) {
	for _, fn := range b.updaters {
		fn(dt)
	}
}

// RequestRender marks the board as needing a redraw.
func (b *Board) RequestRender() {
	b.renderDirty = true
}

// NeedsRender reports whether the board changed since the last Draw.
func (b *Board) NeedsRender() bool {
	return b.renderDirty
}

// --- View ---

// SetView sets the pan offset and zoom scale applied when drawing and when
// converting device coordinates. Scale must be positive.
func (b *Board) SetView(offsetX, offsetY, scale float64) {
	if scale <= 0 {
		panic("shotplan: view scale must be positive")
	}
	b.viewOffsetX = offsetX
	b.viewOffsetY = offsetY
	b.viewScale = scale
	b.RequestRender()
}

// GetPointer converts a device-space pointer position to scene coordinates
// through the inverse view transform.
func (b *Board) GetPointer(deviceX, deviceY float64) Vec2 {
	return Vec2{
		X: (deviceX - b.viewOffsetX) / b.viewScale,
		Y: (deviceY - b.viewOffsetY) / b.viewScale,
	}
}

// SetBackground sets the floor plan image drawn beneath all objects.
func (b *Board) SetBackground(img *ebiten.Image) {
	b.background = img
	b.RequestRender()
}

// SetDebugMode enables debug logging of board mutations.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// --- Restore support ---

// clear removes every object and resets the entity indices. Removed hooks
// fire for each object, in reverse insertion order. Used by snapshot restore,
// which runs under the history re-entrancy guard.
//
// Live Arrow structs are marked removed first, so an *Arrow held across a
// restore reports IsRemoved and never reaches into disposed part objects.
func (b *Board) clear() {
	for _, a := range b.arrows {
		a.removed = true
		a.line = nil
		a.head = nil
		a.startHandle = nil
		a.endHandle = nil
		a.handles = nil
	}
	for i := len(b.objects) - 1; i >= 0; i-- {
		obj := b.objects[i]
		b.objects[i] = nil
		b.objects = b.objects[:i]
		obj.disposed = true
		for _, fn := range b.onRemoved {
			fn(obj)
		}
	}
	b.arrows = make(map[uint32]*Arrow)
	b.chains = make(map[string][]*Arrow)
	b.chainGhosts = make(map[string][]*Object)
	b.RequestRender()
}
