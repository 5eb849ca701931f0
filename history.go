package shotplan

// History tunables.
const (
	// DefaultHistoryLimit caps the undo stack length.
	DefaultHistoryLimit = 50

	// DefaultDebounce coalesces mutation bursts (a continuous drag) into a
	// single snapshot. Seconds.
	DefaultDebounce float32 = 0.3
)

// History makes every structural board mutation undoable. It listens to the
// board's change hooks, coalesces bursts through a single-slot debounce
// deadline, and keeps bounded undo/redo stacks of whole-scene snapshots.
//
// The undo stack always holds at least the floor snapshot, the scene as it
// was when the history was created. Undo below the floor is a no-op; the
// floor is never evicted by the size cap.
type History struct {
	board *Board

	limit    int
	debounce float32

	undo []Snapshot
	redo []Snapshot

	// Single-slot debounce: each qualifying mutation re-arms the deadline;
	// only the last mutation of a burst produces a snapshot.
	pending   bool
	pendingIn float32

	// Guard: while a restore is in flight, incoming change notifications
	// are ignored entirely so the restore does not record itself.
	restoring bool

	// OnChange observes (canUndo, canRedo) transitions. May be nil.
	OnChange func(canUndo, canRedo bool)
}

// NewHistory creates a history engine bound to the board, subscribes to its
// change hooks, registers its per-frame debounce tick, and pushes the floor
// snapshot of the current (possibly empty) scene.
func NewHistory(b *Board) *History {
	h := &History{
		board:    b,
		limit:    DefaultHistoryLimit,
		debounce: DefaultDebounce,
	}
	b.OnObjectAdded(func(*Object) { h.Record() })
	b.OnObjectRemoved(func(*Object) { h.Record() })
	b.OnObjectModified(func(*Object) { h.Record() })
	b.AddUpdater(h.Update)

	h.undo = append(h.undo, Capture(b))
	return h
}

// SetLimit overrides the undo stack cap. Panics if n < 1.
func (h *History) SetLimit(n int) {
	if n < 1 {
		panic("shotplan: history limit must be at least 1")
	}
	h.limit = n
}

// SetDebounce overrides the coalescing window, in seconds. Zero disables
// coalescing: every recorded mutation snapshots on the next Update.
func (h *History) SetDebounce(seconds float32) {
	h.debounce = seconds
}

// Record notes that a qualifying mutation happened and re-arms the debounce
// deadline. Ignored while a restore is in progress.
func (h *History) Record() {
	if h.restoring {
		return
	}
	h.pending = true
	h.pendingIn = h.debounce
}

// Update advances the debounce deadline and takes the pending snapshot when
// it expires. Registered with the board by NewHistory.
func (h *History) Update(dt float32) {
	if !h.pending {
		return
	}
	h.pendingIn -= dt
	if h.pendingIn <= 0 {
		h.pending = false
		h.push()
	}
}

// Flush takes any pending snapshot immediately, without waiting for the
// debounce deadline.
func (h *History) Flush() {
	if h.pending {
		h.pending = false
		h.push()
	}
}

// push captures the scene, pushes it onto the undo stack, enforces the size
// cap (evicting the oldest non-floor entries), clears the redo stack, and
// notifies the observer.
func (h *History) push() {
	h.undo = append(h.undo, Capture(h.board))
	for len(h.undo) > h.limit {
		// Keep the floor at index 0; evict the oldest snapshot above it.
		copy(h.undo[1:], h.undo[2:])
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.redo = h.redo[:0]

	Log.Debug().Int("undo", len(h.undo)).Msg("snapshot pushed")
	h.notify()
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 1
}

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Undo steps the scene back to the previous snapshot. No-op when only the
// floor snapshot remains. A pending debounced snapshot is flushed first so
// the step being undone is the one the user just made.
//
// Returns ErrSnapshotCorrupt and leaves the scene untouched if the target
// snapshot cannot be restored.
func (h *History) Undo() error {
	h.Flush()
	if !h.CanUndo() {
		return nil
	}
	target := h.undo[len(h.undo)-2]
	if err := h.restore(target); err != nil {
		return err
	}
	h.redo = append(h.redo, h.undo[len(h.undo)-1])
	h.undo = h.undo[:len(h.undo)-1]
	h.notify()
	return nil
}

// Redo reapplies the most recently undone snapshot. No-op when the redo
// stack is empty. A pending debounced snapshot is flushed first; the push
// clears the redo stack, so a mutation made since the undo wins over a
// stale redo target.
func (h *History) Redo() error {
	h.Flush()
	if !h.CanRedo() {
		return nil
	}
	target := h.redo[len(h.redo)-1]
	if err := h.restore(target); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, target)
	h.notify()
	return nil
}

// restore replaces the live scene from a snapshot under the re-entrancy
// guard. Any pending debounced snapshot is cancelled: it would describe a
// scene that no longer exists.
func (h *History) restore(s Snapshot) error {
	h.restoring = true
	defer func() { h.restoring = false }()

	if err := s.restoreInto(h.board); err != nil {
		Log.Error().Err(err).Msg("snapshot restore failed")
		return err
	}
	h.pending = false
	return nil
}

// UndoDepth returns the undo stack length, floor included.
func (h *History) UndoDepth() int {
	return len(h.undo)
}

// RedoDepth returns the redo stack length.
func (h *History) RedoDepth() int {
	return len(h.redo)
}

func (h *History) notify() {
	if h.OnChange != nil {
		h.OnChange(h.CanUndo(), h.CanRedo())
	}
}
