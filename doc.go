// Package shotplan is a touch-first shot planning canvas for [Ebitengine].
//
// Shotplan provides the core of a storyboarding tool: a retained board of
// actor and camera markers over a floor plan, smooth movement arrows with
// draggable anchors, trail chaining that records a marker's drag history as
// ghosts and curve segments, and bounded whole-scene undo/redo.
//
// # Quick start
//
// Create a [Board], attach the engines, and drive everything from your game
// loop:
//
//	board := shotplan.NewBoard()
//	history := shotplan.NewHistory(board)
//	trails := shotplan.NewTrailManager(board, history)
//
//	actor := shotplan.NewActorMarker(board, 100, 100, shotplan.ColorRed)
//
//	// once per frame:
//	board.Update(dt)
//	board.Draw(screen)
//
// Dragging a marker through [TrailManager.BeginDrag] and
// [TrailManager.CompleteDrag] leaves a ghost at the old pose and a curve
// segment joining old to new. Every drag of the same marker extends its
// chain; [TrailManager.RemoveChain] deletes the whole chain atomically.
//
// # Curves
//
// [NewArrow] draws a smooth curve between two anchors with an optional
// arrowhead. The curve passes through every anchor; tapping near the line
// inserts a new control point there ([Arrow.InsertControlPoint]) and
// dragging any handle reshapes it ([Arrow.MoveAnchor]). The underlying
// spline math lives in the curve subpackage.
//
// # History
//
// [NewHistory] observes every board mutation and keeps a bounded stack of
// whole-scene snapshots, debounced so a burst of drag updates collapses to
// one entry. [History.Undo] and [History.Redo] restore entire scenes; the
// initial scene is never evicted.
//
// All engines are single-threaded and frame-driven: timers advance through
// [Board.Update], nothing spawns goroutines, and headless tests drive time
// by hand.
//
// [Ebitengine]: https://ebitengine.org
package shotplan
