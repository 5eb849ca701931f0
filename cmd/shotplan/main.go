// Command shotplan runs a minimal interactive shot-planning board: drag the
// actor and camera markers to lay down movement trails, drag curve handles
// to bend them, tap a curve to insert a bend point, long-press a chain to
// delete it, and press Z/Y to undo/redo.
package main

import (
	"errors"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/shotplan"
)

const windowTitle = "shotplan"

type game struct {
	board   *shotplan.Board
	history *shotplan.History
	trails  *shotplan.TrailManager
	press   *shotplan.LongPress

	// Drag state: at most one of these is active.
	dragMarker *shotplan.Object
	dragArrow  *shotplan.Arrow
	dragAnchor shotplan.AnchorRef

	selected *shotplan.Arrow

	width, height int
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	cx, cy := ebiten.CursorPosition()
	p := g.board.GetPointer(float64(cx), float64(cy))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointerDown(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.pointerMove(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointerUp(p)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if err := g.history.Undo(); err != nil {
			return err
		}
		g.dropInteraction()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		if err := g.history.Redo(); err != nil {
			return err
		}
		g.dropInteraction()
	}

	g.press.Update(dt)
	g.board.Update(dt)
	return nil
}

// dropInteraction forgets drag and selection state. A restore replaces the
// scene wholesale, so anything held across it points at removed entities.
func (g *game) dropInteraction() {
	g.dragMarker = nil
	g.dragArrow = nil
	g.selected = nil
}

func (g *game) pointerDown(p shotplan.Vec2) {
	g.press.Begin(p.X, p.Y)

	obj := g.board.ObjectAt(p)
	if obj == nil {
		// Tapping a curve body inserts a bend point on the selected arrow.
		if g.selected != nil && !g.selected.IsRemoved() && g.selected.HitLine(p, 12) {
			g.selected.InsertControlPoint(p)
		}
		return
	}

	switch obj.Kind {
	case shotplan.KindActor, shotplan.KindCamera:
		g.dragMarker = obj
		g.trails.BeginDrag(obj)
	case shotplan.KindControlHandle, shotplan.KindStartHandle, shotplan.KindEndHandle:
		if a := g.board.ArrowByEntity(obj.EntityID); a != nil {
			g.dragArrow = a
			switch obj.Kind {
			case shotplan.KindStartHandle:
				g.dragAnchor = shotplan.AnchorStart
			case shotplan.KindEndHandle:
				g.dragAnchor = shotplan.AnchorEnd
			default:
				g.dragAnchor = shotplan.ControlAnchor(obj.HandleIndex)
			}
		}
	case shotplan.KindCurveLine:
		// Tapping the selected curve's own body inserts a bend point there;
		// tapping any other curve selects it.
		if g.selected != nil && !g.selected.IsRemoved() && g.selected.Line() == obj {
			g.selected.InsertControlPoint(p)
			return
		}
		if a := g.trails.ChainAt(p, 12); a != nil {
			g.selected = a
		} else if a := g.board.ArrowByEntity(obj.EntityID); a != nil {
			g.selected = a
		}
	}
}

func (g *game) pointerMove(p shotplan.Vec2) {
	g.press.Move(p.X, p.Y)

	switch {
	case g.dragMarker != nil:
		g.board.MoveObject(g.dragMarker, p.X, p.Y)
	case g.dragArrow != nil && !g.dragArrow.IsRemoved():
		g.dragArrow.MoveAnchor(g.dragAnchor, p)
	}
}

func (g *game) pointerUp(p shotplan.Vec2) {
	g.press.End()

	if g.dragMarker != nil {
		g.trails.CompleteDrag(g.dragMarker)
	}
	g.dragMarker = nil
	g.dragArrow = nil
}

// deleteChainAt removes the whole chain under a long-press, or a
// free-standing arrow when the press lands on one.
func (g *game) deleteChainAt(x, y float64) {
	p := shotplan.Vec2{X: x, Y: y}
	if a := g.trails.ChainAt(p, 12); a != nil {
		g.trails.RemoveChain(a.ChainID)
		g.selected = nil
		return
	}
	if obj := g.board.ObjectAt(p); obj != nil && obj.Kind == shotplan.KindCurveLine {
		if a := g.board.ArrowByEntity(obj.EntityID); a != nil {
			a.Remove()
			g.selected = nil
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.board.Draw(screen)
	ebitenutil.DebugPrint(screen, "drag markers to build trails | Z undo | Y redo | hold to delete")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	cfg := loadConfig()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(parseLevel(cfg.LogLevel))
	shotplan.SetLogger(logger)

	board := shotplan.NewBoard()
	board.InsertMinDist = cfg.Arrow.InsertMinDist
	history := shotplan.NewHistory(board)
	history.SetLimit(cfg.History.Limit)
	history.SetDebounce(float32(cfg.History.DebounceMillis) / 1000)
	trails := shotplan.NewTrailManager(board, history)
	trails.TapThreshold = cfg.Trail.TapThreshold
	trails.SweepAfter = float32(cfg.Trail.SweepMillis) / 1000

	if cfg.Background != "" {
		img, _, err := ebitenutil.NewImageFromFile(cfg.Background)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Background).Msg("could not load floor plan")
		} else {
			board.SetBackground(img)
		}
	}

	// Starting scene: two actors, one camera, a label.
	shotplan.NewActorMarker(board, 200, 300, shotplan.ColorRed)
	shotplan.NewActorMarker(board, 320, 420, shotplan.ColorBlue)
	shotplan.NewCameraMarker(board, 520, 360, math.Pi)
	shotplan.NewLabel(board, 40, 40, "Scene 12: kitchen", 16, shotplan.ColorBlack)

	g := &game{
		board:   board,
		history: history,
		trails:  trails,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	g.press = shotplan.NewLongPress(g.deleteChainAt)
	g.press.Duration = float32(cfg.Gesture.LongPressMillis) / 1000
	g.press.Slop = cfg.Gesture.LongPressSlop

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}

// loadConfig loads the config from the working directory, exiting on a
// malformed file.
func loadConfig() shotplan.Config {
	cfg, err := shotplan.LoadConfig(".")
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("bad config")
	}
	return cfg
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "trace":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
