package gameplay

import (
	"context"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/devtools"
	"raycaster/pkg/game/raycast"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

// mapCellGap is the spacing left between cells on the 2D map
const mapCellGap = 2

// Orchestrator runs the per-frame loop body: events, drawing, then movement.
type Orchestrator struct {
	game     *state.Game
	settings Settings

	log    *logrus.Entry
	tracer trace.Tracer
	ctx    context.Context

	// ScreenshotDir is where screenshots and map dumps are written
	ScreenshotDir string
	// Width and Height are the full window size used for screenshots
	Width, Height int

	hits    []raycast.RayHit
	capture *renderer.DisplayList

	warnedBoundary bool
}

// NewOrchestrator creates an orchestrator driving g
func NewOrchestrator(ctx context.Context, g *state.Game, settings Settings, log *logrus.Entry, tracer trace.Tracer) *Orchestrator {
	return &Orchestrator{
		game:     g,
		settings: settings,
		log:      log,
		tracer:   tracer,
		ctx:      ctx,
		Width:    int(2 * settings.Ray.ViewHeight),
		Height:   int(settings.Ray.ViewHeight),
		hits:     make([]raycast.RayHit, 0, settings.Ray.RayCount),
		capture:  renderer.NewDisplayList(),
	}
}

// Game returns the game being driven
func (o *Orchestrator) Game() *state.Game {
	return o.game
}

// Hits returns the ray hits of the most recent frame
func (o *Orchestrator) Hits() []raycast.RayHit {
	return o.hits
}

// Tick runs one frame and reports whether the loop should continue.
// Drawing always uses the pose from before this frame's input.
func (o *Orchestrator) Tick(events []engineinput.Event, keys engineinput.State, canvas renderer.Canvas) bool {
	if !o.game.Running() {
		return false
	}

	req := ProcessEvents(o.game, events)
	if !o.game.Running() {
		o.log.WithField("frame", o.game.Frame).Info("quit requested")
		return false
	}

	if req.Screenshot {
		o.capture.Reset()
		canvas = renderer.Tee(canvas, o.capture)
	}

	o.drawBackground(canvas)
	o.drawMap(canvas)
	o.drawView(canvas)
	if o.game.ShowHUD {
		o.drawHUD(canvas)
	}

	ApplyInput(o.game, keys, o.settings.Move)
	o.game.Frame++

	if req.Screenshot {
		o.saveScreenshot()
	}
	if req.MapDump {
		o.dumpMap()
	}
	return true
}

func (o *Orchestrator) drawBackground(c renderer.Canvas) {
	c.SetDrawColor(renderer.ColorBackground)
	c.Clear()

	view := o.settings.Ray
	c.SetDrawColor(renderer.ColorSky)
	c.FillRect(view.ViewOriginX, 0, view.ViewHeight, view.ViewHeight/2)
	c.SetDrawColor(renderer.ColorGround)
	c.FillRect(view.ViewOriginX, view.ViewHeight/2, view.ViewHeight, view.ViewHeight/2)
}

func (o *Orchestrator) drawMap(c renderer.Canvas) {
	bs := o.settings.Ray.BlockSize
	grid := o.game.Grid
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if grid.IsWall(row, col) {
				c.SetDrawColor(renderer.ColorWall)
			} else {
				c.SetDrawColor(renderer.ColorFloor)
			}
			c.FillRect(float64(col)*bs, float64(row)*bs, bs-mapCellGap, bs-mapCellGap)
		}
	}

	c.SetDrawColor(renderer.ColorPlayer)
	c.DrawPoint(o.game.Player.X, o.game.Player.Y)
}

// drawView casts every ray and draws its map overlay and wall slice.
func (o *Orchestrator) drawView(c renderer.Canvas) {
	_, span := o.tracer.Start(o.ctx, "frame.cast_rays")
	defer span.End()

	params := o.settings.Ray
	player := o.game.Player
	bs := params.BlockSize

	o.hits = o.hits[:0]
	var boundary, maxDepth int
	for hit := range raycast.CastRays(player, o.game.Grid, params) {
		o.hits = append(o.hits, hit)
		switch hit.Kind {
		case raycast.HitBoundary:
			boundary++
		case raycast.HitMaxDepth:
			maxDepth++
		}

		if o.game.ShowOverlay {
			if hit.Kind == raycast.HitWall {
				c.SetDrawColor(renderer.ColorHitCell)
				c.FillRect(float64(hit.Col)*bs, float64(hit.Row)*bs, bs-mapCellGap, bs-mapCellGap)
			}
			c.SetDrawColor(renderer.ColorRay)
			c.DrawLine(player.X, player.Y, hit.HitX, hit.HitY)
		}

		slice := raycast.Project(hit, player.Angle, params)
		c.SetDrawColor(renderer.Gray(slice.Shade))
		c.FillRect(slice.X, slice.Y, slice.Width, slice.Height)
	}

	span.SetAttributes(
		attribute.Int64("frame", int64(o.game.Frame)),
		attribute.Int("rays", len(o.hits)),
		attribute.Int("hits.boundary", boundary),
		attribute.Int("hits.max_depth", maxDepth),
	)

	if boundary > 0 && !o.warnedBoundary {
		o.warnedBoundary = true
		o.log.WithField("rays", boundary).Warn("rays left the map; the map has no closed border")
	}
}

func (o *Orchestrator) drawHUD(c renderer.Canvas) {
	p := o.game.Player
	row, col := p.Cell(o.settings.Move.BlockSize)
	c.SetDrawColor(renderer.ColorText)
	c.DrawText(4, 4, gotext.Get("Position %.0f, %.0f  Cell %d, %d", p.X, p.Y, row, col))
	c.DrawText(4, 20, gotext.Get("Angle %.2f  Frame %d", p.Angle, o.game.Frame))
}

func (o *Orchestrator) saveScreenshot() {
	path, err := devtools.SaveScreenshotPNG(o.capture, o.Width, o.Height, o.ScreenshotDir)
	if err != nil {
		o.log.WithError(err).Error("screenshot failed")
		return
	}
	o.log.WithField("path", path).Info(gotext.Get("Screenshot saved"))
}

func (o *Orchestrator) dumpMap() {
	path, err := devtools.DumpMapToFile(o.game, o.hits, o.settings.Move.BlockSize, o.ScreenshotDir)
	if err != nil {
		o.log.WithError(err).Error("map dump failed")
		return
	}
	o.log.WithField("path", path).Info(gotext.Get("Map dumped"))
}

// String describes the orchestrator's current pose for logs
func (o *Orchestrator) String() string {
	p := o.game.Player
	return fmt.Sprintf("frame %d at (%.1f, %.1f) facing %.3f", o.game.Frame, p.X, p.Y, p.Angle)
}
