package gameplay

import (
	"context"
	"path/filepath"
	"testing"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/engine/logging"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/telemetry"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	g, settings, err := BuildGame(config.Default(), world.DefaultGrid())
	if err != nil {
		t.Fatalf("BuildGame() error = %v", err)
	}
	o := NewOrchestrator(context.Background(), g, settings,
		logging.Component(logging.Discard(), "test"), telemetry.NoopTracer())
	o.ScreenshotDir = t.TempDir()
	return o
}

func TestTick_DrawOrder(t *testing.T) {
	o := newTestOrchestrator(t)
	o.Game().ShowOverlay = false
	o.Game().ShowHUD = false

	dl := renderer.NewDisplayList()
	if !o.Tick(nil, engineinput.State{}, dl) {
		t.Fatal("Tick() = false, want true")
	}

	ops := dl.Ops()
	if want := 1 + 2 + 64 + 1 + 120; len(ops) != want {
		t.Fatalf("op count = %d, want %d", len(ops), want)
	}
	if ops[0].Kind != renderer.OpClear || ops[0].Color != renderer.ColorBackground {
		t.Errorf("op 0 = %+v, want black clear", ops[0])
	}
	sky, ground := ops[1], ops[2]
	if sky.Color != renderer.ColorSky || sky.X != 480 || sky.Y != 0 || sky.W != 480 || sky.H != 240 {
		t.Errorf("sky = %+v", sky)
	}
	if ground.Color != renderer.ColorGround || ground.X != 480 || ground.Y != 240 || ground.H != 240 {
		t.Errorf("ground = %+v", ground)
	}

	// Map cells in row-major order with a 2 px gap
	for i := 0; i < 64; i++ {
		op := ops[3+i]
		row, col := i/8, i%8
		if op.Kind != renderer.OpFillRect || op.X != float64(col*60) || op.Y != float64(row*60) || op.W != 58 {
			t.Fatalf("cell op %d = %+v", i, op)
		}
		wantColor := renderer.ColorFloor
		if world.DefaultGrid().IsWall(row, col) {
			wantColor = renderer.ColorWall
		}
		if op.Color != wantColor {
			t.Errorf("cell (%d,%d) colour = %v, want %v", row, col, op.Color, wantColor)
		}
	}

	player := ops[67]
	if player.Kind != renderer.OpPoint || player.Color != renderer.ColorPlayer || player.X != 240 || player.Y != 240 {
		t.Errorf("player op = %+v", player)
	}

	for i, op := range ops[68:] {
		if op.Kind != renderer.OpFillRect || op.X != 480+float64(i)*4 || op.W != 4 {
			t.Fatalf("slice %d = %+v", i, op)
		}
		if op.Color.R != op.Color.G || op.Color.G != op.Color.B {
			t.Errorf("slice %d colour %v is not grey", i, op.Color)
		}
	}
}

func TestTick_OverlayDrawsRaysAndHitCells(t *testing.T) {
	o := newTestOrchestrator(t)
	o.Game().ShowHUD = false

	dl := renderer.NewDisplayList()
	o.Tick(nil, engineinput.State{}, dl)

	var lines, hitCells int
	for _, op := range dl.Ops() {
		switch {
		case op.Kind == renderer.OpLine && op.Color == renderer.ColorRay:
			lines++
		case op.Kind == renderer.OpFillRect && op.Color == renderer.ColorHitCell:
			hitCells++
		}
	}
	if lines != 120 || hitCells != 120 {
		t.Errorf("lines = %d, hit cells = %d, want 120 each", lines, hitCells)
	}
	if len(o.Hits()) != 120 {
		t.Errorf("len(Hits()) = %d, want 120", len(o.Hits()))
	}
}

func TestTick_InputAppliedAfterDrawing(t *testing.T) {
	o := newTestOrchestrator(t)
	dl := renderer.NewDisplayList()

	o.Tick(nil, engineinput.NewState(engineinput.ActionMoveForward), dl)

	for _, op := range dl.Ops() {
		if op.Kind == renderer.OpPoint && op.Color == renderer.ColorPlayer {
			if op.X != 240 || op.Y != 240 {
				t.Errorf("player drawn at (%v, %v), want pre-move (240, 240)", op.X, op.Y)
			}
		}
	}
	// Facing pi: forward is -x
	if p := o.Game().Player; p.X >= 240 {
		t.Errorf("player X = %v after moving forward, want < 240", p.X)
	}
	if o.Game().Frame != 1 {
		t.Errorf("Frame = %d, want 1", o.Game().Frame)
	}
}

func TestTick_QuitStopsWithoutDrawing(t *testing.T) {
	o := newTestOrchestrator(t)
	dl := renderer.NewDisplayList()

	if o.Tick([]engineinput.Event{engineinput.QuitEvent}, engineinput.State{}, dl) {
		t.Fatal("Tick() = true after quit event")
	}
	if dl.Len() != 0 {
		t.Errorf("drew %d ops on the quit frame", dl.Len())
	}
	if o.Game().Running() {
		t.Error("game still running after quit")
	}
	if o.Tick(nil, engineinput.State{}, dl) {
		t.Error("Tick() after quit = true, want false")
	}
}

func TestTick_ToggleEvents(t *testing.T) {
	o := newTestOrchestrator(t)
	overlay, hud := o.Game().ShowOverlay, o.Game().ShowHUD

	events := []engineinput.Event{
		engineinput.ActionEvent(engineinput.ActionToggleOverlay),
		engineinput.ActionEvent(engineinput.ActionToggleHUD),
	}
	o.Tick(events, engineinput.State{}, renderer.NewDisplayList())

	if o.Game().ShowOverlay == overlay || o.Game().ShowHUD == hud {
		t.Error("toggle events did not flip overlay and HUD")
	}
}

func TestTick_HUDDrawsText(t *testing.T) {
	o := newTestOrchestrator(t)
	o.Game().ShowHUD = true
	dl := renderer.NewDisplayList()
	o.Tick(nil, engineinput.State{}, dl)

	last := dl.Ops()[dl.Len()-1]
	if last.Kind != renderer.OpText || last.Color != renderer.ColorText {
		t.Errorf("last op = %+v, want HUD text", last)
	}
}

func TestTick_ScreenshotAndMapDump(t *testing.T) {
	o := newTestOrchestrator(t)
	events := []engineinput.Event{
		engineinput.ActionEvent(engineinput.ActionScreenshot),
		engineinput.ActionEvent(engineinput.ActionDebugMapDump),
	}
	o.Tick(events, engineinput.State{}, renderer.NewDisplayList())

	shots, _ := filepath.Glob(filepath.Join(o.ScreenshotDir, "screenshot-*.png"))
	if len(shots) != 1 {
		t.Errorf("screenshots = %v, want one", shots)
	}
	if dumps, _ := filepath.Glob(filepath.Join(o.ScreenshotDir, "map.txt")); len(dumps) != 1 {
		t.Error("map.txt not written")
	}
}

func TestBuildGame(t *testing.T) {
	g, settings, err := BuildGame(config.Default(), world.DefaultGrid())
	if err != nil {
		t.Fatalf("BuildGame() error = %v", err)
	}
	if settings.Ray.BlockSize != 60 || settings.Ray.MaxDepth != 480 {
		t.Errorf("BlockSize, MaxDepth = %v, %v, want 60, 480", settings.Ray.BlockSize, settings.Ray.MaxDepth)
	}
	if g.Player.X != 240 || g.Player.Y != 240 {
		t.Errorf("player = %+v, want configured start", g.Player)
	}
}

func TestBuildGame_StartMarker(t *testing.T) {
	grid, err := world.ParseGrid([]string{"####", "#P #", "#  #", "####"})
	if err != nil {
		t.Fatal(err)
	}
	g, _, err := BuildGame(config.Default(), grid)
	if err != nil {
		t.Fatalf("BuildGame() error = %v", err)
	}
	// 480/4 = 120 px cells; centre of (1,1)
	if g.Player.X != 180 || g.Player.Y != 180 {
		t.Errorf("player = (%v, %v), want (180, 180)", g.Player.X, g.Player.Y)
	}
}

func TestBuildGame_StartInWall(t *testing.T) {
	cfg := config.Default()
	cfg.StartX, cfg.StartY = 10, 10
	if _, _, err := BuildGame(cfg, world.DefaultGrid()); err == nil {
		t.Error("BuildGame() with start in a wall should fail")
	}
}
