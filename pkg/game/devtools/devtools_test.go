package devtools

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/raycast"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	if got, want := ScreenshotName(ts), "screenshot-20240309-070501.png"; got != want {
		t.Errorf("ScreenshotName() = %q, want %q", got, want)
	}
}

func TestSaveScreenshotPNG(t *testing.T) {
	dir := t.TempDir()
	frame := renderer.NewDisplayList()
	frame.SetDrawColor(renderer.ColorSky)
	frame.Clear()

	path, err := SaveScreenshotPNG(frame, 16, 8, dir)
	if err != nil {
		t.Fatalf("SaveScreenshotPNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("image size = %v, want 16x8", b)
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	if r>>8 != 135 || g>>8 != 206 || b>>8 != 235 {
		t.Errorf("pixel = %d,%d,%d, want sky colour", r>>8, g>>8, b>>8)
	}
}

func TestSaveScreenshotPNG_InvalidSize(t *testing.T) {
	if _, err := SaveScreenshotPNG(renderer.NewDisplayList(), 0, 8, t.TempDir()); err == nil {
		t.Error("SaveScreenshotPNG() with zero width should fail")
	}
}

func TestRenderMap_MarksPlayerAndHits(t *testing.T) {
	g := state.NewGame(world.DefaultGrid(), state.Player{X: 90, Y: 90})
	hits := []raycast.RayHit{
		{Row: 0, Col: 1, Kind: raycast.HitWall},
		{Row: 1, Col: 1, Kind: raycast.HitWall},
		{Row: 3, Col: 3, Kind: raycast.HitMaxDepth},
	}

	lines := RenderMap(g, hits, 60)
	if len(lines) != 8 {
		t.Fatalf("len(lines) = %d, want 8", len(lines))
	}
	if lines[0][1] != SymbolHit {
		t.Errorf("hit cell = %q, want %q", lines[0][1], SymbolHit)
	}
	if lines[1][1] != SymbolPlayer {
		t.Errorf("player cell = %q, want %q", lines[1][1], SymbolPlayer)
	}
	if lines[3][3] != '.' {
		t.Errorf("max-depth hit should not be marked, got %q", lines[3][3])
	}
	if lines[0][0] != '#' {
		t.Errorf("wall cell = %q, want '#'", lines[0][0])
	}
}

func TestDumpMapToFile(t *testing.T) {
	dir := t.TempDir()
	g := state.NewGame(world.DefaultGrid(), state.Player{X: 90, Y: 90})

	path, err := DumpMapToFile(g, nil, 60, dir)
	if err != nil {
		t.Fatalf("DumpMapToFile() error = %v", err)
	}
	if filepath.Base(path) != "map.txt" {
		t.Errorf("path = %q, want map.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#@") {
		t.Errorf("dump missing player marker:\n%s", data)
	}
}
