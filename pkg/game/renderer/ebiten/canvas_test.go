package ebiten

import (
	"math"
	"testing"

	"raycaster/pkg/game/renderer"
)

func TestClipRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       [4]float64
	}{
		{"inside", 10, 10, 5, 5, [4]float64{10, 10, 5, 5}},
		{"over tall slice", 480, -1e9, 4, 2e9, [4]float64{480, 0, 4, 480}},
		{"negative size", 20, 20, -10, -10, [4]float64{10, 10, 10, 10}},
		{"nan", math.NaN(), 0, 1, 1, [4]float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := clipRect(tt.x, tt.y, tt.w, tt.h, 960, 480)
			if got := [4]float64{x, y, w, h}; got != tt.want {
				t.Errorf("clipRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipRect_OffScreenIsEmpty(t *testing.T) {
	_, _, w, _ := clipRect(2000, 10, 5, 5, 960, 480)
	if w > 0 {
		t.Errorf("width = %v, want <= 0", w)
	}
}

func TestFrameBuffer_SwapPublishesBack(t *testing.T) {
	f := newFrameBuffer()
	back := f.Back()
	back.SetDrawColor(renderer.ColorSky)
	back.Clear()
	f.Swap()

	f.Front(func(front *renderer.DisplayList) {
		if front.Len() != 1 {
			t.Errorf("front Len() = %d, want 1", front.Len())
		}
	})
	if f.Back().Len() != 0 {
		t.Error("Back() did not return an empty list")
	}
}
