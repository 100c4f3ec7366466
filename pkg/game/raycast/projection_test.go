package raycast

import (
	"math"
	"testing"
)

func TestWallHeight_FinitePositiveAndDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.0; d <= 2000; d += 0.5 {
		h := WallHeight(d, 20000)
		if math.IsInf(h, 0) || math.IsNaN(h) || h <= 0 {
			t.Fatalf("WallHeight(%v) = %v, want finite and positive", d, h)
		}
		if h >= prev {
			t.Fatalf("WallHeight(%v) = %v, not below WallHeight at smaller depth (%v)", d, h, prev)
		}
		prev = h
	}
}

func TestWallHeight_ZeroDepth(t *testing.T) {
	k, eps := 20000.0, Epsilon
	want := k / (0 + eps)
	h := WallHeight(0, k)
	if math.Abs(h-want) > 1e-9*want {
		t.Errorf("WallHeight(0) = %v, want %v", h, want)
	}
	if WallHeight(-5, 20000) != h {
		t.Error("negative depth must be clamped to zero")
	}
}

func TestShade_RangeAndDecreasing(t *testing.T) {
	if got := Shade(0, 0.0001); got != 255 {
		t.Errorf("Shade(0) = %v, want 255", got)
	}
	prev := math.Inf(1)
	for d := 0.0; d <= 5000; d += 1 {
		s := Shade(d, 0.0001)
		if s <= 0 || s > 255 {
			t.Fatalf("Shade(%v) = %v, want in (0, 255]", d, s)
		}
		if s >= prev {
			t.Fatalf("Shade(%v) = %v, not below previous %v", d, s, prev)
		}
		prev = s
	}
	if got := Shade(100, 0.0001); math.Abs(got-127.5) > 1e-9 {
		t.Errorf("Shade(100) = %v, want 127.5", got)
	}
}

func TestCorrectDepth(t *testing.T) {
	cases := []struct {
		name                     string
		depth, player, ray, want float64
	}{
		{"straight ahead", 250, 1.3, 1.3, 250},
		{"unnormalised angle", 80, 40, 40, 80},
		{"sixty degrees off", 100, 0, math.Pi / 3, 50},
		{"symmetric", 100, 0, -math.Pi / 3, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CorrectDepth(c.depth, c.player, c.ray)
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("CorrectDepth(%v, %v, %v) = %v, want %v", c.depth, c.player, c.ray, got, c.want)
			}
		})
	}
}

func TestProject_Placement(t *testing.T) {
	params := referenceParams()
	hit := RayHit{Index: 10, Angle: 0.2, Depth: 200}
	s := Project(hit, 0.2, params)

	if s.Width != 4 {
		t.Errorf("Width = %v, want 4", s.Width)
	}
	if s.X != 480+10*4 {
		t.Errorf("X = %v, want %v", s.X, 480+10*4)
	}
	wantH := 20000 / (200 + Epsilon)
	if math.Abs(s.Height-wantH) > 1e-9 {
		t.Errorf("Height = %v, want %v", s.Height, wantH)
	}
	if math.Abs(s.Y-(240-wantH/2)) > 1e-9 {
		t.Errorf("Y = %v, want %v", s.Y, 240-wantH/2)
	}
	if s.Shade != uint8(255/(1+200*200*0.0001)) {
		t.Errorf("Shade = %d, want %d", s.Shade, uint8(255/(1+200*200*0.0001)))
	}
}

func TestProject_ShadeUsesRawDepthHeightUsesCorrected(t *testing.T) {
	params := referenceParams()
	straight := Project(RayHit{Angle: 0, Depth: 300}, 0, params)
	skewed := Project(RayHit{Angle: math.Pi / 6, Depth: 300}, 0, params)

	if straight.Shade != skewed.Shade {
		t.Errorf("shade differs with angle: %d vs %d", straight.Shade, skewed.Shade)
	}
	if skewed.Height <= straight.Height {
		t.Errorf("skewed ray height %v should exceed straight height %v after correction", skewed.Height, straight.Height)
	}
}

func TestProject_OverTallSliceAtZeroDepth(t *testing.T) {
	s := Project(RayHit{Depth: 0}, 0, referenceParams())
	if math.IsInf(s.Height, 0) || math.IsNaN(s.Y) {
		t.Errorf("slice = %+v, want finite geometry", s)
	}
	if s.Shade != 255 {
		t.Errorf("Shade = %d, want 255", s.Shade)
	}
}
