package main

import (
	"math"
	"testing"
)

func TestTruncatePath(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"/short/path", 48, "/short/path"},
		{"/a/very/long/path/that/keeps/going/forever/and/ever/JSONs", 20, "...JSONs"},
	}
	for _, c := range cases {
		got := truncatePath(c.in, c.n)
		if len(got) > c.n+4 {
			t.Fatalf("truncatePath(%q, %d) = %q: too long", c.in, c.n, got)
		}
		if c.in == c.want && got != c.want {
			t.Fatalf("truncatePath(%q, %d) = %q, want unchanged", c.in, c.n, got)
		}
	}
}

func TestPadSeries(t *testing.T) {
	xs, ys := padSeries([]float64{0.5}, []float64{7})
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("lone keyframe not padded: %v %v", xs, ys)
	}
	if ys[0] != 7 || ys[1] != 7 {
		t.Fatalf("padded values changed: %v", ys)
	}
	if !(xs[1] > xs[0]) {
		t.Fatalf("padded times not increasing: %v", xs)
	}

	origX := []float64{0, 1}
	origY := []float64{1, 2}
	gx, gy := padSeries(origX, origY)
	if &gx[0] != &origX[0] || &gy[0] != &origY[0] {
		t.Fatalf("multi-point series should pass through untouched")
	}
}

func TestContainRect(t *testing.T) {
	// image twice as wide as tall, square view: letterboxed top and bottom
	x, y, w, h, scale := containRect(200, 100, 100, 100)
	if x != 0 || w != 100 {
		t.Fatalf("x=%v w=%v, want full width", x, w)
	}
	if h != 50 || y != 25 {
		t.Fatalf("h=%v y=%v, want centered half height", h, y)
	}
	if scale != 0.5 {
		t.Fatalf("scale=%v, want 0.5", scale)
	}

	// degenerate image falls back to the view rect
	x, y, w, h, scale = containRect(0, 0, 80, 60)
	if x != 0 || y != 0 || w != 80 || h != 60 || scale != 1 {
		t.Fatalf("degenerate fallback wrong: %v %v %v %v %v", x, y, w, h, scale)
	}
}

func TestTimeAtPixel(t *testing.T) {
	// unscaled image 128 wide, padding 16 left and 12 right: plot spans 100px
	if got := timeAtPixel(16, 0, 1, 128); got != 0 {
		t.Fatalf("left edge: got %v, want 0", got)
	}
	if got := timeAtPixel(116, 0, 1, 128); math.Abs(got-1) > 1e-6 {
		t.Fatalf("right edge: got %v, want 1", got)
	}
	if got := timeAtPixel(66, 0, 1, 128); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("midpoint: got %v, want 0.5", got)
	}
	// outside the plot area clamps
	if got := timeAtPixel(0, 0, 1, 128); got != 0 {
		t.Fatalf("clamp low: got %v", got)
	}
	if got := timeAtPixel(128, 0, 1, 128); got != 1 {
		t.Fatalf("clamp high: got %v", got)
	}
}

func TestNearestKeyframe(t *testing.T) {
	times := []float64{0.1, 0.4, 0.9}
	cases := []struct {
		t    float64
		want int
	}{
		{0.0, 0},
		{0.3, 1},
		{0.6, 1},
		{0.7, 2},
		{1.0, 2},
	}
	for _, c := range cases {
		if got := nearestKeyframe(times, c.t); got != c.want {
			t.Fatalf("nearestKeyframe(%v) = %d, want %d", c.t, got, c.want)
		}
	}
	if got := nearestKeyframe(nil, 0.5); got != -1 {
		t.Fatalf("empty times: got %d, want -1", got)
	}
}
