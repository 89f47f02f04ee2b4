package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 700},
		{699, 700},
		{700, 700},
		{1400, 1400},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 360 || h > 620 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestPercentTicks(t *testing.T) {
	ticks := PercentTicks(0.25)
	if len(ticks) != 5 {
		t.Fatalf("expected 5 ticks for step 0.25, got %v", ticks)
	}
	if ticks[0].Label != "0%" || ticks[0].Value != 0 {
		t.Fatalf("first tick wrong: %+v", ticks[0])
	}
	last := ticks[len(ticks)-1]
	if last.Label != "100%" || last.Value != 1 {
		t.Fatalf("last tick wrong: %+v", last)
	}
	if ticks[2].Label != "50%" {
		t.Fatalf("middle tick wrong: %+v", ticks[2])
	}

	// Non-dividing step still ends at exactly 100%.
	odd := PercentTicks(0.3)
	if len(odd) != 5 {
		t.Fatalf("expected 5 ticks for step 0.3, got %v", odd)
	}
	lastOdd := odd[len(odd)-1]
	if lastOdd.Value != 1 || lastOdd.Label != "100%" {
		t.Fatalf("odd step must clamp to 100%%: %+v", odd)
	}
	for i := 1; i < len(odd); i++ {
		if !(odd[i].Value > odd[i-1].Value) {
			t.Fatalf("ticks not increasing: %v", odd)
		}
	}

	// A step accumulating just short of 1.0 must not emit 100% twice.
	tenth := PercentTicks(0.1)
	if len(tenth) != 11 {
		t.Fatalf("expected 11 ticks for step 0.1, got %v", tenth)
	}
	if tenth[10].Value != 1 || tenth[10].Label != "100%" {
		t.Fatalf("last tenth tick wrong: %+v", tenth[10])
	}

	// Invalid step falls back to quarters.
	def := PercentTicks(0)
	if len(def) != 5 {
		t.Fatalf("fallback step wrong: %v", def)
	}
}

func TestNiceAxisBounds(t *testing.T) {
	a, b := NiceAxisBounds(3, 97)
	if a > 3 || b < 97 {
		t.Fatalf("bounds must contain the data: [%v,%v]", a, b)
	}
	// Degenerate span is widened.
	a, b = NiceAxisBounds(5, 5)
	if !(b > a) {
		t.Fatalf("degenerate span not widened: [%v,%v]", a, b)
	}
}

func TestBuildValueTicks(t *testing.T) {
	cases := []struct {
		min, max float64
		n        int
	}{
		{0, 100, 6},
		{0, 1, 5},
		{5, 5.2, 4},
		{-20, 40, 6},
	}
	for _, c := range cases {
		ticks := BuildValueTicks(c.min, c.max, c.n)
		if len(ticks) < 2 {
			t.Fatalf("[%v,%v] n=%d: expected at least 2 ticks got %v", c.min, c.max, c.n, ticks)
		}
		for i := 1; i < len(ticks); i++ {
			if !(ticks[i] > ticks[i-1]) {
				t.Fatalf("ticks not increasing: %v", ticks)
			}
		}
		if ticks[0] > c.min || ticks[len(ticks)-1] < c.max {
			t.Fatalf("ticks must span the data: %v for [%v,%v]", ticks, c.min, c.max)
		}
	}
	if got := BuildValueTicks(0, 10, 1); got != nil {
		t.Fatalf("invalid n must yield nil, got %v", got)
	}
	if got := BuildValueTicks(math.NaN(), 1, 5); got != nil {
		t.Fatalf("NaN input must yield nil, got %v", got)
	}
}

func TestFormatValueTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1234, "1234"},
		{123.4, "123"},
		{12.34, "12.3"},
		{1.234, "1.23"},
		{0.1234, "0.123"},
		{0.001234, "0.0012"},
	}
	for _, c := range cases {
		if got := FormatValueTick(c.in); got != c.want {
			t.Fatalf("FormatValueTick(%v)=%q want %q", c.in, got, c.want)
		}
	}
}
