// Package uihelpers holds the pure layout and axis math of the viewer so it
// stays testable without a running Fyne app.
package uihelpers

import (
	"fmt"
	"math"
	"strconv"
)

// ComputeChartDimensions applies the width/height clamp rules used for the
// plot image. Input: desired raw width (e.g. canvas width). Returns clamped
// width and height with a roughly 3:2 aspect.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 700 {
		w = 700
	}
	h := int(float32(w) * 0.6)
	if h < 360 {
		h = 360
	}
	if h > 620 {
		h = 620
	}
	return w, h
}

// PercentTicks returns X-axis ticks across the normalized lifespan [0,1],
// labeled as percentages ("0%" .. "100%"), one every `step` fraction.
func PercentTicks(step float64) []TickValue {
	if step <= 0 || step > 1 {
		step = 0.25
	}
	var out []TickValue
	for v, last := 0.0, false; !last; v += step {
		// The final tick lands on exactly 1.0 even when the step does not
		// divide it; accumulated float error counts as having arrived.
		if v >= 1.0-1e-9 {
			v = 1.0
			last = true
		}
		out = append(out, TickValue{Value: round6(v), Label: fmt.Sprintf("%d%%", int(math.Round(v*100)))})
	}
	return out
}

// TickValue pairs a tick position with its label; callers map it onto the
// chart library's tick type.
type TickValue struct {
	Value float64
	Label string
}

// NiceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func NiceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// BuildValueTicks generates up to n tick positions spanning [min,max] using
// the 1, 2, 2.5, 5 step pattern.
func BuildValueTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// FormatValueTick provides a compact label for a numeric tick.
func FormatValueTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	case av == 0:
		return "0"
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// round6 rounds to 6 decimal places to stabilize labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
