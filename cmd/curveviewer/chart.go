package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jesse-james522/The-Isle-Stat-Reader/cmd/curveviewer/uihelpers"
	"github.com/jesse-james522/The-Isle-Stat-Reader/src/curves"
	"github.com/jesse-james522/The-Isle-Stat-Reader/src/gamedata"
)

// elderSplitTime is the lifespan fraction where the second growth stage
// takes over from the first.
const elderSplitTime = 0.75

var stageColors = []drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.Color{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff},
		StrokeWidth: 1.0,
	}
}

// chartSize derives the chart pixel dimensions from the current window
// width so the rendered PNG tracks window resizes.
func chartSize(state *uiState) (int, int) {
	rawW := 0
	if state != nil && state.window != nil && state.window.Canvas() != nil {
		rawW = int(state.window.Canvas().Size().Width)
	}
	return uihelpers.ComputeChartDimensions(rawW)
}

// padSeries duplicates a lone keyframe slightly to the right so the chart
// library always has a drawable segment.
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 0.01}, []float64{ys[0], ys[0]}
}

func renderCurveChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	if state == nil || len(state.series) == 0 {
		return blank(cw, chh)
	}

	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	maxX := 1.0
	var series []chart.Series
	for i, ps := range state.series {
		if len(ps.Times) == 0 {
			continue
		}
		xs, ys := padSeries(ps.Times, ps.Values)
		for _, v := range ys {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		for _, x := range xs {
			if x > maxX {
				maxX = x
			}
		}
		col := stageColors[i%len(stageColors)]
		series = append(series, chart.ContinuousSeries{
			Name:    curves.StageName(i),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2.0,
				DotColor:    col,
				DotWidth:    4.0,
			},
		})
	}
	if len(series) == 0 || minY > maxY {
		return blank(cw, chh)
	}

	nMin, nMax := uihelpers.NiceAxisBounds(minY, maxY)

	// Red dashed marker where the elder stage takes over.
	series = append(series, chart.ContinuousSeries{
		Name:    "Elder Split",
		XValues: []float64{elderSplitTime, elderSplitTime},
		YValues: []float64{nMin, nMax},
		Style: chart.Style{
			StrokeColor:     chart.ColorRed,
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	})

	var xTicks []chart.Tick
	for _, tv := range uihelpers.PercentTicks(0.25) {
		xTicks = append(xTicks, chart.Tick{Value: tv.Value, Label: tv.Label})
	}
	var yTicks []chart.Tick
	for _, v := range uihelpers.BuildValueTicks(nMin, nMax, 6) {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: uihelpers.FormatValueTick(v)})
	}

	padBottom := 28
	if state.showHints {
		padBottom += 18
	}
	ch := chart.Chart{
		Title:  fmt.Sprintf("Plot of %s", state.plotTitle),
		Width:  cw,
		Height: chh,
		Background: chart.Style{
			Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom},
		},
		XAxis: chart.XAxis{
			Name:           "Time",
			Ticks:          xTicks,
			Range:          &chart.ContinuousRange{Min: 0, Max: maxX},
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           state.yLabel,
			Ticks:          yTicks,
			Range:          &chart.ContinuousRange{Min: nMin, Max: nMax},
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		gamedata.Warnf("chart render failed: %v", err)
		return blank(cw, chh)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		gamedata.Warnf("chart decode failed: %v", err)
		return blank(cw, chh)
	}
	if state.showHints {
		img = drawHint(img, "X axis: fraction of lifespan. Red dashed line: elder split at 75%.")
	}
	return img
}

// blank returns a plain white image used when there is nothing to plot or
// rendering failed.
func blank(w, h int) image.Image {
	if w <= 0 {
		w = 700
	}
	if h <= 0 {
		h = 420
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}

// drawHint paints a one-line help text along the bottom edge of the chart.
func drawHint(src image.Image, text string) image.Image {
	b := src.Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, src, b.Min, draw.Src)

	face := basicfont.Face7x13
	margin := 6
	x := b.Min.X + margin
	y := b.Max.Y - margin
	dot := fixed.P(x, y)
	col := image.NewUniform(color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff})
	for _, r := range text {
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, col, image.Point{}, mask, maskp, draw.Over)
		dot.X += advance
	}
	return img
}

// exportChartPNG writes the currently displayed chart to a PNG file.
func exportChartPNG(state *uiState, path string) {
	if state == nil || state.plotCanvas == nil || state.plotCanvas.Image == nil {
		gamedata.Warnf("export skipped: no chart rendered")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		gamedata.Errorf("export chart: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, state.plotCanvas.Image); err != nil {
		gamedata.Errorf("export chart: %v", err)
		return
	}
	gamedata.Infof("chart exported to %s", path)
}
