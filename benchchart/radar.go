// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/typofix/benchviz/benchreport"
)

// Summary writes a radar chart of the per-metric python/rust ratios. Each
// axis is a metric for which the ratio is defined; the plotted polygon is
// closed back to its first point, and a dashed ring marks ratio 1.
//
// gonum/plot has no polar projection, so the chart is drawn on a cartesian
// plot with hidden axes: axis i points at angle 2πi/n from vertical,
// clockwise, and a ratio r sits at distance r from the center.
func Summary(rep *benchreport.Report, path string) error {
	entries := rep.Summary()
	if len(entries) < 2 {
		return nil
	}

	n := len(entries)
	ratios := make([]float64, n)
	for i, e := range entries {
		ratios[i] = e.Ratio
	}
	maxR := math.Max(floats.Max(ratios), 1)

	p := plot.New()
	p.Title.Text = "Rust Performance Improvement (x times faster/smaller)"
	p.HideAxes()

	pos := func(radius float64, i int) plotter.XY {
		theta := 2 * math.Pi * float64(i) / float64(n)
		return plotter.XY{X: radius * math.Sin(theta), Y: radius * math.Cos(theta)}
	}

	// Spokes from the center out to each axis.
	for i := 0; i < n; i++ {
		spoke, err := plotter.NewLine(plotter.XYs{{}, pos(maxR, i)})
		if err != nil {
			return err
		}
		spoke.LineStyle.Color = color.RGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}
		spoke.LineStyle.Width = vg.Points(0.5)
		p.Add(spoke)
	}

	// Reference ring at ratio 1.
	ring, err := plotter.NewLine(circle(1, 128))
	if err != nil {
		return err
	}
	ring.LineStyle.Color = refColor
	ring.LineStyle.Width = vg.Points(1)
	ring.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(ring)

	// The ratio polygon, filled and outlined, closed back to the start.
	pts := make(plotter.XYs, n+1)
	for i, r := range ratios {
		pts[i] = pos(r, i)
	}
	pts[n] = pts[0]

	fill, err := plotter.NewPolygon(pts[:n])
	if err != nil {
		return err
	}
	fill.Color = color.NRGBA{R: 0xDE, G: 0xA5, B: 0x84, A: 0x40}
	fill.LineStyle.Width = 0
	p.Add(fill)

	outline, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	outline.LineStyle.Color = rustColor
	outline.LineStyle.Width = vg.Points(2)
	p.Add(outline)

	points, err := plotter.NewScatter(pts[:n])
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = rustColor
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)

	if err := axisLabels(p, entries, maxR, pos); err != nil {
		return err
	}

	// Fix a square, symmetric range with room for the axis captions.
	lim := maxR * 1.35
	p.X.Min, p.X.Max = -lim, lim
	p.Y.Min, p.Y.Max = -lim, lim

	return savePNG(p, 8*vg.Inch, 8*vg.Inch, path)
}

// axisLabels captions each axis just beyond the outermost ring, aligned
// away from the center so the text never overlaps the chart.
func axisLabels(p *plot.Plot, entries []benchreport.SummaryEntry, maxR float64, pos func(float64, int) plotter.XY) error {
	xys := make(plotter.XYs, len(entries))
	strs := make([]string, len(entries))
	for i, e := range entries {
		xys[i] = pos(maxR*1.12, i)
		strs[i] = fmt.Sprintf("%s (%.1fx)", e.Metric, e.Ratio)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		x, y := xys[i].X, xys[i].Y
		switch {
		case x > 0.1*maxR:
			labels.TextStyle[i].XAlign = draw.XLeft
		case x < -0.1*maxR:
			labels.TextStyle[i].XAlign = draw.XRight
		default:
			labels.TextStyle[i].XAlign = draw.XCenter
		}
		switch {
		case y > 0.1*maxR:
			labels.TextStyle[i].YAlign = draw.YBottom
		case y < -0.1*maxR:
			labels.TextStyle[i].YAlign = draw.YTop
		default:
			labels.TextStyle[i].YAlign = draw.YCenter
		}
	}
	p.Add(labels)
	return nil
}

// circle returns m points tracing a circle of the given radius.
func circle(radius float64, m int) plotter.XYs {
	pts := make(plotter.XYs, m+1)
	for i := 0; i <= m; i++ {
		theta := 2 * math.Pi * float64(i) / float64(m)
		pts[i] = plotter.XY{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return pts
}
