// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders comparison charts from a benchmark Report as
// PNG images using gonum/plot.
package benchchart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/typofix/benchviz/benchreport"
)

// Bar colors follow each language's conventional palette.
var (
	rustColor   = color.RGBA{R: 0xDE, G: 0xA5, B: 0x84, A: 0xFF}
	pythonColor = color.RGBA{R: 0x37, G: 0x76, B: 0xAB, A: 0xFF}

	calloutColor = color.RGBA{G: 0x80, A: 0xFF}                   // green
	refColor     = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF} // gray
)

// Output file names, one per chart.
const (
	StartupFile    = "startup_time.png"
	CorrectionFile = "correction_time.png"
	MemoryFile     = "memory_usage.png"
	SummaryFile    = "summary_radar.png"
)

// Render writes into dir every chart whose data is present in rep,
// creating dir if needed. Each chart is generated independently: a failure
// in one does not prevent the others from being written. Render returns
// the joined errors of the charts that failed.
func Render(rep *benchreport.Report, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	var errs []error
	if len(rep.Startup) > 0 {
		errs = append(errs, Startup(rep, filepath.Join(dir, StartupFile)))
	}
	if len(rep.Correction.Tests) > 0 {
		errs = append(errs, Correction(rep, filepath.Join(dir, CorrectionFile)))
	}
	if len(rep.Memory) > 0 {
		errs = append(errs, Memory(rep, filepath.Join(dir, MemoryFile)))
	}
	// A radar chart with a single axis is degenerate, so the summary
	// needs at least two metrics with a defined ratio.
	if len(rep.Summary()) >= 2 {
		errs = append(errs, Summary(rep, filepath.Join(dir, SummaryFile)))
	}
	return errors.Join(errs...)
}

func labelColor(label string) color.Color {
	if label == benchreport.LabelRust {
		return rustColor
	}
	return pythonColor
}

// A bar is one labeled value of a single-metric chart.
type bar struct {
	label string
	value float64
}

// metricBars collects the bars present in a metric map in the fixed label
// order rust, python, scaling each value by scale.
func metricBars(vals map[string]float64, scale float64) []bar {
	var bars []bar
	for _, label := range []string{benchreport.LabelRust, benchreport.LabelPython} {
		if v, ok := vals[label]; ok {
			bars = append(bars, bar{label, v * scale})
		}
	}
	return bars
}

// displayName maps a label to its axis caption.
func displayName(label string) string {
	switch label {
	case benchreport.LabelRust:
		return "Rust"
	case benchreport.LabelPython:
		return "Python"
	}
	return label
}

// addBars draws one colored bar per entry at nominal positions 0..n-1.
// Each bar gets its own BarChart so it can carry its own color; the other
// slots of each chart are zero-height and invisible.
func addBars(p *plot.Plot, bars []bar) error {
	names := make([]string, len(bars))
	for i, b := range bars {
		heights := make(plotter.Values, len(bars))
		heights[i] = b.value
		bc, err := plotter.NewBarChart(heights, vg.Points(50))
		if err != nil {
			return err
		}
		bc.Color = labelColor(b.label)
		bc.LineStyle.Width = vg.Points(1)
		bc.LineStyle.Color = color.Black
		p.Add(bc)
		names[i] = displayName(b.label)
	}
	p.NominalX(names...)
	return nil
}

// annotateValues writes each bar's formatted value just above it.
func annotateValues(p *plot.Plot, bars []bar, format string) error {
	xys := make(plotter.XYs, len(bars))
	strs := make([]string, len(bars))
	for i, b := range bars {
		xys[i] = plotter.XY{X: float64(i), Y: b.value}
		strs[i] = fmt.Sprintf(format, b.value)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return err
	}
	labels.Offset = vg.Point{Y: vg.Points(3)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(labels)
	return nil
}

// annotateCallout writes a headline annotation, such as "9.8x faster",
// centered near the top of the plot. The caller must have fixed the Y range
// already.
func annotateCallout(p *plot.Plot, text string, nbars int) error {
	x := float64(nbars-1) / 2
	y := p.Y.Max * 0.95
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	labels.TextStyle[0].Color = calloutColor
	labels.TextStyle[0].Font.Size = vg.Points(14)
	labels.TextStyle[0].XAlign = draw.XCenter
	labels.TextStyle[0].YAlign = draw.YTop
	p.Add(labels)
	return nil
}

func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	return p.Save(w, h, path)
}
