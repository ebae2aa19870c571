// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/typofix/benchviz/benchreport"
)

// Correction writes a grouped bar chart of correction times in
// milliseconds: one group per test case in first-seen order, one bar per
// implementation. A test case with no data for an implementation gets a
// zero-height bar, and only non-zero bars are annotated.
func Correction(rep *benchreport.Report, path string) error {
	tests := rep.Correction.Tests
	if len(tests) == 0 {
		return nil
	}

	rust := make(plotter.Values, len(tests))
	python := make(plotter.Values, len(tests))
	for i, test := range tests {
		vals := rep.Correction.Corrections[test]
		rust[i] = vals[benchreport.LabelRust] / 1000 // µs → ms
		python[i] = vals[benchreport.LabelPython] / 1000
	}

	p := plot.New()
	p.Title.Text = "Correction Time by Test Case"
	p.X.Label.Text = "Test Case"
	p.Y.Label.Text = "Time (milliseconds)"

	w := vg.Points(18)
	addSeries := func(vals plotter.Values, name string, clr color.Color, offset vg.Length) error {
		bc, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		bc.Color = clr
		bc.LineStyle.Width = vg.Points(1)
		bc.LineStyle.Color = color.Black
		bc.Offset = offset
		p.Add(bc)
		p.Legend.Add(name, bc)
		return nil
	}
	if err := addSeries(rust, "Rust", rustColor, -w/2); err != nil {
		return err
	}
	if err := addSeries(python, "Python", pythonColor, w/2); err != nil {
		return err
	}
	p.Legend.Top = true
	p.NominalX(tests...)

	max := 0.0
	for i := range tests {
		if rust[i] > max {
			max = rust[i]
		}
		if python[i] > max {
			max = python[i]
		}
	}
	p.Y.Min = 0
	p.Y.Max = max * 1.15

	if err := annotateSeries(p, rust, -w/2); err != nil {
		return err
	}
	if err := annotateSeries(p, python, w/2); err != nil {
		return err
	}

	return savePNG(p, 12*vg.Inch, 6*vg.Inch, path)
}

// annotateSeries labels the non-zero bars of one series, shifted
// horizontally by the same device offset as the bars themselves.
func annotateSeries(p *plot.Plot, vals plotter.Values, offset vg.Length) error {
	var xys plotter.XYs
	var strs []string
	for i, v := range vals {
		if v == 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
		strs = append(strs, fmt.Sprintf("%.1f", v))
	}
	if len(xys) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return err
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(3)}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	p.Add(labels)
	return nil
}
