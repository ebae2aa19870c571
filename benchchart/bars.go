// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/typofix/benchviz/benchreport"
)

// Startup writes a bar chart of startup times in milliseconds, one bar per
// implementation present, with a "faster" callout when both are present.
func Startup(rep *benchreport.Report, path string) error {
	return metricChart(metricChartConfig{
		title:       "Startup Time Comparison",
		yLabel:      "Time (milliseconds)",
		valueFormat: "%.1f ms",
		vals:        rep.Startup,
		scale:       1.0 / 1000, // µs → ms
		calloutVerb: "faster",
	}, path)
}

// Memory writes a bar chart of peak memory usage in megabytes, with a
// "less memory" callout when both implementations are present.
func Memory(rep *benchreport.Report, path string) error {
	return metricChart(metricChartConfig{
		title:       "Memory Usage Comparison",
		yLabel:      "Peak Memory (MB)",
		valueFormat: "%.1f MB",
		vals:        rep.Memory,
		scale:       1,
		calloutVerb: "less memory",
	}, path)
}

type metricChartConfig struct {
	title       string
	yLabel      string
	valueFormat string
	vals        map[string]float64
	scale       float64
	calloutVerb string
}

// metricChart draws a single-metric comparison: one bar per label, the
// formatted value over each bar, and a ratio callout when defined.
func metricChart(cfg metricChartConfig, path string) error {
	bars := metricBars(cfg.vals, cfg.scale)
	if len(bars) == 0 {
		return nil
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.Y.Label.Text = cfg.yLabel

	if err := addBars(p, bars); err != nil {
		return err
	}

	// Fixed headroom above the tallest bar leaves room for the
	// annotations and the callout.
	max := bars[0].value
	for _, b := range bars[1:] {
		if b.value > max {
			max = b.value
		}
	}
	p.Y.Min = 0
	p.Y.Max = max * 1.2

	if err := annotateValues(p, bars, cfg.valueFormat); err != nil {
		return err
	}
	if ratio, ok := benchreport.Speedup(cfg.vals); ok {
		callout := fmt.Sprintf("%.1fx %s", ratio, cfg.calloutVerb)
		if err := annotateCallout(p, callout, len(bars)); err != nil {
			return err
		}
	}

	return savePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}
