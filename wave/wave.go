// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wave renders evaluated adder results as waveforms: a PNG image of
// the signal traces, a textual trace for terminals and the classic testbench
// result table.
//
// The package only consumes results in stimulus order; it never evaluates
// anything itself.
//
package wave

import (
	"fmt"
	"image/color"

	ls "github.com/mhg42/logicsim"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// trace extracts one signal's level per cycle.
func trace(results []ls.AdderResult, f func(ls.AdderResult) ls.Bit) plotter.XYs {
	xys := make(plotter.XYs, len(results))
	for t, r := range results {
		xys[t].X = float64(t)
		xys[t].Y = float64(f(r))
	}
	return xys
}

func sumWidth(results []ls.AdderResult) int {
	if len(results) == 0 {
		return 0
	}
	return len(results[0].Sum)
}

// RenderPNG writes a step plot of every sum bit and the carry out across the
// cycle sequence to the given path.
//
func RenderPNG(path string, results []ls.AdderResult) error {
	p := plot.New()
	p.Title.Text = "Ripple Carry Adder Waveforms"
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "Logic level"
	p.Y.Min, p.Y.Max = -0.2, 1.2

	palette := []color.RGBA{
		{B: 255, A: 255},
		{R: 230, G: 159, A: 255},
		{G: 158, B: 115, A: 255},
		{R: 204, G: 121, B: 167, A: 255},
	}
	for i := 0; i < sumWidth(results); i++ {
		xys := trace(results, func(r ls.AdderResult) ls.Bit { return r.Sum[i] })
		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "sum[%d] trace", i)
		}
		line.StepStyle = plotter.MidStep
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("sum[%d]", i), line)
	}

	cout, err := plotter.NewLine(trace(results, func(r ls.AdderResult) ls.Bit { return r.Cout }))
	if err != nil {
		return errors.Wrap(err, "cout trace")
	}
	cout.StepStyle = plotter.MidStep
	cout.LineStyle.Color = color.RGBA{R: 255, A: 255}
	cout.LineStyle.Width = vg.Points(2)
	p.Add(cout)
	p.Legend.Add("cout", cout)
	p.Legend.Top = true

	return errors.Wrap(p.Save(10*vg.Inch, 8*vg.Inch, path), "save waveform")
}
