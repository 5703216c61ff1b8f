/*******************************************************************************
 * Copyright (c) 2025 Fred Hutchinson Cancer Center.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

package plots

import (
	"fmt"
	"image/color"

	"github.com/FredHutch/interop-nf/interop"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const percentBaseYMax = 100

var baseLines = []struct {
	label  string
	column string
	color  color.RGBA
}{
	{"A", interop.ColPercentBaseA, color.RGBA{R: 255, A: 255}},
	{"C", interop.ColPercentBaseC, color.RGBA{G: 200, A: 255}},
	{"G", interop.ColPercentBaseG, color.RGBA{B: 255, A: 255}},
	{"T", interop.ColPercentBaseT, color.RGBA{R: 255, G: 165, A: 255}},
}

var readMarkerColor = color.RGBA{R: 128, B: 128, A: 255}

// PercentBase plots the % of clusters calling each base across cycles, one
// line per base, with a dashed reference line where each read starts, and
// saves it to outPath.
func PercentBase(table *interop.ImagingTable, reads []interop.ReadInfo, outPath string) error {
	p := plot.New()
	p.Title.Text = "% Base by Cycle"
	p.Title.TextStyle.Font.Size = vg.Points(10)
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "% Base"
	p.Y.Min = 0
	p.Y.Max = percentBaseYMax
	p.Legend.Top = true

	cycles, err := table.Column(interop.ColCycle)
	if err != nil {
		return err
	}

	for _, base := range baseLines {
		values, err := table.Column(base.column)
		if err != nil {
			return err
		}

		line, err := plotter.NewLine(meanByKey(cycles, values))
		if err != nil {
			return err
		}

		line.LineStyle.Color = base.color
		line.LineStyle.Width = vg.Points(0.5)

		p.Add(line)
		p.Legend.Add(base.label, line)
	}

	if err := addReadMarkers(p, reads); err != nil {
		return err
	}

	return savePlot(p, outPath)
}

// addReadMarkers draws a dashed vertical line labelled "R<read>" at the first
// cycle of each read.
func addReadMarkers(p *plot.Plot, reads []interop.ReadInfo) error {
	labels := plotter.XYLabels{}

	for _, read := range reads {
		x := float64(read.FirstCycle)

		marker, err := plotter.NewLine(plotter.XYs{
			{X: x, Y: 0},
			{X: x, Y: percentBaseYMax},
		})
		if err != nil {
			return err
		}

		marker.LineStyle.Color = readMarkerColor
		marker.LineStyle.Width = vg.Points(0.35)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

		p.Add(marker)

		labels.XYs = append(labels.XYs, plotter.XY{X: x, Y: percentBaseYMax})
		labels.Labels = append(labels.Labels, fmt.Sprintf("R%d", read.Number))
	}

	readLabels, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}

	p.Add(readLabels)

	return nil
}
