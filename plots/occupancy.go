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
	"math"
	"path/filepath"
	"strings"

	"github.com/FredHutch/interop-nf/interop"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Hue dimensions of the occupancy plots, one output file per dimension.
var occupancyHues = []string{interop.ColTile, interop.ColLane, interop.ColCycle}

// Occupancy plots % Occupied against % Pass Filter to show whether a run was
// under-, optimally or overloaded, once per hue dimension (tile, lane, cycle),
// saving occupancy_<hue>.svg files to outDir and returning their paths.
//
// % Occupied is only reported on some platforms (eg. NovaSeq); when the
// imaging table has no such column, or no rows at all, nothing is plotted and
// no paths are returned.
func Occupancy(table *interop.ImagingTable, outDir string) ([]string, error) {
	if table.Len() == 0 || !table.HasColumn(interop.ColPercentOccupied) {
		return nil, nil
	}

	occupied, err := table.Column(interop.ColPercentOccupied)
	if err != nil {
		return nil, err
	}

	passFilter, err := table.Column(interop.ColPercentPF)
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, hue := range occupancyHues {
		hueValues, err := table.Column(hue)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, fmt.Sprintf("occupancy_%s.svg", strings.ToLower(hue)))

		if err := plotOccupancy(occupied, passFilter, hueValues, hue, path); err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func plotOccupancy(occupied, passFilter, hueValues []float64, hue, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%% Occupied vs %% Pass Filter by %s", hue)
	p.X.Label.Text = interop.ColPercentOccupied
	p.Y.Label.Text = interop.ColPercentPF
	p.X.Min, p.X.Max = 0, 100
	p.Y.Min, p.Y.Max = 0, 100

	pts, hues := occupancyPoints(occupied, passFilter, hueValues)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	lo, hi := minMax(hues)

	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		t := 0.0
		if hi > lo {
			t = (hues[i] - lo) / (hi - lo)
		}

		return draw.GlyphStyle{
			Color:  rampColor(t),
			Radius: vg.Points(1.5),
			Shape:  draw.CircleGlyph{},
		}
	}

	p.Add(scatter)

	return savePlot(p, path)
}

func occupancyPoints(occupied, passFilter, hueValues []float64) (plotter.XYs, []float64) {
	pts := make(plotter.XYs, 0, len(occupied))
	hues := make([]float64, 0, len(occupied))

	for i := range occupied {
		if math.IsNaN(occupied[i]) || math.IsNaN(passFilter[i]) || math.IsNaN(hueValues[i]) {
			continue
		}

		pts = append(pts, plotter.XY{X: occupied[i], Y: passFilter[i]})
		hues = append(hues, hueValues[i])
	}

	return pts, hues
}

// rampColor maps t in [0,1] onto a translucent blue-to-red ramp.
func rampColor(t float64) color.Color {
	return color.RGBA{
		R: uint8(255 * t),
		B: uint8(255 * (1 - t)),
		A: 128,
	}
}
