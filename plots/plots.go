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

// package plots draws the diagnostic SVG plots over the engine's imaging
// table: base composition by cycle, tile intensity trends and the
// occupancy-vs-pass-filter loading plots.

package plots

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 4 * vg.Inch
)

func savePlot(p *plot.Plot, path string) error {
	return p.Save(plotWidth, plotHeight, path)
}

// meanByKey averages values grouped by their key (eg. intensity by cycle),
// skipping cells the engine left empty, and returns one point per key in key
// order.
func meanByKey(keys, values []float64) plotter.XYs {
	grouped := make(map[float64][]float64)

	for i, key := range keys {
		if math.IsNaN(key) || math.IsNaN(values[i]) {
			continue
		}

		grouped[key] = append(grouped[key], values[i])
	}

	order := make([]float64, 0, len(grouped))

	for key := range grouped {
		order = append(order, key)
	}

	sort.Float64s(order)

	pts := make(plotter.XYs, len(order))

	for i, key := range order {
		pts[i].X = key
		pts[i].Y = stat.Mean(grouped[key], nil)
	}

	return pts
}

func minMax(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		if v < lo {
			lo = v
		}

		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
