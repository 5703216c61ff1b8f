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
	"sort"

	"github.com/FredHutch/interop-nf/interop"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var intensityLineColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}

// TileIntensity plots, for each lane, the maximum extraction intensity
// averaged across tiles over cycles, one SVG per lane named
// max_intensity_<lane>.svg in outDir. It returns the paths written.
func TileIntensity(table *interop.ImagingTable, outDir string) ([]string, error) {
	lanes, err := table.Column(interop.ColLane)
	if err != nil {
		return nil, err
	}

	cycles, err := table.Column(interop.ColCycle)
	if err != nil {
		return nil, err
	}

	intensities, err := table.Column(interop.ColMaxIntensity)
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, lane := range laneNumbers(lanes) {
		laneCycles, laneIntensities := laneSubset(lane, lanes, cycles, intensities)

		path := filepath.Join(outDir, fmt.Sprintf("max_intensity_%d.svg", lane))

		if err := plotLaneIntensity(lane, laneCycles, laneIntensities, path); err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func plotLaneIntensity(lane int, cycles, intensities []float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Lane %d", lane)
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "Max Intensity"

	line, err := plotter.NewLine(meanByKey(cycles, intensities))
	if err != nil {
		return err
	}

	line.LineStyle.Color = intensityLineColor
	line.LineStyle.Width = vg.Points(2)

	p.Add(line)

	return savePlot(p, path)
}

func laneNumbers(lanes []float64) []int {
	seen := make(map[int]bool)

	var numbers []int

	for _, lane := range lanes {
		if math.IsNaN(lane) {
			continue
		}

		n := int(lane)
		if !seen[n] {
			seen[n] = true

			numbers = append(numbers, n)
		}
	}

	sort.Ints(numbers)

	return numbers
}

func laneSubset(lane int, lanes, cycles, values []float64) ([]float64, []float64) {
	var subCycles, subValues []float64

	for i, l := range lanes {
		if math.IsNaN(l) || int(l) != lane {
			continue
		}

		subCycles = append(subCycles, cycles[i])
		subValues = append(subValues, values[i])
	}

	return subCycles, subValues
}
