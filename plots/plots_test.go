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
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FredHutch/interop-nf/interop"
	. "github.com/smartystreets/goconvey/convey"
)

const imagingFixture = `Lane,Tile,Cycle,Max Intensity,% Pass Filter,% Occupied,% Base A,% Base C,% Base G,% Base T
1,1101,1,250,90.5,85,25,25,25,25
1,1101,2,245,91,86,30,20,25,25
1,1102,1,255,89.5,84,26,24,25,25
2,1101,1,260,88.25,80,25,25,26,24
2,1101,2,240,87,81,24,26,25,25
`

const imagingFixtureNoOccupancy = `Lane,Tile,Cycle,Max Intensity,% Pass Filter,% Base A,% Base C,% Base G,% Base T
1,1101,1,250,90.5,25,25,25,25
`

func parseFixture(t *testing.T, csv string) *interop.ImagingTable {
	t.Helper()

	table, err := interop.ParseImagingTable(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}

	return table
}

func checkSVG(path string) {
	data, err := os.ReadFile(path)
	So(err, ShouldBeNil)
	So(string(data), ShouldContainSubstring, "<svg")
}

func TestPercentBase(t *testing.T) {
	Convey("PercentBase draws the base composition plot", t, func() {
		table := parseFixture(t, imagingFixture)
		reads := []interop.ReadInfo{
			{Number: 1, FirstCycle: 1},
			{Number: 2, IsIndex: true, FirstCycle: 2},
		}

		path := filepath.Join(t.TempDir(), "percent_base.svg")

		err := PercentBase(table, reads, path)
		So(err, ShouldBeNil)
		checkSVG(path)
	})
}

func TestTileIntensity(t *testing.T) {
	Convey("TileIntensity draws one intensity plot per lane", t, func() {
		table := parseFixture(t, imagingFixture)
		dir := t.TempDir()

		paths, err := TileIntensity(table, dir)
		So(err, ShouldBeNil)
		So(paths, ShouldResemble, []string{
			filepath.Join(dir, "max_intensity_1.svg"),
			filepath.Join(dir, "max_intensity_2.svg"),
		})

		for _, path := range paths {
			checkSVG(path)
		}
	})
}

func TestOccupancy(t *testing.T) {
	Convey("Occupancy draws one loading plot per hue dimension", t, func() {
		table := parseFixture(t, imagingFixture)
		dir := t.TempDir()

		paths, err := Occupancy(table, dir)
		So(err, ShouldBeNil)
		So(paths, ShouldResemble, []string{
			filepath.Join(dir, "occupancy_tile.svg"),
			filepath.Join(dir, "occupancy_lane.svg"),
			filepath.Join(dir, "occupancy_cycle.svg"),
		})

		for _, path := range paths {
			checkSVG(path)
		}
	})

	Convey("Occupancy draws nothing for runs without % Occupied", t, func() {
		table := parseFixture(t, imagingFixtureNoOccupancy)
		dir := t.TempDir()

		paths, err := Occupancy(table, dir)
		So(err, ShouldBeNil)
		So(paths, ShouldBeNil)

		entries, err := os.ReadDir(dir)
		So(err, ShouldBeNil)
		So(entries, ShouldBeEmpty)
	})
}

func TestMeanByKey(t *testing.T) {
	Convey("meanByKey averages values per key in key order", t, func() {
		keys := []float64{2, 1, 2, 1}
		values := []float64{10, 1, 20, 3}

		pts := meanByKey(keys, values)
		So(len(pts), ShouldEqual, 2)
		So(pts[0].X, ShouldEqual, 1)
		So(pts[0].Y, ShouldEqual, 2)
		So(pts[1].X, ShouldEqual, 2)
		So(pts[1].Y, ShouldEqual, 15)

		Convey("skipping cells the engine left empty", func() {
			values[2] = math.NaN()

			pts := meanByKey(keys, values)
			So(pts[1].X, ShouldEqual, 2)
			So(pts[1].Y, ShouldEqual, 10)
		})
	})
}
