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

package interop

import (
	"errors"
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const imagingFixture = `Lane,Tile,Cycle,Max Intensity,% Pass Filter
1,1101,1,250,90.5
1,1101,2,245,
2,1101,1,260,88.25
`

func TestParseImagingTable(t *testing.T) {
	Convey("ParseImagingTable decodes the engine's imaging CSV", t, func() {
		table, err := ParseImagingTable(strings.NewReader(imagingFixture))
		So(err, ShouldBeNil)
		So(table, ShouldNotBeNil)
		So(table.Len(), ShouldEqual, 3)

		Convey("giving access to whole columns", func() {
			So(table.HasColumn(ColMaxIntensity), ShouldBeTrue)
			So(table.HasColumn(ColPercentOccupied), ShouldBeFalse)

			lanes, err := table.Column(ColLane)
			So(err, ShouldBeNil)
			So(lanes, ShouldResemble, []float64{1, 1, 2})

			intensities, err := table.Column(ColMaxIntensity)
			So(err, ShouldBeNil)
			So(intensities, ShouldResemble, []float64{250, 245, 260})

			_, err = table.Column(ColPercentOccupied)
			So(errors.Is(err, ErrNoSuchColumn), ShouldBeTrue)
		})

		Convey("with empty cells as NaN", func() {
			passFilter, err := table.Column(ColPercentPF)
			So(err, ShouldBeNil)
			So(passFilter[0], ShouldEqual, 90.5)
			So(math.IsNaN(passFilter[1]), ShouldBeTrue)
			So(passFilter[2], ShouldEqual, 88.25)
		})
	})

	Convey("ParseImagingTable rejects malformed engine output", t, func() {
		Convey("empty input", func() {
			_, err := ParseImagingTable(strings.NewReader(""))
			So(errors.Is(err, ErrBadImaging), ShouldBeTrue)
		})

		Convey("non-numeric cells", func() {
			_, err := ParseImagingTable(strings.NewReader("Lane,Cycle\n1,abc\n"))
			So(errors.Is(err, ErrBadImaging), ShouldBeTrue)
		})

		Convey("ragged records", func() {
			_, err := ParseImagingTable(strings.NewReader("Lane,Cycle\n1\n"))
			So(errors.Is(err, ErrBadImaging), ShouldBeTrue)
		})
	})
}

func TestConverter(t *testing.T) {
	Convey("A converter turns cells to floats and remembers the first failure", t, func() {
		c := &converter{}

		So(c.ToFloat("1.5"), ShouldEqual, 1.5)
		So(math.IsNaN(c.ToFloat("")), ShouldBeTrue)
		So(c.Err, ShouldBeNil)

		So(math.IsNaN(c.ToFloat("abc")), ShouldBeTrue)
		So(c.Err, ShouldNotBeNil)

		Convey("after which conversions are no-ops", func() {
			firstErr := c.Err

			So(math.IsNaN(c.ToFloat("2.5")), ShouldBeTrue)
			So(c.Err, ShouldEqual, firstErr)
		})
	})
}
