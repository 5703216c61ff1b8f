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

package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/FredHutch/interop-nf/interop"
	. "github.com/smartystreets/goconvey/convey"
)

const laneRowJSON = `{
	"lane": 1,
	"tile_count": 64,
	"density": {"mean": 2500000, "stddev": 100000},
	"percent_pf": {"mean": 90.5, "stddev": 2.5},
	"phasing": {"mean": 0.112, "stddev": 0.01},
	"prephasing": {"mean": 0.078, "stddev": 0.01},
	"phasing_slope": {"mean": 0.1, "stddev": 0},
	"phasing_offset": {"mean": 0.2, "stddev": 0},
	"prephasing_slope": {"mean": 0.1, "stddev": 0},
	"prephasing_offset": {"mean": 0.2, "stddev": 0},
	"reads": 2345678,
	"reads_pf": 2000000,
	"percent_gt_q30": 95.5,
	"yield_g": 5.2,
	"cycle_state": {"first_cycle": 5, "last_cycle": 5},
	"percent_aligned": {"mean": 1.5, "stddev": 0.1},
	"error_rate": {"mean": 0.5, "stddev": 0.1},
	"error_rate_35": {"mean": 0.5, "stddev": 0.1},
	"error_rate_50": {"mean": 0.5, "stddev": 0.1},
	"error_rate_100": {"mean": "NaN", "stddev": "NaN"},
	"first_cycle_intensity": {"mean": 100, "stddev": 10}
}`

const readRowJSON = `{
	"yield_g": 10.25,
	"projected_yield_g": 10.25,
	"percent_aligned": 1.5,
	"error_rate": 0.5,
	"first_cycle_intensity": 100,
	"percent_gt_q30": 95.5
}`

func testSummaryJSON() string {
	return `{
	"reads": [
		{
			"read": 1, "is_index": false, "first_cycle": 1,
			"summary": ` + readRowJSON + `,
			"lanes": [` + laneRowJSON + `]
		},
		{
			"read": 2, "is_index": true, "first_cycle": 152,
			"summary": ` + readRowJSON + `,
			"lanes": [` + laneRowJSON + `]
		}
	],
	"nonindex_summary": ` + readRowJSON + `,
	"total_summary": {
		"yield_g": 20.5,
		"projected_yield_g": 20.5,
		"percent_aligned": 1.5,
		"error_rate": "NaN",
		"first_cycle_intensity": 100,
		"percent_gt_q30": 95.5
	}
}`
}

func TestReport(t *testing.T) {
	Convey("Given a parsed run summary and the default columns", t, func() {
		summary, err := interop.ParseSummary(strings.NewReader(testSummaryJSON()))
		So(err, ShouldBeNil)

		rep, err := New(summary, DefaultRunSummaryColumns(), DefaultReadSummaryColumns())
		So(err, ShouldBeNil)

		Convey("the run summary table has a row per read plus the totals", func() {
			table, err := rep.RunSummaryTable()
			So(err, ShouldBeNil)
			So(table.Columns[0], ShouldEqual, "Level")
			So(len(table.Rows), ShouldEqual, 4)
			So(table.Rows[0][0].String(), ShouldEqual, "Read 1")
			So(table.Rows[1][0].String(), ShouldEqual, "Read (I) 2")
			So(table.Rows[2][0].String(), ShouldEqual, "Non-Indexed Total")
			So(table.Rows[3][0].String(), ShouldEqual, "Total")

			Convey("with metrics the engine never reported shown as N/A", func() {
				occupied := table.Columns[len(table.Columns)-1]
				So(occupied, ShouldEqual, "% Occupied")
				So(table.Rows[0][len(table.Columns)-1].String(), ShouldEqual, "N/A")
			})

			Convey("and is only built once", func() {
				again, err := rep.RunSummaryTable()
				So(err, ShouldBeNil)
				So(again, ShouldEqual, table)
			})
		})

		Convey("the per-read tables have a row per lane", func() {
			table, err := rep.ReadSummaryTable(0)
			So(err, ShouldBeNil)
			So(len(table.Rows), ShouldEqual, 1)
			So(table.Columns[0], ShouldEqual, "Lane")
			So(table.Rows[0][0].Float(), ShouldEqual, 1)

			again, err := rep.ReadSummaryTable(0)
			So(err, ShouldBeNil)
			So(again, ShouldEqual, table)

			Convey("but only for reads the run actually has", func() {
				_, err := rep.ReadSummaryTable(2)
				So(errors.Is(err, ErrBadReadNumber), ShouldBeTrue)

				_, err = rep.ReadSummaryTable(-1)
				So(errors.Is(err, ErrBadReadNumber), ShouldBeTrue)
			})
		})

		Convey("the JSON report keeps numbers numeric and NaN as null", func() {
			encoded, err := rep.JSON()
			So(err, ShouldBeNil)

			var decoded struct {
				RunSummary []map[string]any   `json:"runSummary"`
				Reads      [][]map[string]any `json:"reads"`
			}

			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(len(decoded.RunSummary), ShouldEqual, 4)
			So(len(decoded.Reads), ShouldEqual, 2)
			So(len(decoded.Reads[0]), ShouldEqual, 1)
			So(decoded.Reads[0][0]["Lane"], ShouldEqual, 1)
			So(decoded.RunSummary[3]["Error Rate"], ShouldBeNil)
			So(decoded.RunSummary[0]["Yield Total (G)"], ShouldEqual, 10.25)
			So(decoded.Reads[0][0]["Cluster PF"], ShouldEqual, "90.5 +/- 2.5")
			So(decoded.Reads[0][0]["Error (100)"], ShouldEqual, "nan +/- nan")
			So(string(encoded), ShouldNotContainSubstring, "NaN")
		})

		Convey("the HTML report is the run table followed by one table per read", func() {
			page, err := rep.HTML()
			So(err, ShouldBeNil)
			So(page, ShouldContainSubstring, ".sav-table")
			So(page, ShouldContainSubstring, "<strong>Run Quality Summary</strong>")
			So(page, ShouldContainSubstring, "<strong>Read 1</strong>")
			So(page, ShouldContainSubstring, "<strong>Read 2</strong>")
			So(page, ShouldContainSubstring, "<td>Read (I) 2</td>")
			So(strings.Count(page, "<table"), ShouldEqual, 3)
		})

		Convey("column configuration is validated up front", func() {
			bad := []ColumnDef{col("Bogus", "no_such_metric", DefaultPrecision, DefaultScale)}

			_, err := New(summary, bad, DefaultReadSummaryColumns())
			So(errors.Is(err, ErrUnknownField), ShouldBeTrue)

			_, err = New(summary, DefaultRunSummaryColumns(), []ColumnDef{{Name: "empty"}})
			So(errors.Is(err, ErrNoFields), ShouldBeTrue)
		})
	})
}
