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
	"math"
	"strconv"
	"strings"
)

// Cell is one formatted table value. It is either numeric (plain scalars and
// collapsed cycle ranges keep their numeric form so JSON consumers get
// numbers) or text (distributions, spans, composites and the N/A marker).
type Cell struct {
	display string
	num     float64
	numeric bool
}

func textCell(s string) Cell {
	return Cell{display: s}
}

func numberCell(v float64, rounded bool) Cell {
	return Cell{display: displayFloat(v, rounded), num: v, numeric: true}
}

// String returns the cell as it appears in the HTML table.
func (c Cell) String() string {
	return c.display
}

// IsNumeric reports whether the cell serializes as a JSON number.
func (c Cell) IsNumeric() bool {
	return c.numeric
}

// Float returns the numeric value of a numeric cell, or NaN for a text cell.
func (c Cell) Float() float64 {
	if !c.numeric {
		return math.NaN()
	}

	return c.num
}

// MarshalJSON emits numeric cells as JSON numbers, with not-a-number becoming
// null rather than an invalid NaN token, and text cells as JSON strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.numeric {
		return json.Marshal(c.display)
	}

	if math.IsNaN(c.num) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, c.num, 'f', -1, 64), nil
}

// displayFloat renders a float the way the reports have always shown them:
// shortest decimal form, with rounded values keeping a trailing ".0" when they
// come out integral (eg. "10.0 +/- 1.0"), and unrounded values staying bare
// (eg. lane "1").
func displayFloat(v float64, rounded bool) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if rounded && !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
