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
	"math"
	"strconv"
)

// converter converts imaging table cells to floats. The conversions do not
// return errors, but instead set the error field. Check that field after doing
// all your conversions.
type converter struct {
	Err error
}

// ToFloat converts a cell to a float64. An empty cell means the metric was not
// measured for that tile/cycle and becomes NaN. If the conversion fails, the
// error field is set, and NaN is returned.
//
// If the error field is already set, this function does nothing and returns
// NaN.
func (c *converter) ToFloat(s string) float64 {
	if c.Err != nil {
		return math.NaN()
	}

	if s == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.Err = err

		return math.NaN()
	}

	return f
}
