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

// package report formats run summaries from the interop package into tables
// and serializes them as HTML and JSON.

package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FredHutch/interop-nf/interop"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoFields      = Error("column has no fields")
	ErrUnknownField  = Error("column field is not a known metric")
	ErrMissingField  = Error("composite column field absent from row")
	ErrNotComposable = Error("composite column field is not a distribution")
	ErrBadValueShape = Error("metric value has an unsupported shape")
	ErrBadReadNumber = Error("read number out of range")
)

const (
	// PrecisionNone disables rounding for a column; values are shown as the
	// engine reported them (after scaling).
	PrecisionNone = -1

	// DefaultPrecision and DefaultScale apply to most columns.
	DefaultPrecision = 2
	DefaultScale     = float64(1)

	notApplicable = "N/A"
	fieldJoiner   = " / "
)

// ColumnDef maps one named report column onto one or more metric fields of a
// summary row, with a fixed display precision and scale. A ColumnDef is
// immutable configuration: it holds no row state and one instance formats
// every row of every table.
//
// Fields normally has one entry. More than one makes a composite column where
// each field contributes its mean, joined with " / " (the phasing columns).
type ColumnDef struct {
	Name      string
	Fields    []string
	Precision int
	Scale     float64
}

// FormatRow returns the display cell for this column applied to the given
// row.
//
// A single absent field gives the N/A marker. Distributions format as
// "mean +/- stddev", cycle ranges as "first - last" (collapsed to the single
// value when the bounds agree) and scalars as the scaled, rounded value.
// Composite columns require every field to be present and distribution-shaped;
// anything else is a configuration error.
func (c ColumnDef) FormatRow(row interop.Row) (Cell, error) {
	if len(c.Fields) == 0 {
		return Cell{}, fmt.Errorf("%w: column %q", ErrNoFields, c.Name)
	}

	if len(c.Fields) > 1 {
		return c.formatComposite(row)
	}

	value, ok := row.Value(c.Fields[0])
	if !ok {
		return textCell(notApplicable), nil
	}

	switch value.Kind {
	case interop.ValueDistribution:
		return textCell(c.display(value.Mean) + " +/- " + c.display(value.StdDev)), nil
	case interop.ValueCycleRange:
		return c.formatCycleRange(value), nil
	case interop.ValueScalar:
		return numberCell(c.formatValue(value.Scalar), c.rounds()), nil
	default:
		return Cell{}, fmt.Errorf("%w: column %q", ErrBadValueShape, c.Name)
	}
}

func (c ColumnDef) formatComposite(row interop.Row) (Cell, error) {
	parts := make([]string, len(c.Fields))

	for i, field := range c.Fields {
		value, ok := row.Value(field)
		if !ok {
			return Cell{}, fmt.Errorf("%w: column %q field %q", ErrMissingField, c.Name, field)
		}

		if value.Kind != interop.ValueDistribution {
			return Cell{}, fmt.Errorf("%w: column %q field %q", ErrNotComposable, c.Name, field)
		}

		parts[i] = c.display(value.Mean)
	}

	return textCell(strings.Join(parts, fieldJoiner)), nil
}

func (c ColumnDef) formatCycleRange(value interop.Value) Cell {
	if value.FirstCycle == value.LastCycle {
		return numberCell(c.formatValue(value.FirstCycle), c.rounds())
	}

	return textCell(c.display(value.FirstCycle) + " - " + c.display(value.LastCycle))
}

// formatValue applies the per-value rule: divide by the scale, then round
// half-to-even at Precision digits unless rounding is disabled or the value is
// not a number (NaN passes through so serialization can turn it into null).
func (c ColumnDef) formatValue(raw float64) float64 {
	v := raw / c.Scale

	if !math.IsNaN(v) && c.rounds() {
		v = roundHalfEven(v, c.Precision)
	}

	return v
}

// display renders one value for a text cell. Not-a-number appears in
// lowercase there, so JSON strings never carry the uppercase NaN marker that
// serialization reserves for null.
func (c ColumnDef) display(raw float64) string {
	v := c.formatValue(raw)
	if math.IsNaN(v) {
		return "nan"
	}

	return displayFloat(v, c.rounds())
}

func (c ColumnDef) rounds() bool {
	return c.Precision != PrecisionNone
}

// roundHalfEven rounds v to the given number of decimal digits with ties going
// to the even neighbour. Report consumers diff formatted numbers, so this must
// match the rounding the reports have always used; strconv's fixed-precision
// formatting rounds the exact binary value correctly with ties to even.
func roundHalfEven(v float64, digits int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}

	return rounded
}
