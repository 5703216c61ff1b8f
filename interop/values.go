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

// package interop adapts the output of the external InterOp metrics engine
// into typed rows that the report and plots packages consume. All statistical
// work (means, error rates, phasing estimates) happens in the engine; this
// package only deserializes its results.

package interop

// ValueKind says which shape a metric Value carries.
type ValueKind int

const (
	// ValueScalar is a plain numeric metric.
	ValueScalar ValueKind = iota

	// ValueDistribution is a metric summarized across tiles or lanes as a
	// mean and standard deviation.
	ValueDistribution

	// ValueCycleRange is a metric reported as a span of cycles.
	ValueCycleRange
)

// Value is one metric from a summary row, tagged with its shape. Exactly the
// fields relevant to Kind are meaningful.
type Value struct {
	Kind ValueKind

	Scalar float64

	Mean   float64
	StdDev float64

	FirstCycle float64
	LastCycle  float64
}

// ScalarValue returns a plain numeric Value.
func ScalarValue(v float64) Value {
	return Value{Kind: ValueScalar, Scalar: v}
}

// DistributionValue returns a mean and standard deviation Value.
func DistributionValue(mean, stddev float64) Value {
	return Value{Kind: ValueDistribution, Mean: mean, StdDev: stddev}
}

// CycleRangeValue returns a first/last cycle span Value.
func CycleRangeValue(first, last float64) Value {
	return Value{Kind: ValueCycleRange, FirstCycle: first, LastCycle: last}
}

// Row is one summary record from the engine: metric field name to Value. A
// field the engine did not report is simply not present, which is how an
// inapplicable metric (eg. % Occupied on non-NovaSeq runs) is told apart from
// one that is zero.
type Row map[string]Value

// Value returns the named metric and whether the engine reported it at all.
func (r Row) Value(field string) (Value, bool) {
	v, ok := r[field]

	return v, ok
}

// Metric field names emitted by the engine for per-read aggregate rows.
const (
	FieldYieldG              = "yield_g"
	FieldProjectedYieldG     = "projected_yield_g"
	FieldPercentAligned      = "percent_aligned"
	FieldErrorRate           = "error_rate"
	FieldFirstCycleIntensity = "first_cycle_intensity"
	FieldPercentGtQ30        = "percent_gt_q30"
	FieldPercentOccupied     = "percent_occupied"
)

// Metric field names emitted by the engine for per-lane rows, in addition to
// the ones shared with per-read rows.
const (
	FieldLane             = "lane"
	FieldTileCount        = "tile_count"
	FieldDensity          = "density"
	FieldPercentPF        = "percent_pf"
	FieldPhasing          = "phasing"
	FieldPrephasing       = "prephasing"
	FieldPhasingSlope     = "phasing_slope"
	FieldPhasingOffset    = "phasing_offset"
	FieldPrephasingSlope  = "prephasing_slope"
	FieldPrephasingOffset = "prephasing_offset"
	FieldReads            = "reads"
	FieldReadsPF          = "reads_pf"
	FieldCycleState       = "cycle_state"
	FieldErrorRate35      = "error_rate_35"
	FieldErrorRate50      = "error_rate_50"
	FieldErrorRate100     = "error_rate_100"
)

// FieldSet is the set of metric field names a kind of row can carry, used to
// validate column configuration before any row is formatted.
type FieldSet map[string]bool

// Contains reports whether the named field is in the set.
func (fs FieldSet) Contains(field string) bool {
	return fs[field]
}

// ReadFields are the fields of per-read aggregate rows (and of the non-indexed
// and total rows, which share their shape).
var ReadFields = FieldSet{
	FieldYieldG:              true,
	FieldProjectedYieldG:     true,
	FieldPercentAligned:      true,
	FieldErrorRate:           true,
	FieldFirstCycleIntensity: true,
	FieldPercentGtQ30:        true,
	FieldPercentOccupied:     true,
}

// LaneFields are the fields of per-lane rows.
var LaneFields = FieldSet{
	FieldLane:                true,
	FieldTileCount:           true,
	FieldDensity:             true,
	FieldPercentPF:           true,
	FieldPhasing:             true,
	FieldPrephasing:          true,
	FieldPhasingSlope:        true,
	FieldPhasingOffset:       true,
	FieldPrephasingSlope:     true,
	FieldPrephasingOffset:    true,
	FieldReads:               true,
	FieldReadsPF:             true,
	FieldPercentGtQ30:        true,
	FieldYieldG:              true,
	FieldCycleState:          true,
	FieldPercentAligned:      true,
	FieldErrorRate:           true,
	FieldErrorRate35:         true,
	FieldErrorRate50:         true,
	FieldErrorRate100:        true,
	FieldFirstCycleIntensity: true,
	FieldPercentOccupied:     true,
}
