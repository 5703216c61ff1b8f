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

import "github.com/FredHutch/interop-nf/interop"

func col(name, field string, precision int, scale float64) ColumnDef {
	return ColumnDef{Name: name, Fields: []string{field}, Precision: precision, Scale: scale}
}

func composite(name string, precision int, fields ...string) ColumnDef {
	return ColumnDef{Name: name, Fields: fields, Precision: precision, Scale: DefaultScale}
}

// DefaultRunSummaryColumns returns the columns of the run summary table, which
// is summarized per read. Callers pass these to New(), possibly after
// adjusting them.
func DefaultRunSummaryColumns() []ColumnDef {
	return []ColumnDef{
		// Number of bases sequenced
		col("Yield Total (G)", interop.FieldYieldG, DefaultPrecision, DefaultScale),
		// Projected number of bases expected to be sequenced
		col("Projected Yield (G)", interop.FieldProjectedYieldG, DefaultPrecision, DefaultScale),
		// % of passing filter clusters that aligned to the PhiX genome
		col("% Aligned", interop.FieldPercentAligned, DefaultPrecision, DefaultScale),
		// Calculated error rate of the reads that aligned to PhiX
		col("Error Rate", interop.FieldErrorRate, DefaultPrecision, DefaultScale),
		// Average of the A channel intensity measured at the first cycle
		col("Intensity C1", interop.FieldFirstCycleIntensity, PrecisionNone, DefaultScale),
		// % of bases with a quality score of 30 or higher
		col("% >= Q30", interop.FieldPercentGtQ30, DefaultPrecision, DefaultScale),
		// % of clusters that can be sequenced
		col("% Occupied", interop.FieldPercentOccupied, DefaultPrecision, DefaultScale),
	}
}

// DefaultReadSummaryColumns returns the columns of the per-read tables, which
// are summarized per lane.
func DefaultReadSummaryColumns() []ColumnDef {
	return []ColumnDef{
		col("Lane", interop.FieldLane, PrecisionNone, DefaultScale),
		// Number of tiles per lane
		col("Tiles", interop.FieldTileCount, PrecisionNone, DefaultScale),
		// Density of clusters in the thousands detected by image analysis
		col("Density", interop.FieldDensity, PrecisionNone, 1e3),
		// Percent of clusters passing filtering
		col("Cluster PF", interop.FieldPercentPF, DefaultPrecision, DefaultScale),
		// The value used by RTA for the rate at which molecules in a cluster
		// fall behind or jump ahead during a read
		composite("Legacy Phasing/Prephasing rate", 3,
			interop.FieldPhasing, interop.FieldPrephasing),
		// The best-fit slope and offset of the phasing/prephasing corrections
		composite("Phasing Slope/offset", 3,
			interop.FieldPhasingSlope, interop.FieldPhasingOffset),
		composite("Prephasing Slope/offset", 3,
			interop.FieldPrephasingSlope, interop.FieldPrephasingOffset),
		// Number of clusters (in millions)
		col("Reads", interop.FieldReads, DefaultPrecision, 1e6),
		// Number of clusters passing filtering
		col("Reads PF", interop.FieldReadsPF, DefaultPrecision, 1e6),
		// Number of bases with a quality score of 30 or higher
		col("% >= Q30", interop.FieldPercentGtQ30, DefaultPrecision, DefaultScale),
		col("Yield", interop.FieldYieldG, DefaultPrecision, DefaultScale),
		col("Cycles Error", interop.FieldCycleState, PrecisionNone, DefaultScale),
		col("Aligned", interop.FieldPercentAligned, DefaultPrecision, DefaultScale),
		// The calculated error rate, as determined by the PhiX alignment
		col("Error", interop.FieldErrorRate, DefaultPrecision, DefaultScale),
		col("Error (35)", interop.FieldErrorRate35, DefaultPrecision, DefaultScale),
		col("Error (50)", interop.FieldErrorRate50, DefaultPrecision, DefaultScale),
		col("Error (100)", interop.FieldErrorRate100, DefaultPrecision, DefaultScale),
		col("Intensity C1", interop.FieldFirstCycleIntensity, PrecisionNone, DefaultScale),
		col("% Occupied", interop.FieldPercentOccupied, DefaultPrecision, DefaultScale),
	}
}
