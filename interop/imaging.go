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
	"encoding/csv"
	"fmt"
	"io"
)

// Column names in the engine's imaging table that the plots consume.
const (
	ColLane            = "Lane"
	ColTile            = "Tile"
	ColCycle           = "Cycle"
	ColPercentOccupied = "% Occupied"
	ColPercentPF       = "% Pass Filter"
	ColMaxIntensity    = "Max Intensity"
	ColPercentBaseA    = "% Base A"
	ColPercentBaseC    = "% Base C"
	ColPercentBaseG    = "% Base G"
	ColPercentBaseT    = "% Base T"
)

const ErrNoSuchColumn = Error("imaging table does not have that column")

// ImagingTable is the engine's per-tile imaging table: one row per
// (lane, tile, cycle) with all cells numeric. Cells the engine left empty are
// NaN.
type ImagingTable struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// ParseImagingTable decodes the CSV the engine's imaging command writes to
// stdout. The first record is the header; every following record must have a
// numeric or empty value in each cell.
func ParseImagingTable(r io.Reader) (*ImagingTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadImaging, err)
	}

	if len(records) == 0 {
		return nil, ErrBadImaging
	}

	header := records[0]
	index := make(map[string]int, len(header))

	for i, name := range header {
		index[name] = i
	}

	rows := make([][]float64, len(records)-1)

	for i, record := range records[1:] {
		c := &converter{}
		row := make([]float64, len(record))

		for j, cell := range record {
			row[j] = c.ToFloat(cell)
		}

		if c.Err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", ErrBadImaging, i+1, c.Err)
		}

		rows[i] = row
	}

	return &ImagingTable{columns: header, index: index, rows: rows}, nil
}

// Len returns the number of data rows.
func (t *ImagingTable) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has the named column. Some columns only
// exist on some platforms, eg. % Occupied is NovaSeq-only.
func (t *ImagingTable) HasColumn(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns the named column's value for every row, in row order.
func (t *ImagingTable) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}

	values := make([]float64, len(t.rows))

	for j, row := range t.rows {
		values[j] = row[i]
	}

	return values, nil
}
