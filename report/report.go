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
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/FredHutch/interop-nf/interop"
)

const (
	levelColumn = "Level"

	savTableStyle = `<style>
.sav-table {
  border-collapse: collapse;
}

.sav-table th, .sav-table td {
  padding: 4px;
  border: 1px solid #ddd;
  text-align: center;
}
</style>
`
)

// Table is an ordered set of named columns holding one formatted cell per row.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// MarshalJSON emits the table as an array of records, one object per row with
// the columns in declaration order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')

	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('{')

		for j, cell := range row {
			if j > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(t.Columns[j])
			if err != nil {
				return nil, err
			}

			value, err := json.Marshal(cell)
			if err != nil {
				return nil, err
			}

			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}

		buf.WriteByte('}')
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// HTML renders the table as a .sav-table styled HTML table.
func (t *Table) HTML() string {
	var b strings.Builder

	b.WriteString("<table class=\"sav-table\">\n<thead>\n<tr>")

	for _, name := range t.Columns {
		b.WriteString("<th>" + html.EscapeString(name) + "</th>")
	}

	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")

		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell.String()) + "</td>")
		}

		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")

	return b.String()
}

// Report formats a run summary into tables with basic data quality metrics
// summarized per read and per lane.
//
// Built tables are memoized on the Report, so repeated requests are free. A
// Report is not safe for concurrent use; share the column definitions instead
// and give each goroutine its own Report.
type Report struct {
	summary     *interop.RunSummary
	runColumns  []ColumnDef
	readColumns []ColumnDef

	runTable   *Table
	readTables map[int]*Table
}

// New returns a Report over the given run summary using the given column
// configuration (see DefaultRunSummaryColumns and DefaultReadSummaryColumns).
//
// Every column is checked here, before any row is formatted: a column with no
// fields, or naming a metric the engine never emits for that table's rows, is
// a configuration defect and fails construction outright rather than producing
// a misleading partial table.
func New(summary *interop.RunSummary, runColumns, readColumns []ColumnDef) (*Report, error) {
	if err := validateColumns(runColumns, interop.ReadFields); err != nil {
		return nil, err
	}

	if err := validateColumns(readColumns, interop.LaneFields); err != nil {
		return nil, err
	}

	return &Report{
		summary:     summary,
		runColumns:  runColumns,
		readColumns: readColumns,
		readTables:  make(map[int]*Table),
	}, nil
}

func validateColumns(columns []ColumnDef, known interop.FieldSet) error {
	for _, column := range columns {
		if len(column.Fields) == 0 {
			return fmt.Errorf("%w: column %q", ErrNoFields, column.Name)
		}

		for _, field := range column.Fields {
			if !known.Contains(field) {
				return fmt.Errorf("%w: column %q field %q", ErrUnknownField, column.Name, field)
			}
		}
	}

	return nil
}

// RunSummaryTable returns the table summarized per read: one row per read plus
// the non-indexed and total rows, labelled in a leading Level column.
func (r *Report) RunSummaryTable() (*Table, error) {
	if r.runTable != nil {
		return r.runTable, nil
	}

	labels := make([]string, 0, len(r.summary.Reads)+2)
	rows := make([]interop.Row, 0, len(r.summary.Reads)+2)

	for _, read := range r.summary.Reads {
		labels = append(labels, readDisplayName(read.ReadInfo))
		rows = append(rows, read.Summary)
	}

	labels = append(labels, "Non-Indexed Total", "Total")
	rows = append(rows, r.summary.NonIndex, r.summary.Total)

	table := &Table{Columns: make([]string, 0, len(r.runColumns)+1)}
	table.Columns = append(table.Columns, levelColumn)

	for _, column := range r.runColumns {
		table.Columns = append(table.Columns, column.Name)
	}

	for i, row := range rows {
		cells := make([]Cell, 0, len(r.runColumns)+1)
		cells = append(cells, textCell(labels[i]))

		for _, column := range r.runColumns {
			cell, err := column.FormatRow(row)
			if err != nil {
				return nil, err
			}

			cells = append(cells, cell)
		}

		table.Rows = append(table.Rows, cells)
	}

	r.runTable = table

	return table, nil
}

// ReadSummaryTable returns the per-lane table for the given read. The read
// number starts at 0.
func (r *Report) ReadSummaryTable(readNum int) (*Table, error) {
	if table, ok := r.readTables[readNum]; ok {
		return table, nil
	}

	if readNum < 0 || readNum >= len(r.summary.Reads) {
		return nil, fmt.Errorf("%w: %d", ErrBadReadNumber, readNum)
	}

	table := &Table{Columns: make([]string, len(r.readColumns))}

	for i, column := range r.readColumns {
		table.Columns[i] = column.Name
	}

	for _, row := range r.summary.Reads[readNum].Lanes {
		cells := make([]Cell, len(r.readColumns))

		for i, column := range r.readColumns {
			cell, err := column.FormatRow(row)
			if err != nil {
				return nil, err
			}

			cells[i] = cell
		}

		table.Rows = append(table.Rows, cells)
	}

	r.readTables[readNum] = table

	return table, nil
}

// JSON serializes the report as an indented object with a runSummary array of
// records and a reads array of per-read record arrays. Not-a-number values
// come out as JSON null.
func (r *Report) JSON() ([]byte, error) {
	runTable, err := r.RunSummaryTable()
	if err != nil {
		return nil, err
	}

	readTables := make([]*Table, len(r.summary.Reads))

	for i := range r.summary.Reads {
		if readTables[i], err = r.ReadSummaryTable(i); err != nil {
			return nil, err
		}
	}

	payload := struct {
		RunSummary *Table   `json:"runSummary"`
		Reads      []*Table `json:"reads"`
	}{runTable, readTables}

	return json.MarshalIndent(payload, "", "  ")
}

// HTML renders the report as a fragment: the run quality summary table
// followed by one table per read, all styled with the fixed sav-table
// stylesheet.
func (r *Report) HTML() (string, error) {
	runTable, err := r.RunSummaryTable()
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString(savTableStyle)
	b.WriteString("<strong>Run Quality Summary</strong>\n")
	b.WriteString(runTable.HTML())

	for i := range r.summary.Reads {
		table, err := r.ReadSummaryTable(i)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "<br>\n<strong>Read %d</strong>\n", i+1)
		b.WriteString(table.HTML())
	}

	return b.String(), nil
}

// readDisplayName adds the (I) flag for indexed reads.
func readDisplayName(info interop.ReadInfo) string {
	indexedFlag := ""
	if info.IsIndex {
		indexedFlag = "(I) "
	}

	return fmt.Sprintf("Read %s%d", indexedFlag, info.Number)
}
