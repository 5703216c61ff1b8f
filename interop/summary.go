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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// ReadInfo identifies one read of the run.
type ReadInfo struct {
	Number     int
	IsIndex    bool
	FirstCycle int
}

// ReadSummary holds the engine's summary for one read: the read-level
// aggregate row plus one row per lane.
type ReadSummary struct {
	ReadInfo
	Summary Row
	Lanes   []Row
}

// RunSummary is the engine's full summary of a run.
type RunSummary struct {
	Reads    []ReadSummary
	NonIndex Row
	Total    Row
}

// LaneCount returns the number of lanes in the run, which is the largest lane
// row count across reads.
func (rs *RunSummary) LaneCount() int {
	count := 0

	for _, read := range rs.Reads {
		if len(read.Lanes) > count {
			count = len(read.Lanes)
		}
	}

	return count
}

// ReadInfos returns the ReadInfo for every read, in read order.
func (rs *RunSummary) ReadInfos() []ReadInfo {
	infos := make([]ReadInfo, len(rs.Reads))

	for i, read := range rs.Reads {
		infos[i] = read.ReadInfo
	}

	return infos
}

type rawRead struct {
	Read       int                          `json:"read"`
	IsIndex    bool                         `json:"is_index"`
	FirstCycle int                          `json:"first_cycle"`
	Summary    map[string]json.RawMessage   `json:"summary"`
	Lanes      []map[string]json.RawMessage `json:"lanes"`
}

type rawSummary struct {
	Reads    []rawRead                  `json:"reads"`
	NonIndex map[string]json.RawMessage `json:"nonindex_summary"`
	Total    map[string]json.RawMessage `json:"total_summary"`
}

// ParseSummary decodes the JSON the engine's summary command writes to stdout.
// Metric values must be a number, a {"mean","stddev"} object, a
// {"first_cycle","last_cycle"} object, or the string "NaN"; anything else is
// an error. Metrics the engine could not compute are omitted from its output
// and so end up absent from the returned rows.
func ParseSummary(r io.Reader) (*RunSummary, error) {
	var raw rawSummary

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadSummary, err)
	}

	if len(raw.Reads) == 0 || raw.NonIndex == nil || raw.Total == nil {
		return nil, ErrBadSummary
	}

	rs := &RunSummary{Reads: make([]ReadSummary, len(raw.Reads))}

	for i, read := range raw.Reads {
		parsed, err := parseRead(read)
		if err != nil {
			return nil, err
		}

		rs.Reads[i] = parsed
	}

	var err error

	if rs.NonIndex, err = parseRow(raw.NonIndex); err != nil {
		return nil, err
	}

	if rs.Total, err = parseRow(raw.Total); err != nil {
		return nil, err
	}

	return rs, nil
}

func parseRead(raw rawRead) (ReadSummary, error) {
	summary, err := parseRow(raw.Summary)
	if err != nil {
		return ReadSummary{}, err
	}

	lanes := make([]Row, len(raw.Lanes))

	for i, lane := range raw.Lanes {
		if lanes[i], err = parseRow(lane); err != nil {
			return ReadSummary{}, err
		}
	}

	return ReadSummary{
		ReadInfo: ReadInfo{
			Number:     raw.Read,
			IsIndex:    raw.IsIndex,
			FirstCycle: raw.FirstCycle,
		},
		Summary: summary,
		Lanes:   lanes,
	}, nil
}

func parseRow(raw map[string]json.RawMessage) (Row, error) {
	row := make(Row, len(raw))

	for field, msg := range raw {
		value, present, err := parseValue(msg)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}

		if present {
			row[field] = value
		}
	}

	return row, nil
}

// parseValue turns one raw metric into a tagged Value. A JSON null counts as
// absent rather than an error, matching an engine that emits explicit nulls
// instead of omitting keys.
func parseValue(msg json.RawMessage) (Value, bool, error) {
	var decoded any

	if err := json.Unmarshal(msg, &decoded); err != nil {
		return Value{}, false, err
	}

	switch v := decoded.(type) {
	case nil:
		return Value{}, false, nil
	case float64:
		return ScalarValue(v), true, nil
	case string:
		f, ok := nanValue(v)
		if !ok {
			return Value{}, false, ErrUnknownShape
		}

		return ScalarValue(f), true, nil
	case map[string]any:
		value, err := parseShapedValue(v)

		return value, err == nil, err
	default:
		return Value{}, false, ErrUnknownShape
	}
}

func parseShapedValue(obj map[string]any) (Value, error) {
	mean, hasMean := obj["mean"]
	stddev, hasStdDev := obj["stddev"]

	if hasMean && hasStdDev {
		m, errM := metricFloat(mean)
		s, errS := metricFloat(stddev)

		if errM != nil || errS != nil {
			return Value{}, ErrUnknownShape
		}

		return DistributionValue(m, s), nil
	}

	first, hasFirst := obj["first_cycle"]
	last, hasLast := obj["last_cycle"]

	if hasFirst && hasLast {
		f, errF := metricFloat(first)
		l, errL := metricFloat(last)

		if errF != nil || errL != nil {
			return Value{}, ErrUnknownShape
		}

		return CycleRangeValue(f, l), nil
	}

	return Value{}, ErrUnknownShape
}

// metricFloat accepts a JSON number or the string "NaN".
func metricFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		if f, ok := nanValue(t); ok {
			return f, nil
		}
	}

	return 0, ErrUnknownShape
}

func nanValue(s string) (float64, bool) {
	if strings.EqualFold(s, "nan") {
		return math.NaN(), true
	}

	return 0, false
}
