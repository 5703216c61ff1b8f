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

import "fmt"

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownShape = Error("metric value has an unrecognised shape")
	ErrBadSummary   = Error("engine summary output could not be decoded")
	ErrBadImaging   = Error("engine imaging table output could not be decoded")
)

// SummaryCommand returns the command line that makes the engine summarize the
// run metrics in the given run folder as JSON on stdout.
func SummaryCommand(exe, runFolder string) string {
	return fmt.Sprintf("%s %q", exe, runFolder)
}

// ImagingCommand returns the command line that makes the engine dump the
// per-tile imaging table for the given run folder as CSV on stdout.
func ImagingCommand(exe, runFolder string) string {
	return fmt.Sprintf("%s %q", exe, runFolder)
}
