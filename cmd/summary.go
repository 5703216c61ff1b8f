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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/FredHutch/interop-nf/config"
	"github.com/FredHutch/interop-nf/interop"
	"github.com/FredHutch/interop-nf/report"
	"github.com/spf13/cobra"
)

const (
	dirPerm  = 0755
	filePerm = 0644

	jsonOutputName = "run_metrics.json"
	htmlOutputName = "run_metrics.html"
)

// options for this cmd.
var summaryOutput string

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary <run_folder>",
	Short: "Write run quality summary tables.",
	Long: `Write run quality summary tables.

The engine's summary command is run on the given run folder, and the metrics it
reports are formatted into the run quality summary table (one row per read plus
non-indexed and total rows) and one per-lane table per read. The tables are
written to run_metrics.json and run_metrics.html in the output directory, which
will be created if it doesn't exist.

The output directory defaults to INTEROP_NF_OUTPUT_DIR (or the current
directory); -o overrides it.
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := summarizeRun(args[0]); err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVarP(&summaryOutput, outputFlag, "o", "",
		"directory to write run_metrics.json and run_metrics.html to")
}

func summarizeRun(runFolder string) error {
	c, err := config.FromEnv()
	if err != nil {
		return err
	}

	outputDir, err := ensureOutputDir(summaryOutput, c)
	if err != nil {
		return err
	}

	summary, err := loadRunSummary(c, runFolder)
	if err != nil {
		return err
	}

	info("summarizing %d reads over %d lanes", len(summary.Reads), summary.LaneCount())

	rep, err := report.New(summary,
		report.DefaultRunSummaryColumns(), report.DefaultReadSummaryColumns())
	if err != nil {
		return err
	}

	info("generating run stats json")

	tableJSON, err := rep.JSON()
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(outputDir, jsonOutputName)

	if err := os.WriteFile(jsonPath, tableJSON, filePerm); err != nil {
		return err
	}

	info("generating run stats html")

	tableHTML, err := rep.HTML()
	if err != nil {
		return err
	}

	htmlPath := filepath.Join(outputDir, htmlOutputName)

	if err := os.WriteFile(htmlPath, []byte(tableHTML), filePerm); err != nil {
		return err
	}

	cliPrint("%s\n%s\n", jsonPath, htmlPath)

	return nil
}

// loadRunSummary runs the engine's summary command on the run folder and
// parses its output.
func loadRunSummary(c *config.Config, runFolder string) (*interop.RunSummary, error) {
	cmd := interop.SummaryCommand(c.SummaryExe, runFolder)

	info("running engine summary command:\n%s", cmd)

	out, err := executeCmd(cmd)
	if err != nil {
		return nil, err
	}

	return interop.ParseSummary(bytes.NewReader(out))
}

// ensureOutputDir picks the flag value over the configured one and creates the
// directory if needed.
func ensureOutputDir(flagValue string, c *config.Config) (string, error) {
	outputDir := flagValue
	if outputDir == "" {
		outputDir = c.OutputDir
	}

	return outputDir, os.MkdirAll(outputDir, dirPerm)
}
