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
	"path/filepath"

	"github.com/FredHutch/interop-nf/config"
	"github.com/FredHutch/interop-nf/interop"
	"github.com/FredHutch/interop-nf/plots"
	"github.com/spf13/cobra"
)

const percentBaseOutputName = "percent_base.svg"

// options for this cmd.
var plotOutput string

// plotCmd represents the plot command.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot diagnostic run metrics.",
	Long: `Plot diagnostic run metrics.

The plot sub-commands run the engine's imaging command on a run folder and
draw SVG plots of the per-tile metrics it reports into the output directory
(INTEROP_NF_OUTPUT_DIR, the current directory, or -o).
`,
}

// percentBaseCmd represents the plot percent-base command.
var percentBaseCmd = &cobra.Command{
	Use:   "percent-base <run_folder>",
	Short: "Plot base composition over cycles.",
	Long: `Plot base composition over cycles.

The percentage of clusters calling each base (A, C, G, T) is averaged per cycle
and drawn as one line per base, with a dashed reference line where each read
starts. The plot is written to percent_base.svg.
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := plotPercentBase(args[0]); err != nil {
			die("%s", err.Error())
		}
	},
}

// tileIntensityCmd represents the plot tile-intensity command.
var tileIntensityCmd = &cobra.Command{
	Use:   "tile-intensity <run_folder>",
	Short: "Plot max intensity trends per lane.",
	Long: `Plot max intensity trends per lane.

The maximum extraction intensity is averaged across tiles per cycle and drawn
as one line plot per lane, written to max_intensity_<lane>.svg files.
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := plotTileIntensity(args[0]); err != nil {
			die("%s", err.Error())
		}
	},
}

// occupancyCmd represents the plot occupancy command.
var occupancyCmd = &cobra.Command{
	Use:   "occupancy <run_folder>",
	Short: "Plot % Occupied vs % Pass Filter.",
	Long: `Plot % Occupied vs % Pass Filter.

To optimize loading concentrations, % Occupied and % Pass Filter can be
plotted to determine if a run was underloaded, optimally loaded, or
overloaded. One scatter plot per hue dimension (tile, lane, cycle) is written
to occupancy_<hue>.svg files.

% Occupied is only reported on some platforms (eg. NovaSeq); for runs without
it no plots are produced.
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := plotOccupancy(args[0]); err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(plotCmd)
	plotCmd.AddCommand(percentBaseCmd)
	plotCmd.AddCommand(tileIntensityCmd)
	plotCmd.AddCommand(occupancyCmd)

	plotCmd.PersistentFlags().StringVarP(&plotOutput, outputFlag, "o", "",
		"directory to write the SVG plots to")
}

func plotPercentBase(runFolder string) error {
	c, outputDir, table, err := loadImagingTable(runFolder)
	if err != nil {
		return err
	}

	summary, err := loadRunSummary(c, runFolder)
	if err != nil {
		return err
	}

	info("generating %% base plot")

	path := filepath.Join(outputDir, percentBaseOutputName)

	if err := plots.PercentBase(table, summary.ReadInfos(), path); err != nil {
		return err
	}

	cliPrint("%s\n", path)

	return nil
}

func plotTileIntensity(runFolder string) error {
	_, outputDir, table, err := loadImagingTable(runFolder)
	if err != nil {
		return err
	}

	info("generating tile intensity plots")

	paths, err := plots.TileIntensity(table, outputDir)
	if err != nil {
		return err
	}

	printPaths(paths)

	return nil
}

func plotOccupancy(runFolder string) error {
	_, outputDir, table, err := loadImagingTable(runFolder)
	if err != nil {
		return err
	}

	info("generating occupancy plots")

	paths, err := plots.Occupancy(table, outputDir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		warn("occupancy plots skipped, no %% Occupied data available")

		return nil
	}

	printPaths(paths)

	return nil
}

// loadImagingTable loads config, ensures the output directory, and runs and
// parses the engine's imaging command for the run folder.
func loadImagingTable(runFolder string) (*config.Config, string, *interop.ImagingTable, error) {
	c, err := config.FromEnv()
	if err != nil {
		return nil, "", nil, err
	}

	outputDir, err := ensureOutputDir(plotOutput, c)
	if err != nil {
		return nil, "", nil, err
	}

	cmd := interop.ImagingCommand(c.ImagingExe, runFolder)

	info("running engine imaging command:\n%s", cmd)

	out, err := executeCmd(cmd)
	if err != nil {
		return nil, "", nil, err
	}

	table, err := interop.ParseImagingTable(bytes.NewReader(out))
	if err != nil {
		return nil, "", nil, err
	}

	return c, outputDir, table, nil
}

func printPaths(paths []string) {
	for _, path := range paths {
		cliPrint("%s\n", path)
	}
}
