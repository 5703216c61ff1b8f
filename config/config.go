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

package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvVarSummaryExe = "INTEROP_NF_SUMMARY_EXE"
	EnvVarImagingExe = "INTEROP_NF_IMAGING_EXE"
	EnvVarOutputDir  = "INTEROP_NF_OUTPUT_DIR"

	DefaultSummaryExe = "interop-summary"
	DefaultImagingExe = "interop-imaging"
	DefaultOutputDir  = "."
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrBlankEnv = Error("environment variable set but blank")

type Config struct {
	SummaryExe string
	ImagingExe string
	OutputDir  string
}

// FromEnv returns a new Config with properties populated from environment
// variables INTEROP_NF_*, where * is amongst: SUMMARY_EXE, IMAGING_EXE, and
// OUTPUT_DIR. Unset variables fall back to defaults; the engine executables
// only need overriding when they are not in your PATH under their usual names.
//
// If these environment variables are defined in a file called .env (and not
// previously set in an environment variable), they will be automatically
// loaded.
//
// Optionally supply a directory to look for the .env file in.
func FromEnv(dir ...string) (*Config, error) {
	var parentDir string
	if len(dir) == 1 {
		parentDir = dir[0] + string(os.PathSeparator)
	}

	godotenv.Load(parentDir + ".env")

	c := &Config{
		SummaryExe: DefaultSummaryExe,
		ImagingExe: DefaultImagingExe,
		OutputDir:  DefaultOutputDir,
	}

	overrides := map[string]*string{
		EnvVarSummaryExe: &c.SummaryExe,
		EnvVarImagingExe: &c.ImagingExe,
		EnvVarOutputDir:  &c.OutputDir,
	}

	for envVar, target := range overrides {
		value, set := os.LookupEnv(envVar)
		if !set {
			continue
		}

		if value == "" {
			return nil, ErrBlankEnv
		}

		*target = value
	}

	return c, nil
}
