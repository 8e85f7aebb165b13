/*
Copyright © 2026 the AquaGenius authors.
This file is part of AquaGenius.

AquaGenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AquaGenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AquaGenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	wwtp "github.com/ral197979/aquagenius"
	"github.com/ral197979/aquagenius/pfd"
	"github.com/ral197979/aquagenius/report"
)

func init() {
	Root.AddCommand(designCmd)
}

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Size the selected technology and write the design report.",
	Long: `Size the technology selected in the configuration file, run the
process simulation, print the results, and write the process-flow
diagram description and the PDF design report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Design(Config)
	},
}

// Design performs one full sizing + simulation + report pass.
func Design(cfg *ConfigData) error {
	inf, err := loadInfluent(cfg)
	if err != nil {
		return err
	}
	tech, err := wwtp.ParseTechnology(cfg.Technology)
	if err != nil {
		return err
	}

	conv := wwtp.NewConverter()
	sz, err := wwtp.Size(conv, tech, inf)
	if err != nil {
		return err
	}

	var src rand.Source
	if cfg.JitterSeed != 0 {
		src = rand.NewSource(cfg.JitterSeed)
	}
	sim := wwtp.NewSimulator(src)
	res := sim.Simulate(sz, inf, wwtp.Adjustments(cfg.Adjustments))

	printResults(sz, res)

	dot := pfd.Graph(inf, sz, res)
	if cfg.OutputDOT != "" {
		if err := os.WriteFile(cfg.OutputDOT, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("writing diagram description: %w", err)
		}
	}

	if cfg.OutputPDF != "" {
		pdf, err := report.Generate(inf, sz, res, dot, pfd.Render)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.OutputPDF, pdf, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logrus.WithFields(logrus.Fields{"path": cfg.OutputPDF}).Info("report written")
	}
	return nil
}

func loadInfluent(cfg *ConfigData) (*wwtp.Influent, error) {
	inf := cfg.Influent
	if cfg.OverrideFile == "" {
		return &inf, nil
	}

	var (
		ov  wwtp.Overrides
		err error
	)
	switch strings.ToLower(filepath.Ext(cfg.OverrideFile)) {
	case ".xlsx":
		ov, err = wwtp.LoadOverridesXLSX(cfg.OverrideFile)
	default:
		var f *os.File
		f, err = os.Open(cfg.OverrideFile)
		if err == nil {
			defer f.Close()
			ov, err = wwtp.LoadOverridesCSV(f)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading override file %s: %w", cfg.OverrideFile, err)
	}
	inf = ov.Apply(inf)
	return &inf, nil
}

func printResults(sz *wwtp.Sizing, res *wwtp.Results) {
	fmt.Printf("\nDesign basis (%v): SRT %.0f d, MLSS %.0f mg/L, HRT %.1f h\n",
		sz.Tech, sz.SRT, sz.MLSS, sz.HRT)

	names := make([]string, 0, len(res.Metrics))
	for n := range res.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-32s %12.2f\n", n, res.Metrics[n])
	}
	for k, v := range res.Notes {
		fmt.Printf("  %s: %s\n", k, v)
	}
}
