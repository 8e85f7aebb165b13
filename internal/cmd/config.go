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

	"github.com/BurntSushi/toml"

	wwtp "github.com/ral197979/aquagenius"
)

// ConfigData holds information about an aquagen run.
type ConfigData struct {
	// Technology selects the treatment train to size: CAS, IFAS, MBR,
	// MBBR, Scrubber, or Solids.
	Technology string

	// Influent holds the design inputs. Any values present in
	// OverrideFile take precedence.
	Influent wwtp.Influent

	// OverrideFile is an optional two-column (Parameter, Value) CSV or
	// XLSX file overriding influent defaults. The path can include
	// environment variables.
	OverrideFile string

	// OutputPDF is the path the design report is written to. The path
	// can include environment variables.
	OutputPDF string

	// OutputDOT is the path the process-flow diagram description is
	// written to. The path can include environment variables.
	OutputDOT string

	// HTTPAddress is the listen address for the serve command, for
	// example ":8080".
	HTTPAddress string

	// JitterSeed seeds the effluent-quality jitter source. Zero leaves
	// jitter disabled, making runs reproducible.
	JitterSeed uint64

	// Adjustments holds optional operator multipliers (percent of
	// design) applied to the simulation.
	Adjustments map[string]float64
}

func defaultConfig() *ConfigData {
	return &ConfigData{
		Technology: "CAS",
		Influent: wwtp.Influent{
			Flow:     10000,
			FlowUnit: "m³/d",
			BOD:      250,
			TSS:      220,
			TKN:      40,
			TP:       6,
		},
		OutputPDF:   "./aquagen_report.pdf",
		OutputDOT:   "./aquagen_pfd.dot",
		HTTPAddress: ":8080",
	}
}

// ReadConfigFile parses the TOML configuration. A missing file is not an
// error: the built-in municipal defaults apply, so the calculator works
// out of the box.
func ReadConfigFile(filename string) (*ConfigData, error) {
	config := defaultConfig()
	bytes, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("reading configuration file %s: %w", filename, err)
	}
	if _, err := toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf("parsing configuration file %s: %w", filename, err)
	}

	config.OverrideFile = os.ExpandEnv(config.OverrideFile)
	config.OutputPDF = os.ExpandEnv(config.OutputPDF)
	config.OutputDOT = os.ExpandEnv(config.OutputDOT)

	if _, err := wwtp.ParseTechnology(config.Technology); err != nil {
		return nil, err
	}
	if config.Influent.FlowUnit == "" {
		config.Influent.FlowUnit = "m³/d"
	}
	return config, nil
}
