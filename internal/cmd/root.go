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

// Package cmd wires the cobra commands for the aquagen CLI.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	wwtp "github.com/ral197979/aquagenius"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData
)

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aquagen",
	Short: "A preliminary-design calculator for wastewater treatment plants.",
	Long: `A preliminary-design calculator for wastewater treatment plants:
given influent flow and loading, it sizes the selected treatment train
with steady-state design equations and reports effluent quality,
chemical dosing, sludge production, and utility design flows.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file and prints a welcome message.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}

	fmt.Println("\n" +
		"------------------------------------------------\n" +
		"                   Welcome!\n" +
		"        AquaGenius WWTP Design Calculator\n" +
		"                Version " + wwtp.Version + "\n" +
		"------------------------------------------------")
	return nil
}

func init() {
	Root.AddCommand(versionCmd)

	Root.PersistentFlags().StringVar(&configFile, "config", "./aquagen.toml", "configuration file location")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of AquaGenius",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("AquaGenius v%s\n", wwtp.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
