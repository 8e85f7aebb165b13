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
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	wwtp "github.com/ral197979/aquagenius"
	"github.com/ral197979/aquagenius/server"
)

func init() {
	Root.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the design calculator over HTTP.",
	Long: `Serve the stateless JSON design API on the configured address.
Each request carries its full inputs; nothing is stored between
requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var src rand.Source
		if Config.JitterSeed != 0 {
			src = rand.NewSource(Config.JitterSeed)
		}
		return server.New(wwtp.NewSimulator(src)).Run(Config.HTTPAddress)
	},
}
