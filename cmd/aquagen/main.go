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

// Command aquagen is a command-line interface for the AquaGenius
// wastewater treatment plant design calculator.
package main

import (
	"fmt"
	"os"

	"github.com/ral197979/aquagenius/internal/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
