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

package aquagenius

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesCSV(t *testing.T) {
	in := "Parameter,Value\nFlow,12000\nBOD,300\nTSS,250\nTKN,45\nTP,7.5\n"
	ov, err := LoadOverridesCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Overrides{
		"Flow": 12000, "BOD": 300, "TSS": 250, "TKN": 45, "TP": 7.5,
	}, ov)

	inf := ov.Apply(Influent{Flow: 10000, FlowUnit: "m³/d", BOD: 250})
	assert.Equal(t, 12000.0, inf.Flow)
	assert.Equal(t, "m³/d", inf.FlowUnit, "overrides keep the configured flow unit")
	assert.Equal(t, 300.0, inf.BOD)
}

func TestLoadOverridesCSVPartial(t *testing.T) {
	ov, err := LoadOverridesCSV(strings.NewReader("Parameter,Value\nBOD,180\n"))
	require.NoError(t, err)

	inf := ov.Apply(Influent{Flow: 10000, BOD: 250, TSS: 220})
	assert.Equal(t, 10000.0, inf.Flow, "parameters absent from the table stay put")
	assert.Equal(t, 180.0, inf.BOD)
	assert.Equal(t, 220.0, inf.TSS)
}

func TestLoadOverridesCSVErrors(t *testing.T) {
	_, err := LoadOverridesCSV(strings.NewReader("Parameter,Value\nColour,7\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown override parameter")

	_, err = LoadOverridesCSV(strings.NewReader("Parameter,Value\nBOD,plenty\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad value")

	// A ragged row is a malformed table, not a silent skip.
	_, err = LoadOverridesCSV(strings.NewReader("Parameter,Value\nFlow\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed override table")
}
