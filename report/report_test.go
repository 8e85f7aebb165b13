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

package report

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wwtp "github.com/ral197979/aquagenius"
)

func design(t *testing.T) (*wwtp.Influent, *wwtp.Sizing, *wwtp.Results) {
	t.Helper()
	inf := &wwtp.Influent{
		Flow: 10000, FlowUnit: "m³/d",
		BOD: 250, TSS: 220, TKN: 40, TP: 6,
	}
	sz, err := wwtp.Size(wwtp.NewConverter(), wwtp.CAS, inf)
	require.NoError(t, err)
	res := wwtp.NewSimulator(nil).Simulate(sz, inf, nil)
	return inf, sz, res
}

func failingRenderer(string, string) error {
	return fmt.Errorf("render host has no graphviz")
}

func TestGenerateWithoutRenderer(t *testing.T) {
	inf, sz, res := design(t)
	pdf, err := Generate(inf, sz, res, "digraph PFD {}", failingRenderer)
	require.NoError(t, err, "an unavailable renderer must not fail the report")
	assert.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output should be a PDF document")

	pdf2, err := Generate(inf, sz, res, "digraph PFD {}", nil)
	require.NoError(t, err, "a nil renderer degrades the same way")
	assert.NotEmpty(t, pdf2)
}

func TestGenerateSanitizesText(t *testing.T) {
	inf, sz, res := design(t)
	// Characters outside Latin-1 must be substituted, never an error.
	inf.FlowUnit = "m³/d 流量"
	res.Metrics["Blower ΔP (kPa)"] = 52.4

	pdf, err := Generate(inf, sz, res, "digraph PFD {}", failingRenderer)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestSplitUnit(t *testing.T) {
	for _, tc := range []struct{ in, name, unit string }{
		{"Width (m)", "Width", "m"},
		{"Side Water Depth (m)", "Side Water Depth", "m"},
		{"Cv", "Cv", ""},
		{"Odd (trailing", "Odd (trailing", ""},
	} {
		name, unit := splitUnit(tc.in)
		assert.Equal(t, tc.name, name, tc.in)
		assert.Equal(t, tc.unit, unit, tc.in)
	}
}
