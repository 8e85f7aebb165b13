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
	"fmt"

	"github.com/ctessum/unit"
)

const secondsPerDay = 86400.0

// Dimensions for the quantities the converter can express.
var (
	volumeFlowDims = unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1}
	volumeDims     = unit.Dimensions{unit.LengthDim: 3}
)

// Converter performs lookups in a fixed table of unit conversion
// factors. The table is immutable after construction so concurrent
// readers need no coordination.
type Converter struct {
	factors map[[2]string]float64
}

// NewConverter returns a converter loaded with the supported pairs.
func NewConverter() *Converter {
	return &Converter{factors: map[[2]string]float64{
		{"MGD", "m³/d"}:  3785.41,
		{"MG", "m³"}:     3785.41,
		{"GPD", "m³/d"}:  0.00378541,
		{"m³/d", "GPM"}:  1 / 0.183,
		{"kg", "lbs"}:    2.20462,
		{"m", "ft"}:      3.28084,
		{"m²", "ft²"}:    10.7639,
		{"m³", "ft³"}:    35.3147,
		{"kW", "hp"}:     1.34102,
		{"hp", "kW"}:     0.7457,
	}}
}

// Convert converts value from one unit to another. Identity conversions
// always succeed; any pair not in the table is an error.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	f, ok := c.factors[[2]string{from, to}]
	if !ok {
		return 0, fmt.Errorf("aquagenius: unsupported conversion from %s to %s", from, to)
	}
	return value * f, nil
}

// FlowQuantity converts a flow in the named unit to a dimensioned SI
// quantity (m³/s), so downstream arithmetic is dimension-checked.
func (c *Converter) FlowQuantity(value float64, from string) (*unit.Unit, error) {
	m3d, err := c.Convert(value, from, "m³/d")
	if err != nil {
		return nil, err
	}
	return unit.New(m3d/secondsPerDay, volumeFlowDims), nil
}

// VolumeQuantity converts a volume in the named unit to a dimensioned SI
// quantity (m³).
func (c *Converter) VolumeQuantity(value float64, from string) (*unit.Unit, error) {
	m3, err := c.Convert(value, from, "m³")
	if err != nil {
		return nil, err
	}
	return unit.New(m3, volumeDims), nil
}

// flowM3d resolves an influent's flow entry to m³/d through the
// dimensioned conversion path.
func flowM3d(c *Converter, inf *Influent) (float64, error) {
	q, err := c.FlowQuantity(inf.Flow, inf.FlowUnit)
	if err != nil {
		return 0, err
	}
	if !q.Dimensions().Matches(volumeFlowDims) {
		return 0, fmt.Errorf("aquagenius: flow quantity has dimensions %v", q.Dimensions())
	}
	return q.Value() * secondsPerDay, nil
}
