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
	"math"
)

// Shape selects the plan geometry of a tank.
type Shape string

const (
	Rectangular Shape = "rectangular"
	Circular    Shape = "circular"
)

// TankDimensions converts a volume and shape selector into physical
// dimensions, m.
//
// Rectangular tanks use a fixed 3:1 length-to-width aspect ratio at the
// given depth. Circular tanks with depth 0 treat volume as a surface
// area (the clarifier case) and report the fixed side water depth;
// circular tanks with positive depth derive area from volume.
//
// Degenerate inputs (non-positive volume, non-positive rectangular
// depth, unrecognized shape) return an empty map rather than an error;
// callers must tolerate missing dimensions.
func TankDimensions(volume float64, shape Shape, depth float64) map[string]string {
	dims := make(map[string]string)
	if volume <= 0 {
		return dims
	}
	switch shape {
	case Rectangular:
		if depth <= 0 {
			return dims
		}
		area := volume / depth
		width := math.Sqrt(area / 3)
		dims["Depth (m)"] = fmt.Sprintf("%.2f", depth)
		dims["Width (m)"] = fmt.Sprintf("%.2f", width)
		dims["Length (m)"] = fmt.Sprintf("%.2f", 3*width)
	case Circular:
		area := volume
		swd := clarifierSWD
		if depth > 0 {
			area = volume / depth
			swd = depth
		}
		dims["Diameter (m)"] = fmt.Sprintf("%.2f", math.Sqrt(4*area/math.Pi))
		dims["Side Water Depth (m)"] = fmt.Sprintf("%.2f", swd)
	}
	return dims
}

// ValveCv computes the flow coefficient for a control valve passing the
// given flow (m³/d) at pressure drop dp (psi). The correlation expects
// flow in GPM. Returns 0 when dp is not positive.
func ValveCv(conv *Converter, flowM3d, dp float64) float64 {
	if dp <= 0 {
		return 0
	}
	gpm, err := conv.Convert(flowM3d, "m³/d", "GPM")
	if err != nil {
		return 0
	}
	return gpm * math.Sqrt(1/dp)
}
