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

import "math"

// SizeSolids sizes the solids-handling train. Its sludge-generation
// basis is always the CAS liquid train sized for the same influent,
// regardless of which technology the operator is viewing; the solids
// units serve the plant, not the tab.
func SizeSolids(conv *Converter, inf *Influent) (*Sizing, error) {
	cas, err := SizeCAS(conv, inf)
	if err != nil {
		return nil, err
	}
	sludge := bioSludgeProduction(cas, inf) // kg TSS/d

	sz := &Sizing{
		Tech:       Solids,
		Flow:       cas.Flow,
		Volumes:    make(map[string]float64),
		Dimensions: make(map[string]map[string]string),
		EffluentTargets: map[string]float64{
			"Thickened Solids (%)": orDefault(inf.ThickenedSolidsPct, defaultThickenedPct),
			"VSR (%)":              orDefault(inf.VSRTargetPct, defaultVSRPct),
			"Cake Solids (%)":      math.Min(orDefault(inf.CakeSolidsPct, defaultCakePct), maxCakeSolids),
		},
	}
	if sludge <= 0 {
		return sz, nil
	}

	thickenerArea := sludge / thickenerLoading
	thickenedPct := sz.EffluentTargets["Thickened Solids (%)"]
	var thickenedFlow float64 // m³/d at the thickened concentration
	if thickenedPct > 0 {
		thickenedFlow = sludge / (thickenedPct / 100 * 1000)
	}

	vsLoad := sludge * volatileFraction
	digesterVol := vsLoad / digesterVSLoading
	if byRetention := thickenedFlow * digesterMinSRT; byRetention > digesterVol {
		digesterVol = byRetention
	}

	sz.ClarifierArea = thickenerArea
	sz.Volumes["Anaerobic Digester"] = digesterVol
	sz.Dimensions["Gravity Thickener"] = TankDimensions(thickenerArea, Circular, 0)
	sz.Dimensions["Anaerobic Digester"] = TankDimensions(digesterVol, Circular, digesterDepth)
	return sz, nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
