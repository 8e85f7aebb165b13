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

// SizeScrubber sizes a packed-tower chemical scrubber for the foul air
// stream: tower cross-section from superficial gas velocity, packing
// volume from empty-bed residence time. The liquid-train influent flow
// is still resolved (and recorded) so the record can drive recirculation
// pump sizing, but the tower itself is governed by the air stream.
func SizeScrubber(conv *Converter, inf *Influent) (*Sizing, error) {
	q, err := flowM3d(conv, inf)
	if err != nil {
		return nil, err
	}
	sz := &Sizing{
		Tech:            Scrubber,
		Flow:            q,
		Volumes:         make(map[string]float64),
		Dimensions:      make(map[string]map[string]string),
		EffluentTargets: map[string]float64{"Removal (%)": scrubberDesignEff * 100},
	}

	airM3s := inf.AirFlow / 3600
	if airM3s <= 0 {
		return sz, nil
	}
	area := airM3s / towerGasVelocity
	packing := airM3s * towerEBRT
	height := packing / area // equals towerGasVelocity × towerEBRT

	sz.Volumes["Packed Tower"] = packing
	sz.MediaVolume = packing
	sz.Dimensions["Packed Tower"] = TankDimensions(packing, Circular, height)
	return sz, nil
}
