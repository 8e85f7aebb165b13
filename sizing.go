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

import "fmt"

// Size dispatches to the sizing function for the given technology. The
// only error condition is an unresolvable influent flow unit; degenerate
// loading inputs produce zero-valued geometry instead.
func Size(conv *Converter, tech Technology, inf *Influent) (*Sizing, error) {
	switch tech {
	case CAS:
		return SizeCAS(conv, inf)
	case IFAS:
		return SizeIFAS(conv, inf)
	case MBR:
		return SizeMBR(conv, inf)
	case MBBR:
		return SizeMBBR(conv, inf)
	case Scrubber:
		return SizeScrubber(conv, inf)
	case Solids:
		return SizeSolids(conv, inf)
	}
	return nil, fmt.Errorf("aquagenius: no sizing function for %v", tech)
}

// asBasinVolume solves the single-pass activated-sludge design equation
// for the biological volume, m³. The equation is already rearranged to
// explicit form so no numerical solver is involved:
//
//	V = Q · Y · (S0 − Se) · SRT / (X · (1 + kd·SRT))
//
// Any non-positive term degrades the result to zero.
func asBasinVolume(q, s0, se, srt, mlss float64) float64 {
	den := mlss * (1 + decayCoeff*srt)
	if q <= 0 || den <= 0 {
		return 0
	}
	v := q * heterotrophYield * (s0 - se) * srt / den
	if v < 0 {
		return 0
	}
	return v
}

// activatedSludgeSizing assembles the parts shared by the CAS, IFAS and
// MBR trains: equalization, anoxic/aerobic split, and hydraulic
// residence time.
func activatedSludgeSizing(tech Technology, q, srt, mlss float64) *Sizing {
	return &Sizing{
		Tech:            tech,
		Flow:            q,
		SRT:             srt,
		MLSS:            mlss,
		Volumes:         make(map[string]float64),
		Dimensions:      make(map[string]map[string]string),
		EffluentTargets: Targets(tech),
	}
}

// SizeCAS sizes a conventional activated sludge train on an SRT basis:
// 10 d SRT at 3500 mg/L MLSS, 30:70 anoxic:aerobic volume split, and a
// circular secondary clarifier at the design surface overflow rate.
func SizeCAS(conv *Converter, inf *Influent) (*Sizing, error) {
	q, err := flowM3d(conv, inf)
	if err != nil {
		return nil, err
	}
	const (
		srt  = 10.0
		mlss = 3500.0
	)
	sz := activatedSludgeSizing(CAS, q, srt, mlss)

	v := asBasinVolume(q, inf.BOD, sz.EffluentTargets["BOD"], srt, mlss)
	sz.Volumes["Equalization Basin"] = eqBasinFraction * q
	sz.Volumes["Anoxic Basin"] = anoxicFraction * v
	sz.Volumes["Aeration Basin"] = aerobicFraction * v
	if q > 0 {
		sz.HRT = v / q * 24
		sz.ClarifierArea = q / clarifierSOR
	}

	sz.Dimensions["Equalization Basin"] = TankDimensions(sz.Volumes["Equalization Basin"], Rectangular, eqBasinDepth)
	sz.Dimensions["Anoxic Basin"] = TankDimensions(sz.Volumes["Anoxic Basin"], Rectangular, basinDepth)
	sz.Dimensions["Aeration Basin"] = TankDimensions(sz.Volumes["Aeration Basin"], Rectangular, basinDepth)
	sz.Dimensions["Secondary Clarifier"] = TankDimensions(sz.ClarifierArea, Circular, 0)
	return sz, nil
}

// SizeIFAS sizes an integrated fixed-film activated sludge train. The
// fixed-film carriers add an equivalent-MLSS credit to the suspended
// inventory, shrinking the basin relative to CAS; carrier media fills a
// fixed fraction of the aerobic volume.
func SizeIFAS(conv *Converter, inf *Influent) (*Sizing, error) {
	q, err := flowM3d(conv, inf)
	if err != nil {
		return nil, err
	}
	const (
		srt  = 10.0
		mlss = 2500.0
	)
	sz := activatedSludgeSizing(IFAS, q, srt, mlss)

	v := asBasinVolume(q, inf.BOD, sz.EffluentTargets["BOD"], srt, mlss+ifasMediaCredit)
	sz.Volumes["Equalization Basin"] = eqBasinFraction * q
	sz.Volumes["Anoxic Basin"] = anoxicFraction * v
	sz.Volumes["Aeration Basin"] = aerobicFraction * v
	sz.MediaVolume = ifasMediaFill * sz.Volumes["Aeration Basin"]
	if q > 0 {
		sz.HRT = v / q * 24
		sz.ClarifierArea = q / clarifierSOR
	}

	sz.Dimensions["Equalization Basin"] = TankDimensions(sz.Volumes["Equalization Basin"], Rectangular, eqBasinDepth)
	sz.Dimensions["Anoxic Basin"] = TankDimensions(sz.Volumes["Anoxic Basin"], Rectangular, basinDepth)
	sz.Dimensions["Aeration Basin"] = TankDimensions(sz.Volumes["Aeration Basin"], Rectangular, basinDepth)
	sz.Dimensions["Secondary Clarifier"] = TankDimensions(sz.ClarifierArea, Circular, 0)
	return sz, nil
}

// SizeMBR sizes a membrane bioreactor: higher MLSS and SRT than CAS, no
// secondary clarifier, and membrane area set by peak-hour flux.
func SizeMBR(conv *Converter, inf *Influent) (*Sizing, error) {
	q, err := flowM3d(conv, inf)
	if err != nil {
		return nil, err
	}
	const (
		srt  = 12.0
		mlss = 8000.0
	)
	sz := activatedSludgeSizing(MBR, q, srt, mlss)

	v := asBasinVolume(q, inf.BOD, sz.EffluentTargets["BOD"], srt, mlss)
	sz.Volumes["Equalization Basin"] = eqBasinFraction * q
	sz.Volumes["Anoxic Basin"] = anoxicFraction * v
	sz.Volumes["Aeration Basin"] = aerobicFraction * v
	// Peak flow in L/h over net design flux.
	sz.MembraneArea = peakingFactor * q * 1000 / 24 / mbrFlux
	sz.Volumes["Membrane Tank"] = sz.MembraneArea / mbrPackingDens
	if q > 0 {
		sz.HRT = v / q * 24
	}

	sz.Dimensions["Equalization Basin"] = TankDimensions(sz.Volumes["Equalization Basin"], Rectangular, eqBasinDepth)
	sz.Dimensions["Anoxic Basin"] = TankDimensions(sz.Volumes["Anoxic Basin"], Rectangular, basinDepth)
	sz.Dimensions["Aeration Basin"] = TankDimensions(sz.Volumes["Aeration Basin"], Rectangular, basinDepth)
	sz.Dimensions["Membrane Tank"] = TankDimensions(sz.Volumes["Membrane Tank"], Rectangular, basinDepth)
	return sz, nil
}

// SizeMBBR sizes a moving-bed biofilm reactor on volumetric BOD loading
// of the carrier media rather than an SRT basis; the biomass lives on
// the carriers, so no MLSS or sludge age is carried in the record.
func SizeMBBR(conv *Converter, inf *Influent) (*Sizing, error) {
	q, err := flowM3d(conv, inf)
	if err != nil {
		return nil, err
	}
	sz := &Sizing{
		Tech:            MBBR,
		Flow:            q,
		Volumes:         make(map[string]float64),
		Dimensions:      make(map[string]map[string]string),
		EffluentTargets: Targets(MBBR),
	}

	bodLoad := q * inf.BOD / 1000 // kg/d
	if bodLoad > 0 {
		sz.MediaVolume = bodLoad / mbbrSALR
	}
	sz.Volumes["MBBR Reactor"] = sz.MediaVolume / mbbrMediaFill
	sz.Volumes["Equalization Basin"] = eqBasinFraction * q
	if q > 0 {
		sz.HRT = sz.Volumes["MBBR Reactor"] / q * 24
		sz.ClarifierArea = q / clarifierSOR
	}

	sz.Dimensions["Equalization Basin"] = TankDimensions(sz.Volumes["Equalization Basin"], Rectangular, eqBasinDepth)
	sz.Dimensions["MBBR Reactor"] = TankDimensions(sz.Volumes["MBBR Reactor"], Rectangular, basinDepth)
	sz.Dimensions["Secondary Clarifier"] = TankDimensions(sz.ClarifierArea, Circular, 0)
	return sz, nil
}
