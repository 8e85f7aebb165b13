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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulator evaluates a sized plant. It is a pure mapping from
// (sizing, influent, adjustments) to a results record; the only state it
// carries is the optional random source used to jitter effluent-quality
// estimates.
type Simulator struct {
	conv   *Converter
	jitter func() float64
}

// NewSimulator returns a simulator drawing effluent-quality jitter from
// src. A nil src disables jitter entirely, making every output
// bit-for-bit reproducible; callers wanting variability pass a seeded
// source.
func NewSimulator(src rand.Source) *Simulator {
	s := &Simulator{
		conv:   NewConverter(),
		jitter: func() float64 { return 0 },
	}
	if src != nil {
		u := distuv.Uniform{Min: -jitterSpan, Max: jitterSpan, Src: src}
		s.jitter = u.Rand
	}
	return s
}

// Simulate computes effluent quality, chemical dosing, sludge
// production, and utility design flows for a sized plant, optionally
// scaled by operator adjustment multipliers. It never returns an error:
// every degenerate numeric condition degrades the affected metric to
// zero, so any input combination yields a well-formed record.
func (s *Simulator) Simulate(sz *Sizing, inf *Influent, adj Adjustments) *Results {
	res := newResults()
	if sz == nil || inf == nil {
		return res
	}
	res.Notes["Technology"] = sz.Tech.String()
	switch sz.Tech {
	case Scrubber:
		s.scrubber(inf, adj, res)
	case Solids:
		s.solids(inf, adj, res)
	default:
		s.biological(sz, inf, adj, res)
	}
	return res
}

// safeDiv divides, substituting zero for a non-positive denominator.
// Degrading to zero instead of failing is the calculator's contract.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// massRate converts a flow (m³/d) and a concentration difference (mg/L)
// to a mass rate (kg/d), clamped at zero.
func massRate(q, conc float64) float64 {
	r := q * conc / 1000
	if r < 0 || q <= 0 {
		return 0
	}
	return r
}

// bioSludgeProduction estimates total waste solids (kg TSS/d) for a
// biological sizing via the yield/decay relation against design effluent
// targets, plus the chemical sludge contribution when alum dosing is
// enabled. It uses only target-table values, never jittered estimates,
// so the solids basis is deterministic.
func bioSludgeProduction(sz *Sizing, inf *Influent) float64 {
	bodRem := massRate(sz.Flow, inf.BOD-sz.EffluentTargets["BOD"])
	pxVSS := safeDiv(heterotrophYield*bodRem, 1+decayCoeff*sz.SRT)
	px := safeDiv(pxVSS, volatileFraction)
	if inf.DoseAlum {
		if pRem := massRate(sz.Flow, inf.TP-sz.EffluentTargets["TP"]); pRem > 0 {
			px += chemSludgePerP * pRem
		}
	}
	return px
}

func (s *Simulator) biological(sz *Sizing, inf *Influent, adj Adjustments, res *Results) {
	q := sz.Flow
	influent := map[string]float64{"BOD": inf.BOD, "TSS": inf.TSS, "TKN": inf.TKN, "TP": inf.TP}

	for _, p := range []string{"BOD", "TSS", "TKN", "TP"} {
		est := sz.EffluentTargets[p] * (1 + s.jitter())
		if est < 0 {
			est = 0
		}
		res.Metrics["Effluent "+p+" (mg/L)"] = est
		if removal := safeDiv(influent[p]-sz.EffluentTargets[p], influent[p]) * 100; removal > 0 {
			res.Metrics[p+" Removal (%)"] = removal
		} else {
			res.Metrics[p+" Removal (%)"] = 0
		}
	}

	bodRem := massRate(q, inf.BOD-sz.EffluentTargets["BOD"])
	nitrified := massRate(q, inf.TKN-sz.EffluentTargets["TKN"])
	pRem := massRate(q, inf.TP-sz.EffluentTargets["TP"])
	res.Metrics["BOD Removed (kg/d)"] = bodRem
	res.Metrics["N Nitrified (kg/d)"] = nitrified

	// Supplemental dosing only when the flag is set and there is a
	// computed removal need.
	if inf.DoseCarbon && nitrified > 0 {
		meth := chemicals["Methanol"]
		methDose := meth.Stoich * nitrified
		feed := safeDiv(safeDiv(methDose, meth.Strength), meth.Density) // L/d
		res.Metrics["Methanol Dose (kg/d)"] = methDose
		res.Metrics["Methanol Pump (L/h)"] = feed / 24 * dosePumpMargin
	}
	var chemSludge float64
	if inf.DoseAlum && pRem > 0 {
		alum := chemicals["Alum"]
		alumDose := alum.Stoich * pRem
		chemSludge = chemSludgePerP * pRem
		feed := safeDiv(safeDiv(alumDose, alum.Strength), alum.Density) // L/d
		res.Metrics["Alum Dose (kg/d)"] = alumDose
		res.Metrics["Alum Pump (L/h)"] = feed / 24 * dosePumpMargin
	}

	pxVSS := safeDiv(heterotrophYield*bodRem, 1+decayCoeff*sz.SRT)
	sludge := safeDiv(pxVSS, volatileFraction) + chemSludge
	res.Metrics["Sludge Production (kg/d)"] = sludge

	// Oxygen demand with sludge-wasting credit, then blower air at the
	// standard transfer efficiency.
	od := o2PerBOD*bodRem + o2PerNH3N*nitrified - o2SludgeCred*pxVSS
	if od < 0 {
		od = 0
	}
	res.Metrics["Oxygen Demand (kg/d)"] = od
	airM3d := safeDiv(safeDiv(od, sote), airO2Mass)
	res.Metrics["Aeration Air (m³/min)"] = airM3d / 1440

	res.Metrics["RAS Flow (m³/d)"] = rasDesignFraction * q * adj.Factor(AdjRAS)
	underflow := wasUnderflowConc * adj.Factor(AdjMLSS)
	res.Metrics["WAS Flow (m³/d)"] = safeDiv(sludge*1000, underflow) * adj.Factor(AdjWAS)
	res.Metrics["Influent Valve Cv"] = ValveCv(s.conv, q, defaultValveDrop)
}

func (s *Simulator) scrubber(inf *Influent, adj Adjustments, res *Results) {
	mw := contaminantMW[inf.Contaminant]
	if mw == 0 {
		res.Notes["Contaminant"] = "unrecognized, mass loading degraded to zero"
	} else {
		res.Notes["Contaminant"] = inf.Contaminant
	}

	// Ideal-gas ppm to mg/m³, then mass loading over the day.
	conc := inf.ContamPPM * mw / molarVolume
	var load float64 // kg/d
	if inf.AirFlow > 0 && conc > 0 {
		load = inf.AirFlow * 24 * conc / 1e6
	}
	res.Metrics["Inlet Concentration (mg/m³)"] = conc
	res.Metrics["Mass Loading (kg/d)"] = load

	eff := scrubberDesignEff * adj.Factor(AdjFanSpeed) * adj.Factor(AdjScrubberPump)
	if eff > maxScrubberRemoval {
		eff = maxScrubberRemoval
	}
	res.Metrics["Removal Efficiency (%)"] = eff * 100
	res.Metrics["Outlet Concentration (ppm)"] = inf.ContamPPM * (1 - eff)

	removed := load * eff
	res.Metrics["Mass Removed (kg/d)"] = removed

	chem, ok := chemicals[inf.ScrubberChemical]
	if !ok {
		res.Notes["Chemical"] = "unrecognized, dosing degraded to zero"
		res.Metrics["Chemical Use (kg/d)"] = 0
		res.Metrics["Dosing Pump (L/h)"] = 0
		return
	}
	strength := chem.Strength
	if inf.ChemStrength > 0 {
		strength = inf.ChemStrength
	}
	use := chem.Stoich * removed                       // kg active/d
	feedVol := safeDiv(safeDiv(use, strength), chem.Density) // L solution/d
	res.Metrics["Chemical Use (kg/d)"] = use
	res.Metrics["Chemical Feed (L/d)"] = feedVol
	res.Metrics["Dosing Pump (L/h)"] = feedVol / 24 * dosePumpMargin
}

// solids re-runs the CAS sizing and mass balance internally: the solids
// train is always fed by the plant's CAS liquid train.
func (s *Simulator) solids(inf *Influent, adj Adjustments, res *Results) {
	cas, err := SizeCAS(s.conv, inf)
	if err != nil {
		res.Notes["Sludge Basis"] = err.Error()
		return
	}
	sludge := bioSludgeProduction(cas, inf)
	res.Metrics["Feed Sludge (kg/d)"] = sludge

	thickenedPct := orDefault(inf.ThickenedSolidsPct, defaultThickenedPct)
	res.Metrics["Thickened Flow (m³/d)"] = safeDiv(sludge*100, thickenedPct*1000)

	vsr := orDefault(inf.VSRTargetPct, defaultVSRPct) * adj.Factor(AdjMixing)
	if vsr > maxVSR {
		vsr = maxVSR
	}
	res.Metrics["VSR (%)"] = vsr

	vs := sludge * volatileFraction
	destroyed := vs * vsr / 100
	res.Metrics["VS Destroyed (kg/d)"] = destroyed
	res.Metrics["Biogas (m³/d)"] = biogasYield * destroyed
	res.Metrics["Methane (m³/d)"] = methaneFraction * biogasYield * destroyed

	digested := sludge - destroyed
	if digested < 0 {
		digested = 0
	}
	res.Metrics["Digested Solids (kg/d)"] = digested

	cakePct := orDefault(inf.CakeSolidsPct, defaultCakePct)
	if cakePct > maxCakeSolids {
		cakePct = maxCakeSolids
	}
	res.Metrics["Cake Solids (%)"] = cakePct
	res.Metrics["Cake (t/d)"] = safeDiv(digested*100, cakePct) / 1000

	poly := adj.Factor(AdjPolymer)
	res.Metrics["Thickening Polymer (kg/d)"] = thickenerPolymer * sludge / 1000 * poly
	res.Metrics["Dewatering Polymer (kg/d)"] = dewateringPolymer * digested / 1000 * poly
}
