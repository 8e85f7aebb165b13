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

// Biological kinetic coefficients for the activated-sludge design
// equation. Values are conventional municipal defaults.
const (
	heterotrophYield = 0.60 // g VSS produced / g BOD5 removed
	decayCoeff       = 0.06 // 1/d
	volatileFraction = 0.80 // MLVSS / MLSS
)

// Aeration coefficients.
const (
	o2PerBOD     = 1.1   // kg O2 / kg BOD removed
	o2PerNH3N    = 4.57  // kg O2 / kg NH3-N nitrified
	o2SludgeCred = 1.42  // kg O2 credit / kg VSS wasted
	sote         = 0.30  // standard oxygen transfer efficiency, fraction
	airO2Mass    = 0.279 // kg O2 / m³ air at standard conditions
)

// Clarifier and hydraulic design bases.
const (
	clarifierSOR       = 24.0   // m³/m²/d surface overflow rate
	clarifierSWD       = 4.5    // m fixed side water depth
	eqBasinFraction    = 0.25   // of daily average flow
	anoxicFraction     = 0.30   // of biological volume
	aerobicFraction    = 0.70
	rasDesignFraction  = 0.75   // RAS design flow as fraction of Q
	wasUnderflowConc   = 8000.0 // mg/L WAS draw-off concentration
	basinDepth         = 6.0    // m rectangular process basins
	eqBasinDepth       = 5.0    // m
	digesterDepth      = 10.0   // m
	dosePumpMargin     = 1.25   // design margin on chemical pump capacity
	defaultValveDrop   = 5.0    // psi
	molarVolume        = 24.45  // L/mol at 25 °C, ppm → mg/m³ basis
	peakingFactor      = 1.5    // peak hour / average day
	chemSludgePerP     = 4.0    // kg chemical sludge / kg P precipitated
	methanolPerNO3N    = 3.0    // kg methanol / kg NO3-N denitrified
	jitterSpan         = 0.05   // ± fraction on effluent quality estimates
	maxScrubberRemoval = 0.999  // cap regardless of adjustments
	maxCakeSolids      = 40.0   // % cap regardless of target
	maxVSR             = 80.0   // % cap with mixing uprated
)

// Membrane and media design bases.
const (
	mbrFlux           = 20.0   // L/m²/h net design flux
	mbrPackingDens    = 40.0   // m² membrane / m³ tank
	ifasMediaFill     = 0.40   // media fraction of aerobic volume
	ifasMediaCredit   = 1500.0 // mg/L equivalent MLSS carried by media
	mbbrSALR          = 4.0    // kg BOD/m³ media/d volumetric loading
	mbbrMediaFill     = 0.50
	towerGasVelocity  = 1.0    // m/s superficial
	towerEBRT         = 2.0    // s empty-bed residence time
	scrubberDesignEff = 0.99
)

// Solids-handling design bases.
const (
	thickenerLoading    = 50.0 // kg/m²/d solids loading
	digesterVSLoading   = 2.5  // kg VS/m³/d
	digesterMinSRT      = 20.0 // d
	defaultThickenedPct = 5.0  // % dry solids after thickening
	defaultVSRPct       = 55.0 // % volatile solids reduction
	defaultCakePct      = 22.0 // % cake dry solids
	biogasYield         = 0.9  // m³ / kg VS destroyed
	methaneFraction     = 0.65
	thickenerPolymer    = 3.0  // kg / tonne dry solids
	dewateringPolymer   = 7.0  // kg / tonne dry solids
)

// Chemical holds the physical and stoichiometric properties of a dosing
// chemical as delivered.
type Chemical struct {
	MolWeight float64 // g/mol of active species
	Density   float64 // kg/L of stock solution
	Strength  float64 // w/w active fraction of stock solution
	// Stoich is the mass of active chemical consumed per mass of the
	// contaminant it treats (kg/kg).
	Stoich float64
}

// chemicals is the dosing chemical property table. Stoichiometric ratios
// are per kg of H2S for the scrubber chemicals, per kg NO3-N for
// methanol, and per kg P for alum.
var chemicals = map[string]Chemical{
	"NaOH":     {MolWeight: 40.00, Density: 1.53, Strength: 0.50, Stoich: 2.35},
	"NaOCl":    {MolWeight: 74.44, Density: 1.21, Strength: 0.125, Stoich: 6.57},
	"Methanol": {MolWeight: 32.04, Density: 0.79, Strength: 1.00, Stoich: methanolPerNO3N},
	"Alum":     {MolWeight: 594.4, Density: 1.33, Strength: 0.485, Stoich: 9.7},
}

// contaminantMW maps scrubber gas contaminants to molecular weight,
// g/mol, for the ideal-gas ppm to mg/m³ conversion.
var contaminantMW = map[string]float64{
	"H2S": 34.08,
	"NH3": 17.03,
}

// effluentTargets gives the design effluent quality for each biological
// technology, mg/L. MBR quality reflects the membrane barrier.
var effluentTargets = map[Technology]map[string]float64{
	CAS:  {"BOD": 10, "TSS": 12, "TKN": 8, "TP": 2.0},
	IFAS: {"BOD": 8, "TSS": 10, "TKN": 5, "TP": 1.5},
	MBR:  {"BOD": 2, "TSS": 1, "TKN": 3, "TP": 0.5},
	MBBR: {"BOD": 15, "TSS": 15, "TKN": 10, "TP": 2.5},
}

// Targets returns a copy of the design effluent target table for t, or
// nil for non-biological technologies.
func Targets(t Technology) map[string]float64 {
	src, ok := effluentTargets[t]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
