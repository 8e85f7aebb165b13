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

// Package aquagenius implements a preliminary-design calculator for
// wastewater treatment plants. Given influent flow and loading, it sizes
// unit processes for a selected treatment technology using steady-state
// design equations and then estimates effluent quality, chemical dosing,
// sludge production, and utility design flows for the sized plant.
package aquagenius

import (
	"fmt"
	"strings"
)

// Version gives the version number of this release.
const Version = "0.4.1"

// Technology identifies one of the treatment trains the calculator can
// size. Each technology has exactly one sizing function and one set of
// design effluent targets.
type Technology int

const (
	// CAS is a conventional activated sludge train with anoxic selector,
	// aeration basin, and secondary clarifier.
	CAS Technology = iota
	// IFAS is activated sludge with fixed-film carrier media added to the
	// aeration basin.
	IFAS
	// MBR is a membrane bioreactor: activated sludge with membrane
	// filtration in place of a secondary clarifier.
	MBR
	// MBBR is a moving-bed biofilm reactor sized on volumetric BOD
	// loading of the carrier media.
	MBBR
	// Scrubber is a packed-tower chemical air scrubber treating a foul
	// air stream rather than the liquid train.
	Scrubber
	// Solids is the solids-handling train: gravity thickener, anaerobic
	// digester, and dewatering.
	Solids
)

var technologyNames = []string{"CAS", "IFAS", "MBR", "MBBR", "Scrubber", "Solids"}

func (t Technology) String() string {
	if t < CAS || t > Solids {
		return fmt.Sprintf("Technology(%d)", int(t))
	}
	return technologyNames[t]
}

// ParseTechnology converts a technology name to its tag. Matching is
// case-insensitive.
func ParseTechnology(s string) (Technology, error) {
	for i, n := range technologyNames {
		if strings.EqualFold(n, s) {
			return Technology(i), nil
		}
	}
	return 0, fmt.Errorf("aquagenius: unknown technology %q (want one of %s)",
		s, strings.Join(technologyNames, ", "))
}

// Influent holds the design inputs for one calculation run. It is
// created once, from direct entry or a parameter override file, and is
// never modified by the calculator.
type Influent struct {
	// Flow is the average influent flow in the unit given by FlowUnit
	// ("m³/d", "MGD", or "GPD").
	Flow     float64 `json:"flow"`
	FlowUnit string  `json:"flow_unit"`

	// Influent concentrations, mg/L.
	BOD float64 `json:"bod"`
	TSS float64 `json:"tss"`
	TKN float64 `json:"tkn"`
	TP  float64 `json:"tp"`

	// Foul air stream treated by the Scrubber technology.
	AirFlow     float64 `json:"air_flow"`    // m³/h
	Contaminant string  `json:"contaminant"` // "H2S" or "NH3"
	ContamPPM   float64 `json:"contam_ppm"`  // ppmv

	// ScrubberChemical selects the scrubbing solution ("NaOH" or
	// "NaOCl"); ChemStrength, if positive, overrides the stock solution
	// strength (w/w fraction) from the chemical property table.
	ScrubberChemical string  `json:"scrubber_chemical"`
	ChemStrength     float64 `json:"chem_strength"`

	// Solids-handling targets, percent dry solids except VSRTargetPct.
	ThickenedSolidsPct float64 `json:"thickened_solids_pct"`
	VSRTargetPct       float64 `json:"vsr_target_pct"`
	CakeSolidsPct      float64 `json:"cake_solids_pct"`

	// Supplemental chemical dosing flags for the biological trains.
	DoseCarbon bool `json:"dose_carbon"` // methanol for denitrification
	DoseAlum   bool `json:"dose_alum"`   // alum for phosphorus removal
}

// Sizing is the process-geometry record produced by one sizing function.
// It is never mutated after creation; the simulation and the diagram and
// report generators only read it.
type Sizing struct {
	Tech Technology `json:"tech"`

	// Flow is the design flow converted to m³/d at sizing time so that
	// downstream consumers need no further unit handling.
	Flow float64 `json:"flow"`

	// Design basis.
	SRT  float64 `json:"srt"`  // d
	MLSS float64 `json:"mlss"` // mg/L
	HRT  float64 `json:"hrt"`  // h

	// Volumes maps unit name to basin volume, m³.
	Volumes map[string]float64 `json:"volumes"`

	ClarifierArea float64 `json:"clarifier_area"` // m²
	MembraneArea  float64 `json:"membrane_area"`  // m²
	MediaVolume   float64 `json:"media_volume"`   // m³

	// Dimensions maps unit name to dimension name to formatted value.
	// Callers must tolerate missing units and missing dimensions; an
	// absent entry means the geometry was degenerate, not an error.
	Dimensions map[string]map[string]string `json:"dimensions"`

	// EffluentTargets maps quality parameter to design value.
	EffluentTargets map[string]float64 `json:"effluent_targets"`
}

// Adjustments is an optional set of named percentage multipliers
// representing operator-set equipment rates (100 = design). It is
// constructed fresh for each re-run request and never persisted. A nil
// map is valid and means "all at design".
type Adjustments map[string]float64

// Adjustment names understood by the simulation.
const (
	AdjFanSpeed     = "FanSpeed"
	AdjScrubberPump = "ScrubberPump"
	AdjRAS          = "RAS"
	AdjWAS          = "WAS"
	AdjMLSS         = "MLSS"
	AdjPolymer      = "Polymer"
	AdjMixing       = "Mixing"
)

// Factor returns the multiplier for name as a fraction of design.
// A missing name means design rate (1.0); negative entries clamp to 0.
func (a Adjustments) Factor(name string) float64 {
	if a == nil {
		return 1
	}
	v, ok := a[name]
	if !ok {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v / 100
}

// Results holds the output of one simulation run. The whole record is
// recomputed on every call; keys embed their units.
type Results struct {
	Metrics map[string]float64 `json:"metrics"`
	Notes   map[string]string  `json:"notes,omitempty"`
}

func newResults() *Results {
	return &Results{
		Metrics: make(map[string]float64),
		Notes:   make(map[string]string),
	}
}
