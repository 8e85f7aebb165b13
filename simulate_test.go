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
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSimulateDeterministicWithoutSource(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	inf.DoseCarbon = true
	inf.DoseAlum = true
	sz, err := SizeCAS(conv, inf)
	if err != nil {
		t.Fatal(err)
	}

	sim := NewSimulator(nil)
	a := sim.Simulate(sz, inf, nil)
	b := sim.Simulate(sz, inf, nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("nil-source simulation is not reproducible")
	}

	// All multipliers at 100 is the design condition; it must match the
	// no-adjustment run exactly.
	design := Adjustments{
		AdjFanSpeed: 100, AdjScrubberPump: 100, AdjRAS: 100,
		AdjWAS: 100, AdjMLSS: 100, AdjPolymer: 100, AdjMixing: 100,
	}
	c := sim.Simulate(sz, inf, design)
	if !reflect.DeepEqual(a.Metrics, c.Metrics) {
		t.Error("all-design adjustments do not reproduce the initial run")
	}
}

func TestSimulateJitterIsolatedToEffluent(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	sz, err := SizeCAS(conv, inf)
	if err != nil {
		t.Fatal(err)
	}

	jittered := NewSimulator(rand.NewSource(1)).Simulate(sz, inf, nil)
	exact := NewSimulator(nil).Simulate(sz, inf, nil)

	// Mass balances and design flows never jitter.
	for _, key := range []string{
		"Sludge Production (kg/d)", "Oxygen Demand (kg/d)",
		"RAS Flow (m³/d)", "WAS Flow (m³/d)", "BOD Removed (kg/d)",
	} {
		if jittered.Metrics[key] != exact.Metrics[key] {
			t.Errorf("%s jittered: %g != %g", key, jittered.Metrics[key], exact.Metrics[key])
		}
	}
	// Effluent estimates stay within the jitter span of the target.
	for p, target := range sz.EffluentTargets {
		got := jittered.Metrics["Effluent "+p+" (mg/L)"]
		if math.Abs(got-target) > target*jitterSpan+1e-12 {
			t.Errorf("effluent %s = %g outside ±%g%% of %g", p, got, jitterSpan*100, target)
		}
	}
}

func TestSimulateBiological(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	inf.DoseCarbon = true
	inf.DoseAlum = true
	sz, err := SizeCAS(conv, inf)
	if err != nil {
		t.Fatal(err)
	}
	res := NewSimulator(nil).Simulate(sz, inf, nil)

	if got, want := res.Metrics["BOD Removed (kg/d)"], 10000.0*240/1000; math.Abs(got-want) > 1e-9 {
		t.Errorf("BOD removed = %g, want %g", got, want)
	}
	if res.Metrics["Oxygen Demand (kg/d)"] <= 0 {
		t.Error("oxygen demand should be positive")
	}
	if res.Metrics["Aeration Air (m³/min)"] <= 0 {
		t.Error("aeration air should be positive")
	}
	if got, want := res.Metrics["RAS Flow (m³/d)"], rasDesignFraction*10000; math.Abs(got-want) > 1e-9 {
		t.Errorf("RAS = %g, want %g", got, want)
	}
	if res.Metrics["Methanol Dose (kg/d)"] <= 0 {
		t.Error("carbon dosing flag set with removal need, want a methanol dose")
	}
	if res.Metrics["Alum Dose (kg/d)"] <= 0 {
		t.Error("alum dosing flag set with removal need, want an alum dose")
	}

	// Without the flags there is no supplemental dosing.
	inf2 := testInfluent()
	res2 := NewSimulator(nil).Simulate(sz, inf2, nil)
	if _, ok := res2.Metrics["Methanol Dose (kg/d)"]; ok {
		t.Error("methanol dosed without the carbon flag")
	}
	if _, ok := res2.Metrics["Alum Dose (kg/d)"]; ok {
		t.Error("alum dosed without the alum flag")
	}
}

func TestSimulateAdjustmentsScaleFlows(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	sz, err := SizeCAS(conv, inf)
	if err != nil {
		t.Fatal(err)
	}
	sim := NewSimulator(nil)
	base := sim.Simulate(sz, inf, nil)
	half := sim.Simulate(sz, inf, Adjustments{AdjRAS: 50})

	if got, want := half.Metrics["RAS Flow (m³/d)"], base.Metrics["RAS Flow (m³/d)"]/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("RAS at 50%% = %g, want %g", got, want)
	}
	if half.Metrics["WAS Flow (m³/d)"] != base.Metrics["WAS Flow (m³/d)"] {
		t.Error("RAS adjustment leaked into the WAS flow")
	}
}

func TestSimulateScrubberCaps(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	sz, err := SizeScrubber(conv, inf)
	if err != nil {
		t.Fatal(err)
	}
	sim := NewSimulator(nil)

	// Uprated fan and pump cannot push removal past 99.9%.
	res := sim.Simulate(sz, inf, Adjustments{AdjFanSpeed: 150, AdjScrubberPump: 150})
	if got := res.Metrics["Removal Efficiency (%)"]; got > 99.9 {
		t.Errorf("removal efficiency = %g, want ≤ 99.9", got)
	}
	if got := res.Metrics["Outlet Concentration (ppm)"]; got <= 0 {
		t.Errorf("outlet = %g, capped removal always leaves a remainder", got)
	}

	// The ideal-gas loading at 25 ppm H2S over 5000 m³/h.
	res = sim.Simulate(sz, inf, nil)
	wantConc := 25 * 34.08 / 24.45
	if got := res.Metrics["Inlet Concentration (mg/m³)"]; math.Abs(got-wantConc) > 1e-9 {
		t.Errorf("inlet concentration = %g, want %g", got, wantConc)
	}
	wantLoad := 5000.0 * 24 * wantConc / 1e6
	if got := res.Metrics["Mass Loading (kg/d)"]; math.Abs(got-wantLoad) > 1e-9 {
		t.Errorf("mass loading = %g, want %g", got, wantLoad)
	}
	if res.Metrics["Dosing Pump (L/h)"] <= 0 {
		t.Error("dosing pump capacity should be positive")
	}
}

func TestSimulateSolids(t *testing.T) {
	conv := NewConverter()
	inf := testInfluent()
	inf.CakeSolidsPct = 95 // absurd target, must cap
	sz, err := SizeSolids(conv, inf)
	if err != nil {
		t.Fatal(err)
	}
	sim := NewSimulator(nil)
	res := sim.Simulate(sz, inf, Adjustments{AdjMixing: 150})

	if got := res.Metrics["Cake Solids (%)"]; got != maxCakeSolids {
		t.Errorf("cake solids = %g, want capped at %g", got, maxCakeSolids)
	}
	if got := res.Metrics["VSR (%)"]; got > maxVSR {
		t.Errorf("VSR = %g, want ≤ %g even with mixing uprated", got, maxVSR)
	}
	if res.Metrics["Biogas (m³/d)"] <= 0 {
		t.Error("biogas should be positive")
	}
	if got, want := res.Metrics["Methane (m³/d)"], res.Metrics["Biogas (m³/d)"]*methaneFraction; math.Abs(got-want) > 1e-9 {
		t.Errorf("methane = %g, want %g", got, want)
	}
	if res.Metrics["Feed Sludge (kg/d)"] <= 0 {
		t.Error("solids branch should draw a positive CAS sludge basis")
	}
}

func TestSimulateNeverPanics(t *testing.T) {
	conv := NewConverter()
	sim := NewSimulator(nil)
	zero := &Influent{FlowUnit: "m³/d"}

	for _, tech := range []Technology{CAS, IFAS, MBR, MBBR, Scrubber, Solids} {
		sz, err := Size(conv, tech, zero)
		if err != nil {
			t.Fatalf("%v: %v", tech, err)
		}
		for _, adj := range []Adjustments{
			nil,
			{},
			{AdjRAS: 0, AdjWAS: 0, AdjMLSS: 0, AdjFanSpeed: 0, AdjScrubberPump: 0, AdjPolymer: 0, AdjMixing: 0},
			{AdjRAS: -40, AdjMLSS: -100},
		} {
			res := sim.Simulate(sz, zero, adj)
			if res == nil || res.Metrics == nil {
				t.Fatalf("%v: degenerate input did not yield a well-formed record", tech)
			}
			for k, v := range res.Metrics {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%v: metric %s = %g", tech, k, v)
				}
			}
		}
	}

	if res := sim.Simulate(nil, nil, nil); res == nil || res.Metrics == nil {
		t.Error("nil inputs did not yield a well-formed record")
	}
}

func TestAdjustmentsFactor(t *testing.T) {
	var a Adjustments
	if f := a.Factor(AdjRAS); f != 1 {
		t.Errorf("nil map factor = %g, want 1", f)
	}
	a = Adjustments{AdjRAS: 50, AdjWAS: -10}
	if f := a.Factor(AdjRAS); f != 0.5 {
		t.Errorf("factor = %g, want 0.5", f)
	}
	if f := a.Factor(AdjWAS); f != 0 {
		t.Errorf("negative multiplier factor = %g, want 0", f)
	}
	if f := a.Factor(AdjMixing); f != 1 {
		t.Errorf("missing name factor = %g, want 1", f)
	}
}
