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

// Package pfd renders process-flow diagrams for sized plants. The graph
// topology is fixed per technology; only the edge and node labels are
// interpolated from computed values. Rasterization requires the
// graphviz dot binary and is strictly best-effort: callers embed the
// image when Render succeeds and fall back to text when it does not.
package pfd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	wwtp "github.com/ral197979/aquagenius"
)

// Log receives diagnostics from the rendering step. Replace it to route
// the messages elsewhere.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Graph produces the DOT description of the process-flow diagram for a
// sized plant. It is a pure function of its arguments.
func Graph(inf *wwtp.Influent, sz *wwtp.Sizing, res *wwtp.Results) string {
	var b strings.Builder
	b.WriteString("digraph PFD {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=box, style=filled, fillcolor=lightblue];\n")
	switch sz.Tech {
	case wwtp.Scrubber:
		scrubberEdges(&b, inf, res)
	case wwtp.Solids:
		solidsEdges(&b, res)
	default:
		biologicalEdges(&b, inf, sz, res)
	}
	b.WriteString("}\n")
	return b.String()
}

func edge(b *strings.Builder, from, to, label string) {
	if label == "" {
		fmt.Fprintf(b, "    %q -> %q;\n", from, to)
		return
	}
	fmt.Fprintf(b, "    %q -> %q [label=%q];\n", from, to, label)
}

func biologicalEdges(b *strings.Builder, inf *wwtp.Influent, sz *wwtp.Sizing, res *wwtp.Results) {
	flow := fmt.Sprintf("%.0f m³/d", sz.Flow)
	edge(b, "Influent", "EQ Basin", flow)
	edge(b, "EQ Basin", "Anoxic Basin", "")

	reactor := "Aeration Basin"
	if sz.Tech == wwtp.MBBR {
		reactor = "MBBR Reactor"
	}
	edge(b, "Anoxic Basin", reactor, "")

	separator := "Secondary Clarifier"
	if sz.Tech == wwtp.MBR {
		separator = "Membrane Tank"
	}
	edge(b, reactor, separator, "")
	edge(b, separator, "Effluent",
		fmt.Sprintf("BOD %.1f mg/L", res.Metrics["Effluent BOD (mg/L)"]))

	if sz.Tech != wwtp.MBBR {
		edge(b, separator, "Anoxic Basin",
			fmt.Sprintf("RAS %.0f m³/d", res.Metrics["RAS Flow (m³/d)"]))
	}
	edge(b, separator, "Solids Handling",
		fmt.Sprintf("WAS %.0f m³/d", res.Metrics["WAS Flow (m³/d)"]))

	if inf.DoseCarbon {
		edge(b, "Methanol Feed", "Anoxic Basin",
			fmt.Sprintf("%.1f kg/d", res.Metrics["Methanol Dose (kg/d)"]))
	}
	if inf.DoseAlum {
		edge(b, "Alum Feed", reactor,
			fmt.Sprintf("%.1f kg/d", res.Metrics["Alum Dose (kg/d)"]))
	}
}

func scrubberEdges(b *strings.Builder, inf *wwtp.Influent, res *wwtp.Results) {
	edge(b, "Foul Air", "Stage 1 Tower",
		fmt.Sprintf("%.0f m³/h, %.0f ppm", inf.AirFlow, inf.ContamPPM))
	edge(b, "Stage 1 Tower", "Stage 2 Tower", "")
	edge(b, "Stage 2 Tower", "Clean Air",
		fmt.Sprintf("%.1f ppm", res.Metrics["Outlet Concentration (ppm)"]))
	edge(b, "Chemical Feed", "Stage 1 Tower",
		fmt.Sprintf("%.1f L/d", res.Metrics["Chemical Feed (L/d)"]))
	edge(b, "Stage 1 Tower", "Blowdown", "")
}

func solidsEdges(b *strings.Builder, res *wwtp.Results) {
	edge(b, "WAS", "Gravity Thickener",
		fmt.Sprintf("%.0f kg/d", res.Metrics["Feed Sludge (kg/d)"]))
	edge(b, "Gravity Thickener", "Anaerobic Digester",
		fmt.Sprintf("%.1f m³/d", res.Metrics["Thickened Flow (m³/d)"]))
	edge(b, "Anaerobic Digester", "Dewatering", "")
	edge(b, "Anaerobic Digester", "Biogas",
		fmt.Sprintf("%.0f m³/d", res.Metrics["Biogas (m³/d)"]))
	edge(b, "Dewatering", "Cake Disposal",
		fmt.Sprintf("%.1f t/d", res.Metrics["Cake (t/d)"]))
	edge(b, "Polymer Feed", "Dewatering",
		fmt.Sprintf("%.1f kg/d", res.Metrics["Dewatering Polymer (kg/d)"]))
}

// Render rasterizes a DOT description to a PNG at path using the
// graphviz dot binary. A missing binary or a failed run is reported as
// an error for the caller to degrade on; it is logged here for
// diagnosis but is never fatal to the calculation.
func Render(dot, path string) error {
	if _, err := exec.LookPath("dot"); err != nil {
		Log.WithFields(logrus.Fields{"err": err}).
			Warn("graphviz dot not found; skipping diagram rasterization")
		return fmt.Errorf("pfd: graphviz dot executable not found on PATH: %w", err)
	}
	cmd := exec.Command("dot", "-Tpng", "-o", path)
	cmd.Stdin = strings.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		Log.WithFields(logrus.Fields{"err": err, "stderr": stderr.String()}).
			Warn("graphviz dot failed; skipping diagram rasterization")
		return fmt.Errorf("pfd: rendering diagram: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
