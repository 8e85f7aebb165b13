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

// Package report assembles the preliminary design report as a PDF. The
// report is rebuilt in full on every call; there is no incremental mode.
package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"

	wwtp "github.com/ral197979/aquagenius"
)

// Renderer rasterizes a DOT description to a PNG file. It matches
// pfd.Render; tests substitute failing renderers to exercise the
// degraded path.
type Renderer func(dot, path string) error

// sanitize replaces characters outside Latin-1 so the core PDF fonts can
// always encode the text. Substitution, never an error.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0xFF {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type doc struct {
	pdf *gofpdf.Fpdf
}

func (d *doc) chapterTitle(title string) {
	d.pdf.SetFont("Arial", "B", 14)
	d.pdf.SetFillColor(220, 220, 220)
	d.pdf.CellFormat(0, 10, sanitize(title), "", 1, "L", true, 0, "")
	d.pdf.Ln(2)
}

func (d *doc) chapterBody(lines []string) {
	d.pdf.SetFont("Arial", "", 11)
	for _, line := range lines {
		d.pdf.CellFormat(0, 8, sanitize(line), "", 1, "L", false, 0, "")
	}
	d.pdf.Ln(4)
}

func (d *doc) table(header []string, rows [][]string, colWidth float64) {
	d.pdf.SetFont("Arial", "B", 11)
	for _, h := range header {
		d.pdf.CellFormat(colWidth, 8, sanitize(h), "1", 0, "C", false, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		for _, cell := range row {
			d.pdf.CellFormat(colWidth, 8, sanitize(cell), "1", 0, "C", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(4)
}

// Generate builds the four-section design report and returns the PDF
// bytes. The diagram section is best-effort: when render fails (for
// example because graphviz is not installed) the section carries a
// textual notice instead, and the rest of the report is unaffected.
func Generate(inf *wwtp.Influent, sz *wwtp.Sizing, res *wwtp.Results, dot string, render Renderer) ([]byte, error) {
	d := &doc{pdf: gofpdf.New("P", "mm", "A4", "")}
	d.pdf.AddPage()

	d.chapterTitle("1. Influent Design Criteria")
	d.chapterBody([]string{
		fmt.Sprintf("Average Influent Flow: %.2f %s", inf.Flow, inf.FlowUnit),
		fmt.Sprintf("Average Influent BOD: %g mg/L", inf.BOD),
		fmt.Sprintf("Average Influent TSS: %g mg/L", inf.TSS),
		fmt.Sprintf("Average Influent TKN: %g mg/L", inf.TKN),
		fmt.Sprintf("Average Influent TP: %g mg/L", inf.TP),
		fmt.Sprintf("Technology: %v", sz.Tech),
	})

	d.chapterTitle("2. Equipment Sizing and Dimensions")
	d.table([]string{"Unit", "Parameter", "Value", "Units"}, dimensionRows(sz), 45)

	d.chapterTitle("3. Process Flow Diagram")
	d.embedDiagram(dot, render)

	d.chapterTitle("4. Results Summary")
	d.table([]string{"Metric", "Value"}, metricRows(res), 90)

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *doc) embedDiagram(dot string, render Renderer) {
	if render == nil {
		render = func(string, string) error {
			return fmt.Errorf("report: no diagram renderer configured")
		}
	}
	tmp, err := os.CreateTemp("", "aquagenius-pfd-*.png")
	if err == nil {
		tmp.Close()
		defer os.Remove(tmp.Name())
		if err = render(dot, tmp.Name()); err == nil {
			w, _ := d.pdf.GetPageSize()
			d.pdf.ImageOptions(tmp.Name(), 10, d.pdf.GetY(), w-20, 0, true,
				gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			d.pdf.Ln(4)
			return
		}
	}
	d.chapterBody([]string{
		"Diagram Generation Error: could not render the process flow diagram.",
		"Cause: graphviz may not be installed or accessible on this host.",
		"Details: " + err.Error(),
	})
}

func dimensionRows(sz *wwtp.Sizing) [][]string {
	units := make([]string, 0, len(sz.Dimensions))
	for u := range sz.Dimensions {
		units = append(units, u)
	}
	sort.Strings(units)
	var rows [][]string
	for _, u := range units {
		dims := sz.Dimensions[u]
		names := make([]string, 0, len(dims))
		for n := range dims {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			// Dimension names embed their unit, e.g. "Width (m)".
			name, unit := splitUnit(n)
			rows = append(rows, []string{u, name, dims[n], unit})
		}
	}
	return rows
}

func metricRows(res *wwtp.Results) [][]string {
	names := make([]string, 0, len(res.Metrics))
	for n := range res.Metrics {
		names = append(names, n)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n, fmt.Sprintf("%.2f", res.Metrics[n])})
	}
	return rows
}

// splitUnit separates a trailing parenthesized unit from a label.
func splitUnit(label string) (name, unit string) {
	i := strings.LastIndex(label, " (")
	if i < 0 || !strings.HasSuffix(label, ")") {
		return label, ""
	}
	return label[:i], strings.TrimSuffix(label[i+2:], ")")
}
