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
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"
)

// overrideRow is one (Parameter, Value) pair of the override schema.
type overrideRow struct {
	Parameter string `csv:"Parameter"`
	Value     string `csv:"Value"`
}

// overrideParams is the fixed schema of parameters an override file may
// set.
var overrideParams = map[string]struct{}{
	"Flow": {}, "BOD": {}, "TSS": {}, "TKN": {}, "TP": {},
}

// Overrides maps override parameter names to values.
type Overrides map[string]float64

// LoadOverridesCSV reads a two-column (Parameter, Value) table. Unknown
// parameter names and non-numeric values are descriptive errors, not
// silently dropped: a typo in an override file must not produce a design
// for the wrong plant.
func LoadOverridesCSV(r io.Reader) (Overrides, error) {
	var rows []*overrideRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("aquagenius: malformed override table: %w", err)
	}
	return collectOverrides(rows)
}

// LoadOverridesXLSX reads the same (Parameter, Value) schema from the
// first sheet of a spreadsheet, skipping a header row when present.
func LoadOverridesXLSX(path string) (Overrides, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("aquagenius: opening override spreadsheet: %w", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("aquagenius: override spreadsheet %s has no sheets", path)
	}
	var rows []*overrideRow
	for i, row := range f.Sheets[0].Rows {
		if len(row.Cells) < 2 {
			continue
		}
		p := strings.TrimSpace(row.Cells[0].String())
		v := strings.TrimSpace(row.Cells[1].String())
		if i == 0 && strings.EqualFold(p, "Parameter") {
			continue
		}
		if p == "" {
			continue
		}
		rows = append(rows, &overrideRow{Parameter: p, Value: v})
	}
	return collectOverrides(rows)
}

func collectOverrides(rows []*overrideRow) (Overrides, error) {
	out := make(Overrides, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Parameter)
		if _, ok := overrideParams[name]; !ok {
			return nil, fmt.Errorf("aquagenius: unknown override parameter %q", name)
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(row.Value))
		if err != nil {
			return nil, fmt.Errorf("aquagenius: override %s: bad value %q", name, row.Value)
		}
		out[name] = v
	}
	return out, nil
}

// Apply returns a copy of inf with the override values substituted. Flow
// overrides keep the influent's flow unit.
func (o Overrides) Apply(inf Influent) Influent {
	if v, ok := o["Flow"]; ok {
		inf.Flow = v
	}
	if v, ok := o["BOD"]; ok {
		inf.BOD = v
	}
	if v, ok := o["TSS"]; ok {
		inf.TSS = v
	}
	if v, ok := o["TKN"]; ok {
		inf.TKN = v
	}
	if v, ok := o["TP"]; ok {
		inf.TP = v
	}
	return inf
}
