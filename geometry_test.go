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
	"strconv"
	"testing"
)

func dim(t *testing.T, dims map[string]string, name string) float64 {
	t.Helper()
	s, ok := dims[name]
	if !ok {
		t.Fatalf("missing dimension %q in %v", name, dims)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("dimension %q = %q is not numeric", name, s)
	}
	return v
}

func TestTankDimensionsRectangular(t *testing.T) {
	for _, tc := range []struct {
		volume, depth float64
	}{
		{2571.43, 6},
		{100, 4.5},
		{1, 0.5},
		{980000, 8},
	} {
		dims := TankDimensions(tc.volume, Rectangular, tc.depth)
		w := dim(t, dims, "Width (m)")
		l := dim(t, dims, "Length (m)")
		d := dim(t, dims, "Depth (m)")
		if math.Abs(l-3*w)/l > 0.01 {
			t.Errorf("volume %g: length %g is not 3x width %g", tc.volume, l, w)
		}
		// Round trip within the tolerance introduced by the two-decimal
		// formatting.
		if got := w * w * 3 * d; math.Abs(got-tc.volume)/tc.volume > 0.05 {
			t.Errorf("volume %g: dimensions recompose to %g", tc.volume, got)
		}
	}
}

func TestTankDimensionsDegenerate(t *testing.T) {
	for _, tc := range []struct {
		name          string
		volume, depth float64
		shape         Shape
	}{
		{"zero volume", 0, 5, Rectangular},
		{"negative volume", -10, 5, Rectangular},
		{"zero depth rectangular", 100, 0, Rectangular},
		{"negative depth rectangular", 100, -1, Rectangular},
		{"unknown shape", 100, 5, Shape("hexagonal")},
	} {
		if dims := TankDimensions(tc.volume, tc.shape, tc.depth); len(dims) != 0 {
			t.Errorf("%s: want empty dimension set, got %v", tc.name, dims)
		}
	}
}

func TestTankDimensionsCircular(t *testing.T) {
	// Depth 0 means the input is a surface area; the side water depth is
	// the fixed clarifier convention.
	dims := TankDimensions(416.67, Circular, 0)
	dia := dim(t, dims, "Diameter (m)")
	want := math.Sqrt(4 * 416.67 / math.Pi)
	if math.Abs(dia-want) > 0.01 {
		t.Errorf("diameter = %g, want %g", dia, want)
	}
	if swd := dim(t, dims, "Side Water Depth (m)"); swd != 4.5 {
		t.Errorf("side water depth = %g, want the 4.5 m convention", swd)
	}

	// Positive depth means the input is a volume and the depth echoes
	// back.
	dims = TankDimensions(1000, Circular, 10)
	dia = dim(t, dims, "Diameter (m)")
	want = math.Sqrt(4 * 100 / math.Pi)
	if math.Abs(dia-want) > 0.01 {
		t.Errorf("diameter = %g, want %g", dia, want)
	}
	if swd := dim(t, dims, "Side Water Depth (m)"); swd != 10 {
		t.Errorf("side water depth = %g, want 10", swd)
	}
}

func TestValveCv(t *testing.T) {
	conv := NewConverter()
	if cv := ValveCv(conv, 10000, 0); cv != 0 {
		t.Errorf("Cv at zero pressure drop = %g, want exactly 0", cv)
	}
	if cv := ValveCv(conv, 10000, -3); cv != 0 {
		t.Errorf("Cv at negative pressure drop = %g, want exactly 0", cv)
	}
	gpm, err := conv.Convert(10000, "m³/d", "GPM")
	if err != nil {
		t.Fatal(err)
	}
	want := gpm * math.Sqrt(1.0/5.0)
	if cv := ValveCv(conv, 10000, 5); math.Abs(cv-want) > 1e-9 {
		t.Errorf("Cv = %g, want %g", cv, want)
	}
}
