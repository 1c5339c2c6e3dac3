/*
Copyright © 2026 the DiskTurb authors.
This file is part of DiskTurb.

DiskTurb is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DiskTurb is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DiskTurb.  If not, see <http://www.gnu.org/licenses/>.
*/

package diskturb

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CheckFinite returns a function that scans the recomputed fields for NaN
// or Inf values and for non-positive turbulence. It runs as the last step of
// the default pipeline so a degenerate configuration fails the sweep instead
// of propagating silently.
func CheckFinite() DiskManipulator {
	fields := []struct {
		name string
		get  func(*Disk) []float64
	}{
		{"T", func(d *Disk) []float64 { return d.T }},
		{"cs", func(d *Disk) []float64 { return d.Cs }},
		{"Hp", func(d *Disk) []float64 { return d.Hp }},
		{"alpha", func(d *Disk) []float64 { return d.Alpha }},
		{"nu", func(d *Disk) []float64 { return d.Nu }},
		{"rho", func(d *Disk) []float64 { return d.Rho }},
		{"P", func(d *Disk) []float64 { return d.P }},
		{"eta", func(d *Disk) []float64 { return d.Eta }},
		{"Sigma", func(d *Disk) []float64 { return d.Sigma }},
	}
	return func(d *Disk) error {
		for _, f := range fields {
			for i, v := range f.get(d) {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: %s at cell %d", ErrNotFinite, f.name, i)
				}
			}
		}
		for i, a := range d.Alpha {
			if a <= 0 {
				return fmt.Errorf("%w: %g at cell %d", ErrDegenerateAlpha, a, i)
			}
		}
		return nil
	}
}

// Log returns a function that writes a one-line status summary to w after
// each update sweep. Append it to the pipeline to trace repeated updates.
func Log(w io.Writer) DiskManipulator {
	sweep := 0
	return func(d *Disk) error {
		sweep++
		fmt.Fprintf(w, "sweep %-4d  mass=%.4g g  alpha=[%.3g, %.3g]\n",
			sweep, d.GasMass(), floats.Min(d.Alpha), floats.Max(d.Alpha))
		return nil
	}
}
