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
	"math"

	"gonum.org/v1/gonum/floats"
)

// RescaleResult reports the mass bookkeeping of a surface density rescale.
type RescaleResult struct {
	InitialMass float64 // gas mass before the rescale [g]
	ScaledMass  float64 // gas mass after the rescale, before correction [g]
	Ratio       float64 // ScaledMass / InitialMass
	Corrected   bool    // whether the profiles were renormalized to InitialMass
}

func (r RescaleResult) String() string {
	if r.Corrected {
		return fmt.Sprintf("surface density rescaled; corrected by %.3g to preserve %.4g g",
			1/r.Ratio, r.InitialMass)
	}
	return fmt.Sprintf("surface density rescaled; disk mass changed by factor %.3g", r.Ratio)
}

// RescaleSigmaWithAlpha scales the gas and dust surface densities by
// alpha0/alpha so the disk starts near viscous quasi-steady state. With
// correctMass, the scaled profiles are renormalized so the integrated gas
// mass matches its original value.
//
// Rescaling is a one-shot setup operation; it mutates the density profiles
// in place and must not be added to the update pipeline. The turbulence
// profile is checked for non-positive and non-finite values before anything
// is touched.
func RescaleSigmaWithAlpha(d *Disk, alpha0 float64, correctMass bool) (RescaleResult, error) {
	if alpha0 <= 0 {
		return RescaleResult{}, fmt.Errorf("%w: reference alpha %g", ErrNonPositive, alpha0)
	}
	for i, a := range d.Alpha {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return RescaleResult{}, fmt.Errorf("%w: alpha at cell %d", ErrNotFinite, i)
		}
		if a <= 0 {
			return RescaleResult{}, fmt.Errorf("%w: %g at cell %d", ErrDegenerateAlpha, a, i)
		}
	}

	res := RescaleResult{InitialMass: d.GasMass()}
	for i := range d.Sigma {
		f := alpha0 / d.Alpha[i]
		d.Sigma[i] *= f
		for k := range d.SigmaDust[i] {
			d.SigmaDust[i][k] *= f
		}
	}
	res.ScaledMass = d.GasMass()
	res.Ratio = res.ScaledMass / res.InitialMass

	if correctMass {
		floats.Scale(1/res.Ratio, d.Sigma)
		for i := range d.SigmaDust {
			for k := range d.SigmaDust[i] {
				d.SigmaDust[i][k] /= res.Ratio
			}
		}
		res.Corrected = true
	}
	return res, nil
}
