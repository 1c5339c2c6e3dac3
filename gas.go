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

import "math"

// Closed-form update steps for the standard gas fields. Each function
// returns a DiskManipulator that recomputes one field from its
// prerequisites; DefaultGasSteps wires them together in dependency order.

// Temperature returns a function that calculates the midplane temperature of
// a passively irradiated disk.
func Temperature() DiskManipulator {
	return func(d *Disk) error {
		for i, r := range d.R {
			flux := d.IrradAngle * d.StarLuminosity / (4 * math.Pi * r * r * SigmaSB)
			d.T[i] = math.Pow(flux, 0.25)
		}
		return nil
	}
}

// SoundSpeed returns a function that calculates the adiabatic sound speed
// from the temperature.
func SoundSpeed() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Cs {
			d.Cs[i] = math.Sqrt(d.Gamma * KB * d.T[i] / (d.Mu * MProton))
		}
		return nil
	}
}

// ScaleHeight returns a function that calculates the pressure scale height
// Hp = cs / OmegaK.
func ScaleHeight() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Hp {
			d.Hp[i] = d.Cs[i] / d.OmegaK[i]
		}
		return nil
	}
}

// ConstantAlpha returns a function that fills the turbulence profile with
// the reference value. It is the default alpha step; the bump and dead-zone
// setups replace it.
func ConstantAlpha() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Alpha {
			d.Alpha[i] = d.Alpha0
		}
		return nil
	}
}

// Viscosity returns a function that calculates the Shakura-Sunyaev kinematic
// viscosity nu = alpha cs Hp.
func Viscosity() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Nu {
			d.Nu[i] = d.Alpha[i] * d.Cs[i] * d.Hp[i]
		}
		return nil
	}
}

// MidplaneDensity returns a function that calculates the midplane mass
// density of a vertically Gaussian gas column.
func MidplaneDensity() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Rho {
			d.Rho[i] = d.Sigma[i] / (math.Sqrt(2*math.Pi) * d.Hp[i])
		}
		return nil
	}
}

// NumberDensity returns a function that calculates the midplane number
// density.
func NumberDensity() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.N {
			d.N[i] = d.Rho[i] / (d.Mu * MProton)
		}
		return nil
	}
}

// MeanFreePath returns a function that calculates the midplane mean free
// path of the gas molecules.
func MeanFreePath() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.Mfp {
			d.Mfp[i] = 1 / (math.Sqrt2 * d.N[i] * SigmaH2)
		}
		return nil
	}
}

// Pressure returns a function that calculates the midplane gas pressure
// P = rho cs².
func Pressure() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.P {
			d.P[i] = d.Rho[i] * d.Cs[i] * d.Cs[i]
		}
		return nil
	}
}

// PressureGradient returns a function that calculates the dimensionless
// pressure gradient parameter eta = -1/2 (Hp/r)² dlnP/dlnr, using central
// differences in log space and one-sided differences at the boundaries.
func PressureGradient() DiskManipulator {
	return func(d *Disk) error {
		n := len(d.R)
		for i := range d.Eta {
			var grad float64
			switch i {
			case 0:
				grad = logSlope(d.R[0], d.R[1], d.P[0], d.P[1])
			case n - 1:
				grad = logSlope(d.R[n-2], d.R[n-1], d.P[n-2], d.P[n-1])
			default:
				grad = logSlope(d.R[i-1], d.R[i+1], d.P[i-1], d.P[i+1])
			}
			hr := d.Hp[i] / d.R[i]
			d.Eta[i] = -0.5 * hr * hr * grad
		}
		return nil
	}
}

func logSlope(r0, r1, p0, p1 float64) float64 {
	return (math.Log(p1) - math.Log(p0)) / (math.Log(r1) - math.Log(r0))
}

// Sources returns a function that resets the external gas source terms.
// Hydrodynamic and accretion sources belong to the external engine; within
// this model the sources are zero.
func Sources() DiskManipulator {
	return func(d *Disk) error {
		for i := range d.S {
			d.S[i] = 0
		}
		return nil
	}
}

func noop() DiskManipulator {
	return func(*Disk) error { return nil }
}

// DefaultGasSteps returns the standard gas update sequence. The order
// mirrors the engine's field-update list; gamma and mu are held constant and
// participate only as ordering anchors. The alpha step declares its
// dependence on the scale height so that profile updaters spliced in by
// SetupBumps and SetupDeadZone inherit a validated position in the sweep.
func DefaultGasSteps() []Step {
	return []Step{
		{Name: "gamma", Fn: noop()},
		{Name: "mu", Fn: noop()},
		{Name: "T", Fn: Temperature()},
		{Name: "cs", After: []string{"T", "gamma", "mu"}, Fn: SoundSpeed()},
		{Name: "Hp", After: []string{"cs"}, Fn: ScaleHeight()},
		{Name: "alpha", After: []string{"Hp"}, Fn: ConstantAlpha()},
		{Name: "nu", After: []string{"alpha", "cs", "Hp"}, Fn: Viscosity()},
		{Name: "rho", After: []string{"Hp"}, Fn: MidplaneDensity()},
		{Name: "n", After: []string{"rho"}, Fn: NumberDensity()},
		{Name: "mfp", After: []string{"n"}, Fn: MeanFreePath()},
		{Name: "P", After: []string{"rho", "cs"}, Fn: Pressure()},
		{Name: "eta", After: []string{"P", "Hp"}, Fn: PressureGradient()},
		{Name: "S", After: []string{"nu", "P"}, Fn: Sources()},
		{Name: "check", After: []string{"alpha", "nu", "P", "eta"}, Fn: CheckFinite()},
	}
}
