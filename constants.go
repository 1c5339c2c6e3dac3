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

// Physical constants [CGS].
const (
	G       = 6.6743e-8        // gravitational constant [cm³/g/s²]
	KB      = 1.380649e-16     // Boltzmann constant [erg/K]
	MProton = 1.67262192369e-24 // proton mass [g]
	SigmaSB = 5.670374419e-5   // Stefan-Boltzmann constant [erg/cm²/s/K⁴]
	SigmaH2 = 2.0e-15          // molecular hydrogen cross section [cm²]
)

// Astronomical units [CGS].
const (
	AU   = 1.495978707e13 // astronomical unit [cm]
	MSun = 1.98841e33     // solar mass [g]
	LSun = 3.828e33       // solar luminosity [erg/s]
	Year = 3.15576e7      // Julian year [s]
)

// Disk model defaults, matching a typical T Tauri system.
const (
	DefaultGamma      = 1.4  // adiabatic index
	DefaultMu         = 2.3  // mean molecular weight [proton masses]
	DefaultIrradAngle = 0.05 // flaring irradiation angle
)

// Version is the model version.
const Version = "1.1.0"
